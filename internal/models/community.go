package models

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/julianstephens/quantumlife/internal/constants"
)

var (
	contentPolicy = bluemonday.UGCPolicy()
	plainPolicy   = bluemonday.StrictPolicy()
)

type CommunityPost struct {
	Meta
	AuthorDisplayName string    `json:"authorDisplayName"`
	PostContent       string    `json:"postContent"`
	MediaAttachment   string    `json:"mediaAttachment,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
	LikeCount         int       `json:"likeCount"`
	CommentCount      int       `json:"commentCount"`
}

func (CommunityPost) CollectionName() string { return constants.CollectionCommunityPosts }

func (p CommunityPost) WithID(id string) CommunityPost {
	p.ID = id
	return p
}

// NewCommunityPost builds a post with sanitized content and zeroed counters.
func NewCommunityPost(author, content string, at time.Time) CommunityPost {
	return CommunityPost{
		AuthorDisplayName: strings.TrimSpace(plainPolicy.Sanitize(author)),
		PostContent:       SanitizeContent(content),
		Timestamp:         at,
	}
}

func (p CommunityPost) Validate() error {
	if strings.TrimSpace(p.AuthorDisplayName) == "" {
		return fmt.Errorf("author display name cannot be empty")
	}
	if strings.TrimSpace(p.PostContent) == "" {
		return fmt.Errorf("post content cannot be empty")
	}
	return nil
}

// SanitizeContent strips unsafe markup from user generated content.
func SanitizeContent(content string) string {
	return strings.TrimSpace(contentPolicy.Sanitize(content))
}

// PlainText returns the post content with all markup removed, for terminal display.
func (p CommunityPost) PlainText() string {
	return html.UnescapeString(plainPolicy.Sanitize(p.PostContent))
}

// Like returns the patch that adds one like.
func (p CommunityPost) Like() CommunityPostPatch {
	likes := p.LikeCount + 1
	return CommunityPostPatch{LikeCount: &likes}
}

type CommunityPostPatch struct {
	PostContent     *string `json:"postContent,omitempty"`
	MediaAttachment *string `json:"mediaAttachment,omitempty"`
	LikeCount       *int    `json:"likeCount,omitempty"`
	CommentCount    *int    `json:"commentCount,omitempty"`
}

func (p CommunityPostPatch) Apply(post CommunityPost) CommunityPost {
	setString(&post.PostContent, p.PostContent)
	setString(&post.MediaAttachment, p.MediaAttachment)
	setInt(&post.LikeCount, p.LikeCount)
	setInt(&post.CommentCount, p.CommentCount)
	return post
}
