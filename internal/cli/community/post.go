package community

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/utils"
)

type PostCmd struct {
	Add    PostAddCmd    `cmd:"" help:"Share a post with the community."`
	List   PostListCmd   `cmd:"" help:"Show the community feed."`
	Like   PostLikeCmd   `cmd:"" help:"Like a post."`
	Delete PostDeleteCmd `cmd:"" help:"Delete a post."`
}

type PostAddCmd struct {
	Content string `arg:"" help:"Post content. Markup is sanitized."`
	Author  string `short:"a" help:"Display name to post as." env:"USER" required:""`
	Media   string `short:"m" help:"Optional media attachment reference."`
}

func (c *PostAddCmd) Run(ctx *cli.Context) error {
	post := models.NewCommunityPost(c.Author, c.Content, ctx.Clock())
	post.MediaAttachment = strings.TrimSpace(c.Media)
	if err := post.Validate(); err != nil {
		return err
	}

	rctx, cancel := ctx.Timeout()
	defer cancel()

	stored, err := collection.For[models.CommunityPost](ctx.Provider).Create(rctx, post.WithID(uuid.NewString()))
	if err != nil {
		return fmt.Errorf("failed to share post: %w", err)
	}

	fmt.Printf("✓ Posted as %s [%s]\n", stored.AuthorDisplayName, cli.ShortID(stored.ID))
	return nil
}

type PostListCmd struct {
	Limit int `short:"n" help:"Show at most this many posts (0 for all)." default:"20"`
}

func (c *PostListCmd) Run(ctx *cli.Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	posts, err := collection.For[models.CommunityPost](ctx.Provider).ListAll(rctx, nil, collection.Options{Limit: c.Limit})
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		fmt.Println("No posts yet.")
		return nil
	}

	now := ctx.Clock()
	for _, p := range posts {
		fmt.Printf("[%s] %s · %s\n", cli.ShortID(p.ID), p.AuthorDisplayName, utils.RelativeTime(p.Timestamp, now))
		fmt.Printf("  %s\n", p.PlainText())
		if p.MediaAttachment != "" {
			fmt.Printf("  📎 %s\n", p.MediaAttachment)
		}
		fmt.Printf("  ♥ %d  💬 %d\n\n", p.LikeCount, p.CommentCount)
	}
	return nil
}

type PostLikeCmd struct {
	ID string `arg:"" help:"Post ID (or unique prefix)."`
}

func (c *PostLikeCmd) Run(ctx *cli.Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	post, err := cli.Find[models.CommunityPost](rctx, ctx.Provider, c.ID)
	if err != nil {
		return err
	}
	updated, err := collection.For[models.CommunityPost](ctx.Provider).Update(rctx, post.ID, post.Like())
	if err != nil {
		return fmt.Errorf("failed to like post: %w", err)
	}

	fmt.Printf("♥ %d likes on %s's post\n", updated.LikeCount, updated.AuthorDisplayName)
	return nil
}

type PostDeleteCmd struct {
	ID string `arg:"" help:"Post ID (or unique prefix)."`
}

func (c *PostDeleteCmd) Run(ctx *cli.Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	post, err := cli.Find[models.CommunityPost](rctx, ctx.Provider, c.ID)
	if err != nil {
		return err
	}
	if err := collection.For[models.CommunityPost](ctx.Provider).Delete(rctx, post.ID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	fmt.Printf("✓ Deleted post by %s\n", post.AuthorDisplayName)
	return nil
}
