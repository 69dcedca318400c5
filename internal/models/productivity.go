package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/quantumlife/internal/constants"
)

type ProductivityLog struct {
	Meta
	TaskOrSessionName string    `json:"taskOrSessionName"`
	DurationMinutes   int       `json:"durationMinutes"`
	ProductivityScore int       `json:"productivityScore"`
	CategoryTag       string    `json:"categoryTag,omitempty"`
	LogDateTime       time.Time `json:"logDateTime"`
}

func (ProductivityLog) CollectionName() string { return constants.CollectionProductivityLogs }

func (l ProductivityLog) WithID(id string) ProductivityLog {
	l.ID = id
	return l
}

func (l ProductivityLog) Validate() error {
	if strings.TrimSpace(l.TaskOrSessionName) == "" {
		return fmt.Errorf("task or session name cannot be empty")
	}
	if l.DurationMinutes < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	if l.ProductivityScore < constants.MinRating || l.ProductivityScore > constants.MaxRating {
		return fmt.Errorf("productivity score must be between %d and %d, got %d", constants.MinRating, constants.MaxRating, l.ProductivityScore)
	}
	return nil
}

type ProductivityLogPatch struct {
	TaskOrSessionName *string    `json:"taskOrSessionName,omitempty"`
	DurationMinutes   *int       `json:"durationMinutes,omitempty"`
	ProductivityScore *int       `json:"productivityScore,omitempty"`
	CategoryTag       *string    `json:"categoryTag,omitempty"`
	LogDateTime       *time.Time `json:"logDateTime,omitempty"`
}

func (p ProductivityLogPatch) Apply(l ProductivityLog) ProductivityLog {
	setString(&l.TaskOrSessionName, p.TaskOrSessionName)
	setInt(&l.DurationMinutes, p.DurationMinutes)
	setInt(&l.ProductivityScore, p.ProductivityScore)
	setString(&l.CategoryTag, p.CategoryTag)
	setTime(&l.LogDateTime, p.LogDateTime)
	return l
}
