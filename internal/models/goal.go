package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/quantumlife/internal/constants"
)

type Goal struct {
	Meta
	GoalTitle          string `json:"goalTitle"`
	Description        string `json:"description,omitempty"`
	TargetDate         string `json:"targetDate,omitempty"` // YYYY-MM-DD
	ProgressPercentage *int   `json:"progressPercentage,omitempty"`
	Category           string `json:"category,omitempty"`
}

func (Goal) CollectionName() string { return constants.CollectionGoals }

func (g Goal) WithID(id string) Goal {
	g.ID = id
	return g
}

// Progress returns the completion percentage, treating a missing value as 0.
func (g Goal) Progress() int {
	if g.ProgressPercentage == nil {
		return 0
	}
	return *g.ProgressPercentage
}

// IsActive reports whether the goal is still in progress.
func (g Goal) IsActive() bool {
	return g.Progress() < constants.MaxProgress
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.GoalTitle) == "" {
		return fmt.Errorf("goal title cannot be empty")
	}
	if p := g.Progress(); p < 0 || p > constants.MaxProgress {
		return fmt.Errorf("progress must be between 0 and %d, got %d", constants.MaxProgress, p)
	}
	if g.TargetDate != "" {
		if _, err := time.Parse(constants.DateFormat, g.TargetDate); err != nil {
			return fmt.Errorf("invalid target date (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

type GoalPatch struct {
	GoalTitle          *string `json:"goalTitle,omitempty"`
	Description        *string `json:"description,omitempty"`
	TargetDate         *string `json:"targetDate,omitempty"`
	ProgressPercentage *int    `json:"progressPercentage,omitempty"`
	Category           *string `json:"category,omitempty"`
}

func (p GoalPatch) Apply(g Goal) Goal {
	setString(&g.GoalTitle, p.GoalTitle)
	setString(&g.Description, p.Description)
	setString(&g.TargetDate, p.TargetDate)
	if p.ProgressPercentage != nil {
		v := *p.ProgressPercentage
		g.ProgressPercentage = &v
	}
	setString(&g.Category, p.Category)
	return g
}
