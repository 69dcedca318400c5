package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/dashboard"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/utils"
)

type ProductivityCmd struct {
	Log    ProductivityLogCmd    `cmd:"" help:"Log a work session."`
	List   ProductivityListCmd   `cmd:"" help:"List sessions with a summary."`
	Delete ProductivityDeleteCmd `cmd:"" help:"Delete a session."`
}

type ProductivityLogCmd struct {
	Name     string `arg:"" help:"Task or session name."`
	Duration int    `short:"d" help:"Duration in minutes." required:""`
	Score    int    `short:"s" help:"Productivity score (1-10)." default:"5"`
	Tag      string `short:"t" help:"Category tag."`
	At       string `help:"Session time (YYYY-MM-DD HH:MM, default now)."`
}

func (c *ProductivityLogCmd) Run(ctx *Context) error {
	at := ctx.Clock()
	if c.At != "" {
		t, err := utils.ParseDateTimeInLocation(c.At, ctx.Loc())
		if err != nil {
			return err
		}
		at = t
	}

	entry := models.ProductivityLog{
		TaskOrSessionName: strings.TrimSpace(c.Name),
		DurationMinutes:   c.Duration,
		ProductivityScore: c.Score,
		CategoryTag:       strings.TrimSpace(c.Tag),
		LogDateTime:       at,
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	rctx, cancel := ctx.Timeout()
	defer cancel()

	stored, err := collection.For[models.ProductivityLog](ctx.Provider).Create(rctx, entry.WithID(uuid.NewString()))
	if err != nil {
		return fmt.Errorf("failed to log session: %w", err)
	}

	fmt.Printf("✓ Logged %s: %s, score %d [%s]\n",
		stored.TaskOrSessionName, utils.FormatDuration(stored.DurationMinutes), stored.ProductivityScore, ShortID(stored.ID))
	return nil
}

type ProductivityListCmd struct {
	Tag   string `short:"t" help:"Only show sessions with this category tag."`
	Limit int    `short:"n" help:"Show at most this many sessions (0 for all)." default:"0"`
}

func (c *ProductivityListCmd) Run(ctx *Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	var filter collection.Filter
	if c.Tag != "" {
		filter = collection.Filter{"categoryTag": c.Tag}
	}
	logs, err := collection.For[models.ProductivityLog](ctx.Provider).ListAll(rctx, filter, collection.Options{Limit: c.Limit})
	if err != nil {
		return err
	}

	if len(logs) == 0 {
		fmt.Println("No sessions logged.")
		return nil
	}

	fmt.Printf("%-8s %-26s %-18s %-9s %-6s %s\n", "ID", "Session", "When", "Duration", "Score", "Tag")
	fmt.Println(strings.Repeat("-", 84))
	for _, l := range logs {
		fmt.Printf("%-8s %-26s %-18s %-9s %-6d %s\n",
			ShortID(l.ID), Truncate(l.TaskOrSessionName, 26), utils.FormatDateTime(l.LogDateTime, ctx.Loc()),
			utils.FormatDuration(l.DurationMinutes), l.ProductivityScore, l.CategoryTag)
	}

	sum := dashboard.ProductivitySummary(logs)
	fmt.Printf("\nAverage score %s, %.1f hours total\n", dashboard.FormatAverage(sum.AverageScore, len(logs)), sum.TotalHours)
	return nil
}

type ProductivityDeleteCmd struct {
	ID string `arg:"" help:"Session ID (or unique prefix)."`
}

func (c *ProductivityDeleteCmd) Run(ctx *Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	entry, err := Find[models.ProductivityLog](rctx, ctx.Provider, c.ID)
	if err != nil {
		return err
	}
	if err := collection.For[models.ProductivityLog](ctx.Provider).Delete(rctx, entry.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	fmt.Printf("✓ Deleted session: %s\n", entry.TaskOrSessionName)
	return nil
}
