package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/dashboard"
	"github.com/julianstephens/quantumlife/internal/models"
)

type GoalCmd struct {
	Add      GoalAddCmd      `cmd:"" help:"Add a new goal."`
	List     GoalListCmd     `cmd:"" help:"List goals."`
	Progress GoalProgressCmd `cmd:"" help:"Set the progress of a goal."`
	Delete   GoalDeleteCmd   `cmd:"" help:"Delete a goal."`
}

type GoalAddCmd struct {
	Title       string `arg:"" help:"Goal title."`
	Description string `short:"d" help:"Longer description."`
	Target      string `short:"t" help:"Target date (YYYY-MM-DD)."`
	Progress    int    `short:"p" help:"Initial progress percentage (0-100)." default:"0"`
	Category    string `short:"c" help:"Category label."`
}

func (c *GoalAddCmd) Run(ctx *Context) error {
	goal := models.Goal{
		GoalTitle:          strings.TrimSpace(c.Title),
		Description:        strings.TrimSpace(c.Description),
		TargetDate:         strings.TrimSpace(c.Target),
		ProgressPercentage: &c.Progress,
		Category:           strings.TrimSpace(c.Category),
	}
	if err := goal.Validate(); err != nil {
		return err
	}

	rctx, cancel := ctx.Timeout()
	defer cancel()

	stored, err := collection.For[models.Goal](ctx.Provider).Create(rctx, goal.WithID(uuid.NewString()))
	if err != nil {
		return fmt.Errorf("failed to add goal: %w", err)
	}

	fmt.Printf("✓ Added goal: %s [%s]\n", stored.GoalTitle, ShortID(stored.ID))
	return nil
}

type GoalListCmd struct {
	Active bool `help:"Only show goals still in progress."`
}

func (c *GoalListCmd) Run(ctx *Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	goals, err := collection.For[models.Goal](ctx.Provider).ListAll(rctx, nil, collection.Options{})
	if err != nil {
		return err
	}

	shown := goals
	if c.Active {
		shown = shown[:0:0]
		for _, g := range goals {
			if g.IsActive() {
				shown = append(shown, g)
			}
		}
	}

	if len(shown) == 0 {
		fmt.Println("No goals found.")
		return nil
	}

	fmt.Printf("%-8s %-30s %-12s %-14s %s\n", "ID", "Goal", "Target", "Category", "Progress")
	fmt.Println(strings.Repeat("-", 78))
	for _, g := range shown {
		target := g.TargetDate
		if target == "" {
			target = "-"
		}
		fmt.Printf("%-8s %-30s %-12s %-14s %s\n",
			ShortID(g.ID), Truncate(g.GoalTitle, 30), target, Truncate(g.Category, 14), progressBar(g.Progress(), 10))
	}

	fmt.Printf("\n%d active of %d\n", dashboard.ActiveGoals(goals), len(goals))
	return nil
}

// progressBar renders a percentage as a fixed width ASCII bar.
func progressBar(pct, width int) string {
	pct = max(0, min(pct, constants.MaxProgress))
	filled := pct * width / constants.MaxProgress
	return fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("#", filled), strings.Repeat(".", width-filled), pct)
}

type GoalProgressCmd struct {
	ID      string `arg:"" help:"Goal ID (or unique prefix)."`
	Percent int    `arg:"" help:"New progress percentage (0-100)."`
}

func (c *GoalProgressCmd) Validate() error {
	if c.Percent < 0 || c.Percent > constants.MaxProgress {
		return fmt.Errorf("progress must be between 0 and %d", constants.MaxProgress)
	}
	return nil
}

func (c *GoalProgressCmd) Run(ctx *Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	goal, err := Find[models.Goal](rctx, ctx.Provider, c.ID)
	if err != nil {
		return err
	}
	updated, err := collection.For[models.Goal](ctx.Provider).Update(rctx, goal.ID, models.GoalPatch{ProgressPercentage: &c.Percent})
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	fmt.Printf("✓ %s %s\n", updated.GoalTitle, progressBar(updated.Progress(), 10))
	if !updated.IsActive() {
		fmt.Println("  Goal complete!")
	}
	return nil
}

type GoalDeleteCmd struct {
	ID string `arg:"" help:"Goal ID (or unique prefix)."`
}

func (c *GoalDeleteCmd) Run(ctx *Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	goal, err := Find[models.Goal](rctx, ctx.Provider, c.ID)
	if err != nil {
		return err
	}
	if err := collection.For[models.Goal](ctx.Provider).Delete(rctx, goal.ID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	fmt.Printf("✓ Deleted goal: %s\n", goal.GoalTitle)
	return nil
}
