package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/dashboard"
	"github.com/julianstephens/quantumlife/internal/models"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Toggle HabitToggleCmd `cmd:"" help:"Mark a habit done or not done."`
	Edit   HabitEditCmd   `cmd:"" help:"Rename a habit or change its frequency."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitAddCmd struct {
	Name      string `arg:"" help:"Habit name."`
	Frequency string `short:"f" help:"How often the habit repeats." enum:"Daily,Weekly,Monthly" default:"Daily"`
	Image     string `help:"Optional image reference."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit := models.NewHabit(c.Name, c.Frequency)
	habit.HabitImage = strings.TrimSpace(c.Image)
	if err := habit.Validate(); err != nil {
		return err
	}

	rctx, cancel := ctx.Timeout()
	defer cancel()

	stored, err := collection.For[models.Habit](ctx.Provider).Create(rctx, habit.WithID(uuid.NewString()))
	if err != nil {
		return fmt.Errorf("failed to add habit: %w", err)
	}

	fmt.Printf("✓ Added habit: %s (%s) [%s]\n", stored.HabitName, stored.Frequency, ShortID(stored.ID))
	return nil
}

type HabitListCmd struct {
	Completed bool `help:"Only show habits completed today."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	var filter collection.Filter
	if c.Completed {
		filter = collection.Filter{"isCompleted": true}
	}
	habits, err := collection.For[models.Habit](ctx.Provider).ListAll(rctx, filter, collection.Options{})
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Printf("%-8s %-30s %-10s %-7s %s\n", "ID", "Habit", "Frequency", "Streak", "Done")
	fmt.Println(strings.Repeat("-", 64))
	for _, h := range habits {
		done := " "
		if h.IsCompleted {
			done = "✓"
		}
		fmt.Printf("%-8s %-30s %-10s %-7d %s\n", ShortID(h.ID), Truncate(h.HabitName, 30), h.Frequency, h.StreakCount, done)
	}

	done, total := dashboard.CompletedHabits(habits)
	fmt.Printf("\n%d of %d completed\n", done, total)
	return nil
}

type HabitToggleCmd struct {
	ID string `arg:"" help:"Habit ID (or unique prefix)."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	habit, err := Find[models.Habit](rctx, ctx.Provider, c.ID)
	if err != nil {
		return err
	}

	updated, err := collection.For[models.Habit](ctx.Provider).Update(rctx, habit.ID, habit.ToggleCompleted())
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	if updated.IsCompleted {
		fmt.Printf("✓ %s done (streak %d)\n", updated.HabitName, updated.StreakCount)
	} else {
		fmt.Printf("○ %s marked not done (streak %d)\n", updated.HabitName, updated.StreakCount)
	}
	return nil
}

type HabitEditCmd struct {
	ID        string  `arg:"" help:"Habit ID (or unique prefix)."`
	Name      string  `help:"New habit name."`
	Frequency string  `short:"f" help:"New frequency (Daily, Weekly or Monthly)."`
	Image     *string `help:"New image reference (empty to clear)."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	var patch models.HabitPatch
	if name := strings.TrimSpace(c.Name); name != "" {
		patch.HabitName = &name
	}
	if c.Frequency != "" {
		if !slices.Contains(constants.HabitFrequencies, c.Frequency) {
			return fmt.Errorf("invalid frequency %q (expected one of %s)", c.Frequency, strings.Join(constants.HabitFrequencies, ", "))
		}
		patch.Frequency = &c.Frequency
	}
	patch.HabitImage = c.Image
	if patch == (models.HabitPatch{}) {
		fmt.Println("No changes specified.")
		return nil
	}

	rctx, cancel := ctx.Timeout()
	defer cancel()

	habit, err := Find[models.Habit](rctx, ctx.Provider, c.ID)
	if err != nil {
		return err
	}
	updated, err := collection.For[models.Habit](ctx.Provider).Update(rctx, habit.ID, patch)
	if err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	fmt.Printf("✓ Updated habit: %s (%s)\n", updated.HabitName, updated.Frequency)
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit ID (or unique prefix)."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	habit, err := Find[models.Habit](rctx, ctx.Provider, c.ID)
	if err != nil {
		return err
	}
	if err := collection.For[models.Habit](ctx.Provider).Delete(rctx, habit.ID); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}

	fmt.Printf("✓ Deleted habit: %s\n", habit.HabitName)
	return nil
}
