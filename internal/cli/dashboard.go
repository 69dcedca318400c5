package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/quantumlife/internal/dashboard"
	"github.com/julianstephens/quantumlife/internal/reminders"
	"github.com/julianstephens/quantumlife/internal/utils"
)

type DashboardCmd struct {
	Limit int  `short:"n" help:"Records loaded per tracker." default:"5"`
	JSON  bool `help:"Print the summary as JSON."`
}

func (c *DashboardCmd) Run(ctx *Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	snap, err := dashboard.NewLoader(ctx.Provider, c.Limit).Load(rctx)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}
	sum := snap.Summary()

	if c.JSON {
		return PrintJSON(sum)
	}

	now := ctx.Clock()
	fmt.Printf("QuantumLife (%s)\n\n", now.Format("Mon Jan 2 15:04"))
	fmt.Printf("  Habits completed: %d/%d\n", sum.CompletedHabits, sum.TotalHabits)
	fmt.Printf("  Active goals:     %d\n", sum.ActiveGoals)
	fmt.Printf("  Average mood:     %s\n", dashboard.FormatAverage(sum.AverageMood, sum.MoodCheckins))
	fmt.Println()
	for _, t := range sum.Trackers {
		fmt.Printf("  %-13s %d\n", t.Title, t.Count)
	}

	if upcoming := reminders.Due(snap.Reminders, now, 24*time.Hour); len(upcoming) > 0 {
		fmt.Println("\nNext 24 hours:")
		for _, n := range upcoming {
			fmt.Printf("  %-10s %s\n", utils.RelativeTime(n.Due, now), n.Reminder.ReminderTitle)
		}
	}
	return nil
}
