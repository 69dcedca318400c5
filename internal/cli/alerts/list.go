package alerts

import (
	"fmt"
	"strings"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/utils"
)

type ReminderListCmd struct {
	Active bool `help:"Only show active reminders."`
}

func (c *ReminderListCmd) Run(ctx *cli.Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	var filter collection.Filter
	if c.Active {
		filter = collection.Filter{"isActive": true}
	}
	reminders, err := collection.For[models.Reminder](ctx.Provider).ListAll(rctx, filter, collection.Options{})
	if err != nil {
		return fmt.Errorf("failed to get reminders: %w", err)
	}

	if len(reminders) == 0 {
		fmt.Println("No reminders configured.")
		return nil
	}

	now := ctx.Clock()
	fmt.Printf("%-8s %-28s %-18s %-18s %-12s %s\n", "ID", "Title", "Next", "Repeats", "Category", "Active")
	fmt.Println(strings.Repeat("-", 96))

	for _, r := range reminders {
		next := "-"
		if r.IsActive {
			next = utils.FormatDateTime(r.NextDue(now), ctx.Loc())
		}

		activeStr := "Yes"
		if !r.IsActive {
			activeStr = "No"
		}

		fmt.Printf("%-8s %-28s %-18s %-18s %-12s %s\n",
			cli.ShortID(r.ID), cli.Truncate(r.ReminderTitle, 28), next, cli.Truncate(r.FormatRecurrence(), 18), r.TrackerCategory, activeStr)
	}

	return nil
}
