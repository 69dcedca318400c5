package alerts

import (
	"fmt"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/models"
)

type ReminderToggleCmd struct {
	ID string `arg:"" help:"Reminder ID (or unique prefix)."`
}

func (c *ReminderToggleCmd) Run(ctx *cli.Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	reminder, err := cli.Find[models.Reminder](rctx, ctx.Provider, c.ID)
	if err != nil {
		return err
	}

	updated, err := collection.For[models.Reminder](ctx.Provider).Update(rctx, reminder.ID, reminder.ToggleActive())
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	state := "off"
	if updated.IsActive {
		state = "on"
	}
	fmt.Printf("✓ Reminder %s: %s\n", state, updated.ReminderTitle)
	return nil
}

type ReminderDeleteCmd struct {
	ID string `arg:"" help:"Reminder ID (or unique prefix)."`
}

func (c *ReminderDeleteCmd) Run(ctx *cli.Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	reminder, err := cli.Find[models.Reminder](rctx, ctx.Provider, c.ID)
	if err != nil {
		return fmt.Errorf("reminder not found: %w", err)
	}

	if err := collection.For[models.Reminder](ctx.Provider).Delete(rctx, reminder.ID); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	fmt.Printf("✓ Reminder deleted: %s\n", reminder.ReminderTitle)
	return nil
}
