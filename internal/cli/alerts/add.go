package alerts

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/utils"
)

type ReminderAddCmd struct {
	Title      string `arg:"" help:"Reminder title."`
	At         string `help:"When the reminder is due (YYYY-MM-DD HH:MM)." required:""`
	Recurrence string `short:"r" help:"Repeat rule." enum:"none,daily,weekly,monthly" default:"none"`
	Category   string `short:"c" help:"Tracker category (habits, goals, fitness, wellness, productivity)."`
	Inactive   bool   `help:"Create the reminder switched off."`
}

func (c *ReminderAddCmd) Validate() error {
	if c.Category != "" && !slices.Contains(constants.TrackerCategories, c.Category) {
		return fmt.Errorf("invalid category %q (expected one of %s)", c.Category, strings.Join(constants.TrackerCategories, ", "))
	}
	return nil
}

func (c *ReminderAddCmd) Run(ctx *cli.Context) error {
	due, err := utils.ParseDateTimeInLocation(c.At, ctx.Loc())
	if err != nil {
		return err
	}

	reminder := models.Reminder{
		ReminderTitle:    strings.TrimSpace(c.Title),
		ReminderDateTime: due,
		RecurrenceRule:   constants.RecurrenceRule(c.Recurrence),
		IsActive:         !c.Inactive,
		TrackerCategory:  c.Category,
	}
	if err := reminder.Validate(); err != nil {
		return err
	}

	rctx, cancel := ctx.Timeout()
	defer cancel()

	stored, err := collection.For[models.Reminder](ctx.Provider).Create(rctx, reminder.WithID(uuid.NewString()))
	if err != nil {
		return fmt.Errorf("failed to add reminder: %w", err)
	}

	fmt.Printf("✓ Reminder added: %s at %s (%s) [%s]\n",
		stored.ReminderTitle, utils.FormatDateTime(stored.ReminderDateTime, ctx.Loc()), stored.FormatRecurrence(), cli.ShortID(stored.ID))
	return nil
}
