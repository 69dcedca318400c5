package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/dashboard"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/utils"
)

type WellnessCmd struct {
	Checkin WellnessCheckinCmd `cmd:"" help:"Record a wellness check-in."`
	List    WellnessListCmd    `cmd:"" help:"List check-ins with averages."`
	Delete  WellnessDeleteCmd  `cmd:"" help:"Delete a check-in."`
}

type WellnessCheckinCmd struct {
	Mood     int    `short:"m" help:"Mood rating (1-10)." default:"5"`
	Stress   int    `short:"s" help:"Stress level (1-10)." default:"5"`
	Energy   int    `short:"e" help:"Energy level (1-10)." default:"5"`
	Journal  string `short:"j" help:"Journal entry."`
	Activity string `short:"a" help:"What you were doing."`
	At       string `help:"Check-in time (YYYY-MM-DD HH:MM, default now)."`
}

func (c *WellnessCheckinCmd) Run(ctx *Context) error {
	at := ctx.Clock()
	if c.At != "" {
		t, err := utils.ParseDateTimeInLocation(c.At, ctx.Loc())
		if err != nil {
			return err
		}
		at = t
	}

	checkin := models.NewWellnessCheckin(at)
	checkin.MoodRating = c.Mood
	checkin.StressLevel = c.Stress
	checkin.EnergyLevel = c.Energy
	checkin.JournalEntry = strings.TrimSpace(c.Journal)
	checkin.ActivityType = strings.TrimSpace(c.Activity)
	if err := checkin.Validate(); err != nil {
		return err
	}

	rctx, cancel := ctx.Timeout()
	defer cancel()

	stored, err := collection.For[models.WellnessCheckin](ctx.Provider).Create(rctx, checkin.WithID(uuid.NewString()))
	if err != nil {
		return fmt.Errorf("failed to record check-in: %w", err)
	}

	fmt.Printf("✓ Checked in: mood %d, stress %d, energy %d [%s]\n",
		stored.MoodRating, stored.StressLevel, stored.EnergyLevel, ShortID(stored.ID))
	return nil
}

type WellnessListCmd struct {
	Limit int `short:"n" help:"Show at most this many check-ins (0 for all)." default:"0"`
}

func (c *WellnessListCmd) Run(ctx *Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	checkins, err := collection.For[models.WellnessCheckin](ctx.Provider).ListAll(rctx, nil, collection.Options{Limit: c.Limit})
	if err != nil {
		return err
	}

	if len(checkins) == 0 {
		fmt.Println("No check-ins recorded.")
		return nil
	}

	fmt.Printf("%-8s %-18s %-5s %-7s %-7s %s\n", "ID", "When", "Mood", "Stress", "Energy", "Journal")
	fmt.Println(strings.Repeat("-", 80))
	for _, w := range checkins {
		fmt.Printf("%-8s %-18s %-5d %-7d %-7d %s\n",
			ShortID(w.ID), w.CheckinDateTime.In(ctx.Loc()).Format(constants.DisplayDateTimeFormat),
			w.MoodRating, w.StressLevel, w.EnergyLevel, Truncate(w.JournalEntry, 28))
	}

	avg := dashboard.WellnessSummary(checkins)
	n := len(checkins)
	fmt.Printf("\nAverages: mood %s, stress %s, energy %s\n",
		dashboard.FormatAverage(avg.Mood, n), dashboard.FormatAverage(avg.Stress, n), dashboard.FormatAverage(avg.Energy, n))
	return nil
}

type WellnessDeleteCmd struct {
	ID string `arg:"" help:"Check-in ID (or unique prefix)."`
}

func (c *WellnessDeleteCmd) Run(ctx *Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	checkin, err := Find[models.WellnessCheckin](rctx, ctx.Provider, c.ID)
	if err != nil {
		return err
	}
	if err := collection.For[models.WellnessCheckin](ctx.Provider).Delete(rctx, checkin.ID); err != nil {
		return fmt.Errorf("failed to delete check-in: %w", err)
	}

	fmt.Printf("✓ Deleted check-in from %s\n", utils.FormatDateTime(checkin.CheckinDateTime, ctx.Loc()))
	return nil
}
