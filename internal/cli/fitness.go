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

type FitnessCmd struct {
	Log    FitnessLogCmd    `cmd:"" help:"Log a fitness activity."`
	List   FitnessListCmd   `cmd:"" help:"List fitness activities with totals."`
	Delete FitnessDeleteCmd `cmd:"" help:"Delete a fitness activity."`
}

type FitnessLogCmd struct {
	Activity string `arg:"" help:"Activity type, e.g. Running."`
	Duration int    `short:"d" help:"Duration in minutes." required:""`
	Calories int    `short:"c" help:"Calories burned." default:"0"`
	Date     string `help:"Activity date (YYYY-MM-DD, default today)."`
	Notes    string `short:"n" help:"Performance notes."`
}

func (c *FitnessLogCmd) Run(ctx *Context) error {
	date := strings.TrimSpace(c.Date)
	if date == "" {
		date = utils.Today(ctx.now(), ctx.Loc())
	}
	activity := models.FitnessActivity{
		ActivityType:     strings.TrimSpace(c.Activity),
		Duration:         c.Duration,
		CaloriesBurned:   c.Calories,
		ActivityDate:     date,
		PerformanceNotes: strings.TrimSpace(c.Notes),
	}
	if err := activity.Validate(); err != nil {
		return err
	}

	rctx, cancel := ctx.Timeout()
	defer cancel()

	stored, err := collection.For[models.FitnessActivity](ctx.Provider).Create(rctx, activity.WithID(uuid.NewString()))
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	fmt.Printf("✓ Logged %s: %s, %d kcal on %s [%s]\n",
		stored.ActivityType, utils.FormatDuration(stored.Duration), stored.CaloriesBurned, stored.ActivityDate, ShortID(stored.ID))
	return nil
}

type FitnessListCmd struct {
	Limit int `short:"n" help:"Show at most this many activities (0 for all)." default:"0"`
}

func (c *FitnessListCmd) Run(ctx *Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	activities, err := collection.For[models.FitnessActivity](ctx.Provider).ListAll(rctx, nil, collection.Options{Limit: c.Limit})
	if err != nil {
		return err
	}

	if len(activities) == 0 {
		fmt.Println("No fitness activities logged.")
		return nil
	}

	fmt.Printf("%-8s %-20s %-10s %-9s %-8s %s\n", "ID", "Activity", "Date", "Duration", "Calories", "Notes")
	fmt.Println(strings.Repeat("-", 80))
	for _, a := range activities {
		fmt.Printf("%-8s %-20s %-10s %-9s %-8d %s\n",
			ShortID(a.ID), Truncate(a.ActivityType, 20), a.ActivityDate, utils.FormatDuration(a.Duration), a.CaloriesBurned, Truncate(a.PerformanceNotes, 20))
	}

	totals := dashboard.FitnessSummary(activities)
	fmt.Printf("\nTotal: %d kcal over %s\n", totals.Calories, utils.FormatDuration(totals.Minutes))
	return nil
}

type FitnessDeleteCmd struct {
	ID string `arg:"" help:"Activity ID (or unique prefix)."`
}

func (c *FitnessDeleteCmd) Run(ctx *Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	activity, err := Find[models.FitnessActivity](rctx, ctx.Provider, c.ID)
	if err != nil {
		return err
	}
	if err := collection.For[models.FitnessActivity](ctx.Provider).Delete(rctx, activity.ID); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}

	fmt.Printf("✓ Deleted activity: %s on %s\n", activity.ActivityType, activity.ActivityDate)
	return nil
}
