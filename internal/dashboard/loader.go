package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/logger"
	"github.com/julianstephens/quantumlife/internal/models"
)

// Snapshot holds the abbreviated lists the dashboard renders.
type Snapshot struct {
	Habits       []models.Habit
	Goals        []models.Goal
	Fitness      []models.FitnessActivity
	Wellness     []models.WellnessCheckin
	Productivity []models.ProductivityLog
	Reminders    []models.Reminder
	LoadedAt     time.Time
}

// TrackerCount is one card of the dashboard overview.
type TrackerCount struct {
	Title string
	State constants.SessionState
	Count int
}

type Summary struct {
	CompletedHabits int
	TotalHabits     int
	ActiveGoals     int
	AverageMood     float64
	MoodCheckins    int
	Trackers        []TrackerCount
}

func (s Snapshot) Summary() Summary {
	done, total := CompletedHabits(s.Habits)
	return Summary{
		CompletedHabits: done,
		TotalHabits:     total,
		ActiveGoals:     ActiveGoals(s.Goals),
		AverageMood:     AverageMood(s.Wellness),
		MoodCheckins:    len(s.Wellness),
		Trackers: []TrackerCount{
			{Title: "Habits", State: constants.StateHabits, Count: len(s.Habits)},
			{Title: "Goals", State: constants.StateGoals, Count: len(s.Goals)},
			{Title: "Productivity", State: constants.StateProductivity, Count: len(s.Productivity)},
			{Title: "Fitness", State: constants.StateFitness, Count: len(s.Fitness)},
			{Title: "Wellness", State: constants.StateWellness, Count: len(s.Wellness)},
			{Title: "Reminders", State: constants.StateReminders, Count: ActiveReminders(s.Reminders)},
		},
	}
}

// Loader fetches the first few records of every tracker in parallel.
type Loader struct {
	provider collection.Provider
	limit    int
	now      func() time.Time
}

func NewLoader(p collection.Provider, limit int) *Loader {
	if limit <= 0 {
		limit = constants.DashboardRecentLimit
	}
	return &Loader{provider: p, limit: limit, now: time.Now}
}

// Load fails as a whole if any list fails.
func (l *Loader) Load(ctx context.Context) (Snapshot, error) {
	var s Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(listInto(ctx, l.provider, l.limit, &s.Habits))
	g.Go(listInto(ctx, l.provider, l.limit, &s.Goals))
	g.Go(listInto(ctx, l.provider, l.limit, &s.Fitness))
	g.Go(listInto(ctx, l.provider, l.limit, &s.Wellness))
	g.Go(listInto(ctx, l.provider, l.limit, &s.Productivity))
	g.Go(listInto(ctx, l.provider, l.limit, &s.Reminders))

	if err := g.Wait(); err != nil {
		logger.Error("Failed to load dashboard", "error", err)
		return Snapshot{}, err
	}
	s.LoadedAt = l.now()
	return s, nil
}

func listInto[T models.Record[T]](ctx context.Context, p collection.Provider, limit int, dst *[]T) func() error {
	return func() error {
		coll := collection.For[T](p)
		items, err := coll.ListAll(ctx, nil, collection.Options{Limit: limit})
		if err != nil {
			return fmt.Errorf("load %s: %w", coll.Name(), err)
		}
		*dst = items
		return nil
	}
}
