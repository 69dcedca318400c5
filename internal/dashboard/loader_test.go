package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/collection/memory"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/models"
)

type brokenStore struct {
	*memory.Store
	broken string
}

func (s brokenStore) ListAll(ctx context.Context, name string, filter collection.Filter, opts collection.Options) (collection.Result, error) {
	if name == s.broken {
		return collection.Result{}, errors.New("connection reset")
	}
	return s.Store.ListAll(ctx, name, filter, opts)
}

func TestLoader_Load(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	habits := collection.For[models.Habit](store)
	for i := range 7 {
		h := models.Habit{Meta: models.Meta{ID: fmt.Sprintf("h%d", i)}, HabitName: "habit", IsCompleted: i%2 == 0}
		if _, err := habits.Create(ctx, h); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	wellness := collection.For[models.WellnessCheckin](store)
	for i, mood := range []int{4, 8} {
		if _, err := wellness.Create(ctx, models.WellnessCheckin{Meta: models.Meta{ID: fmt.Sprintf("w%d", i)}, MoodRating: mood}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	reminders := collection.For[models.Reminder](store)
	for i, active := range []bool{true, false} {
		if _, err := reminders.Create(ctx, models.Reminder{Meta: models.Meta{ID: fmt.Sprintf("r%d", i)}, ReminderTitle: "r", IsActive: active}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	l := NewLoader(store, 0)
	l.now = func() time.Time { return fixed }

	snap, err := l.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(snap.Habits) != constants.DashboardRecentLimit {
		t.Errorf("habits loaded = %d, want limit %d", len(snap.Habits), constants.DashboardRecentLimit)
	}
	if !snap.LoadedAt.Equal(fixed) {
		t.Errorf("LoadedAt = %v", snap.LoadedAt)
	}

	sum := snap.Summary()
	if sum.CompletedHabits != 3 || sum.TotalHabits != 5 {
		t.Errorf("completed = %d/%d, want 3/5", sum.CompletedHabits, sum.TotalHabits)
	}
	if sum.AverageMood != 6.0 || sum.MoodCheckins != 2 {
		t.Errorf("average mood = %v over %d", sum.AverageMood, sum.MoodCheckins)
	}
	for _, tc := range sum.Trackers {
		if tc.State == constants.StateReminders && tc.Count != 1 {
			t.Errorf("reminder card count = %d, want active reminders 1", tc.Count)
		}
	}
}

func TestLoader_LoadFailsAsWhole(t *testing.T) {
	store := brokenStore{Store: memory.New(), broken: constants.CollectionGoals}

	_, err := NewLoader(store, 5).Load(context.Background())
	if err == nil {
		t.Fatal("Load() should fail when one collection fails")
	}
}
