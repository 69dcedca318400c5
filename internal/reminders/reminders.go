// Package reminders finds reminders that are about to fall due and hands
// them to notification sinks, at most once per occurrence.
package reminders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/models"
)

// Notification is one due occurrence of a reminder.
type Notification struct {
	Reminder models.Reminder
	Due      time.Time
}

func (n Notification) Title() string {
	return "Reminder: " + n.Reminder.ReminderTitle
}

func (n Notification) Body() string {
	body := "Due " + n.Due.Local().Format(constants.DisplayDateTimeFormat)
	if n.Reminder.TrackerCategory != "" {
		body = fmt.Sprintf("%s · %s", n.Reminder.TrackerCategory, body)
	}
	return body
}

// Sink delivers notifications somewhere a user will see them.
type Sink interface {
	Notify(ctx context.Context, n Notification) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, n Notification) error

func (f SinkFunc) Notify(ctx context.Context, n Notification) error {
	return f(ctx, n)
}

// Lister is the part of a typed collection the watcher reads from.
type Lister interface {
	ListAll(ctx context.Context, filter collection.Filter, opts collection.Options) ([]models.Reminder, error)
}

// Due returns the active reminders with an occurrence in [now, now+window].
func Due(reminders []models.Reminder, now time.Time, window time.Duration) []Notification {
	var out []Notification
	for _, r := range reminders {
		if !r.IsDueWithin(now, window) {
			continue
		}
		out = append(out, Notification{Reminder: r, Due: r.NextDue(now)})
	}
	return out
}

// Tracker remembers which occurrence of each reminder was last notified.
type Tracker struct {
	mu       sync.Mutex
	notified map[string]time.Time
}

func NewTracker() *Tracker {
	return &Tracker{notified: make(map[string]time.Time)}
}

// Filter drops notifications whose occurrence was already sent and records
// the rest. Reminders missing from current are forgotten.
func (t *Tracker) Filter(current []models.Reminder, due []Notification) []Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	live := make(map[string]bool, len(current))
	for _, r := range current {
		live[r.ID] = true
	}
	for id := range t.notified {
		if !live[id] {
			delete(t.notified, id)
		}
	}

	var fresh []Notification
	for _, n := range due {
		if last, ok := t.notified[n.Reminder.ID]; ok && last.Equal(n.Due) {
			continue
		}
		t.notified[n.Reminder.ID] = n.Due
		fresh = append(fresh, n)
	}
	return fresh
}

// LastNotified returns the occurrence last notified for id.
func (t *Tracker) LastNotified(id string) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	ts, ok := t.notified[id]
	return ts, ok
}
