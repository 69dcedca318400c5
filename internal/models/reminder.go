package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/quantumlife/internal/constants"
)

type Reminder struct {
	Meta
	ReminderTitle    string                   `json:"reminderTitle"`
	ReminderDateTime time.Time                `json:"reminderDateTime"`
	RecurrenceRule   constants.RecurrenceRule `json:"recurrenceRule,omitempty"`
	IsActive         bool                     `json:"isActive"`
	TrackerCategory  string                   `json:"trackerCategory,omitempty"`
}

func (Reminder) CollectionName() string { return constants.CollectionReminders }

func (r Reminder) WithID(id string) Reminder {
	r.ID = id
	return r
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.ReminderTitle) == "" {
		return fmt.Errorf("reminder title cannot be empty")
	}
	if r.ReminderDateTime.IsZero() {
		return fmt.Errorf("reminder date and time cannot be empty")
	}
	switch r.RecurrenceRule {
	case "", constants.RecurrenceNone, constants.RecurrenceDaily, constants.RecurrenceWeekly, constants.RecurrenceMonthly:
	default:
		return fmt.Errorf("unknown recurrence rule %q", r.RecurrenceRule)
	}
	return nil
}

// IsRecurring returns true if the reminder repeats
func (r Reminder) IsRecurring() bool {
	switch r.RecurrenceRule {
	case constants.RecurrenceDaily, constants.RecurrenceWeekly, constants.RecurrenceMonthly:
		return true
	default:
		return false
	}
}

// NextDue returns the first occurrence at or after from. One-off reminders
// always return their stored time, even when it is already in the past.
func (r Reminder) NextDue(from time.Time) time.Time {
	base := r.ReminderDateTime
	if !r.IsRecurring() || !base.Before(from) {
		return base
	}

	var step func(n int) time.Time
	var n int
	switch r.RecurrenceRule {
	case constants.RecurrenceDaily:
		step = func(n int) time.Time { return base.AddDate(0, 0, n) }
		n = int(from.Sub(base) / (24 * time.Hour))
	case constants.RecurrenceWeekly:
		step = func(n int) time.Time { return base.AddDate(0, 0, 7*n) }
		n = int(from.Sub(base) / (7 * 24 * time.Hour))
	case constants.RecurrenceMonthly:
		step = func(n int) time.Time { return base.AddDate(0, n, 0) }
		n = (from.Year()-base.Year())*12 + int(from.Month()-base.Month()) - 1
	}
	if n < 0 {
		n = 0
	}

	// The estimate lands at or just before from, so this loop runs a step or two.
	next := step(n)
	for next.Before(from) {
		n++
		next = step(n)
	}
	return next
}

// IsDueWithin reports whether an active reminder has an occurrence in [now, now+window].
func (r Reminder) IsDueWithin(now time.Time, window time.Duration) bool {
	if !r.IsActive {
		return false
	}
	due := r.NextDue(now)
	return !due.Before(now) && !due.After(now.Add(window))
}

// ToggleActive returns the patch that flips the active flag.
func (r Reminder) ToggleActive() ReminderPatch {
	active := !r.IsActive
	return ReminderPatch{IsActive: &active}
}

// FormatRecurrence returns a human-readable string describing the reminder's recurrence pattern
func (r Reminder) FormatRecurrence() string {
	switch r.RecurrenceRule {
	case constants.RecurrenceDaily:
		return "Daily"
	case constants.RecurrenceWeekly:
		return fmt.Sprintf("Weekly on %s", r.ReminderDateTime.Weekday().String()[:3])
	case constants.RecurrenceMonthly:
		return fmt.Sprintf("Monthly on day %d", r.ReminderDateTime.Day())
	default:
		return "Once"
	}
}

type ReminderPatch struct {
	ReminderTitle    *string                   `json:"reminderTitle,omitempty"`
	ReminderDateTime *time.Time                `json:"reminderDateTime,omitempty"`
	RecurrenceRule   *constants.RecurrenceRule `json:"recurrenceRule,omitempty"`
	IsActive         *bool                     `json:"isActive,omitempty"`
	TrackerCategory  *string                   `json:"trackerCategory,omitempty"`
}

func (p ReminderPatch) Apply(r Reminder) Reminder {
	setString(&r.ReminderTitle, p.ReminderTitle)
	setTime(&r.ReminderDateTime, p.ReminderDateTime)
	if p.RecurrenceRule != nil {
		r.RecurrenceRule = *p.RecurrenceRule
	}
	setBool(&r.IsActive, p.IsActive)
	setString(&r.TrackerCategory, p.TrackerCategory)
	return r
}
