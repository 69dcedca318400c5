package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/models"
)

// IssueType represents the type of data issue
type IssueType string

const (
	IssueInvalidRecord      IssueType = "invalid_record"
	IssueDuplicateHabitName IssueType = "duplicate_habit_name"
	IssueStaleReminder      IssueType = "stale_reminder"
	IssueOverdueGoal        IssueType = "overdue_goal"
	IssueMultipleSettings   IssueType = "multiple_settings"
)

// Issue is one problem found in stored records
type Issue struct {
	Type        IssueType
	Collection  string
	IDs         []string
	Description string
}

// Result contains all detected issues
type Result struct {
	Issues []Issue
}

// HasIssues returns true if there are any issues
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// FormatReport returns a human-readable report of all issues
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}

	var sb strings.Builder
	sb.WriteString("Issues detected:\n")
	for _, issue := range r.Issues {
		sb.WriteString(fmt.Sprintf("- %s\n", issue.Description))
	}
	return sb.String()
}

// Data is everything loaded from the store for a check.
type Data struct {
	Habits       []models.Habit
	Goals        []models.Goal
	Fitness      []models.FitnessActivity
	Wellness     []models.WellnessCheckin
	Productivity []models.ProductivityLog
	Reminders    []models.Reminder
	Posts        []models.CommunityPost
	Settings     []models.UserSettings
}

type validatable interface {
	GetID() string
	Validate() error
}

// Validator checks stored records for problems the forms would have rejected
// and for data that has gone stale.
type Validator struct {
	now func() time.Time
}

// New creates a new Validator
func New() *Validator {
	return &Validator{now: time.Now}
}

func (v *Validator) Validate(data Data) Result {
	result := Result{Issues: []Issue{}}

	checkRecords(&result, constants.CollectionHabits, data.Habits)
	checkRecords(&result, constants.CollectionGoals, data.Goals)
	checkRecords(&result, constants.CollectionFitnessActivities, data.Fitness)
	checkRecords(&result, constants.CollectionWellnessCheckins, data.Wellness)
	checkRecords(&result, constants.CollectionProductivityLogs, data.Productivity)
	checkRecords(&result, constants.CollectionReminders, data.Reminders)
	checkRecords(&result, constants.CollectionCommunityPosts, data.Posts)
	checkRecords(&result, constants.CollectionUserSettings, data.Settings)

	// Habit names are compared case-insensitively
	names := make(map[string][]string)
	for _, h := range data.Habits {
		key := strings.ToLower(strings.TrimSpace(h.HabitName))
		if key == "" {
			continue
		}
		names[key] = append(names[key], h.ID)
	}
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, name := range keys {
		if ids := names[name]; len(ids) > 1 {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueDuplicateHabitName,
				Collection:  constants.CollectionHabits,
				IDs:         ids,
				Description: fmt.Sprintf("Duplicate habit name: %q (IDs: %v)", name, ids),
			})
		}
	}

	now := v.now()

	// A one-off reminder in the past will never fire again
	for _, r := range data.Reminders {
		if r.IsActive && !r.IsRecurring() && !r.ReminderDateTime.IsZero() && r.ReminderDateTime.Before(now) {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueStaleReminder,
				Collection:  constants.CollectionReminders,
				IDs:         []string{r.ID},
				Description: fmt.Sprintf("Reminder %q is active but was due %s", r.ReminderTitle, r.ReminderDateTime.Local().Format(constants.DisplayDateTimeFormat)),
			})
		}
	}

	today := now.Format(constants.DateFormat)
	for _, g := range data.Goals {
		if g.IsActive() && g.TargetDate != "" && g.TargetDate < today {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueOverdueGoal,
				Collection:  constants.CollectionGoals,
				IDs:         []string{g.ID},
				Description: fmt.Sprintf("Goal %q passed its target date %s at %d%%", g.GoalTitle, g.TargetDate, g.Progress()),
			})
		}
	}

	if len(data.Settings) > 1 {
		ids := make([]string, len(data.Settings))
		for i, s := range data.Settings {
			ids[i] = s.ID
		}
		result.Issues = append(result.Issues, Issue{
			Type:        IssueMultipleSettings,
			Collection:  constants.CollectionUserSettings,
			IDs:         ids,
			Description: fmt.Sprintf("Found %d settings records; only the first is used", len(ids)),
		})
	}

	return result
}

func checkRecords[T validatable](result *Result, collection string, records []T) {
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueInvalidRecord,
				Collection:  collection,
				IDs:         []string{rec.GetID()},
				Description: fmt.Sprintf("%s %s: %v", collection, rec.GetID(), err),
			})
		}
	}
}
