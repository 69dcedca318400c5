package handlers

import (
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/tui/state"
	"github.com/julianstephens/quantumlife/internal/validation"
)

// FormTheme picks the huh theme matching the resolved app theme.
func FormTheme(theme constants.ThemePreference) *huh.Theme {
	if theme == constants.ThemeLight {
		return huh.ThemeBase()
	}
	return huh.ThemeDracula()
}

// NewHabitForm creates a new form for adding or editing habits
func NewHabitForm(fm *state.HabitFormModel, theme constants.ThemePreference) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Name).
				Validate(validation.Required("habit name")),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(huh.NewOptions(constants.HabitFrequencies...)...).
				Value(&fm.Frequency),
			huh.NewInput().
				Title("Image URL").
				Description("Optional").
				Value(&fm.Image),
		),
	).WithTheme(FormTheme(theme))
}

// NewGoalForm creates a new form for adding or editing goals
func NewGoalForm(fm *state.GoalFormModel, theme constants.ThemePreference) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal").
				Value(&fm.Title).
				Validate(validation.Required("goal title")),
			huh.NewText().
				Title("Description (optional)").
				Value(&fm.Description),
			huh.NewInput().
				Title("Target Date (YYYY-MM-DD)").
				Description("Optional").
				Value(&fm.TargetDate).
				Validate(validation.OptionalDate("target date")),
			huh.NewInput().
				Title("Progress (%)").
				Description("Leave empty if not started").
				Value(&fm.Progress).
				Validate(validation.OptionalIntRange("progress", 0, constants.MaxProgress)),
			huh.NewInput().
				Title("Category").
				Value(&fm.Category),
		),
	).WithTheme(FormTheme(theme))
}

// NewFitnessForm creates a new form for logging fitness activities
func NewFitnessForm(fm *state.FitnessFormModel, theme constants.ThemePreference) *huh.Form {
	date := validation.OptionalDate("date")
	required := validation.Required("date")
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity").
				Placeholder("Running, Yoga, ...").
				Value(&fm.Activity).
				Validate(validation.Required("activity type")),
			huh.NewInput().
				Title("Duration (min)").
				Value(&fm.Duration).
				Validate(validation.IntRange("duration", 1, 24*60)),
			huh.NewInput().
				Title("Calories Burned").
				Value(&fm.Calories).
				Validate(validation.NonNegativeInt("calories")),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&fm.Date).
				Validate(func(s string) error {
					if err := required(s); err != nil {
						return err
					}
					return date(s)
				}),
			huh.NewText().
				Title("Notes (optional)").
				Value(&fm.Notes),
		),
	).WithTheme(FormTheme(theme))
}

// NewWellnessForm creates a new form for wellness check-ins
func NewWellnessForm(fm *state.WellnessFormModel, theme constants.ThemePreference) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mood (1-10)").
				Value(&fm.Mood).
				Validate(validation.IntRange("mood", constants.MinRating, constants.MaxRating)),
			huh.NewInput().
				Title("Stress (1-10)").
				Value(&fm.Stress).
				Validate(validation.IntRange("stress", constants.MinRating, constants.MaxRating)),
			huh.NewInput().
				Title("Energy (1-10)").
				Value(&fm.Energy).
				Validate(validation.IntRange("energy", constants.MinRating, constants.MaxRating)),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Journal (optional)").
				Value(&fm.Journal),
			huh.NewInput().
				Title("Activity (optional)").
				Value(&fm.Activity),
		),
	).WithTheme(FormTheme(theme))
}

// NewProductivityForm creates a new form for logging work sessions
func NewProductivityForm(fm *state.ProductivityFormModel, theme constants.ThemePreference) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task or Session").
				Value(&fm.Name).
				Validate(validation.Required("task name")),
			huh.NewInput().
				Title("Duration (min)").
				Value(&fm.Duration).
				Validate(validation.IntRange("duration", 1, 24*60)),
			huh.NewInput().
				Title("Productivity Score (1-10)").
				Value(&fm.Score).
				Validate(validation.IntRange("score", constants.MinRating, constants.MaxRating)),
			huh.NewInput().
				Title("Category Tag").
				Description("Optional").
				Value(&fm.Tag),
		),
	).WithTheme(FormTheme(theme))
}

// NewReminderForm creates a new form for adding or editing reminders
func NewReminderForm(fm *state.ReminderFormModel, loc *time.Location, theme constants.ThemePreference) *huh.Form {
	categories := []huh.Option[string]{huh.NewOption("None", "")}
	categories = append(categories, huh.NewOptions(constants.TrackerCategories...)...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(validation.Required("reminder title")),
			huh.NewInput().
				Title("When (YYYY-MM-DD HH:MM)").
				Value(&fm.At).
				Validate(validation.DateTime("date and time", loc)),
			huh.NewSelect[constants.RecurrenceRule]().
				Title("Repeat").
				Options(
					huh.NewOption("Once", constants.RecurrenceNone),
					huh.NewOption("Daily", constants.RecurrenceDaily),
					huh.NewOption("Weekly", constants.RecurrenceWeekly),
					huh.NewOption("Monthly", constants.RecurrenceMonthly),
				).
				Value(&fm.Recurrence),
			huh.NewSelect[string]().
				Title("Tracker").
				Options(categories...).
				Value(&fm.Category),
			huh.NewConfirm().
				Title("Active").
				Value(&fm.Active),
		),
	).WithTheme(FormTheme(theme))
}

// NewPostForm creates a new form for community posts. The author is only
// asked for when creating.
func NewPostForm(fm *state.PostFormModel, editing bool, theme constants.ThemePreference) *huh.Form {
	var fields []huh.Field
	if !editing {
		fields = append(fields, huh.NewInput().
			Title("Display Name").
			Value(&fm.Author).
			Validate(validation.Required("display name")))
	}
	fields = append(fields,
		huh.NewText().
			Title("Post").
			Value(&fm.Content).
			Validate(validation.Required("post content")),
		huh.NewInput().
			Title("Media URL").
			Description("Optional").
			Value(&fm.Media),
	)
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(FormTheme(theme))
}

// NewSettingsForm creates a new form for editing settings
func NewSettingsForm(fm *state.SettingsFormModel, theme constants.ThemePreference) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[constants.ThemePreference]().
				Title("Theme").
				Options(
					huh.NewOption("Dark", constants.ThemeDark),
					huh.NewOption("Light", constants.ThemeLight),
					huh.NewOption("Match terminal", constants.ThemeAuto),
				).
				Value(&fm.Theme),
			huh.NewSelect[string]().
				Title("Language").
				Options(huh.NewOptions(constants.Languages...)...).
				Value(&fm.Language),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable Notifications").
				Value(&fm.EnableNotifications),
			huh.NewConfirm().
				Title("Notification Sound").
				Value(&fm.NotificationSound),
			huh.NewConfirm().
				Title("Share Activity Data").
				Value(&fm.ShareActivityData),
		),
	).WithTheme(FormTheme(theme))
}

// NewConfirmationForm creates a yes/no form for fm.Message
func NewConfirmationForm(fm *state.ConfirmationFormModel, theme constants.ThemePreference) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fm.Message).
				Affirmative("Yes").
				Negative("No").
				Value(&fm.Confirmed),
		),
	).WithTheme(FormTheme(theme))
}
