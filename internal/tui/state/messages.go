package state

import (
	"github.com/julianstephens/quantumlife/internal/dashboard"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/preferences"
	"github.com/julianstephens/quantumlife/internal/reminders"
)

// ChangedMsg is sent after any controller list changed.
type ChangedMsg struct{}

// StoreErrorMsg reports a failed store call. The controller has already
// reloaded its list.
type StoreErrorMsg struct {
	Collection string
	Op         string
	Err        error
}

type ReminderDueMsg struct {
	Notification reminders.Notification
}

// FlashExpiredMsg clears the reminder banner if it is still showing ID.
type FlashExpiredMsg struct {
	ID int
}

type DashboardLoadedMsg struct {
	Snapshot dashboard.Snapshot
	Err      error
}

type SettingsLoadedMsg struct {
	Settings   models.UserSettings
	Saved      bool
	Resolution preferences.Resolution
	Err        error
}

type SettingsSavedMsg struct {
	Settings models.UserSettings
	Err      error
}

// ValidationMsg carries the outcome of a background data check.
type ValidationMsg struct {
	Warning string
}
