package constants

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SessionState represents the current state of the TUI application
type SessionState int

// RecurrenceRule represents how a reminder repeats
type RecurrenceRule string

// ThemePreference represents the color scheme chosen by the user
type ThemePreference string

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Message string
	Action  func() tea.Cmd
}

const (
	AppName            = "quantumlife"
	DisplayName        = "QuantumLife"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/quantumlife/quantumlife.db"
	Version            = "v0.1.0"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "quantumlife-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "quantumlife-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.quantumlife"
	TrayExecutable         = "quantumlife-tray"
	TraySecretHeader       = "X-QuantumLife-Secret"

	// Reminder polling
	ReminderPollInterval = 60 * time.Second
	ReminderPollSpec     = "@every 60s"

	// Dashboard
	DashboardRecentLimit = 5

	// Recurrence constants
	RecurrenceNone    RecurrenceRule = "none"
	RecurrenceDaily   RecurrenceRule = "daily"
	RecurrenceWeekly  RecurrenceRule = "weekly"
	RecurrenceMonthly RecurrenceRule = "monthly"

	// Theme constants
	ThemeDark  ThemePreference = "dark"
	ThemeLight ThemePreference = "light"
	ThemeAuto  ThemePreference = "auto"
)

// Session States
const (
	StateDashboard SessionState = iota
	StateHabits
	StateGoals
	StateFitness
	StateWellness
	StateProductivity
	StateReminders
	StateCommunity
	StateSettings
	StateForm
	StateConfirmDelete
)

// Collection names in the store
const (
	CollectionHabits            = "habits"
	CollectionGoals             = "goals"
	CollectionFitnessActivities = "fitnessactivities"
	CollectionWellnessCheckins  = "wellnesscheckins"
	CollectionProductivityLogs  = "productivitylogs"
	CollectionReminders         = "reminders"
	CollectionCommunityPosts    = "communityposts"
	CollectionUserSettings      = "usersettings"
)

// Collections lists every collection the store accepts.
var Collections = []string{
	CollectionHabits,
	CollectionGoals,
	CollectionFitnessActivities,
	CollectionWellnessCheckins,
	CollectionProductivityLogs,
	CollectionReminders,
	CollectionCommunityPosts,
	CollectionUserSettings,
}

// IsCollection reports whether name is a known collection.
func IsCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}
