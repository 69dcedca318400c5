package constants

const (
	// Local preference cache
	PreferencesKey      = "quantumlife-theme"
	PreferencesFileName = PreferencesKey + ".json"

	// Default Settings Values
	DefaultTheme               = ThemeDark
	DefaultLanguage            = "en"
	DefaultEnableNotifications = true
	DefaultNotificationSound   = true
	DefaultShareActivityData   = false

	// Form defaults
	DefaultHabitFrequency = "Daily"
	DefaultWellnessRating = 5
	MinRating             = 1
	MaxRating             = 10
	MaxProgress           = 100
)

// HabitFrequencies are the frequency labels offered when creating a habit.
var HabitFrequencies = []string{"Daily", "Weekly", "Monthly"}

// Languages are the language codes offered in settings.
var Languages = []string{"en", "es", "fr", "de", "ja"}

// TrackerCategories are the categories a reminder can belong to.
var TrackerCategories = []string{"habits", "goals", "fitness", "wellness", "productivity"}
