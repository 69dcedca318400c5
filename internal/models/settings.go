package models

import (
	"fmt"

	"github.com/julianstephens/quantumlife/internal/constants"
)

// UserSettings is the per-user settings record. There is at most one per store.
type UserSettings struct {
	Meta
	ThemePreference     constants.ThemePreference `json:"themePreference"`
	LanguagePreference  string                    `json:"languagePreference"`
	EnableNotifications bool                      `json:"enableNotifications"`
	NotificationSound   bool                      `json:"notificationSound"`
	ShareActivityData   bool                      `json:"shareActivityData"`
}

func (UserSettings) CollectionName() string { return constants.CollectionUserSettings }

func (s UserSettings) WithID(id string) UserSettings {
	s.ID = id
	return s
}

// DefaultUserSettings returns the settings used before anything is saved.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		ThemePreference:     constants.DefaultTheme,
		LanguagePreference:  constants.DefaultLanguage,
		EnableNotifications: constants.DefaultEnableNotifications,
		NotificationSound:   constants.DefaultNotificationSound,
		ShareActivityData:   constants.DefaultShareActivityData,
	}
}

// ApplyDefaultSettings fills in missing values.
func ApplyDefaultSettings(s *UserSettings) {
	if s.ThemePreference == "" {
		s.ThemePreference = constants.DefaultTheme
	}
	if s.LanguagePreference == "" {
		s.LanguagePreference = constants.DefaultLanguage
	}
}

// ValidTheme reports whether theme is one of the supported preferences.
func ValidTheme(theme constants.ThemePreference) bool {
	switch theme {
	case constants.ThemeDark, constants.ThemeLight, constants.ThemeAuto:
		return true
	}
	return false
}

func (s UserSettings) Validate() error {
	if !ValidTheme(s.ThemePreference) {
		return fmt.Errorf("invalid theme %q (expected dark, light or auto)", s.ThemePreference)
	}
	if s.LanguagePreference == "" {
		return fmt.Errorf("language cannot be empty")
	}
	return nil
}

// Patch returns a patch carrying every settings field, used when saving the form.
func (s UserSettings) Patch() UserSettingsPatch {
	return UserSettingsPatch{
		ThemePreference:     &s.ThemePreference,
		LanguagePreference:  &s.LanguagePreference,
		EnableNotifications: &s.EnableNotifications,
		NotificationSound:   &s.NotificationSound,
		ShareActivityData:   &s.ShareActivityData,
	}
}

type UserSettingsPatch struct {
	ThemePreference     *constants.ThemePreference `json:"themePreference,omitempty"`
	LanguagePreference  *string                    `json:"languagePreference,omitempty"`
	EnableNotifications *bool                      `json:"enableNotifications,omitempty"`
	NotificationSound   *bool                      `json:"notificationSound,omitempty"`
	ShareActivityData   *bool                      `json:"shareActivityData,omitempty"`
}

func (p UserSettingsPatch) Apply(s UserSettings) UserSettings {
	if p.ThemePreference != nil {
		s.ThemePreference = *p.ThemePreference
	}
	setString(&s.LanguagePreference, p.LanguagePreference)
	setBool(&s.EnableNotifications, p.EnableNotifications)
	setBool(&s.NotificationSound, p.NotificationSound)
	setBool(&s.ShareActivityData, p.ShareActivityData)
	return s
}
