package models

import (
	"testing"
	"time"

	"github.com/julianstephens/quantumlife/internal/constants"
)

func TestDefaultUserSettings(t *testing.T) {
	s := DefaultUserSettings()
	if s.ThemePreference != constants.ThemeDark {
		t.Errorf("ThemePreference = %q, want dark", s.ThemePreference)
	}
	if s.LanguagePreference != "en" {
		t.Errorf("LanguagePreference = %q, want en", s.LanguagePreference)
	}
	if !s.EnableNotifications || !s.NotificationSound || s.ShareActivityData {
		t.Errorf("toggles = %+v, want notifications and sound on, sharing off", s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestApplyDefaultSettings(t *testing.T) {
	s := UserSettings{EnableNotifications: false}
	ApplyDefaultSettings(&s)
	if s.ThemePreference != constants.ThemeDark || s.LanguagePreference != "en" {
		t.Errorf("ApplyDefaultSettings() = %+v", s)
	}
	if s.EnableNotifications {
		t.Error("ApplyDefaultSettings() must not override explicit toggles")
	}
}

func TestUserSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		theme   constants.ThemePreference
		lang    string
		wantErr bool
	}{
		{"dark", constants.ThemeDark, "en", false},
		{"light", constants.ThemeLight, "fr", false},
		{"auto", constants.ThemeAuto, "de", false},
		{"unknown theme", "sepia", "en", true},
		{"empty language", constants.ThemeDark, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := UserSettings{ThemePreference: tt.theme, LanguagePreference: tt.lang}
			if err := s.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserSettings_PatchRoundTrip(t *testing.T) {
	src := UserSettings{
		ThemePreference:    constants.ThemeLight,
		LanguagePreference: "es",
		ShareActivityData:  true,
	}
	dst := UserSettings{
		Meta:                Meta{ID: "s1", UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		ThemePreference:     constants.ThemeDark,
		EnableNotifications: true,
	}

	got := src.Patch().Apply(dst)
	if got.ID != "s1" {
		t.Errorf("ID = %q, patch must not touch identity", got.ID)
	}
	if got.ThemePreference != constants.ThemeLight || got.LanguagePreference != "es" {
		t.Errorf("Apply() = %+v", got)
	}
	if got.EnableNotifications {
		t.Error("full patch should carry false toggles too")
	}
	if !got.ShareActivityData {
		t.Error("ShareActivityData = false, want true")
	}
}
