package handlers

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/quantumlife/internal/logger"
	"github.com/julianstephens/quantumlife/internal/tui/components/settings"
	"github.com/julianstephens/quantumlife/internal/tui/state"
)

// HandleSettingsMessages handles messages from the settings component and
// the settings load and save commands
func HandleSettingsMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case settings.EditSettingsMsg:
		current := m.SettingsModel.Settings()
		fm := state.NewSettingsFormModel(current)
		m.SettingsForm = fm
		return true, OpenForm(m, NewSettingsForm(fm, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			s := fm.Apply(current)
			if err := s.Validate(); err != nil {
				return nil, err
			}
			return SaveSettings(m, s), nil
		})

	case state.SettingsLoadedMsg:
		if msg.Err != nil {
			logger.Warn("Failed to load settings", "error", msg.Err)
			m.Status = "Failed to load settings: " + msg.Err.Error()
		}
		if msg.Resolution.Theme != "" {
			ApplyTheme(m, msg.Resolution.Theme)
		}
		m.SettingsModel.SetResolution(msg.Resolution)
		if msg.Err == nil {
			m.SettingsModel.SetSettings(msg.Settings, msg.Saved)
			m.Notify.Store(msg.Settings.EnableNotifications)
		}
		return true, nil

	case state.SettingsSavedMsg:
		if msg.Err != nil {
			logger.Error("Failed to save settings", "error", msg.Err)
			m.Status = "Failed to save settings: " + msg.Err.Error()
			// The record may or may not have been written
			return true, LoadSettings(m)
		}
		m.SettingsModel.SetSettings(msg.Settings, true)
		m.Notify.Store(msg.Settings.EnableNotifications)
		ApplyTheme(m, msg.Settings.ThemePreference)
		return true, nil
	}
	return false, nil
}
