package handlers

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/preferences"
	"github.com/julianstephens/quantumlife/internal/reminders"
	"github.com/julianstephens/quantumlife/internal/tui/state"
	"github.com/julianstephens/quantumlife/internal/validation"
)

const (
	storeTimeout  = 30 * time.Second
	flashDuration = 10 * time.Second
)

// Load runs a blocking controller load. The result arrives as a ChangedMsg.
func Load(load func()) tea.Cmd {
	return func() tea.Msg {
		load()
		return nil
	}
}

// LoadAll starts the initial load of every controller.
func LoadAll(m *state.Model) tea.Cmd {
	return tea.Batch(
		Load(m.Habits.Load),
		Load(m.Goals.Load),
		Load(m.Fitness.Load),
		Load(m.Wellness.Load),
		Load(m.Productivity.Load),
		Load(m.Reminders.Load),
		Load(m.Posts.Load),
	)
}

func WaitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return state.ChangedMsg{}
	}
}

func WaitForError(ch <-chan state.StoreErrorMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func WaitForReminder(ch <-chan reminders.Notification) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return state.ReminderDueMsg{Notification: n}
	}
}

// StartWatcher begins the once-a-minute reminder scan.
func StartWatcher(m *state.Model) tea.Cmd {
	w, ctx := m.Watcher, m.Context()
	return func() tea.Msg {
		if err := w.Start(ctx); err != nil {
			return state.StoreErrorMsg{Collection: "reminders", Op: "watch", Err: err}
		}
		return nil
	}
}

func LoadDashboard(m *state.Model) tea.Cmd {
	loader, parent := m.Dashboard, m.Context()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, storeTimeout)
		defer cancel()
		snap, err := loader.Load(ctx)
		return state.DashboardLoadedMsg{Snapshot: snap, Err: err}
	}
}

// LoadSettings reads the settings record and merges it with the local
// preference cache.
func LoadSettings(m *state.Model) tea.Cmd {
	p, prefs, parent := m.Provider, m.Prefs, m.Context()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, storeTimeout)
		defer cancel()
		res, err := prefs.Sync(ctx)
		if err != nil {
			return state.SettingsLoadedMsg{Resolution: res, Err: err}
		}
		s, saved, err := preferences.LoadSettings(ctx, collection.For[models.UserSettings](p))
		if err != nil {
			return state.SettingsLoadedMsg{Settings: s, Resolution: res, Err: err}
		}
		s.ThemePreference = res.Theme
		s.LanguagePreference = res.Language
		return state.SettingsLoadedMsg{Settings: s, Saved: saved, Resolution: res}
	}
}

func SaveSettings(m *state.Model, s models.UserSettings) tea.Cmd {
	p, prefs, parent := m.Provider, m.Prefs, m.Context()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, storeTimeout)
		defer cancel()
		saved, err := preferences.SaveSettings(ctx, collection.For[models.UserSettings](p), s)
		if err != nil {
			return state.SettingsSavedMsg{Settings: s, Err: err}
		}
		if err := prefs.Remember(saved.ThemePreference, saved.LanguagePreference); err != nil {
			return state.SettingsSavedMsg{Settings: saved, Err: err}
		}
		return state.SettingsSavedMsg{Settings: saved}
	}
}

// Validate checks the whole store in the background.
func Validate(m *state.Model) tea.Cmd {
	p, parent := m.Provider, m.Context()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, storeTimeout)
		defer cancel()
		data, err := validation.Load(ctx, p)
		if err != nil {
			return state.ValidationMsg{Warning: "⚠ Validation unavailable"}
		}
		result := validation.New().Validate(data)
		if !result.HasIssues() {
			return state.ValidationMsg{}
		}
		noun := "issues"
		if len(result.Issues) == 1 {
			noun = "issue"
		}
		return state.ValidationMsg{Warning: fmt.Sprintf("⚠ %d data %s (run 'quantumlife doctor')", len(result.Issues), noun)}
	}
}

func expireFlash(id int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return state.FlashExpiredMsg{ID: id}
	})
}

// ApplyTheme resolves "auto" against the terminal background.
func ApplyTheme(m *state.Model, theme constants.ThemePreference) {
	m.Theme = preferences.EffectiveTheme(theme, lipgloss.HasDarkBackground)
}
