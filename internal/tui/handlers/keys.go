package handlers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/tui/state"
)

// HandleGlobalKeys handles global key presses
func HandleGlobalKeys(m *state.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	if key.Matches(msg, m.Keys.Quit) {
		m.Quitting = true
		return true, tea.Quit
	}

	// Forms and filters own every other key
	if !state.IsTab(m.State) || filtering(m) {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Tab):
		return true, SwitchTo(m, step(m.State, 1))
	case key.Matches(msg, m.Keys.ShiftTab):
		return true, SwitchTo(m, step(m.State, -1))
	case key.Matches(msg, m.Keys.Refresh):
		return true, Refresh(m)
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return true, nil
	case msg.String() == "q":
		m.Quitting = true
		return true, tea.Quit
	}
	return false, nil
}

func filtering(m *state.Model) bool {
	p, ok := m.Pages[m.State]
	return ok && p.Filtering()
}

func step(s constants.SessionState, dir int) constants.SessionState {
	n := len(state.Tabs)
	for i, t := range state.Tabs {
		if t == s {
			return state.Tabs[(i+dir+n)%n]
		}
	}
	return constants.StateDashboard
}

// SwitchTo shows page s and reloads what it renders from snapshots.
func SwitchTo(m *state.Model, s constants.SessionState) tea.Cmd {
	m.State = s
	m.Status = ""
	switch s {
	case constants.StateDashboard:
		return LoadDashboard(m)
	case constants.StateSettings:
		return LoadSettings(m)
	}
	return nil
}

// Refresh reloads the current page from the store.
func Refresh(m *state.Model) tea.Cmd {
	m.Status = ""
	switch m.State {
	case constants.StateDashboard:
		return LoadDashboard(m)
	case constants.StateSettings:
		return LoadSettings(m)
	case constants.StateHabits:
		return Load(m.Habits.Load)
	case constants.StateGoals:
		return Load(m.Goals.Load)
	case constants.StateFitness:
		return Load(m.Fitness.Load)
	case constants.StateWellness:
		return Load(m.Wellness.Load)
	case constants.StateProductivity:
		return Load(m.Productivity.Load)
	case constants.StateReminders:
		return Load(m.Reminders.Load)
	case constants.StateCommunity:
		return Load(m.Posts.Load)
	}
	return nil
}
