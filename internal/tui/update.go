package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/tui/handlers"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.State {
	case constants.StateForm:
		if handled, cmd := m.handleShared(msg); handled {
			return m, cmd
		}
		return m, handlers.HandleFormState(&m.Model, msg)
	case constants.StateConfirmDelete:
		if handled, cmd := m.handleShared(msg); handled {
			return m, cmd
		}
		return m, handlers.HandleConfirmationState(&m.Model, msg)
	}

	if handled, cmd := m.handleShared(msg); handled {
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := handlers.HandleGlobalKeys(&m.Model, msg); handled {
			return m, cmd
		}
	}

	if handled, cmd := handlers.HandlePageMessages(&m.Model, msg); handled {
		return m, cmd
	}
	if handled, cmd := handlers.HandleConfirmationMessages(&m.Model, msg); handled {
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.State {
	case constants.StateDashboard:
		m.OverviewModel, cmd = m.OverviewModel.Update(msg)
	case constants.StateSettings:
		m.SettingsModel, cmd = m.SettingsModel.Update(msg)
	default:
		if p, ok := m.Pages[m.State]; ok {
			*p, cmd = p.Update(msg)
		}
	}
	return m, cmd
}

// handleShared handles messages that apply in every state: resizes,
// background results and ctrl+c.
func (m *Model) handleShared(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		if m.Form != nil {
			m.Form = m.Form.WithWidth(msg.Width - 4)
		}
		return true, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return true, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Quitting = true
			return true, tea.Quit
		}
		return false, nil
	}

	if handled, cmd := handlers.HandleBackgroundMessages(&m.Model, msg); handled {
		return true, cmd
	}
	if handled, cmd := handlers.HandleSettingsMessages(&m.Model, msg); handled {
		return true, cmd
	}
	return false, nil
}
