package handlers

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/tui/state"
)

// HandleConfirmationState handles the generic confirmation state
func HandleConfirmationState(m *state.Model, msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.PendingAction = nil
		m.State = m.PreviousState
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		if m.ConfirmationForm.Confirmed && m.PendingAction != nil {
			cmds = append(cmds, m.PendingAction())
		}
		m.PendingAction = nil
		m.State = m.PreviousState
	case huh.StateAborted:
		m.PendingAction = nil
		m.State = m.PreviousState
	}
	return tea.Batch(cmds...)
}

// HandleConfirmationMessages handles messages related to confirmations
func HandleConfirmationMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case constants.ConfirmationMsg:
		m.ConfirmationForm = &state.ConfirmationFormModel{
			Message: msg.Message,
		}
		m.PendingAction = msg.Action
		m.Form = NewConfirmationForm(m.ConfirmationForm, m.Theme)
		if state.IsTab(m.State) {
			m.PreviousState = m.State
		}
		m.State = constants.StateConfirmDelete
		return true, m.Form.Init()
	}
	return false, nil
}

func confirm(message string, action func() tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		return constants.ConfirmationMsg{Message: message, Action: action}
	}
}
