package handlers

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/tui/state"
)

// OpenForm shows form over the current page. submit runs on completion.
func OpenForm(m *state.Model, form *huh.Form, submit func(m *state.Model) (tea.Cmd, error)) tea.Cmd {
	if state.IsTab(m.State) {
		m.PreviousState = m.State
	}
	m.Form = form
	m.Submit = submit
	m.FormError = ""
	m.State = constants.StateForm
	return m.Form.Init()
}

// HandleFormState drives the open add or edit form
func HandleFormState(m *state.Model, msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		closeForm(m)
		return nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}
	cmds = append(cmds, cmd)

	switch m.Form.State {
	case huh.StateCompleted:
		next, err := m.Submit(m)
		if err != nil {
			// Stay in form state to allow retry
			m.FormError = err.Error()
			m.Form.State = huh.StateNormal
			return tea.Batch(cmds...)
		}
		closeForm(m)
		cmds = append(cmds, next)
	case huh.StateAborted:
		closeForm(m)
	}
	return tea.Batch(cmds...)
}

func closeForm(m *state.Model) {
	m.FormError = ""
	m.Submit = nil
	m.State = m.PreviousState
}
