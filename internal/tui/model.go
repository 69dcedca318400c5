package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/tui/handlers"
	"github.com/julianstephens/quantumlife/internal/tui/state"
)

// Options configure a TUI session.
type Options = state.Options

type Model struct {
	state.Model
}

func NewModel(p collection.Provider, opts Options) Model {
	return Model{Model: state.New(p, opts)}
}

// Close stops background work. Call it after the program exits.
func (m Model) Close() {
	m.Model.Close()
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.Keys.Tab, m.Keys.Quit, m.Keys.Help}
	if p, ok := m.Pages[m.State]; ok {
		pk := p.Keys()
		keys = append(keys, pk.Add, pk.Edit, pk.Delete, pk.Toggle)
	}
	switch m.State {
	case constants.StateDashboard:
		ov := m.OverviewModel.Keys()
		keys = append(keys, ov.Open)
	case constants.StateSettings:
		keys = append(keys, key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")))
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.Keys.Tab, m.Keys.ShiftTab, m.Keys.Refresh, m.Keys.Quit, m.Keys.Help}
	navigation := []key.Binding{m.Keys.Up, m.Keys.Down, m.Keys.Left, m.Keys.Right, m.Keys.Enter}

	var actions []key.Binding
	if p, ok := m.Pages[m.State]; ok {
		pk := p.Keys()
		actions = []key.Binding{pk.Add, pk.Edit, pk.Delete, pk.Toggle}
	}
	if m.State == constants.StateDashboard {
		ov := m.OverviewModel.Keys()
		actions = []key.Binding{ov.Left, ov.Right, ov.Open}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		handlers.LoadAll(&m.Model),
		handlers.LoadDashboard(&m.Model),
		handlers.LoadSettings(&m.Model),
		handlers.StartWatcher(&m.Model),
		handlers.Validate(&m.Model),
		handlers.WaitForChange(m.Changes),
		handlers.WaitForError(m.Errors),
		handlers.WaitForReminder(m.Due),
		m.Spinner.Tick,
	)
}
