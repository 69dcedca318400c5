// Package page is the list view shared by every tracker page.
package page

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/quantumlife/internal/constants"
)

type AddMsg struct {
	Page constants.SessionState
}

type EditMsg struct {
	Page constants.SessionState
	ID   string
}

type DeleteMsg struct {
	Page constants.SessionState
	ID   string
}

type ToggleMsg struct {
	Page constants.SessionState
	ID   string
}

// Item is one record as a list row.
type Item struct {
	ID      string
	Heading string
	Detail  string
}

func (i Item) Title() string       { return i.Heading }
func (i Item) Description() string { return i.Detail }
func (i Item) FilterValue() string { return i.Heading }

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Toggle key.Binding
}

// Options configure a page. A page without ToggleHelp has no toggle action.
type Options struct {
	Title      string
	Empty      string
	ToggleHelp string
	NoEdit     bool
}

func DefaultKeyMap(opts Options) KeyMap {
	keys := KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", opts.ToggleHelp),
		),
	}
	if opts.ToggleHelp == "" {
		keys.Toggle.SetEnabled(false)
	}
	if opts.NoEdit {
		keys.Edit.SetEnabled(false)
	}
	return keys
}

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginBottom(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	state  constants.SessionState
	opts   Options
	list   list.Model
	keys   KeyMap
	header string
}

func New(state constants.SessionState, opts Options, width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = opts.Title
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap(opts)
	bindings := func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Toggle}
	}
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	return Model{
		state: state,
		opts:  opts,
		list:  l,
		keys:  keys,
	}
}

// SetItems replaces the rows. The cursor stays on the same index.
func (m *Model) SetItems(items []Item) {
	rows := make([]list.Item, len(items))
	for i, it := range items {
		rows[i] = it
	}
	m.list.SetItems(rows)
}

// SetHeader sets the summary line shown above the list.
func (m *Model) SetHeader(header string) {
	m.header = header
}

func (m Model) Title() string {
	return m.opts.Title
}

// Filtering reports whether the list is capturing keys for its filter.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Selected() (Item, bool) {
	it, ok := m.list.SelectedItem().(Item)
	return it, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			state := m.state
			return m, func() tea.Msg { return AddMsg{Page: state} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.Selected(); ok {
				return m, m.emit(EditMsg{Page: m.state, ID: i.ID})
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.Selected(); ok {
				return m, m.emit(DeleteMsg{Page: m.state, ID: i.ID})
			}
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.Selected(); ok {
				return m, m.emit(ToggleMsg{Page: m.state, ID: i.ID})
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m Model) View() string {
	var header string
	if m.header != "" {
		header = headerStyle.Render(m.header)
	}
	if len(m.list.Items()) == 0 && !m.Filtering() {
		empty := m.opts.Empty
		if empty == "" {
			empty = "Nothing here yet."
		}
		return lipgloss.JoinVertical(lipgloss.Left, header, emptyStyle.Render(empty+"\nPress 'a' to add one."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View())
}

func (m *Model) SetSize(width, height int) {
	// Leave room for the header line
	m.list.SetSize(width, height-2)
}
