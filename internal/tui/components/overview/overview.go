// Package overview renders the dashboard page.
package overview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/dashboard"
	"github.com/julianstephens/quantumlife/internal/reminders"
	"github.com/julianstephens/quantumlife/internal/utils"
)

// OpenMsg asks to switch to a tracker page.
type OpenMsg struct {
	State constants.SessionState
}

// UpcomingWindow bounds the reminders listed under "Coming up".
const UpcomingWindow = 24 * time.Hour

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginBottom(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(18).
			Align(lipgloss.Center)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("62"))

	statStyle = lipgloss.NewStyle().
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Open  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev card"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next card"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
	}
}

type Model struct {
	snapshot dashboard.Snapshot
	summary  dashboard.Summary
	loaded   bool
	err      error
	cursor   int
	keys     KeyMap
	loc      *time.Location
	width    int
	height   int
}

func New(loc *time.Location) Model {
	if loc == nil {
		loc = time.Local
	}
	return Model{keys: DefaultKeyMap(), loc: loc}
}

// SetSnapshot shows a freshly loaded snapshot.
func (m *Model) SetSnapshot(s dashboard.Snapshot) {
	m.snapshot = s
	m.summary = s.Summary()
	m.loaded = true
	m.err = nil
	if m.cursor >= len(m.summary.Trackers) {
		m.cursor = 0
	}
}

// SetError keeps the previous snapshot and shows err.
func (m *Model) SetError(err error) {
	m.err = err
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.summary.Trackers) == 0 {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Left):
		m.cursor = (m.cursor - 1 + len(m.summary.Trackers)) % len(m.summary.Trackers)
	case key.Matches(keyMsg, m.keys.Right):
		m.cursor = (m.cursor + 1) % len(m.summary.Trackers)
	case key.Matches(keyMsg, m.keys.Open):
		state := m.summary.Trackers[m.cursor].State
		return m, func() tea.Msg { return OpenMsg{State: state} }
	}
	return m, nil
}

func (m Model) View() string {
	if !m.loaded {
		if m.err != nil {
			return mutedStyle.Render(fmt.Sprintf("Dashboard unavailable: %v", m.err))
		}
		return mutedStyle.Render("Loading dashboard...")
	}

	s := m.summary
	stats := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Habits completed  %s", statStyle.Render(fmt.Sprintf("%d/%d", s.CompletedHabits, s.TotalHabits))),
		fmt.Sprintf("Active goals      %s", statStyle.Render(fmt.Sprint(s.ActiveGoals))),
		fmt.Sprintf("Average mood      %s", statStyle.Render(dashboard.FormatAverage(s.AverageMood, s.MoodCheckins))),
	)

	cards := make([]string, len(s.Trackers))
	for i, t := range s.Trackers {
		style := cardStyle
		if i == m.cursor {
			style = selectedCardStyle
		}
		cards[i] = style.Render(lipgloss.JoinVertical(lipgloss.Center,
			statStyle.Render(fmt.Sprint(t.Count)),
			t.Title,
		))
	}

	sections := []string{
		titleStyle.Render("Today"),
		stats,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		titleStyle.Render("Coming up"),
		m.viewUpcoming(),
	}

	footer := fmt.Sprintf("Updated %s", utils.RelativeTime(m.snapshot.LoadedAt, time.Now()))
	if m.err != nil {
		footer = fmt.Sprintf("Refresh failed: %v", m.err)
	}
	sections = append(sections, "", mutedStyle.Render(footer))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewUpcoming() string {
	due := reminders.Due(m.snapshot.Reminders, time.Now(), UpcomingWindow)
	if len(due) == 0 {
		return mutedStyle.Render("No reminders in the next 24 hours.")
	}
	lines := make([]string, len(due))
	for i, n := range due {
		lines[i] = fmt.Sprintf("⏰ %s  %s", utils.FormatDateTime(n.Due, m.loc), n.Reminder.ReminderTitle)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
