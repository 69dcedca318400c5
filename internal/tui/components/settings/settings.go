package settings

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/preferences"
)

type EditSettingsMsg struct{}

type Model struct {
	settings   models.UserSettings
	saved      bool
	resolution preferences.Resolution
	width      int
	height     int
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(25)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)
)

func New(settings models.UserSettings, width, height int) Model {
	return Model{
		settings: settings,
		width:    width,
		height:   height,
	}
}

// SetSettings shows s. saved is false while s holds defaults that were never stored.
func (m *Model) SetSettings(s models.UserSettings, saved bool) {
	m.settings = s
	m.saved = saved
}

func (m *Model) SetResolution(r preferences.Resolution) {
	m.resolution = r
}

func (m Model) Settings() models.UserSettings {
	return m.settings
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "e", "enter":
			return m, func() tea.Msg { return EditSettingsMsg{} }
		}
	}
	return m, nil
}

func row(label string, value any) string {
	return fmt.Sprintf("%s %s", labelStyle.Render(label), valueStyle.Render(fmt.Sprint(value)))
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var sections []string

	appearance := lipgloss.JoinVertical(
		lipgloss.Left,
		row("Theme:", m.settings.ThemePreference),
		row("Language:", m.settings.LanguagePreference),
	)
	if m.resolution.Source != "" {
		appearance = lipgloss.JoinVertical(lipgloss.Left, appearance,
			row("Applied from:", m.resolution.Source))
	}
	sections = append(sections, sectionStyle.Render(titleStyle.Render("Appearance")+"\n"+appearance))

	notifications := lipgloss.JoinVertical(
		lipgloss.Left,
		row("Enabled:", m.settings.EnableNotifications),
		row("Sound:", m.settings.NotificationSound),
	)
	sections = append(sections, sectionStyle.Render(titleStyle.Render("Notifications")+"\n"+notifications))

	privacy := row("Share activity data:", m.settings.ShareActivityData)
	sections = append(sections, sectionStyle.Render(titleStyle.Render("Privacy")+"\n"+privacy))

	hint := "Press 'e' to edit settings"
	if !m.saved {
		hint = "Defaults shown. Press 'e' to save your settings"
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		MarginTop(1).
		Render(hint))

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 4).Render(content),
	)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
