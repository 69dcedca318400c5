package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/quantumlife/internal/constants"
)

// Styles are the chrome around the pages for one theme.
type Styles struct {
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Danger      lipgloss.Style
	Warning     lipgloss.Style
	Flash       lipgloss.Style
	Status      lipgloss.Style
	Doc         lipgloss.Style
}

func darkStyles() Styles {
	return Styles{
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true),
		Flash: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Bold(true).
			Padding(0, 1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
		Doc: lipgloss.NewStyle().Padding(1, 2),
	}
}

func lightStyles() Styles {
	s := darkStyles()
	s.ActiveTab = s.ActiveTab.
		Foreground(lipgloss.Color("125")).
		Background(lipgloss.Color("254"))
	s.InactiveTab = s.InactiveTab.Foreground(lipgloss.Color("245"))
	s.Danger = s.Danger.Foreground(lipgloss.Color("160"))
	s.Warning = s.Warning.Foreground(lipgloss.Color("130"))
	s.Flash = s.Flash.
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("130"))
	s.Status = s.Status.Foreground(lipgloss.Color("242"))
	return s
}

// StylesFor returns the styles for a resolved theme.
func StylesFor(theme constants.ThemePreference) Styles {
	if theme == constants.ThemeLight {
		return lightStyles()
	}
	return darkStyles()
}
