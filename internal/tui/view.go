package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/tui/state"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	styles := StylesFor(m.Theme)

	var content string
	switch m.State {
	case constants.StateForm:
		content = m.viewForm(styles)
	case constants.StateConfirmDelete:
		content = lipgloss.Place(m.Width, m.Height-4,
			lipgloss.Center, lipgloss.Center,
			m.Form.View(),
		)
	case constants.StateDashboard:
		content = styles.Doc.Render(m.OverviewModel.View())
	case constants.StateSettings:
		content = styles.Doc.Render(m.SettingsModel.View())
	default:
		content = styles.Doc.Render(m.viewPage())
	}

	var banners []string
	if m.Flash != "" {
		banners = append(banners, styles.Flash.Render(m.Flash))
	}
	if m.ValidationWarning != "" && m.State == constants.StateDashboard {
		banners = append(banners, styles.Warning.Render(m.ValidationWarning))
	}

	parts := []string{m.viewTabs(styles)}
	parts = append(parts, banners...)
	parts = append(parts, content)
	if m.Status != "" {
		parts = append(parts, styles.Status.Render(m.Status))
	}
	parts = append(parts, m.Help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs(styles Styles) string {
	current := m.State
	if !state.IsTab(current) {
		current = m.PreviousState
	}
	tabs := make([]string, len(state.Tabs))
	for i, s := range state.Tabs {
		if s == current {
			tabs[i] = styles.ActiveTab.Render(state.TabTitle(s))
		} else {
			tabs[i] = styles.InactiveTab.Render(state.TabTitle(s))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewPage() string {
	p, ok := m.Pages[m.State]
	if !ok {
		return ""
	}
	if m.Loading() {
		return m.Spinner.View() + " Loading " + p.Title() + "..."
	}
	return p.View()
}

func (m Model) viewForm(styles Styles) string {
	view := m.Form.View()
	if m.FormError != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, view, styles.Danger.Render(m.FormError))
	}
	return styles.Doc.Render(view)
}
