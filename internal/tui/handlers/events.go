package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/quantumlife/internal/logger"
	"github.com/julianstephens/quantumlife/internal/tui/state"
)

// HandleBackgroundMessages handles results from controllers, the dashboard
// loader and the reminder watcher
func HandleBackgroundMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case state.ChangedMsg:
		m.RefreshPages()
		return true, WaitForChange(m.Changes)

	case state.StoreErrorMsg:
		logger.Warn("Store request failed", "collection", msg.Collection, "op", msg.Op, "error", msg.Err)
		m.Status = fmt.Sprintf("Could not %s %s, showing the latest saved data", msg.Op, msg.Collection)
		return true, WaitForError(m.Errors)

	case state.ReminderDueMsg:
		m.FlashID++
		m.Flash = fmt.Sprintf("⏰ %s · %s", msg.Notification.Reminder.ReminderTitle, msg.Notification.Body())
		return true, tea.Batch(WaitForReminder(m.Due), expireFlash(m.FlashID))

	case state.FlashExpiredMsg:
		if msg.ID == m.FlashID {
			m.Flash = ""
		}
		return true, nil

	case state.DashboardLoadedMsg:
		if msg.Err != nil {
			logger.Warn("Failed to load dashboard", "error", msg.Err)
			m.OverviewModel.SetError(msg.Err)
			return true, nil
		}
		m.OverviewModel.SetSnapshot(msg.Snapshot)
		return true, nil

	case state.ValidationMsg:
		m.ValidationWarning = msg.Warning
		return true, nil
	}
	return false, nil
}
