package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/tui/components/overview"
	"github.com/julianstephens/quantumlife/internal/tui/components/page"
	"github.com/julianstephens/quantumlife/internal/tui/state"
)

// HandlePageMessages handles messages from the tracker pages and the dashboard
func HandlePageMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case page.AddMsg:
		return true, openAdd(m, msg.Page)
	case page.EditMsg:
		return true, openEdit(m, msg.Page, msg.ID)
	case page.DeleteMsg:
		return true, confirmDelete(m, msg.Page, msg.ID)
	case page.ToggleMsg:
		toggle(m, msg.Page, msg.ID)
		return true, nil
	case overview.OpenMsg:
		return true, SwitchTo(m, msg.State)
	}
	return false, nil
}

func openAdd(m *state.Model, s constants.SessionState) tea.Cmd {
	switch s {
	case constants.StateHabits:
		fm := state.NewHabitFormModel(nil)
		m.HabitForm = fm
		return OpenForm(m, NewHabitForm(fm, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			h := fm.Record()
			if err := h.Validate(); err != nil {
				return nil, err
			}
			m.Habits.Create(h)
			return nil, nil
		})

	case constants.StateGoals:
		fm := state.NewGoalFormModel(nil)
		m.GoalForm = fm
		return OpenForm(m, NewGoalForm(fm, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			g, err := fm.Record()
			if err != nil {
				return nil, err
			}
			if err := g.Validate(); err != nil {
				return nil, err
			}
			m.Goals.Create(g)
			return nil, nil
		})

	case constants.StateFitness:
		fm := state.NewFitnessFormModel(nil, m.Today())
		m.FitnessForm = fm
		return OpenForm(m, NewFitnessForm(fm, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			a, err := fm.Record()
			if err != nil {
				return nil, err
			}
			if err := a.Validate(); err != nil {
				return nil, err
			}
			m.Fitness.Create(a)
			return nil, nil
		})

	case constants.StateWellness:
		fm := state.NewWellnessFormModel(nil)
		m.WellnessForm = fm
		return OpenForm(m, NewWellnessForm(fm, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			c, err := fm.Record(m.Now())
			if err != nil {
				return nil, err
			}
			if err := c.Validate(); err != nil {
				return nil, err
			}
			m.Wellness.Create(c)
			return nil, nil
		})

	case constants.StateProductivity:
		fm := state.NewProductivityFormModel(nil)
		m.ProductivityForm = fm
		return OpenForm(m, NewProductivityForm(fm, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			l, err := fm.Record(m.Now())
			if err != nil {
				return nil, err
			}
			if err := l.Validate(); err != nil {
				return nil, err
			}
			m.Productivity.Create(l)
			return nil, nil
		})

	case constants.StateReminders:
		fm := state.NewReminderFormModel(nil, m.Now(), m.Loc)
		m.ReminderForm = fm
		return OpenForm(m, NewReminderForm(fm, m.Loc, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			r, err := fm.Record(m.Loc)
			if err != nil {
				return nil, err
			}
			if err := r.Validate(); err != nil {
				return nil, err
			}
			m.Reminders.Create(r)
			return nil, nil
		})

	case constants.StateCommunity:
		fm := state.NewPostFormModel(nil, m.Author)
		m.PostForm = fm
		return OpenForm(m, NewPostForm(fm, false, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			p := fm.Record(m.Now())
			if err := p.Validate(); err != nil {
				return nil, err
			}
			m.Posts.Create(p)
			return nil, nil
		})
	}
	return nil
}

func openEdit(m *state.Model, s constants.SessionState, id string) tea.Cmd {
	switch s {
	case constants.StateHabits:
		h, ok := m.Habits.Find(id)
		if !ok {
			return nil
		}
		fm := state.NewHabitFormModel(&h)
		m.HabitForm = fm
		return OpenForm(m, NewHabitForm(fm, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			patch := fm.Patch()
			if err := patch.Apply(h).Validate(); err != nil {
				return nil, err
			}
			m.Habits.Update(id, patch)
			return nil, nil
		})

	case constants.StateGoals:
		g, ok := m.Goals.Find(id)
		if !ok {
			return nil
		}
		fm := state.NewGoalFormModel(&g)
		m.GoalForm = fm
		return OpenForm(m, NewGoalForm(fm, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			patch, err := fm.Patch()
			if err != nil {
				return nil, err
			}
			if err := patch.Apply(g).Validate(); err != nil {
				return nil, err
			}
			m.Goals.Update(id, patch)
			return nil, nil
		})

	case constants.StateFitness:
		a, ok := m.Fitness.Find(id)
		if !ok {
			return nil
		}
		fm := state.NewFitnessFormModel(&a, m.Today())
		m.FitnessForm = fm
		return OpenForm(m, NewFitnessForm(fm, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			patch, err := fm.Patch()
			if err != nil {
				return nil, err
			}
			if err := patch.Apply(a).Validate(); err != nil {
				return nil, err
			}
			m.Fitness.Update(id, patch)
			return nil, nil
		})

	case constants.StateWellness:
		c, ok := m.Wellness.Find(id)
		if !ok {
			return nil
		}
		fm := state.NewWellnessFormModel(&c)
		m.WellnessForm = fm
		return OpenForm(m, NewWellnessForm(fm, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			patch, err := fm.Patch()
			if err != nil {
				return nil, err
			}
			if err := patch.Apply(c).Validate(); err != nil {
				return nil, err
			}
			m.Wellness.Update(id, patch)
			return nil, nil
		})

	case constants.StateProductivity:
		l, ok := m.Productivity.Find(id)
		if !ok {
			return nil
		}
		fm := state.NewProductivityFormModel(&l)
		m.ProductivityForm = fm
		return OpenForm(m, NewProductivityForm(fm, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			patch, err := fm.Patch()
			if err != nil {
				return nil, err
			}
			if err := patch.Apply(l).Validate(); err != nil {
				return nil, err
			}
			m.Productivity.Update(id, patch)
			return nil, nil
		})

	case constants.StateReminders:
		r, ok := m.Reminders.Find(id)
		if !ok {
			return nil
		}
		fm := state.NewReminderFormModel(&r, m.Now(), m.Loc)
		m.ReminderForm = fm
		return OpenForm(m, NewReminderForm(fm, m.Loc, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			patch, err := fm.Patch(m.Loc)
			if err != nil {
				return nil, err
			}
			if err := patch.Apply(r).Validate(); err != nil {
				return nil, err
			}
			m.Reminders.Update(id, patch)
			return nil, nil
		})

	case constants.StateCommunity:
		p, ok := m.Posts.Find(id)
		if !ok {
			return nil
		}
		fm := state.NewPostFormModel(&p, m.Author)
		m.PostForm = fm
		return OpenForm(m, NewPostForm(fm, true, m.Theme), func(m *state.Model) (tea.Cmd, error) {
			patch := fm.Patch()
			if err := patch.Apply(p).Validate(); err != nil {
				return nil, err
			}
			m.Posts.Update(id, patch)
			return nil, nil
		})
	}
	return nil
}

func confirmDelete(m *state.Model, s constants.SessionState, id string) tea.Cmd {
	var (
		label  string
		remove func(string)
	)
	switch s {
	case constants.StateHabits:
		h, ok := m.Habits.Find(id)
		if !ok {
			return nil
		}
		label, remove = fmt.Sprintf("habit %q", h.HabitName), m.Habits.Delete
	case constants.StateGoals:
		g, ok := m.Goals.Find(id)
		if !ok {
			return nil
		}
		label, remove = fmt.Sprintf("goal %q", g.GoalTitle), m.Goals.Delete
	case constants.StateFitness:
		a, ok := m.Fitness.Find(id)
		if !ok {
			return nil
		}
		label, remove = fmt.Sprintf("%s on %s", a.ActivityType, a.ActivityDate), m.Fitness.Delete
	case constants.StateWellness:
		if _, ok := m.Wellness.Find(id); !ok {
			return nil
		}
		label, remove = "this check-in", m.Wellness.Delete
	case constants.StateProductivity:
		l, ok := m.Productivity.Find(id)
		if !ok {
			return nil
		}
		label, remove = fmt.Sprintf("session %q", l.TaskOrSessionName), m.Productivity.Delete
	case constants.StateReminders:
		r, ok := m.Reminders.Find(id)
		if !ok {
			return nil
		}
		label, remove = fmt.Sprintf("reminder %q", r.ReminderTitle), m.Reminders.Delete
	case constants.StateCommunity:
		if _, ok := m.Posts.Find(id); !ok {
			return nil
		}
		label, remove = "this post", m.Posts.Delete
	default:
		return nil
	}

	return confirm(fmt.Sprintf("Delete %s?", label), func() tea.Cmd {
		remove(id)
		return nil
	})
}

func toggle(m *state.Model, s constants.SessionState, id string) {
	switch s {
	case constants.StateHabits:
		m.Habits.Toggle(id, func(h models.Habit) models.Patch[models.Habit] {
			return h.ToggleCompleted()
		})
	case constants.StateReminders:
		m.Reminders.Toggle(id, func(r models.Reminder) models.Patch[models.Reminder] {
			return r.ToggleActive()
		})
	case constants.StateCommunity:
		m.Posts.Toggle(id, func(p models.CommunityPost) models.Patch[models.CommunityPost] {
			return p.Like()
		})
	}
}
