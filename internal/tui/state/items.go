package state

import (
	"fmt"
	"strings"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/dashboard"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/tui/components/page"
	"github.com/julianstephens/quantumlife/internal/utils"
)

// RefreshPages rebuilds every list page from its controller.
func (m *Model) RefreshPages() {
	habits := m.Habits.Items()
	done, total := dashboard.CompletedHabits(habits)
	m.setPage(constants.StateHabits, mapItems(habits, HabitItem),
		fmt.Sprintf("%d of %d completed", done, total))

	goals := m.Goals.Items()
	m.setPage(constants.StateGoals, mapItems(goals, GoalItem),
		fmt.Sprintf("%d active", dashboard.ActiveGoals(goals)))

	fitness := m.Fitness.Items()
	ft := dashboard.FitnessSummary(fitness)
	m.setPage(constants.StateFitness, mapItems(fitness, FitnessItem),
		fmt.Sprintf("%d kcal · %s total", ft.Calories, utils.FormatDuration(ft.Minutes)))

	wellness := m.Wellness.Items()
	wa := dashboard.WellnessSummary(wellness)
	m.setPage(constants.StateWellness, mapItems(wellness, m.WellnessItem),
		fmt.Sprintf("Mood %s · Stress %s · Energy %s",
			dashboard.FormatAverage(wa.Mood, len(wellness)),
			dashboard.FormatAverage(wa.Stress, len(wellness)),
			dashboard.FormatAverage(wa.Energy, len(wellness))))

	logs := m.Productivity.Items()
	pt := dashboard.ProductivitySummary(logs)
	m.setPage(constants.StateProductivity, mapItems(logs, m.ProductivityItem),
		fmt.Sprintf("Average score %s · %.1fh logged", dashboard.FormatAverage(pt.AverageScore, len(logs)), pt.TotalHours))

	rs := m.Reminders.Items()
	m.setPage(constants.StateReminders, mapItems(rs, m.ReminderItem),
		fmt.Sprintf("%d active", dashboard.ActiveReminders(rs)))

	posts := m.Posts.Items()
	m.setPage(constants.StateCommunity, mapItems(posts, m.PostItem), "")
}

func (m *Model) setPage(s constants.SessionState, items []page.Item, header string) {
	p := m.Pages[s]
	p.SetItems(items)
	p.SetHeader(header)
}

func mapItems[T any](records []T, fn func(T) page.Item) []page.Item {
	items := make([]page.Item, len(records))
	for i, r := range records {
		items[i] = fn(r)
	}
	return items
}

func HabitItem(h models.Habit) page.Item {
	check := "[ ]"
	if h.IsCompleted {
		check = "[✓]"
	}
	return page.Item{
		ID:      h.ID,
		Heading: fmt.Sprintf("%s %s", check, h.HabitName),
		Detail:  fmt.Sprintf("%s · 🔥 %d streak", h.Frequency, h.StreakCount),
	}
}

func GoalItem(g models.Goal) page.Item {
	detail := []string{fmt.Sprintf("%d%%", g.Progress())}
	if g.Category != "" {
		detail = append(detail, g.Category)
	}
	if g.TargetDate != "" {
		detail = append(detail, "due "+g.TargetDate)
	}
	return page.Item{ID: g.ID, Heading: g.GoalTitle, Detail: strings.Join(detail, " · ")}
}

func FitnessItem(a models.FitnessActivity) page.Item {
	return page.Item{
		ID:      a.ID,
		Heading: a.ActivityType,
		Detail:  fmt.Sprintf("%s · %s · %d kcal", a.ActivityDate, utils.FormatDuration(a.Duration), a.CaloriesBurned),
	}
}

func (m *Model) WellnessItem(c models.WellnessCheckin) page.Item {
	heading := fmt.Sprintf("Mood %d · Stress %d · Energy %d", c.MoodRating, c.StressLevel, c.EnergyLevel)
	detail := utils.FormatDateTime(c.CheckinDateTime, m.Loc)
	if c.JournalEntry != "" {
		detail += " · " + c.JournalEntry
	}
	return page.Item{ID: c.ID, Heading: heading, Detail: detail}
}

func (m *Model) ProductivityItem(l models.ProductivityLog) page.Item {
	detail := fmt.Sprintf("%s · score %d · %s", utils.FormatDuration(l.DurationMinutes), l.ProductivityScore, utils.FormatDateTime(l.LogDateTime, m.Loc))
	if l.CategoryTag != "" {
		detail = l.CategoryTag + " · " + detail
	}
	return page.Item{ID: l.ID, Heading: l.TaskOrSessionName, Detail: detail}
}

func (m *Model) ReminderItem(r models.Reminder) page.Item {
	status := "⏸"
	if r.IsActive {
		status = "⏰"
	}
	detail := fmt.Sprintf("%s · %s", utils.FormatDateTime(r.NextDue(m.Now()), m.Loc), r.FormatRecurrence())
	if r.TrackerCategory != "" {
		detail += " · " + r.TrackerCategory
	}
	return page.Item{ID: r.ID, Heading: fmt.Sprintf("%s %s", status, r.ReminderTitle), Detail: detail}
}

func (m *Model) PostItem(p models.CommunityPost) page.Item {
	return page.Item{
		ID:      p.ID,
		Heading: fmt.Sprintf("%s: %s", p.AuthorDisplayName, utils.Truncate(p.PlainText(), 60)),
		Detail:  fmt.Sprintf("♥ %d · 💬 %d · %s", p.LikeCount, p.CommentCount, utils.RelativeTime(p.Timestamp, m.Now())),
	}
}
