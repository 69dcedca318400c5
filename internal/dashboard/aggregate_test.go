package dashboard

import (
	"testing"

	"github.com/julianstephens/quantumlife/internal/models"
)

func TestAverageMood(t *testing.T) {
	tests := []struct {
		name  string
		moods []int
		want  float64
	}{
		{"empty", nil, 0},
		{"four and eight", []int{4, 8}, 6.0},
		{"rounds to one decimal", []int{7, 8, 8}, 7.7},
		{"single", []int{9}, 9},
		{"rounds half up", []int{1, 2, 2, 2}, 1.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkins := make([]models.WellnessCheckin, len(tt.moods))
			for i, m := range tt.moods {
				checkins[i] = models.WellnessCheckin{MoodRating: m}
			}
			if got := AverageMood(checkins); got != tt.want {
				t.Errorf("AverageMood(%v) = %v, want %v", tt.moods, got, tt.want)
			}
		})
	}
}

func TestFormatAverage(t *testing.T) {
	if got := FormatAverage(0, 0); got != "0" {
		t.Errorf("FormatAverage(0, 0) = %q, want 0", got)
	}
	if got := FormatAverage(6, 2); got != "6.0" {
		t.Errorf("FormatAverage(6, 2) = %q, want 6.0", got)
	}
	if got := FormatAverage(7.666, 3); got != "7.7" {
		t.Errorf("FormatAverage(7.666, 3) = %q, want 7.7", got)
	}
}

func TestActiveGoals(t *testing.T) {
	progress := func(p int) *int { return &p }
	goals := []models.Goal{
		{GoalTitle: "missing progress"},
		{GoalTitle: "zero", ProgressPercentage: progress(0)},
		{GoalTitle: "almost", ProgressPercentage: progress(99)},
		{GoalTitle: "done", ProgressPercentage: progress(100)},
	}

	if got := ActiveGoals(goals); got != 3 {
		t.Errorf("ActiveGoals() = %d, want 3", got)
	}
	if got := ActiveGoals(nil); got != 0 {
		t.Errorf("ActiveGoals(nil) = %d, want 0", got)
	}
}

func TestCompletedHabits(t *testing.T) {
	done, total := CompletedHabits([]models.Habit{
		{HabitName: "a", IsCompleted: true},
		{HabitName: "b"},
		{HabitName: "c", IsCompleted: true},
	})
	if done != 2 || total != 3 {
		t.Errorf("CompletedHabits() = %d/%d, want 2/3", done, total)
	}
}

func TestTrackerSummaries(t *testing.T) {
	fitness := FitnessSummary([]models.FitnessActivity{
		{ActivityType: "Run", Duration: 30, CaloriesBurned: 300},
		{ActivityType: "Swim", Duration: 45, CaloriesBurned: 400},
	})
	if fitness.Calories != 700 || fitness.Minutes != 75 {
		t.Errorf("FitnessSummary() = %+v", fitness)
	}

	wellness := WellnessSummary([]models.WellnessCheckin{
		{MoodRating: 6, StressLevel: 3, EnergyLevel: 7},
		{MoodRating: 7, StressLevel: 4, EnergyLevel: 8},
	})
	if wellness.Mood != 6.5 || wellness.Stress != 3.5 || wellness.Energy != 7.5 {
		t.Errorf("WellnessSummary() = %+v", wellness)
	}

	productivity := ProductivitySummary([]models.ProductivityLog{
		{TaskOrSessionName: "Deep work", DurationMinutes: 90, ProductivityScore: 8},
		{TaskOrSessionName: "Email", DurationMinutes: 20, ProductivityScore: 5},
	})
	if productivity.AverageScore != 6.5 || productivity.TotalHours != 1.8 {
		t.Errorf("ProductivitySummary() = %+v", productivity)
	}

	if got := ProductivitySummary(nil); got.AverageScore != 0 || got.TotalHours != 0 {
		t.Errorf("ProductivitySummary(nil) = %+v", got)
	}
}

func TestActiveReminders(t *testing.T) {
	got := ActiveReminders([]models.Reminder{{IsActive: true}, {IsActive: false}, {IsActive: true}})
	if got != 2 {
		t.Errorf("ActiveReminders() = %d, want 2", got)
	}
}
