// Package dashboard computes the summary figures shown on the dashboard and
// the per-tracker pages. Everything here is a pure function of loaded lists.
package dashboard

import (
	"math"
	"strconv"

	"github.com/julianstephens/quantumlife/internal/models"
)

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatAverage renders an average with one decimal, or "0" when nothing was averaged.
func FormatAverage(v float64, n int) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return Round1(float64(sum) / float64(len(values)))
}

// CompletedHabits counts completed habits out of the total.
func CompletedHabits(habits []models.Habit) (done, total int) {
	for _, h := range habits {
		if h.IsCompleted {
			done++
		}
	}
	return done, len(habits)
}

// ActiveGoals counts goals still below 100% progress. A missing progress counts as 0.
func ActiveGoals(goals []models.Goal) int {
	n := 0
	for _, g := range goals {
		if g.IsActive() {
			n++
		}
	}
	return n
}

// AverageMood is the mean mood rating rounded to one decimal, 0 for no check-ins.
func AverageMood(checkins []models.WellnessCheckin) float64 {
	moods := make([]int, len(checkins))
	for i, c := range checkins {
		moods[i] = c.MoodRating
	}
	return average(moods)
}

func ActiveReminders(reminders []models.Reminder) int {
	n := 0
	for _, r := range reminders {
		if r.IsActive {
			n++
		}
	}
	return n
}

type FitnessTotals struct {
	Calories int
	Minutes  int
}

func FitnessSummary(activities []models.FitnessActivity) FitnessTotals {
	var t FitnessTotals
	for _, a := range activities {
		t.Calories += a.CaloriesBurned
		t.Minutes += a.Duration
	}
	return t
}

type WellnessAverages struct {
	Mood   float64
	Stress float64
	Energy float64
}

func WellnessSummary(checkins []models.WellnessCheckin) WellnessAverages {
	mood := make([]int, len(checkins))
	stress := make([]int, len(checkins))
	energy := make([]int, len(checkins))
	for i, c := range checkins {
		mood[i] = c.MoodRating
		stress[i] = c.StressLevel
		energy[i] = c.EnergyLevel
	}
	return WellnessAverages{Mood: average(mood), Stress: average(stress), Energy: average(energy)}
}

type ProductivityTotals struct {
	AverageScore float64
	TotalHours   float64
}

func ProductivitySummary(logs []models.ProductivityLog) ProductivityTotals {
	scores := make([]int, len(logs))
	minutes := 0
	for i, l := range logs {
		scores[i] = l.ProductivityScore
		minutes += l.DurationMinutes
	}
	return ProductivityTotals{
		AverageScore: average(scores),
		TotalHours:   Round1(float64(minutes) / 60),
	}
}
