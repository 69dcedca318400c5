package models

import (
	"fmt"
	"strings"

	"github.com/julianstephens/quantumlife/internal/constants"
)

type Habit struct {
	Meta
	HabitName   string `json:"habitName"`
	Frequency   string `json:"frequency"`
	StreakCount int    `json:"streakCount"`
	IsCompleted bool   `json:"isCompleted"`
	HabitImage  string `json:"habitImage,omitempty"`
}

func (Habit) CollectionName() string { return constants.CollectionHabits }

func (h Habit) WithID(id string) Habit {
	h.ID = id
	return h
}

// NewHabit builds a habit from form input. Streak and completion always start cleared.
func NewHabit(name, frequency string) Habit {
	if frequency == "" {
		frequency = constants.DefaultHabitFrequency
	}
	return Habit{HabitName: strings.TrimSpace(name), Frequency: frequency}
}

func (h Habit) Validate() error {
	if strings.TrimSpace(h.HabitName) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if h.StreakCount < 0 {
		return fmt.Errorf("streak count cannot be negative")
	}
	return nil
}

// ToggleCompleted returns the patch that flips completion. The streak grows by
// one when a habit becomes completed and is left alone when it is un-completed.
func (h Habit) ToggleCompleted() HabitPatch {
	completed := !h.IsCompleted
	streak := h.StreakCount
	if completed {
		streak++
	}
	return HabitPatch{IsCompleted: &completed, StreakCount: &streak}
}

type HabitPatch struct {
	HabitName   *string `json:"habitName,omitempty"`
	Frequency   *string `json:"frequency,omitempty"`
	StreakCount *int    `json:"streakCount,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
	HabitImage  *string `json:"habitImage,omitempty"`
}

func (p HabitPatch) Apply(h Habit) Habit {
	setString(&h.HabitName, p.HabitName)
	setString(&h.Frequency, p.Frequency)
	setInt(&h.StreakCount, p.StreakCount)
	setBool(&h.IsCompleted, p.IsCompleted)
	setString(&h.HabitImage, p.HabitImage)
	return h
}
