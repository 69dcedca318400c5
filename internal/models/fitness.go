package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/quantumlife/internal/constants"
)

type FitnessActivity struct {
	Meta
	ActivityType     string `json:"activityType"`
	Duration         int    `json:"duration"` // minutes
	CaloriesBurned   int    `json:"caloriesBurned"`
	ActivityDate     string `json:"activityDate"` // YYYY-MM-DD
	PerformanceNotes string `json:"performanceNotes,omitempty"`
}

func (FitnessActivity) CollectionName() string { return constants.CollectionFitnessActivities }

func (a FitnessActivity) WithID(id string) FitnessActivity {
	a.ID = id
	return a
}

func (a FitnessActivity) Validate() error {
	if strings.TrimSpace(a.ActivityType) == "" {
		return fmt.Errorf("activity type cannot be empty")
	}
	if a.Duration < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	if a.CaloriesBurned < 0 {
		return fmt.Errorf("calories burned cannot be negative")
	}
	if a.ActivityDate != "" {
		if _, err := time.Parse(constants.DateFormat, a.ActivityDate); err != nil {
			return fmt.Errorf("invalid activity date (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

type FitnessActivityPatch struct {
	ActivityType     *string `json:"activityType,omitempty"`
	Duration         *int    `json:"duration,omitempty"`
	CaloriesBurned   *int    `json:"caloriesBurned,omitempty"`
	ActivityDate     *string `json:"activityDate,omitempty"`
	PerformanceNotes *string `json:"performanceNotes,omitempty"`
}

func (p FitnessActivityPatch) Apply(a FitnessActivity) FitnessActivity {
	setString(&a.ActivityType, p.ActivityType)
	setInt(&a.Duration, p.Duration)
	setInt(&a.CaloriesBurned, p.CaloriesBurned)
	setString(&a.ActivityDate, p.ActivityDate)
	setString(&a.PerformanceNotes, p.PerformanceNotes)
	return a
}
