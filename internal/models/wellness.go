package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/quantumlife/internal/constants"
)

type WellnessCheckin struct {
	Meta
	MoodRating      int       `json:"moodRating"`
	StressLevel     int       `json:"stressLevel"`
	EnergyLevel     int       `json:"energyLevel"`
	JournalEntry    string    `json:"journalEntry,omitempty"`
	ActivityType    string    `json:"activityType,omitempty"`
	CheckinDateTime time.Time `json:"checkinDateTime"`
}

func (WellnessCheckin) CollectionName() string { return constants.CollectionWellnessCheckins }

func (c WellnessCheckin) WithID(id string) WellnessCheckin {
	c.ID = id
	return c
}

// NewWellnessCheckin returns a check-in with every rating at the form default.
func NewWellnessCheckin(at time.Time) WellnessCheckin {
	return WellnessCheckin{
		MoodRating:      constants.DefaultWellnessRating,
		StressLevel:     constants.DefaultWellnessRating,
		EnergyLevel:     constants.DefaultWellnessRating,
		CheckinDateTime: at,
	}
}

func (c WellnessCheckin) Validate() error {
	ratings := []struct {
		name  string
		value int
	}{
		{"mood rating", c.MoodRating},
		{"stress level", c.StressLevel},
		{"energy level", c.EnergyLevel},
	}
	for _, r := range ratings {
		if r.value < constants.MinRating || r.value > constants.MaxRating {
			return fmt.Errorf("%s must be between %d and %d, got %d", r.name, constants.MinRating, constants.MaxRating, r.value)
		}
	}
	return nil
}

type WellnessCheckinPatch struct {
	MoodRating      *int       `json:"moodRating,omitempty"`
	StressLevel     *int       `json:"stressLevel,omitempty"`
	EnergyLevel     *int       `json:"energyLevel,omitempty"`
	JournalEntry    *string    `json:"journalEntry,omitempty"`
	ActivityType    *string    `json:"activityType,omitempty"`
	CheckinDateTime *time.Time `json:"checkinDateTime,omitempty"`
}

func (p WellnessCheckinPatch) Apply(c WellnessCheckin) WellnessCheckin {
	setInt(&c.MoodRating, p.MoodRating)
	setInt(&c.StressLevel, p.StressLevel)
	setInt(&c.EnergyLevel, p.EnergyLevel)
	setString(&c.JournalEntry, p.JournalEntry)
	setString(&c.ActivityType, p.ActivityType)
	setTime(&c.CheckinDateTime, p.CheckinDateTime)
	return c
}
