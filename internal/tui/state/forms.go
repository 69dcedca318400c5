package state

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/utils"
)

// Form records hold exactly what the huh forms edit. Numbers stay strings
// until submit so inputs can be validated as typed.

// HabitFormModel represents the form model for habits
type HabitFormModel struct {
	Name      string
	Frequency string
	Image     string
}

func NewHabitFormModel(h *models.Habit) *HabitFormModel {
	if h == nil {
		return &HabitFormModel{Frequency: constants.DefaultHabitFrequency}
	}
	return &HabitFormModel{Name: h.HabitName, Frequency: h.Frequency, Image: h.HabitImage}
}

func (f HabitFormModel) Record() models.Habit {
	h := models.NewHabit(f.Name, f.Frequency)
	h.HabitImage = strings.TrimSpace(f.Image)
	return h
}

func (f HabitFormModel) Patch() models.HabitPatch {
	return models.HabitPatch{
		HabitName:  models.Ptr(strings.TrimSpace(f.Name)),
		Frequency:  models.Ptr(f.Frequency),
		HabitImage: models.Ptr(strings.TrimSpace(f.Image)),
	}
}

// GoalFormModel represents the form model for goals
type GoalFormModel struct {
	Title       string
	Description string
	TargetDate  string
	Progress    string
	Category    string
}

func NewGoalFormModel(g *models.Goal) *GoalFormModel {
	if g == nil {
		return &GoalFormModel{}
	}
	f := &GoalFormModel{
		Title:       g.GoalTitle,
		Description: g.Description,
		TargetDate:  g.TargetDate,
		Category:    g.Category,
	}
	if g.ProgressPercentage != nil {
		f.Progress = strconv.Itoa(*g.ProgressPercentage)
	}
	return f
}

func (f GoalFormModel) progress() (*int, error) {
	if strings.TrimSpace(f.Progress) == "" {
		return nil, nil
	}
	p, err := atoi("progress", f.Progress)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (f GoalFormModel) Record() (models.Goal, error) {
	p, err := f.progress()
	if err != nil {
		return models.Goal{}, err
	}
	return models.Goal{
		GoalTitle:          strings.TrimSpace(f.Title),
		Description:        strings.TrimSpace(f.Description),
		TargetDate:         strings.TrimSpace(f.TargetDate),
		ProgressPercentage: p,
		Category:           strings.TrimSpace(f.Category),
	}, nil
}

func (f GoalFormModel) Patch() (models.GoalPatch, error) {
	g, err := f.Record()
	if err != nil {
		return models.GoalPatch{}, err
	}
	return models.GoalPatch{
		GoalTitle:          &g.GoalTitle,
		Description:        &g.Description,
		TargetDate:         &g.TargetDate,
		ProgressPercentage: g.ProgressPercentage,
		Category:           &g.Category,
	}, nil
}

// FitnessFormModel represents the form model for fitness activities
type FitnessFormModel struct {
	Activity string
	Duration string
	Calories string
	Date     string
	Notes    string
}

func NewFitnessFormModel(a *models.FitnessActivity, today string) *FitnessFormModel {
	if a == nil {
		return &FitnessFormModel{Calories: "0", Date: today}
	}
	return &FitnessFormModel{
		Activity: a.ActivityType,
		Duration: strconv.Itoa(a.Duration),
		Calories: strconv.Itoa(a.CaloriesBurned),
		Date:     a.ActivityDate,
		Notes:    a.PerformanceNotes,
	}
}

func (f FitnessFormModel) Record() (models.FitnessActivity, error) {
	duration, err := atoi("duration", f.Duration)
	if err != nil {
		return models.FitnessActivity{}, err
	}
	calories, err := atoiDefault("calories", f.Calories, 0)
	if err != nil {
		return models.FitnessActivity{}, err
	}
	return models.FitnessActivity{
		ActivityType:     strings.TrimSpace(f.Activity),
		Duration:         duration,
		CaloriesBurned:   calories,
		ActivityDate:     strings.TrimSpace(f.Date),
		PerformanceNotes: strings.TrimSpace(f.Notes),
	}, nil
}

func (f FitnessFormModel) Patch() (models.FitnessActivityPatch, error) {
	a, err := f.Record()
	if err != nil {
		return models.FitnessActivityPatch{}, err
	}
	return models.FitnessActivityPatch{
		ActivityType:     &a.ActivityType,
		Duration:         &a.Duration,
		CaloriesBurned:   &a.CaloriesBurned,
		ActivityDate:     &a.ActivityDate,
		PerformanceNotes: &a.PerformanceNotes,
	}, nil
}

// WellnessFormModel represents the form model for wellness check-ins
type WellnessFormModel struct {
	Mood     string
	Stress   string
	Energy   string
	Journal  string
	Activity string
}

func NewWellnessFormModel(c *models.WellnessCheckin) *WellnessFormModel {
	if c == nil {
		def := strconv.Itoa(constants.DefaultWellnessRating)
		return &WellnessFormModel{Mood: def, Stress: def, Energy: def}
	}
	return &WellnessFormModel{
		Mood:     strconv.Itoa(c.MoodRating),
		Stress:   strconv.Itoa(c.StressLevel),
		Energy:   strconv.Itoa(c.EnergyLevel),
		Journal:  c.JournalEntry,
		Activity: c.ActivityType,
	}
}

func (f WellnessFormModel) Record(at time.Time) (models.WellnessCheckin, error) {
	c := models.NewWellnessCheckin(at)
	var err error
	if c.MoodRating, err = atoiDefault("mood", f.Mood, constants.DefaultWellnessRating); err != nil {
		return c, err
	}
	if c.StressLevel, err = atoiDefault("stress", f.Stress, constants.DefaultWellnessRating); err != nil {
		return c, err
	}
	if c.EnergyLevel, err = atoiDefault("energy", f.Energy, constants.DefaultWellnessRating); err != nil {
		return c, err
	}
	c.JournalEntry = strings.TrimSpace(f.Journal)
	c.ActivityType = strings.TrimSpace(f.Activity)
	return c, nil
}

// Patch leaves the check-in time unchanged.
func (f WellnessFormModel) Patch() (models.WellnessCheckinPatch, error) {
	c, err := f.Record(time.Time{})
	if err != nil {
		return models.WellnessCheckinPatch{}, err
	}
	return models.WellnessCheckinPatch{
		MoodRating:   &c.MoodRating,
		StressLevel:  &c.StressLevel,
		EnergyLevel:  &c.EnergyLevel,
		JournalEntry: &c.JournalEntry,
		ActivityType: &c.ActivityType,
	}, nil
}

// ProductivityFormModel represents the form model for productivity logs
type ProductivityFormModel struct {
	Name     string
	Duration string
	Score    string
	Tag      string
}

func NewProductivityFormModel(l *models.ProductivityLog) *ProductivityFormModel {
	if l == nil {
		return &ProductivityFormModel{Score: strconv.Itoa(constants.DefaultWellnessRating)}
	}
	return &ProductivityFormModel{
		Name:     l.TaskOrSessionName,
		Duration: strconv.Itoa(l.DurationMinutes),
		Score:    strconv.Itoa(l.ProductivityScore),
		Tag:      l.CategoryTag,
	}
}

func (f ProductivityFormModel) Record(at time.Time) (models.ProductivityLog, error) {
	duration, err := atoi("duration", f.Duration)
	if err != nil {
		return models.ProductivityLog{}, err
	}
	score, err := atoiDefault("score", f.Score, constants.DefaultWellnessRating)
	if err != nil {
		return models.ProductivityLog{}, err
	}
	return models.ProductivityLog{
		TaskOrSessionName: strings.TrimSpace(f.Name),
		DurationMinutes:   duration,
		ProductivityScore: score,
		CategoryTag:       strings.TrimSpace(f.Tag),
		LogDateTime:       at,
	}, nil
}

// Patch leaves the log time unchanged.
func (f ProductivityFormModel) Patch() (models.ProductivityLogPatch, error) {
	l, err := f.Record(time.Time{})
	if err != nil {
		return models.ProductivityLogPatch{}, err
	}
	return models.ProductivityLogPatch{
		TaskOrSessionName: &l.TaskOrSessionName,
		DurationMinutes:   &l.DurationMinutes,
		ProductivityScore: &l.ProductivityScore,
		CategoryTag:       &l.CategoryTag,
	}, nil
}

// ReminderFormModel represents the form model for reminders
type ReminderFormModel struct {
	Title      string
	At         string
	Recurrence constants.RecurrenceRule
	Category   string
	Active     bool
}

func NewReminderFormModel(r *models.Reminder, now time.Time, loc *time.Location) *ReminderFormModel {
	if r == nil {
		next := now.In(loc).Add(time.Hour).Truncate(time.Minute)
		return &ReminderFormModel{
			At:         next.Format(constants.DateTimeFormat),
			Recurrence: constants.RecurrenceNone,
			Active:     true,
		}
	}
	rule := r.RecurrenceRule
	if rule == "" {
		rule = constants.RecurrenceNone
	}
	return &ReminderFormModel{
		Title:      r.ReminderTitle,
		At:         r.ReminderDateTime.In(loc).Format(constants.DateTimeFormat),
		Recurrence: rule,
		Category:   r.TrackerCategory,
		Active:     r.IsActive,
	}
}

func (f ReminderFormModel) Record(loc *time.Location) (models.Reminder, error) {
	at, err := utils.ParseDateTimeInLocation(f.At, loc)
	if err != nil {
		return models.Reminder{}, err
	}
	return models.Reminder{
		ReminderTitle:    strings.TrimSpace(f.Title),
		ReminderDateTime: at,
		RecurrenceRule:   f.Recurrence,
		IsActive:         f.Active,
		TrackerCategory:  f.Category,
	}, nil
}

func (f ReminderFormModel) Patch(loc *time.Location) (models.ReminderPatch, error) {
	r, err := f.Record(loc)
	if err != nil {
		return models.ReminderPatch{}, err
	}
	return models.ReminderPatch{
		ReminderTitle:    &r.ReminderTitle,
		ReminderDateTime: &r.ReminderDateTime,
		RecurrenceRule:   &r.RecurrenceRule,
		IsActive:         &r.IsActive,
		TrackerCategory:  &r.TrackerCategory,
	}, nil
}

// PostFormModel represents the form model for community posts
type PostFormModel struct {
	Author  string
	Content string
	Media   string
}

func NewPostFormModel(p *models.CommunityPost, author string) *PostFormModel {
	if p == nil {
		return &PostFormModel{Author: author}
	}
	return &PostFormModel{Author: p.AuthorDisplayName, Content: p.PostContent, Media: p.MediaAttachment}
}

func (f PostFormModel) Record(at time.Time) models.CommunityPost {
	p := models.NewCommunityPost(f.Author, f.Content, at)
	p.MediaAttachment = strings.TrimSpace(f.Media)
	return p
}

// Patch edits the content only. Author and counters are kept.
func (f PostFormModel) Patch() models.CommunityPostPatch {
	return models.CommunityPostPatch{
		PostContent:     models.Ptr(models.SanitizeContent(f.Content)),
		MediaAttachment: models.Ptr(strings.TrimSpace(f.Media)),
	}
}

// SettingsFormModel represents the form model for settings
type SettingsFormModel struct {
	Theme               constants.ThemePreference
	Language            string
	EnableNotifications bool
	NotificationSound   bool
	ShareActivityData   bool
}

func NewSettingsFormModel(s models.UserSettings) *SettingsFormModel {
	return &SettingsFormModel{
		Theme:               s.ThemePreference,
		Language:            s.LanguagePreference,
		EnableNotifications: s.EnableNotifications,
		NotificationSound:   s.NotificationSound,
		ShareActivityData:   s.ShareActivityData,
	}
}

// Apply copies the form onto s, keeping its identity.
func (f SettingsFormModel) Apply(s models.UserSettings) models.UserSettings {
	s.ThemePreference = f.Theme
	s.LanguagePreference = f.Language
	s.EnableNotifications = f.EnableNotifications
	s.NotificationSound = f.NotificationSound
	s.ShareActivityData = f.ShareActivityData
	return s
}

func atoi(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", field)
	}
	return n, nil
}

func atoiDefault(field, s string, def int) (int, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return atoi(field, s)
}
