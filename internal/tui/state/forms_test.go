package state

import (
	"testing"
	"time"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/models"
)

func TestGoalFormModel(t *testing.T) {
	tests := []struct {
		name     string
		progress string
		want     *int
		wantErr  bool
	}{
		{name: "empty progress stays unset", progress: "", want: nil},
		{name: "whitespace progress stays unset", progress: "  ", want: nil},
		{name: "numeric progress", progress: "40", want: models.Ptr(40)},
		{name: "non numeric progress", progress: "forty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := GoalFormModel{Title: " Run a 10k ", Progress: tt.progress}
			g, err := f.Record()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.GoalTitle != "Run a 10k" {
				t.Errorf("expected trimmed title, got %q", g.GoalTitle)
			}
			switch {
			case tt.want == nil && g.ProgressPercentage != nil:
				t.Errorf("expected nil progress, got %d", *g.ProgressPercentage)
			case tt.want != nil && (g.ProgressPercentage == nil || *g.ProgressPercentage != *tt.want):
				t.Errorf("expected progress %d, got %v", *tt.want, g.ProgressPercentage)
			}
		})
	}
}

func TestNewGoalFormModel_Prefills(t *testing.T) {
	g := models.Goal{GoalTitle: "Read", ProgressPercentage: models.Ptr(25), Category: "learning"}
	f := NewGoalFormModel(&g)
	if f.Title != "Read" || f.Progress != "25" || f.Category != "learning" {
		t.Errorf("unexpected form: %+v", f)
	}
}

func TestHabitFormModel(t *testing.T) {
	f := NewHabitFormModel(nil)
	if f.Frequency != constants.DefaultHabitFrequency {
		t.Errorf("expected default frequency, got %q", f.Frequency)
	}
	f.Name = "  Journal  "
	h := f.Record()
	if h.HabitName != "Journal" || h.IsCompleted || h.StreakCount != 0 {
		t.Errorf("unexpected habit: %+v", h)
	}

	// Editing must not touch the streak or completion
	existing := models.Habit{HabitName: "Journal", Frequency: "Daily", StreakCount: 7, IsCompleted: true}
	patched := NewHabitFormModel(&existing).Patch().Apply(existing)
	if patched.StreakCount != 7 || !patched.IsCompleted {
		t.Errorf("edit changed progress fields: %+v", patched)
	}
}

func TestWellnessFormModel_Defaults(t *testing.T) {
	at := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
	f := WellnessFormModel{}
	c, err := f.Record(at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.MoodRating != constants.DefaultWellnessRating || c.StressLevel != constants.DefaultWellnessRating || c.EnergyLevel != constants.DefaultWellnessRating {
		t.Errorf("expected default ratings, got %+v", c)
	}
	if !c.CheckinDateTime.Equal(at) {
		t.Errorf("expected check-in at %v, got %v", at, c.CheckinDateTime)
	}

	f.Mood = "high"
	if _, err := f.Record(at); err == nil {
		t.Error("expected an error for a non numeric mood")
	}
}

func TestFitnessFormModel(t *testing.T) {
	f := NewFitnessFormModel(nil, "2025-03-10")
	if f.Date != "2025-03-10" || f.Calories != "0" {
		t.Fatalf("unexpected defaults: %+v", f)
	}
	f.Activity = "Swim"
	f.Duration = "30"
	a, err := f.Record()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Duration != 30 || a.ActivityDate != "2025-03-10" {
		t.Errorf("unexpected activity: %+v", a)
	}

	f.Duration = ""
	if _, err := f.Record(); err == nil {
		t.Error("expected an error for a missing duration")
	}
}

func TestReminderFormModel(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	now := time.Date(2025, 3, 10, 14, 7, 30, 0, time.UTC)

	f := NewReminderFormModel(nil, now, loc)
	if f.Recurrence != constants.RecurrenceNone || !f.Active {
		t.Errorf("unexpected defaults: %+v", f)
	}
	// One hour ahead in the form's location, whole minutes
	if f.At != "2025-03-10T11:07" {
		t.Errorf("expected 2025-03-10T11:07, got %q", f.At)
	}

	f.Title = "Water"
	r, err := f.Record(loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, 3, 10, 15, 7, 0, 0, time.UTC)
	if !r.ReminderDateTime.Equal(want) {
		t.Errorf("expected %v, got %v", want, r.ReminderDateTime)
	}

	f.At = "tomorrow"
	if _, err := f.Record(loc); err == nil {
		t.Error("expected an error for an unparseable time")
	}
}

func TestPostFormModel_PatchKeepsAuthor(t *testing.T) {
	post := models.CommunityPost{AuthorDisplayName: "sam", PostContent: "hi", LikeCount: 3}
	f := NewPostFormModel(&post, "someone-else")
	f.Author = "changed"
	f.Content = "<script>x</script>hello"

	got := f.Patch().Apply(post)
	if got.AuthorDisplayName != "sam" {
		t.Errorf("author changed to %q", got.AuthorDisplayName)
	}
	if got.LikeCount != 3 {
		t.Errorf("likes changed to %d", got.LikeCount)
	}
	if got.PostContent != "hello" {
		t.Errorf("expected sanitized content, got %q", got.PostContent)
	}
}

func TestSettingsFormModel_Apply(t *testing.T) {
	s := models.DefaultUserSettings().WithID("settings-1")
	f := NewSettingsFormModel(s)
	f.Theme = constants.ThemeLight
	f.Language = "fr"
	f.ShareActivityData = true

	got := f.Apply(s)
	if got.ID != "settings-1" {
		t.Errorf("expected id kept, got %q", got.ID)
	}
	if got.ThemePreference != constants.ThemeLight || got.LanguagePreference != "fr" || !got.ShareActivityData {
		t.Errorf("unexpected settings: %+v", got)
	}
}
