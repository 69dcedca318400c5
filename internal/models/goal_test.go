package models

import "testing"

func TestGoal_IsActive(t *testing.T) {
	tests := []struct {
		name     string
		progress *int
		want     bool
	}{
		{"missing progress", nil, true},
		{"zero", Ptr(0), true},
		{"ninety nine", Ptr(99), true},
		{"exactly one hundred", Ptr(100), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Goal{GoalTitle: "Run a marathon", ProgressPercentage: tt.progress}
			if got := g.IsActive(); got != tt.want {
				t.Errorf("IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGoal_Validate(t *testing.T) {
	tests := []struct {
		name    string
		goal    Goal
		wantErr bool
	}{
		{"valid", Goal{GoalTitle: "Learn Go", TargetDate: "2026-12-31", ProgressPercentage: Ptr(40)}, false},
		{"no target date", Goal{GoalTitle: "Learn Go"}, false},
		{"empty title", Goal{}, true},
		{"progress above range", Goal{GoalTitle: "x", ProgressPercentage: Ptr(101)}, true},
		{"negative progress", Goal{GoalTitle: "x", ProgressPercentage: Ptr(-1)}, true},
		{"bad date", Goal{GoalTitle: "x", TargetDate: "12/31/2026"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.goal.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGoalPatch_ApplyCopiesProgress(t *testing.T) {
	progress := 25
	g := GoalPatch{ProgressPercentage: &progress}.Apply(Goal{GoalTitle: "Save"})
	progress = 90

	if g.Progress() != 25 {
		t.Errorf("Progress() = %d after mutating patch source, want 25", g.Progress())
	}
}
