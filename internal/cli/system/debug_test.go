package system

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/collection/memory"
	"github.com/julianstephens/quantumlife/internal/collection/sqlite"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/models"
)

func setupTestDebugDB(t *testing.T) (*cli.Context, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	ctx := &cli.Context{
		Provider:  store,
		ConfigDir: tempDir,
	}

	cleanup := func() {
		store.Close()
	}

	return ctx, cleanup
}

func TestDebugDBPathCmd(t *testing.T) {
	ctx, cleanup := setupTestDebugDB(t)
	defer cleanup()

	cmd := &DebugDBPathCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("debug db-path command failed: %v", err)
	}
}

func TestDebugDumpCmd_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     DebugDumpCmd
		wantErr bool
	}{
		{"known collection", DebugDumpCmd{Collection: constants.CollectionHabits}, false},
		{"unknown collection", DebugDumpCmd{Collection: "tasks"}, true},
		{"negative limit", DebugDumpCmd{Collection: constants.CollectionGoals, Limit: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDebugDumpCmd(t *testing.T) {
	ctx, cleanup := setupTestDebugDB(t)
	defer cleanup()

	mustCreate(t, ctx.Provider, models.NewHabit("Meditate", "Daily").WithID("test-habit-id"))

	t.Run("whole collection", func(t *testing.T) {
		cmd := &DebugDumpCmd{Collection: constants.CollectionHabits}
		if err := cmd.Run(ctx); err != nil {
			t.Errorf("debug dump failed: %v", err)
		}
	})

	t.Run("single record", func(t *testing.T) {
		cmd := &DebugDumpCmd{Collection: constants.CollectionHabits, ID: "test-habit-id"}
		if err := cmd.Run(ctx); err != nil {
			t.Errorf("debug dump of an existing record failed: %v", err)
		}
	})

	t.Run("missing record", func(t *testing.T) {
		cmd := &DebugDumpCmd{Collection: constants.CollectionHabits, ID: "nonexistent"}
		err := cmd.Run(ctx)
		if !errors.Is(err, collection.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("empty collection", func(t *testing.T) {
		cmd := &DebugDumpCmd{Collection: constants.CollectionReminders}
		if err := cmd.Run(ctx); err != nil {
			t.Errorf("debug dump of an empty collection failed: %v", err)
		}
	})
}

func TestCountRecords(t *testing.T) {
	seed := func(p collection.Provider) {
		mustCreate(t, p, models.NewHabit("Read", "Daily").WithID("h1"))
		mustCreate(t, p, models.NewHabit("Run", "Daily").WithID("h2"))
		mustCreate(t, p, models.DefaultUserSettings().WithID("s1"))
	}

	sqliteCtx, cleanup := setupTestDebugDB(t)
	defer cleanup()

	providers := map[string]collection.Provider{
		"sqlite": sqliteCtx.Provider,
		"memory": memory.New(),
	}

	for name, p := range providers {
		t.Run(name, func(t *testing.T) {
			seed(p)
			counts, err := countRecords(context.Background(), p)
			if err != nil {
				t.Fatalf("countRecords() error = %v", err)
			}
			if len(counts) != len(constants.Collections) {
				t.Errorf("got %d collections, want %d", len(counts), len(constants.Collections))
			}
			if counts[constants.CollectionHabits] != 2 {
				t.Errorf("habits = %d, want 2", counts[constants.CollectionHabits])
			}
			if counts[constants.CollectionUserSettings] != 1 {
				t.Errorf("usersettings = %d, want 1", counts[constants.CollectionUserSettings])
			}
			if counts[constants.CollectionGoals] != 0 {
				t.Errorf("goals = %d, want 0", counts[constants.CollectionGoals])
			}
		})
	}
}
