package system

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/collection/memory"
	"github.com/julianstephens/quantumlife/internal/collection/sqlite"
	"github.com/julianstephens/quantumlife/internal/models"
)

func setupTestInitDB(t *testing.T) (*cli.Context, string, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)

	ctx := &cli.Context{
		Provider:  store,
		ConfigDir: tempDir,
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, dbPath, cleanup
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}
	err := cmd.Run(ctx)

	if err != nil {
		t.Errorf("init command failed: %v", err)
	}

	// Verify database file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}

	// Run init second time - should be idempotent
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("second init failed (should be idempotent): %v", err)
	}
}

func TestInitCmd_ForceDeletesExisting(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("initial init failed: %v", err)
	}

	// Add some data to verify it gets wiped
	mustCreate(t, ctx.Provider, models.NewHabit("Stretch", "Daily").WithID("h1"))

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("init with force failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatalf("database file was not recreated after force")
	}

	habits, err := collection.For[models.Habit](ctx.Provider).ListAll(context.Background(), nil, collection.Options{})
	if err != nil {
		t.Fatalf("failed to list habits after force: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("expected an empty store after force, got %d habits", len(habits))
	}
}

func TestInitCmd_ForceWithNonExistentDatabase(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("database file should not exist initially")
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("init with force on non-existent database failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created")
	}
}

func TestInitCmd_ForceRejectsSameSource(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("initial init failed: %v", err)
	}
	if err := (&InitCmd{Force: true, Source: dbPath}).Run(ctx); err == nil {
		t.Error("expected an error when source and destination are the same")
	}
}

func TestInitCmd_ForceRequiresSQLite(t *testing.T) {
	ctx := &cli.Context{Provider: memory.New()}
	if err := (&InitCmd{Force: true}).Run(ctx); err == nil {
		t.Error("expected --force to be rejected for the memory store")
	}
}

func TestInitCmd_CopiesFromSource(t *testing.T) {
	srcPath := filepath.Join(t.TempDir(), "source.db")
	src := sqlite.NewStore(srcPath)
	if err := src.Init(); err != nil {
		t.Fatalf("failed to init source: %v", err)
	}
	mustCreate(t, src, models.NewHabit("Meditate", "Daily").WithID("h1"))
	mustCreate(t, src, models.DefaultUserSettings().WithID("s1"))
	if err := src.Close(); err != nil {
		t.Fatalf("failed to close source: %v", err)
	}

	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	if err := (&InitCmd{Source: srcPath}).Run(ctx); err != nil {
		t.Fatalf("init with source failed: %v", err)
	}

	h, err := collection.For[models.Habit](ctx.Provider).Get(context.Background(), "h1")
	if err != nil {
		t.Fatalf("habit was not copied: %v", err)
	}
	if h.HabitName != "Meditate" {
		t.Errorf("copied habit name = %q, want Meditate", h.HabitName)
	}
}

func TestCopyCollections_SkipsExisting(t *testing.T) {
	src, dst := memory.New(), memory.New()
	mustCreate(t, src, models.NewHabit("Read", "Daily").WithID("h1"))
	mustCreate(t, src, models.NewHabit("Run", "Daily").WithID("h2"))
	mustCreate(t, dst, models.NewHabit("Read", "Daily").WithID("h1"))

	counts := map[string]int{}
	err := CopyCollections(context.Background(), src, dst, func(name string, n int) {
		counts[name] = n
	})
	if err != nil {
		t.Fatalf("CopyCollections() error = %v", err)
	}

	if got := counts[models.Habit{}.CollectionName()]; got != 1 {
		t.Errorf("copied habits = %d, want 1", got)
	}
	all, err := collection.For[models.Habit](dst).ListAll(context.Background(), nil, collection.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("destination holds %d habits, want 2", len(all))
	}
}
