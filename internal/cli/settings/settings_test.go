package settings

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/collection/sqlite"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/preferences"
)

func setupTestDB(t *testing.T) (*cli.Context, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	ctx := &cli.Context{
		Provider:  store,
		ConfigDir: tempDir,
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, cleanup
}

func loadSettings(t *testing.T, ctx *cli.Context) (models.UserSettings, bool) {
	t.Helper()
	s, ok, err := preferences.LoadSettings(context.Background(), collection.For[models.UserSettings](ctx.Provider))
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	return s, ok
}

func TestSettingsCmd_List(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	cmd := &SettingsCmd{
		List: true,
	}

	err := cmd.Run(ctx)
	if err != nil {
		t.Errorf("settings list failed: %v", err)
	}

	if _, ok := loadSettings(t, ctx); ok {
		t.Error("listing settings should not create a settings record")
	}
}

func TestSettingsCmd_NoChanges(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&SettingsCmd{}).Run(ctx); err != nil {
		t.Errorf("settings without flags failed: %v", err)
	}
	if _, ok := loadSettings(t, ctx); ok {
		t.Error("expected no settings record to be created")
	}
}

func TestSettingsCmd_CreatesRecordOnFirstSave(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	off := false
	cmd := &SettingsCmd{
		EnableNotifications: &off,
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	s, ok := loadSettings(t, ctx)
	if !ok {
		t.Fatal("expected a settings record after saving")
	}
	if s.EnableNotifications {
		t.Error("expected notifications to be disabled")
	}
	// Untouched fields keep their defaults
	if s.ThemePreference != constants.DefaultTheme {
		t.Errorf("expected default theme %q, got %q", constants.DefaultTheme, s.ThemePreference)
	}
	if !s.NotificationSound {
		t.Error("expected notification sound to keep its default")
	}
}

func TestSettingsCmd_UpdatesSingleton(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	on := true
	if err := (&SettingsCmd{ShareActivityData: &on}).Run(ctx); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	if err := (&SettingsCmd{Language: "fr"}).Run(ctx); err != nil {
		t.Fatalf("second update failed: %v", err)
	}

	all, err := collection.For[models.UserSettings](ctx.Provider).ListAll(context.Background(), nil, collection.Options{})
	if err != nil {
		t.Fatalf("failed to list settings: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one settings record, got %d", len(all))
	}
	if !all[0].ShareActivityData || all[0].LanguagePreference != "fr" {
		t.Errorf("expected both updates to be kept, got %+v", all[0])
	}
}

func TestSettingsCmd_ThemeUpdatesLocalCache(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	if err := (&SettingsCmd{Theme: "light"}).Run(ctx); err != nil {
		t.Fatalf("settings update failed: %v", err)
	}

	local, ok, err := preferences.NewCache(ctx.ConfigDir).Load()
	if err != nil {
		t.Fatalf("failed to read cache: %v", err)
	}
	if !ok {
		t.Fatal("expected the local preferences cache to be written")
	}
	if local.Theme != constants.ThemeLight {
		t.Errorf("expected cached theme light, got %q", local.Theme)
	}

	s, _ := loadSettings(t, ctx)
	if s.ThemePreference != constants.ThemeLight {
		t.Errorf("expected stored theme light, got %q", s.ThemePreference)
	}
}

func TestSettingsCmd_InvalidTheme(t *testing.T) {
	ctx, cleanup := setupTestDB(t)
	defer cleanup()

	err := (&SettingsCmd{Theme: "neon"}).Run(ctx)
	if err == nil {
		t.Fatal("expected error for invalid theme, got nil")
	}
	if _, ok := loadSettings(t, ctx); ok {
		t.Error("invalid settings should not be saved")
	}
}
