package preferences

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/logger"
	"github.com/julianstephens/quantumlife/internal/models"
)

// LoadSettings returns the singleton settings record. ok is false when none exists.
func LoadSettings(ctx context.Context, coll *collection.Collection[models.UserSettings]) (models.UserSettings, bool, error) {
	items, err := coll.ListAll(ctx, nil, collection.Options{Limit: 1})
	if err != nil {
		return models.UserSettings{}, false, err
	}
	if len(items) == 0 {
		return models.DefaultUserSettings(), false, nil
	}
	s := items[0]
	models.ApplyDefaultSettings(&s)
	return s, true, nil
}

// SaveSettings updates the existing record or creates the first one.
func SaveSettings(ctx context.Context, coll *collection.Collection[models.UserSettings], s models.UserSettings) (models.UserSettings, error) {
	if s.ID != "" {
		return coll.Update(ctx, s.ID, s.Patch())
	}
	existing, ok, err := LoadSettings(ctx, coll)
	if err != nil {
		return models.UserSettings{}, err
	}
	if ok {
		return coll.Update(ctx, existing.ID, s.Patch())
	}
	return coll.Create(ctx, s.WithID(uuid.NewString()))
}

// Manager keeps the cache and the store in agreement.
type Manager struct {
	cache    *Cache
	settings *collection.Collection[models.UserSettings]
	now      func() time.Time
}

// NewManager works offline when p is nil.
func NewManager(cache *Cache, p collection.Provider) *Manager {
	m := &Manager{cache: cache, now: time.Now}
	if p != nil {
		m.settings = collection.For[models.UserSettings](p)
	}
	return m
}

// Sync resolves the current preferences and writes the winner back to
// whichever side is stale. A store failure degrades to the local cache.
func (m *Manager) Sync(ctx context.Context) (Resolution, error) {
	local, hasLocal, err := m.cache.Load()
	if err != nil {
		logger.Warn("Ignoring unreadable preferences cache", "error", err)
		hasLocal = false
	}

	var server *models.UserSettings
	if m.settings != nil {
		s, ok, err := LoadSettings(ctx, m.settings)
		switch {
		case err != nil:
			logger.Warn("Settings unavailable, using local preferences", "error", err)
		case ok:
			server = &s
		}
	}

	res := Resolve(local, hasLocal, server)

	if res.PushToServer {
		patch := models.UserSettingsPatch{ThemePreference: &res.Theme, LanguagePreference: &res.Language}
		if _, err := m.settings.Update(ctx, server.ID, patch); err != nil {
			logger.Warn("Failed to push local preferences", "error", err)
		}
	}
	if res.UpdateLocal {
		if err := m.cache.Save(res.Local()); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Remember writes the cache only, for callers that already saved the
// settings record.
func (m *Manager) Remember(theme constants.ThemePreference, language string) error {
	return m.cache.Save(Local{Theme: theme, Language: language, UpdatedAt: m.now().UTC()})
}

// Set records a new theme and language locally and, when a settings record
// exists, on the server too.
func (m *Manager) Set(ctx context.Context, theme constants.ThemePreference, language string) error {
	local := Local{Theme: theme, Language: language, UpdatedAt: m.now().UTC()}
	if err := m.cache.Save(local); err != nil {
		return err
	}
	if m.settings == nil {
		return nil
	}

	s, ok, err := LoadSettings(ctx, m.settings)
	if err != nil || !ok {
		return err
	}
	patch := models.UserSettingsPatch{ThemePreference: &theme, LanguagePreference: &language}
	_, err = m.settings.Update(ctx, s.ID, patch)
	return err
}
