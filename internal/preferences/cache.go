// Package preferences reconciles the device-local theme and language cache
// with the usersettings record in the store.
package preferences

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/quantumlife/internal/constants"
)

// Local is the device-local preference cache.
type Local struct {
	Theme     constants.ThemePreference `json:"theme"`
	Language  string                    `json:"language"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

// Cache persists Local as JSON in the config directory.
type Cache struct {
	path string
}

func NewCache(configDir string) *Cache {
	return &Cache{path: filepath.Join(configDir, constants.PreferencesFileName)}
}

func (c *Cache) Path() string {
	return c.path
}

// Load returns the cached preferences. ok is false when nothing is cached yet.
func (c *Cache) Load() (local Local, ok bool, err error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return Local{}, false, nil
	}
	if err != nil {
		return Local{}, false, fmt.Errorf("read preferences: %w", err)
	}
	if err := json.Unmarshal(data, &local); err != nil {
		return Local{}, false, fmt.Errorf("parse preferences %s: %w", c.path, err)
	}
	return local, true, nil
}

// Save writes through a temp file so a crash never leaves half a file.
func (c *Cache) Save(local Local) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(local, "", "  ")
	if err != nil {
		return err
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
