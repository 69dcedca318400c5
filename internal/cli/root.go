package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/quantumlife/internal/backup"
	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/collection/sqlite"
	"github.com/julianstephens/quantumlife/internal/logger"
	"github.com/julianstephens/quantumlife/internal/models"
	"github.com/julianstephens/quantumlife/internal/preferences"
	"github.com/julianstephens/quantumlife/internal/utils"
	"github.com/julianstephens/quantumlife/internal/validation"
)

// CommandTimeout bounds a single store round trip from the CLI.
const CommandTimeout = 30 * time.Second

type Context struct {
	Provider  collection.Provider
	ConfigDir string
	Location  *time.Location
	Now       func() time.Time
}

func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Clock returns the current time in the configured location.
func (c *Context) Clock() time.Time {
	return c.now().In(c.Loc())
}

// Loc returns the configured location, defaulting to local time.
func (c *Context) Loc() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.Local
}

// Timeout returns a context bounded by CommandTimeout.
func (c *Context) Timeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), CommandTimeout)
}

// Preferences returns the manager for the local cache and the settings record.
func (c *Context) Preferences() *preferences.Manager {
	return preferences.NewManager(preferences.NewCache(c.ConfigDir), c.Provider)
}

// SQLite returns the local store when the CLI runs against one.
func (c *Context) SQLite() (*sqlite.Store, bool) {
	s, ok := c.Provider.(*sqlite.Store)
	return s, ok
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	store, ok := c.SQLite()
	if !ok {
		return
	}
	ctx, cancel := c.Timeout()
	defer cancel()

	mgr := backup.NewManager(store.GetConfigPath())
	if _, err := mgr.Create(ctx); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// LoadData reads every collection for a whole-store check.
func (c *Context) LoadData(ctx context.Context) (validation.Data, error) {
	return validation.Load(ctx, c.Provider)
}

// Find returns the record whose id equals ref or, failing that, the single
// record whose id starts with ref.
func Find[T models.Record[T]](ctx context.Context, p collection.Provider, ref string) (T, error) {
	var zero T
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return zero, collection.ErrMissingID
	}

	coll := collection.For[T](p)
	items, err := coll.ListAll(ctx, nil, collection.Options{})
	if err != nil {
		return zero, err
	}

	var matches []T
	for _, item := range items {
		if item.GetID() == ref {
			return item, nil
		}
		if strings.HasPrefix(item.GetID(), ref) {
			matches = append(matches, item)
		}
	}
	switch len(matches) {
	case 0:
		return zero, fmt.Errorf("%s %q: %w", coll.Name(), ref, collection.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return zero, fmt.Errorf("id prefix %q is ambiguous (%d %s match)", ref, len(matches), coll.Name())
	}
}

// ShortID trims a UUID for table output.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	return utils.Truncate(s, n)
}

// PrintJSON writes v as indented JSON to stdout.
func PrintJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
