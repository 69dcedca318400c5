package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/quantumlife/internal/backup"
	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/keyring"
	"github.com/julianstephens/quantumlife/internal/logger"
	"github.com/julianstephens/quantumlife/internal/preferences"
	"github.com/julianstephens/quantumlife/internal/validation"
)

// errWarning marks a check result that should not fail the run.
var errWarning = errors.New("warning")

type warning struct{ msg string }

func (w warning) Error() string { return w.msg }
func (w warning) Is(target error) bool {
	return target == errWarning
}

func warnf(format string, args ...any) error {
	return warning{msg: fmt.Sprintf(format, args...)}
}

type check struct {
	name string
	// needsStore skips the check when the store could not be reached.
	needsStore bool
	run        func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Schema version", needsStore: true, run: checkSchemaVersion},
	{name: "Migrations complete", needsStore: true, run: checkMigrationsComplete},
	{name: "Backups present", run: checkBackupsPresent},
	{name: "Data validation", needsStore: true, run: checkValidation},
	{name: "Clock/timezone", run: checkClockTimezone},
	{name: "OS keyring", run: checkKeyring},
	{name: "Log directory", run: checkLogDir},
	{name: "Preferences cache", run: checkPreferences},
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := true

	// Check 1: store reachable, every other store check depends on it
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
		storeReachable = false
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
	}

	for _, c := range checks {
		if c.needsStore && !storeReachable {
			fmt.Printf("⊘ %s: SKIPPED (store not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case errors.Is(err, errWarning):
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %s\n", indent(err.Error()))
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %s\n", indent(err.Error()))
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func indent(s string) string {
	return strings.ReplaceAll(strings.TrimRight(s, "\n"), "\n", "\n   ")
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Provider.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	rctx, cancel := ctx.Timeout()
	defer cancel()
	if _, err := ctx.Provider.ListAll(rctx, constants.CollectionUserSettings, nil, collection.Options{Limit: 1}); err != nil {
		return fmt.Errorf("failed to query store: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	m, ok := ctx.Provider.(migrator)
	if !ok {
		// The remote server manages its own schema
		return nil
	}
	st, err := m.SchemaStatus()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	if st.Current > st.Latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", st.Current, st.Latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	m, ok := ctx.Provider.(migrator)
	if !ok {
		return nil
	}
	st, err := m.SchemaStatus()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	if !st.UpToDate() {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", st.Current, st.Latest)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	store, ok := ctx.SQLite()
	if !ok {
		return nil
	}
	backups, err := backup.NewManager(store.GetConfigPath()).List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return warnf("no backups found - consider creating one with '%s backup create'", constants.AppName)
	}
	return nil
}

func checkValidation(ctx *cli.Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	data, err := ctx.LoadData(rctx)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	result := validation.New().Validate(data)
	if !result.HasIssues() {
		return nil
	}
	for _, issue := range result.Issues {
		if issue.Type == validation.IssueInvalidRecord || issue.Type == validation.IssueMultipleSettings {
			return errors.New(result.FormatReport())
		}
	}
	return warnf("%s", result.FormatReport())
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if ctx.Location == nil {
		return nil
	}
	if _, err := time.LoadLocation(ctx.Location.String()); err != nil {
		return fmt.Errorf("timezone %q cannot be loaded: %w", ctx.Location.String(), err)
	}
	return nil
}

func checkKeyring(_ *cli.Context) error {
	if !keyring.IsAvailable() {
		return warnf("OS keyring is not available; secrets must come from environment variables")
	}
	return nil
}

func checkLogDir(ctx *cli.Context) error {
	if ctx.ConfigDir == "" {
		return nil
	}
	dir := filepath.Dir(logger.LogPath(ctx.ConfigDir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create log directory %s: %w", dir, err)
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("log directory %s is not writable: %w", dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

func checkPreferences(ctx *cli.Context) error {
	if ctx.ConfigDir == "" {
		return nil
	}
	cache := preferences.NewCache(ctx.ConfigDir)
	if _, _, err := cache.Load(); err != nil {
		return warnf("preferences cache %s is unreadable and will be rebuilt: %v", cache.Path(), err)
	}
	return nil
}
