package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/collection/postgres"
	"github.com/julianstephens/quantumlife/internal/collection/remote"
	"github.com/julianstephens/quantumlife/internal/collection/sqlite"
	"github.com/julianstephens/quantumlife/internal/constants"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting the existing SQLite database before initialization."`
	Source string `help:"Source database path, PostgreSQL connection string or server URL to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	// Initialize destination store
	if err := ctx.Provider.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized %s storage at: %s\n", constants.AppName, ctx.Provider.GetConfigPath())

	// If source is provided, migrate data
	if c.Source != "" {
		fmt.Printf("Migrating data from: %s\n", c.Source)
		source, err := openSource(c.Source)
		if err != nil {
			return err
		}
		if err := source.Load(); err != nil {
			return fmt.Errorf("failed to load source database: %w", err)
		}
		defer source.Close()

		rctx, cancel := context.WithTimeout(context.Background(), 5*cli.CommandTimeout)
		defer cancel()
		if err := CopyCollections(rctx, source, ctx.Provider, func(name string, n int) {
			fmt.Printf("    Migrated %d %s\n", n, name)
		}); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

// reset deletes the SQLite file. Other backends are never dropped from the CLI.
func (c *InitCmd) reset(ctx *cli.Context) error {
	store, ok := ctx.SQLite()
	if !ok {
		return fmt.Errorf("--force is only supported for the local SQLite store")
	}
	dbPath := store.GetConfigPath()

	// Don't delete if it's the source (user error protection)
	if c.Source != "" {
		absDbPath, err := filepath.Abs(dbPath)
		if err == nil {
			dbPath = absDbPath
		}
		absSource, err := filepath.Abs(c.Source)
		if err == nil && absSource == dbPath {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		// Close first to prevent file locking issues
		if err := store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("failed to delete existing database: %w", err)
		}
		fmt.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}

func openSource(source string) (collection.Provider, error) {
	switch {
	case remote.IsURL(source):
		return remote.New(source), nil
	case postgres.IsConnString(source):
		if err := postgres.ValidateConnString(source); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return nil, err
		}
		return postgres.New(source), nil
	default:
		return sqlite.NewStore(source), nil
	}
}

// CopyCollections copies every record of every collection from src to dst,
// keeping ids. Records that already exist in dst are skipped.
func CopyCollections(ctx context.Context, src, dst collection.Provider, progress func(name string, n int)) error {
	for _, name := range constants.Collections {
		res, err := src.ListAll(ctx, name, nil, collection.Options{})
		if err != nil {
			return fmt.Errorf("failed to read %s from source: %w", name, err)
		}
		copied := 0
		for _, doc := range res.Items {
			_, err := dst.Create(ctx, name, doc)
			if errors.Is(err, collection.ErrConflict) {
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to copy %s %s: %w", name, doc.ID(), err)
			}
			copied++
		}
		if progress != nil {
			progress(name, copied)
		}
	}
	return nil
}
