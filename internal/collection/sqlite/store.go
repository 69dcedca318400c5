// Package sqlite stores collections in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/collection/sqldoc"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/logger"
	"github.com/julianstephens/quantumlife/internal/migration"
	"github.com/julianstephens/quantumlife/migrations"
)

type Store struct {
	path  string
	db    *sql.DB
	table *sqldoc.Table
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// Init creates the database file if needed and applies pending migrations.
func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.Migrate(nil); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Load opens an existing database and checks its schema version.
func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	if err := s.open(); err != nil {
		return err
	}
	return s.runner().ValidateVersion()
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// Controllers persist from goroutines; a single connection serializes writers
	// instead of surfacing "database is locked".
	db.SetMaxOpenConns(1)

	s.db = db
	s.table = sqldoc.New(db, migration.SQLite)
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		s.table = nil
		return err
	}
	return nil
}

func (s *Store) runner() *migration.Runner {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		// The embedded directory is fixed at build time.
		panic(fmt.Sprintf("sqlite migrations missing: %v", err))
	}
	return migration.NewRunner(s.db, subFS, migration.SQLite)
}

// Migrate applies pending migrations and returns how many ran.
func (s *Store) Migrate(logFn func(string)) (int, error) {
	if err := s.open(); err != nil {
		return 0, err
	}
	n, err := s.runner().ApplyMigrations(logFn)
	if err == nil && n > 0 {
		logger.Info("Applied sqlite migrations", "count", n, "path", s.path)
	}
	return n, err
}

// SchemaStatus reports the schema version against the embedded migrations.
func (s *Store) SchemaStatus() (migration.Status, error) {
	if s.db == nil {
		return migration.Status{}, fmt.Errorf("database not open")
	}
	return s.runner().Status()
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection, or nil before Init/Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}

func (s *Store) ready() error {
	if s.table == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *Store) ListAll(ctx context.Context, name string, filter collection.Filter, opts collection.Options) (collection.Result, error) {
	if err := s.ready(); err != nil {
		return collection.Result{}, err
	}
	return s.table.ListAll(ctx, name, filter, opts)
}

func (s *Store) Create(ctx context.Context, name string, doc collection.Document) (collection.Document, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.table.Create(ctx, name, doc)
}

func (s *Store) Update(ctx context.Context, name string, partial collection.Document) (collection.Document, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.table.Update(ctx, name, partial)
}

func (s *Store) Delete(ctx context.Context, name string, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.table.Delete(ctx, name, id)
}

// Counts returns the number of stored records per collection.
func (s *Store) Counts(ctx context.Context) (map[string]int, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.table.Count(ctx)
}
