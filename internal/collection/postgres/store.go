// Package postgres stores collections in a shared PostgreSQL database, in a
// schema named after the application.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/collection/sqldoc"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/logger"
	"github.com/julianstephens/quantumlife/internal/migration"
	"github.com/julianstephens/quantumlife/migrations"
)

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

type Store struct {
	connStr string
	db      *sql.DB
	table   *sqldoc.Table
}

func New(connStr string) *Store {
	return &Store{connStr: withSearchPath(connStr)}
}

// IsConnString reports whether s looks like a PostgreSQL URL.
func IsConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// withSearchPath pins search_path to the application schema unless the
// connection string already sets one.
func withSearchPath(connStr string) string {
	if IsConnString(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			logger.Warn("Failed to parse Postgres connection string", "error", err)
			return connStr
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
		}
		return u.String()
	}
	if dsnHasKey(connStr, "search_path") {
		return connStr
	}
	return strings.TrimSpace(connStr) + " search_path=" + constants.AppName
}

// dsnHasKey reports whether a space-separated key=value DSN sets key (case-insensitive).
func dsnHasKey(connStr, key string) bool {
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], key) {
			return true
		}
	}
	return false
}

// hasSSLMode checks URL query and DSN forms for an sslmode parameter.
func hasSSLMode(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for key := range u.Query() {
			if strings.EqualFold(key, "sslmode") {
				return true
			}
		}
	}
	return dsnHasKey(connStr, "sslmode")
}

// ValidateConnString checks that connStr is a well-formed PostgreSQL URL or
// DSN and that it carries no password.
func ValidateConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}

	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}

	if IsConnString(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return fmt.Errorf("%w: failed to parse connection URL: %v", ErrInvalidConnectionString, err)
		}
		if _, isSet := u.User.Password(); isSet {
			return ErrEmbeddedCredentials
		}
		if u.Host == "" && u.User == nil && (u.Path == "" || u.Path == "/") {
			return fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
		}
		return nil
	}

	if dsnHasKey(connStr, "password") {
		return ErrEmbeddedCredentials
	}
	return nil
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(s.connStr) {
			return fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	s.db = db
	s.table = sqldoc.New(db, migration.Postgres)
	return nil
}

// Init creates the application schema and applies pending migrations.
func (s *Store) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec("CREATE SCHEMA IF NOT EXISTS " + pq.QuoteIdentifier(constants.AppName)); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := s.Migrate(nil); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
	return s.runner().ValidateVersion()
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
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		panic(fmt.Sprintf("postgres migrations missing: %v", err))
	}
	return migration.NewRunner(s.db, subFS, migration.Postgres)
}

// Migrate applies pending migrations and returns how many ran.
func (s *Store) Migrate(logFn func(string)) (int, error) {
	if err := s.open(); err != nil {
		return 0, err
	}
	n, err := s.runner().ApplyMigrations(logFn)
	if err == nil && n > 0 {
		logger.Info("Applied postgres migrations", "count", n)
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

// GetConfigPath returns a non-sensitive identifier instead of the connection string.
func (s *Store) GetConfigPath() string {
	return "postgresql"
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
