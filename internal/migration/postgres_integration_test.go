package migration

import (
	"database/sql"
	"io/fs"
	"os"
	"testing"

	_ "github.com/lib/pq"

	"github.com/julianstephens/quantumlife/migrations"
)

// openPostgres connects to the disposable database named by
// QUANTUMLIFE_TEST_POSTGRES, e.g.
// postgres://quantumlife@localhost:5432/quantumlife_test?sslmode=disable
func openPostgres(t *testing.T) *sql.DB {
	t.Helper()
	connStr := os.Getenv("QUANTUMLIFE_TEST_POSTGRES")
	if connStr == "" {
		t.Skip("QUANTUMLIFE_TEST_POSTGRES not set")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("failed to open postgres database: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("failed to ping postgres database: %v", err)
	}

	drop := func() {
		_, _ = db.Exec("DROP TABLE IF EXISTS documents")
		_, _ = db.Exec("DROP TABLE IF EXISTS schema_version")
	}
	drop()
	t.Cleanup(func() {
		drop()
		db.Close()
	})
	return db
}

func TestPostgresSetVersion(t *testing.T) {
	db := openPostgres(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_documents.sql": "CREATE TABLE documents (id TEXT);",
	}), Postgres)

	for _, want := range []int{1, 2} {
		if err := runner.SetVersion(want); err != nil {
			t.Fatalf("SetVersion(%d) error = %v", want, err)
		}
		got, err := runner.GetCurrentVersion()
		if err != nil {
			t.Fatalf("GetCurrentVersion() error = %v", err)
		}
		if got != want {
			t.Errorf("GetCurrentVersion() = %d, want %d", got, want)
		}
	}
}

func TestPostgresEmbeddedMigrations(t *testing.T) {
	db := openPostgres(t)
	sub, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		t.Fatalf("fs.Sub() error = %v", err)
	}
	runner := NewRunner(db, sub, Postgres)

	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() on an empty database should ask for a migration")
	}

	n, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}
	latest, err := runner.GetLatestVersion()
	if err != nil {
		t.Fatalf("GetLatestVersion() error = %v", err)
	}
	if n != latest {
		t.Errorf("ApplyMigrations() applied %d, want %d", n, latest)
	}

	var exists bool
	if err := db.QueryRow("SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_name = 'documents')").Scan(&exists); err != nil {
		t.Fatalf("failed to check documents table: %v", err)
	}
	if !exists {
		t.Error("documents table was not created")
	}

	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() after migrating error = %v", err)
	}

	n, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations() error = %v", err)
	}
	if n != 0 {
		t.Errorf("second ApplyMigrations() applied %d, want 0", n)
	}
}
