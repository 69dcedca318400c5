package migration

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func migrationFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name = ?", name).Scan(&count); err != nil {
		t.Fatalf("failed to check table %s: %v", name, err)
	}
	return count > 0
}

func TestGetCurrentVersion(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_documents.sql": "CREATE TABLE documents (id TEXT);",
	}), SQLite)

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() error = %v", err)
	}
	if version != 0 {
		t.Errorf("GetCurrentVersion() = %d, want 0", version)
	}

	if err := runner.SetVersion(5); err != nil {
		t.Fatalf("SetVersion() error = %v", err)
	}
	version, err = runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() error = %v", err)
	}
	if version != 5 {
		t.Errorf("GetCurrentVersion() = %d, want 5", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	runner := NewRunner(setupTestDB(t), migrationFS(map[string]string{
		"002_index.sql":     "CREATE INDEX idx ON documents(id);",
		"001_documents.sql": "CREATE TABLE documents (id TEXT);",
		"README.md":         "not a migration",
	}), SQLite)

	migrations, err := runner.ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles() error = %v", err)
	}
	if len(migrations) != 2 {
		t.Fatalf("ReadMigrationFiles() returned %d migrations, want 2", len(migrations))
	}
	if migrations[0].Version != 1 || migrations[0].Name != "documents" {
		t.Errorf("migrations[0] = %+v, want version 1 named documents", migrations[0])
	}
	if migrations[1].Version != 2 || migrations[1].Name != "index" {
		t.Errorf("migrations[1] = %+v, want version 2 named index", migrations[1])
	}
}

func TestApplyMigrationsFromScratch(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_documents.sql": "CREATE TABLE documents (id TEXT PRIMARY KEY);",
		"002_audit.sql":     "CREATE TABLE audit (id TEXT);",
	}), SQLite)

	var logs []string
	applied, err := runner.ApplyMigrations(func(msg string) { logs = append(logs, msg) })
	if err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}
	if applied != 2 {
		t.Errorf("ApplyMigrations() applied %d, want 2", applied)
	}
	if !tableExists(t, db, "documents") || !tableExists(t, db, "audit") {
		t.Error("expected both tables to exist after migrating")
	}
	if len(logs) == 0 {
		t.Error("expected progress messages")
	}

	version, _ := runner.GetCurrentVersion()
	if version != 2 {
		t.Errorf("version after migrating = %d, want 2", version)
	}
}

func TestApplyMigrationsIncremental(t *testing.T) {
	db := setupTestDB(t)
	first := NewRunner(db, migrationFS(map[string]string{
		"001_documents.sql": "CREATE TABLE documents (id TEXT PRIMARY KEY);",
	}), SQLite)
	if _, err := first.ApplyMigrations(nil); err != nil {
		t.Fatalf("first ApplyMigrations() error = %v", err)
	}

	second := NewRunner(db, migrationFS(map[string]string{
		"001_documents.sql": "CREATE TABLE documents (id TEXT PRIMARY KEY);",
		"002_audit.sql":     "CREATE TABLE audit (id TEXT);",
	}), SQLite)
	applied, err := second.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations() error = %v", err)
	}
	if applied != 1 {
		t.Errorf("second ApplyMigrations() applied %d, want 1", applied)
	}

	applied, err = second.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("no-op ApplyMigrations() error = %v", err)
	}
	if applied != 0 {
		t.Errorf("no-op ApplyMigrations() applied %d, want 0", applied)
	}
}

func TestMigrationRollbackOnError(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_documents.sql": "CREATE TABLE documents (id TEXT PRIMARY KEY);",
		"002_broken.sql":    "CREATE TABLE half (id TEXT); THIS IS NOT SQL;",
	}), SQLite)

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("ApplyMigrations() should fail on invalid SQL")
	}
	if applied != 1 {
		t.Errorf("ApplyMigrations() applied %d before failing, want 1", applied)
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error = %v, want it to name the failing migration", err)
	}

	version, _ := runner.GetCurrentVersion()
	if version != 1 {
		t.Errorf("version after failure = %d, want 1", version)
	}
}

func TestStatusAndValidateVersion(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, migrationFS(map[string]string{
		"001_documents.sql": "CREATE TABLE documents (id TEXT PRIMARY KEY);",
		"002_audit.sql":     "CREATE TABLE audit (id TEXT);",
	}), SQLite)

	st, err := runner.Status()
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if st.Current != 0 || st.Latest != 2 || len(st.Pending) != 2 || st.UpToDate() {
		t.Errorf("Status() = %+v, want 0 -> 2 with two pending", st)
	}
	if err := runner.ValidateVersion(); err == nil || !strings.Contains(err.Error(), "migrate") {
		t.Errorf("ValidateVersion() on stale schema = %v, want migrate hint", err)
	}

	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}
	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() after migrating = %v", err)
	}

	if err := runner.SetVersion(9); err != nil {
		t.Fatalf("SetVersion() error = %v", err)
	}
	if err := runner.ValidateVersion(); err == nil || !strings.Contains(err.Error(), "newer") {
		t.Errorf("ValidateVersion() on newer schema = %v, want newer error", err)
	}
}

func TestMigrationFilenameValidation(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{"missing separator", map[string]string{"001.sql": "SELECT 1;"}},
		{"non-numeric version", map[string]string{"abc_init.sql": "SELECT 1;"}},
		{"zero version", map[string]string{"000_init.sql": "SELECT 1;"}},
		{"duplicate version", map[string]string{"001_a.sql": "SELECT 1;", "1_b.sql": "SELECT 1;"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(setupTestDB(t), migrationFS(tt.files), SQLite)
			if _, err := runner.ReadMigrationFiles(); err == nil {
				t.Errorf("ReadMigrationFiles() should reject %v", tt.files)
			}
		})
	}
}
