// Package backup snapshots the local SQLite store.
package backup

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/logger"
)

const timestampLayout = "20060102-150405"

// Info describes one backup file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Name returns the file name of the backup.
func (i Info) Name() string {
	return filepath.Base(i.Path)
}

// Manager handles backup operations for one database file
type Manager struct {
	dbPath    string
	backupDir string
	keep      int
	now       func() time.Time
}

// NewManager creates a backup manager storing snapshots next to the database
func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), constants.BackupDirName),
		keep:      constants.MaxBackups,
		now:       time.Now,
	}
}

// Dir returns the backup directory path
func (m *Manager) Dir() string {
	return m.backupDir
}

// Create snapshots the database and prunes old backups beyond the retention limit.
func (m *Manager) Create(ctx context.Context) (Info, error) {
	info, err := m.create(ctx)
	if err != nil {
		return Info{}, err
	}
	if err := m.prune(); err != nil {
		logger.Warn("Failed to prune old backups", "dir", m.backupDir, "error", err)
	}
	return info, nil
}

func (m *Manager) create(ctx context.Context) (Info, error) {
	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return Info{}, fmt.Errorf("database does not exist: %s", m.dbPath)
	}
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return Info{}, fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.nextPath()
	if err != nil {
		return Info{}, err
	}

	if err := vacuumInto(ctx, m.dbPath, path); err != nil {
		return Info{}, fmt.Errorf("failed to back up database: %w", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return Info{}, err
	}
	logger.Info("Backup created", "path", path, "size", st.Size())
	return Info{Path: path, Timestamp: parseName(filepath.Base(path)), Size: st.Size()}, nil
}

// nextPath picks an unused file name for the current second.
func (m *Manager) nextPath() (string, error) {
	stamp := m.now().Format(timestampLayout)
	for n := 0; n < 100; n++ {
		name := constants.BackupFilePrefix + stamp + constants.BackupFileSuffix
		if n > 0 {
			name = fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, n, constants.BackupFileSuffix)
		}
		path := filepath.Join(m.backupDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique backup filename")
}

func vacuumInto(ctx context.Context, src, dst string) error {
	db, err := sql.Open("sqlite", src)
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	if err := verify(ctx, db); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}
	_, err = db.ExecContext(ctx, "VACUUM INTO ?", dst)
	return err
}

func verify(ctx context.Context, db *sql.DB) error {
	var count int
	return db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

// parseName extracts the timestamp from a backup file name, or returns the zero time.
func parseName(name string) time.Time {
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
		return time.Time{}
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)
	if len(stamp) > len(timestampLayout) {
		stamp = stamp[:len(timestampLayout)]
	}
	ts, err := time.ParseInLocation(timestampLayout, stamp, time.Local)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// List returns all backups, newest first
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts := parseName(entry.Name())
		if ts.IsZero() {
			continue
		}
		st, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: ts,
			Size:      st.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) prune() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := m.keep; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the database with a backup. The current database is
// snapshotted first so a restore can itself be undone.
func (m *Manager) Restore(ctx context.Context, backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	db, err := sql.Open("sqlite", backupPath)
	if err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}
	verr := verify(ctx, db)
	db.Close()
	if verr != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", verr)
	}

	if _, err := os.Stat(m.dbPath); err == nil {
		current, err := m.create(ctx)
		if err != nil {
			return fmt.Errorf("failed to back up current database before restore: %w", err)
		}
		logger.Info("Saved current database before restore", "path", current.Path)
	}

	tempPath := m.dbPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.dbPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to restore database: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
