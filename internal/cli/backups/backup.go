package backups

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/quantumlife/internal/backup"
	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/constants"
)

func manager(ctx *cli.Context) (*backup.Manager, error) {
	store, ok := ctx.SQLite()
	if !ok {
		return nil, fmt.Errorf("backups are only available for the local SQLite store (current store: %s)", ctx.Provider.GetConfigPath())
	}
	return backup.NewManager(store.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	rctx, cancel := ctx.Timeout()
	defer cancel()

	info, err := mgr.Create(rctx)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Printf("✓ Backup created: %s\n", info.Name())
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		fmt.Printf("Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	fmt.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		timestamp := b.Timestamp.Format("2006-01-02 15:04:05")
		fmt.Printf("  %s  %s  (%.1f KB)\n", timestamp, b.Name(), sizeKB)
	}
	fmt.Printf("\nBackup directory: %s\n", mgr.Dir())

	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`

	in io.Reader
}

// resolvePath looks for the backup as given, then inside the backup directory.
func resolvePath(name, backupDir string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return "", fmt.Errorf("backup file not found: %s", name)
		}
		return name, nil
	}

	if _, err := os.Stat(name); err == nil {
		absPath, err := filepath.Abs(name)
		if err != nil {
			return "", fmt.Errorf("failed to resolve backup path: %w", err)
		}
		return absPath, nil
	}

	possiblePath := filepath.Join(backupDir, name)
	if _, err := os.Stat(possiblePath); err == nil {
		return possiblePath, nil
	}
	return "", fmt.Errorf("backup file not found: tried current directory and %s", backupDir)
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr, err := manager(ctx)
	if err != nil {
		return err
	}

	backupPath, err := resolvePath(c.BackupFile, mgr.Dir())
	if err != nil {
		return err
	}

	if !c.Yes {
		fmt.Println("⚠️  WARNING: This will replace your current database with the backup.")
		fmt.Println("⚠️  IMPORTANT: All quantumlife processes (including the TUI and server) must be stopped before restore.")
		fmt.Println("A backup of your current database will be created before restoring.")
		fmt.Printf("\nRestore from: %s\n", backupPath)
		fmt.Print("Continue? [y/N]: ")

		in := c.in
		if in == nil {
			in = os.Stdin
		}
		response, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))

		if response != "y" && response != "yes" {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	// Close the current store connection before restoring
	if err := ctx.Provider.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database connection: %v\n", err)
	}

	rctx, cancel := ctx.Timeout()
	defer cancel()

	if err := mgr.Restore(rctx, backupPath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Println("✓ Database restored successfully!")
	fmt.Println("⚠️  Remember to restart any quantumlife processes that were stopped for the restore.")

	return nil
}
