package system

import (
	"fmt"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/migration"
)

// migrator is implemented by the SQL backends.
type migrator interface {
	Migrate(logFn func(string)) (int, error)
	SchemaStatus() (migration.Status, error)
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	m, ok := ctx.Provider.(migrator)
	if !ok {
		return fmt.Errorf("migrate command only supports SQLite and PostgreSQL storage")
	}

	// Apply migrations
	count, err := m.Migrate(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}

	return nil
}
