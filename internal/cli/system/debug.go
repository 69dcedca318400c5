package system

import (
	"context"
	"fmt"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/constants"
)

type DebugCmd struct {
	DBPath *DebugDBPathCmd `cmd:"" help:"Show database path."`
	Dump   *DebugDumpCmd   `cmd:"" help:"Dump the raw records of a collection as JSON."`
	Counts *DebugCountsCmd `cmd:"" help:"Show the number of records per collection."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	// Output in machine-readable format
	return cli.PrintJSON(map[string]string{
		"path": ctx.Provider.GetConfigPath(),
	})
}

type DebugDumpCmd struct {
	Collection string `arg:"" help:"Collection name (e.g. habits, reminders)."`
	ID         string `arg:"" optional:"" help:"Only dump the record with this exact id."`
	Limit      int    `help:"Maximum number of records to dump (0 for all)." default:"0"`
}

func (cmd *DebugDumpCmd) Validate() error {
	if err := collection.ValidateName(cmd.Collection); err != nil {
		return fmt.Errorf("%w (known: %v)", err, constants.Collections)
	}
	if cmd.Limit < 0 {
		return fmt.Errorf("limit cannot be negative")
	}
	return nil
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	var filter collection.Filter
	if cmd.ID != "" {
		filter = collection.Filter{collection.FieldID: cmd.ID}
	}

	res, err := ctx.Provider.ListAll(rctx, cmd.Collection, filter, collection.Options{Limit: cmd.Limit})
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", cmd.Collection, err)
	}

	if cmd.ID != "" {
		if len(res.Items) == 0 {
			return fmt.Errorf("%s %q: %w", cmd.Collection, cmd.ID, collection.ErrNotFound)
		}
		return cli.PrintJSON(res.Items[0])
	}
	return cli.PrintJSON(res.Items)
}

type DebugCountsCmd struct{}

func (cmd *DebugCountsCmd) Run(ctx *cli.Context) error {
	rctx, cancel := ctx.Timeout()
	defer cancel()

	counts, err := countRecords(rctx, ctx.Provider)
	if err != nil {
		return err
	}
	return cli.PrintJSON(counts)
}

type counter interface {
	Counts(ctx context.Context) (map[string]int, error)
}

// countRecords asks the store for counts when it can and lists every
// collection otherwise. Collections without records report zero.
func countRecords(ctx context.Context, p collection.Provider) (map[string]int, error) {
	counts := make(map[string]int, len(constants.Collections))
	for _, name := range constants.Collections {
		counts[name] = 0
	}

	if c, ok := p.(counter); ok {
		stored, err := c.Counts(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count records: %w", err)
		}
		for name, n := range stored {
			counts[name] = n
		}
		return counts, nil
	}

	for _, name := range constants.Collections {
		res, err := p.ListAll(ctx, name, nil, collection.Options{})
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", name, err)
		}
		counts[name] = len(res.Items)
	}
	return counts, nil
}
