package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/quantumlife/internal/cli"
	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/keyring"
	"github.com/julianstephens/quantumlife/internal/logger"
	"github.com/julianstephens/quantumlife/internal/server"
)

// ServeCmd shares the configured store with other clients over HTTP.
type ServeCmd struct {
	Addr string `help:"Address to listen on." default:":8080" env:"QUANTUMLIFE_ADDR"`
	Rate int    `help:"Requests per minute allowed per client. 0 disables the limit." default:"120"`
}

func (c *ServeCmd) Validate() error {
	if c.Rate < 0 {
		return fmt.Errorf("rate cannot be negative")
	}
	return nil
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	token, err := keyring.Resolve(keyring.APIToken)
	switch {
	case err == nil:
	case errors.Is(err, keyring.ErrNotFound), errors.Is(err, keyring.ErrKeyringUnavailable):
		token = ""
		fmt.Println("⚠️  No API token configured; the server accepts unauthenticated requests.")
		fmt.Printf("   Set one with '%s keyring set api-token <token>'.\n", constants.AppName)
	default:
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{
		Addr:          c.Addr,
		Token:         token,
		RatePerMinute: c.Rate,
	}, ctx.Provider)

	fmt.Printf("Serving %s on %s. Press Ctrl+C to stop.\n", ctx.Provider.GetConfigPath(), c.Addr)
	if err := srv.Run(sigCtx); err != nil {
		logger.Error("Server stopped", "error", err)
		return err
	}
	fmt.Println("\nStopped.")
	return nil
}
