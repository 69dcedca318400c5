package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/quantumlife/internal/collection"
	"github.com/julianstephens/quantumlife/internal/collection/postgres"
	"github.com/julianstephens/quantumlife/internal/collection/remote"
	"github.com/julianstephens/quantumlife/internal/collection/sqlite"
	"github.com/julianstephens/quantumlife/internal/constants"
	qerrors "github.com/julianstephens/quantumlife/internal/errors"
	"github.com/julianstephens/quantumlife/internal/keyring"
)

// PostgresKeyword selects the PostgreSQL store whose connection string lives
// in the keyring or QUANTUMLIFE_DB_CONNECTION.
const PostgresKeyword = "postgres"

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// DefaultConfigDir is the directory that holds the log, the preference cache
// and the default SQLite database.
func DefaultConfigDir() (string, error) {
	path, err := ExpandHome(constants.DefaultConfigPath)
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

// OpenStore picks a provider for the --store value: a server URL, a
// PostgreSQL connection string, the "postgres" keyword or a SQLite path.
func OpenStore(store string) (collection.Provider, error) {
	switch {
	case remote.IsURL(store):
		var opts []remote.Option
		token, err := keyring.Resolve(keyring.APIToken)
		switch {
		case err == nil:
			opts = append(opts, remote.WithToken(token))
		case !errors.Is(err, keyring.ErrNotFound) && !errors.Is(err, keyring.ErrKeyringUnavailable):
			return nil, err
		}
		return remote.New(store, opts...), nil

	case store == PostgresKeyword:
		connStr, err := keyring.Resolve(keyring.DBConnection)
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return nil, qerrors.WithHint(
					fmt.Errorf("no PostgreSQL connection string configured: %w", err),
					fmt.Sprintf("run '%s keyring set db-connection' or set %s", constants.AppName, keyring.DBConnection.Env),
				)
			}
			return nil, err
		}
		return openPostgres(connStr, false)

	case postgres.IsConnString(store):
		return openPostgres(store, true)

	default:
		path, err := ExpandHome(store)
		if err != nil {
			return nil, err
		}
		return sqlite.NewStore(path), nil
	}
}

// openPostgres validates connStr. Passwords are only allowed when the string
// came from a secret store rather than the command line.
func openPostgres(connStr string, fromFlag bool) (collection.Provider, error) {
	if err := postgres.ValidateConnString(connStr); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, err
		}
		if fromFlag {
			return nil, qerrors.WithHint(err,
				fmt.Sprintf("store the connection string with '%s keyring set db-connection', use %s, or rely on .pgpass",
					constants.AppName, keyring.DBConnection.Env))
		}
	}
	return postgres.New(connStr), nil
}
