package keyring

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/quantumlife/internal/constants"
)

var (
	// ErrNotFound is returned when no credentials are found in the keyring
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// Secret names one credential kept in the OS keyring.
type Secret struct {
	// User is the keyring account name under the application service.
	User string
	// Env overrides the keyring when set in the environment.
	Env string
}

var (
	DBConnection  = Secret{User: constants.DefaultKeyringUser, Env: "QUANTUMLIFE_DB_CONNECTION"}
	APIToken      = Secret{User: "api-token", Env: "QUANTUMLIFE_API_TOKEN"}
	TelegramToken = Secret{User: "telegram-token", Env: "QUANTUMLIFE_TELEGRAM_TOKEN"}
)

// Secrets lists every credential the application knows, keyed by CLI name.
var Secrets = map[string]Secret{
	"db-connection":  DBConnection,
	"api-token":      APIToken,
	"telegram-token": TelegramToken,
}

// Get retrieves a secret from the OS keyring.
// Returns ErrNotFound if nothing is stored.
func Get(s Secret) (string, error) {
	value, err := keyring.Get(constants.AppName, s.User)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return value, nil
}

// Set stores a secret in the OS keyring.
func Set(s Secret, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", s.User)
	}
	if err := keyring.Set(constants.AppName, s.User, value); err != nil {
		return fmt.Errorf("failed to store %s in keyring: %w", s.User, err)
	}
	return nil
}

// Delete removes a secret from the OS keyring.
func Delete(s Secret) error {
	err := keyring.Delete(constants.AppName, s.User)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %s from keyring: %w", s.User, err)
	}
	return nil
}

// Resolve returns the secret from its environment variable, falling back to
// the keyring. It returns ErrNotFound when neither has a value.
func Resolve(s Secret) (string, error) {
	if v := os.Getenv(s.Env); v != "" {
		return v, nil
	}
	return Get(s)
}

// IsAvailable checks if the OS keyring is available on the current system.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
