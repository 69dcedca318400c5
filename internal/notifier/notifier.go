// Package notifier delivers reminder notifications outside the TUI: to the
// desktop tray companion app and to a Telegram chat.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/quantumlife/internal/constants"
	"github.com/julianstephens/quantumlife/internal/logger"
	"github.com/julianstephens/quantumlife/internal/reminders"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

var ErrTrayNotRunning = errors.New(constants.TrayExecutable + " is not running")

// Tray posts notifications to the tray app's local webhook.
type Tray struct {
	retries    int
	retryDelay time.Duration
	client     *http.Client
}

type WebhookPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

func New() *Tray {
	return &Tray{
		retries:    constants.NotifyMaxRetries,
		retryDelay: constants.NotifyRetryDelay,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

// Notify implements reminders.Sink.
func (t *Tray) Notify(ctx context.Context, n reminders.Notification) error {
	return t.Send(ctx, n.Title()+"\n"+n.Body())
}

// Send shows text through the tray app, retrying transient failures.
func (t *Tray) Send(ctx context.Context, text string) error {
	trayAppConfigPath, err := GetTrayAppConfigDir()
	if err != nil {
		return err
	}

	port, secret, err := findAndValidateTrayProcess(filepath.Join(trayAppConfigPath, constants.NotifierLockfileName))
	if err != nil {
		return err
	}

	payload := WebhookPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	}

	for attempt := 1; ; attempt++ {
		err = t.sendNotification(ctx, port, secret, payload)
		if err == nil || attempt >= t.retries {
			return err
		}
		logger.Debug("Tray notification failed, retrying", "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(t.retryDelay):
		}
	}
}

// GetTrayAppConfigDir returns the configuration directory used by the tray application.
func GetTrayAppConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	// settings.json may point the lockfile somewhere else
	settingsPath := filepath.Join(trayConfigDir, "settings.json")
	if data, err := os.ReadFile(settingsPath); err == nil {
		var store struct {
			Settings struct {
				LockfileDir *string `json:"lockfile_dir"`
			} `json:"settings"`
		}
		if err := json.Unmarshal(data, &store); err == nil {
			if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
				return *store.Settings.LockfileDir, nil
			}
		}
	}

	return trayConfigDir, nil
}

// findAndValidateTrayProcess reads "port|pid|secret" from the lockfile and
// checks the pid still belongs to the tray app.
func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", ErrTrayNotRunning
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	if strings.TrimSpace(port) == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", ErrTrayNotRunning
	}

	if !strings.HasPrefix(process.Executable(), constants.TrayExecutable) {
		return "", "", fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayExecutable, process.Executable())
	}

	return port, secret, nil
}

func (t *Tray) sendNotification(ctx context.Context, port string, secret string, payload WebhookPayload) error {
	url := fmt.Sprintf("http://127.0.0.1:%s", port)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.TraySecretHeader, secret)

	res, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
