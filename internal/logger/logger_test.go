package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory was not created: %s", logDir)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after initialization")
	}

	Info("habit created", "id", "abc")
	Warn("store slow", "collection", "habits")

	data, err := os.ReadFile(LogPath(configDir))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "habit created") {
		t.Errorf("log file = %q, want it to contain %q", string(data), "habit created")
	}
}

func TestInitDebugMode(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "config")

	if err := Init(Config{Debug: true, ConfigDir: configDir}); err != nil {
		t.Fatalf("Failed to initialize logger in debug mode: %v", err)
	}

	Debug("reload after failure", "collection", "reminders")

	data, err := os.ReadFile(LogPath(configDir))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "reload after failure") {
		t.Errorf("debug message missing from log file: %q", string(data))
	}
}

func TestComponent(t *testing.T) {
	Logger = nil
	if Component("sync") == nil {
		t.Fatal("Component() returned nil before Init")
	}

	configDir := filepath.Join(t.TempDir(), "config")
	if err := Init(Config{ConfigDir: configDir}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Component("server").Info("listening", "addr", ":8080")

	data, err := os.ReadFile(LogPath(configDir))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "component=server") {
		t.Errorf("log file = %q, want component key", string(data))
	}
}

func TestLogFunctionsWithoutInit(t *testing.T) {
	Logger = nil

	// These should not panic when Logger is nil
	Debug("Test debug message")
	Info("Test info message")
	Warn("Test warning message")
	Error("Test error message")
}
