package elev

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"elevbank/src/types"
)

func TestFormatCall(t *testing.T) {
	cases := map[string]types.HallCall{
		"HallUp(3)":    {Floor: 3, Dir: types.HallUp},
		"HallDown(-1)": {Floor: -1, Dir: types.HallDown},
		"Hall(0)":      {Floor: 0},
	}
	for want, call := range cases {
		if got := FormatCall(call); got != want {
			t.Errorf("Expected %s, got %s", want, got)
		}
	}
}

func TestInitLoggerWritesFile(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	path := filepath.Join(t.TempDir(), "bank.log")
	if err := InitLogger(slog.LevelDebug, path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	slog.Debug("Elevator arrived", "floor", 4)

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	line := string(content)
	if !strings.Contains(line, "Elevator arrived") || !strings.Contains(line, "floor=4") {
		t.Errorf("Expected log line with message and floor, got %q", line)
	}
	if !strings.Contains(line, "misc_test.go:") {
		t.Errorf("Expected short source location, got %q", line)
	}
}

func TestInitLoggerBadPath(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	path := filepath.Join(t.TempDir(), "missing", "bank.log")
	if err := InitLogger(slog.LevelInfo, path); err == nil {
		t.Error("Expected error for unwritable log path, got nil")
	}
}
