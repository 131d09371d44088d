package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	}

	for input, want := range tests {
		got, err := ParseLevel(input)
		if err != nil {
			t.Errorf("ParseLevel(%q) error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}
}

func TestInitWritesToFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(previous)
		log.SetOutput(os.Stderr)
	})

	logPath := filepath.Join(t.TempDir(), "logs", "quadro.log")
	closer, err := Init(logPath, "warn")
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	slog.Info("dropped message")
	slog.Warn("kept message", "card_id", 7)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "dropped message") {
		t.Error("Info message should be filtered at warn level")
	}
	if !strings.Contains(content, "kept message") || !strings.Contains(content, "card_id=7") {
		t.Errorf("Warn message missing from log: %q", content)
	}
}

func TestInitRejectsBadLevel(t *testing.T) {
	if _, err := Init(filepath.Join(t.TempDir(), "x.log"), "chatty"); err == nil {
		t.Error("Init() should reject an unknown level")
	}
}
