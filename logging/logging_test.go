package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestNew_FanOut(t *testing.T) {
	var buf bytes.Buffer
	file := filepath.Join(t.TempDir(), "sdlparse.log")
	logger, closeLog, err := New(Options{Level: "debug", Writer: &buf, File: file})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Debug("parsed", "declarations", 3)
	logger.Info("served", "path", "/parse")
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	if out := buf.String(); !strings.Contains(out, "msg=parsed") || !strings.Contains(out, "declarations=3") {
		t.Errorf("terminal output missing record: %q", out)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 JSON records, got %d", len(lines))
	}
	var rec map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatal(err)
	}
	if rec["msg"] != "served" || rec["path"] != "/parse" {
		t.Errorf("unexpected JSON record: %v", rec)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn: %q", buf.String())
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("request.id"); got != "REQUEST_ID" {
		t.Errorf("toJournalKey = %q", got)
	}
}
