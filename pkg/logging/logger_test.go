package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLoggerJSONCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, LevelDebug, FormatJSON)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	logger.WithComponent("expandable").WithCard(2).Info("toggled", "expanded", true)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "toggled" || entry["component"] != "expandable" {
		t.Errorf("unexpected entry %v", entry)
	}
	if entry["card"] != float64(2) || entry["expanded"] != true {
		t.Errorf("missing card attributes in %v", entry)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, LevelWarn, FormatText)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNewLoggerRejectsUnknownFormat(t *testing.T) {
	if _, err := NewLogger(&bytes.Buffer{}, LevelInfo, "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"debug":   LevelDebug,
		"WARN":    LevelWarn,
		"error":   LevelError,
		"verbose": LevelInfo,
		"":        LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSetDefaultRestores(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := NewLogger(&buf, LevelInfo, FormatText)
	prev := SetDefault(logger)
	defer SetDefault(prev)

	Default().Info("through default")
	if !strings.Contains(buf.String(), "through default") {
		t.Fatalf("default logger not used: %q", buf.String())
	}
}
