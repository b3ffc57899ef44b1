package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: " DEBUG ", want: slog.LevelDebug},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "trace", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseLevel(%q) error = nil, want error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	h, err := newHandler(&buf, LevelInfo, FormatJSON)
	if err != nil {
		t.Fatalf("newHandler() error = %v", err)
	}

	slog.New(h).Info("Kernel activated.", "identity", "OR1ON")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v (%s)", err, buf.String())
	}
	if line["identity"] != "OR1ON" {
		t.Fatalf("identity attr = %v, want OR1ON", line["identity"])
	}
}

func TestNewHandler_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	h, err := newHandler(&buf, LevelWarn, FormatText)
	if err != nil {
		t.Fatalf("newHandler() error = %v", err)
	}

	l := slog.New(h)
	l.Info("hidden")
	l.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("output = %q, want only warn line", buf.String())
	}
}

func TestNewHandler_InvalidFormat(t *testing.T) {
	if _, err := newHandler(&bytes.Buffer{}, LevelInfo, "xml"); err == nil {
		t.Fatal("newHandler() with xml format should fail")
	}
}
