package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	cases := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tc := range cases {
		if got := tc.level.String(); got != tc.expected {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tc.level, got, tc.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		name     string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"info", LevelInfo},
		{"bogus", LevelInfo},
	}

	for _, tc := range cases {
		if got := ParseLevel(tc.name); got != tc.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.name, got, tc.expected)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelWarn, &buf)

	Debug("Test", "debug message")
	Info("Test", "info message")
	Warn("Test", "warn message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("Debug message should be filtered at Warn level")
	}
	if strings.Contains(output, "info message") {
		t.Error("Info message should be filtered at Warn level")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("Warn message should be present at Warn level")
	}
}

func TestSubsystemAndErrorAttributes(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelDebug, &buf)

	Error("Reconciler", errors.New("boom"), "reload of %s failed", "nginx")

	output := buf.String()
	if !strings.Contains(output, "subsystem=Reconciler") {
		t.Errorf("expected subsystem attribute, got: %s", output)
	}
	if !strings.Contains(output, "error=boom") {
		t.Errorf("expected error attribute, got: %s", output)
	}
	if !strings.Contains(output, "reload of nginx failed") {
		t.Errorf("expected formatted message, got: %s", output)
	}
}
