package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validConfig = `{
	"hostname": "node01",
	"packages": {"install": ["vim"]},
	"services": [{"name": "webapp", "execStart": "/usr/bin/webapp", "enabled": true}]
}`

const invalidConfig = `{
	"boot": {
		"entries": [
			{"title": "A", "kernel": "/boot/vmlinuz"},
			{"title": "A", "kernel": "/boot/vmlinuz-lts"}
		]
	}
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "machine.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompileCommand(t *testing.T) {
	configPath := writeConfig(t, validConfig)
	outputDir := t.TempDir()

	cmd := newCompileCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{configPath, "-o", outputDir})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	if !strings.Contains(out.String(), "Compiled") {
		t.Errorf("expected compile summary, got %q", out.String())
	}

	for _, want := range []string{
		filepath.Join("scripts", "00-system.sh"),
		filepath.Join("scripts", "20-packages.sh"),
		filepath.Join("systemd", "webapp.service"),
		"config.json",
	} {
		if _, err := os.Stat(filepath.Join(outputDir, want)); err != nil {
			t.Errorf("expected artifact %s: %v", want, err)
		}
	}
}

func TestCompileLenientByDefault(t *testing.T) {
	configPath := writeConfig(t, invalidConfig)
	outputDir := t.TempDir()

	cmd := newCompileCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{configPath, "-o", outputDir})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("lenient compile should succeed despite validation errors: %v", err)
	}

	if !strings.Contains(errOut.String(), "validation:") {
		t.Error("validation errors should be printed")
	}

	if _, err := os.Stat(filepath.Join(outputDir, "config.json")); err != nil {
		t.Error("artifacts should still be generated")
	}
}

func TestCompileStrict(t *testing.T) {
	configPath := writeConfig(t, invalidConfig)
	outputDir := t.TempDir()

	cmd := newCompileCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{configPath, "-o", outputDir, "--strict"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("strict compile must fail on validation errors")
	}
	if _, ok := err.(*validationFailedError); !ok {
		t.Errorf("expected validationFailedError, got %T", err)
	}

	if _, statErr := os.Stat(filepath.Join(outputDir, "config.json")); statErr == nil {
		t.Error("strict compile must not write artifacts")
	}
}

func TestCompileMissingConfig(t *testing.T) {
	cmd := newCompileCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.json"), "-o", t.TempDir()})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidateCommand(t *testing.T) {
	configPath := writeConfig(t, validConfig)

	cmd := newValidateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{configPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(out.String(), "valid") {
		t.Errorf("expected validity message, got %q", out.String())
	}
}

func TestValidateCommandReportsErrors(t *testing.T) {
	configPath := writeConfig(t, invalidConfig)

	cmd := newValidateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{configPath})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected validate to fail for invalid configuration")
	}
	if !strings.Contains(out.String(), "A") {
		t.Errorf("expected the duplicate title in the table, got %q", out.String())
	}
}
