package generate

import (
	"os"
	"path/filepath"
	"testing"

	"sysforge/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	cfg := fullConfiguration()

	artifacts, err := Generate(cfg)
	require.NoError(t, err)
	require.NoError(t, WriteArtifacts(dir, cfg, artifacts))

	// Scripts carry the executable bit.
	info, err := os.Stat(filepath.Join(dir, "scripts", "00-system.sh"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111, "script should be executable")

	// Config files do not.
	info, err = os.Stat(filepath.Join(dir, "configs", "fstab"))
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&0o111, "config file should not be executable")

	// Unit descriptions land under systemd/.
	_, err = os.Stat(filepath.Join(dir, "systemd", "webapp.service"))
	require.NoError(t, err)

	// The full IR is serialized alongside the artifacts.
	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"hostname": "node01"`)
}

func TestWriteArtifactsConfigJSONRoundTrips(t *testing.T) {
	dir := t.TempDir()
	cfg := fullConfiguration()
	require.NoError(t, WriteArtifacts(dir, cfg, nil))

	loaded, err := config.Load(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, cfg.Hostname, loaded.Hostname)
	assert.Equal(t, len(cfg.Services), len(loaded.Services))
}
