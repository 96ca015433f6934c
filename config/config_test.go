package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qaforge.toml")

	content := `
[server]
port = 9090
rate_per_minute = 5

[output]
dir = "/var/tmp/qaforge"

[generate]
plan_format = "pdf"
include_charter_rows = true

[publish]
enabled = true
credentials_file = "sa.json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Server.Port)
	assert.Equal(t, 9090, *cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.RatePerMinute)
	assert.Equal(t, "/var/tmp/qaforge", cfg.Output.Dir)
	assert.Equal(t, "pdf", cfg.Generate.PlanFormat)
	assert.True(t, cfg.Generate.IncludeCharterRows)
	assert.True(t, cfg.Publish.Enabled)
	assert.Equal(t, "sa.json", cfg.Publish.CredentialsFile)
}

func TestLoadFromFileDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qaforge.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.Server.Port)
	assert.Equal(t, DefaultServerPort, *cfg.Server.Port)
	assert.Equal(t, ".tmp", cfg.Output.Dir)
	assert.Equal(t, "markdown", cfg.Generate.PlanFormat)
	assert.False(t, cfg.Generate.IncludeCharterRows)
	assert.False(t, cfg.Publish.Enabled)
	assert.Equal(t, "credentials.json", cfg.Publish.CredentialsFile)
	assert.True(t, cfg.Publish.ShareAnyone)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
