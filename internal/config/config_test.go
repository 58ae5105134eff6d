package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()

	cfg, source, err := load("", filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "also-missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, SourceEmbedded, source)
	assert.Equal(t, 75*time.Millisecond, cfg.TickInterval)
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.yaml", "tick_interval: 100ms\n")
	local := writeFile(t, dir, "local.yaml", "tick_interval: 200ms\n")

	cfg, source, err := load("", user, local)
	require.NoError(t, err)
	assert.Equal(t, user, source)
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval)

	cfg, source, err = load("", filepath.Join(dir, "nope.yaml"), local)
	require.NoError(t, err)
	assert.Equal(t, local, source)
	assert.Equal(t, 200*time.Millisecond, cfg.TickInterval)
}

func TestLoadSkipsBrokenImplicitFile(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.yaml", "tick_interval: [oops\n")
	local := writeFile(t, dir, "local.yaml", "seed: 7\n")

	cfg, source, err := load("", user, local)
	require.NoError(t, err)
	assert.Equal(t, local, source)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	custom := writeFile(t, dir, "custom.yaml", `
variant: snake_strict
show_grid: false
keys:
  up: [i]
theme:
  apple: yellow
`)

	cfg, source, err := load(custom, "", "")
	require.NoError(t, err)

	assert.Equal(t, custom, source)
	assert.Equal(t, "snake_strict", cfg.Variant)
	assert.False(t, cfg.ShowGrid)
	assert.Equal(t, []string{"i"}, cfg.Keys.Up)
	assert.Equal(t, Default().Keys.Down, cfg.Keys.Down, "unset keys keep defaults")
	assert.Equal(t, "yellow", cfg.Theme.Apple)
	assert.Equal(t, "green", cfg.Theme.Body)
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := load(filepath.Join(dir, "missing.yaml"), "", "")
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, dir, "bad.yaml", "seed: [1, 2\n")
	_, _, err = load(bad, "", "")
	assert.ErrorContains(t, err, "failed to parse")

	invalid := writeFile(t, dir, "invalid.yaml", "tick_interval: 0s\n")
	_, _, err = load(invalid, "", "")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty variant", func(c *Config) { c.Variant = "" }},
		{"negative tick", func(c *Config) { c.TickInterval = -time.Second }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"no quit keys", func(c *Config) { c.Keys.Quit = nil }},
		{"unknown color", func(c *Config) { c.Theme.Head = "ultraviolet" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestThemeColors(t *testing.T) {
	colors, err := Default().Theme.Colors()
	require.NoError(t, err)

	assert.Equal(t, core.ColorBrightGreen, colors.Head)
	assert.Equal(t, core.ColorRed, colors.Apple)
	assert.Equal(t, core.ColorGray, colors.Grid)
}

func TestLogLevel(t *testing.T) {
	cfg := Default()
	assert.Equal(t, log.InfoLevel, cfg.LogLevel())

	cfg.Log.Level = "debug"
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.TickInterval = 90 * time.Millisecond

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tick_interval: 90ms")

	back, err := parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
