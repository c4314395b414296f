package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "₹", cfg.Display.CurrencySymbol)
	assert.Equal(t, 30, cfg.Projection.HorizonDays)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.General.DefaultDays = 14
	cfg.General.SeedFiles = []string{"/tmp/expenses.csv"}
	cfg.Display.CurrencySymbol = "$"
	cfg.Projection.HorizonDays = 60
	cfg.Log.Level = "debug"
	require.NoError(t, SaveTo(path, cfg))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadFillsBlankValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[general]\ndefault_days = -3\n\n[display]\ncurrency_symbol = \"\"\n\n[projection]\nhorizon_days = 0\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.General.DefaultDays)
	assert.Equal(t, "₹", cfg.Display.CurrencySymbol)
	assert.Equal(t, 30, cfg.Projection.HorizonDays)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[general\n"), 0o600))

	_, err := LoadFrom(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestPathsHonorXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")

	assert.Equal(t, "/xdg/config/cashburn/config.toml", ConfigPath())
	assert.Equal(t, "/xdg/cache/cashburn/cashburn.log", DefaultConfig().LogPath())

	cfg := DefaultConfig()
	cfg.Log.File = "/var/log/cb.log"
	assert.Equal(t, "/var/log/cb.log", cfg.LogPath())
}
