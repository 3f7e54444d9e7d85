package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BUNGIE_API_KEY", "key123")
	path := writeConfig(t, "grid:\n  source: grid.csv\n")

	cfg, err := Load([]string{"-config", path})
	require.NoError(t, err)

	assert.Equal(t, "key123", cfg.APIKey)
	assert.Equal(t, "grid.csv", cfg.Grid.Source)
	assert.Equal(t, "Weapon", cfg.Grid.Columns.Weapon)
	assert.Equal(t, "Perk 1", cfg.Grid.Columns.Perk1)
	assert.Equal(t, "Perk 2", cfg.Grid.Columns.Perk2)
	assert.Equal(t, filepath.Join("output", "wishlist.txt"), cfg.Wishlist.Out)
	assert.False(t, cfg.ExportTables)
}

func TestLoad_FlagsOverride(t *testing.T) {
	t.Setenv("BUNGIE_API_KEY", "key123")
	path := writeConfig(t, "grid:\n  source: grid.csv\nwishlist:\n  out: from_yaml.txt\n")

	cfg, err := Load([]string{"-config", path, "-out", "from_flag.txt", "-tables", "-v"})
	require.NoError(t, err)

	assert.Equal(t, "from_flag.txt", cfg.Wishlist.Out)
	assert.True(t, cfg.ExportTables)
	assert.True(t, cfg.Verbose)
}

func TestLoad_UnsupportedKey(t *testing.T) {
	t.Setenv("BUNGIE_API_KEY", "key123")
	path := writeConfig(t, "grid:\n  source: grid.csv\nwishlists:\n  out: typo.txt\n")

	_, err := Load([]string{"-config", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"wishlists"`)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("BUNGIE_API_KEY", "")
	path := writeConfig(t, "grid:\n  source: grid.csv\n")

	_, err := Load([]string{"-config", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BUNGIE_API_KEY")
}

func TestLoad_MissingGridSource(t *testing.T) {
	t.Setenv("BUNGIE_API_KEY", "key123")
	path := writeConfig(t, "wishlist:\n  title: t\n")

	_, err := Load([]string{"-config", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid.source")
}

func TestLoad_DotEnvNextToConfig(t *testing.T) {
	t.Setenv("BUNGIE_API_KEY", "")
	os.Unsetenv("BUNGIE_API_KEY")

	dir := t.TempDir()
	path := filepath.Join(dir, "grid_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  source: grid.csv\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BUNGIE_API_KEY=from_dotenv\n"), 0o644))

	cfg, err := Load([]string{"-config", path})
	require.NoError(t, err)
	assert.Equal(t, "from_dotenv", cfg.APIKey)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load([]string{"-config", filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
}
