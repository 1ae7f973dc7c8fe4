package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, []string{"data/definitions.yaml"}, cfg.Data.Paths)
	assert.Equal(t, "csv", cfg.Inventory.Source)
	assert.Equal(t, "workshop", cfg.Inventory.Location)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 80, cfg.Output.Width)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "craftreq.yaml")
	content := `
data:
  paths: [core.yaml, mods.json]
inventory:
  source: database
  location: shed
actor:
  traits: [WEB_ROPE]
  hunger: 120
output:
  format: json
  width: 60
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"core.yaml", "mods.json"}, cfg.Data.Paths)
	assert.Equal(t, "database", cfg.Inventory.Source)
	assert.Equal(t, "shed", cfg.Inventory.Location)
	assert.Equal(t, []string{"WEB_ROPE"}, cfg.Actor.Traits)
	assert.Equal(t, 120, cfg.Actor.Hunger)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 60, cfg.Output.Width)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CRAFTREQ_INVENTORY_LOCATION", "attic")
	t.Setenv("CRAFTREQ_LOGGING_LEVEL", "debug")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "attic", cfg.Inventory.Location)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "craftreq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: xml\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "Config.Output.Format")
}

func TestValidateConfig_Width(t *testing.T) {
	cfg := Default()
	cfg.Output.Width = 10

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Width")
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}
