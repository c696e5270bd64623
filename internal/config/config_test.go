package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "config.json", cfg.General.Registry)
	assert.Equal(t, "warn", cfg.General.LogLevel)
	assert.Equal(t, "text", cfg.General.LogFormat)
	assert.False(t, cfg.Output.Plain)
	assert.Empty(t, cfg.Source())
}

func TestLoad_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libmgr.toml")
	content := `
[general]
registry = "/var/lib/models/registry.json"
log_level = "debug"

[output]
plain = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/models/registry.json", cfg.General.Registry)
	assert.Equal(t, "debug", cfg.General.LogLevel)
	assert.Equal(t, "text", cfg.General.LogFormat) // default
	assert.True(t, cfg.Output.Plain)
	assert.Equal(t, path, cfg.Source())
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libmgr.yaml")
	content := `
general:
  registry: models.json
  log_format: json
output:
  plain: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "models.json", cfg.General.Registry)
	assert.Equal(t, "json", cfg.General.LogFormat)
	assert.Equal(t, "warn", cfg.General.LogLevel)
	assert.True(t, cfg.Output.Plain)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("LIBMGR_TEST_ROOT", "/srv/models")
	path := filepath.Join(t.TempDir(), "libmgr.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[general]
registry = "$LIBMGR_TEST_ROOT/registry.json"
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/models/registry.json", cfg.General.Registry)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "settings file not found")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[general\nregistry = "), 0644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse settings")

	badYAML := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("general: [unclosed"), 0644))
	_, err = Load(badYAML)
	assert.ErrorContains(t, err, "failed to parse settings")
}

func TestLoadFromEnv_SettingsPathAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`[general]
registry = "from-file.json"
log_level = "info"
`), 0644))

	t.Setenv(EnvSettings, path)
	t.Setenv(EnvRegistry, "from-env.json")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "from-env.json", cfg.General.Registry)
	assert.Equal(t, "info", cfg.General.LogLevel)
	assert.Equal(t, "json", cfg.General.LogFormat)
	assert.Equal(t, path, cfg.Source())
}

func TestLoadFromEnv_MissingSettingsFile(t *testing.T) {
	t.Setenv(EnvSettings, filepath.Join(t.TempDir(), "nope.toml"))

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestApplyEnv_LoadsDotEnvWithExplicitSettings(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.toml")
	require.NoError(t, os.WriteFile(settings, []byte(`[general]
log_level = "info"
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LIBMGR_LOG_LEVEL=debug\n"), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	// godotenv never overrides a variable that is already set, even to ""
	t.Setenv(EnvLogLevel, "")
	require.NoError(t, os.Unsetenv(EnvLogLevel))

	cfg, err := Load(settings)
	require.NoError(t, err)
	cfg.ApplyEnv()

	assert.Equal(t, "debug", cfg.General.LogLevel)
}
