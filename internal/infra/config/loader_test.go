package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644))
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoader_Load_NoConfigFiles(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir(), nil)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_DataConfigOnly(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `
[storage]
backend = "sqlite"
encrypt = true

[log]
level = "debug"

[dashboard]
recent_window_days = 14
recent_limit = 10
`)

	// Execute
	cfg, err := NewLoaderWithGlobalDir(dataDir, t.TempDir(), nil).Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.BackendSQLite, cfg.Storage.Backend)
	assert.True(t, cfg.Storage.Encrypt)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 14, cfg.Dashboard.RecentWindowDays)
	assert.Equal(t, 10, cfg.Dashboard.RecentLimit)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_DataOverridesGlobal(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[storage]
backend = "redis"

[storage.redis]
addr = "cache:6379"
db = 2

[log]
level = "warn"
`)
	writeConfig(t, dataDir, `
[log]
level = "error"
`)

	// Execute
	cfg, err := NewLoaderWithGlobalDir(dataDir, globalDir, nil).Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)
	assert.Equal(t, domain.DefaultRedisPrefix, cfg.Storage.Redis.Prefix)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoader_Load_EnvOverrides(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `
[storage]
backend = "sqlite"
`)
	env := envMap(map[string]string{
		EnvStore:     "memory",
		EnvRedisAddr: "redis:6380",
		EnvLogLevel:  "debug",
	})

	cfg, err := NewLoaderWithGlobalDir(dataDir, t.TempDir(), env).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "redis:6380", cfg.Storage.Redis.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_Load_UnknownBackend(t *testing.T) {
	env := envMap(map[string]string{EnvStore: "etcd"})

	_, err := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir(), env).Load()

	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `[storage`)

	_, err := NewLoaderWithGlobalDir(dataDir, t.TempDir(), nil).Load()

	assert.Error(t, err)
}

func TestLoader_Load_UnknownKeys(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `
[storage]
backend = "json"
colour = "blue"

[storage.redis]
cluster = true

[log]
file = "x"

[workers]
default = "claude"
`)

	cfg, err := NewLoaderWithGlobalDir(dataDir, t.TempDir(), nil).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{
		"unknown key in [log]: file",
		"unknown key in [storage.redis]: cluster",
		"unknown key in [storage]: colour",
		"unknown section: workers",
	}, cfg.Warnings)
}

func TestLoader_LoadGlobal_NotFound(t *testing.T) {
	_, err := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir(), nil).LoadGlobal()

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.EnvFileName), []byte("TICK_TEST_ENVFILE=from-file\n"), 0o600))
	t.Setenv("TICK_TEST_ENVFILE", "")
	require.NoError(t, os.Unsetenv("TICK_TEST_ENVFILE"))

	require.NoError(t, LoadEnvFile(dir))

	assert.Equal(t, "from-file", os.Getenv("TICK_TEST_ENVFILE"))
}

func TestLoadEnvFile_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.EnvFileName), []byte("TICK_TEST_ENVFILE=from-file\n"), 0o600))
	t.Setenv("TICK_TEST_ENVFILE", "from-env")

	require.NoError(t, LoadEnvFile(dir))

	assert.Equal(t, "from-env", os.Getenv("TICK_TEST_ENVFILE"))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(t.TempDir()))
}

func TestDefaultDataDir(t *testing.T) {
	t.Setenv(EnvHome, "/srv/tick")
	dir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, "/srv/tick", dir)

	t.Setenv(EnvHome, "")
	t.Setenv("XDG_DATA_HOME", "/xdg")
	dir, err = DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "tick"), dir)
}

func TestRenderTemplate_RoundTrips(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Storage.Backend = domain.BackendSQLite

	content, err := RenderTemplate(cfg)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, toml.Unmarshal([]byte(content), &raw))
	parsed := convertRawToDomainConfig(raw)
	assert.Empty(t, parsed.Warnings)
	assert.Equal(t, domain.BackendSQLite, parsed.Storage.Backend)
	assert.Equal(t, cfg.Dashboard, parsed.Dashboard)
	assert.Contains(t, content, "# tick configuration")
}
