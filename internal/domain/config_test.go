package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, BackendJSON, cfg.Storage.Backend)
	assert.Equal(t, DefaultRedisAddr, cfg.Storage.Redis.Addr)
	assert.Equal(t, DefaultRedisPrefix, cfg.Storage.Redis.Prefix)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, SummaryOptions{RecentWindowDays: 7, RecentLimit: 5}, cfg.SummaryOptions())
}

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/data", "tick"), DataDir("/data"))
	assert.Equal(t, filepath.Join("/cfg", "tick", "config.toml"), GlobalConfigPath("/cfg"))
	assert.Equal(t, filepath.Join("/d", "store.json"), StorePath("/d", BackendJSON))
	assert.Equal(t, filepath.Join("/d", "store.db"), StorePath("/d", BackendSQLite))
	assert.Equal(t, filepath.Join("/d", "logs", "tick.log"), LogPath("/d"))
}
