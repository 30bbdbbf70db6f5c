package domain

import (
	"path/filepath"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings  []string        `toml:"-"`
	Storage   StorageConfig   `toml:"storage"`
	Log       LogConfig       `toml:"log"`
	Dashboard DashboardConfig `toml:"dashboard"`
}

// Storage backends.
const (
	BackendJSON   = "json"   // Single JSON file in the data directory (default)
	BackendSQLite = "sqlite" // SQLite database in the data directory
	BackendRedis  = "redis"  // Redis server
	BackendMemory = "memory" // Process memory only, nothing persisted
)

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Backend string      `toml:"backend,omitempty"` // json (default), sqlite, redis, memory
	Path    string      `toml:"path,omitempty"`    // Store file path (default: <data dir>/store.json or store.db)
	Redis   RedisConfig `toml:"redis"`             // [storage.redis]
	Encrypt bool        `toml:"encrypt,omitempty"` // Encrypt stored values (key in <data dir>/store.key)
}

// RedisConfig holds settings from the [storage.redis] section.
type RedisConfig struct {
	Addr     string `toml:"addr,omitempty"`     // host:port (default: localhost:6379)
	Password string `toml:"password,omitempty"` // AUTH password
	Prefix   string `toml:"prefix,omitempty"`   // Key prefix (default: "tick:")
	DB       int    `toml:"db,omitempty"`       // Database number
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// DashboardConfig holds settings from the [dashboard] section.
type DashboardConfig struct {
	RecentWindowDays int `toml:"recent_window_days,omitempty"` // Recently completed window
	RecentLimit      int `toml:"recent_limit,omitempty"`       // Recently completed entries shown
}

// Default configuration values.
const (
	DefaultRedisAddr   = "localhost:6379"
	DefaultRedisPrefix = "tick:"
	DefaultLogLevel    = "info"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendJSON,
			Redis: RedisConfig{
				Addr:   DefaultRedisAddr,
				Prefix: DefaultRedisPrefix,
			},
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Dashboard: DashboardConfig{
			RecentWindowDays: DefaultRecentWindowDays,
			RecentLimit:      DefaultRecentLimit,
		},
	}
}

// SummaryOptions returns the dashboard options derived from the config.
func (c *Config) SummaryOptions() SummaryOptions {
	return SummaryOptions{
		RecentWindowDays: c.Dashboard.RecentWindowDays,
		RecentLimit:      c.Dashboard.RecentLimit,
	}
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Directory and file names for tick.
const (
	AppDirName     = "tick"        // Directory name under XDG config/data homes
	ConfigFileName = "config.toml" // Config file name
	EnvFileName    = ".env"        // Optional environment override file
)

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// DataDir returns the data directory under the given data home
// (XDG_DATA_HOME or ~/.local/share, resolved by caller).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// DataConfigPath returns the config path inside the data directory.
func DataConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// StorePath returns the default store path for a file-based backend.
func StorePath(dataDir, backend string) string {
	if backend == BackendSQLite {
		return filepath.Join(dataDir, "store.db")
	}
	return filepath.Join(dataDir, "store.json")
}

// StoreKeyPath returns the path of the value encryption key.
func StoreKeyPath(dataDir string) string {
	return filepath.Join(dataDir, "store.key")
}

// LogPath returns the path to the log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "tick.log")
}
