// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/ticktick/internal/domain"
)

// Environment variables that override config values.
const (
	EnvHome      = "TICK_HOME"       // Data directory
	EnvStore     = "TICK_STORE"      // [storage].backend
	EnvRedisAddr = "TICK_REDIS_ADDR" // [storage.redis].addr
	EnvLogLevel  = "TICK_LOG_LEVEL"  // [log].level
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files and the environment.
type Loader struct {
	getenv        func(string) string
	dataDir       string // Path to the data directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/tick)
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: defaultGlobalConfigDir(),
		getenv:        os.Getenv,
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory and environment lookup.
// This is useful for testing.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string, getenv func(string) string) *Loader {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
		getenv:        getenv,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// DefaultDataDir resolves the data directory: $TICK_HOME, then
// $XDG_DATA_HOME/tick, then ~/.local/share/tick.
func DefaultDataDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DataDir(dataHome), nil
}

// LoadEnvFile loads KEY=VALUE pairs from a .env file in dir into the process
// environment. Variables already set are not overridden. A missing file is ignored.
func LoadEnvFile(dir string) error {
	path := filepath.Join(dir, domain.EnvFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load returns the merged configuration.
// Merge order: default <- global <- data dir <- environment (later takes precedence).
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	local, err := l.LoadData()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Start with default config
	base := domain.NewDefaultConfig()

	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	l.applyEnv(base)

	if !validBackend(base.Storage.Backend) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, base.Storage.Backend)
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadData returns only the data directory configuration.
func (l *Loader) LoadData() (*domain.Config, error) {
	return l.loadFile(domain.DataConfigPath(l.dataDir))
}

// applyEnv overrides config values from environment variables.
func (l *Loader) applyEnv(cfg *domain.Config) {
	if v := l.getenv(EnvStore); v != "" {
		cfg.Storage.Backend = v
	}
	if v := l.getenv(EnvRedisAddr); v != "" {
		cfg.Storage.Redis.Addr = v
	}
	if v := l.getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}

func validBackend(backend string) bool {
	switch backend {
	case domain.BackendJSON, domain.BackendSQLite, domain.BackendRedis, domain.BackendMemory:
		return true
	default:
		return false
	}
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "storage":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "backend":
						if s, ok := v.(string); ok {
							res.Storage.Backend = s
						}
					case "path":
						if s, ok := v.(string); ok {
							res.Storage.Path = s
						}
					case "encrypt":
						if b, ok := v.(bool); ok {
							res.Storage.Encrypt = b
						}
					case "redis":
						if rm, ok := v.(map[string]any); ok {
							warnings = append(warnings, parseRedisSection(rm, &res.Storage.Redis)...)
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [storage]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.Log.Level = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		case "dashboard":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "recent_window_days":
						if n, ok := v.(int64); ok {
							res.Dashboard.RecentWindowDays = int(n)
						}
					case "recent_limit":
						if n, ok := v.(int64); ok {
							res.Dashboard.RecentLimit = int(n)
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [dashboard]: %s", k))
					}
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// parseRedisSection fills cfg from the [storage.redis] table and returns warnings.
func parseRedisSection(raw map[string]any, cfg *domain.RedisConfig) []string {
	var warnings []string
	for k, v := range raw {
		switch k {
		case "addr":
			if s, ok := v.(string); ok {
				cfg.Addr = s
			}
		case "password":
			if s, ok := v.(string); ok {
				cfg.Password = s
			}
		case "prefix":
			if s, ok := v.(string); ok {
				cfg.Prefix = s
			}
		case "db":
			if n, ok := v.(int64); ok {
				cfg.DB = int(n)
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown key in [storage.redis]: %s", k))
		}
	}
	return warnings
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Storage:   base.Storage,
		Log:       base.Log,
		Dashboard: base.Dashboard,
		Warnings:  append([]string{}, base.Warnings...),
	}

	// Add override warnings
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Storage.Backend != "" {
		result.Storage.Backend = override.Storage.Backend
	}
	if override.Storage.Path != "" {
		result.Storage.Path = override.Storage.Path
	}
	if override.Storage.Encrypt {
		result.Storage.Encrypt = override.Storage.Encrypt
	}
	if override.Storage.Redis.Addr != "" {
		result.Storage.Redis.Addr = override.Storage.Redis.Addr
	}
	if override.Storage.Redis.Password != "" {
		result.Storage.Redis.Password = override.Storage.Redis.Password
	}
	if override.Storage.Redis.Prefix != "" {
		result.Storage.Redis.Prefix = override.Storage.Redis.Prefix
	}
	if override.Storage.Redis.DB != 0 {
		result.Storage.Redis.DB = override.Storage.Redis.DB
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Dashboard.RecentWindowDays > 0 {
		result.Dashboard.RecentWindowDays = override.Dashboard.RecentWindowDays
	}
	if override.Dashboard.RecentLimit > 0 {
		result.Dashboard.RecentLimit = override.Dashboard.RecentLimit
	}

	return result
}
