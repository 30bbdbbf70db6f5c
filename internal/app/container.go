// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/infra/config"
	"github.com/runoshun/ticktick/internal/infra/crypto"
	"github.com/runoshun/ticktick/internal/infra/jsonstore"
	"github.com/runoshun/ticktick/internal/infra/logging"
	"github.com/runoshun/ticktick/internal/infra/memstore"
	"github.com/runoshun/ticktick/internal/infra/metrics"
	"github.com/runoshun/ticktick/internal/infra/prefstore"
	"github.com/runoshun/ticktick/internal/infra/redisstore"
	"github.com/runoshun/ticktick/internal/infra/sqlitestore"
	"github.com/runoshun/ticktick/internal/infra/taskstore"
	"github.com/runoshun/ticktick/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	DataDir   string // Data directory ($TICK_HOME or XDG data home)
	StorePath string // Path of the json/sqlite store file
	KeyPath   string // Path of the value encryption key
	LogPath   string // Path of the task log file
}

// newConfig resolves the paths for dataDir and the loaded app config.
func newConfig(dataDir string, appConfig *domain.Config) Config {
	storePath := appConfig.Storage.Path
	if storePath == "" {
		storePath = domain.StorePath(dataDir, appConfig.Storage.Backend)
	}
	return Config{
		DataDir:   dataDir,
		StorePath: storePath,
		KeyPath:   domain.StoreKeyPath(dataDir),
		LogPath:   domain.LogPath(dataDir),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.KeyValueStore
	Tasks         domain.TaskRepository
	Prefs         domain.PreferenceRepository
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Metrics       domain.MetricsExporter
	TaskLog       domain.Logger

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config

	closers []func() error

	// Configuration
	Config Config
}

// New creates a new Container for the given data directory.
// An empty dataDir resolves to the default data directory.
func New(ctx context.Context, dataDir string) (*Container, error) {
	if dataDir == "" {
		dir, err := config.DefaultDataDir()
		if err != nil {
			return nil, err
		}
		dataDir = dir
	}

	// Environment file overrides must be visible to the loader
	if err := config.LoadEnvFile(dataDir); err != nil {
		return nil, err
	}

	configLoader := config.NewLoader(dataDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := newConfig(dataDir, appConfig)

	level := logging.ParseLevel(appConfig.Log.Level)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	taskLog := logging.New(dataDir, level)

	kv, err := openStore(ctx, appConfig.Storage, cfg.StorePath, cfg.KeyPath)
	if err != nil {
		_ = taskLog.Close()
		return nil, err
	}

	c := &Container{
		Store:         kv,
		Tasks:         taskstore.New(kv, domain.RealClock{}, taskstore.UUIDGenerator{}, taskLog),
		Prefs:         prefstore.New(kv, taskLog),
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dataDir),
		Metrics:       metrics.NewExporter(),
		TaskLog:       taskLog,
		Logger:        logger,
		AppConfig:     appConfig,
		Config:        cfg,
		closers:       []func() error{kv.Close, taskLog.Close},
	}

	if err := c.Load(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

// openStore opens the key-value backend selected by storage,
// wrapped in the encrypting decorator when storage.encrypt is set.
func openStore(ctx context.Context, storage domain.StorageConfig, storePath, keyPath string) (domain.KeyValueStore, error) {
	var kv domain.KeyValueStore
	switch storage.Backend {
	case domain.BackendJSON, "":
		kv = jsonstore.New(storePath)
	case domain.BackendSQLite:
		store, err := sqlitestore.Open(storePath)
		if err != nil {
			return nil, err
		}
		kv = store
	case domain.BackendRedis:
		store, err := redisstore.Dial(ctx, storage.Redis)
		if err != nil {
			return nil, err
		}
		kv = store
	case domain.BackendMemory:
		kv = memstore.New()
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, storage.Backend)
	}

	if !storage.Encrypt {
		return kv, nil
	}

	key, err := crypto.LoadOrCreateKey(keyPath)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	enc, err := crypto.NewEncryptor(key)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	return crypto.NewStore(kv, enc), nil
}

// OpenStore opens an additional key-value store for backend, using the
// configured backend settings. An empty path takes the default store path
// of that backend in the data directory. The caller closes the store.
func (c *Container) OpenStore(ctx context.Context, backend, path string) (domain.KeyValueStore, error) {
	storage := c.AppConfig.Storage
	storage.Backend = backend
	if path == "" {
		path = domain.StorePath(c.Config.DataDir, backend)
	}
	storage.Path = path
	return openStore(ctx, storage, path, c.Config.KeyPath)
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, tasks domain.TaskRepository, prefs domain.PreferenceRepository, clock domain.Clock, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Tasks:     tasks,
		Prefs:     prefs,
		Clock:     clock,
		Metrics:   metrics.NewExporter(),
		TaskLog:   domain.NopLogger{},
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// Load reads tasks and preferences from the store.
// Unreadable or malformed data leaves defaults in place and is logged by the
// repositories; only context cancellation is returned.
func (c *Container) Load(ctx context.Context) error {
	if err := c.Tasks.Load(ctx); err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	if err := c.Prefs.Load(ctx); err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}
	return nil
}

// Close releases the store and the log file.
func (c *Container) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// UseCase factory methods

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Tasks, c.Prefs, c.Clock)
}

// CreateTasksFromFileUseCase returns a new CreateTasksFromFile use case.
func (c *Container) CreateTasksFromFileUseCase() *usecase.CreateTasksFromFile {
	return usecase.NewCreateTasksFromFile(c.Tasks, c.Prefs, c.Clock)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Prefs)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks, c.Clock)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks, c.Prefs, c.Clock)
}

// SetStatusUseCase returns a new SetStatus use case.
func (c *Container) SetStatusUseCase() *usecase.SetStatus {
	return usecase.NewSetStatus(c.Tasks)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks)
}

// ClearTasksUseCase returns a new ClearTasks use case.
func (c *Container) ClearTasksUseCase() *usecase.ClearTasks {
	return usecase.NewClearTasks(c.Tasks)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks)
}

// ShowDashboardUseCase returns a new ShowDashboard use case.
func (c *Container) ShowDashboardUseCase() *usecase.ShowDashboard {
	return usecase.NewShowDashboard(c.Tasks, c.Prefs, c.Clock, c.AppConfig.SummaryOptions())
}

// ListNotificationsUseCase returns a new ListNotifications use case.
func (c *Container) ListNotificationsUseCase() *usecase.ListNotifications {
	return usecase.NewListNotifications(c.Tasks, c.Prefs, c.Clock)
}

// ExportMetricsUseCase returns a new ExportMetrics use case.
func (c *Container) ExportMetricsUseCase() *usecase.ExportMetrics {
	return usecase.NewExportMetrics(c.Tasks, c.Clock, c.Metrics, c.AppConfig.SummaryOptions())
}

// ShowProfileUseCase returns a new ShowProfile use case.
func (c *Container) ShowProfileUseCase() *usecase.ShowProfile {
	return usecase.NewShowProfile(c.Prefs)
}

// UpdateProfileUseCase returns a new UpdateProfile use case.
func (c *Container) UpdateProfileUseCase() *usecase.UpdateProfile {
	return usecase.NewUpdateProfile(c.Prefs)
}

// CompleteOnboardingUseCase returns a new CompleteOnboarding use case.
func (c *Container) CompleteOnboardingUseCase() *usecase.CompleteOnboarding {
	return usecase.NewCompleteOnboarding(c.Prefs)
}

// ShowSettingsUseCase returns a new ShowSettings use case.
func (c *Container) ShowSettingsUseCase() *usecase.ShowSettings {
	return usecase.NewShowSettings(c.Prefs)
}

// UpdateSettingsUseCase returns a new UpdateSettings use case.
func (c *Container) UpdateSettingsUseCase() *usecase.UpdateSettings {
	return usecase.NewUpdateSettings(c.Prefs)
}

// ResetSettingsUseCase returns a new ResetSettings use case.
func (c *Container) ResetSettingsUseCase() *usecase.ResetSettings {
	return usecase.NewResetSettings(c.Prefs)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// CopyTaskUseCase returns a new CopyTask use case.
func (c *Container) CopyTaskUseCase() *usecase.CopyTask {
	return usecase.NewCopyTask(c.Tasks)
}

// PruneTasksUseCase returns a new PruneTasks use case.
func (c *Container) PruneTasksUseCase() *usecase.PruneTasks {
	return usecase.NewPruneTasks(c.Tasks, c.Clock)
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Tasks, c.Config.DataDir)
}

// WatchNotificationsUseCase returns a new WatchNotifications use case.
func (c *Container) WatchNotificationsUseCase(stdout, stderr io.Writer) *usecase.WatchNotifications {
	return usecase.NewWatchNotifications(c.Tasks, c.Prefs, c.Clock, stdout, stderr)
}

// MigrateStoreUseCase returns a new MigrateStore use case copying the
// current store into dest.
func (c *Container) MigrateStoreUseCase(dest domain.KeyValueStore) *usecase.MigrateStore {
	return usecase.NewMigrateStore(c.Store, dest)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
