package domain

import (
	"context"
	"time"
)

// Keys of the persisted key-value layout.
const (
	KeyTasks              = "tasks"                  // JSON array of Task
	KeyUserProfile        = "userProfile"            // JSON UserProfile
	KeyUserSettings       = "userSettings"           // JSON UserSettings
	KeyOnboardingComplete = "hasCompletedOnboarding" // "true" / "false"
	KeyDefaultTaskView    = "defaultTaskView"        // "board" / "list"
)

// PersistedKeys lists every key of the persisted layout.
func PersistedKeys() []string {
	return []string{KeyTasks, KeyUserProfile, KeyUserSettings, KeyOnboardingComplete, KeyDefaultTaskView}
}

// KeyValueStore is a string key-value store with the semantics of browser
// local storage: values are opaque strings, missing keys are not an error.
type KeyValueStore interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TaskRepository is the authoritative task collection.
// Mutations persist immediately; persistence failures are logged by the
// implementation and never returned, so the in-memory state stays usable.
type TaskRepository interface {
	// Load replaces the in-memory collection with the persisted one.
	// Malformed or unreadable data falls back to an empty collection.
	Load(ctx context.Context) error

	// Get retrieves a copy of a task by ID. Returns nil if not found.
	Get(id string) (*Task, error)

	// List retrieves copies of tasks matching the filter, in insertion order.
	List(filter TaskFilter) ([]*Task, error)

	// Create assigns ID and CreatedAt, appends the task and returns a copy.
	Create(ctx context.Context, draft TaskDraft) (*Task, error)

	// Update replaces the mutable fields of the stored task with the same ID.
	// ID and CreatedAt are kept from the stored record.
	Update(ctx context.Context, task *Task) (*Task, error)

	// SetStatus transitions a task and keeps CompletedAt consistent.
	SetStatus(ctx context.Context, id string, status Status) (*Task, error)

	// Delete removes a task by ID and reports whether it existed.
	Delete(ctx context.Context, id string) bool

	// Clear removes every task and returns how many were removed.
	Clear(ctx context.Context) int
}

// PreferenceRepository holds the profile and settings of the local user.
// Setters flush immediately; write failures are logged, not returned.
type PreferenceRepository interface {
	// Load reads every preference key, using defaults for missing, malformed
	// or unreadable values.
	Load(ctx context.Context) error

	Profile() UserProfile
	SetProfile(ctx context.Context, p UserProfile)

	Settings() UserSettings
	SetSettings(ctx context.Context, s UserSettings)
	ResetSettings(ctx context.Context)

	OnboardingDone() bool
	CompleteOnboarding(ctx context.Context)

	DefaultView() View
	SetDefaultView(ctx context.Context, v View)
}

// ConfigLoader loads the merged configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- data dir <- environment).
	Load() (*Config, error)
}

// ConfigManager inspects and creates configuration files.
type ConfigManager interface {
	GetGlobalConfigInfo() ConfigInfo
	GetDataConfigInfo() ConfigInfo
	InitGlobalConfig(cfg *Config) error
	InitDataConfig(cfg *Config) error
}

// MetricsExporter publishes dashboard summaries as metrics.
type MetricsExporter interface {
	// Observe records the values of a summary.
	Observe(s Summary)

	// WriteTextfile writes the recorded metrics to path in the text exposition format.
	WriteTextfile(path string) error
}

// IDGenerator produces unique task IDs.
type IDGenerator interface {
	NewID() string
}

// Logger writes operational log entries.
// taskID is empty for entries that are not about a single task.
type Logger interface {
	Info(taskID, category, msg string)
	Debug(taskID, category, msg string)
	Warn(taskID, category, msg string)
	Error(taskID, category, msg string)
}

// NopLogger discards every entry.
type NopLogger struct{}

func (NopLogger) Info(_, _, _ string)  {}
func (NopLogger) Debug(_, _, _ string) {}
func (NopLogger) Warn(_, _, _ string)  {}
func (NopLogger) Error(_, _, _ string) {}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
