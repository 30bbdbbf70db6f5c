// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/ticktick/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockIDGenerator returns sequential IDs "task-1", "task-2", ...
type MockIDGenerator struct {
	Prefix string
	N      int
}

// NewID returns the next sequential ID.
func (m *MockIDGenerator) NewID() string {
	m.N++
	prefix := m.Prefix
	if prefix == "" {
		prefix = "task-"
	}
	return fmt.Sprintf("%s%d", prefix, m.N)
}

// LogEntry is one entry recorded by MockLogger.
type LogEntry struct {
	Level    string
	TaskID   string
	Category string
	Msg      string
}

// MockLogger records every entry for inspection.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, taskID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(taskID, category, msg string) { m.add("INFO", taskID, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID, category, msg string) { m.add("DEBUG", taskID, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(taskID, category, msg string) { m.add("WARN", taskID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(taskID, category, msg string) { m.add("ERROR", taskID, category, msg) }

// Count returns how many entries were recorded at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockKeyValueStore is a test double for domain.KeyValueStore.
// Fields are ordered to minimize memory padding.
type MockKeyValueStore struct {
	Values    map[string]string
	GetErr    error
	SetErr    error
	DeleteErr error
	SetCalls  int
	Closed    bool
}

// NewMockKeyValueStore creates an empty MockKeyValueStore.
func NewMockKeyValueStore() *MockKeyValueStore {
	return &MockKeyValueStore{Values: make(map[string]string)}
}

// Get returns the stored value.
func (m *MockKeyValueStore) Get(_ context.Context, key string) (string, bool, error) {
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Values[key]
	return v, ok, nil
}

// Set stores the value.
func (m *MockKeyValueStore) Set(_ context.Context, key, value string) error {
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Values[key] = value
	return nil
}

// Delete removes the value.
func (m *MockKeyValueStore) Delete(_ context.Context, key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Values, key)
	return nil
}

// Close marks the store closed.
func (m *MockKeyValueStore) Close() error {
	m.Closed = true
	return nil
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Tasks are kept in insertion order; returned tasks are copies.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Clock     domain.Clock
	IDs       domain.IDGenerator
	LoadErr   error
	GetErr    error
	ListErr   error
	CreateErr error
	UpdateErr error
	Tasks     []*domain.Task
}

// NewMockTaskRepository creates an empty MockTaskRepository.
func NewMockTaskRepository(clock domain.Clock) *MockTaskRepository {
	return &MockTaskRepository{
		Clock: clock,
		IDs:   &MockIDGenerator{},
		Tasks: []*domain.Task{},
	}
}

// Add appends a task directly, bypassing validation.
func (m *MockTaskRepository) Add(tasks ...*domain.Task) {
	m.Tasks = append(m.Tasks, tasks...)
}

// Load returns LoadErr.
func (m *MockTaskRepository) Load(_ context.Context) error {
	return m.LoadErr
}

// Get retrieves a copy of a task by ID.
func (m *MockTaskRepository) Get(id string) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	for _, t := range m.Tasks {
		if t.ID == id {
			return t.Clone(), nil
		}
	}
	return nil, nil
}

// List returns copies of matching tasks.
func (m *MockTaskRepository) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	result := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		if filter.Match(t) {
			result = append(result, t.Clone())
		}
	}
	return result, nil
}

// Create appends a task built from the draft.
func (m *MockTaskRepository) Create(_ context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	now := m.Clock.Now()
	t := &domain.Task{
		ID:          m.IDs.NewID(),
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    draft.Priority,
		DueDate:     draft.DueDate,
		Tags:        domain.NormalizeTags(draft.Tags),
		CreatedAt:   now,
	}
	t.ApplyStatus(draft.Status, now)
	m.Tasks = append(m.Tasks, t)
	return t.Clone(), nil
}

// Update replaces the stored task's mutable fields.
func (m *MockTaskRepository) Update(_ context.Context, task *domain.Task) (*domain.Task, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	for _, t := range m.Tasks {
		if t.ID == task.ID {
			t.Title = task.Title
			t.Description = task.Description
			t.Priority = task.Priority
			t.DueDate = task.DueDate
			t.Tags = domain.NormalizeTags(task.Tags)
			t.ApplyStatus(task.Status, m.Clock.Now())
			return t.Clone(), nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

// SetStatus transitions the stored task.
func (m *MockTaskRepository) SetStatus(_ context.Context, id string, status domain.Status) (*domain.Task, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	for _, t := range m.Tasks {
		if t.ID == id {
			t.ApplyStatus(status, m.Clock.Now())
			return t.Clone(), nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

// Delete removes a task by ID.
func (m *MockTaskRepository) Delete(_ context.Context, id string) bool {
	for i, t := range m.Tasks {
		if t.ID == id {
			m.Tasks = append(m.Tasks[:i], m.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every task.
func (m *MockTaskRepository) Clear(_ context.Context) int {
	n := len(m.Tasks)
	m.Tasks = []*domain.Task{}
	return n
}

// MockPreferences is a test double for domain.PreferenceRepository.
// Fields are ordered to minimize memory padding.
type MockPreferences struct {
	LoadErr   error
	ProfileV  domain.UserProfile
	SettingsV domain.UserSettings
	View      domain.View
	SetCalls  int
	Onboarded bool
}

// NewMockPreferences returns preferences holding the defaults.
func NewMockPreferences() *MockPreferences {
	return &MockPreferences{
		ProfileV:  domain.DefaultProfile(),
		SettingsV: domain.DefaultSettings(),
		View:      domain.ViewBoard,
	}
}

// Load returns LoadErr.
func (m *MockPreferences) Load(_ context.Context) error { return m.LoadErr }

// Profile returns the profile.
func (m *MockPreferences) Profile() domain.UserProfile { return m.ProfileV }

// SetProfile stores the profile.
func (m *MockPreferences) SetProfile(_ context.Context, p domain.UserProfile) {
	m.SetCalls++
	m.ProfileV = p
}

// Settings returns the settings.
func (m *MockPreferences) Settings() domain.UserSettings { return m.SettingsV }

// SetSettings stores the settings.
func (m *MockPreferences) SetSettings(_ context.Context, s domain.UserSettings) {
	m.SetCalls++
	m.SettingsV = s
}

// ResetSettings restores the default settings.
func (m *MockPreferences) ResetSettings(_ context.Context) {
	m.SetCalls++
	m.SettingsV = domain.DefaultSettings()
}

// OnboardingDone reports the onboarding flag.
func (m *MockPreferences) OnboardingDone() bool { return m.Onboarded }

// CompleteOnboarding sets the onboarding flag.
func (m *MockPreferences) CompleteOnboarding(_ context.Context) {
	m.SetCalls++
	m.Onboarded = true
}

// DefaultView returns the stored view.
func (m *MockPreferences) DefaultView() domain.View { return m.View }

// SetDefaultView stores the view.
func (m *MockPreferences) SetDefaultView(_ context.Context, v domain.View) {
	m.SetCalls++
	m.View = v
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitDataErr      error
	InitGlobalErr    error
	InitConfig       *domain.Config
	DataConfigInfo   domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitDataCalled   bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		DataConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.local/share/tick/config.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/tick/config.toml",
			Exists: false,
		},
	}
}

// GetDataConfigInfo returns the configured data dir config info.
func (m *MockConfigManager) GetDataConfigInfo() domain.ConfigInfo {
	return m.DataConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitDataConfig records the call and returns configured error.
func (m *MockConfigManager) InitDataConfig(cfg *domain.Config) error {
	m.InitDataCalled = true
	m.InitConfig = cfg
	return m.InitDataErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	return m.InitGlobalErr
}

var (
	_ domain.Clock                = (*MockClock)(nil)
	_ domain.IDGenerator          = (*MockIDGenerator)(nil)
	_ domain.Logger               = (*MockLogger)(nil)
	_ domain.KeyValueStore        = (*MockKeyValueStore)(nil)
	_ domain.TaskRepository       = (*MockTaskRepository)(nil)
	_ domain.PreferenceRepository = (*MockPreferences)(nil)
	_ domain.ConfigLoader         = (*MockConfigLoader)(nil)
	_ domain.ConfigManager        = (*MockConfigManager)(nil)
)
