// Package taskstore provides the authoritative in-memory task collection,
// persisted as a JSON array under the "tasks" key of a KeyValueStore.
package taskstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/runoshun/ticktick/internal/domain"
)

const logCategory = "store"

// UUIDGenerator implements domain.IDGenerator with random version 4 UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Store implements domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type Store struct {
	kv     domain.KeyValueStore
	clock  domain.Clock
	ids    domain.IDGenerator
	logger domain.Logger
	tasks  []*domain.Task
	mu     sync.RWMutex
}

// New creates a Store. Call Load before use to read persisted tasks.
func New(kv domain.KeyValueStore, clock domain.Clock, ids domain.IDGenerator, logger domain.Logger) *Store {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Store{
		kv:     kv,
		clock:  clock,
		ids:    ids,
		logger: logger,
		tasks:  []*domain.Task{},
	}
}

// Load replaces the in-memory collection with the persisted one.
// A missing key yields an empty collection. Malformed data and backend read
// failures are logged and also yield an empty collection; only context
// cancellation is returned.
func (s *Store) Load(ctx context.Context) error {
	raw, found, err := s.kv.Get(ctx, domain.KeyTasks)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = []*domain.Task{}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		s.logger.Warn("", logCategory, fmt.Sprintf("read tasks failed, starting empty: %v", err))
		return nil
	}
	if !found || strings.TrimSpace(raw) == "" {
		return nil
	}

	var loaded []*domain.Task
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		s.logger.Warn("", logCategory, fmt.Sprintf("malformed tasks value, starting empty: %v", err))
		return nil
	}

	s.tasks = s.normalize(loaded)
	return nil
}

// normalize repairs records that violate task invariants. Every repair is logged.
func (s *Store) normalize(loaded []*domain.Task) []*domain.Task {
	now := s.clock.Now()
	result := make([]*domain.Task, 0, len(loaded))
	seen := make(map[string]bool, len(loaded))

	for _, t := range loaded {
		if t == nil {
			s.logger.Warn("", logCategory, "dropped null task record")
			continue
		}
		if t.ID == "" || seen[t.ID] {
			old := t.ID
			t.ID = s.ids.NewID()
			s.logger.Warn(t.ID, logCategory, fmt.Sprintf("reassigned missing or duplicate id %q", old))
		}
		seen[t.ID] = true

		if !t.Status.IsValid() {
			s.logger.Warn(t.ID, logCategory, fmt.Sprintf("unknown status %q, using todo", t.Status))
			t.Status = domain.StatusTodo
		}
		if !t.Priority.IsValid() {
			s.logger.Warn(t.ID, logCategory, fmt.Sprintf("unknown priority %q, using medium", t.Priority))
			t.Priority = domain.PriorityMedium
		}
		if t.IsCompleted() && t.CompletedAt == nil {
			s.logger.Warn(t.ID, logCategory, "completed task without completedAt, stamping load time")
		}
		if !t.IsCompleted() && t.CompletedAt != nil {
			s.logger.Warn(t.ID, logCategory, "completedAt on a pending task, clearing it")
		}
		t.ApplyStatus(t.Status, now)
		t.Tags = domain.NormalizeTags(t.Tags)

		result = append(result, t)
	}
	return result
}

// Get retrieves a copy of a task by ID. Returns nil if not found.
func (s *Store) Get(id string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i].Clone(), nil
	}
	return nil, nil
}

// List retrieves copies of tasks matching the filter, in insertion order.
func (s *Store) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Match(t) {
			result = append(result, t.Clone())
		}
	}
	return result, nil
}

// Create assigns an ID and creation time, appends the task and persists.
func (s *Store) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	task := &domain.Task{
		ID:          s.ids.NewID(),
		Title:       strings.TrimSpace(draft.Title),
		Description: draft.Description,
		Priority:    draft.Priority,
		DueDate:     draft.DueDate,
		Tags:        domain.NormalizeTags(draft.Tags),
		CreatedAt:   now,
	}
	task.ApplyStatus(draft.Status, now)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, task)
	s.logger.Info(task.ID, "task", fmt.Sprintf("created %q", task.Title))
	s.persist(ctx)
	return task.Clone(), nil
}

// Update replaces the mutable fields of the stored task with the same ID.
// A status change follows the same completedAt rules as SetStatus.
func (s *Store) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if strings.TrimSpace(task.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}
	if !task.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if !task.Priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}
	if task.DueDate.IsZero() {
		return nil, domain.ErrMissingDueDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(task.ID)
	if i < 0 {
		return nil, domain.ErrTaskNotFound
	}

	stored := s.tasks[i]
	stored.Title = strings.TrimSpace(task.Title)
	stored.Description = task.Description
	stored.Priority = task.Priority
	stored.DueDate = task.DueDate
	stored.Tags = domain.NormalizeTags(task.Tags)
	stored.ApplyStatus(task.Status, s.clock.Now())

	s.logger.Info(stored.ID, "task", "updated")
	s.persist(ctx)
	return stored.Clone(), nil
}

// SetStatus transitions a task and keeps CompletedAt consistent.
// Completing an already completed task keeps its original completion time.
func (s *Store) SetStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, domain.ErrTaskNotFound
	}

	stored := s.tasks[i]
	from := stored.Status
	stored.ApplyStatus(status, s.clock.Now())

	s.logger.Info(stored.ID, "task", fmt.Sprintf("status %s -> %s", from, status))
	s.persist(ctx)
	return stored.Clone(), nil
}

// Delete removes a task by ID. Deleting an unknown ID is a no-op.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.logger.Info(id, "task", "deleted")
	s.persist(ctx)
	return true
}

// Clear removes every task and returns how many were removed.
func (s *Store) Clear(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.tasks)
	s.tasks = []*domain.Task{}
	s.logger.Info("", "task", fmt.Sprintf("cleared %d tasks", n))
	s.persist(ctx)
	return n
}

// indexOf returns the position of id, or -1. Callers hold s.mu.
func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the whole collection. Failures are logged and swallowed so
// the in-memory collection stays authoritative. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.tasks)
	if err != nil {
		s.logger.Error("", logCategory, fmt.Sprintf("marshal tasks: %v", err))
		return
	}
	if err := s.kv.Set(ctx, domain.KeyTasks, string(data)); err != nil {
		s.logger.Error("", logCategory, fmt.Sprintf("write tasks: %v", err))
	}
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
