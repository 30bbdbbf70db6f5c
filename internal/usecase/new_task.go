// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/ticktick/internal/domain"
)

// NewTaskInput contains the parameters for creating a new task.
// Empty optional fields take the task dialog defaults.
// Fields are ordered to minimize memory padding.
type NewTaskInput struct {
	Title       string   // Task title (required)
	Description string   // Task description (optional)
	Status      string   // Status (optional, default todo)
	Priority    string   // Priority (optional, default medium)
	Due         string   // Due date (optional, default today at the default due time)
	Tags        []string // Tags (optional)
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	Task *domain.Task // The created task
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	tasks domain.TaskRepository
	prefs domain.PreferenceRepository
	clock domain.Clock
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(tasks domain.TaskRepository, prefs domain.PreferenceRepository, clock domain.Clock) *NewTask {
	return &NewTask{
		tasks: tasks,
		prefs: prefs,
		clock: clock,
	}
}

// Execute creates a new task with the given input.
func (uc *NewTask) Execute(ctx context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	draft, err := buildDraft(in, uc.clock.Now(), uc.prefs.Settings().DefaultDueTime)
	if err != nil {
		return nil, err
	}

	task, err := uc.tasks.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return &NewTaskOutput{Task: task}, nil
}

// buildDraft turns raw input into a validated draft.
func buildDraft(in NewTaskInput, now time.Time, dueTime string) (domain.TaskDraft, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.TaskDraft{}, domain.ErrEmptyTitle
	}

	draft := domain.NewTaskDraft(title, now, dueTime)
	draft.Description = strings.TrimSpace(in.Description)
	draft.Tags = domain.NormalizeTags(in.Tags)

	if in.Status != "" {
		status, err := domain.ParseStatus(in.Status)
		if err != nil {
			return domain.TaskDraft{}, err
		}
		draft.Status = status
	}
	if in.Priority != "" {
		priority, err := domain.ParsePriority(in.Priority)
		if err != nil {
			return domain.TaskDraft{}, err
		}
		draft.Priority = priority
	}
	if in.Due != "" {
		due, err := domain.ParseDueDate(in.Due, now, dueTime)
		if err != nil {
			return domain.TaskDraft{}, err
		}
		draft.DueDate = due
	}

	if err := draft.Validate(); err != nil {
		return domain.TaskDraft{}, err
	}
	return draft, nil
}
