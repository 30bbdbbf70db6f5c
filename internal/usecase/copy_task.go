package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase/shared"
)

// CopyTaskInput contains the parameters for copying a task.
// Fields are ordered to minimize memory padding.
type CopyTaskInput struct {
	Title    *string // New title (optional, defaults to "<original> (copy)")
	SourceID string  // Source task ID or unique prefix
}

// CopyTaskOutput contains the result of copying a task.
type CopyTaskOutput struct {
	Task *domain.Task // The new task
}

// CopyTask is the use case for copying a task.
type CopyTask struct {
	tasks domain.TaskRepository
}

// NewCopyTask creates a new CopyTask use case.
func NewCopyTask(tasks domain.TaskRepository) *CopyTask {
	return &CopyTask{tasks: tasks}
}

// Execute copies a task with the given input.
// The new task copies: title (with " (copy)" suffix), description, priority, due date, tags.
// The new task always starts as todo with a fresh ID and creation time.
func (uc *CopyTask) Execute(ctx context.Context, in CopyTaskInput) (*CopyTaskOutput, error) {
	source, err := shared.ResolveTask(uc.tasks, in.SourceID)
	if err != nil {
		return nil, err
	}

	title := source.Title + " (copy)"
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
	}

	draft := domain.TaskDraft{
		Title:       title,
		Description: source.Description,
		Status:      domain.StatusTodo,
		Priority:    source.Priority,
		DueDate:     source.DueDate,
		Tags:        append([]string{}, source.Tags...),
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	task, err := uc.tasks.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &CopyTaskOutput{Task: task}, nil
}
