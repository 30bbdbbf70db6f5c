package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase/shared"
)

// SetStatusInput contains the parameters for changing a task's status.
type SetStatusInput struct {
	TaskID string        // Task ID or unique prefix (required)
	Status domain.Status // Target status (required)
}

// SetStatusOutput contains the result of changing a task's status.
type SetStatusOutput struct {
	Task     *domain.Task  // The updated task
	Previous domain.Status // Status before the change
}

// SetStatus is the use case for moving a task between statuses.
type SetStatus struct {
	tasks domain.TaskRepository
}

// NewSetStatus creates a new SetStatus use case.
func NewSetStatus(tasks domain.TaskRepository) *SetStatus {
	return &SetStatus{tasks: tasks}
}

// Execute changes the status of the task.
func (uc *SetStatus) Execute(ctx context.Context, in SetStatusInput) (*SetStatusOutput, error) {
	if !in.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	task, err := shared.ResolveTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	updated, err := uc.tasks.SetStatus(ctx, task.ID, in.Status)
	if err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}

	return &SetStatusOutput{Task: updated, Previous: task.Status}, nil
}
