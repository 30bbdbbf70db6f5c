package usecase

import (
	"context"
	"errors"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase/shared"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID string // Task ID or unique prefix (required)
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task    *domain.Task // The deleted task (nil if nothing matched)
	Deleted bool         // False when no task matched
}

// DeleteTask is the use case for deleting a task.
// Deleting an unknown task is not an error.
type DeleteTask struct {
	tasks domain.TaskRepository
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository) *DeleteTask {
	return &DeleteTask{tasks: tasks}
}

// Execute deletes the task.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	task, err := shared.ResolveTask(uc.tasks, in.TaskID)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return &DeleteTaskOutput{}, nil
	}
	if err != nil {
		return nil, err
	}

	deleted := uc.tasks.Delete(ctx, task.ID)
	return &DeleteTaskOutput{Task: task, Deleted: deleted}, nil
}
