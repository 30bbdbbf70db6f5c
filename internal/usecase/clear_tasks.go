package usecase

import (
	"context"

	"github.com/runoshun/ticktick/internal/domain"
)

// ClearTasksInput contains the parameters for removing every task.
type ClearTasksInput struct{}

// ClearTasksOutput contains the result of removing every task.
type ClearTasksOutput struct {
	Removed int // Number of tasks removed
}

// ClearTasks is the use case for removing every task.
type ClearTasks struct {
	tasks domain.TaskRepository
}

// NewClearTasks creates a new ClearTasks use case.
func NewClearTasks(tasks domain.TaskRepository) *ClearTasks {
	return &ClearTasks{tasks: tasks}
}

// Execute removes every task.
func (uc *ClearTasks) Execute(ctx context.Context, _ ClearTasksInput) (*ClearTasksOutput, error) {
	return &ClearTasksOutput{Removed: uc.tasks.Clear(ctx)}, nil
}
