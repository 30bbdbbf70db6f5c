package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/ticktick/internal/domain"
)

// PruneTasksInput contains the parameters for pruning tasks.
type PruneTasksInput struct {
	OlderThan time.Duration // Minimum time since completion (0 prunes every completed task)
	DryRun    bool          // If true, only list what would be pruned
}

// PruneTasksOutput contains the result of pruning tasks.
type PruneTasksOutput struct {
	DeletedTasks []*domain.Task // Tasks that were (or would be) deleted
}

// PruneTasks is the use case for removing tasks completed long ago.
type PruneTasks struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewPruneTasks creates a new PruneTasks use case.
func NewPruneTasks(tasks domain.TaskRepository, clock domain.Clock) *PruneTasks {
	return &PruneTasks{
		tasks: tasks,
		clock: clock,
	}
}

// Execute prunes completed tasks whose completion time is at least OlderThan ago.
// Completed tasks without a completion time are pruned as well.
func (uc *PruneTasks) Execute(ctx context.Context, in PruneTasksInput) (*PruneTasksOutput, error) {
	tasks, err := uc.tasks.List(domain.TaskFilter{Status: domain.StatusCompleted})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	cutoff := uc.clock.Now().Add(-in.OlderThan)
	out := &PruneTasksOutput{DeletedTasks: []*domain.Task{}}
	for _, task := range tasks {
		if task.CompletedAt != nil && task.CompletedAt.After(cutoff) {
			continue
		}
		out.DeletedTasks = append(out.DeletedTasks, task)
		if !in.DryRun {
			uc.tasks.Delete(ctx, task.ID)
		}
	}

	return out, nil
}
