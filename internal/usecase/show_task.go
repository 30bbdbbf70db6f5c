package usecase

import (
	"context"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase/shared"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID string // Task ID or unique prefix (required)
}

// ShowTaskOutput contains the task and its derived flags.
// Fields are ordered to minimize memory padding.
type ShowTaskOutput struct {
	Task     *domain.Task                // The task
	Category domain.NotificationCategory // Notification category ("" if none)
	PastDue  bool                        // Due timestamp is in the past and the task is pending
	DueSoon  bool                        // Due within the next day and the task is pending
}

// ShowTask is the use case for displaying a task.
type ShowTask struct {
	tasks domain.TaskRepository
	clock domain.Clock
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.TaskRepository, clock domain.Clock) *ShowTask {
	return &ShowTask{
		tasks: tasks,
		clock: clock,
	}
}

// Execute retrieves the task and computes its flags.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, err := shared.ResolveTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	category, _ := domain.ClassifyNotification(task, now)
	return &ShowTaskOutput{
		Task:     task,
		Category: category,
		PastDue:  task.IsPastDue(now),
		DueSoon:  task.IsDueSoon(now),
	}, nil
}
