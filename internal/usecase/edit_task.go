package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase/shared"
)

// EditTaskInput contains the parameters for editing a task.
// All fields except TaskID are optional. Only non-nil/non-empty fields will be updated.
// Fields are ordered to minimize memory padding.
type EditTaskInput struct {
	Title       *string  // New title (nil = no change)
	Description *string  // New description (nil = no change)
	Status      *string  // New status (nil = no change)
	Priority    *string  // New priority (nil = no change)
	Due         *string  // New due date (nil = no change)
	TaskID      string   // Task ID or unique prefix (required)
	AddTags     []string // Tags to add
	RemoveTags  []string // Tags to remove
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task // The updated task
}

// EditTask is the use case for editing an existing task.
type EditTask struct {
	tasks domain.TaskRepository
	prefs domain.PreferenceRepository
	clock domain.Clock
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository, prefs domain.PreferenceRepository, clock domain.Clock) *EditTask {
	return &EditTask{
		tasks: tasks,
		prefs: prefs,
		clock: clock,
	}
}

// Execute edits a task with the given input.
func (uc *EditTask) Execute(ctx context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	// Validate that at least one field is being updated
	if in.Title == nil && in.Description == nil && in.Status == nil && in.Priority == nil &&
		in.Due == nil && len(in.AddTags) == 0 && len(in.RemoveTags) == 0 {
		return nil, domain.ErrNoFieldsToUpdate
	}

	// Validate title is not empty if provided
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}

	task, err := shared.ResolveTask(uc.tasks, in.TaskID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		task.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		task.Description = strings.TrimSpace(*in.Description)
	}
	if in.Status != nil {
		status, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		task.Status = status
	}
	if in.Priority != nil {
		priority, err := domain.ParsePriority(*in.Priority)
		if err != nil {
			return nil, err
		}
		task.Priority = priority
	}
	if in.Due != nil {
		due, err := domain.ParseDueDate(*in.Due, uc.clock.Now(), uc.prefs.Settings().DefaultDueTime)
		if err != nil {
			return nil, err
		}
		task.DueDate = due
	}
	if len(in.AddTags) > 0 || len(in.RemoveTags) > 0 {
		task.Tags = domain.UpdateTags(task.Tags, in.AddTags, in.RemoveTags)
	}

	updated, err := uc.tasks.Update(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	return &EditTaskOutput{Task: updated}, nil
}
