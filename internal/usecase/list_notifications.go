package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/ticktick/internal/domain"
)

// ListNotificationsInput contains the parameters for listing notifications.
type ListNotificationsInput struct{}

// ListNotificationsOutput contains the current notifications.
type ListNotificationsOutput struct {
	Notifications []domain.Notification // One entry per pending task that needs attention
	Disabled      bool                  // Due date reminders are turned off
}

// ListNotifications is the use case for classifying pending tasks.
type ListNotifications struct {
	tasks domain.TaskRepository
	prefs domain.PreferenceRepository
	clock domain.Clock
}

// NewListNotifications creates a new ListNotifications use case.
func NewListNotifications(tasks domain.TaskRepository, prefs domain.PreferenceRepository, clock domain.Clock) *ListNotifications {
	return &ListNotifications{
		tasks: tasks,
		prefs: prefs,
		clock: clock,
	}
}

// Execute returns the notifications for the current task collection.
func (uc *ListNotifications) Execute(_ context.Context, _ ListNotificationsInput) (*ListNotificationsOutput, error) {
	if !uc.prefs.Settings().Notifications.DueDateReminders {
		return &ListNotificationsOutput{Notifications: []domain.Notification{}, Disabled: true}, nil
	}

	tasks, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return &ListNotificationsOutput{Notifications: domain.Notifications(tasks, uc.clock.Now())}, nil
}
