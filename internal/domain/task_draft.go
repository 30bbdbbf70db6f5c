package domain

import (
	"strings"
	"time"
)

// TaskDraft holds the user-supplied fields of a task that has not been created yet.
// The store assigns ID and CreatedAt.
// Fields are ordered to minimize memory padding.
type TaskDraft struct {
	DueDate     time.Time
	Title       string
	Description string
	Status      Status
	Priority    Priority
	Tags        []string
}

// NewTaskDraft returns a draft with the defaults a new task starts with:
// status todo, priority medium, due today at defaultDueTime.
func NewTaskDraft(title string, now time.Time, defaultDueTime string) TaskDraft {
	due, err := DefaultDueDate(now, defaultDueTime)
	if err != nil {
		due, _ = DefaultDueDate(now, DefaultDueTime)
	}
	return TaskDraft{
		Title:    title,
		Status:   StatusTodo,
		Priority: PriorityMedium,
		DueDate:  due,
		Tags:     []string{},
	}
}

// Validate checks that the draft has the shape the store expects.
func (d TaskDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	if !d.Status.IsValid() {
		return ErrInvalidStatus
	}
	if !d.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if d.DueDate.IsZero() {
		return ErrMissingDueDate
	}
	return nil
}
