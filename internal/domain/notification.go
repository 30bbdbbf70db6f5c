package domain

import (
	"fmt"
	"time"
)

// HighPriorityHorizon is how far ahead a high priority task's due date may be
// for it to raise a notification. Compared against the full timestamp.
const HighPriorityHorizon = 3 * 24 * time.Hour

// NotificationCategory labels why a pending task needs attention.
type NotificationCategory string

// Notification categories, in precedence order.
const (
	NotifyOverdue      NotificationCategory = "overdue"
	NotifyDueToday     NotificationCategory = "due-today"
	NotifyDueTomorrow  NotificationCategory = "due-tomorrow"
	NotifyHighPriority NotificationCategory = "high-priority"
)

// Display returns a human-readable label for the category.
func (c NotificationCategory) Display() string {
	switch c {
	case NotifyOverdue:
		return "Overdue"
	case NotifyDueToday:
		return "Due today"
	case NotifyDueTomorrow:
		return "Due tomorrow"
	case NotifyHighPriority:
		return "High priority"
	default:
		return string(c)
	}
}

// Notification pairs a task with the single category it was classified into.
type Notification struct {
	Task     *Task                `json:"task"`
	Category NotificationCategory `json:"category"`
}

// Message returns the alert text shown for the notification.
func (n Notification) Message() string {
	return fmt.Sprintf("%s: %q", n.Category.Display(), n.Task.Title)
}

// ClassifyNotification assigns at most one category to a task.
// First match wins: overdue, due-today, due-tomorrow, high-priority.
// Completed tasks are never classified.
func ClassifyNotification(t *Task, now time.Time) (NotificationCategory, bool) {
	if t.IsCompleted() {
		return "", false
	}

	today := CalendarDate(now)
	tomorrow := today.AddDate(0, 0, 1)
	dueDay := calendarDateIn(t.DueDate, now.Location())

	switch {
	case dueDay.Before(today):
		return NotifyOverdue, true
	case dueDay.Equal(today):
		return NotifyDueToday, true
	case dueDay.Equal(tomorrow):
		return NotifyDueTomorrow, true
	case t.Priority == PriorityHigh && !t.DueDate.After(now.Add(HighPriorityHorizon)):
		return NotifyHighPriority, true
	}
	return "", false
}

// Notifications classifies every pending task and returns the ones that
// produced a category, in collection order.
func Notifications(tasks []*Task, now time.Time) []Notification {
	result := make([]Notification, 0)
	for _, t := range tasks {
		if category, ok := ClassifyNotification(t, now); ok {
			result = append(result, Notification{Task: t, Category: category})
		}
	}
	return result
}
