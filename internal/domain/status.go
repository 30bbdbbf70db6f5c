package domain

import "strings"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"        // Created, not started
	StatusInProgress Status = "in-progress" // Being worked on
	StatusCompleted  Status = "completed"   // Done
)

// AllStatuses returns all valid status values in board order.
func AllStatuses() []Status {
	return []Status{
		StatusTodo,
		StatusInProgress,
		StatusCompleted,
	}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Next returns the status that follows s in the board cycle
// todo → in-progress → completed → todo.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusTodo
	}
}

// ParseStatus parses a user-supplied status. Underscores and spaces are
// accepted in place of the hyphen, and "done" is accepted for completed.
func ParseStatus(s string) (Status, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer("_", "-", " ", "-").Replace(v)
	if v == "done" {
		v = string(StatusCompleted)
	}
	status := Status(v)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
