package tui

import "github.com/runoshun/ticktick/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when tasks and the derived summary are loaded.
// Fields are ordered to minimize memory padding.
type MsgTasksLoaded struct {
	Summary  domain.Summary
	Profile  domain.UserProfile
	Settings domain.UserSettings
	Tasks    []*domain.Task
	View     domain.View
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskCreated is sent when a new task is created.
type MsgTaskCreated struct {
	TaskID string
}

func (MsgTaskCreated) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	TaskID string
}

func (MsgTaskDeleted) sealed() {}

// MsgTasksCleared is sent when every task is deleted.
type MsgTasksCleared struct {
	Removed int
}

func (MsgTasksCleared) sealed() {}

// MsgTaskStatusUpdated is sent when a task status is updated.
type MsgTaskStatusUpdated struct {
	TaskID string
	Status domain.Status
}

func (MsgTaskStatusUpdated) sealed() {}

// MsgViewChanged is sent when the remembered task view changes.
type MsgViewChanged struct {
	View domain.View
}

func (MsgViewChanged) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
