// Package tui provides the terminal dashboard for tick.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal        Mode = iota // Default navigation mode
	ModeFilter                    // Text filtering mode
	ModeConfirm                   // Confirmation dialog mode
	ModeInputTitle                // Title input mode (for new task)
	ModeInputDesc                 // Description input mode (for new task)
	ModeChangeStatus              // Status picker mode
	ModeNotifications             // Notification overlay mode
	ModeHelp                      // Help overlay mode
	ModeDetail                    // Task detail view mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFilter:
		return "filter"
	case ModeConfirm:
		return "confirm"
	case ModeInputTitle:
		return "input_title"
	case ModeInputDesc:
		return "input_desc"
	case ModeChangeStatus:
		return "change_status"
	case ModeNotifications:
		return "notifications"
	case ModeHelp:
		return "help"
	case ModeDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeFilter, ModeInputTitle, ModeInputDesc:
		return true
	case ModeNormal, ModeConfirm, ModeChangeStatus, ModeNotifications, ModeHelp, ModeDetail:
		return false
	}
	return false
}

// Page is the top-level screen shown in normal mode.
type Page int

const (
	PageDashboard Page = iota // Summary, reminders and recent completions
	PageTasks                 // Task list or board
)

// String returns the string representation of the page.
func (p Page) String() string {
	switch p {
	case PageDashboard:
		return "dashboard"
	case PageTasks:
		return "tasks"
	default:
		return "unknown"
	}
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Delete task
	ConfirmClear                // Delete every task
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		return "delete"
	case ConfirmClear:
		return "clear"
	}
	return ""
}
