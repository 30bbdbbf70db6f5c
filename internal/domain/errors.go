package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrAmbiguousTaskID   = errors.New("task ID prefix matches more than one task")
	ErrEmptyTaskID       = errors.New("task ID cannot be empty")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrInvalidStatus     = errors.New("invalid status (want todo, in-progress or completed)")
	ErrInvalidPriority   = errors.New("invalid priority (want low, medium or high)")
	ErrMissingDueDate    = errors.New("due date is required")
	ErrInvalidDueDate    = errors.New("invalid due date")
	ErrInvalidDueTime    = errors.New("invalid due time (want HH:MM)")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrEmptyFile         = errors.New("file is empty")
	ErrNoTasksInFile     = errors.New("no tasks found in file")
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrInvalidEmail      = errors.New("please enter a valid email address")
	ErrInvalidAvatar     = errors.New("unknown avatar")
	ErrInvalidTheme      = errors.New("invalid theme (want light, dark or system)")
	ErrInvalidView       = errors.New("invalid view (want board or list)")
	ErrUnknownSetting    = errors.New("unknown setting")
	ErrUnknownBackend    = errors.New("unknown storage backend")
	ErrInvalidKey        = errors.New("invalid encryption key: must be 32 bytes (64 hex characters)")
	ErrDecryptionFailed  = errors.New("decryption failed: invalid ciphertext or key")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrConfigExists      = errors.New("config file already exists")
	ErrNoLogFile         = errors.New("no log file found")
	ErrMigrationConflict = errors.New("destination already holds a different value")
	ErrSameStore         = errors.New("source and destination store are the same")
	ErrInvalidDuration   = errors.New("invalid duration (want e.g. 30d, 12h)")
)
