package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase/shared"
)

// ShowLogsInput contains the parameters for showing the log.
type ShowLogsInput struct {
	TaskID string // Task ID or unique prefix (optional, empty shows every entry)
	Lines  int    // Number of lines to display from the end (0 = all)
}

// ShowLogsOutput contains the result of showing the log.
type ShowLogsOutput struct {
	LogPath string // Path to the log file
	Content string // Matching log lines
}

// ShowLogs is the use case for viewing the operation log.
type ShowLogs struct {
	tasks   domain.TaskRepository
	dataDir string
}

// NewShowLogs creates a new ShowLogs use case.
func NewShowLogs(tasks domain.TaskRepository, dataDir string) *ShowLogs {
	return &ShowLogs{
		tasks:   tasks,
		dataDir: dataDir,
	}
}

// Execute reads the log file and returns the matching lines.
// Entries of deleted tasks stay reachable by passing their full ID.
func (uc *ShowLogs) Execute(_ context.Context, in ShowLogsInput) (*ShowLogsOutput, error) {
	logPath := domain.LogPath(uc.dataDir)

	tag := ""
	if ref := strings.TrimSpace(in.TaskID); ref != "" {
		id := ref
		task, err := shared.ResolveTask(uc.tasks, ref)
		switch {
		case err == nil:
			id = task.ID
		case !errors.Is(err, domain.ErrTaskNotFound):
			return nil, err
		}
		tag = "[task-" + shared.ShortID(id) + "]"
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoLogFile, logPath)
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if tag != "" {
		matched := lines[:0]
		for _, line := range lines {
			if strings.Contains(line, tag) {
				matched = append(matched, line)
			}
		}
		lines = matched
	}

	// If lines is specified, keep only the last N lines
	if in.Lines > 0 && len(lines) > in.Lines {
		lines = lines[len(lines)-in.Lines:]
	}

	return &ShowLogsOutput{
		LogPath: logPath,
		Content: strings.Join(lines, "\n"),
	}, nil
}
