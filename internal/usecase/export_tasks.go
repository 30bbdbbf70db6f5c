package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/ticktick/internal/domain"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct {
	Format string // json (default) or yaml
}

// ExportTasksOutput contains the exported document.
type ExportTasksOutput struct {
	Content string // Encoded task list
	Count   int    // Number of exported tasks
}

// ExportTasks is the use case for exporting every task.
// The YAML output can be fed back to CreateTasksFromFile.
type ExportTasks struct {
	tasks domain.TaskRepository
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(tasks domain.TaskRepository) *ExportTasks {
	return &ExportTasks{tasks: tasks}
}

// Execute encodes every task in the requested format.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	tasks, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, toRecord(t))
	}

	var data []byte
	switch strings.ToLower(in.Format) {
	case "", FormatJSON:
		data, err = json.MarshalIndent(records, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML, "yml":
		data, err = yaml.Marshal(taskFile{Tasks: records})
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, in.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}

	return &ExportTasksOutput{Content: string(data), Count: len(records)}, nil
}

func toRecord(t *domain.Task) taskRecord {
	r := taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Due:         t.DueDate.Format(time.RFC3339),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		Tags:        t.Tags,
	}
	if t.CompletedAt != nil {
		r.CompletedAt = t.CompletedAt.Format(time.RFC3339)
	}
	return r
}
