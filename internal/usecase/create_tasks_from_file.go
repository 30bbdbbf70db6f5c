package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/runoshun/ticktick/internal/domain"
	"gopkg.in/yaml.v3"
)

// taskRecord is the YAML/JSON shape of a task in import and export files.
// Fields are ordered to minimize memory padding.
type taskRecord struct {
	ID          string   `yaml:"id,omitempty" json:"id,omitempty"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Status      string   `yaml:"status,omitempty" json:"status,omitempty"`
	Priority    string   `yaml:"priority,omitempty" json:"priority,omitempty"`
	Due         string   `yaml:"due,omitempty" json:"due,omitempty"`
	CompletedAt string   `yaml:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt   string   `yaml:"createdAt,omitempty" json:"createdAt,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// taskFile is the mapping form of a task file.
type taskFile struct {
	Tasks []taskRecord `yaml:"tasks"`
}

// parseTaskRecords accepts either a YAML sequence of tasks or a mapping
// with a "tasks" key.
func parseTaskRecords(content string) ([]taskRecord, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyFile
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(content), &node); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, domain.ErrEmptyFile
	}

	var records []taskRecord
	switch node.Content[0].Kind {
	case yaml.SequenceNode:
		if err := node.Content[0].Decode(&records); err != nil {
			return nil, fmt.Errorf("parse task file: %w", err)
		}
	case yaml.MappingNode:
		var f taskFile
		if err := node.Content[0].Decode(&f); err != nil {
			return nil, fmt.Errorf("parse task file: %w", err)
		}
		records = f.Tasks
	default:
		return nil, fmt.Errorf("parse task file: %w", domain.ErrNoTasksInFile)
	}

	if len(records) == 0 {
		return nil, domain.ErrNoTasksInFile
	}
	return records, nil
}

// CreateTasksFromFileInput contains the parameters for creating tasks from a file.
type CreateTasksFromFileInput struct {
	Content string // File content (YAML)
	DryRun  bool   // If true, parse and validate without creating tasks
}

// CreateTasksFromFileOutput contains the result of creating tasks from a file.
type CreateTasksFromFileOutput struct {
	Tasks []*domain.Task // Created tasks (or tasks that would be created in dry-run mode)
}

// CreateTasksFromFile is the use case for creating tasks from a file.
// Every draft is validated before anything is created, so an invalid
// entry leaves the store untouched.
type CreateTasksFromFile struct {
	tasks domain.TaskRepository
	prefs domain.PreferenceRepository
	clock domain.Clock
}

// NewCreateTasksFromFile creates a new CreateTasksFromFile use case.
func NewCreateTasksFromFile(tasks domain.TaskRepository, prefs domain.PreferenceRepository, clock domain.Clock) *CreateTasksFromFile {
	return &CreateTasksFromFile{
		tasks: tasks,
		prefs: prefs,
		clock: clock,
	}
}

// Execute creates tasks from the given file content.
func (uc *CreateTasksFromFile) Execute(ctx context.Context, in CreateTasksFromFileInput) (*CreateTasksFromFileOutput, error) {
	records, err := parseTaskRecords(in.Content)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	dueTime := uc.prefs.Settings().DefaultDueTime

	var errs []error
	drafts := make([]domain.TaskDraft, 0, len(records))
	for i, r := range records {
		draft, err := buildDraft(NewTaskInput{
			Title:       r.Title,
			Description: r.Description,
			Status:      r.Status,
			Priority:    r.Priority,
			Due:         r.Due,
			Tags:        r.Tags,
		}, now, dueTime)
		if err != nil {
			errs = append(errs, fmt.Errorf("task %d: %w", i+1, err))
			continue
		}
		drafts = append(drafts, draft)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	out := &CreateTasksFromFileOutput{Tasks: make([]*domain.Task, 0, len(drafts))}

	// If dry-run, return the drafts as unsaved tasks
	if in.DryRun {
		for _, d := range drafts {
			preview := &domain.Task{
				Title:       d.Title,
				Description: d.Description,
				Priority:    d.Priority,
				DueDate:     d.DueDate,
				Tags:        d.Tags,
			}
			preview.ApplyStatus(d.Status, now)
			out.Tasks = append(out.Tasks, preview)
		}
		return out, nil
	}

	for i, d := range drafts {
		task, err := uc.tasks.Create(ctx, d)
		if err != nil {
			return out, fmt.Errorf("task %d: create task: %w", i+1, err)
		}
		out.Tasks = append(out.Tasks, task)
	}
	return out, nil
}
