package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/ticktick/internal/domain"
)

// StatusAll selects every status in ListTasksInput.Status.
const StatusAll = "all"

// ListTasksInput contains the parameters for listing tasks.
// Fields are ordered to minimize memory padding.
type ListTasksInput struct {
	Search   string // Case-insensitive search over title, description and tags
	Tag      string // Exact tag match (empty = any)
	Status   string // Status filter ("" or "all" = any)
	View     string // Layout override ("" = remembered default view)
	Remember bool   // Store View as the default view
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []*domain.Task // Matching tasks in insertion order
	View  domain.View    // Layout to render
}

// Columns groups the tasks by status in board order.
func (o *ListTasksOutput) Columns() map[domain.Status][]*domain.Task {
	cols := make(map[domain.Status][]*domain.Task, len(domain.AllStatuses()))
	for _, s := range domain.AllStatuses() {
		cols[s] = []*domain.Task{}
	}
	for _, t := range o.Tasks {
		cols[t.Status] = append(cols[t.Status], t)
	}
	return cols
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskRepository
	prefs domain.PreferenceRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository, prefs domain.PreferenceRepository) *ListTasks {
	return &ListTasks{
		tasks: tasks,
		prefs: prefs,
	}
}

// Execute lists tasks matching the filter.
func (uc *ListTasks) Execute(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	filter := domain.TaskFilter{
		Search: in.Search,
		Tag:    strings.TrimSpace(in.Tag),
	}
	if in.Status != "" && !strings.EqualFold(in.Status, StatusAll) {
		status, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}

	view := uc.prefs.DefaultView()
	if in.View != "" {
		v := domain.View(strings.ToLower(strings.TrimSpace(in.View)))
		if !v.IsValid() {
			return nil, domain.ErrInvalidView
		}
		view = v
		if in.Remember {
			uc.prefs.SetDefaultView(ctx, v)
		}
	}

	tasks, err := uc.tasks.List(filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return &ListTasksOutput{Tasks: tasks, View: view}, nil
}
