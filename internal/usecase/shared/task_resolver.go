// Package shared holds helpers used by several use cases.
package shared

import (
	"fmt"
	"strings"

	"github.com/runoshun/ticktick/internal/domain"
)

// ResolveTask finds a task by full ID or by a unique ID prefix.
// It returns domain.ErrTaskNotFound when nothing matches and
// domain.ErrAmbiguousTaskID when a prefix matches more than one task.
func ResolveTask(repo domain.TaskRepository, ref string) (*domain.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.ErrEmptyTaskID
	}

	task, err := repo.Get(ref)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task != nil {
		return task, nil
	}

	all, err := repo.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	var match *domain.Task
	for _, t := range all {
		if !strings.HasPrefix(t.ID, ref) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrAmbiguousTaskID, ref)
		}
		match = t
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, ref)
	}
	return match, nil
}

// ShortID returns the display form of a task ID.
func ShortID(id string) string {
	const n = 8
	if len(id) > n {
		return id[:n]
	}
	return id
}
