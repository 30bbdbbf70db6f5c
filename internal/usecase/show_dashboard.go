package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/ticktick/internal/domain"
)

// ShowDashboardInput contains the parameters for the dashboard.
type ShowDashboardInput struct{}

// ShowDashboardOutput contains the dashboard values.
type ShowDashboardOutput struct {
	Profile domain.UserProfile // Greeting and avatar
	Summary domain.Summary     // Derived values at the time of the call
}

// ShowDashboard is the use case for computing the dashboard.
type ShowDashboard struct {
	tasks domain.TaskRepository
	prefs domain.PreferenceRepository
	clock domain.Clock
	opts  domain.SummaryOptions
}

// NewShowDashboard creates a new ShowDashboard use case.
func NewShowDashboard(tasks domain.TaskRepository, prefs domain.PreferenceRepository, clock domain.Clock, opts domain.SummaryOptions) *ShowDashboard {
	return &ShowDashboard{
		tasks: tasks,
		prefs: prefs,
		clock: clock,
		opts:  opts,
	}
}

// Execute computes the summary of the current task collection.
func (uc *ShowDashboard) Execute(_ context.Context, _ ShowDashboardInput) (*ShowDashboardOutput, error) {
	tasks, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	opts := uc.opts
	opts.SuppressNotifications = !uc.prefs.Settings().Notifications.DueDateReminders

	return &ShowDashboardOutput{
		Profile: uc.prefs.Profile(),
		Summary: domain.Summarize(tasks, uc.clock.Now(), opts),
	}, nil
}
