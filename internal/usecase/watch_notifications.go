package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"text/template"
	"time"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase/shared"
)

// DefaultWatchInterval is how often the store is re-read while watching.
const DefaultWatchInterval = time.Minute

// WatchNotificationsInput contains the parameters for watching notifications.
// Fields are ordered to minimize memory padding.
type WatchNotificationsInput struct {
	CommandTemplate string        // Command template to execute per new notification (optional)
	Interval        time.Duration // Polling interval (default: DefaultWatchInterval)
	Timeout         time.Duration // Stop after this long (0 = no timeout)
}

// WatchNotificationsOutput contains the result of watching notifications.
type WatchNotificationsOutput struct {
	Emitted int // Number of notifications printed
}

// NotificationCommandData holds data for command template expansion.
type NotificationCommandData struct {
	TaskID   string
	Title    string
	Category string
	Due      string
}

// WatchNotifications is the use case for printing notifications as they appear.
// Each task/category pair is printed once per run.
type WatchNotifications struct {
	tasks  domain.TaskRepository
	prefs  domain.PreferenceRepository
	clock  domain.Clock
	stdout io.Writer
	stderr io.Writer
}

// NewWatchNotifications creates a new WatchNotifications use case.
func NewWatchNotifications(tasks domain.TaskRepository, prefs domain.PreferenceRepository, clock domain.Clock, stdout, stderr io.Writer) *WatchNotifications {
	return &WatchNotifications{
		tasks:  tasks,
		prefs:  prefs,
		clock:  clock,
		stdout: stdout,
		stderr: stderr,
	}
}

// Execute checks immediately and then on every interval until ctx is
// canceled or the timeout is reached. Cancellation is a normal exit.
func (uc *WatchNotifications) Execute(ctx context.Context, in WatchNotificationsInput) (*WatchNotificationsOutput, error) {
	if in.Interval <= 0 {
		in.Interval = DefaultWatchInterval
	}

	var tmpl *template.Template
	if in.CommandTemplate != "" {
		var err error
		tmpl, err = template.New("command").Parse(in.CommandTemplate)
		if err != nil {
			return nil, fmt.Errorf("parse template: %w", err)
		}
	}

	out := &WatchNotificationsOutput{}
	seen := make(map[string]bool)

	if err := uc.check(ctx, tmpl, seen, out); err != nil {
		return out, err
	}

	ticker := time.NewTicker(in.Interval)
	defer ticker.Stop()

	// Setup timeout if specified
	var timeoutChan <-chan time.Time
	if in.Timeout > 0 {
		timer := time.NewTimer(in.Timeout)
		defer timer.Stop()
		timeoutChan = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return out, nil
			}
			return out, ctx.Err()
		case <-timeoutChan:
			return out, nil
		case <-ticker.C:
			if err := uc.check(ctx, tmpl, seen, out); err != nil {
				return out, err
			}
		}
	}
}

// check re-reads the store and emits notifications not printed yet.
func (uc *WatchNotifications) check(ctx context.Context, tmpl *template.Template, seen map[string]bool, out *WatchNotificationsOutput) error {
	if err := uc.tasks.Load(ctx); err != nil {
		return fmt.Errorf("reload tasks: %w", err)
	}
	if err := uc.prefs.Load(ctx); err != nil {
		return fmt.Errorf("reload preferences: %w", err)
	}
	if !uc.prefs.Settings().Notifications.DueDateReminders {
		return nil
	}

	tasks, err := uc.tasks.List(domain.TaskFilter{})
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	now := uc.clock.Now()
	for _, n := range domain.Notifications(tasks, now) {
		key := n.Task.ID + "/" + string(n.Category)
		if seen[key] {
			continue
		}
		seen[key] = true
		out.Emitted++

		_, _ = fmt.Fprintf(uc.stdout, "[%s] %s  %s\n", now.Format("15:04"), shared.ShortID(n.Task.ID), n.Message())
		if tmpl == nil {
			continue
		}
		data := NotificationCommandData{
			TaskID:   n.Task.ID,
			Title:    n.Task.Title,
			Category: string(n.Category),
			Due:      n.Task.DueDate.Format(time.RFC3339),
		}
		if err := uc.executeCommand(tmpl, data); err != nil {
			return fmt.Errorf("execute command: %w", err)
		}
	}
	return nil
}

// executeCommand executes the command template with the given data.
func (uc *WatchNotifications) executeCommand(tmpl *template.Template, data NotificationCommandData) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	// #nosec G204 - command template comes from the --command flag
	cmd := exec.Command("sh", "-c", buf.String())
	cmd.Stdout = uc.stdout
	cmd.Stderr = uc.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run command: %w", err)
	}
	return nil
}
