package cli

import (
	"github.com/runoshun/ticktick/internal/app"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/spf13/cobra"
)

// newWatchCommand creates the watch command for printing notifications as they appear.
func newWatchCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Command  string
		Interval int
		Timeout  int
	}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print due date reminders as they appear",
		Long: `Re-read the store at regular intervals and print each new reminder once.

A reminder is printed the first time a task enters a category (overdue, due
today, due tomorrow, high priority). Nothing is printed while due date
reminders are turned off in the settings. Stop with Ctrl-C.

Command Template:
  The command template runs once per new reminder and can use:
    {{.TaskID}}   - Task ID
    {{.Title}}    - Task title
    {{.Category}} - overdue, due-today, due-tomorrow or high-priority
    {{.Due}}      - Due date (RFC 3339)

Examples:
  # Check every minute (default)
  tick watch

  # Desktop notification for each reminder
  tick watch --command 'notify-send "{{.Category}}" "{{.Title}}"'

  # Check every 10 seconds for five minutes
  tick watch --interval 10 --timeout 300`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.WatchNotificationsUseCase(cmd.OutOrStdout(), cmd.ErrOrStderr())
			_, err := uc.Execute(cmd.Context(), usecase.WatchNotificationsInput{
				CommandTemplate: opts.Command,
				Interval:        seconds(opts.Interval),
				Timeout:         seconds(opts.Timeout),
			})
			return err
		},
	}

	cmd.Flags().StringVar(&opts.Command, "command", "", "Command template to run for each new reminder")
	cmd.Flags().IntVar(&opts.Interval, "interval", 60, "Polling interval in seconds")
	cmd.Flags().IntVar(&opts.Timeout, "timeout", 0, "Stop after this many seconds (0 = no timeout)")

	return cmd
}
