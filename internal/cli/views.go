package cli

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/ticktick/internal/app"
	"github.com/runoshun/ticktick/internal/chart"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/runoshun/ticktick/internal/usecase/shared"
	"github.com/spf13/cobra"
)

// newDashboardCommand creates the dashboard command.
func newDashboardCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the task summary",
		Long: `Show counts per status, the completion rate, overdue and due-today tasks,
pending high priority tasks, recently completed tasks and reminders.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowDashboardUseCase().Execute(cmd.Context(), usecase.ShowDashboardInput{})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Summary)
			}
			printDashboard(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

var sectionStyle = lipgloss.NewStyle().Bold(true)

// printDashboard prints the summary sections.
func printDashboard(w io.Writer, out *usecase.ShowDashboardOutput) {
	s := out.Summary
	_, _ = fmt.Fprintf(w, "Welcome back, %s\n\n", out.Profile.Name)
	_, _ = fmt.Fprintf(w, "Total %d   To do %d   In progress %d   Completed %d   Completion %d%%\n",
		s.Counts.Total, s.Counts.Todo, s.Counts.InProgress, s.Counts.Completed, s.CompletionRate)

	printSection(w, "Overdue", s.Overdue, s.Now)
	printSection(w, "Due today", s.DueToday, s.Now)
	printSection(w, "High priority", s.HighPriorityPending, s.Now)

	_, _ = fmt.Fprintf(w, "\n%s\n", sectionStyle.Render(fmt.Sprintf("Recently completed (%d)", len(s.RecentlyCompleted))))
	for _, t := range s.RecentlyCompleted {
		_, _ = fmt.Fprintf(w, "  %s  %s  %s\n", shared.ShortID(t.ID), t.Title, relativeDue(*t.CompletedAt, s.Now))
	}

	if len(s.Notifications) > 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n", sectionStyle.Render(fmt.Sprintf("Reminders (%d)", len(s.Notifications))))
		for _, n := range s.Notifications {
			_, _ = fmt.Fprintf(w, "  %s\n", n.Message())
		}
	}
}

func printSection(w io.Writer, title string, tasks []*domain.Task, now time.Time) {
	_, _ = fmt.Fprintf(w, "\n%s\n", sectionStyle.Render(fmt.Sprintf("%s (%d)", title, len(tasks))))
	for _, t := range tasks {
		_, _ = fmt.Fprintf(w, "  %s  %-6s  %s  (due %s)\n", shared.ShortID(t.ID), t.Priority, t.Title, relativeDue(t.DueDate, now))
	}
}

// newNotificationsCommand creates the notifications command.
func newNotificationsCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List due date reminders",
		Long: `List one reminder per pending task that is overdue, due today, due tomorrow
or high priority and due within three days.

Turn reminders off with 'tick settings set notifications.dueDateReminders false'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListNotificationsUseCase().Execute(cmd.Context(), usecase.ListNotificationsInput{})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, out.Notifications)
			}
			if out.Disabled {
				_, _ = fmt.Fprintln(w, "Due date reminders are turned off")
				return nil
			}
			if len(out.Notifications) == 0 {
				_, _ = fmt.Fprintln(w, "No notifications")
				return nil
			}
			for _, n := range out.Notifications {
				_, _ = fmt.Fprintf(w, "%s  %s\n", shared.ShortID(n.Task.ID), n.Message())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")

	return cmd
}

// newAnalyticsCommand creates the analytics command.
func newAnalyticsCommand(_ *app.Container) *cobra.Command {
	var opts struct {
		Seed  int64
		Width int
	}

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show sample analytics charts",
		Long: `Render sample analytics charts.

The charts use generated data and are not computed from your tasks.
Pass --seed to get the same charts every time.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed := opts.Seed
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			src := rand.NewSource(seed)

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, chart.RenderBars("Monthly activity", chart.NewSeries(src, chart.Months), opts.Width))
			_, _ = fmt.Fprintln(w, chart.RenderSparkline("Performance trend", chart.NewSeries(src, chart.Months)))
			_, _ = fmt.Fprint(w, chart.RenderShares("Error distribution", chart.NewSeries(src, chart.Categories), opts.Width))
			return nil
		},
	}

	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "Random seed (default: current time)")
	cmd.Flags().IntVar(&opts.Width, "width", 40, "Maximum bar width")

	return cmd
}

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	var textfile string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Export dashboard values as Prometheus metrics",
		Long: `Compute the dashboard summary and write it in the Prometheus text format.

With --textfile the metrics are written to a file suitable for the node_exporter
textfile collector; otherwise the summary counts are printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ExportMetricsUseCase().Execute(cmd.Context(), usecase.ExportMetricsInput{Path: textfile})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if textfile != "" {
				_, _ = fmt.Fprintf(w, "Wrote metrics to %s\n", textfile)
				return nil
			}
			s := out.Summary
			_, _ = fmt.Fprintf(w, "tasks_total %d\ntasks_todo %d\ntasks_in_progress %d\ntasks_completed %d\ncompletion_rate %d\noverdue %d\ndue_today %d\n",
				s.Counts.Total, s.Counts.Todo, s.Counts.InProgress, s.Counts.Completed, s.CompletionRate, len(s.Overdue), len(s.DueToday))
			return nil
		},
	}

	cmd.Flags().StringVar(&textfile, "textfile", "", "Write metrics to this file")

	return cmd
}
