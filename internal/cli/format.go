package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/runoshun/ticktick/internal/usecase/shared"
)

// dueLayout is the absolute due date format shown next to the relative one.
const dueLayout = "2006-01-02 15:04"

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// relativeDue formats the due date relative to now, e.g. "3 hours from now".
func relativeDue(due, now time.Time) string {
	return humanize.RelTime(due, now, "ago", "from now")
}

// formatTags formats tags as [a,b] or "-".
func formatTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return "[" + strings.Join(tags, ",") + "]"
}

// printTaskList prints tasks as an aligned table.
func printTaskList(w io.Writer, tasks []*domain.Task, now time.Time) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tDUE\tTAGS\tTITLE")

	// Rows
	for _, task := range tasks {
		dueStr := relativeDue(task.DueDate, now)
		if task.IsPastDue(now) {
			dueStr += " !"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shared.ShortID(task.ID),
			task.Status,
			task.Priority,
			dueStr,
			formatTags(task.Tags),
			task.Title,
		)
	}
}

// printTaskBoard prints tasks in one column per status.
func printTaskBoard(w io.Writer, out *usecase.ListTasksOutput, width int) {
	cols := out.Columns()
	statuses := domain.AllStatuses()
	colWidth := max(width/len(statuses)-2, 20)

	header := lipgloss.NewStyle().Bold(true).Underline(true)
	cell := lipgloss.NewStyle().Width(colWidth).PaddingRight(2)

	rendered := make([]string, 0, len(statuses))
	for _, s := range statuses {
		var b strings.Builder
		b.WriteString(header.Render(fmt.Sprintf("%s (%d)", s.Display(), len(cols[s]))))
		b.WriteString("\n")
		for _, t := range cols[s] {
			fmt.Fprintf(&b, "%s %s\n", shared.ShortID(t.ID), t.Title)
		}
		rendered = append(rendered, cell.Render(b.String()))
	}
	_, _ = fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

// printTaskDetails prints a single task.
func printTaskDetails(w io.Writer, out *usecase.ShowTaskOutput, now time.Time) {
	task := out.Task

	// Header
	_, _ = fmt.Fprintf(w, "# %s\n\n", task.Title)

	// Description
	if task.Description != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", task.Description)
	}

	// Fields
	_, _ = fmt.Fprintf(w, "ID: %s\n", task.ID)
	_, _ = fmt.Fprintf(w, "Status: %s\n", task.Status.Display())
	_, _ = fmt.Fprintf(w, "Priority: %s\n", task.Priority.Display())
	_, _ = fmt.Fprintf(w, "Due: %s (%s)\n", task.DueDate.Format(dueLayout), relativeDue(task.DueDate, now))
	_, _ = fmt.Fprintf(w, "Tags: %s\n", formatTags(task.Tags))
	_, _ = fmt.Fprintf(w, "Created: %s\n", task.CreatedAt.Format(time.RFC3339))
	if task.CompletedAt != nil {
		_, _ = fmt.Fprintf(w, "Completed: %s\n", task.CompletedAt.Format(time.RFC3339))
	}

	switch {
	case out.PastDue:
		_, _ = fmt.Fprintln(w, "Past due")
	case out.DueSoon:
		_, _ = fmt.Fprintln(w, "Due soon")
	}
	if out.Category != "" {
		_, _ = fmt.Fprintf(w, "Reminder: %s\n", out.Category.Display())
	}
}

// printTaskLine prints a one-line summary used by mutating commands.
func printTaskLine(w io.Writer, verb string, task *domain.Task) {
	_, _ = fmt.Fprintf(w, "%s task %s: %s\n", verb, shared.ShortID(task.ID), task.Title)
}

// seconds converts a whole number of seconds from a flag into a duration.
func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
