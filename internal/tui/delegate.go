package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase/shared"
)

type taskItem struct {
	task *domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Title
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// taskDelegate renders one task per row. Compact mode drops the
// description line and the spacing between rows.
// Fields are ordered to minimize memory padding.
type taskDelegate struct {
	now     time.Time
	styles  Styles
	compact bool
}

func newTaskDelegate(styles Styles, now time.Time, compact bool) taskDelegate {
	return taskDelegate{styles: styles, now: now, compact: compact}
}

func (d taskDelegate) Height() int {
	if d.compact {
		return 1
	}
	return 2
}

func (d taskDelegate) Spacing() int {
	if d.compact {
		return 0
	}
	return 1
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// dueText returns the relative due date, flagged when past due.
func dueText(task *domain.Task, now time.Time) string {
	s := humanize.RelTime(task.DueDate, now, "ago", "from now")
	if task.IsPastDue(now) {
		s = "! " + s
	}
	return s
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	idStr := fmt.Sprintf("%-8s", shared.ShortID(task.ID))
	statusIcon := StatusIcon(task.Status)
	priorityText := fmt.Sprintf("%-6s", task.Priority)
	due := dueText(task, d.now)

	prefixWidth := 4 + 8 + 2 + 1 + 2 + 6 + 2
	listWidth := m.Width()
	maxTitleLen := listWidth - prefixWidth - runewidth.StringWidth(due) - 4
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}

	title := task.Title
	if runewidth.StringWidth(title) > maxTitleLen {
		title = runewidth.Truncate(title, maxTitleLen-3, "...")
	}

	dueStyle := d.styles.TaskDue
	if task.IsPastDue(d.now) {
		dueStyle = d.styles.TaskPastDue
	}
	titleStyle := d.styles.TaskTitle
	if selected {
		titleStyle = d.styles.TaskTitleSelected
	}

	line := "  " + d.styles.SelectionIndicator.Render(indicatorChar) + " " +
		d.styles.TaskID.Render(idStr) + "  " +
		d.styles.StatusStyle(task.Status).Render(statusIcon) + "  " +
		d.styles.PriorityStyle(task.Priority).Render(priorityText) + "  " +
		titleStyle.Render(title)

	dueWidth := runewidth.StringWidth(due)
	lineWidth := lipgloss.Width(line)
	if gap := listWidth - lineWidth - dueWidth; gap > 1 {
		line += strings.Repeat(" ", gap)
	} else {
		line += "  "
	}
	line += dueStyle.Render(due)
	_, _ = fmt.Fprintln(w, line)

	if d.compact {
		return
	}

	descLine := strings.Repeat(" ", prefixWidth)
	var parts []string
	if task.Description != "" {
		parts = append(parts, escapeNewlines(task.Description))
	}
	if len(task.Tags) > 0 {
		parts = append(parts, "#"+strings.Join(task.Tags, " #"))
	}
	if len(parts) > 0 {
		desc := strings.Join(parts, "  ")
		maxDescLen := listWidth - prefixWidth - 2
		if maxDescLen < 10 {
			maxDescLen = 10
		}
		if runewidth.StringWidth(desc) > maxDescLen {
			desc = runewidth.Truncate(desc, maxDescLen-3, "...")
		}
		descLine += desc
	}
	_, _ = fmt.Fprint(w, d.styles.TaskDesc.Render(descLine))
}
