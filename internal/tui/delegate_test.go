package tui

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEscapeNewlines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no newlines",
			input: "simple text",
			want:  "simple text",
		},
		{
			name:  "single LF",
			input: "line1\nline2",
			want:  "line1 line2",
		},
		{
			name:  "multiple LF",
			input: "line1\nline2\nline3",
			want:  "line1 line2 line3",
		},
		{
			name:  "CRLF",
			input: "line1\r\nline2",
			want:  "line1 line2",
		},
		{
			name:  "single CR",
			input: "line1\rline2",
			want:  "line1 line2",
		},
		{
			name:  "mixed newlines",
			input: "line1\nline2\r\nline3\rline4",
			want:  "line1 line2 line3 line4",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only newlines",
			input: "\n\r\n\r",
			want:  "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := escapeNewlines(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newTestList(d taskDelegate, tasks ...*domain.Task) list.Model {
	items := make([]list.Item, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, taskItem{task: task})
	}
	return list.New(items, d, 80, 20)
}

func TestTaskDelegate_Render(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	task := &domain.Task{
		ID:          "abcdef123456",
		Title:       "Write report",
		Description: "Quarterly\nnumbers",
		Status:      domain.StatusTodo,
		Priority:    domain.PriorityHigh,
		DueDate:     now.Add(-2 * time.Hour),
		Tags:        []string{"work"},
	}
	d := newTaskDelegate(DefaultStyles(), now, false)
	l := newTestList(d, task)

	var buf bytes.Buffer
	d.Render(&buf, l, 0, taskItem{task: task})
	out := buf.String()

	assert.Contains(t, out, ">")
	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "abcdef123456")
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "! 2 hours ago")
	assert.Contains(t, out, "Quarterly numbers")
	assert.Contains(t, out, "#work")
}

func TestTaskDelegate_Compact(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	task := &domain.Task{
		ID:          "t1",
		Title:       "Write report",
		Description: "hidden in compact mode",
		Status:      domain.StatusCompleted,
		Priority:    domain.PriorityLow,
		DueDate:     now.Add(-2 * time.Hour),
	}
	d := newTaskDelegate(DefaultStyles(), now, true)
	l := newTestList(d, task)

	var buf bytes.Buffer
	d.Render(&buf, l, 0, taskItem{task: task})

	assert.Equal(t, 1, d.Height())
	assert.Equal(t, 0, d.Spacing())
	assert.NotContains(t, buf.String(), "hidden in compact mode")
	assert.NotContains(t, buf.String(), "!", "completed tasks are never past due")
}
