package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSummary() domain.Summary {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	overdue := &domain.Task{ID: "a", Title: "late", Status: domain.StatusTodo, Priority: domain.PriorityHigh, DueDate: now.AddDate(0, 0, -1)}
	today := &domain.Task{ID: "b", Title: "today", Status: domain.StatusInProgress, Priority: domain.PriorityLow, DueDate: now}
	completedAt := now.Add(-time.Hour)
	done := &domain.Task{ID: "c", Title: "done", Status: domain.StatusCompleted, Priority: domain.PriorityLow, DueDate: now, CompletedAt: &completedAt}
	return domain.Summarize([]*domain.Task{overdue, today, done}, now, domain.SummaryOptions{})
}

func TestExporter_Observe(t *testing.T) {
	e := NewExporter()

	e.Observe(testSummary())

	assert.Equal(t, 1.0, testutil.ToFloat64(e.tasks.WithLabelValues("todo")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.tasks.WithLabelValues("in-progress")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.tasks.WithLabelValues("completed")))
	assert.Equal(t, 33.0, testutil.ToFloat64(e.completionRate))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.overdue))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.dueToday))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.highPriority))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.notifications.WithLabelValues("overdue")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.notifications.WithLabelValues("due-today")))
	assert.Equal(t, 0.0, testutil.ToFloat64(e.notifications.WithLabelValues("due-tomorrow")))

	count, err := testutil.GatherAndCount(e.Registry())
	require.NoError(t, err)
	// 3 statuses + 4 categories + 5 single gauges
	assert.Equal(t, 12, count)
}

func TestExporter_WriteTextfile(t *testing.T) {
	e := NewExporter()
	e.Observe(testSummary())
	path := filepath.Join(t.TempDir(), "textfile", "tick.prom")

	require.NoError(t, e.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `tick_tasks{status="todo"} 1`)
	assert.Contains(t, string(content), "tick_completion_rate_percent 33")
	assert.Contains(t, string(content), "# HELP tick_tasks_overdue")
}
