package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_ApplyStatus(t *testing.T) {
	t.Run("completing stamps completedAt", func(t *testing.T) {
		task := newTestTask("1", StatusTodo, PriorityLow, refNow)

		task.ApplyStatus(StatusCompleted, refNow)

		require.NotNil(t, task.CompletedAt)
		assert.Equal(t, refNow, *task.CompletedAt)
	})

	t.Run("re-completing keeps the original stamp", func(t *testing.T) {
		task := newTestTask("1", StatusTodo, PriorityLow, refNow)
		task.ApplyStatus(StatusCompleted, refNow)

		task.ApplyStatus(StatusCompleted, refNow.Add(time.Hour))

		require.NotNil(t, task.CompletedAt)
		assert.Equal(t, refNow, *task.CompletedAt)
	})

	t.Run("reopening clears completedAt", func(t *testing.T) {
		task := newTestTask("1", StatusCompleted, PriorityLow, refNow)

		task.ApplyStatus(StatusTodo, refNow)

		assert.Nil(t, task.CompletedAt)
		assert.Equal(t, StatusTodo, task.Status)
	})
}

func TestTask_Clone(t *testing.T) {
	task := newTestTask("1", StatusCompleted, PriorityLow, refNow)
	task.Tags = []string{"a", "b"}

	c := task.Clone()
	c.Tags[0] = "changed"
	*c.CompletedAt = refNow.AddDate(1, 0, 0)

	assert.Equal(t, "a", task.Tags[0])
	assert.NotEqual(t, *task.CompletedAt, *c.CompletedAt)
}

func TestTask_IsPastDue(t *testing.T) {
	earlierToday := newTestTask("1", StatusTodo, PriorityLow, refNow.Add(-time.Hour))
	later := newTestTask("2", StatusTodo, PriorityLow, refNow.Add(time.Hour))
	done := newTestTask("3", StatusCompleted, PriorityLow, refNow.Add(-time.Hour))

	// Timestamp comparison: past due even though the task is not calendar-overdue.
	assert.True(t, earlierToday.IsPastDue(refNow))
	assert.False(t, later.IsPastDue(refNow))
	assert.False(t, done.IsPastDue(refNow))
}

func TestTask_IsDueSoon(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		want bool
	}{
		{"in one hour", refNow.Add(time.Hour), true},
		{"in 24 hours", refNow.Add(24 * time.Hour), true},
		{"in 25 hours", refNow.Add(25 * time.Hour), false},
		{"one hour ago", refNow.Add(-time.Hour), true},
		{"two days ago", refNow.Add(-48 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := newTestTask("1", StatusTodo, PriorityLow, tt.due)
			assert.Equal(t, tt.want, task.IsDueSoon(refNow))
		})
	}
}

func TestTask_Matches(t *testing.T) {
	task := &Task{Title: "Write Report", Description: "quarterly numbers", Tags: []string{"Work"}}

	assert.True(t, task.Matches(""))
	assert.True(t, task.Matches("report"))
	assert.True(t, task.Matches("QUARTERLY"))
	assert.True(t, task.Matches("work"))
	assert.False(t, task.Matches("home"))
}

func TestTaskFilter_Match(t *testing.T) {
	task := &Task{Title: "Write Report", Status: StatusInProgress, Tags: []string{"work"}}

	assert.True(t, TaskFilter{}.Match(task))
	assert.True(t, TaskFilter{Status: StatusInProgress, Tag: "work", Search: "write"}.Match(task))
	assert.False(t, TaskFilter{Status: StatusTodo}.Match(task))
	assert.False(t, TaskFilter{Tag: "Work"}.Match(task))
	assert.False(t, TaskFilter{Search: "groceries"}.Match(task))
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"a", "B", "b"}, NormalizeTags([]string{" a", "B", "", "a", "b", "B "}))
	assert.Equal(t, []string{}, NormalizeTags(nil))
}

func TestUpdateTags(t *testing.T) {
	got := UpdateTags([]string{"a", "b", "c"}, []string{"d", "a"}, []string{"b", "d"})

	assert.Equal(t, []string{"a", "c"}, got)
}

func TestTask_JSONRoundTrip(t *testing.T) {
	completedAt := refNow.Add(-time.Hour)
	tasks := []*Task{
		{
			ID:          "a",
			Title:       "Done",
			Description: "with description",
			Status:      StatusCompleted,
			Priority:    PriorityHigh,
			DueDate:     refNow,
			CompletedAt: &completedAt,
			Tags:        []string{"x", "y"},
			CreatedAt:   refNow.AddDate(0, 0, -1),
		},
		{
			ID:        "b",
			Title:     "Pending",
			Status:    StatusTodo,
			Priority:  PriorityLow,
			DueDate:   refNow.AddDate(0, 0, 3),
			Tags:      []string{},
			CreatedAt: refNow,
		},
	}

	data, err := json.Marshal(tasks)
	require.NoError(t, err)

	var got []*Task
	require.NoError(t, json.Unmarshal(data, &got))

	require.Len(t, got, 2)
	for i := range tasks {
		assert.Equal(t, tasks[i].ID, got[i].ID)
		assert.True(t, tasks[i].DueDate.Equal(got[i].DueDate))
		assert.True(t, tasks[i].CreatedAt.Equal(got[i].CreatedAt))
		assert.Equal(t, tasks[i].Tags, got[i].Tags)
		assert.Equal(t, tasks[i].Description, got[i].Description)
	}
	require.NotNil(t, got[0].CompletedAt)
	assert.True(t, completedAt.Equal(*got[0].CompletedAt))
	assert.Nil(t, got[1].CompletedAt)
	assert.NotContains(t, string(data), `"completedAt":null`)
}
