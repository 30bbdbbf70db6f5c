package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyNotification(t *testing.T) {
	tests := []struct {
		name     string
		due      time.Time
		status   Status
		priority Priority
		want     NotificationCategory
		wantOK   bool
	}{
		{
			name:     "yesterday 09:00 todo is overdue",
			due:      time.Date(2024, 6, 14, 9, 0, 0, 0, time.UTC),
			status:   StatusTodo,
			priority: PriorityLow,
			want:     NotifyOverdue,
			wantOK:   true,
		},
		{
			name:     "overdue wins over high priority",
			due:      time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
			status:   StatusTodo,
			priority: PriorityHigh,
			want:     NotifyOverdue,
			wantOK:   true,
		},
		{
			name:     "today 23:59 in-progress is due today",
			due:      time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC),
			status:   StatusInProgress,
			priority: PriorityMedium,
			want:     NotifyDueToday,
			wantOK:   true,
		},
		{
			name:     "earlier today is still due today",
			due:      time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC),
			status:   StatusTodo,
			priority: PriorityHigh,
			want:     NotifyDueToday,
			wantOK:   true,
		},
		{
			name:     "tomorrow",
			due:      time.Date(2024, 6, 16, 9, 0, 0, 0, time.UTC),
			status:   StatusTodo,
			priority: PriorityHigh,
			want:     NotifyDueTomorrow,
			wantOK:   true,
		},
		{
			name:     "high priority in two days",
			due:      refNow.AddDate(0, 0, 2),
			status:   StatusTodo,
			priority: PriorityHigh,
			want:     NotifyHighPriority,
			wantOK:   true,
		},
		{
			name:     "high priority exactly at the horizon",
			due:      refNow.Add(HighPriorityHorizon),
			status:   StatusTodo,
			priority: PriorityHigh,
			want:     NotifyHighPriority,
			wantOK:   true,
		},
		{
			name:     "high priority just past the horizon",
			due:      refNow.Add(HighPriorityHorizon + time.Minute),
			status:   StatusTodo,
			priority: PriorityHigh,
		},
		{
			name:     "medium priority in two days",
			due:      refNow.AddDate(0, 0, 2),
			status:   StatusTodo,
			priority: PriorityMedium,
		},
		{
			name:     "completed overdue task",
			due:      time.Date(2024, 6, 14, 9, 0, 0, 0, time.UTC),
			status:   StatusCompleted,
			priority: PriorityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := newTestTask("1", tt.status, tt.priority, tt.due)

			got, ok := ClassifyNotification(task, refNow)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotifications_AtMostOnePerTask(t *testing.T) {
	tasks := []*Task{
		newTestTask("overdue", StatusTodo, PriorityHigh, refNow.AddDate(0, 0, -1)),
		newTestTask("today", StatusInProgress, PriorityHigh, refNow),
		newTestTask("quiet", StatusTodo, PriorityLow, refNow.AddDate(0, 0, 10)),
		newTestTask("done", StatusCompleted, PriorityHigh, refNow),
		newTestTask("soon", StatusTodo, PriorityHigh, refNow.AddDate(0, 0, 2)),
	}

	got := Notifications(tasks, refNow)

	seen := map[string]int{}
	for _, n := range got {
		seen[n.Task.ID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "task %s classified more than once", id)
	}
	assert.Len(t, got, 3)
	assert.Equal(t, NotifyOverdue, got[0].Category)
	assert.Equal(t, NotifyDueToday, got[1].Category)
	assert.Equal(t, NotifyHighPriority, got[2].Category)
}

func TestNotifications_Empty(t *testing.T) {
	got := Notifications(nil, refNow)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNotification_Message(t *testing.T) {
	task := newTestTask("1", StatusTodo, PriorityHigh, refNow)
	task.Title = "Ship release"

	assert.Equal(t, `Overdue: "Ship release"`, Notification{Task: task, Category: NotifyOverdue}.Message())
	assert.Equal(t, `Due tomorrow: "Ship release"`, Notification{Task: task, Category: NotifyDueTomorrow}.Message())
}
