package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTaskDraft_Defaults(t *testing.T) {
	d := NewTaskDraft("Buy milk", refNow, "09:30")

	assert.Equal(t, StatusTodo, d.Status)
	assert.Equal(t, PriorityMedium, d.Priority)
	assert.Equal(t, time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC), d.DueDate)
	assert.NotNil(t, d.Tags)
	assert.NoError(t, d.Validate())
}

func TestNewTaskDraft_InvalidDueTimeFallsBack(t *testing.T) {
	d := NewTaskDraft("Buy milk", refNow, "late")

	assert.Equal(t, time.Date(2024, 6, 15, 17, 0, 0, 0, time.UTC), d.DueDate)
}

func TestTaskDraft_Validate(t *testing.T) {
	valid := NewTaskDraft("Title", refNow, DefaultDueTime)

	tests := []struct {
		wantErr error
		mutate  func(*TaskDraft)
		name    string
	}{
		{name: "valid", mutate: func(*TaskDraft) {}},
		{name: "blank title", mutate: func(d *TaskDraft) { d.Title = "  " }, wantErr: ErrEmptyTitle},
		{name: "bad status", mutate: func(d *TaskDraft) { d.Status = "closed" }, wantErr: ErrInvalidStatus},
		{name: "bad priority", mutate: func(d *TaskDraft) { d.Priority = "urgent" }, wantErr: ErrInvalidPriority},
		{name: "no due date", mutate: func(d *TaskDraft) { d.DueDate = time.Time{} }, wantErr: ErrMissingDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)

			err := d.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
