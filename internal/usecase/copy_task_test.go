package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyTask_Execute(t *testing.T) {
	// Setup
	repo, _, _ := newTestDeps()
	source := seedTask("abc123", domain.StatusCompleted)
	source.Description = "Quarterly numbers"
	source.Priority = domain.PriorityHigh
	repo.Add(source)
	uc := usecase.NewCopyTask(repo)

	// Execute
	out, err := uc.Execute(context.Background(), usecase.CopyTaskInput{SourceID: "abc"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "task-1", out.Task.ID)
	assert.Equal(t, "Task abc123 (copy)", out.Task.Title)
	assert.Equal(t, "Quarterly numbers", out.Task.Description)
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
	assert.Equal(t, source.DueDate, out.Task.DueDate)
	assert.Equal(t, []string{"home"}, out.Task.Tags)
	assert.Equal(t, domain.StatusTodo, out.Task.Status)
	assert.Nil(t, out.Task.CompletedAt)
	assert.Equal(t, testNow, out.Task.CreatedAt)
	assert.Len(t, repo.Tasks, 2)
}

func TestCopyTask_Execute_CustomTitle(t *testing.T) {
	repo, _, _ := newTestDeps()
	repo.Add(seedTask("abc123", domain.StatusTodo))
	uc := usecase.NewCopyTask(repo)

	out, err := uc.Execute(context.Background(), usecase.CopyTaskInput{SourceID: "abc123", Title: strPtr(" Next week ")})

	require.NoError(t, err)
	assert.Equal(t, "Next week", out.Task.Title)
}

func TestCopyTask_Execute_Errors(t *testing.T) {
	repo, _, _ := newTestDeps()
	repo.Add(seedTask("abc123", domain.StatusTodo))
	uc := usecase.NewCopyTask(repo)

	_, err := uc.Execute(context.Background(), usecase.CopyTaskInput{SourceID: "zzz"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = uc.Execute(context.Background(), usecase.CopyTaskInput{SourceID: "abc123", Title: strPtr("  ")})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Len(t, repo.Tasks, 1)
}
