package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTasksFromFile_Execute_Sequence(t *testing.T) {
	// Setup
	repo, prefs, clock := newTestDeps()
	uc := usecase.NewCreateTasksFromFile(repo, prefs, clock)
	content := `
- title: First
  priority: high
  tags: [a, b]
- title: Second
  status: in-progress
  due: 2024-06-20
`

	// Execute
	out, err := uc.Execute(context.Background(), usecase.CreateTasksFromFileInput{Content: content})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "First", out.Tasks[0].Title)
	assert.Equal(t, domain.PriorityHigh, out.Tasks[0].Priority)
	assert.Equal(t, []string{"a", "b"}, out.Tasks[0].Tags)
	assert.Equal(t, domain.StatusInProgress, out.Tasks[1].Status)
	assert.Equal(t, 20, out.Tasks[1].DueDate.Day())
	assert.Equal(t, 17, out.Tasks[1].DueDate.Hour())
	assert.Len(t, repo.Tasks, 2)
}

func TestCreateTasksFromFile_Execute_Mapping(t *testing.T) {
	// Setup
	repo, prefs, clock := newTestDeps()
	uc := usecase.NewCreateTasksFromFile(repo, prefs, clock)

	// Execute
	out, err := uc.Execute(context.Background(), usecase.CreateTasksFromFileInput{
		Content: "tasks:\n  - title: Only\n",
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "Only", out.Tasks[0].Title)
}

func TestCreateTasksFromFile_Execute_InvalidDraftCreatesNothing(t *testing.T) {
	// Setup
	repo, prefs, clock := newTestDeps()
	uc := usecase.NewCreateTasksFromFile(repo, prefs, clock)
	content := `
- title: Good
- title: ""
- title: Bad priority
  priority: urgent
`

	// Execute
	_, err := uc.Execute(context.Background(), usecase.CreateTasksFromFileInput{Content: content})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
	assert.Contains(t, err.Error(), "task 2")
	assert.Contains(t, err.Error(), "task 3")
	assert.Empty(t, repo.Tasks)
}

func TestCreateTasksFromFile_Execute_DryRun(t *testing.T) {
	// Setup
	repo, prefs, clock := newTestDeps()
	uc := usecase.NewCreateTasksFromFile(repo, prefs, clock)

	// Execute
	out, err := uc.Execute(context.Background(), usecase.CreateTasksFromFileInput{
		Content: "- title: Preview\n  status: completed\n",
		DryRun:  true,
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Empty(t, out.Tasks[0].ID)
	assert.NotNil(t, out.Tasks[0].CompletedAt)
	assert.Empty(t, repo.Tasks)
}

func TestCreateTasksFromFile_Execute_EmptyInputs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"blank", "  \n", domain.ErrEmptyFile},
		{"empty list", "[]", domain.ErrNoTasksInFile},
		{"empty mapping", "tasks: []", domain.ErrNoTasksInFile},
		{"scalar", "hello", domain.ErrNoTasksInFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, prefs, clock := newTestDeps()
			uc := usecase.NewCreateTasksFromFile(repo, prefs, clock)

			_, err := uc.Execute(context.Background(), usecase.CreateTasksFromFileInput{Content: tt.content})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateTasksFromFile_Execute_MalformedYAML(t *testing.T) {
	repo, prefs, clock := newTestDeps()
	uc := usecase.NewCreateTasksFromFile(repo, prefs, clock)

	_, err := uc.Execute(context.Background(), usecase.CreateTasksFromFileInput{Content: "- title: [unclosed"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse task file")
}
