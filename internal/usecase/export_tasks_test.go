package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/testutil"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportTasks_Execute_JSON(t *testing.T) {
	// Setup
	repo, _, _ := newTestDeps()
	repo.Add(seedTask("t1", domain.StatusCompleted), seedTask("t2", domain.StatusTodo))
	uc := usecase.NewExportTasks(repo)

	// Execute
	out, err := uc.Execute(context.Background(), usecase.ExportTasksInput{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, out.Count)
	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out.Content), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "t1", records[0]["id"])
	assert.Equal(t, "completed", records[0]["status"])
	assert.Equal(t, "2024-06-17T12:00:00Z", records[0]["due"])
	assert.Contains(t, records[0], "completedAt")
	assert.NotContains(t, records[1], "completedAt")
}

func TestExportTasks_Execute_YAMLReimports(t *testing.T) {
	// Setup
	repo, prefs, clock := newTestDeps()
	src := seedTask("t1", domain.StatusInProgress)
	src.Priority = domain.PriorityHigh
	src.Tags = []string{"x", "y"}
	repo.Add(src)

	// Execute
	out, err := usecase.NewExportTasks(repo).Execute(context.Background(), usecase.ExportTasksInput{Format: "yaml"})
	require.NoError(t, err)

	target := testutil.NewMockTaskRepository(clock)
	imported, err := usecase.NewCreateTasksFromFile(target, prefs, clock).Execute(context.Background(), usecase.CreateTasksFromFileInput{Content: out.Content})

	// Assert
	require.NoError(t, err)
	require.Len(t, imported.Tasks, 1)
	got := imported.Tasks[0]
	assert.Equal(t, src.Title, got.Title)
	assert.Equal(t, src.Status, got.Status)
	assert.Equal(t, src.Priority, got.Priority)
	assert.True(t, src.DueDate.Equal(got.DueDate))
	assert.Equal(t, src.Tags, got.Tags)
}

func TestExportTasks_Execute_UnsupportedFormat(t *testing.T) {
	repo, _, _ := newTestDeps()

	_, err := usecase.NewExportTasks(repo).Execute(context.Background(), usecase.ExportTasksInput{Format: "csv"})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}
