package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `[2024-06-15 09:00:00] [INFO] [task-abcdef12] [create] created "Write"
[2024-06-15 09:01:00] [INFO] [global] [store] loaded 2 tasks
[2024-06-15 09:02:00] [INFO] [task-abcdef12] [status] todo -> completed
[2024-06-15 09:03:00] [INFO] [task-99999999] [delete] deleted "Gone"
`

func writeLog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := domain.LogPath(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0o600))
	return dir
}

func TestShowLogs_Execute(t *testing.T) {
	repo, _, _ := newTestDeps()
	repo.Add(seedTask("abcdef1234", domain.StatusTodo))
	dir := writeLog(t)

	tests := []struct {
		name  string
		input usecase.ShowLogsInput
		want  []string
	}{
		{"all lines", usecase.ShowLogsInput{}, []string{"[create]", "[store]", "[status]", "[delete]"}},
		{"tail", usecase.ShowLogsInput{Lines: 1}, []string{"[delete]"}},
		{"task by prefix", usecase.ShowLogsInput{TaskID: "abc"}, []string{"[create]", "[status]"}},
		{"deleted task by full id", usecase.ShowLogsInput{TaskID: "99999999"}, []string{"[delete]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewShowLogs(repo, dir)

			out, err := uc.Execute(context.Background(), tt.input)

			require.NoError(t, err)
			assert.Equal(t, domain.LogPath(dir), out.LogPath)
			lines := strings.Split(out.Content, "\n")
			require.Len(t, lines, len(tt.want))
			for i, w := range tt.want {
				assert.Contains(t, lines[i], w)
			}
		})
	}
}

func TestShowLogs_Execute_NoFile(t *testing.T) {
	repo, _, _ := newTestDeps()
	uc := usecase.NewShowLogs(repo, t.TempDir())

	_, err := uc.Execute(context.Background(), usecase.ShowLogsInput{})

	assert.ErrorIs(t, err, domain.ErrNoLogFile)
}
