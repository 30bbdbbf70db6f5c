package tui

import (
	"log/slog"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/ticktick/internal/app"
	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// newTestModel creates a Model backed by mock repositories, sized and loaded.
func newTestModel(t *testing.T, tasks ...*domain.Task) (*Model, *testutil.MockTaskRepository, *testutil.MockPreferences) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	clock := &testutil.MockClock{NowTime: testNow}
	repo := testutil.NewMockTaskRepository(clock)
	repo.Add(tasks...)
	prefs := testutil.NewMockPreferences()
	container := app.NewWithDeps(app.Config{}, nil, repo, prefs, clock, logger)

	m := New(container)
	m.hasDark = func() bool { return true }
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	reload(t, m)
	return m, repo, prefs
}

// reload runs the load command and feeds its message back.
func reload(t *testing.T, m *Model) {
	t.Helper()
	msg := m.loadTasks()()
	_, ok := msg.(MsgTasksLoaded)
	require.True(t, ok, "unexpected load result: %#v", msg)
	m.Update(msg)
}

// press sends a key to the model and returns the resulting command.
func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

// run executes cmd and feeds its message back, returning the message.
func run(t *testing.T, m *Model, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	m.Update(msg)
	return msg
}

func newTask(id, title string, status domain.Status, priority domain.Priority, due time.Time) *domain.Task {
	task := &domain.Task{
		ID:        id,
		Title:     title,
		Priority:  priority,
		DueDate:   due,
		CreatedAt: testNow.Add(-24 * time.Hour),
		Tags:      []string{},
	}
	task.ApplyStatus(status, testNow.Add(-time.Hour))
	return task
}

// dashboardTasks returns one overdue, one due today, one high priority and one completed task.
func dashboardTasks() []*domain.Task {
	return []*domain.Task{
		newTask("over0001", "Pay rent", domain.StatusTodo, domain.PriorityMedium, testNow.Add(-48*time.Hour)),
		newTask("today001", "Call mom", domain.StatusInProgress, domain.PriorityLow, testNow.Add(3*time.Hour)),
		newTask("high0001", "Ship release", domain.StatusTodo, domain.PriorityHigh, testNow.Add(60*time.Hour)),
		newTask("done0001", "Buy milk", domain.StatusCompleted, domain.PriorityLow, testNow),
	}
}
