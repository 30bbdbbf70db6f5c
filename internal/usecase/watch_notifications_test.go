package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/runoshun/ticktick/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchNotifications_Execute_PrintsOncePerTask(t *testing.T) {
	// Setup
	repo, prefs, clock := newTestDeps()
	overdue := seedTask("over0001", domain.StatusTodo)
	overdue.DueDate = testNow.Add(-2 * time.Hour)
	later := seedTask("later", domain.StatusTodo)
	later.DueDate = testNow.Add(24 * time.Hour)
	repo.Add(overdue, later)
	var stdout bytes.Buffer
	uc := usecase.NewWatchNotifications(repo, prefs, clock, &stdout, &stdout)

	// Execute: several ticks before the timeout
	out, err := uc.Execute(context.Background(), usecase.WatchNotificationsInput{
		Interval: 5 * time.Millisecond,
		Timeout:  40 * time.Millisecond,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, out.Emitted)
	assert.Equal(t, 1, strings.Count(stdout.String(), `Overdue: "Task over0001"`))
	assert.Equal(t, 1, strings.Count(stdout.String(), `Due tomorrow: "Task later"`))
}

func TestWatchNotifications_Execute_Disabled(t *testing.T) {
	repo, prefs, clock := newTestDeps()
	overdue := seedTask("over0001", domain.StatusTodo)
	overdue.DueDate = testNow.Add(-2 * time.Hour)
	repo.Add(overdue)
	prefs.SettingsV.Notifications.DueDateReminders = false
	var stdout bytes.Buffer
	uc := usecase.NewWatchNotifications(repo, prefs, clock, &stdout, &stdout)

	out, err := uc.Execute(context.Background(), usecase.WatchNotificationsInput{
		Interval: 5 * time.Millisecond,
		Timeout:  10 * time.Millisecond,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, out.Emitted)
	assert.Empty(t, stdout.String())
}

func TestWatchNotifications_Execute_Canceled(t *testing.T) {
	repo, prefs, clock := newTestDeps()
	var stdout bytes.Buffer
	uc := usecase.NewWatchNotifications(repo, prefs, clock, &stdout, &stdout)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := uc.Execute(ctx, usecase.WatchNotificationsInput{Interval: time.Hour})

	require.NoError(t, err)
	assert.Equal(t, 0, out.Emitted)
}

func TestWatchNotifications_Execute_ReloadError(t *testing.T) {
	repo, prefs, clock := newTestDeps()
	repo.LoadErr = errors.New("disk gone")
	var stdout bytes.Buffer
	uc := usecase.NewWatchNotifications(repo, prefs, clock, &stdout, &stdout)

	_, err := uc.Execute(context.Background(), usecase.WatchNotificationsInput{Interval: time.Hour})

	assert.ErrorContains(t, err, "disk gone")
}

func TestWatchNotifications_Execute_BadTemplate(t *testing.T) {
	repo, prefs, clock := newTestDeps()
	var stdout bytes.Buffer
	uc := usecase.NewWatchNotifications(repo, prefs, clock, &stdout, &stdout)

	_, err := uc.Execute(context.Background(), usecase.WatchNotificationsInput{CommandTemplate: "{{.TaskID"})

	assert.ErrorContains(t, err, "parse template")
}
