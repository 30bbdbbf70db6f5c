package domain

import (
	"math"
	"slices"
	"time"
)

// Derived values are recomputed from the task collection on demand and never stored.
// "Local time" is the location of the reference time passed as now.

// Defaults for the recently completed section.
const (
	DefaultRecentWindowDays = 7
	DefaultRecentLimit      = 5
)

// StatusCounts holds the number of tasks per status.
type StatusCounts struct {
	Todo       int `json:"todo"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Total      int `json:"total"`
}

// CalendarDate truncates t to midnight in its own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// calendarDateIn truncates t to midnight in loc.
func calendarDateIn(t time.Time, loc *time.Location) time.Time {
	return CalendarDate(t.In(loc))
}

// CountsByStatus counts tasks per status.
func CountsByStatus(tasks []*Task) StatusCounts {
	var c StatusCounts
	for _, t := range tasks {
		switch t.Status {
		case StatusTodo:
			c.Todo++
		case StatusInProgress:
			c.InProgress++
		case StatusCompleted:
			c.Completed++
		}
	}
	c.Total = len(tasks)
	return c
}

// CompletionRate returns the rounded percentage of completed tasks.
// It is 0 for an empty collection.
func CompletionRate(tasks []*Task) int {
	if len(tasks) == 0 {
		return 0
	}
	c := CountsByStatus(tasks)
	rate := int(math.Round(float64(c.Completed) * 100 / float64(c.Total)))
	return min(max(rate, 0), 100)
}

// DueToday returns pending tasks whose due calendar date is today.
func DueToday(tasks []*Task, now time.Time) []*Task {
	today := CalendarDate(now)
	return filterTasks(tasks, func(t *Task) bool {
		return !t.IsCompleted() && calendarDateIn(t.DueDate, now.Location()).Equal(today)
	})
}

// Overdue returns pending tasks whose due calendar date is before today.
// The due time of day is ignored.
func Overdue(tasks []*Task, now time.Time) []*Task {
	today := CalendarDate(now)
	return filterTasks(tasks, func(t *Task) bool {
		return !t.IsCompleted() && calendarDateIn(t.DueDate, now.Location()).Before(today)
	})
}

// HighPriorityPending returns high priority tasks that are not completed.
func HighPriorityPending(tasks []*Task) []*Task {
	return filterTasks(tasks, func(t *Task) bool {
		return t.Priority == PriorityHigh && !t.IsCompleted()
	})
}

// RecentlyCompleted returns tasks completed strictly after now minus windowDays,
// newest first, truncated to DefaultRecentLimit entries.
func RecentlyCompleted(tasks []*Task, now time.Time, windowDays int) []*Task {
	return recentlyCompleted(tasks, now, windowDays, DefaultRecentLimit)
}

func recentlyCompleted(tasks []*Task, now time.Time, windowDays, limit int) []*Task {
	cutoff := now.AddDate(0, 0, -windowDays)
	recent := filterTasks(tasks, func(t *Task) bool {
		return t.IsCompleted() && t.CompletedAt != nil && t.CompletedAt.After(cutoff)
	})
	slices.SortStableFunc(recent, func(a, b *Task) int {
		return b.CompletedAt.Compare(*a.CompletedAt)
	})
	if limit >= 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// SummaryOptions tunes Summarize. Zero values select the defaults.
type SummaryOptions struct {
	RecentWindowDays int
	RecentLimit      int
	// SuppressNotifications leaves the notification list empty
	// (due date reminders turned off).
	SuppressNotifications bool
}

// Summary bundles every derived value the dashboard shows.
// Fields are ordered to minimize memory padding.
type Summary struct {
	Now                 time.Time      `json:"now"`
	DueToday            []*Task        `json:"dueToday"`
	Overdue             []*Task        `json:"overdue"`
	HighPriorityPending []*Task        `json:"highPriorityPending"`
	RecentlyCompleted   []*Task        `json:"recentlyCompleted"`
	Notifications       []Notification `json:"notifications"`
	Counts              StatusCounts   `json:"counts"`
	CompletionRate      int            `json:"completionRate"`
}

// Summarize computes the dashboard summary for tasks at now.
func Summarize(tasks []*Task, now time.Time, opts SummaryOptions) Summary {
	window := opts.RecentWindowDays
	if window <= 0 {
		window = DefaultRecentWindowDays
	}
	limit := opts.RecentLimit
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	s := Summary{
		Now:                 now,
		Counts:              CountsByStatus(tasks),
		CompletionRate:      CompletionRate(tasks),
		DueToday:            DueToday(tasks, now),
		Overdue:             Overdue(tasks, now),
		HighPriorityPending: HighPriorityPending(tasks),
		RecentlyCompleted:   recentlyCompleted(tasks, now, window, limit),
		Notifications:       []Notification{},
	}
	if !opts.SuppressNotifications {
		s.Notifications = Notifications(tasks, now)
	}
	return s
}

// filterTasks returns the tasks matching keep, never nil.
func filterTasks(tasks []*Task, keep func(*Task) bool) []*Task {
	result := make([]*Task, 0)
	for _, t := range tasks {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}
