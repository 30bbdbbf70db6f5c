// Package domain contains core business entities and interfaces.
package domain

import (
	"math"
	"slices"
	"strings"
	"time"
)

// Task represents a unit of work tracked by tick.
// Fields are ordered to minimize memory padding.
type Task struct {
	DueDate     time.Time  `json:"dueDate"`               // When the task is due (date + time)
	CreatedAt   time.Time  `json:"createdAt"`             // Creation time, set once by the store
	CompletedAt *time.Time `json:"completedAt,omitempty"` // Set iff Status == StatusCompleted
	ID          string     `json:"id"`                    // Opaque unique ID, immutable
	Title       string     `json:"title"`                 // Title (required)
	Description string     `json:"description,omitempty"` // Description (optional)
	Status      Status     `json:"status"`                // Current status
	Priority    Priority   `json:"priority"`              // Priority
	Tags        []string   `json:"tags"`                  // Free-form, case-sensitive tags
}

// IsCompleted returns true if the task is in the completed status.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// HasTag reports whether the task carries the exact tag.
func (t *Task) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	if t.Tags != nil {
		c.Tags = slices.Clone(t.Tags)
	}
	return &c
}

// ApplyStatus moves the task to status and keeps CompletedAt consistent.
// Entering completed stamps now unless a completion time already exists;
// leaving completed clears it.
func (t *Task) ApplyStatus(status Status, now time.Time) {
	t.Status = status
	if status == StatusCompleted {
		if t.CompletedAt == nil {
			at := now
			t.CompletedAt = &at
		}
		return
	}
	t.CompletedAt = nil
}

// IsPastDue reports whether the full due timestamp is before now.
// Completed tasks are never past due.
func (t *Task) IsPastDue(now time.Time) bool {
	if t.IsCompleted() {
		return false
	}
	return t.DueDate.Before(now)
}

// IsDueSoon reports whether the task is due within the next day, rounding
// the remaining time up to whole days.
func (t *Task) IsDueSoon(now time.Time) bool {
	if t.IsCompleted() {
		return false
	}
	diffDays := math.Ceil(t.DueDate.Sub(now).Hours() / 24)
	return diffDays >= 0 && diffDays <= 1
}

// Matches performs a case-insensitive search over title, description and tags.
// An empty query matches every task.
func (t *Task) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// NormalizeTags trims tags, drops blanks and duplicates, and keeps first-seen order.
// Returns an empty, non-nil slice when nothing remains.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}

// UpdateTags adds and removes tags from the current set, preserving order.
// A tag present in both add and remove is removed.
func UpdateTags(current, add, remove []string) []string {
	removeSet := make(map[string]bool, len(remove))
	for _, tag := range remove {
		removeSet[tag] = true
	}

	merged := make([]string, 0, len(current)+len(add))
	for _, tag := range current {
		if !removeSet[tag] {
			merged = append(merged, tag)
		}
	}
	for _, tag := range add {
		if !removeSet[tag] {
			merged = append(merged, tag)
		}
	}
	return NormalizeTags(merged)
}

// TaskFilter specifies criteria for listing tasks.
// Fields are ordered to minimize memory padding.
type TaskFilter struct {
	Search string // Case-insensitive search over title, description, tags
	Tag    string // Exact tag match (empty = any)
	Status Status // Status match (empty = any)
}

// Match reports whether the task satisfies every criterion of the filter.
func (f TaskFilter) Match(t *Task) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Tag != "" && !t.HasTag(f.Tag) {
		return false
	}
	return t.Matches(f.Search)
}
