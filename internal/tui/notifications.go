package tui

import "github.com/runoshun/ticktick/internal/domain"

// notificationKey identifies a notification across reloads.
func notificationKey(n domain.Notification) string {
	return n.Task.ID + "/" + string(n.Category)
}

// inbox tracks read and dismissed notifications for the running session.
// It never touches the task store; a restart shows every notification again.
type inbox struct {
	read      map[string]bool
	dismissed map[string]bool
	items     []domain.Notification
	cursor    int
}

func newInbox() inbox {
	return inbox{
		read:      make(map[string]bool),
		dismissed: make(map[string]bool),
	}
}

// SetNotifications replaces the current notifications, keeping read and
// dismissed state for those that are still present.
func (b *inbox) SetNotifications(ns []domain.Notification) {
	b.items = ns
	b.clampCursor()
}

// Visible returns the notifications that have not been dismissed.
func (b *inbox) Visible() []domain.Notification {
	visible := make([]domain.Notification, 0, len(b.items))
	for _, n := range b.items {
		if !b.dismissed[notificationKey(n)] {
			visible = append(visible, n)
		}
	}
	return visible
}

// Unread returns the number of visible notifications not yet read.
func (b *inbox) Unread() int {
	count := 0
	for _, n := range b.Visible() {
		if !b.read[notificationKey(n)] {
			count++
		}
	}
	return count
}

// IsRead reports whether n was marked as read.
func (b *inbox) IsRead(n domain.Notification) bool {
	return b.read[notificationKey(n)]
}

// Selected returns the notification under the cursor.
func (b *inbox) Selected() (domain.Notification, bool) {
	visible := b.Visible()
	if len(visible) == 0 {
		return domain.Notification{}, false
	}
	return visible[b.cursor], true
}

// MarkRead marks the selected notification as read.
func (b *inbox) MarkRead() {
	if n, ok := b.Selected(); ok {
		b.read[notificationKey(n)] = true
	}
}

// MarkAllRead marks every visible notification as read.
func (b *inbox) MarkAllRead() {
	for _, n := range b.Visible() {
		b.read[notificationKey(n)] = true
	}
}

// Dismiss hides the selected notification.
func (b *inbox) Dismiss() {
	if n, ok := b.Selected(); ok {
		b.dismissed[notificationKey(n)] = true
		b.clampCursor()
	}
}

// Move moves the cursor by delta within the visible notifications.
func (b *inbox) Move(delta int) {
	b.cursor += delta
	b.clampCursor()
}

func (b *inbox) clampCursor() {
	n := len(b.Visible())
	if b.cursor >= n {
		b.cursor = n - 1
	}
	if b.cursor < 0 {
		b.cursor = 0
	}
}
