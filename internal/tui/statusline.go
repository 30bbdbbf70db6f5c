package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/ticktick/internal/domain"
)

// StatusLineInfo contains information for rendering the status line.
// Fields are ordered to minimize memory padding.
type StatusLineInfo struct {
	Pagination string // Optional pagination info (e.g., "1/3")
	KeyHints   []KeyHint
	Page       Page
}

// KeyHint represents a key and its description.
type KeyHint struct {
	Key  string
	Desc string
}

// StatusLine renders a unified status line at the bottom of the screen.
// Fields are ordered to minimize memory padding.
type StatusLine struct {
	styles *Styles
	width  int
}

// NewStatusLine creates a new StatusLine with the given width and styles.
func NewStatusLine(width int, styles *Styles) *StatusLine {
	return &StatusLine{
		width:  width,
		styles: styles,
	}
}

// SetWidth updates the status line width.
func (s *StatusLine) SetWidth(width int) {
	s.width = width
}

// Render renders the status line with the given info.
func (s *StatusLine) Render(info StatusLineInfo) string {
	keyStyle := s.styles.FooterKey
	mutedStyle := lipgloss.NewStyle().Foreground(s.styles.Palette.Muted)

	// Build key hints
	hints := make([]string, 0, len(info.KeyHints))
	for _, h := range info.KeyHints {
		hints = append(hints, keyStyle.Render(h.Key)+" "+h.Desc)
	}
	content := strings.Join(hints, "  ")

	// Page indicator
	pageIndicator := mutedStyle.Render(info.Page.String())

	rightContent := pageIndicator
	if info.Pagination != "" {
		rightContent = info.Pagination + "  " + pageIndicator
	}
	rightLen := lipgloss.Width(rightContent)
	contentLen := lipgloss.Width(content)

	// Truncate content if needed
	maxContentWidth := s.width - rightLen - 2
	if contentLen > maxContentWidth {
		if maxContentWidth <= 3 {
			content = "..."
		} else {
			truncateStyle := lipgloss.NewStyle().MaxWidth(maxContentWidth - 3)
			content = truncateStyle.Render(content) + "..."
		}
		contentLen = lipgloss.Width(content)
	}

	spacing := s.width - contentLen - rightLen
	if spacing < 1 {
		spacing = 1
	}

	fullContent := content + strings.Repeat(" ", spacing) + rightContent
	return s.styles.Footer.Render(fullContent)
}

// GetStatusInfo returns status line info for the TUI model.
func (m *Model) GetStatusInfo() StatusLineInfo {
	info := StatusLineInfo{Page: m.page}
	if m.page == PageTasks && m.view == domain.ViewList && m.taskList.Paginator.TotalPages > 1 {
		info.Pagination = m.taskList.Paginator.View()
	}

	switch m.mode { //nolint:exhaustive // Dialog modes handled by default
	case ModeNormal:
		if m.page == PageDashboard {
			info.KeyHints = []KeyHint{
				{Key: "tab", Desc: "tasks"},
				{Key: "n", Desc: "new"},
				{Key: "N", Desc: "notifications"},
				{Key: "?", Desc: "help"},
				{Key: "q", Desc: "quit"},
			}
			return info
		}
		info.KeyHints = []KeyHint{
			{Key: "j/k", Desc: "nav"},
			{Key: "enter", Desc: "open"},
			{Key: "x", Desc: "done"},
			{Key: "n", Desc: "new"},
			{Key: "v", Desc: "board/list"},
			{Key: "tab", Desc: "dashboard"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	case ModeFilter:
		info.KeyHints = []KeyHint{
			{Key: "enter", Desc: "apply"},
			{Key: "esc", Desc: "cancel"},
		}
	case ModeChangeStatus:
		info.KeyHints = []KeyHint{
			{Key: "enter", Desc: "select"},
			{Key: "esc", Desc: "cancel"},
		}
	default:
		// Dialog modes - no hints in status line
		info.KeyHints = nil
	}

	return info
}
