package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/ticktick/internal/domain"
)

// Palette defines the colors of one theme.
type Palette struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	// Status colors
	Todo       lipgloss.Color
	InProgress lipgloss.Color
	Completed  lipgloss.Color

	// Priority colors
	Low    lipgloss.Color
	Medium lipgloss.Color
	High   lipgloss.Color
}

// DarkPalette is used on dark terminals.
var DarkPalette = Palette{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	Todo:       lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Completed:  lipgloss.Color("#00B894"), // Green

	Low:    lipgloss.Color("#81ECEC"), // Teal
	Medium: lipgloss.Color("#FDCB6E"), // Yellow
	High:   lipgloss.Color("#FF7675"), // Salmon
}

// LightPalette is used on light terminals.
var LightPalette = Palette{
	Primary:   lipgloss.Color("#4834D4"), // Indigo
	Secondary: lipgloss.Color("#686DE0"), // Blue violet
	Muted:     lipgloss.Color("#7F8C8D"), // Gray
	Error:     lipgloss.Color("#C0392B"), // Red
	Success:   lipgloss.Color("#218C74"), // Green
	Warning:   lipgloss.Color("#B7791F"), // Amber

	TitleNormal:   lipgloss.Color("#2D3436"), // Near black
	TitleSelected: lipgloss.Color("#4834D4"), // Indigo
	DescNormal:    lipgloss.Color("#7F8C8D"), // Gray

	Todo:       lipgloss.Color("#0984E3"), // Blue
	InProgress: lipgloss.Color("#B7791F"), // Amber
	Completed:  lipgloss.Color("#218C74"), // Green

	Low:    lipgloss.Color("#00838F"), // Teal
	Medium: lipgloss.Color("#B7791F"), // Amber
	High:   lipgloss.Color("#C0392B"), // Red
}

// PaletteFor resolves the palette for a theme.
// The system theme asks hasDark whether the terminal background is dark.
func PaletteFor(theme domain.Theme, hasDark func() bool) Palette {
	switch theme {
	case domain.ThemeLight:
		return LightPalette
	case domain.ThemeDark:
		return DarkPalette
	case domain.ThemeSystem:
		if hasDark != nil && !hasDark() {
			return LightPalette
		}
		return DarkPalette
	default:
		return DarkPalette
	}
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	Palette Palette

	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	Tab        lipgloss.Style
	TabActive  lipgloss.Style
	Badge      lipgloss.Style

	// Task list
	TaskID             lipgloss.Style
	TaskTitle          lipgloss.Style
	TaskTitleSelected  lipgloss.Style
	TaskDesc           lipgloss.Style
	TaskTag            lipgloss.Style
	TaskDue            lipgloss.Style
	TaskPastDue        lipgloss.Style
	SelectionIndicator lipgloss.Style

	// Section header
	SectionTitle lipgloss.Style
	Card         lipgloss.Style
	StatValue    lipgloss.Style
	StatLabel    lipgloss.Style

	// Status badges
	StatusTodo       lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusCompleted  lipgloss.Style

	// Priority badges
	PriorityLow    lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityHigh   lipgloss.Style

	// Notifications
	NotificationUnread lipgloss.Style
	NotificationRead   lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style

	// Detail view
	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style
}

// DefaultStyles returns the styles of the dark palette.
func DefaultStyles() Styles {
	return NewStyles(DarkPalette)
}

// NewStyles builds the styles for a palette.
func NewStyles(p Palette) Styles {
	return Styles{
		Palette: p,

		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(p.TitleSelected).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		TaskID: lipgloss.NewStyle().
			Foreground(p.Muted),

		TaskTitle: lipgloss.NewStyle().
			Foreground(p.TitleNormal),

		TaskTitleSelected: lipgloss.NewStyle().
			Foreground(p.TitleSelected).
			Bold(true),

		TaskDesc: lipgloss.NewStyle().
			Foreground(p.DescNormal),

		TaskTag: lipgloss.NewStyle().
			Foreground(p.Secondary),

		TaskDue: lipgloss.NewStyle().
			Foreground(p.Muted),

		TaskPastDue: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(p.TitleSelected),

		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Secondary),

		Card: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted),

		StatValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.TitleNormal),

		StatLabel: lipgloss.NewStyle().
			Foreground(p.Muted),

		StatusTodo: lipgloss.NewStyle().
			Foreground(p.Todo),

		StatusInProgress: lipgloss.NewStyle().
			Foreground(p.InProgress),

		StatusCompleted: lipgloss.NewStyle().
			Foreground(p.Completed),

		PriorityLow: lipgloss.NewStyle().
			Foreground(p.Low),

		PriorityMedium: lipgloss.NewStyle().
			Foreground(p.Medium),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(p.High).
			Bold(true),

		NotificationUnread: lipgloss.NewStyle().
			Foreground(p.TitleNormal).
			Bold(true),

		NotificationRead: lipgloss.NewStyle().
			Foreground(p.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(p.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(p.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		DialogPrompt: lipgloss.NewStyle(),

		InputPrompt: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),

		DetailLabel: lipgloss.NewStyle().
			Foreground(p.Muted).
			Width(12),

		DetailValue: lipgloss.NewStyle(),
	}
}

// StatusStyle returns the style for a given status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusTodo:
		return s.StatusTodo
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusCompleted:
		return s.StatusCompleted
	default:
		return s.StatusTodo
	}
}

// PriorityStyle returns the style for a given priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityLow:
		return s.PriorityLow
	case domain.PriorityMedium:
		return s.PriorityMedium
	case domain.PriorityHigh:
		return s.PriorityHigh
	default:
		return s.PriorityMedium
	}
}

// StatusIcon returns an icon for a given status.
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusTodo:
		return "○"
	case domain.StatusInProgress:
		return "●"
	case domain.StatusCompleted:
		return "✓"
	default:
		return "?"
	}
}

// CategoryIcon returns an icon for a notification category.
func CategoryIcon(c domain.NotificationCategory) string {
	switch c {
	case domain.NotifyOverdue:
		return "!"
	case domain.NotifyDueToday:
		return "◷"
	case domain.NotifyDueTomorrow:
		return "→"
	case domain.NotifyHighPriority:
		return "▲"
	default:
		return "·"
	}
}
