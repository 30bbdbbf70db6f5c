package tui

import (
	"testing"

	"github.com/runoshun/ticktick/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStyles_StatusStyle(t *testing.T) {
	styles := DefaultStyles()

	for _, status := range domain.AllStatuses() {
		t.Run(status.Display(), func(t *testing.T) {
			// StatusStyle should not panic for any valid status
			style := styles.StatusStyle(status)
			// Verify we get a non-empty rendered output
			rendered := style.Render(status.Display())
			if rendered == "" {
				t.Errorf("StatusStyle(%v).Render() returned empty string", status)
			}
		})
	}
}

func TestStyles_StatusStyle_UnknownStatus(t *testing.T) {
	styles := DefaultStyles()
	// Test that unknown status doesn't panic (uses default case)
	style := styles.StatusStyle(domain.Status("unknown"))
	_ = style.Render("unknown")
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		status domain.Status
		want   string
	}{
		{domain.StatusTodo, "○"},
		{domain.StatusInProgress, "●"},
		{domain.StatusCompleted, "✓"},
		{domain.Status("unknown"), "?"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := StatusIcon(tt.status); got != tt.want {
				t.Errorf("StatusIcon(%v) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestPaletteFor(t *testing.T) {
	dark := func() bool { return true }
	light := func() bool { return false }

	assert.Equal(t, LightPalette, PaletteFor(domain.ThemeLight, dark))
	assert.Equal(t, DarkPalette, PaletteFor(domain.ThemeDark, light))
	assert.Equal(t, DarkPalette, PaletteFor(domain.ThemeSystem, dark))
	assert.Equal(t, LightPalette, PaletteFor(domain.ThemeSystem, light))
	assert.Equal(t, DarkPalette, PaletteFor(domain.Theme("neon"), light))
}

func TestNewStyles_UsesPalette(t *testing.T) {
	styles := NewStyles(LightPalette)

	assert.Equal(t, LightPalette, styles.Palette)
	assert.Equal(t, LightPalette.High, styles.PriorityStyle(domain.PriorityHigh).GetForeground())
}
