// Package chart renders the synthetic analytics charts.
// Values come from a caller-supplied random source and are never derived from tasks.
package chart

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Months are the default labels of a yearly series.
var Months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Categories are the default labels of a distribution series.
var Categories = []string{"Frontend", "Backend", "Database", "Network", "Other"}

// MaxValue is the upper bound of generated values.
const MaxValue = 100

// Series is a labelled list of values.
type Series struct {
	Labels []string
	Values []int
}

// NewSeries generates one value per label in [MaxValue/10, MaxValue].
// The same source state always yields the same series.
func NewSeries(src rand.Source, labels []string) Series {
	r := rand.New(src)
	low := MaxValue / 10
	values := make([]int, len(labels))
	for i := range labels {
		values[i] = low + r.Intn(MaxValue-low+1)
	}
	return Series{
		Labels: append([]string(nil), labels...),
		Values: values,
	}
}

// Max returns the largest value, or 0 for an empty series.
func (s Series) Max() int {
	m := 0
	for _, v := range s.Values {
		m = max(m, v)
	}
	return m
}

// Shares returns each value as a rounded percentage of the total.
// Rounding error is folded into the largest entry so the shares sum to 100.
func (s Series) Shares() []int {
	total := 0
	for _, v := range s.Values {
		total += v
	}
	shares := make([]int, len(s.Values))
	if total == 0 {
		return shares
	}
	sum, largest := 0, 0
	for i, v := range s.Values {
		shares[i] = v * 100 / total
		sum += shares[i]
		if v > s.Values[largest] {
			largest = i
		}
	}
	shares[largest] += 100 - sum
	return shares
}

// Styles used by the renderers.
var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6"))
	altStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
)

const (
	barRune    = "█"
	sparkRunes = "▁▂▃▄▅▆▇█"
)

// RenderBars renders a horizontal bar chart no wider than width bar cells.
func RenderBars(title string, s Series, width int) string {
	if width < 1 {
		width = 1
	}
	labelWidth := 0
	for _, l := range s.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}
	peak := s.Max()

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for i, v := range s.Values {
		n := 0
		if peak > 0 {
			n = v * width / peak
		}
		label := fmt.Sprintf("%-*s", labelWidth, s.Labels[i])
		fmt.Fprintf(&b, "%s %s %d\n", labelStyle.Render(label), barStyle.Render(strings.Repeat(barRune, n)), v)
	}
	return b.String()
}

// RenderSparkline renders the series as a single line of block characters.
func RenderSparkline(title string, s Series) string {
	runes := []rune(sparkRunes)
	var line strings.Builder
	for _, v := range s.Values {
		idx := 0
		if MaxValue > 0 {
			idx = v * (len(runes) - 1) / MaxValue
		}
		line.WriteRune(runes[idx])
	}
	return titleStyle.Render(title) + "\n" + altStyle.Render(line.String()) + "\n"
}

// RenderShares renders the series as a percentage breakdown.
func RenderShares(title string, s Series, width int) string {
	shares := s.Shares()
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	labelWidth := 0
	for _, l := range s.Labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}
	for i, share := range shares {
		n := share * width / 100
		label := fmt.Sprintf("%-*s", labelWidth, s.Labels[i])
		fmt.Fprintf(&b, "%s %s %d%%\n", labelStyle.Render(label), altStyle.Render(strings.Repeat(barRune, n)), share)
	}
	return b.String()
}
