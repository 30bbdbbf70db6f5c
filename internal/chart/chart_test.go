package chart

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeries_SameSeedSameValues(t *testing.T) {
	a := NewSeries(rand.NewSource(42), Months)
	b := NewSeries(rand.NewSource(42), Months)
	c := NewSeries(rand.NewSource(7), Months)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Values, c.Values)
	require.Len(t, a.Values, len(Months))
	for _, v := range a.Values {
		assert.GreaterOrEqual(t, v, MaxValue/10)
		assert.LessOrEqual(t, v, MaxValue)
	}
}

func TestNewSeries_CopiesLabels(t *testing.T) {
	labels := []string{"a", "b"}
	s := NewSeries(rand.NewSource(1), labels)
	labels[0] = "changed"

	assert.Equal(t, "a", s.Labels[0])
}

func TestSeries_Shares(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   []int
	}{
		{"even", []int{50, 50}, []int{50, 50}},
		{"rounding goes to largest", []int{1, 1, 1}, []int{34, 33, 33}},
		{"empty total", []int{0, 0}, []int{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Series{Labels: make([]string, len(tt.values)), Values: tt.values}
			assert.Equal(t, tt.want, s.Shares())
		})
	}
}

func TestRenderBars(t *testing.T) {
	s := Series{Labels: []string{"Jan", "February"}, Values: []int{50, 100}}

	out := RenderBars("Tasks", s, 10)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Tasks")
	assert.Equal(t, 5, strings.Count(lines[1], barRune))
	assert.Equal(t, 10, strings.Count(lines[2], barRune))
	assert.True(t, strings.HasSuffix(lines[2], "100"))
}

func TestRenderBars_Deterministic(t *testing.T) {
	a := RenderBars("x", NewSeries(rand.NewSource(3), Months), 20)
	b := RenderBars("x", NewSeries(rand.NewSource(3), Months), 20)

	assert.Equal(t, a, b)
}

func TestRenderSparkline(t *testing.T) {
	s := Series{Labels: []string{"a", "b"}, Values: []int{0, MaxValue}}

	out := RenderSparkline("Trend", s)

	assert.Contains(t, out, "▁")
	assert.Contains(t, out, "█")
}

func TestRenderShares(t *testing.T) {
	s := Series{Labels: []string{"a", "b"}, Values: []int{25, 75}}

	out := RenderShares("Split", s, 20)

	assert.Contains(t, out, "25%")
	assert.Contains(t, out, "75%")
}
