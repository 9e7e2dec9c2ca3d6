// Package chart draws the waveform as a vertical bar chart.
package chart

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vocal/internal/ui/styles"
	"github.com/llehouerou/vocal/internal/waveform"
)

// ErrTooNarrow is returned when not even one bar fits the area.
var ErrTooNarrow = errors.New("chart area too small")

// levels are the vertical eighth blocks, empty to full.
var levels = []rune(" ▁▂▃▄▅▆▇█")

// Options configures Render.
type Options struct {
	Width    int
	Height   int
	BarWidth int    // cells per bar, at least 1
	BarGap   int    // cells between bars
	Max      uint64 // value of a full-height bar
	From, To lipgloss.Color
}

// Capacity returns how many bars fit in width.
func Capacity(width, barWidth, barGap int) int {
	barWidth = max(barWidth, 1)
	barGap = max(barGap, 0)
	if width < barWidth {
		return 0
	}
	return (width + barGap) / (barWidth + barGap)
}

// Render draws bars bottom-aligned in a Width x Height block. Bars beyond
// the area's capacity are dropped. Colors run from From on the left to To on
// the right.
func Render(bars []waveform.Bar, opts Options) (string, error) {
	barWidth := max(opts.BarWidth, 1)
	gap := max(opts.BarGap, 0)
	capacity := Capacity(opts.Width, barWidth, gap)
	if capacity == 0 || opts.Height <= 0 {
		return "", ErrTooNarrow
	}
	if len(bars) > capacity {
		bars = bars[:capacity]
	}

	heights := make([]int, len(bars))
	for i, b := range bars {
		heights[i] = eighths(b.Value, opts.Max, opts.Height)
	}

	barStyles := make([]lipgloss.Style, len(bars))
	for i, c := range styles.Blend(len(bars), opts.From, opts.To) {
		barStyles[i] = lipgloss.NewStyle().Foreground(c)
	}

	used := len(bars)*barWidth + max(len(bars)-1, 0)*gap
	spacer := strings.Repeat(" ", gap)
	trailing := strings.Repeat(" ", opts.Width-used)

	lines := make([]string, opts.Height)
	for row := range opts.Height {
		base := (opts.Height - 1 - row) * 8
		var b strings.Builder
		for i, h := range heights {
			if i > 0 {
				b.WriteString(spacer)
			}
			fill := min(max(h-base, 0), 8)
			cell := strings.Repeat(string(levels[fill]), barWidth)
			if fill == 0 {
				b.WriteString(cell)
				continue
			}
			b.WriteString(barStyles[i].Render(cell))
		}
		b.WriteString(trailing)
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n"), nil
}

// eighths converts a value to a bar height in eighths of a cell.
func eighths(value, ceiling uint64, height int) int {
	if ceiling == 0 || value == 0 {
		return 0
	}
	total := height * 8
	if value >= ceiling {
		return total
	}
	return int(float64(value) / float64(ceiling) * float64(total))
}
