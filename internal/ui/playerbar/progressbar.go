// Package playerbar renders the transport part of the player screen: the
// progress bar, the track info panel and the footer.
package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const fullBlock = "█"

// tips are the left-aligned eighth blocks, one to eight eighths.
var tips = []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

// RenderProgressBar renders a block bar with an eighth-block tip, padded to
// width. Progress is clamped to [0, 1].
func RenderProgressBar(progress float64, width int, style lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	progress = min(max(progress, 0), 1)
	if progress >= 1 {
		return style.Render(strings.Repeat(fullBlock, width))
	}

	amount := progress * float64(width)
	full := min(int(amount), width-1)
	frac := amount - float64(int(amount))
	tip := tips[min(int(frac*8), len(tips)-1)]

	bar := strings.Repeat(fullBlock, full) + tip
	return style.Render(bar) + strings.Repeat(" ", width-full-1)
}
