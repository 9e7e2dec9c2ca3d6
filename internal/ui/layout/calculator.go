// Package layout provides pure functions for UI dimension calculations.
package layout

// ChromeHeight is the number of rows below the content: the status line and
// the footer.
const ChromeHeight = 2

// Proportions of the terminal, in percent.
const (
	ChartHeightPercent = 50 // waveform chart height
	ChartWidthPercent  = 90 // waveform chart width
	ProgressBarPercent = 60 // progress bar width
	AudioPanelPercent  = 60 // audio list width on the selection screen
)

// ContentHeight calculates the available height for the main content area.
func ContentHeight(windowHeight int) int {
	return max(windowHeight-ChromeHeight, 0)
}

// ChartHeight calculates the height of the waveform chart.
func ChartHeight(windowHeight int) int {
	return percent(windowHeight, ChartHeightPercent)
}

// ChartWidth calculates the width of the waveform chart.
func ChartWidth(windowWidth int) int {
	return percent(windowWidth, ChartWidthPercent)
}

// ProgressBarWidth calculates the width of the progress bar.
func ProgressBarWidth(windowWidth int) int {
	return percent(windowWidth, ProgressBarPercent)
}

// AudioPanelWidth calculates the width of the audio list panel.
func AudioPanelWidth(windowWidth int) int {
	return percent(windowWidth, AudioPanelPercent)
}

// QueuePanelWidth calculates the width for the queue panel: the remaining
// width after the audio list.
func QueuePanelWidth(windowWidth int) int {
	return max(windowWidth, 0) - AudioPanelWidth(windowWidth)
}

func percent(size, pct int) int {
	if size <= 0 {
		return 0
	}
	return size * pct / 100
}
