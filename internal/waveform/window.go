package waveform

import "time"

// Window is the part of the clip shown in one frame.
type Window struct {
	Start   int // first sample index
	Span    int // samples elapsing during one frame at 1x speed
	Buckets int // number of bars
}

// NewWindow derives the window for the given progress and terminal width.
func NewWindow(progress float64, sampleCount, sampleRate, width int, interval time.Duration) Window {
	return Window{
		Start:   StartIndex(progress, sampleCount),
		Span:    Step(sampleRate, interval),
		Buckets: BucketCount(width),
	}
}

// Bars computes the bars under w.
func (w Window) Bars(samples []float32, scale Scale) ([]Bar, bool) {
	return ComputeBars(samples, w.Start, w.Span, w.Buckets, scale)
}

// Step returns how many samples play during one interval at 1x speed.
func Step(sampleRate int, interval time.Duration) int {
	if sampleRate <= 0 || interval <= 0 {
		return 0
	}
	return int(int64(sampleRate) * interval.Milliseconds() / 1000)
}

// BucketCount returns the number of bars for a terminal width: one bar per
// two columns.
func BucketCount(width int) int {
	return max(width/2, 0)
}

// StartIndex maps progress to a sample index.
func StartIndex(progress float64, sampleCount int) int {
	if progress <= 0 || sampleCount <= 0 {
		return 0
	}
	return int(progress * float64(sampleCount))
}
