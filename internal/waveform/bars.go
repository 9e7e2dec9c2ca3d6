// Package waveform downsamples the slice of audio under the playback
// position into a fixed number of amplitude bars.
package waveform

import "math"

// Bar is one bucket of the chart. Labels are always empty; bars carry height
// only.
type Bar struct {
	Label string
	Value uint64
}

// Scale maps a bucket mean in [0, 1] to the renderer's fixed-point range.
type Scale struct {
	Max        uint64
	Multiplier float64
}

// DefaultScale is the scale used by the player chart.
var DefaultScale = Scale{Max: 10000, Multiplier: 100}

// Ceiling is the value of a full-height bar.
func (s Scale) Ceiling() uint64 {
	return uint64(math.Round(float64(s.Max) * s.Multiplier))
}

func (s Scale) value(mean float64) uint64 {
	v := math.Round(mean * float64(s.Max) * s.Multiplier)
	if v <= 0 {
		return 0
	}
	return uint64(v)
}

// ComputeBars averages samples[start:start+windowLen] into buckets bars.
//
// The window is clipped at the end of samples. Amplitudes are remapped from
// [-1, 1] to [0, 1] before averaging. Each bucket covers windowLen/buckets
// consecutive samples (integer division); the remainder is dropped.
//
// It returns false when there is nothing to draw: start past the end, no
// buckets, or fewer samples than buckets.
func ComputeBars(samples []float32, start, windowLen, buckets int, scale Scale) ([]Bar, bool) {
	if start < 0 || start >= len(samples) || windowLen <= 0 || buckets <= 0 {
		return nil, false
	}
	end := min(start+windowLen, len(samples))
	slice := samples[start:end]

	chunk := len(slice) / buckets
	if chunk == 0 {
		return nil, false
	}

	bars := make([]Bar, buckets)
	for b := range buckets {
		var sum float64
		for _, s := range slice[b*chunk : (b+1)*chunk] {
			sum += (float64(s) + 1) / 2
		}
		bars[b] = Bar{Value: scale.value(sum / float64(chunk))}
	}
	return bars, true
}
