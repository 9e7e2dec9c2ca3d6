package player

import (
	"math"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

func newVolume(s beep.Streamer, level float64, muted bool) *effects.Volume {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   levelToVolume(level),
		Silent:   muted || level <= 0,
	}
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale with base 2: 0 means no change, -1 half
// volume, -2 quarter volume.
// We map: 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10 (essentially silent)
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}

func clampLevel(level float64) float64 {
	return min(max(level, 0), 1)
}
