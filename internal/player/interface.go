package player

import "github.com/llehouerou/vocal/internal/sample"

// Interface defines the audio device contract for dependency injection and testing.
type Interface interface {
	Play(store *sample.Store) error
	Stop()
	SetPaused(paused bool)
	SetVolume(level float64)
	SetMuted(muted bool)
	SetSpeed(ratio float64)
	State() State
	Close() error
}

// Verify Device implements Interface at compile time.
var _ Interface = (*Device)(nil)
