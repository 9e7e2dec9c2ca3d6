package player

import "github.com/llehouerou/vocal/internal/sample"

// Mock is a test double for Device.
type Mock struct {
	state     State
	playErr   error
	playCalls []string
	volume    float64
	speed     float64
	muted     bool
	paused    bool
	stops     int
	closed    bool
}

// NewMock creates a new mock device for testing.
func NewMock() *Mock {
	return &Mock{state: Stopped, speed: 1}
}

func (m *Mock) Play(store *sample.Store) error {
	m.playCalls = append(m.playCalls, store.Path())
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	if m.paused {
		m.state = Paused
	}
	return nil
}

func (m *Mock) Stop() {
	m.stops++
	m.state = Stopped
}

func (m *Mock) SetPaused(paused bool) {
	m.paused = paused
	switch {
	case m.state == Playing && paused:
		m.state = Paused
	case m.state == Paused && !paused:
		m.state = Playing
	}
}

func (m *Mock) SetVolume(level float64) { m.volume = level }

func (m *Mock) SetMuted(muted bool) { m.muted = muted }

func (m *Mock) SetSpeed(ratio float64) { m.speed = ratio }

func (m *Mock) State() State { return m.state }

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) PlayCalls() []string { return m.playCalls }

func (m *Mock) Stops() int { return m.stops }

func (m *Mock) Volume() float64 { return m.volume }

func (m *Mock) Speed() float64 { return m.speed }

func (m *Mock) Muted() bool { return m.muted }

func (m *Mock) Paused() bool { return m.paused }

func (m *Mock) Closed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
