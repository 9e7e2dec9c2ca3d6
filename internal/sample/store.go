// Package sample holds the decoded amplitude buffer of one audio clip.
//
// A Store is immutable once built. It is created off the UI goroutine (see
// Load) and handed over by message passing; after that every reader only
// borrows or copies from it.
package sample

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/llehouerou/vocal/internal/decode"
)

var (
	// ErrEmpty is returned for clips without any frame.
	ErrEmpty = errors.New("audio clip has no samples")
	// ErrZeroDuration is returned when the frames add up to no playing time.
	ErrZeroDuration = errors.New("audio clip has zero duration")
)

// LoadError reports a clip that cannot be played.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Store is the full decoded clip: mono amplitudes for visualization and the
// stereo frames fed to the output device.
type Store struct {
	path       string
	format     string
	sampleRate int
	samples    []float32
	frames     [][2]float64
	duration   time.Duration
}

// Load decodes path with reg and builds a Store.
func Load(path string, reg *decode.Registry) (*Store, error) {
	pcm, err := reg.DecodeFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return New(path, pcm)
}

// New builds a Store from decoded PCM. The frames are taken over, not copied.
func New(path string, pcm *decode.PCM) (*Store, error) {
	if pcm == nil || len(pcm.Frames) == 0 {
		return nil, &LoadError{Path: path, Err: ErrEmpty}
	}
	if pcm.SampleRate <= 0 {
		return nil, &LoadError{Path: path, Err: decode.ErrInvalidSampleRate}
	}
	duration := pcm.Duration()
	if duration <= 0 {
		return nil, &LoadError{Path: path, Err: ErrZeroDuration}
	}

	samples := make([]float32, len(pcm.Frames))
	for i, f := range pcm.Frames {
		samples[i] = clamp(float32((f[0] + f[1]) / 2))
	}

	return &Store{
		path:       path,
		format:     pcm.Format,
		sampleRate: pcm.SampleRate,
		samples:    samples,
		frames:     pcm.Frames,
		duration:   duration,
	}, nil
}

func clamp(v float32) float32 {
	return min(max(v, -1), 1)
}

// Path returns the file the clip was decoded from.
func (s *Store) Path() string { return s.path }

// Format returns the codec name reported by the decoder.
func (s *Store) Format() string { return s.format }

// SampleRate returns the clip's sample rate in Hz.
func (s *Store) SampleRate() int { return s.sampleRate }

// Duration returns the clip's playing time at 1x speed.
func (s *Store) Duration() time.Duration { return s.duration }

// Len returns the number of mono samples.
func (s *Store) Len() int { return len(s.samples) }

// Samples returns a copy of the mono amplitudes.
func (s *Store) Samples() []float32 { return slices.Clone(s.samples) }

// View borrows the mono amplitudes. The slice must not be modified.
func (s *Store) View() []float32 { return s.samples }

// Frames borrows the stereo frames. The slice must not be modified.
func (s *Store) Frames() [][2]float64 { return s.frames }
