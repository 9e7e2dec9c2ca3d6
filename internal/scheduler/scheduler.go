// Package scheduler advances playback one frame at a time.
//
// Each Step polls the stop signals, advances the progress clock (or holds it
// while paused), reads the terminal size and downsamples the waveform under
// the current position. The caller owns the timing: it calls Step once per
// frame interval and renders the returned Frame.
//
// State transitions:
//
//	Running -> Paused       (options paused)
//	Paused -> Running       (options resumed)
//	Running|Paused -> Interrupted (interrupt or track change)
//	Running -> Finished     (progress > 1.0)
//
// Finished and Interrupted are terminal.
package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/vocal/internal/playback"
	"github.com/llehouerou/vocal/internal/progress"
	"github.com/llehouerou/vocal/internal/sample"
	"github.com/llehouerou/vocal/internal/waveform"
)

// DefaultInterval is the target frame interval.
const DefaultInterval = 16 * time.Millisecond

// ErrTerminalSize is returned when the terminal size cannot be read.
var ErrTerminalSize = errors.New("terminal size unavailable")

// State is the scheduler state.
type State int

const (
	Running State = iota
	Paused
	Finished
	Interrupted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	case Interrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Done reports whether the state is terminal.
func (s State) Done() bool {
	return s == Finished || s == Interrupted
}

// Signals are the stop requests polled once per frame.
type Signals interface {
	Interrupted() bool
	TrackChanged() bool
}

// Listener receives the terminal events of a track.
type Listener interface {
	// Stop is called once when the scheduler leaves for a terminal state.
	Stop()
	// TrackComplete is called once, after Stop, when the track played to the end.
	TrackComplete()
}

// SizeFunc returns the current terminal width and height.
type SizeFunc func() (width, height int, err error)

// Config configures a Scheduler.
type Config struct {
	Signals  Signals
	Listener Listener
	Size     SizeFunc
	Interval time.Duration  // DefaultInterval when zero
	Scale    waveform.Scale // waveform.DefaultScale when zero
	Now      func() time.Time
}

// Frame is the outcome of one Step.
type Frame struct {
	State    State
	Progress float64
	Passed   time.Duration
	Duration time.Duration
	Window   waveform.Window
	Bars     []waveform.Bar
	HasBars  bool
}

// Scheduler drives one track.
type Scheduler struct {
	store *sample.Store
	opts  *playback.Options
	cfg   Config
	clock *progress.Clock
	state State
	last  Frame
}

// New creates a scheduler for store. The progress clock starts now.
func New(store *sample.Store, opts *playback.Options, cfg Config) (*Scheduler, error) {
	if store == nil {
		return nil, errors.New("scheduler: nil store")
	}
	if opts == nil {
		return nil, errors.New("scheduler: nil options")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Scale == (waveform.Scale{}) {
		cfg.Scale = waveform.DefaultScale
	}

	var clockOpts []progress.Option
	if cfg.Now != nil {
		clockOpts = append(clockOpts, progress.WithNow(cfg.Now))
	}
	clock, err := progress.New(store.Duration(), clockOpts...)
	if err != nil {
		return nil, fmt.Errorf("scheduler: %w", err)
	}

	s := &Scheduler{
		store: store,
		opts:  opts,
		cfg:   cfg,
		clock: clock,
		state: Running,
	}
	s.last = s.frame()
	return s, nil
}

// State returns the current state.
func (s *Scheduler) State() State { return s.state }

// Interval returns the frame interval.
func (s *Scheduler) Interval() time.Duration { return s.cfg.Interval }

// Clock returns the progress clock.
func (s *Scheduler) Clock() *progress.Clock { return s.clock }

// Step runs one frame cycle.
func (s *Scheduler) Step() (Frame, error) {
	if s.state.Done() {
		return s.last, nil
	}

	if s.cfg.Signals != nil && (s.cfg.Signals.Interrupted() || s.cfg.Signals.TrackChanged()) {
		s.state = Interrupted
		if s.cfg.Listener != nil {
			s.cfg.Listener.Stop()
		}
		s.last = s.frame()
		return s.last, nil
	}

	if s.opts.Paused() {
		s.clock.ResetTick()
		s.state = Paused
		f := s.frame()
		f.Window, f.Bars, f.HasBars = s.last.Window, s.last.Bars, s.last.HasBars
		s.last = f
		return s.last, nil
	}

	s.clock.Tick(s.opts.SpeedRatio())
	if s.clock.Finished() {
		s.state = Finished
		if s.cfg.Listener != nil {
			s.cfg.Listener.Stop()
			s.cfg.Listener.TrackComplete()
		}
		s.last = s.frame()
		return s.last, nil
	}

	width := 0
	if s.cfg.Size != nil {
		w, _, err := s.cfg.Size()
		if err != nil {
			return s.last, fmt.Errorf("%w: %w", ErrTerminalSize, err)
		}
		width = w
	}

	s.state = Running
	f := s.frame()
	f.Window = waveform.NewWindow(f.Progress, s.store.Len(), s.store.SampleRate(), width, s.cfg.Interval)
	f.Bars, f.HasBars = f.Window.Bars(s.store.View(), s.cfg.Scale)
	s.last = f
	return s.last, nil
}

func (s *Scheduler) frame() Frame {
	return Frame{
		State:    s.state,
		Progress: s.clock.Progress(),
		Passed:   s.clock.Passed(),
		Duration: s.clock.Duration(),
	}
}
