// Package player plays decoded clips on the system audio device.
//
// A Device is opened once per program run and closed when the program
// exits. Every clip is resampled to the device rate; speed changes go
// through a ratio resampler so pitch follows speed.
package player

import (
	"errors"
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/llehouerou/vocal/internal/sample"
)

const (
	// DefaultSampleRate is the device rate every clip is resampled to.
	DefaultSampleRate = 44100
	// DefaultBufferSize is the speaker buffer length.
	DefaultBufferSize = 100 * time.Millisecond

	resampleQuality = 4
)

// ErrClosed is returned when playing on a closed device.
var ErrClosed = errors.New("audio device closed")

// DeviceError reports a failure to acquire the audio device.
type DeviceError struct {
	Err error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("audio device: %v", e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// Options configures Open.
type Options struct {
	SampleRate int           // DefaultSampleRate when zero
	BufferSize time.Duration // DefaultBufferSize when zero
	Volume     float64       // 0.0-1.0
	Speed      float64       // ratio, 1.0 when zero
	Muted      bool
}

// settings are applied to every new clip.
type settings struct {
	volume float64
	speed  float64
	muted  bool
	paused bool
}

// Device is the audio output. It is used from a single goroutine; the
// speaker goroutine only sees the streamer chain, which is changed under the
// speaker lock.
type Device struct {
	out    output
	rate   beep.SampleRate
	state  State
	chain  *chain
	st     settings
	closed bool
}

// Open acquires the system audio device.
func Open(opts Options) (*Device, error) {
	return open(speakerOutput{}, opts)
}

func open(out output, opts Options) (*Device, error) {
	if opts.SampleRate <= 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultBufferSize
	}
	if opts.Speed <= 0 {
		opts.Speed = 1
	}
	rate := beep.SampleRate(opts.SampleRate)
	if err := out.Init(rate, rate.N(opts.BufferSize)); err != nil {
		return nil, &DeviceError{Err: err}
	}
	return &Device{
		out:  out,
		rate: rate,
		st: settings{
			volume: clampLevel(opts.Volume),
			speed:  opts.Speed,
			muted:  opts.Muted,
		},
	}, nil
}

// Play stops the current clip and starts store from the beginning.
func (d *Device) Play(store *sample.Store) error {
	if d.closed {
		return ErrClosed
	}
	if store == nil {
		return errors.New("play: nil clip")
	}
	d.Stop()

	d.chain = newChain(store.Frames(), beep.SampleRate(store.SampleRate()), d.rate, d.st)
	d.out.Play(d.chain.volume)
	if d.st.paused {
		d.state = Paused
	} else {
		d.state = Playing
	}
	return nil
}

// Stop stops the current clip.
func (d *Device) Stop() {
	if d.state == Stopped {
		return
	}
	d.out.Clear()
	d.chain = nil
	d.state = Stopped
}

// SetPaused pauses or resumes the current clip.
func (d *Device) SetPaused(paused bool) {
	d.st.paused = paused
	if d.chain == nil {
		return
	}
	d.out.Lock()
	d.chain.ctrl.Paused = paused
	d.out.Unlock()
	if paused {
		d.state = Paused
	} else {
		d.state = Playing
	}
}

// SetVolume sets the volume level (0.0 to 1.0).
// If muted, only stores the level without making it audible.
func (d *Device) SetVolume(level float64) {
	d.st.volume = clampLevel(level)
	if d.chain == nil {
		return
	}
	d.out.Lock()
	d.chain.volume.Volume = levelToVolume(d.st.volume)
	d.chain.volume.Silent = d.st.muted || d.st.volume <= 0
	d.out.Unlock()
}

// SetMuted sets the muted state.
func (d *Device) SetMuted(muted bool) {
	d.st.muted = muted
	if d.chain == nil {
		return
	}
	d.out.Lock()
	d.chain.volume.Silent = muted || d.st.volume <= 0
	d.out.Unlock()
}

// SetSpeed sets the playback speed ratio (1.0 is normal speed).
func (d *Device) SetSpeed(ratio float64) {
	if ratio <= 0 {
		return
	}
	d.st.speed = ratio
	if d.chain == nil {
		return
	}
	d.out.Lock()
	d.chain.speed.SetRatio(ratio)
	d.out.Unlock()
}

// State returns the playback state.
func (d *Device) State() State { return d.state }

// Close stops playback and releases the device. Closing twice is a no-op.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.Stop()
	d.out.Close()
	d.closed = true
	return nil
}
