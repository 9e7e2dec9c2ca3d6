package player

import (
	"fmt"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// pcmStreamer plays decoded frames from memory.
type pcmStreamer struct {
	frames [][2]float64
	pos    int
}

func newPCMStreamer(frames [][2]float64) *pcmStreamer {
	return &pcmStreamer{frames: frames}
}

func (s *pcmStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.frames) {
		return 0, false
	}
	n := copy(samples, s.frames[s.pos:])
	s.pos += n
	return n, true
}

func (s *pcmStreamer) Err() error { return nil }

func (s *pcmStreamer) Len() int { return len(s.frames) }

func (s *pcmStreamer) Position() int { return s.pos }

func (s *pcmStreamer) Seek(p int) error {
	if p < 0 || p > len(s.frames) {
		return fmt.Errorf("seek position %d out of range [0, %d]", p, len(s.frames))
	}
	s.pos = p
	return nil
}

var _ beep.StreamSeeker = (*pcmStreamer)(nil)

// chain is the streamer graph of one clip:
// source -> resample to device rate -> pause -> speed -> volume.
type chain struct {
	source *pcmStreamer
	ctrl   *beep.Ctrl
	speed  *beep.Resampler
	volume *effects.Volume
}

func newChain(frames [][2]float64, clipRate, deviceRate beep.SampleRate, st settings) *chain {
	source := newPCMStreamer(frames)

	var s beep.Streamer = source
	if clipRate != deviceRate {
		s = beep.Resample(resampleQuality, clipRate, deviceRate, s)
	}
	ctrl := &beep.Ctrl{Streamer: s, Paused: st.paused}
	speed := beep.ResampleRatio(resampleQuality, st.speed, ctrl)
	return &chain{
		source: source,
		ctrl:   ctrl,
		speed:  speed,
		volume: newVolume(speed, st.volume, st.muted),
	}
}
