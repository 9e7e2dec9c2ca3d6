package decode

import (
	"io"

	"github.com/jfreymuth/oggvorbis"
)

func decodeVorbis(rs io.ReadSeeker) (*PCM, error) {
	data, format, err := oggvorbis.ReadAll(rs)
	if err != nil {
		return nil, err
	}
	if format.Channels <= 0 {
		return nil, ErrNoChannels
	}
	frames := appendInterleaved(make([][2]float64, 0, len(data)/format.Channels), data, format.Channels)
	return &PCM{SampleRate: format.SampleRate, Frames: frames, Format: "VORBIS"}, nil
}
