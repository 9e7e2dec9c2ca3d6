package decode

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/llehouerou/go-mp3"
)

// go-mp3 always outputs 16-bit little-endian stereo.
const mp3BytesPerFrame = 4

func decodeMP3(rs io.ReadSeeker) (*PCM, error) {
	decoder, err := mp3.NewDecoder(rs)
	if err != nil {
		return nil, err
	}

	sampleRate := decoder.SampleRate()
	if sampleRate == 0 {
		return nil, errors.New("mp3: invalid sample rate")
	}

	var frames [][2]float64
	if count := decoder.SampleCount(); count > 0 {
		frames = make([][2]float64, 0, count)
	}

	buf := make([]byte, 8192)
	for {
		n, err := io.ReadFull(decoder, buf)
		frames = appendPCM16Stereo(frames, buf[:n-n%mp3BytesPerFrame])
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	return &PCM{SampleRate: sampleRate, Frames: frames, Format: "MP3"}, nil
}

func appendPCM16Stereo(frames [][2]float64, b []byte) [][2]float64 {
	for off := 0; off+mp3BytesPerFrame <= len(b); off += mp3BytesPerFrame {
		left := int16(binary.LittleEndian.Uint16(b[off:]))    //nolint:gosec // audio samples
		right := int16(binary.LittleEndian.Uint16(b[off+2:])) //nolint:gosec // audio samples
		frames = append(frames, [2]float64{float64(left) / 32768.0, float64(right) / 32768.0})
	}
	return frames
}
