package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// pcmReader is the part of the go-audio WAV and AIFF decoders used here.
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

func decodeWAV(rs io.ReadSeeker) (*PCM, error) {
	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("wav: %w", ErrInvalidFile)
	}
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, err
	}
	// 8-bit WAV samples are unsigned, centered on 128.
	return readIntPCM(dec, int(dec.BitDepth), dec.BitDepth == 8, "WAV")
}

func decodeAIFF(rs io.ReadSeeker) (*PCM, error) {
	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("aiff: %w", ErrInvalidFile)
	}
	dec.ReadInfo()
	return readIntPCM(dec, int(dec.BitDepth), false, "AIFF")
}

func readIntPCM(dec pcmReader, bitDepth int, unsigned bool, name string) (*PCM, error) {
	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrNoChannels
	}
	if format.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	scale, err := intScale(bitDepth)
	if err != nil {
		return nil, err
	}

	buf := &goaudio.IntBuffer{
		Data:   make([]int, 4096*format.NumChannels),
		Format: format,
	}
	offset := 0.0
	if unsigned {
		offset = scale
	}
	norm := make([]float64, 0, len(buf.Data))
	var frames [][2]float64
	for {
		n, err := dec.PCMBuffer(buf)
		if n > 0 {
			norm = norm[:0]
			for _, v := range buf.Data[:n] {
				norm = append(norm, (float64(v)-offset)/scale)
			}
			frames = appendInterleaved(frames, norm, format.NumChannels)
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if n == 0 || err != nil {
			break
		}
	}

	return &PCM{SampleRate: format.SampleRate, Frames: frames, Format: name}, nil
}

func intScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 8:
		return 128.0, nil
	case 16:
		return 32768.0, nil
	case 24:
		return 8388608.0, nil
	case 32:
		return 2147483648.0, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}
