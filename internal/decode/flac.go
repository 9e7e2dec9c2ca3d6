package decode

import (
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
)

func decodeFLAC(rs io.ReadSeeker) (*PCM, error) {
	// Some taggers prepend an ID3v2 tag, which the FLAC decoder rejects.
	if err := skipID3v2(rs); err != nil {
		return nil, err
	}
	streamer, format, err := flac.Decode(rs)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	frames, err := drain(streamer, streamer.Len())
	if err != nil {
		return nil, err
	}
	return &PCM{SampleRate: int(format.SampleRate), Frames: frames, Format: "FLAC"}, nil
}

// drain reads a beep streamer to the end.
func drain(s beep.Streamer, sizeHint int) ([][2]float64, error) {
	frames := make([][2]float64, 0, max(sizeHint, 0))
	buf := make([][2]float64, 4096)
	for {
		n, ok := s.Stream(buf)
		frames = append(frames, buf[:n]...)
		if !ok {
			break
		}
	}
	return frames, s.Err()
}

// skipID3v2 positions r after an ID3v2 tag, or back at the start when there
// is none.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && n == 0 {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
