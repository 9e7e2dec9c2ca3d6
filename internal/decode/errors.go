package decode

import "errors"

var (
	ErrUnsupportedFormat   = errors.New("unsupported format")
	ErrInvalidSampleRate   = errors.New("invalid sample rate")
	ErrInvalidFile         = errors.New("not a valid audio file")
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	ErrNoChannels          = errors.New("no audio channels")
)
