package decode

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// PCM is a fully decoded clip.
type PCM struct {
	SampleRate int
	Frames     [][2]float64
	Format     string // "MP3", "FLAC", "WAV", "AIFF", "VORBIS"
}

// Duration returns the playing time of the frames at the clip's sample rate.
func (p *PCM) Duration() time.Duration {
	if p == nil || p.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(p.Frames)) * time.Second / time.Duration(p.SampleRate)
}

// Decoder decodes a complete stream.
type Decoder interface {
	Decode(rs io.ReadSeeker) (*PCM, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(rs io.ReadSeeker) (*PCM, error)

// Decode calls f(rs).
func (f DecoderFunc) Decode(rs io.ReadSeeker) (*PCM, error) { return f(rs) }

// Registry maps lower-case file extensions (with the dot) to decoders.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Decoder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// DefaultRegistry returns a registry with every built-in decoder.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(".mp3", DecoderFunc(decodeMP3))
	r.Register(".flac", DecoderFunc(decodeFLAC))
	r.Register(".wav", DecoderFunc(decodeWAV))
	r.Register(".aif", DecoderFunc(decodeAIFF))
	r.Register(".aiff", DecoderFunc(decodeAIFF))
	r.Register(".ogg", DecoderFunc(decodeVorbis))
	r.Register(".oga", DecoderFunc(decodeVorbis))
	return r
}

// Register binds a decoder to an extension, replacing any previous one.
func (r *Registry) Register(ext string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[normalizeExt(ext)] = d
}

// Get returns the decoder for an extension.
func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.codecs[normalizeExt(ext)]
	return d, ok
}

// Supports reports whether the file extension of path has a decoder.
func (r *Registry) Supports(path string) bool {
	_, ok := r.Get(filepath.Ext(path))
	return ok
}

// Extensions returns the registered extensions, sorted.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	exts := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// DecodeFile opens path and decodes it with the decoder registered for its
// extension.
func (r *Registry) DecodeFile(path string) (*PCM, error) {
	ext := filepath.Ext(path)
	d, ok := r.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pcm, err := d.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	if pcm.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	return pcm, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	return ext
}

// appendInterleaved converts interleaved samples to stereo frames.
func appendInterleaved[T float32 | float64](frames [][2]float64, data []T, channels int) [][2]float64 {
	if channels <= 0 {
		return frames
	}
	for i := 0; i+channels <= len(data); i += channels {
		left := float64(data[i])
		right := left
		if channels > 1 {
			right = float64(data[i+1])
		}
		frames = append(frames, [2]float64{left, right})
	}
	return frames
}
