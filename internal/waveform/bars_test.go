package waveform

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(bars []Bar) []uint64 {
	out := make([]uint64, len(bars))
	for i, b := range bars {
		out[i] = b.Value
	}
	return out
}

func TestComputeBars_HalfSilentHalfFull(t *testing.T) {
	samples := []float32{-1, -1, -1, -1, 1, 1, 1, 1}

	bars, ok := ComputeBars(samples, 0, 8, 2, DefaultScale)

	require.True(t, ok)
	assert.Equal(t, []uint64{0, DefaultScale.Ceiling()}, values(bars))
	for _, b := range bars {
		assert.Empty(t, b.Label)
	}
}

func TestComputeBars_ConstantAmplitude(t *testing.T) {
	scale := Scale{Max: 1000, Multiplier: 3}
	for _, v := range []float32{-1, -0.5, -0.1, 0, 0.3, 0.75, 1} {
		samples := make([]float32, 97)
		for i := range samples {
			samples[i] = v
		}

		bars, ok := ComputeBars(samples, 5, 80, 7, scale)

		require.True(t, ok)
		require.Len(t, bars, 7)
		want := uint64(math.Round(((float64(v) + 1) / 2) * 1000 * 3))
		for _, b := range bars {
			assert.Equal(t, want, b.Value, "amplitude %v", v)
		}
	}
}

func TestComputeBars_NoData(t *testing.T) {
	samples := []float32{0, 0.5, -0.5, 1}
	tests := []struct {
		name                    string
		start, window, buckets int
	}{
		{"fewer samples than buckets", 0, 3, 4},
		{"clipped window shorter than buckets", 2, 100, 3},
		{"start at end", 4, 4, 1},
		{"start past end", 10, 4, 1},
		{"negative start", -1, 4, 1},
		{"zero buckets", 0, 4, 0},
		{"zero window", 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bars, ok := ComputeBars(samples, tt.start, tt.window, tt.buckets, DefaultScale)
			assert.False(t, ok)
			assert.Nil(t, bars)
		})
	}

	_, ok := ComputeBars(nil, 0, 10, 1, DefaultScale)
	assert.False(t, ok)
}

func TestComputeBars_ClippedAtEnd(t *testing.T) {
	samples := []float32{-1, -1, -1, 1, 1, 1}

	bars, ok := ComputeBars(samples, 2, 100, 2, Scale{Max: 10, Multiplier: 1})

	require.True(t, ok)
	// slice is [-1, 1, 1, 1]: chunks [-1, 1] and [1, 1]
	assert.Equal(t, []uint64{5, 10}, values(bars))
}

func TestComputeBars_RemainderDropped(t *testing.T) {
	samples := []float32{1, 1, 1, 1, 1, 1, -1}

	bars, ok := ComputeBars(samples, 0, 7, 3, Scale{Max: 10, Multiplier: 1})

	require.True(t, ok)
	assert.Equal(t, []uint64{10, 10, 10}, values(bars))
}

func TestComputeBars_DoesNotModifyInput(t *testing.T) {
	samples := []float32{-1, 0.5, 0.25, 1}
	orig := append([]float32(nil), samples...)

	_, _ = ComputeBars(samples, 0, 4, 2, DefaultScale)

	assert.Equal(t, orig, samples)
}

func TestScale_Ceiling(t *testing.T) {
	assert.Equal(t, uint64(1_000_000), DefaultScale.Ceiling())
	assert.Equal(t, uint64(25), Scale{Max: 10, Multiplier: 2.5}.Ceiling())
}

func TestStep(t *testing.T) {
	assert.Equal(t, 705, Step(44100, 16*time.Millisecond))
	assert.Equal(t, 768, Step(48000, 16*time.Millisecond))
	assert.Equal(t, 0, Step(0, 16*time.Millisecond))
	assert.Equal(t, 0, Step(44100, 0))
}

func TestBucketCount(t *testing.T) {
	assert.Equal(t, 40, BucketCount(80))
	assert.Equal(t, 40, BucketCount(81))
	assert.Equal(t, 0, BucketCount(1))
	assert.Equal(t, 0, BucketCount(-4))
}

func TestStartIndex(t *testing.T) {
	assert.Equal(t, 0, StartIndex(0, 1000))
	assert.Equal(t, 0, StartIndex(-0.2, 1000))
	assert.Equal(t, 250, StartIndex(0.25, 1000))
	assert.Equal(t, 1000, StartIndex(1.0, 1000))
	assert.Equal(t, 0, StartIndex(0.5, 0))
}

func TestWindow_Bars(t *testing.T) {
	samples := make([]float32, 44100)
	w := NewWindow(0.5, len(samples), 44100, 20, 16*time.Millisecond)

	assert.Equal(t, Window{Start: 22050, Span: 705, Buckets: 10}, w)

	bars, ok := w.Bars(samples, Scale{Max: 100, Multiplier: 1})
	require.True(t, ok)
	assert.Len(t, bars, 10)
	for _, b := range bars {
		assert.Equal(t, uint64(50), b.Value)
	}

	end := NewWindow(1.0, len(samples), 44100, 20, 16*time.Millisecond)
	_, ok = end.Bars(samples, DefaultScale)
	assert.False(t, ok)
}
