package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholdScenario(t *testing.T) {
	got, err := Threshold([]uint8{50, 100, 150, 200, 250}, Bounds{Lower: 100, Upper: 200})
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 100, 150, 0, 0}, got)
}

func TestThreshold(t *testing.T) {
	src := []uint8{0, 1, 2, 127, 128, 254, 255}
	tests := []struct {
		name   string
		bounds Bounds
		want   []uint8
	}{
		{"full_range", FullRange, []uint8{0, 1, 2, 127, 128, 254, 255}},
		{"disabled", Disabled, []uint8{0, 0, 0, 0, 0, 0, 0}},
		{"equal_edges", Bounds{Lower: 128, Upper: 128}, []uint8{0, 0, 0, 0, 0, 0, 0}},
		{"upper_255_drops_max", Bounds{Lower: 0, Upper: 255}, []uint8{0, 1, 2, 127, 128, 254, 0}},
		{"lower_inclusive", Bounds{Lower: 127, Upper: 129}, []uint8{0, 0, 0, 127, 128, 0, 0}},
		{"top_only", Bounds{Lower: 255, Upper: 256}, []uint8{0, 0, 0, 0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Threshold(src, tt.bounds)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThresholdKeepsOnlyValuesInsideBounds(t *testing.T) {
	src := make([]uint8, 256)
	for i := range src {
		src[i] = uint8(i)
	}
	for lo := 0; lo <= MaxLower; lo += 17 {
		for hi := lo; hi <= MaxUpper; hi += 23 {
			b := Bounds{Lower: lo, Upper: hi}
			got, err := Threshold(src, b)
			require.NoError(t, err)
			for i, v := range got {
				if v != 0 {
					assert.Truef(t, b.Contains(v), "value %d at %d escaped %s", v, i, b)
				}
			}
		}
	}
}

func TestThresholdIdempotent(t *testing.T) {
	src := []uint8{3, 40, 90, 100, 180, 199, 200, 201, 255}
	b := Bounds{Lower: 90, Upper: 200}

	once, err := Threshold(src, b)
	require.NoError(t, err)
	twice, err := Threshold(once, b)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestThresholdRejectsInvalidBounds(t *testing.T) {
	for _, b := range []Bounds{{-1, 10}, {10, 5}, {0, 257}, {256, 256}} {
		_, err := Threshold([]uint8{1}, b)
		assert.ErrorIs(t, err, ErrInvalidBounds, "bounds %s", b)
	}
}

func TestThresholdChannel(t *testing.T) {
	src := &Image{Width: 2, Height: 1, Channels: 3, Pix: []uint8{10, 20, 30, 40, 50, 60}}
	dst := src.Clone()

	require.NoError(t, ThresholdChannel(dst, src, 1, Bounds{Lower: 0, Upper: 30}))
	assert.Equal(t, []uint8{10, 20, 30, 40, 0, 60}, dst.Pix)

	// Recomputing from the source restores a previously filtered channel.
	require.NoError(t, ThresholdChannel(dst, src, 1, FullRange))
	assert.Equal(t, src.Pix, dst.Pix)

	assert.ErrorIs(t, ThresholdChannel(dst, src, 3, FullRange), ErrChannelOutOfRange)
}

func TestBoundsEdges(t *testing.T) {
	b := Bounds{Lower: 50, Upper: 100}

	assert.Equal(t, Bounds{Lower: 120, Upper: 120}, b.WithLower(120))
	assert.Equal(t, Bounds{Lower: 30, Upper: 30}, b.WithUpper(30))
	assert.Equal(t, Bounds{Lower: MaxLower, Upper: MaxLower}, b.WithLower(999))
	assert.Equal(t, Bounds{Lower: 50, Upper: MaxUpper}, b.WithUpper(999))
	assert.Equal(t, Bounds{Lower: 0, Upper: 100}, b.WithLower(-4))
	assert.Equal(t, Bounds{Lower: 0, Upper: 0}, b.WithUpper(-4))
	assert.True(t, FullRange.IsFull())
	assert.False(t, b.IsFull())
}
