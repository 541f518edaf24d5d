package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		img  *Image
		ok   bool
	}{
		{"gray", New(4, 3, 1), true},
		{"bgr", New(4, 3, 3), true},
		{"bgra", New(4, 3, 4), true},
		{"two_channels", New(4, 3, 2), false},
		{"five_channels", New(4, 3, 5), false},
		{"zero_width", New(0, 3, 1), false},
		{"too_large", &Image{Width: maxDimension + 1, Height: 1, Channels: 1}, false},
		{"short_buffer", &Image{Width: 2, Height: 2, Channels: 3, Pix: make([]uint8, 11)}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.img)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var verr *InputValidationError
			assert.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidateAllReportsPosition(t *testing.T) {
	err := ValidateAll([]*Image{New(2, 2, 3), New(2, 2, 2)})

	var verr *InputValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, verr.Index)
	assert.Contains(t, err.Error(), "image 2")

	assert.ErrorIs(t, ValidateAll(nil), ErrInvalidInput)
}

func TestSplitMergeIsolate(t *testing.T) {
	img := &Image{Width: 2, Height: 1, Channels: 3, Pix: []uint8{1, 2, 3, 4, 5, 6}}

	planes := img.Split()
	assert.Equal(t, [][]uint8{{1, 4}, {2, 5}, {3, 6}}, planes)

	merged, err := Merge(2, 1, planes)
	require.NoError(t, err)
	assert.True(t, merged.Equal(img))

	green, err := img.Isolate(1)
	require.NoError(t, err)
	assert.Equal(t, 1, green.Channels)
	assert.Equal(t, []uint8{2, 5}, green.Pix)

	_, err = img.Isolate(3)
	assert.ErrorIs(t, err, ErrChannelOutOfRange)
}

func TestCloneIsIndependent(t *testing.T) {
	img := New(2, 2, 1)
	clone := img.Clone()
	clone.Pix[0] = 9

	assert.Equal(t, uint8(0), img.Pix[0])
	assert.False(t, img.Equal(clone))
}

func TestConversionCheck(t *testing.T) {
	err := RGBToGray.Check(New(2, 2, 1))

	var mismatch *ChannelCountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 1, mismatch.Got)
	assert.Equal(t, []int{3}, mismatch.Want)
	assert.ErrorIs(t, err, ErrChannelCountMismatch)

	assert.NoError(t, RGBToGray.Check(New(2, 2, 3)))
	assert.NoError(t, DropAlpha.Check(New(2, 2, 4)))
	assert.Error(t, DropAlpha.Check(New(2, 2, 3)))
	assert.Error(t, Conversion(42).Check(New(2, 2, 3)))
}

func TestConversionsFor(t *testing.T) {
	assert.Equal(t, []Conversion{BGRToRGB, RGBToHSV, RGBToGray}, ConversionsFor(3))
	assert.Equal(t, []Conversion{DropAlpha}, ConversionsFor(4))
	assert.Empty(t, ConversionsFor(1))
}
