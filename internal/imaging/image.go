// Package imaging holds 8-bit image buffers and the pixel operations behind
// the inspector: channel split and merge, thresholding and composition into
// display buffers. Nothing here touches the GUI toolkit.
package imaging

import (
	"bytes"
	"fmt"
)

const maxDimension = 16384

// Image is an interleaved, row-major 8-bit image. A grayscale image has
// Channels == 1.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

// New allocates a zeroed image.
func New(width, height, channels int) *Image {
	return &Image{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

// FromPix wraps pix without copying after checking it describes a
// displayable image.
func FromPix(width, height, channels int, pix []uint8) (*Image, error) {
	img := &Image{Width: width, Height: height, Channels: channels, Pix: pix}
	if err := Validate(img); err != nil {
		return nil, err
	}
	return img, nil
}

// Validate checks the shape invariants every inspected image must hold.
func Validate(img *Image) error {
	if img == nil {
		return &InputValidationError{Reason: "image is nil"}
	}
	if img.Width <= 0 || img.Height <= 0 {
		return &InputValidationError{Reason: fmt.Sprintf("invalid dimensions: %dx%d", img.Width, img.Height)}
	}
	if img.Width > maxDimension || img.Height > maxDimension {
		return &InputValidationError{
			Reason: fmt.Sprintf("image too large: %dx%d (max: %d)", img.Width, img.Height, maxDimension),
		}
	}
	switch img.Channels {
	case 1, 3, 4:
	default:
		return &InputValidationError{
			Reason: fmt.Sprintf("images must have 1 or 3 or 4 channels, got %d", img.Channels),
		}
	}
	if want := img.Width * img.Height * img.Channels; len(img.Pix) != want {
		return &InputValidationError{
			Reason: fmt.Sprintf("pixel buffer holds %d samples, want %d", len(img.Pix), want),
		}
	}
	return nil
}

// ValidateAll validates every image and reports the first failure with its
// 1-based position.
func ValidateAll(images []*Image) error {
	if len(images) == 0 {
		return &InputValidationError{Reason: "no images to inspect"}
	}
	for i, img := range images {
		if err := Validate(img); err != nil {
			verr := err.(*InputValidationError)
			verr.Index = i + 1
			return verr
		}
	}
	return nil
}

func (img *Image) Clone() *Image {
	pix := make([]uint8, len(img.Pix))
	copy(pix, img.Pix)
	return &Image{Width: img.Width, Height: img.Height, Channels: img.Channels, Pix: pix}
}

// Equal reports whether both images have the same shape and samples.
func (img *Image) Equal(other *Image) bool {
	if img == nil || other == nil {
		return img == other
	}
	return img.Width == other.Width &&
		img.Height == other.Height &&
		img.Channels == other.Channels &&
		bytes.Equal(img.Pix, other.Pix)
}

// Pixels returns Width*Height.
func (img *Image) Pixels() int {
	return img.Width * img.Height
}

func (img *Image) At(x, y, c int) uint8 {
	return img.Pix[(y*img.Width+x)*img.Channels+c]
}

func (img *Image) checkChannel(c int) error {
	if c < 0 || c >= img.Channels {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrChannelOutOfRange, c, img.Channels)
	}
	return nil
}

// Channel copies channel c into a contiguous plane.
func (img *Image) Channel(c int) ([]uint8, error) {
	if err := img.checkChannel(c); err != nil {
		return nil, err
	}
	if img.Channels == 1 {
		plane := make([]uint8, len(img.Pix))
		copy(plane, img.Pix)
		return plane, nil
	}
	plane := make([]uint8, img.Pixels())
	for i, j := 0, c; i < len(plane); i, j = i+1, j+img.Channels {
		plane[i] = img.Pix[j]
	}
	return plane, nil
}

// SetChannel writes a plane back into channel c.
func (img *Image) SetChannel(c int, plane []uint8) error {
	if err := img.checkChannel(c); err != nil {
		return err
	}
	if len(plane) != img.Pixels() {
		return fmt.Errorf("plane holds %d samples, want %d", len(plane), img.Pixels())
	}
	for i, j := 0, c; i < len(plane); i, j = i+1, j+img.Channels {
		img.Pix[j] = plane[i]
	}
	return nil
}

// Split returns every channel as its own plane.
func (img *Image) Split() [][]uint8 {
	planes := make([][]uint8, img.Channels)
	for c := range planes {
		planes[c], _ = img.Channel(c)
	}
	return planes
}

// Merge interleaves planes into a new image.
func Merge(width, height int, planes [][]uint8) (*Image, error) {
	img := New(width, height, len(planes))
	for c, plane := range planes {
		if err := img.SetChannel(c, plane); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// Isolate extracts channel c as a standalone grayscale image.
func (img *Image) Isolate(c int) (*Image, error) {
	plane, err := img.Channel(c)
	if err != nil {
		return nil, err
	}
	return &Image{Width: img.Width, Height: img.Height, Channels: 1, Pix: plane}, nil
}
