package imaging

import (
	"fmt"
	"image"
	"math"
)

// DisplayBuffer is a row-major RGBA buffer with samples normalized to
// [0, 1], the form handed to the rendering backend.
type DisplayBuffer struct {
	Width  int
	Height int
	Pix    []float32
}

// Compose stacks 1, 3 or 4 planes into an RGBA display buffer. A single
// plane is replicated into R, G and B; missing alpha is opaque.
func Compose(planes [][]uint8, width, height int) (DisplayBuffer, error) {
	n := len(planes)
	switch n {
	case 1, 3, 4:
	default:
		return DisplayBuffer{}, &UnsupportedChannelCountError{Got: n}
	}
	pixels := width * height
	for c, plane := range planes {
		if len(plane) != pixels {
			return DisplayBuffer{}, fmt.Errorf("compose: plane %d holds %d samples, want %d", c, len(plane), pixels)
		}
	}

	buf := DisplayBuffer{Width: width, Height: height, Pix: make([]float32, pixels*4)}
	for i := 0; i < pixels; i++ {
		o := i * 4
		switch n {
		case 1:
			v := float32(planes[0][i]) / 255
			buf.Pix[o], buf.Pix[o+1], buf.Pix[o+2], buf.Pix[o+3] = v, v, v, 1
		case 3:
			buf.Pix[o] = float32(planes[0][i]) / 255
			buf.Pix[o+1] = float32(planes[1][i]) / 255
			buf.Pix[o+2] = float32(planes[2][i]) / 255
			buf.Pix[o+3] = 1
		case 4:
			buf.Pix[o] = float32(planes[0][i]) / 255
			buf.Pix[o+1] = float32(planes[1][i]) / 255
			buf.Pix[o+2] = float32(planes[2][i]) / 255
			buf.Pix[o+3] = float32(planes[3][i]) / 255
		}
	}
	return buf, nil
}

// ComposeImage composes every channel of img.
func ComposeImage(img *Image) (DisplayBuffer, error) {
	return Compose(img.Split(), img.Width, img.Height)
}

// At returns the RGBA quadruple at (x, y).
func (d DisplayBuffer) At(x, y int) [4]float32 {
	o := (y*d.Width + x) * 4
	return [4]float32{d.Pix[o], d.Pix[o+1], d.Pix[o+2], d.Pix[o+3]}
}

// NRGBA converts the buffer back to 8-bit samples. Alpha is straight, not
// premultiplied, so the result is an NRGBA image.
func (d DisplayBuffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d.Width, d.Height))
	for i, v := range d.Pix {
		img.Pix[i] = uint8(math.Round(float64(v) * 255))
	}
	return img
}
