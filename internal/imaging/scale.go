package imaging

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// FitSize scales (width, height) so the plot is limit wide, unless that
// makes it taller than limit, in which case the height is capped instead.
func FitSize(width, height, limit int) (int, int) {
	if width <= 0 || height <= 0 {
		return limit, limit
	}
	w := limit
	h := int(math.Round(float64(height) * float64(limit) / float64(width)))
	if h > limit {
		h = limit
		w = int(math.Round(float64(width) * float64(limit) / float64(height)))
	}
	return max(w, 1), max(h, 1)
}

// Thumbnail downsamples src to the given width, keeping its aspect ratio.
// Images already narrower than width are copied unscaled.
func Thumbnail(src image.Image, width int) *image.NRGBA {
	b := src.Bounds()
	if b.Dx() <= width {
		dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		return dst
	}
	height := max(1, int(math.Round(float64(b.Dy())*float64(width)/float64(b.Dx()))))
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
