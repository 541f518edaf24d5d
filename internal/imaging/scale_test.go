package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h, limit  int
		wantW, wantH int
	}{
		{"landscape", 1440, 720, 720, 720, 360},
		{"square", 100, 100, 720, 720, 720},
		{"portrait_capped", 500, 1000, 720, 360, 720},
		{"degenerate", 0, 10, 720, 720, 720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitSize(tt.w, tt.h, tt.limit)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestThumbnail(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 400, 200))
	for i := range src.Pix {
		src.Pix[i] = 255
	}

	thumb := Thumbnail(src, 100)
	assert.Equal(t, image.Rect(0, 0, 100, 50), thumb.Bounds())
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, thumb.NRGBAAt(10, 10))

	small := Thumbnail(src, 1000)
	assert.Equal(t, src.Bounds(), small.Bounds())
	assert.Equal(t, src.Pix, small.Pix)
}
