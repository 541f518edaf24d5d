// Hoverable image widget used for the composite plot
package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// ImageView shows an image scaled to fit and reports which image pixel the
// mouse is over.
type ImageView struct {
	widget.BaseWidget

	image  *canvas.Image
	width  int
	height int

	OnHover func(x, y int)
	OnLeave func()
}

var _ desktop.Hoverable = (*ImageView)(nil)

func NewImageView(minSize fyne.Size) *ImageView {
	v := &ImageView{
		image: canvas.NewImageFromImage(image.NewNRGBA(image.Rect(0, 0, 1, 1))),
	}
	v.image.FillMode = canvas.ImageFillContain
	v.image.ScaleMode = canvas.ImageScalePixels
	v.image.SetMinSize(minSize)

	v.ExtendBaseWidget(v)
	return v
}

func (v *ImageView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.image)
}

// SetImage replaces the displayed image.
func (v *ImageView) SetImage(img image.Image) {
	b := img.Bounds()
	v.width, v.height = b.Dx(), b.Dy()
	v.image.Image = img
	v.image.Refresh()
}

// SetMinSize changes the plot size, used when the image shape changes.
func (v *ImageView) SetMinSize(size fyne.Size) {
	v.image.SetMinSize(size)
	v.Refresh()
}

func (v *ImageView) MouseIn(e *desktop.MouseEvent) {
	v.MouseMoved(e)
}

func (v *ImageView) MouseMoved(e *desktop.MouseEvent) {
	if v.OnHover == nil {
		return
	}
	if x, y, ok := imageCoords(e.Position, v.Size(), v.width, v.height); ok {
		v.OnHover(x, y)
	}
}

func (v *ImageView) MouseOut() {
	if v.OnLeave != nil {
		v.OnLeave()
	}
}

// imageCoords maps a widget position to image pixel coordinates for an
// image drawn with ImageFillContain (scaled to fit and centered).
func imageCoords(pos fyne.Position, size fyne.Size, width, height int) (int, int, bool) {
	if width <= 0 || height <= 0 || size.Width <= 0 || size.Height <= 0 {
		return 0, 0, false
	}
	scale := size.Width / float32(width)
	if s := size.Height / float32(height); s < scale {
		scale = s
	}
	offX := (size.Width - float32(width)*scale) / 2
	offY := (size.Height - float32(height)*scale) / 2

	fx := (pos.X - offX) / scale
	fy := (pos.Y - offY) / scale
	if fx < 0 || fy < 0 {
		return 0, 0, false
	}
	x, y := int(fx), int(fy)
	if x >= width || y >= height {
		return 0, 0, false
	}
	return x, y, true
}
