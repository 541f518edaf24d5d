package inspector

import "image-inspector/internal/imaging"

// Frame is everything one redraw needs.
type Frame struct {
	Composite imaging.DisplayBuffer
	Channels  []imaging.DisplayBuffer
	Bounds    []imaging.Bounds
}

// Layout describes the controls the properties panel should offer for the
// current original image. It changes only when the original is replaced.
type Layout struct {
	Width       int
	Height      int
	Channels    int
	Conversions []imaging.Conversion
	CanIsolate  bool
	CanUndo     bool
}

// Renderer is the rendering backend boundary.
type Renderer interface {
	Render(frame Frame) error
	Rebuild(layout Layout)
}

// Converter performs colorspace conversions. Implementations may assume
// the channel-count precondition has already been checked.
type Converter interface {
	Convert(img *imaging.Image, kind imaging.Conversion) (*imaging.Image, error)
}
