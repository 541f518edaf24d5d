// Package inspector implements the per-window state machine: it owns the
// original and working images of one inspected image, applies user events
// to them and hands every result to a Renderer.
package inspector

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"image-inspector/internal/imaging"
)

var ErrNothingToUndo = errors.New("nothing to undo")

// State tracks whether the window has been drawn yet.
type State int

const (
	Uninitialized State = iota
	Rendered
)

func (s State) String() string {
	if s == Rendered {
		return "rendered"
	}
	return "uninitialized"
}

// PixelSample holds the samples under the cursor.
type PixelSample struct {
	X, Y     int
	Original []uint8
	Working  []uint8
}

// Controller is not safe for concurrent use; every method is expected to
// run on the UI event goroutine.
type Controller struct {
	id        int
	logger    logrus.FieldLogger
	converter Converter
	renderer  Renderer

	source   *imaging.Image
	original *imaging.Image
	working  *imaging.Image
	bounds   []imaging.Bounds
	history  *History
	state    State
}

// New validates img and builds a controller around a private copy of it.
func New(id int, img *imaging.Image, converter Converter, historyDepth int, logger logrus.FieldLogger) (*Controller, error) {
	if err := imaging.Validate(img); err != nil {
		return nil, err
	}
	if converter == nil {
		return nil, fmt.Errorf("inspector %d: converter is required", id)
	}

	c := &Controller{
		id:        id,
		logger:    logger.WithField("window", id),
		converter: converter,
		source:    img.Clone(),
		history:   NewHistory(historyDepth),
	}
	c.replaceOriginal(img.Clone())
	return c, nil
}

// SetRenderer attaches the view. Start must be called afterwards.
func (c *Controller) SetRenderer(r Renderer) {
	c.renderer = r
}

// Start builds the controls and draws the first frame.
func (c *Controller) Start() error {
	c.rebuild()
	return c.render()
}

func (c *Controller) ID() int                  { return c.id }
func (c *Controller) State() State             { return c.state }
func (c *Controller) Original() *imaging.Image { return c.original }
func (c *Controller) Working() *imaging.Image  { return c.working }
func (c *Controller) Channels() int            { return c.original.Channels }
func (c *Controller) CanUndo() bool            { return c.history.Len() > 0 }

// Bounds returns a copy of the per-channel bounds.
func (c *Controller) Bounds() []imaging.Bounds {
	out := make([]imaging.Bounds, len(c.bounds))
	copy(out, c.bounds)
	return out
}

// Dispatch routes an event to its handler.
func (c *Controller) Dispatch(ev Event) error {
	switch e := ev.(type) {
	case AdjustBound:
		return c.AdjustBound(e.Channel, e.Edge, e.Value)
	case ToggleChannel:
		return c.ToggleChannel(e.Channel, e.Enabled)
	case ResetToOriginal:
		return c.ResetToOriginal()
	case IsolateChannel:
		return c.IsolateChannel(e.Channel)
	case ConvertColorspace:
		return c.ConvertColorspace(e.Kind)
	case Undo:
		return c.Undo()
	case RestoreSource:
		return c.RestoreSource()
	default:
		return fmt.Errorf("inspector %d: unhandled event %T", c.id, ev)
	}
}

// AdjustBound moves one edge of a channel's bounds. The opposite edge is
// pulled along when needed so Lower never exceeds Upper.
func (c *Controller) AdjustBound(channel int, edge Edge, value int) error {
	if err := c.checkChannel(channel); err != nil {
		return err
	}

	b := c.bounds[channel]
	if edge == Upper {
		b = b.WithUpper(value)
	} else {
		b = b.WithLower(value)
	}

	c.logger.WithFields(logrus.Fields{
		"channel": channel,
		"edge":    edge.String(),
		"value":   value,
		"bounds":  b.String(),
	}).Debug("Adjusting channel bound")

	return c.applyBounds(channel, b)
}

// ToggleChannel switches a channel between the full range and nothing.
func (c *Controller) ToggleChannel(channel int, enabled bool) error {
	if err := c.checkChannel(channel); err != nil {
		return err
	}

	b := imaging.Disabled
	if enabled {
		b = imaging.FullRange
	}

	c.logger.WithFields(logrus.Fields{
		"channel": channel,
		"enabled": enabled,
	}).Debug("Toggling channel")

	return c.applyBounds(channel, b)
}

// ResetToOriginal drops every threshold and redraws the current original.
func (c *Controller) ResetToOriginal() error {
	c.logger.Info("Reset to original image")
	c.working = c.original.Clone()
	c.bounds = fullBounds(c.original.Channels)
	c.rebuild()
	return c.render()
}

// IsolateChannel replaces the original with one of its channels.
func (c *Controller) IsolateChannel(channel int) error {
	if err := c.checkChannel(channel); err != nil {
		return err
	}
	if c.original.Channels == 1 {
		return &imaging.ChannelCountMismatchError{
			Operation: "Inspect separately",
			Want:      []int{3, 4},
			Got:       1,
		}
	}

	isolated, err := c.original.Isolate(channel)
	if err != nil {
		return err
	}

	c.logger.WithField("channel", channel).Info("Inspecting channel separately")
	c.history.Push(c.original)
	return c.replaceAndRender(isolated)
}

// ConvertColorspace replaces the original with its conversion. On any
// failure the window keeps its current state.
func (c *Controller) ConvertColorspace(kind imaging.Conversion) error {
	if err := kind.Check(c.original); err != nil {
		c.logger.WithFields(logrus.Fields{
			"conversion": kind.String(),
			"channels":   c.original.Channels,
		}).Warn("Conversion rejected")
		return err
	}

	converted, err := c.converter.Convert(c.original, kind)
	if err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	if err := imaging.Validate(converted); err != nil {
		return fmt.Errorf("%s produced an invalid image: %w", kind, err)
	}
	if converted.Channels != kind.OutputChannels() ||
		converted.Width != c.original.Width || converted.Height != c.original.Height {
		return fmt.Errorf("%s produced %dx%dx%d, want %dx%dx%d", kind,
			converted.Width, converted.Height, converted.Channels,
			c.original.Width, c.original.Height, kind.OutputChannels())
	}

	c.logger.WithField("conversion", kind.String()).Info("Converted colorspace")
	c.history.Push(c.original)
	return c.replaceAndRender(converted)
}

// Undo restores the original replaced by the last isolate or conversion.
func (c *Controller) Undo() error {
	previous, ok := c.history.Pop()
	if !ok {
		return ErrNothingToUndo
	}
	c.logger.WithField("remaining", c.history.Len()).Info("Undo")
	return c.replaceAndRender(previous)
}

// RestoreSource returns to the image the window was opened with and forgets
// the history.
func (c *Controller) RestoreSource() error {
	c.logger.Info("Restoring source image")
	c.history.Clear()
	return c.replaceAndRender(c.source.Clone())
}

// Sample reads the original and working samples at (x, y).
func (c *Controller) Sample(x, y int) (PixelSample, error) {
	if x < 0 || y < 0 || x >= c.original.Width || y >= c.original.Height {
		return PixelSample{}, fmt.Errorf("pixel (%d, %d) outside %dx%d image", x, y, c.original.Width, c.original.Height)
	}
	channels := lo.Range(c.original.Channels)
	return PixelSample{
		X: x,
		Y: y,
		Original: lo.Map(channels, func(ch int, _ int) uint8 {
			return c.original.At(x, y, ch)
		}),
		Working: lo.Map(channels, func(ch int, _ int) uint8 {
			return c.working.At(x, y, ch)
		}),
	}, nil
}

func (c *Controller) checkChannel(channel int) error {
	if channel < 0 || channel >= c.original.Channels {
		return fmt.Errorf("inspector %d: %w: %d not in [0, %d)", c.id, imaging.ErrChannelOutOfRange, channel, c.original.Channels)
	}
	return nil
}

func (c *Controller) applyBounds(channel int, b imaging.Bounds) error {
	if err := imaging.ThresholdChannel(c.working, c.original, channel, b); err != nil {
		return err
	}
	c.bounds[channel] = b
	return c.render()
}

func (c *Controller) replaceOriginal(img *imaging.Image) {
	c.original = img
	c.working = img.Clone()
	c.bounds = fullBounds(img.Channels)
}

func (c *Controller) replaceAndRender(img *imaging.Image) error {
	c.replaceOriginal(img)
	c.rebuild()
	return c.render()
}

func (c *Controller) layout() Layout {
	return Layout{
		Width:       c.original.Width,
		Height:      c.original.Height,
		Channels:    c.original.Channels,
		Conversions: imaging.ConversionsFor(c.original.Channels),
		CanIsolate:  c.original.Channels > 1,
		CanUndo:     c.CanUndo(),
	}
}

func (c *Controller) rebuild() {
	if c.renderer != nil {
		c.renderer.Rebuild(c.layout())
	}
}

// render composes the working image and its channel previews.
func (c *Controller) render() error {
	start := time.Now()
	planes := c.working.Split()

	composite, err := imaging.Compose(planes, c.working.Width, c.working.Height)
	if err != nil {
		c.logger.WithError(err).Error("Failed to compose display buffer")
		return err
	}

	previews := make([]imaging.DisplayBuffer, len(planes))
	for i, plane := range planes {
		if previews[i], err = imaging.Compose([][]uint8{plane}, c.working.Width, c.working.Height); err != nil {
			return err
		}
	}

	frame := Frame{Composite: composite, Channels: previews, Bounds: c.Bounds()}
	if c.renderer != nil {
		if err := c.renderer.Render(frame); err != nil {
			return fmt.Errorf("inspector %d: render: %w", c.id, err)
		}
	}
	c.state = Rendered

	c.logger.WithFields(logrus.Fields{
		"channels": len(planes),
		"duration": time.Since(start),
	}).Debug("Rendered frame")
	return nil
}

func fullBounds(channels int) []imaging.Bounds {
	return lo.Times(channels, func(int) imaging.Bounds { return imaging.FullRange })
}
