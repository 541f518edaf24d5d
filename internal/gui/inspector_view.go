// Fyne view for one inspected image: composite plot, channel tabs and
// pixel readout. Implements inspector.Renderer.
package gui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"image-inspector/internal/config"
	"image-inspector/internal/imaging"
	"image-inspector/internal/inspector"
)

type channelControls struct {
	enable     *widget.Check
	upper      *widget.Slider
	lower      *widget.Slider
	upperLabel *widget.Label
	lowerLabel *widget.Label
	preview    *canvas.Image
}

// InspectorView renders one controller and turns widget callbacks into
// controller events.
type InspectorView struct {
	name       string
	controller *inspector.Controller
	window     fyne.Window
	cfg        config.ViewConfig
	logger     logrus.FieldLogger

	card       *widget.Card
	plot       *ImageView
	properties *fyne.Container
	readout    *widget.Label
	status     *widget.Label
	channels   []*channelControls

	// set while the view pushes controller state into widgets, so the
	// resulting OnChanged callbacks are not fed back as user events
	syncing bool
}

var _ inspector.Renderer = (*InspectorView)(nil)

func NewInspectorView(name string, controller *inspector.Controller, window fyne.Window, cfg config.ViewConfig, logger logrus.FieldLogger) *InspectorView {
	v := &InspectorView{
		name:       name,
		controller: controller,
		window:     window,
		cfg:        cfg,
		logger:     logger.WithField("view", name),
	}
	v.initializeUI()
	return v
}

func (v *InspectorView) initializeUI() {
	v.plot = NewImageView(fyne.NewSize(float32(v.cfg.PlotSize), float32(v.cfg.PlotSize)))
	v.readout = widget.NewLabel("")
	v.status = widget.NewLabel("")
	v.properties = container.NewVBox()

	v.plot.OnHover = v.onHover
	v.plot.OnLeave = func() { v.readout.SetText("") }

	body := container.NewBorder(
		nil,
		container.NewVBox(v.readout, v.status),
		nil,
		nil,
		container.NewHBox(v.plot, container.NewVScroll(v.properties)),
	)
	v.card = widget.NewCard(v.name, "", body)
}

func (v *InspectorView) GetContainer() fyne.CanvasObject {
	return v.card
}

// Rebuild recreates the properties panel for a new original image.
func (v *InspectorView) Rebuild(layout inspector.Layout) {
	w, h := imaging.FitSize(layout.Width, layout.Height, v.cfg.PlotSize)
	v.plot.SetMinSize(fyne.NewSize(float32(w), float32(h)))
	v.card.SetSubTitle(fmt.Sprintf("%dx%d, %d channel(s)", layout.Width, layout.Height, layout.Channels))

	v.properties.RemoveAll()
	v.properties.Add(v.buildActions(layout))

	v.channels = make([]*channelControls, layout.Channels)
	tabs := container.NewAppTabs()
	for n := 0; n < layout.Channels; n++ {
		cc, content := v.buildChannelTab(n, layout)
		v.channels[n] = cc
		tabs.Append(container.NewTabItem(fmt.Sprintf("Channel %d", n), content))
	}
	v.properties.Add(tabs)
	v.properties.Refresh()

	v.logger.WithField("channels", layout.Channels).Debug("Rebuilt properties panel")
}

func (v *InspectorView) buildActions(layout inspector.Layout) fyne.CanvasObject {
	actions := container.NewHBox(
		widget.NewButton("Reset original", func() { v.dispatch(inspector.ResetToOriginal{}) }),
	)
	for _, kind := range layout.Conversions {
		actions.Add(widget.NewButton(kind.String(), func() {
			v.dispatch(inspector.ConvertColorspace{Kind: kind})
		}))
	}

	history := container.NewHBox()
	if layout.CanUndo {
		history.Add(widget.NewButton("Undo", func() { v.dispatch(inspector.Undo{}) }))
	}
	history.Add(widget.NewButton("Restore source", func() { v.dispatch(inspector.RestoreSource{}) }))

	return container.NewVBox(actions, history)
}

func (v *InspectorView) buildChannelTab(n int, layout inspector.Layout) (*channelControls, fyne.CanvasObject) {
	cc := &channelControls{
		enable:     widget.NewCheck("Enable channel", nil),
		upper:      widget.NewSlider(0, imaging.MaxUpper),
		lower:      widget.NewSlider(0, imaging.MaxLower),
		upperLabel: widget.NewLabel(""),
		lowerLabel: widget.NewLabel(""),
		preview:    canvas.NewImageFromImage(nil),
	}
	cc.upper.Step = 1
	cc.lower.Step = 1
	cc.enable.Checked = true
	cc.upper.Value = imaging.MaxUpper
	cc.lower.Value = 0
	setBoundLabels(cc, imaging.FullRange)

	cc.preview.FillMode = canvas.ImageFillContain
	cc.preview.ScaleMode = canvas.ImageScalePixels
	tw, th := imaging.FitSize(layout.Width, layout.Height, v.cfg.ThumbnailWidth)
	cc.preview.SetMinSize(fyne.NewSize(float32(tw), float32(th)))

	cc.enable.OnChanged = func(on bool) {
		if v.syncing {
			return
		}
		v.dispatch(inspector.ToggleChannel{Channel: n, Enabled: on})
	}
	cc.upper.OnChanged = func(value float64) {
		if v.syncing {
			return
		}
		v.dispatch(inspector.AdjustBound{Channel: n, Edge: inspector.Upper, Value: int(value)})
	}
	cc.lower.OnChanged = func(value float64) {
		if v.syncing {
			return
		}
		v.dispatch(inspector.AdjustBound{Channel: n, Edge: inspector.Lower, Value: int(value)})
	}

	content := container.NewVBox(
		cc.enable,
		cc.upperLabel, cc.upper,
		cc.lowerLabel, cc.lower,
		cc.preview,
	)
	if layout.CanIsolate {
		content.Add(widget.NewButton("Inspect separately", func() {
			v.dispatch(inspector.IsolateChannel{Channel: n})
		}))
	}
	return cc, content
}

// Render draws a frame and brings the sliders in line with the bounds the
// controller settled on.
func (v *InspectorView) Render(frame inspector.Frame) error {
	if len(frame.Bounds) != len(v.channels) || len(frame.Channels) != len(v.channels) {
		return fmt.Errorf("view has %d channel tabs, frame has %d", len(v.channels), len(frame.Bounds))
	}

	v.plot.SetImage(frame.Composite.NRGBA())

	v.syncing = true
	defer func() { v.syncing = false }()
	for i, cc := range v.channels {
		cc.preview.Image = imaging.Thumbnail(frame.Channels[i].NRGBA(), v.cfg.ThumbnailWidth)
		cc.preview.Refresh()
		syncBounds(cc, frame.Bounds[i])
	}
	return nil
}

func syncBounds(cc *channelControls, b imaging.Bounds) {
	if int(cc.upper.Value) != b.Upper {
		cc.upper.SetValue(float64(b.Upper))
	}
	if int(cc.lower.Value) != b.Lower {
		cc.lower.SetValue(float64(b.Lower))
	}
	if b == imaging.FullRange && !cc.enable.Checked {
		cc.enable.SetChecked(true)
	}
	setBoundLabels(cc, b)
}

func setBoundLabels(cc *channelControls, b imaging.Bounds) {
	cc.upperLabel.SetText(fmt.Sprintf("Upper thr (exclusive): %d", b.Upper))
	cc.lowerLabel.SetText(fmt.Sprintf("Lower thr: %d", b.Lower))
}

func (v *InspectorView) onHover(x, y int) {
	sample, err := v.controller.Sample(x, y)
	if err != nil {
		return
	}
	v.readout.SetText(fmt.Sprintf("(%d, %d)  original %v  filtered %v", sample.X, sample.Y, sample.Original, sample.Working))
}

func (v *InspectorView) dispatch(ev inspector.Event) {
	if err := v.controller.Dispatch(ev); err != nil {
		v.showError(err)
		return
	}
	v.status.SetText("")
}

func (v *InspectorView) showError(err error) {
	entry := v.logger.WithError(err)
	if errors.Is(err, imaging.ErrChannelCountMismatch) || errors.Is(err, inspector.ErrNothingToUndo) {
		entry.Warn("Action rejected")
	} else {
		entry.Error("Action failed")
	}
	v.status.SetText(fmt.Sprintf("❌ %s", err))
	if v.window != nil {
		dialog.ShowError(err, v.window)
	}
}
