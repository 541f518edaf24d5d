// Main application window hosting one inspector pane per image
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"image-inspector/internal/config"
	"image-inspector/internal/imaging"
	"image-inspector/internal/inspector"
)

// ImageLoader is what the File menu needs to open images.
type ImageLoader interface {
	LoadImage(path string) (*imaging.Image, error)
	SupportedExtensions() []string
}

// Application owns the main window and every inspector pane in it.
type Application struct {
	app       fyne.App
	window    fyne.Window
	logger    logrus.FieldLogger
	cfg       config.Config
	converter inspector.Converter

	views       []*InspectorView
	menuHandler *MenuHandler

	selector   *fyne.Container
	panes      *fyne.Container
	statusCard *widget.Card
}

func NewApplication(app fyne.App, cfg config.Config, loader ImageLoader, converter inspector.Converter, logger logrus.FieldLogger) *Application {
	window := app.NewWindow("Image Explorer")
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()

	a := &Application{
		app:       app,
		window:    window,
		logger:    logger,
		cfg:       cfg,
		converter: converter,
	}
	a.menuHandler = NewMenuHandler(window, loader, logger)
	a.setupLayout()
	a.setupCallbacks()
	return a
}

func (a *Application) setupLayout() {
	a.selector = container.NewHBox(widget.NewLabel("Show:"))
	a.panes = container.NewHBox()
	a.statusCard = widget.NewCard("", "", widget.NewLabel("Use File → Open Image… to add an image"))

	content := container.NewBorder(
		a.selector,
		a.statusCard,
		nil,
		nil,
		container.NewScroll(a.panes),
	)

	a.window.SetMainMenu(a.menuHandler.GetMainMenu())
	a.window.SetContent(content)
}

func (a *Application) setupCallbacks() {
	a.menuHandler.SetCallbacks(
		// onImageLoaded
		func(path string, img *imaging.Image) {
			if err := a.AddImage(path, img); err != nil {
				a.showError("Failed to open image", err)
				return
			}
			a.updateStatusMessage(fmt.Sprintf("✅ Loaded: %s", path))
		},
		// onError
		func(title string, err error) {
			a.showError(title, err)
		},
	)
}

// AddImage creates a controller and its pane. Only the first pane starts
// visible; the selector checkboxes show the others.
func (a *Application) AddImage(name string, img *imaging.Image) error {
	id := len(a.views)
	logger := a.logger.WithField("image", name)

	controller, err := inspector.New(id, img, a.converter, a.cfg.History.Depth, logger)
	if err != nil {
		return err
	}

	view := NewInspectorView(fmt.Sprintf("%d: %s", id, name), controller, a.window, a.cfg.View, logger)
	controller.SetRenderer(view)
	if err := controller.Start(); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	pane := view.GetContainer()
	visible := id == 0
	if !visible {
		pane.Hide()
	}
	a.views = append(a.views, view)
	a.panes.Add(pane)

	toggle := widget.NewCheck(fmt.Sprint(id), func(on bool) {
		if on {
			pane.Show()
		} else {
			pane.Hide()
		}
		a.panes.Refresh()
	})
	toggle.Checked = visible
	a.selector.Add(toggle)

	a.logger.WithFields(logrus.Fields{
		"window":   id,
		"image":    name,
		"width":    img.Width,
		"height":   img.Height,
		"channels": img.Channels,
	}).Info("Inspector window created")
	return nil
}

func (a *Application) updateStatusMessage(message string) {
	if a.statusCard != nil {
		a.statusCard.SetContent(widget.NewLabel(message))
	}
}

func (a *Application) ShowAndRun() {
	a.logger.Info("Showing main application window")
	if len(a.views) > 0 {
		a.updateStatusMessage(fmt.Sprintf("%d image(s) loaded", len(a.views)))
	}
	a.window.ShowAndRun()
}

func (a *Application) showError(title string, err error) {
	a.logger.WithError(err).Error(title)
	dialog.ShowError(err, a.window)
	a.updateStatusMessage(fmt.Sprintf("❌ Error: %s", err.Error()))
}
