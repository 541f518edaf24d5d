// Menu handler for application actions
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/sirupsen/logrus"

	"image-inspector/internal/imaging"
)

// MenuHandler handles menu actions
type MenuHandler struct {
	window fyne.Window
	loader ImageLoader
	logger logrus.FieldLogger

	onImageLoaded func(string, *imaging.Image)
	onError       func(string, error)
}

func NewMenuHandler(window fyne.Window, loader ImageLoader, logger logrus.FieldLogger) *MenuHandler {
	return &MenuHandler{
		window: window,
		loader: loader,
		logger: logger,
	}
}

func (mh *MenuHandler) SetCallbacks(onImageLoaded func(string, *imaging.Image), onError func(string, error)) {
	mh.onImageLoaded = onImageLoaded
	mh.onError = onError
}

func (mh *MenuHandler) GetMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", mh.openImage),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exit", func() {
			mh.window.Close()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mh.showAbout),
	)

	return fyne.NewMainMenu(fileMenu, helpMenu)
}

func (mh *MenuHandler) openImage() {
	mh.logger.Info("Opening file dialog for image selection")

	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mh.fail("File Dialog Error", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		mh.logger.WithField("filepath", path).Info("Loading selected image")

		// Decoding can take a while for large files; keep it off the UI
		// goroutine and hop back for the result.
		go func() {
			img, err := mh.loader.LoadImage(path)
			if err == nil {
				err = imaging.Validate(img)
			}
			fyne.Do(func() {
				if err != nil {
					mh.fail("Failed to Load Image", err)
					return
				}
				if mh.onImageLoaded != nil {
					mh.onImageLoaded(path, img)
				}
			})
		}()
	}, mh.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(mh.loader.SupportedExtensions()))
	fileDialog.Show()
}

func (mh *MenuHandler) fail(title string, err error) {
	if mh.onError != nil {
		mh.onError(title, err)
	}
}

func (mh *MenuHandler) showAbout() {
	dialog.ShowInformation("About Image Explorer",
		"Inspect multi-channel images channel by channel.\n\n"+
			"• Threshold each channel with [lower, upper) bounds\n"+
			"• Convert BGR/RGB/HSV/gray and drop alpha\n"+
			"• Inspect a single channel separately, then undo",
		mh.window)
}
