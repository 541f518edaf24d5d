// Image loading for the inspector: raster files through OpenCV, NumPy
// arrays through the npy reader.
package io

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"image-inspector/internal/imaging"
	"image-inspector/internal/npy"
	"image-inspector/internal/opencv"
)

var (
	rasterFormats = []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp", ".webp"}
	arrayFormats  = []string{".npy"}
)

// ImageLoader handles image file operations
type ImageLoader struct {
	logger logrus.FieldLogger
}

func NewImageLoader(logger logrus.FieldLogger) *ImageLoader {
	return &ImageLoader{
		logger: logger,
	}
}

func (il *ImageLoader) LoadImage(path string) (*imaging.Image, error) {
	il.logger.WithField("filepath", path).Debug("Loading image")

	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, fmt.Errorf("files without extension aren't supported: %s", path)
	}

	var (
		img *imaging.Image
		err error
	)
	switch {
	case lo.Contains(arrayFormats, ext):
		img, err = npy.ReadFile(path)
	case lo.Contains(rasterFormats, ext):
		img, err = opencv.ReadFile(path)
	default:
		return nil, fmt.Errorf("unsupported image format: %s", path)
	}
	if err != nil {
		return nil, err
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"width":    img.Width,
		"height":   img.Height,
		"channels": img.Channels,
	}).Info("Image loaded successfully")

	return img, nil
}

// LoadAll loads every path and validates the set before anything is shown.
func (il *ImageLoader) LoadAll(paths []string) ([]*imaging.Image, error) {
	images := make([]*imaging.Image, 0, len(paths))
	for _, path := range paths {
		img, err := il.LoadImage(path)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	if err := imaging.ValidateAll(images); err != nil {
		return nil, err
	}
	return images, nil
}

// SupportedExtensions lists every extension the loader accepts, for file
// dialog filters.
func (il *ImageLoader) SupportedExtensions() []string {
	return append(append([]string{}, rasterFormats...), arrayFormats...)
}
