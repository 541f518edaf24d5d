package opencv

import (
	"fmt"

	"gocv.io/x/gocv"

	"image-inspector/internal/imaging"
)

// ReadFile decodes a raster image keeping its channel count, including
// alpha. Samples come back in OpenCV order (BGR or BGRA).
func ReadFile(path string) (*imaging.Image, error) {
	mat := gocv.IMRead(path, gocv.IMReadUnchanged)
	defer mat.Close()

	if mat.Empty() {
		return nil, fmt.Errorf("failed to load image: %s", path)
	}

	img, err := FromMat(mat)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}
