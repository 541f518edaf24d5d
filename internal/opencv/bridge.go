// Package opencv adapts gocv to the inspector's image buffers: file
// decoding and colorspace conversion both go through OpenCV.
package opencv

import (
	"fmt"

	"gocv.io/x/gocv"

	"image-inspector/internal/imaging"
)

var matTypes = map[int]gocv.MatType{
	1: gocv.MatTypeCV8UC1,
	3: gocv.MatTypeCV8UC3,
	4: gocv.MatTypeCV8UC4,
}

// ToMat copies img into a new Mat. The caller owns the Mat and must Close it.
func ToMat(img *imaging.Image) (gocv.Mat, error) {
	if err := imaging.Validate(img); err != nil {
		return gocv.NewMat(), err
	}
	mt := matTypes[img.Channels]

	data := make([]byte, len(img.Pix))
	copy(data, img.Pix)
	mat, err := gocv.NewMatFromBytes(img.Height, img.Width, mt, data)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("failed to create Mat %dx%dx%d: %w", img.Width, img.Height, img.Channels, err)
	}
	return mat, nil
}

// FromMat copies an 8-bit Mat into an image.
func FromMat(mat gocv.Mat) (*imaging.Image, error) {
	if mat.Empty() {
		return nil, &imaging.InputValidationError{Reason: "image is empty"}
	}

	channels := mat.Channels()
	if want, ok := matTypes[channels]; !ok || mat.Type() != want {
		return nil, &imaging.InputValidationError{
			Reason: fmt.Sprintf("images must be 8-bit with 1, 3 or 4 channels, got Mat type %v", mat.Type()),
		}
	}

	src := mat
	if !mat.IsContinuous() {
		src = mat.Clone()
		defer src.Close()
	}
	pix := make([]uint8, mat.Rows()*mat.Cols()*channels)
	copy(pix, src.ToBytes())

	return imaging.FromPix(mat.Cols(), mat.Rows(), channels, pix)
}
