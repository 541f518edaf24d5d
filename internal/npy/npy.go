// Package npy reads NumPy .npy arrays of unsigned bytes into images.
package npy

import (
	"fmt"
	"io"
	"os"

	"github.com/sbinet/npyio"

	"image-inspector/internal/imaging"
)

var byteTypes = map[string]bool{"|u1": true, "<u1": true, ">u1": true, "u1": true}

// Decode reads a C-ordered uint8 array of shape (H, W) or (H, W, C).
func Decode(r io.Reader) (*imaging.Image, error) {
	rd, err := npyio.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read npy header: %w", err)
	}

	descr := rd.Header.Descr
	if !byteTypes[descr.Type] {
		return nil, &imaging.InputValidationError{
			Reason: fmt.Sprintf("images must be type of uint8, got %s", descr.Type),
		}
	}
	if descr.Fortran {
		return nil, &imaging.InputValidationError{Reason: "fortran-ordered arrays are not supported"}
	}

	var height, width, channels int
	switch shape := descr.Shape; len(shape) {
	case 2:
		height, width, channels = shape[0], shape[1], 1
	case 3:
		height, width, channels = shape[0], shape[1], shape[2]
	default:
		return nil, &imaging.InputValidationError{
			Reason: fmt.Sprintf("images must have 2 or 3 dimensions, got %d", len(shape)),
		}
	}

	var pix []uint8
	if err := rd.Read(&pix); err != nil {
		return nil, fmt.Errorf("failed to read npy data: %w", err)
	}
	return imaging.FromPix(width, height, channels, pix)
}

// ReadFile decodes the .npy file at path.
func ReadFile(path string) (*imaging.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}
