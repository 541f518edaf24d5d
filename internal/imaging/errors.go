package imaging

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput            = errors.New("invalid input image")
	ErrChannelCountMismatch    = errors.New("channel count mismatch")
	ErrUnsupportedChannelCount = errors.New("unsupported channel count")
	ErrInvalidBounds           = errors.New("invalid threshold bounds")
	ErrChannelOutOfRange       = errors.New("channel index out of range")
)

// InputValidationError reports an image rejected before any window exists.
// Index is the 1-based position of the image in the input list, or 0 when
// the image was validated on its own.
type InputValidationError struct {
	Index  int
	Reason string
}

func (e *InputValidationError) Error() string {
	if e.Index > 0 {
		return fmt.Sprintf("image %d: %s", e.Index, e.Reason)
	}
	return e.Reason
}

func (e *InputValidationError) Unwrap() error { return ErrInvalidInput }

// ChannelCountMismatchError is returned when an operation requires a
// specific channel count the current image does not have.
type ChannelCountMismatchError struct {
	Operation string
	Want      []int
	Got       int
}

func (e *ChannelCountMismatchError) Error() string {
	want := make([]string, len(e.Want))
	for i, w := range e.Want {
		want[i] = fmt.Sprint(w)
	}
	return fmt.Sprintf("%s: expected %s channels, got %d", e.Operation, strings.Join(want, " or "), e.Got)
}

func (e *ChannelCountMismatchError) Unwrap() error { return ErrChannelCountMismatch }

// UnsupportedChannelCountError is raised by the composer for channel
// counts outside {1, 3, 4}.
type UnsupportedChannelCountError struct {
	Got int
}

func (e *UnsupportedChannelCountError) Error() string {
	return fmt.Sprintf("unexpected image with %d channels", e.Got)
}

func (e *UnsupportedChannelCountError) Unwrap() error { return ErrUnsupportedChannelCount }
