package imaging

import "fmt"

const (
	MaxLower = 255
	MaxUpper = 256
)

// Bounds is a half-open intensity window: a sample v survives thresholding
// when Lower <= v < Upper. Upper may reach 256 so that every 8-bit value
// fits inside the full range.
type Bounds struct {
	Lower int
	Upper int
}

var (
	FullRange = Bounds{Lower: 0, Upper: MaxUpper}
	Disabled  = Bounds{Lower: 0, Upper: 0}
)

func (b Bounds) Validate() error {
	if b.Lower < 0 || b.Lower > MaxLower || b.Upper < 0 || b.Upper > MaxUpper || b.Lower > b.Upper {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidBounds, b.Lower, b.Upper)
	}
	return nil
}

func (b Bounds) Contains(v uint8) bool {
	return int(v) >= b.Lower && int(v) < b.Upper
}

// IsFull reports whether the bounds let every sample through.
func (b Bounds) IsFull() bool {
	return b.Lower == 0 && b.Upper == MaxUpper
}

// WithLower moves the lower edge, dragging the upper edge along when the
// new value would cross it.
func (b Bounds) WithLower(v int) Bounds {
	v = clamp(v, 0, MaxLower)
	b.Lower = v
	if b.Upper < v {
		b.Upper = v
	}
	return b
}

// WithUpper moves the upper edge, dragging the lower edge along when the
// new value would cross it.
func (b Bounds) WithUpper(v int) Bounds {
	v = clamp(v, 0, MaxUpper)
	b.Upper = v
	if b.Lower > v {
		b.Lower = v
	}
	return b
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d, %d)", b.Lower, b.Upper)
}

// Threshold returns a copy of src where samples outside b are zeroed.
func Threshold(src []uint8, b Bounds) ([]uint8, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	dst := make([]uint8, len(src))
	if b.IsFull() {
		copy(dst, src)
		return dst, nil
	}
	for i, v := range src {
		if b.Contains(v) {
			dst[i] = v
		}
	}
	return dst, nil
}

// ThresholdChannel recomputes channel c of dst from the same channel of src.
// Both images must share a shape.
func ThresholdChannel(dst, src *Image, c int, b Bounds) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if dst.Width != src.Width || dst.Height != src.Height || dst.Channels != src.Channels {
		return fmt.Errorf("threshold: shape mismatch %dx%dx%d vs %dx%dx%d",
			dst.Width, dst.Height, dst.Channels, src.Width, src.Height, src.Channels)
	}
	if err := src.checkChannel(c); err != nil {
		return err
	}
	for i := c; i < len(src.Pix); i += src.Channels {
		v := src.Pix[i]
		if b.Contains(v) {
			dst.Pix[i] = v
		} else {
			dst.Pix[i] = 0
		}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
