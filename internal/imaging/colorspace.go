package imaging

import "fmt"

// Conversion names one of the colorspace actions offered on an image.
type Conversion int

const (
	BGRToRGB Conversion = iota + 1
	RGBToHSV
	RGBToGray
	DropAlpha
)

var conversionSpecs = map[Conversion]struct {
	name   string
	input  int
	output int
}{
	BGRToRGB:  {"BGR to RGB", 3, 3},
	RGBToHSV:  {"RGB to HSV", 3, 3},
	RGBToGray: {"RGB to gray", 3, 1},
	DropAlpha: {"Remove alpha", 4, 3},
}

// Conversions lists every conversion in display order.
func Conversions() []Conversion {
	return []Conversion{BGRToRGB, RGBToHSV, RGBToGray, DropAlpha}
}

// ConversionsFor lists the conversions whose precondition a channels-deep
// image satisfies.
func ConversionsFor(channels int) []Conversion {
	var out []Conversion
	for _, c := range Conversions() {
		if c.InputChannels() == channels {
			out = append(out, c)
		}
	}
	return out
}

func (c Conversion) String() string {
	if spec, ok := conversionSpecs[c]; ok {
		return spec.name
	}
	return "unknown conversion"
}

// Valid reports whether c is a known conversion.
func (c Conversion) Valid() bool {
	_, ok := conversionSpecs[c]
	return ok
}

func (c Conversion) InputChannels() int  { return conversionSpecs[c].input }
func (c Conversion) OutputChannels() int { return conversionSpecs[c].output }

// Check verifies the channel-count precondition of c against img.
func (c Conversion) Check(img *Image) error {
	if !c.Valid() {
		return fmt.Errorf("unknown conversion %d", int(c))
	}
	if img.Channels != c.InputChannels() {
		return &ChannelCountMismatchError{
			Operation: c.String(),
			Want:      []int{c.InputChannels()},
			Got:       img.Channels,
		}
	}
	return nil
}
