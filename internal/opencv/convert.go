package opencv

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"image-inspector/internal/imaging"
)

var conversionCodes = map[imaging.Conversion]gocv.ColorConversionCode{
	imaging.BGRToRGB:  gocv.ColorBGRToRGB,
	imaging.RGBToHSV:  gocv.ColorRGBToHSV,
	imaging.RGBToGray: gocv.ColorRGBToGray,
	imaging.DropAlpha: gocv.ColorBGRAToBGR,
}

// Converter runs colorspace conversions through cv::cvtColor.
type Converter struct {
	logger logrus.FieldLogger
}

func NewConverter(logger logrus.FieldLogger) *Converter {
	return &Converter{logger: logger}
}

func (c *Converter) Convert(img *imaging.Image, kind imaging.Conversion) (*imaging.Image, error) {
	if err := kind.Check(img); err != nil {
		return nil, err
	}
	code, ok := conversionCodes[kind]
	if !ok {
		return nil, fmt.Errorf("no OpenCV code for %s", kind)
	}

	src, err := ToMat(img)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.CvtColor(src, &dst, code)
	if dst.Empty() {
		return nil, fmt.Errorf("cvtColor %s returned an empty image", kind)
	}

	out, err := FromMat(dst)
	if err != nil {
		return nil, fmt.Errorf("cvtColor %s: %w", kind, err)
	}

	c.logger.WithFields(logrus.Fields{
		"conversion": kind.String(),
		"width":      out.Width,
		"height":     out.Height,
		"channels":   out.Channels,
	}).Debug("Colorspace converted")
	return out, nil
}
