package media

import (
	"image"
	"image/color"
	"strings"

	"gocv.io/x/gocv"

	"github.com/ayusman/memecam/internal/gesture"
)

// PlaceholderSize is the edge length in pixels of a generated placeholder.
const PlaceholderSize = 400

const (
	placeholderFont      = gocv.FontHersheySimplex
	placeholderScale     = 1.0
	placeholderThickness = 3
)

// Fill colors in BGR order.
var placeholderColors = map[gesture.Label]gocv.Scalar{
	gesture.LabelJijija:   gocv.NewScalar(0, 165, 255, 0),   // orange
	gesture.LabelMimimi:   gocv.NewScalar(203, 192, 255, 0), // pink
	gesture.LabelSixSeven: gocv.NewScalar(255, 144, 30, 0),  // blue
	gesture.LabelCerrao:   gocv.NewScalar(147, 20, 255, 0),  // purple
	gesture.LabelTimeout:  gocv.NewScalar(0, 255, 255, 0),
	gesture.LabelThinking: gocv.NewScalar(255, 200, 0, 0),
	gesture.LabelNone:     gocv.NewScalar(128, 128, 128, 0), // gray
}

var defaultPlaceholderColor = gocv.NewScalar(255, 255, 255, 0)

// PlaceholderColor returns the fill color used for a label's placeholder.
func PlaceholderColor(label gesture.Label) gocv.Scalar {
	if c, ok := placeholderColors[label]; ok {
		return c
	}
	return defaultPlaceholderColor
}

// PlaceholderText is the caption drawn on a placeholder.
func PlaceholderText(label gesture.Label) string {
	return strings.ReplaceAll(strings.ToUpper(string(label)), "_", " ")
}

// Placeholder draws the stand-in image for a label whose media file is
// missing: a solid square in the label color with the caption centered in
// black. The output depends only on the label. The caller owns the Mat.
func Placeholder(label gesture.Label) gocv.Mat {
	img := gocv.NewMatWithSizeFromScalar(PlaceholderColor(label), PlaceholderSize, PlaceholderSize, gocv.MatTypeCV8UC3)

	text := PlaceholderText(label)
	size := gocv.GetTextSize(text, placeholderFont, placeholderScale, placeholderThickness)
	org := image.Pt((PlaceholderSize-size.X)/2, (PlaceholderSize+size.Y)/2)

	gocv.PutTextWithParams(&img, text, org, placeholderFont, placeholderScale,
		color.RGBA{A: 255}, placeholderThickness, gocv.LineAA, false)

	return img
}
