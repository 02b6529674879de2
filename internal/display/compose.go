package display

import (
	"gocv.io/x/gocv"

	"github.com/ayusman/memecam/internal/media"
)

const font = gocv.FontHersheySimplex

// Compose places the meme frame to the right of the camera frame and draws
// the overlay on the camera half. The meme is scaled to the camera height and
// never wider than the camera. The caller owns the returned Mat.
func Compose(camera gocv.Mat, meme gocv.Mat, ov Overlay) gocv.Mat {
	scaled := media.Scale(meme, camera.Rows(), camera.Cols())
	defer scaled.Close()

	if scaled.Channels() == 1 {
		gocv.CvtColor(scaled, &scaled, gocv.ColorGrayToBGR)
	}

	out := gocv.NewMat()
	gocv.Hconcat(camera, scaled, &out)

	for _, l := range ov.Lines(camera.Rows()) {
		gocv.PutTextWithParams(&out, l.Text, l.Org, font, l.Scale, l.Color, l.Thickness, gocv.LineAA, false)
	}

	return out
}
