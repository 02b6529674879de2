package media

import (
	"image"

	"gocv.io/x/gocv"
)

// ScaledSize fits a srcW x srcH image to targetH, keeping the aspect ratio.
// If the result would be wider than maxW it becomes maxW x targetH and the
// aspect ratio is not kept. The width is never less than one pixel.
func ScaledSize(srcW, srcH, targetH, maxW int) image.Point {
	if srcW <= 0 || srcH <= 0 || targetH <= 0 {
		return image.Point{}
	}
	w := int(float64(targetH) * float64(srcW) / float64(srcH))
	if maxW > 0 && w > maxW {
		return image.Pt(maxW, targetH)
	}
	if w < 1 {
		w = 1
	}
	return image.Pt(w, targetH)
}

// Scale returns a resized copy of src sized by ScaledSize. The caller owns
// the result.
func Scale(src gocv.Mat, targetH, maxW int) gocv.Mat {
	size := ScaledSize(src.Cols(), src.Rows(), targetH, maxW)
	if size.X <= 0 || size.Y <= 0 {
		return src.Clone()
	}
	dst := gocv.NewMat()
	gocv.Resize(src, &dst, size, 0, 0, gocv.InterpolationArea)
	return dst
}
