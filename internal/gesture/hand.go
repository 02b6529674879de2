package gesture

import (
	"math"

	"github.com/ayusman/memecam/internal/detector"
)

// Finger identifies one of the four non-thumb fingers.
type Finger int

const (
	Index Finger = iota
	Middle
	Ring
	Pinky
)

// joints lists tip, PIP and MCP landmark indices per finger.
var joints = [...][3]int{
	Index:  {detector.IndexTip, detector.IndexPIP, detector.IndexMCP},
	Middle: {detector.MiddleTip, detector.MiddlePIP, detector.MiddleMCP},
	Ring:   {detector.RingTip, detector.RingPIP, detector.RingMCP},
	Pinky:  {detector.PinkyTip, detector.PinkyPIP, detector.PinkyMCP},
}

var fingertips = [...]int{detector.IndexTip, detector.MiddleTip, detector.RingTip, detector.PinkyTip}

// Extended reports whether the finger points up with tip above PIP above MCP.
// The thumb is never considered.
func Extended(h *detector.HandLandmarks, f Finger) bool {
	j := joints[f]
	return h.Points[j[0]].Y < h.Points[j[1]].Y && h.Points[j[1]].Y < h.Points[j[2]].Y
}

// Raised is the looser check used by the two-hand rules: tip above PIP only.
func Raised(h *detector.HandLandmarks, f Finger) bool {
	j := joints[f]
	return h.Points[j[0]].Y < h.Points[j[1]].Y
}

// ExtendedFingers returns the fingers passing Extended, in index..pinky order.
func ExtendedFingers(h *detector.HandLandmarks) []Finger {
	var out []Finger
	for f := Index; f <= Pinky; f++ {
		if Extended(h, f) {
			out = append(out, f)
		}
	}
	return out
}

// RaisedCount counts how many of the given fingers pass Raised.
func RaisedCount(h *detector.HandLandmarks, fingers ...Finger) int {
	n := 0
	for _, f := range fingers {
		if Raised(h, f) {
			n++
		}
	}
	return n
}

var allFingers = []Finger{Index, Middle, Ring, Pinky}

// HandShape summarizes the fingertip spread of one hand for the T-sign test.
type HandShape struct {
	YSpread    float64
	XSpread    float64
	WristDist  float64 // |wrist.y - mean fingertip y|
	Center     detector.Point3D
	Horizontal bool
	Vertical   bool
}

// DescribeHand computes the spread metrics and orientation flags of a hand.
// Horizontal and Vertical are independent and may both be set.
func DescribeHand(h *detector.HandLandmarks) HandShape {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	var sumX, sumY float64
	for _, idx := range fingertips {
		p := h.Points[idx]
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(fingertips))
	meanX, meanY := sumX/n, sumY/n
	wrist := h.Points[detector.Wrist]

	s := HandShape{
		YSpread:   maxY - minY,
		XSpread:   maxX - minX,
		WristDist: math.Abs(wrist.Y - meanY),
		Center:    detector.Point3D{X: (wrist.X + meanX) / 2, Y: (wrist.Y + meanY) / 2},
	}
	s.Horizontal = s.YSpread < HorizontalMaxYSpread || s.XSpread > HorizontalMinXSpread
	s.Vertical = s.WristDist > VerticalMinWristOffset || s.YSpread > VerticalMinYSpread
	return s
}

// CenterDistance is the straight-line distance between two hand centers.
func CenterDistance(a, b HandShape) float64 {
	return distance(a.Center, b.Center)
}

// palm is the midpoint between the wrist and the middle finger MCP.
func palm(h *detector.HandLandmarks) detector.Point3D {
	w, m := h.Points[detector.Wrist], h.Points[detector.MiddleMCP]
	return detector.Point3D{X: (w.X + m.X) / 2, Y: (w.Y + m.Y) / 2}
}

// distance is the 2D Euclidean distance; depth is ignored.
func distance(a, b detector.Point3D) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// MouthOpening returns the lip gap and the mouth-corner span of a face.
func MouthOpening(face *detector.FaceLandmarks) (height, width float64) {
	height = math.Abs(face.Points[detector.UpperLip].Y - face.Points[detector.LowerLip].Y)
	width = math.Abs(face.Points[detector.MouthCornerRight].X - face.Points[detector.MouthCornerLeft].X)
	return height, width
}
