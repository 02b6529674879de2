// Package detector provides hand and face landmark types and the perception
// interface that produces them.
package detector

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Face mesh landmark indices consulted by the classifier.
// The mesh is produced with refined landmarks enabled (468 + 10 iris points).
const (
	UpperLip         = 13
	LowerLip         = 14
	Chin             = 18
	MouthCornerLeft  = 61
	MouthCornerRight = 84
	ChinBottom       = 175

	NumFaceLandmarks = 478
)

// Point3D is a landmark in normalized image coordinates: x and y in [0,1]
// with the origin at the top-left and y growing downward. Z is relative depth
// as reported by MediaPipe and is not used for classification.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected by MediaPipe.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// FaceLandmarks holds one face mesh.
type FaceLandmarks struct {
	Points [NumFaceLandmarks]Point3D `json:"points"`
}

// Observation is everything perception reported for a single frame.
// Hands are in the order perception returned them; the order says nothing
// about left and right. Face is nil when no face was found.
type Observation struct {
	Hands []HandLandmarks `json:"hands"`
	Face  *FaceLandmarks  `json:"face,omitempty"`
}

// Empty reports whether nothing was detected.
func (o Observation) Empty() bool {
	return len(o.Hands) == 0 && o.Face == nil
}

// Translate returns a copy of the hand moved by (dx, dy) in normalized units.
func (h HandLandmarks) Translate(dx, dy float64) HandLandmarks {
	for i := range h.Points {
		h.Points[i].X += dx
		h.Points[i].Y += dy
	}
	return h
}
