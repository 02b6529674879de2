package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	obs    Observation
	err    error
	calls  int
	closed bool
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.obs.Hands = hands
}

// SetFace sets the face that will be returned by Detect. Nil means no face.
func (m *MockDetector) SetFace(face *FaceLandmarks) {
	m.obs.Face = face
}

// SetObservation replaces both hands and face.
func (m *MockDetector) SetObservation(obs Observation) {
	m.obs = obs
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured observation or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (Observation, error) {
	m.calls++
	if m.err != nil {
		return Observation{}, m.err
	}
	return m.obs, nil
}

// Calls returns how many times Detect was invoked.
func (m *MockDetector) Calls() int {
	return m.calls
}

// Closed reports whether Close was called.
func (m *MockDetector) Closed() bool {
	return m.closed
}

// Close marks the detector closed.
func (m *MockDetector) Close() error {
	m.closed = true
	return nil
}

// FistLandmarks returns a preset HandLandmarks with every finger curled:
// each fingertip sits below its PIP joint.
func FistLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb folded across the front of the fingers
	landmarks.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.76, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.57, Y: 0.72, Z: -0.02}
	landmarks.Points[ThumbIP] = Point3D{X: 0.55, Y: 0.70, Z: -0.04}
	landmarks.Points[ThumbTip] = Point3D{X: 0.52, Y: 0.70, Z: -0.05}

	landmarks.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.70, Z: -0.02}
	landmarks.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.68, Z: -0.05}
	landmarks.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.70, Z: -0.04}
	landmarks.Points[IndexTip] = Point3D{X: 0.50, Y: 0.72, Z: -0.02}

	landmarks.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.68, Z: -0.02}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.66, Z: -0.05}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.47, Y: 0.68, Z: -0.04}
	landmarks.Points[MiddleTip] = Point3D{X: 0.45, Y: 0.70, Z: -0.02}

	landmarks.Points[RingMCP] = Point3D{X: 0.45, Y: 0.70, Z: -0.02}
	landmarks.Points[RingPIP] = Point3D{X: 0.45, Y: 0.68, Z: -0.05}
	landmarks.Points[RingDIP] = Point3D{X: 0.42, Y: 0.70, Z: -0.04}
	landmarks.Points[RingTip] = Point3D{X: 0.40, Y: 0.72, Z: -0.02}

	landmarks.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.72, Z: -0.02}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.70, Z: -0.05}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.37, Y: 0.72, Z: -0.04}
	landmarks.Points[PinkyTip] = Point3D{X: 0.35, Y: 0.74, Z: -0.02}

	return landmarks
}

// PointingLandmarks returns a preset HandLandmarks with only the index finger
// extended straight up. The index tip is at (0.58, 0.35).
func PointingLandmarks() HandLandmarks {
	landmarks := FistLandmarks()

	landmarks.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	return landmarks
}

// OpenPalmLandmarks returns a preset HandLandmarks representing an open palm gesture.
// All fingers are extended outward.
func OpenPalmLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	// Wrist at base
	landmarks.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb extended to the side
	landmarks.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	landmarks.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.65, Z: 0.03}
	landmarks.Points[ThumbTip] = Point3D{X: 0.73, Y: 0.60, Z: 0.03}

	// Index finger extended upward
	landmarks.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	// Middle finger extended upward (slightly longer)
	landmarks.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28, Z: 0.0}

	// Ring finger extended upward
	landmarks.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	landmarks.Points[RingPIP] = Point3D{X: 0.43, Y: 0.55, Z: 0.0}
	landmarks.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45, Z: 0.0}
	landmarks.Points[RingTip] = Point3D{X: 0.42, Y: 0.35, Z: 0.0}

	// Pinky finger extended upward
	landmarks.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.60, Z: 0.0}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.50, Z: 0.0}
	landmarks.Points[PinkyTip] = Point3D{X: 0.34, Y: 0.42, Z: 0.0}

	return landmarks
}

// FlatHandLandmarks returns a hand held sideways with the fingers pointing
// left and tilted slightly up. The wrist is level with the fingertips, so the
// hand reads as horizontal and not vertical.
func FlatHandLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Left",
		Score:      0.93,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.50, Y: 0.50, Z: 0.0}

	landmarks.Points[ThumbCMC] = Point3D{X: 0.47, Y: 0.45, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.44, Y: 0.43, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: 0.41, Y: 0.42, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: 0.38, Y: 0.41, Z: 0.0}

	landmarks.Points[IndexMCP] = Point3D{X: 0.42, Y: 0.470, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.36, Y: 0.465, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.33, Y: 0.462, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.30, Y: 0.460, Z: 0.0}

	landmarks.Points[MiddleMCP] = Point3D{X: 0.42, Y: 0.500, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.35, Y: 0.495, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.31, Y: 0.492, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: 0.28, Y: 0.490, Z: 0.0}

	landmarks.Points[RingMCP] = Point3D{X: 0.42, Y: 0.530, Z: 0.0}
	landmarks.Points[RingPIP] = Point3D{X: 0.36, Y: 0.525, Z: 0.0}
	landmarks.Points[RingDIP] = Point3D{X: 0.33, Y: 0.522, Z: 0.0}
	landmarks.Points[RingTip] = Point3D{X: 0.30, Y: 0.520, Z: 0.0}

	landmarks.Points[PinkyMCP] = Point3D{X: 0.43, Y: 0.560, Z: 0.0}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.38, Y: 0.555, Z: 0.0}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.552, Z: 0.0}
	landmarks.Points[PinkyTip] = Point3D{X: 0.33, Y: 0.550, Z: 0.0}

	return landmarks
}

// FaceAt returns a face mesh whose upper lip sits at (x, y). Only the mouth
// and chin landmarks are populated. An open mouth has a 0.03 lip gap, a
// closed one 0.005; the mouth is 0.1 wide either way.
func FaceAt(x, y float64, mouthOpen bool) *FaceLandmarks {
	gap := 0.005
	if mouthOpen {
		gap = 0.03
	}

	face := &FaceLandmarks{}
	face.Points[UpperLip] = Point3D{X: x, Y: y}
	face.Points[LowerLip] = Point3D{X: x, Y: y + gap}
	face.Points[MouthCornerLeft] = Point3D{X: x - 0.05, Y: y + gap/2}
	face.Points[MouthCornerRight] = Point3D{X: x + 0.05, Y: y + gap/2}
	face.Points[Chin] = Point3D{X: x, Y: y + 0.07}
	face.Points[ChinBottom] = Point3D{X: x, Y: y + 0.11}

	return face
}
