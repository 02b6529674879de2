package gesture

// Classification thresholds, in normalized image units. These values were
// tuned by hand against a webcam at 640x480 and are reproduced as is.
const (
	// jijija
	MouthOpenMinHeight = 0.01
	MouthOpenMinWidth  = 0.005

	// thinking
	BelowNoseTolerance = 0.05
	ChinTouchDistance  = 0.18
	LipTouchDistance   = 0.16

	// timeout
	HorizontalMaxYSpread   = 0.15
	HorizontalMinXSpread   = 0.03
	VerticalMinWristOffset = 0.08
	VerticalMinYSpread     = 0.12
	HandsNearDistance      = 0.3
	TouchDistance          = 0.3
	CloseTouchDistance     = 0.2

	// sixseven
	BalanceMinWristGap = 0.3
)
