package gesture

import (
	"math"

	"github.com/ayusman/memecam/internal/detector"
)

// input is the read-only view every rule sees for one frame.
type input struct {
	hands []detector.HandLandmarks
	face  *detector.FaceLandmarks
}

// primary returns the first reported hand, or nil.
func (in *input) primary() *detector.HandLandmarks {
	if len(in.hands) == 0 {
		return nil
	}
	return &in.hands[0]
}

func (in *input) pair() (*detector.HandLandmarks, *detector.HandLandmarks, bool) {
	if len(in.hands) != 2 {
		return nil, nil, false
	}
	return &in.hands[0], &in.hands[1], true
}

type rule struct {
	label Label
	match func(in *input) bool
}

// rules are evaluated in order and the first match wins. thinking must stay
// ahead of cerrao and timeout ahead of sixseven: each pair shares a
// precondition and the earlier one is the narrower test.
var rules = []rule{
	{LabelJijija, mouthOpen},
	{LabelMimimi, twoFists},
	{LabelThinking, fingerOnChin},
	{LabelCerrao, indexOnly},
	{LabelTimeout, tSign},
	{LabelSixSeven, balance},
}

// Rules returns the labels in the order their rules are evaluated,
// followed by LabelNone.
func Rules() []Label {
	out := make([]Label, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.label)
	}
	return append(out, LabelNone)
}

// Classify maps one frame of landmarks to a label. It never fails: missing
// hands or face only disable the rules that need them, and LabelNone is
// returned when nothing matches. Single-hand rules look at the first hand;
// two-hand rules need exactly two.
func Classify(hands []detector.HandLandmarks, face *detector.FaceLandmarks) Label {
	in := &input{hands: hands, face: face}
	for _, r := range rules {
		if r.match(in) {
			return r.label
		}
	}
	return LabelNone
}

// ClassifyObservation is Classify for a detector observation.
func ClassifyObservation(obs detector.Observation) Label {
	return Classify(obs.Hands, obs.Face)
}

func mouthOpen(in *input) bool {
	if in.face == nil {
		return false
	}
	height, width := MouthOpening(in.face)
	return height > MouthOpenMinHeight && width > MouthOpenMinWidth
}

func twoFists(in *input) bool {
	a, b, ok := in.pair()
	if !ok {
		return false
	}
	return RaisedCount(a, allFingers...) == 0 && RaisedCount(b, allFingers...) == 0
}

// onlyIndex reports whether the first hand has exactly one extended finger
// and it is the index.
func onlyIndex(in *input) bool {
	h := in.primary()
	if h == nil {
		return false
	}
	ext := ExtendedFingers(h)
	return len(ext) == 1 && ext[0] == Index
}

func fingerOnChin(in *input) bool {
	if in.face == nil || !onlyIndex(in) {
		return false
	}

	tip := in.primary().Points[detector.IndexTip]
	upperLip := in.face.Points[detector.UpperLip]

	// Pointing up past the nose is not thinking.
	if tip.Y <= upperLip.Y-BelowNoseTolerance {
		return false
	}

	return distance(tip, in.face.Points[detector.Chin]) < ChinTouchDistance ||
		distance(tip, in.face.Points[detector.ChinBottom]) < ChinTouchDistance ||
		distance(tip, in.face.Points[detector.LowerLip]) < LipTouchDistance ||
		distance(tip, upperLip) < LipTouchDistance
}

func indexOnly(in *input) bool {
	return onlyIndex(in)
}

func tSign(in *input) bool {
	a, b, ok := in.pair()
	if !ok {
		return false
	}
	if RaisedCount(a, allFingers...) < 1 || RaisedCount(b, allFingers...) < 1 {
		return false
	}

	sa, sb := DescribeHand(a), DescribeHand(b)
	if math.Abs(sa.Center.X-sb.Center.X) >= HandsNearDistance ||
		math.Abs(sa.Center.Y-sb.Center.Y) >= HandsNearDistance {
		return false
	}

	pa, pb := palm(a), palm(b)
	closest := math.Min(
		math.Min(distance(a.Points[detector.Wrist], pb), distance(a.Points[detector.PinkyTip], pb)),
		math.Min(distance(b.Points[detector.Wrist], pa), distance(b.Points[detector.PinkyTip], pa)),
	)

	crossed := (sa.Horizontal && sb.Vertical) || (sa.Vertical && sb.Horizontal)
	if closest < TouchDistance && crossed {
		return true
	}
	return closest < CloseTouchDistance
}

func balance(in *input) bool {
	a, b, ok := in.pair()
	if !ok {
		return false
	}
	if RaisedCount(a, Index, Middle, Ring) < 2 || RaisedCount(b, Index, Middle, Ring) < 2 {
		return false
	}
	return math.Abs(a.Points[detector.Wrist].X-b.Points[detector.Wrist].X) > BalanceMinWristGap
}
