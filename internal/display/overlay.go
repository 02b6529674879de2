// Package display composes the side-by-side output frame and shows it.
package display

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ayusman/memecam/internal/detector"
	"github.com/ayusman/memecam/internal/gesture"
)

var (
	yellow = color.RGBA{R: 255, G: 255, A: 255}
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Line is one text item drawn on the camera half of the output.
type Line struct {
	Text      string
	Org       image.Point
	Scale     float64
	Color     color.RGBA
	Thickness int
}

// Overlay is the per-frame state shown on top of the camera image.
type Overlay struct {
	Label       gesture.Label
	Observation detector.Observation
	Paused      bool
}

// Lines lays out the overlay text for a camera frame of the given height.
// Mouth metrics appear only with a face and hand metrics only with exactly
// two hands.
func (o Overlay) Lines(height int) []Line {
	title := "Gesture: " + o.Label.DisplayName()
	if o.Paused {
		title += " (paused)"
	}

	lines := []Line{
		{Text: title, Org: image.Pt(10, 30), Scale: 1, Color: yellow, Thickness: 2},
	}

	if face := o.Observation.Face; face != nil {
		h, w := gesture.MouthOpening(face)
		lines = append(lines, Line{
			Text:      fmt.Sprintf("Mouth H: %.3f W: %.3f", h, w),
			Org:       image.Pt(10, 60),
			Scale:     0.6,
			Color:     white,
			Thickness: 1,
		})
	}

	if hands := o.Observation.Hands; len(hands) == 2 {
		a, b := gesture.DescribeHand(&hands[0]), gesture.DescribeHand(&hands[1])
		lines = append(lines, Line{
			Text:      fmt.Sprintf("H1: %s H2: %s Dist: %.2f", orientation(a), orientation(b), gesture.CenterDistance(a, b)),
			Org:       image.Pt(10, 90),
			Scale:     0.5,
			Color:     yellow,
			Thickness: 1,
		})
	}

	return append(lines, Line{
		Text:      "Press 'q' to quit",
		Org:       image.Pt(10, height-10),
		Scale:     0.6,
		Color:     white,
		Thickness: 1,
	})
}

// orientation renders the shape flags as two characters, e.g. "HV" or "-V".
func orientation(s gesture.HandShape) string {
	out := []byte("--")
	if s.Horizontal {
		out[0] = 'H'
	}
	if s.Vertical {
		out[1] = 'V'
	}
	return string(out)
}
