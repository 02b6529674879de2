// Package gesture classifies per-frame hand and face landmarks into one of a
// fixed set of gesture labels.
package gesture

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label identifies a recognized gesture.
type Label string

const (
	// LabelJijija is an open, laughing mouth.
	LabelJijija Label = "jijija"
	// LabelMimimi is two closed fists.
	LabelMimimi Label = "mimimi"
	// LabelSixSeven is both hands open and held wide apart, like a balance.
	LabelSixSeven Label = "sixseven"
	// LabelCerrao is a single raised index finger.
	LabelCerrao Label = "cerrao"
	// LabelTimeout is the two-hand T sign.
	LabelTimeout Label = "timeout"
	// LabelThinking is an index finger resting on the chin or lips.
	LabelThinking Label = "thinking"
	// LabelNone is the neutral state when no rule fires.
	LabelNone Label = "none"
)

var labels = []Label{
	LabelJijija,
	LabelMimimi,
	LabelSixSeven,
	LabelCerrao,
	LabelTimeout,
	LabelThinking,
	LabelNone,
}

// Labels returns every label in canonical order.
func Labels() []Label {
	out := make([]Label, len(labels))
	copy(out, labels)
	return out
}

// Valid reports whether l is a member of the enumeration.
func (l Label) Valid() bool {
	for _, known := range labels {
		if l == known {
			return true
		}
	}
	return false
}

// String returns the label name.
func (l Label) String() string {
	return string(l)
}

// DisplayName returns the label title-cased with underscores as spaces,
// e.g. "Sixseven".
func (l Label) DisplayName() string {
	return cases.Title(language.Und).String(strings.ReplaceAll(string(l), "_", " "))
}
