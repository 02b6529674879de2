package media

import (
	"errors"

	log "github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"github.com/ayusman/memecam/internal/gesture"
)

// Scheduler hands out the next display frame for whichever label is active.
// Every label has an asset; each video keeps its own position, so switching
// away from a clip and back resumes where it stopped.
type Scheduler struct {
	assets map[gesture.Label]*Asset

	// OnLoop, if set, is called each time a video clip wraps around.
	OnLoop func(label gesture.Label, loops int)

	log *log.Entry
}

// NewScheduler takes ownership of assets. Labels without an asset get a
// placeholder.
func NewScheduler(assets map[gesture.Label]*Asset) *Scheduler {
	s := &Scheduler{
		assets: make(map[gesture.Label]*Asset, len(gesture.Labels())),
		log:    log.WithField("component", "media"),
	}
	for label, a := range assets {
		if a != nil {
			s.assets[label] = a
		}
	}
	for _, label := range gesture.Labels() {
		if _, ok := s.assets[label]; !ok {
			s.assets[label] = NewPlaceholderAsset(label)
		}
	}
	return s
}

// Asset returns the asset bound to label, falling back to LabelNone.
func (s *Scheduler) Asset(label gesture.Label) *Asset {
	if a, ok := s.assets[label]; ok {
		return a
	}
	return s.assets[gesture.LabelNone]
}

// Next returns the frame to display for label. The Mat remains owned by the
// scheduler and is valid until the next call for the same label.
func (s *Scheduler) Next(label gesture.Label) *gocv.Mat {
	a := s.Asset(label)

	before := a.Loops()
	frame := a.Next()

	if loops := a.Loops(); loops != before {
		s.log.WithFields(log.Fields{
			"label": a.Label,
			"loops": loops,
		}).Debug("Clip looped")
		if s.OnLoop != nil {
			s.OnLoop(a.Label, loops)
		}
	}
	return frame
}

// Close releases every asset.
func (s *Scheduler) Close() error {
	var errs []error
	for _, a := range s.assets {
		if err := a.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.assets = map[gesture.Label]*Asset{}
	return errors.Join(errs...)
}
