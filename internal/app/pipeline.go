package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/ayusman/memecam/internal/capture"
	"github.com/ayusman/memecam/internal/detector"
	"github.com/ayusman/memecam/internal/display"
	"github.com/ayusman/memecam/internal/gesture"
)

// step runs one iteration of the loop:
//  1. Read a camera frame, mirrored if configured
//  2. Detect hands and face (skipped while paused)
//  3. Classify the observation into a label
//  4. Pull the next frame of that label's media
//  5. Compose, show and poll the keyboard
//
// Perception errors are logged and the frame is treated as empty.
func (a *App) step() (quit bool, err error) {
	frame, err := a.camera.ReadFrame()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrSourceExhausted, err)
	}
	defer frame.Close()

	if a.config.Mirror {
		capture.Mirror(frame)
	}

	var obs detector.Observation
	label := gesture.LabelNone
	enabled := a.IsEnabled()

	if enabled {
		obs, err = a.Detector().Detect(frame)
		if err != nil {
			a.log.WithError(err).Warn("Landmark detection failed")
			obs = detector.Observation{}
		}
		label = gesture.ClassifyObservation(obs)
	}

	a.setLabel(label)

	meme := a.media.Next(label)
	out := display.Compose(*frame, *meme, display.Overlay{
		Label:       label,
		Observation: obs,
		Paused:      !enabled,
	})
	a.screen.Show(out)
	out.Close()

	a.mu.Lock()
	a.frames++
	a.mu.Unlock()

	return display.IsQuit(a.screen.WaitKey(1)), nil
}

// setLabel records the current label and notifies callbacks on a change.
func (a *App) setLabel(label gesture.Label) {
	a.mu.Lock()
	prev := a.label
	a.label = label
	callbacks := a.callbacks
	a.mu.Unlock()

	if prev == label {
		return
	}

	a.log.WithFields(log.Fields{
		"from": prev,
		"to":   label,
	}).Info("Gesture changed")

	for _, fn := range callbacks {
		fn(label)
	}
}
