// Package app runs the capture, perception, classification and display loop
// of the gesture meme tracker.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/ayusman/memecam/internal/capture"
	"github.com/ayusman/memecam/internal/detector"
	"github.com/ayusman/memecam/internal/display"
	"github.com/ayusman/memecam/internal/gesture"
	"github.com/ayusman/memecam/internal/media"
)

// ErrSourceExhausted is returned by Run when the camera stops delivering frames.
var ErrSourceExhausted = errors.New("frame source exhausted")

// Config holds configuration options for the application.
type Config struct {
	Camera   capture.Config
	Detector detector.Config
	// Mirror flips camera frames horizontally before perception.
	Mirror   bool
	MediaDir string
	Title    string
	Headless bool
}

// App owns every resource of a run: camera, perception, media and screen.
type App struct {
	config   Config
	camera   capture.Camera
	detector detector.Detector
	media    *media.Scheduler
	screen   display.Screen

	enabled   bool
	label     gesture.Label
	callbacks []func(gesture.Label)
	frames    int
	mu        sync.RWMutex

	session string
	log     *log.Entry
}

// New creates a new App instance with the given configuration. Media and the
// screen are created when Run starts unless injected first.
func New(config Config) *App {
	session := uuid.NewString()

	a := &App{
		config:  config,
		camera:  capture.NewCamera(config.Camera),
		enabled: true,
		label:   gesture.LabelNone,
		session: session,
		log:     log.WithFields(log.Fields{"component": "app", "session": session}),
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(config.Detector); err == nil {
		a.detector = mp
		a.log.Info("Using MediaPipe landmark detection")
	} else {
		a.log.WithError(err).Warn("MediaPipe not available, every frame will read as none")
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled pauses or resumes perception. While paused the none asset is shown.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether perception is currently running.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the landmark detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// Detector returns the landmark detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// SetCamera replaces the frame source. Must be called before Run.
func (a *App) SetCamera(c capture.Camera) {
	a.camera = c
}

// SetScreen replaces the output screen. Must be called before Run.
func (a *App) SetScreen(s display.Screen) {
	a.screen = s
}

// SetMedia replaces the media scheduler. Must be called before Run.
func (a *App) SetMedia(s *media.Scheduler) {
	a.media = s
}

// RegisterGestureCallback registers fn to be called whenever the displayed
// label changes. Callbacks run on the loop goroutine.
func (a *App) RegisterGestureCallback(fn func(gesture.Label)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.callbacks = append(a.callbacks, fn)
}

// Label returns the label shown for the most recent frame.
func (a *App) Label() gesture.Label {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.label
}

// Frames returns how many frames have been displayed.
func (a *App) Frames() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.frames
}

// Session returns the id attached to this run's log entries.
func (a *App) Session() string {
	return a.session
}

// Run processes frames until ctx is cancelled, a quit key is pressed or the
// camera fails. It returns nil on a requested stop and wraps
// ErrSourceExhausted when the camera fails. Every resource is released
// before Run returns.
func (a *App) Run(ctx context.Context) error {
	defer a.shutdown()

	if a.media == nil {
		a.media = media.NewLoader(a.config.MediaDir).Load()
	}
	a.media.OnLoop = func(label gesture.Label, loops int) {
		a.log.WithFields(log.Fields{"label": label, "loops": loops}).Trace("Media looped")
	}

	if a.screen == nil {
		if a.config.Headless {
			a.screen = display.NewHeadless()
		} else {
			a.screen = display.NewWindow(a.title())
		}
	}

	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("%w: %v", ErrSourceExhausted, err)
	}

	a.log.Info("Detection loop started")

	for {
		select {
		case <-ctx.Done():
			a.log.Info("Stop requested")
			return nil
		default:
		}

		quit, err := a.step()
		if err != nil {
			return err
		}
		if quit {
			a.log.Info("Quit key pressed")
			return nil
		}
	}
}

func (a *App) title() string {
	if a.config.Title == "" {
		return "Gesture Meme Tracker"
	}
	return a.config.Title
}

// shutdown releases every resource. Failures are logged; they never mask the
// reason Run stopped.
func (a *App) shutdown() {
	if a.camera != nil {
		if err := a.camera.Close(); err != nil {
			a.log.WithError(err).Warn("Error closing camera")
		}
	}
	if d := a.Detector(); d != nil {
		if err := d.Close(); err != nil {
			a.log.WithError(err).Warn("Error closing detector")
		}
	}
	if a.media != nil {
		if err := a.media.Close(); err != nil {
			a.log.WithError(err).Warn("Error closing media")
		}
	}
	if a.screen != nil {
		if err := a.screen.Close(); err != nil {
			a.log.WithError(err).Warn("Error closing screen")
		}
	}

	a.log.WithField("frames", a.Frames()).Info("Detection loop stopped")
}
