package display

import (
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// KeyNone is what WaitKey returns when no key was pressed.
const KeyNone = -1

const keyEscape = 27

// Screen presents composed frames and reports key presses.
type Screen interface {
	Show(frame gocv.Mat)
	// WaitKey pumps the UI for delayMs milliseconds and returns the key
	// pressed, or KeyNone.
	WaitKey(delayMs int) int
	Close() error
}

// IsQuit reports whether key asks the program to stop: 'q' or Escape.
func IsQuit(key int) bool {
	if key < 0 {
		return false
	}
	key &= 0xFF
	return key == 'q' || key == keyEscape
}

// Window shows frames in an OpenCV highgui window.
type Window struct {
	window *gocv.Window
}

// NewWindow opens a window with the given title.
func NewWindow(title string) *Window {
	return &Window{window: gocv.NewWindow(title)}
}

func (w *Window) Show(frame gocv.Mat) {
	w.window.IMShow(frame)
}

func (w *Window) WaitKey(delayMs int) int {
	return w.window.WaitKey(delayMs)
}

func (w *Window) Close() error {
	return w.window.Close()
}

// Headless is a Screen without a window. It records what was shown and
// replays scripted key presses, one per WaitKey call.
type Headless struct {
	mu     sync.Mutex
	keys   []int
	frames int
	size   image.Point
	closed bool
}

// NewHeadless returns a Headless screen that replays keys before reporting
// KeyNone forever.
func NewHeadless(keys ...int) *Headless {
	return &Headless{keys: keys}
}

func (h *Headless) Show(frame gocv.Mat) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.frames++
	h.size = image.Pt(frame.Cols(), frame.Rows())
}

func (h *Headless) WaitKey(delayMs int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.keys) == 0 {
		return KeyNone
	}
	key := h.keys[0]
	h.keys = h.keys[1:]
	return key
}

func (h *Headless) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	return nil
}

// Frames returns how many frames were shown.
func (h *Headless) Frames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// LastSize returns the width and height of the last frame shown.
func (h *Headless) LastSize() image.Point {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.size
}

// Closed reports whether Close was called.
func (h *Headless) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}
