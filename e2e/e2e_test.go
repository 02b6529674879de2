package e2e

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gocv.io/x/gocv"

	"github.com/ayusman/memecam/internal/app"
	"github.com/ayusman/memecam/internal/capture"
	"github.com/ayusman/memecam/internal/detector"
	"github.com/ayusman/memecam/internal/display"
	"github.com/ayusman/memecam/internal/gesture"
	"github.com/ayusman/memecam/internal/media"
	"github.com/ayusman/memecam/testdata"
)

// scriptedDetector replays observations in order, repeating the last one.
type scriptedDetector struct {
	seq    []detector.Observation
	calls  int
	closed bool
}

func (d *scriptedDetector) Detect(frame *gocv.Mat) (detector.Observation, error) {
	i := d.calls
	if i >= len(d.seq) {
		i = len(d.seq) - 1
	}
	d.calls++
	return d.seq[i], nil
}

func (d *scriptedDetector) Close() error {
	d.closed = true
	return nil
}

func blankFrames(t *testing.T, n int) []*gocv.Mat {
	t.Helper()
	var frames []*gocv.Mat
	for i := 0; i < n; i++ {
		m := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
		frames = append(frames, &m)
	}
	t.Cleanup(func() {
		for _, m := range frames {
			m.Close()
		}
	})
	return frames
}

func TestE2E_FixtureLabels(t *testing.T) {
	tests := []struct {
		fixture string
		want    gesture.Label
	}{
		{"empty", gesture.LabelNone},
		{"laughing", gesture.LabelJijija},
		{"two_fists", gesture.LabelMimimi},
		{"pointing", gesture.LabelCerrao},
		{"thinking", gesture.LabelThinking},
		{"palms_apart", gesture.LabelSixSeven},
		{"palms_touching", gesture.LabelTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.fixture, func(t *testing.T) {
			obs, err := testdata.LoadObservation(tt.fixture)
			if err != nil {
				t.Fatalf("LoadObservation() error = %v", err)
			}
			if got := gesture.ClassifyObservation(obs); got != tt.want {
				t.Errorf("ClassifyObservation(%s) = %q, want %q", tt.fixture, got, tt.want)
			}
		})
	}
}

func TestE2E_GestureSession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	names := []string{"empty", "laughing", "laughing", "two_fists", "pointing", "thinking", "palms_apart", "palms_touching"}
	seq, err := testdata.LoadSequence(names...)
	if err != nil {
		t.Fatalf("LoadSequence() error = %v", err)
	}

	camera := capture.NewMockCamera(blankFrames(t, len(names)), false)
	det := &scriptedDetector{seq: seq}
	screen := display.NewHeadless()

	application := app.New(app.Config{MediaDir: t.TempDir(), Mirror: true, Headless: true})
	application.SetCamera(camera)
	application.SetDetector(det)
	application.SetScreen(screen)

	var changes []gesture.Label
	application.RegisterGestureCallback(func(l gesture.Label) {
		changes = append(changes, l)
	})

	err = application.Run(context.Background())
	if !errors.Is(err, app.ErrSourceExhausted) {
		t.Fatalf("Run() error = %v, want ErrSourceExhausted", err)
	}

	want := []gesture.Label{
		gesture.LabelJijija,
		gesture.LabelMimimi,
		gesture.LabelCerrao,
		gesture.LabelThinking,
		gesture.LabelSixSeven,
		gesture.LabelTimeout,
	}
	if len(changes) != len(want) {
		t.Fatalf("label changes = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %q, want %q", i, changes[i], want[i])
		}
	}

	if screen.Frames() != len(names) {
		t.Errorf("frames shown = %d, want %d", screen.Frames(), len(names))
	}
	if !det.closed || camera.IsOpen() || !screen.Closed() {
		t.Error("resources not released after Run")
	}
}

// writeClip records n solid frames to an MJPG AVI and reports false if the
// local OpenCV build cannot encode it.
func writeClip(t *testing.T, path string, n int) bool {
	t.Helper()

	writer, err := gocv.VideoWriterFile(path, "MJPG", 10, 64, 48, true)
	if err != nil {
		return false
	}
	defer writer.Close()
	if !writer.IsOpened() {
		return false
	}

	for i := 0; i < n; i++ {
		frame := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(float64(40*i), 0, 0, 0), 48, 64, gocv.MatTypeCV8UC3)
		err := writer.Write(frame)
		frame.Close()
		if err != nil {
			return false
		}
	}
	return true
}

func TestE2E_VideoLoops(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	dir := t.TempDir()
	if !writeClip(t, filepath.Join(dir, "laugh.avi"), 3) {
		t.Skip("MJPG encoding not available")
	}

	loader := media.NewLoader(dir)
	loader.Files = map[gesture.Label]string{gesture.LabelJijija: "laugh.avi"}
	scheduler := loader.Load()

	clip := scheduler.Asset(gesture.LabelJijija)
	if clip.Kind != media.KindVideo {
		t.Fatalf("jijija Kind = %v, want video", clip.Kind)
	}

	laughing, err := testdata.LoadObservation("laughing")
	if err != nil {
		t.Fatal(err)
	}

	const frames = 7
	application := app.New(app.Config{Headless: true})
	application.SetCamera(capture.NewMockCamera(blankFrames(t, frames), false))
	application.SetDetector(&scriptedDetector{seq: []detector.Observation{laughing}})
	application.SetScreen(display.NewHeadless())
	application.SetMedia(scheduler)

	if err := application.Run(context.Background()); !errors.Is(err, app.ErrSourceExhausted) {
		t.Fatalf("Run() error = %v", err)
	}

	// Three-frame clip over seven requests wraps after the 3rd and 6th.
	if clip.Loops() != 2 {
		t.Errorf("Loops() = %d, want 2", clip.Loops())
	}
}
