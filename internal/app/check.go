package app

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ayusman/memecam/internal/capture"
	"github.com/ayusman/memecam/internal/detector"
	"github.com/ayusman/memecam/internal/gesture"
	"github.com/ayusman/memecam/internal/media"
)

// CheckResult is one line of the environment report.
type CheckResult struct {
	Name string
	OK   bool
	// Required checks prevent the tracker from working when they fail.
	// Optional ones only degrade it, e.g. a placeholder instead of a meme.
	Required bool
	Detail   string
}

// Check verifies that the camera, the landmark service and the media files
// are usable without starting the loop.
func Check(config Config) []CheckResult {
	results := []CheckResult{
		checkPython(),
		checkDetector(config.Detector),
		checkCamera(config.Camera),
	}
	return append(results, checkMedia(config.MediaDir)...)
}

// CheckPassed reports whether every required check succeeded.
func CheckPassed(results []CheckResult) bool {
	for _, r := range results {
		if r.Required && !r.OK {
			return false
		}
	}
	return true
}

func checkPython() CheckResult {
	path, err := exec.LookPath("python3")
	if err != nil {
		return CheckResult{Name: "python3", Required: true, Detail: "not found on PATH"}
	}
	return CheckResult{Name: "python3", OK: true, Required: true, Detail: path}
}

func checkDetector(cfg detector.Config) CheckResult {
	d, err := detector.NewMediaPipeDetector(cfg)
	if err != nil {
		return CheckResult{Name: "landmark service", Required: true, Detail: err.Error()}
	}
	d.Close()
	return CheckResult{Name: "landmark service", OK: true, Required: true, Detail: "script found"}
}

func checkCamera(cfg capture.Config) CheckResult {
	name := fmt.Sprintf("camera %d", cfg.DeviceID)

	cam := capture.NewCamera(cfg)
	if err := cam.Open(); err != nil {
		return CheckResult{Name: name, Required: true, Detail: err.Error()}
	}
	defer cam.Close()

	frame, err := cam.ReadFrame()
	if err != nil {
		return CheckResult{Name: name, Required: true, Detail: err.Error()}
	}
	defer frame.Close()

	return CheckResult{Name: name, OK: true, Required: true, Detail: fmt.Sprintf("%dx%d", frame.Cols(), frame.Rows())}
}

func checkMedia(dir string) []CheckResult {
	var results []CheckResult
	for _, label := range gesture.Labels() {
		name := media.DefaultFiles[label]
		path := filepath.Join(dir, name)

		r := CheckResult{Name: "media " + string(label)}
		if _, err := os.Stat(path); err != nil {
			r.Detail = path + " missing, placeholder will be shown"
		} else {
			r.OK = true
			r.Detail = path
		}
		results = append(results, r)
	}
	return results
}
