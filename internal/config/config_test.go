package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Camera.Device != 0 || cfg.Camera.Width != 640 || cfg.Camera.Height != 480 || cfg.Camera.FPS != 30 {
		t.Errorf("camera = %+v, want device 0 at 640x480@30", cfg.Camera)
	}
	if !cfg.Camera.Mirror {
		t.Error("camera.mirror should default to true")
	}
	if cfg.Media.Dir != "images" {
		t.Errorf("media.dir = %q, want images", cfg.Media.Dir)
	}
	if cfg.Display.Title != "Gesture Meme Tracker" || cfg.Display.Headless {
		t.Errorf("display = %+v", cfg.Display)
	}
	if cfg.Tray.Enabled {
		t.Error("tray.enabled should default to false")
	}
	if cfg.Detector.MaxHands != 2 || cfg.Detector.MinConfidence != 0.7 || cfg.Detector.MinTracking != 0.5 {
		t.Errorf("detector = %+v", cfg.Detector)
	}
	if cfg.Log.Level != "info" || cfg.Log.File != "" {
		t.Errorf("log = %+v", cfg.Log)
	}
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load([]string{
		"--camera", "1",
		"--mirror=false",
		"--media-dir", "/srv/memes",
		"--headless",
		"--tray",
		"--max-hands", "1",
		"--min-confidence", "0.5",
		"--log-level", "debug",
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Camera.Device != 1 {
		t.Errorf("camera.device = %d, want 1", cfg.Camera.Device)
	}
	if cfg.Camera.Mirror {
		t.Error("camera.mirror = true, want false")
	}
	if cfg.Media.Dir != "/srv/memes" {
		t.Errorf("media.dir = %q", cfg.Media.Dir)
	}
	if !cfg.Display.Headless || !cfg.Tray.Enabled {
		t.Error("headless and tray should be enabled")
	}
	if cfg.Detector.MaxHands != 1 || cfg.Detector.MinConfidence != 0.5 {
		t.Errorf("detector = %+v", cfg.Detector)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("MEMECAM_CAMERA_DEVICE", "3")
	t.Setenv("MEMECAM_MEDIA_DIR", "/tmp/memes")
	t.Setenv("MEMECAM_LOG_LEVEL", "warn")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Camera.Device != 3 {
		t.Errorf("camera.device = %d, want 3", cfg.Camera.Device)
	}
	if cfg.Media.Dir != "/tmp/memes" {
		t.Errorf("media.dir = %q, want /tmp/memes", cfg.Media.Dir)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn", cfg.Log.Level)
	}
}

func TestLoad_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("MEMECAM_CAMERA_DEVICE", "3")

	cfg, err := Load([]string{"--camera", "2"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Camera.Device != 2 {
		t.Errorf("camera.device = %d, want 2", cfg.Camera.Device)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"negative device", []string{"--camera=-1"}, "camera.device"},
		{"zero fps", []string{"--fps", "0"}, "camera.fps"},
		{"zero width", []string{"--width", "0"}, "resolution"},
		{"empty media dir", []string{"--media-dir="}, "media.dir"},
		{"no hands", []string{"--max-hands", "0"}, "max_hands"},
		{"confidence above one", []string{"--min-confidence", "1.5"}, "min_confidence"},
		{"negative tracking", []string{"--min-tracking=-0.1"}, "min_tracking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_UnknownFlag(t *testing.T) {
	if _, err := Load([]string{"--port", "8080"}); err == nil {
		t.Error("Load() should reject unknown flags")
	}
}

func TestLoad_Help(t *testing.T) {
	_, err := Load([]string{"--help"})
	if !errors.Is(err, pflag.ErrHelp) {
		t.Errorf("Load(--help) error = %v, want pflag.ErrHelp", err)
	}
}

func TestFlagKeysDefined(t *testing.T) {
	fs := NewFlagSet("test")
	for name := range flagKeys {
		if fs.Lookup(name) == nil {
			t.Errorf("flag %q is mapped but not defined", name)
		}
	}
}
