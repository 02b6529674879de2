// Package config loads runtime settings from defaults, MEMECAM_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. MEMECAM_CAMERA_DEVICE.
const EnvPrefix = "MEMECAM"

// Config is the full runtime configuration.
type Config struct {
	Camera   CameraConfig   `mapstructure:"camera"`
	Media    MediaConfig    `mapstructure:"media"`
	Display  DisplayConfig  `mapstructure:"display"`
	Tray     TrayConfig     `mapstructure:"tray"`
	Detector DetectorConfig `mapstructure:"detector"`
	Log      LogConfig      `mapstructure:"log"`
}

// CameraConfig selects the capture device and mode.
type CameraConfig struct {
	Device int  `mapstructure:"device"`
	Width  int  `mapstructure:"width"`
	Height int  `mapstructure:"height"`
	FPS    int  `mapstructure:"fps"`
	Mirror bool `mapstructure:"mirror"`
}

// MediaConfig locates the meme files.
type MediaConfig struct {
	Dir string `mapstructure:"dir"`
}

// DisplayConfig controls the output window.
type DisplayConfig struct {
	Title    string `mapstructure:"title"`
	Headless bool   `mapstructure:"headless"`
}

// TrayConfig enables the system tray menu.
type TrayConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DetectorConfig is passed through to the landmark service.
type DetectorConfig struct {
	MaxHands      int     `mapstructure:"max_hands"`
	MinConfidence float64 `mapstructure:"min_confidence"`
	MinTracking   float64 `mapstructure:"min_tracking"`
	Script        string  `mapstructure:"script"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"camera":         "camera.device",
	"width":          "camera.width",
	"height":         "camera.height",
	"fps":            "camera.fps",
	"mirror":         "camera.mirror",
	"media-dir":      "media.dir",
	"title":          "display.title",
	"headless":       "display.headless",
	"tray":           "tray.enabled",
	"max-hands":      "detector.max_hands",
	"min-confidence": "detector.min_confidence",
	"min-tracking":   "detector.min_tracking",
	"script":         "detector.script",
	"log-level":      "log.level",
	"log-file":       "log.file",
}

// NewFlagSet defines every flag understood by Load.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.Int("camera", 0, "camera device index")
	fs.Int("width", 640, "requested capture width")
	fs.Int("height", 480, "requested capture height")
	fs.Int("fps", 30, "requested capture frame rate")
	fs.Bool("mirror", true, "flip the camera image horizontally")
	fs.String("media-dir", "images", "directory holding the meme files")
	fs.String("title", "Gesture Meme Tracker", "window title")
	fs.Bool("headless", false, "run without a window")
	fs.Bool("tray", false, "show a system tray menu")
	fs.Int("max-hands", 2, "maximum number of hands to track")
	fs.Float64("min-confidence", 0.7, "minimum hand detection confidence")
	fs.Float64("min-tracking", 0.5, "minimum hand tracking confidence")
	fs.String("script", "", "path to landmark_service.py (searched for when empty)")
	fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	fs.String("log-file", "", "also write logs to this file")

	return fs
}

// Load parses args (without the program name) and merges them over the
// environment and the defaults.
func Load(args []string) (*Config, error) {
	fs := NewFlagSet("memecam")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return FromFlags(fs)
}

// FromFlags builds a Config from an already parsed flag set.
func FromFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	// Environment variables override the defaults; changed flags override both.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.WithField("media_dir", cfg.Media.Dir).Debug("Configuration loaded")
	return &cfg, nil
}

// setDefaults sets the default value of every key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("camera.device", 0)
	v.SetDefault("camera.width", 640)
	v.SetDefault("camera.height", 480)
	v.SetDefault("camera.fps", 30)
	v.SetDefault("camera.mirror", true)

	v.SetDefault("media.dir", "images")

	v.SetDefault("display.title", "Gesture Meme Tracker")
	v.SetDefault("display.headless", false)

	v.SetDefault("tray.enabled", false)

	v.SetDefault("detector.max_hands", 2)
	v.SetDefault("detector.min_confidence", 0.7)
	v.SetDefault("detector.min_tracking", 0.5)
	v.SetDefault("detector.script", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Camera.Device < 0 {
		errs = append(errs, fmt.Errorf("camera.device must not be negative, got %d", c.Camera.Device))
	}
	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		errs = append(errs, fmt.Errorf("camera resolution must be positive, got %dx%d", c.Camera.Width, c.Camera.Height))
	}
	if c.Camera.FPS <= 0 {
		errs = append(errs, fmt.Errorf("camera.fps must be positive, got %d", c.Camera.FPS))
	}
	if c.Media.Dir == "" {
		errs = append(errs, errors.New("media.dir must not be empty"))
	}
	if c.Detector.MaxHands < 1 {
		errs = append(errs, fmt.Errorf("detector.max_hands must be at least 1, got %d", c.Detector.MaxHands))
	}
	if !unit(c.Detector.MinConfidence) {
		errs = append(errs, fmt.Errorf("detector.min_confidence must be within [0,1], got %g", c.Detector.MinConfidence))
	}
	if !unit(c.Detector.MinTracking) {
		errs = append(errs, fmt.Errorf("detector.min_tracking must be within [0,1], got %g", c.Detector.MinTracking))
	}

	return errors.Join(errs...)
}

func unit(f float64) bool {
	return f >= 0 && f <= 1
}
