package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/ayusman/memecam/internal/app"
	"github.com/ayusman/memecam/internal/capture"
	"github.com/ayusman/memecam/internal/config"
	"github.com/ayusman/memecam/internal/detector"
	"github.com/ayusman/memecam/internal/logger"
	"github.com/ayusman/memecam/internal/tray"
)

// The tray, or highgui when there is no tray, owns the main OS thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	fs := config.NewFlagSet("memecam")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: memecam [flags]\n\nShows a meme next to your webcam for each recognized gesture.\n\n")
		fs.PrintDefaults()
	}
	check := fs.Bool("check", false, "verify camera, landmark service and media files, then exit")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.FromFlags(fs)
	if err != nil {
		log.Errorf("Invalid configuration: %v", err)
		return 2
	}

	closer, err := logger.Init(cfg.Log)
	if err != nil {
		log.Errorf("Failed to initialize logger completely: %v", err)
	} else {
		defer closer.Close()
	}

	if *check {
		return runCheck(appConfig(cfg))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(appConfig(cfg))
	log.WithFields(log.Fields{
		"session":   a.Session(),
		"media_dir": cfg.Media.Dir,
		"camera":    cfg.Camera.Device,
	}).Info("Gesture Meme Tracker starting")

	if cfg.Tray.Enabled {
		err = runWithTray(ctx, stop, a)
	} else {
		err = a.Run(ctx)
	}

	if err != nil {
		log.WithError(err).Error("Tracker stopped")
		return 1
	}
	return 0
}

func appConfig(cfg *config.Config) app.Config {
	return app.Config{
		Camera: capture.Config{
			DeviceID: cfg.Camera.Device,
			Width:    cfg.Camera.Width,
			Height:   cfg.Camera.Height,
			FPS:      cfg.Camera.FPS,
		},
		Detector: detector.Config{
			MaxHands:        cfg.Detector.MaxHands,
			MinConfidence:   cfg.Detector.MinConfidence,
			MinTrackingConf: cfg.Detector.MinTracking,
			ScriptPath:      cfg.Detector.Script,
		},
		Mirror:   cfg.Camera.Mirror,
		MediaDir: cfg.Media.Dir,
		Title:    cfg.Display.Title,
		Headless: cfg.Display.Headless,
	}
}

// runWithTray gives the main thread to the tray and runs the loop on a
// goroutine pinned to its own OS thread, so every highgui call for the
// window comes from that one thread. Quitting from either side stops the
// other.
func runWithTray(ctx context.Context, stop context.CancelFunc, a *app.App) error {
	t := tray.New()
	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
		log.WithField("enabled", enabled).Info("Tracking toggled from tray")
	})
	t.OnQuit(stop)
	a.RegisterGestureCallback(t.SetGesture)

	errCh := make(chan error, 1)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		errCh <- a.Run(ctx)
		t.Quit()
	}()

	t.Run()
	stop()
	return <-errCh
}

// runCheck prints an environment report and fails if a required part is unusable.
func runCheck(cfg app.Config) int {
	results := app.Check(cfg)
	for _, r := range results {
		mark := "✓"
		if !r.OK {
			mark = "✗"
		}
		fmt.Printf("%s %-18s %s\n", mark, r.Name, r.Detail)
	}
	if !app.CheckPassed(results) {
		fmt.Println("\nSome required components are missing. See scripts/requirements.txt.")
		return 1
	}
	fmt.Println("\nAll required components are available.")
	return 0
}
