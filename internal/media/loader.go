package media

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"github.com/ayusman/memecam/internal/gesture"
)

// Loader resolves the media file of every label inside Dir.
type Loader struct {
	Dir   string
	Files map[gesture.Label]string

	// OpenClip and ReadImage decode files. They default to gocv and are
	// replaced in tests.
	OpenClip  func(path string) (Clip, error)
	ReadImage func(path string) gocv.Mat

	log *log.Entry
}

// NewLoader returns a Loader for dir using DefaultFiles.
func NewLoader(dir string) *Loader {
	return &Loader{
		Dir:       dir,
		Files:     DefaultFiles,
		OpenClip:  OpenVideoClip,
		ReadImage: readImage,
		log:       log.WithField("component", "media"),
	}
}

func readImage(path string) gocv.Mat {
	return gocv.IMRead(path, gocv.IMReadColor)
}

// Load resolves every label and returns a scheduler over the results.
// A missing or unreadable file is replaced by a placeholder; Load never fails.
func (l *Loader) Load() *Scheduler {
	assets := make(map[gesture.Label]*Asset, len(gesture.Labels()))
	for _, label := range gesture.Labels() {
		assets[label] = l.LoadAsset(label)
	}
	return NewScheduler(assets)
}

// LoadAsset resolves the asset for one label.
func (l *Loader) LoadAsset(label gesture.Label) *Asset {
	logger := l.logger().WithField("label", label)

	name, ok := l.Files[label]
	if !ok {
		logger.Warn("No media file configured, using placeholder")
		return NewPlaceholderAsset(label)
	}

	path := filepath.Join(l.Dir, name)
	logger = logger.WithField("path", path)

	if _, err := os.Stat(path); err != nil {
		logger.Warn("Media file not found, using placeholder")
		return NewPlaceholderAsset(label)
	}

	if IsVideo(name) {
		return l.loadVideo(label, path, logger)
	}

	img := l.ReadImage(path)
	if img.Empty() {
		img.Close()
		logger.Warn("Could not decode image, using placeholder")
		return NewPlaceholderAsset(label)
	}
	logger.Debug("Loaded image")
	return NewImageAsset(label, path, img)
}

// loadVideo opens a clip and checks it yields at least one frame before
// rewinding it to the start.
func (l *Loader) loadVideo(label gesture.Label, path string, logger *log.Entry) *Asset {
	clip, err := l.OpenClip(path)
	if err != nil {
		logger.WithError(err).Warn("Could not open video, using placeholder")
		return NewPlaceholderAsset(label)
	}

	probe := gocv.NewMat()
	ok := clip.Read(&probe) && !probe.Empty()
	probe.Close()
	if !ok {
		clip.Close()
		logger.Warn("Video has no readable frames, using placeholder")
		return NewPlaceholderAsset(label)
	}

	clip.Rewind()
	logger.Debug("Loaded video")
	return NewVideoAsset(label, path, clip)
}

func (l *Loader) logger() *log.Entry {
	if l.log == nil {
		l.log = log.WithField("component", "media")
	}
	return l.log
}
