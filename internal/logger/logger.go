// Package logger configures the global logrus logger.
package logger

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/ayusman/memecam/internal/config"
)

// Init initializes the global logger based on the provided configuration.
// It returns the opened log file, if any, so the caller can close it on exit.
func Init(cfg config.LogConfig) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("Invalid log level '%s', defaulting to 'info': %v", cfg.Level, err)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	writers := []io.Writer{os.Stdout}
	var file *os.File

	if cfg.File != "" {
		logDir := filepath.Dir(cfg.File)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			log.SetOutput(os.Stdout)
			return nil, err
		}
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0660)
		if err != nil {
			log.SetOutput(os.Stdout)
			return nil, err
		}
		writers = append(writers, file)
	}

	log.SetOutput(io.MultiWriter(writers...))

	log.WithField("level", level).Debug("Logger initialized")
	if file == nil {
		return nopCloser{}, nil
	}
	log.Infof("Logging additionally to file: %s", cfg.File)
	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
