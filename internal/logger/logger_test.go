package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/ayusman/memecam/internal/config"
)

func TestInit_Level(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"trace", log.TraceLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			closer, err := Init(config.LogConfig{Level: tt.level})
			if err != nil {
				t.Fatalf("Init() error = %v", err)
			}
			defer closer.Close()

			if got := log.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInit_File(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "logs", "memecam.log")

	closer, err := Init(config.LogConfig{Level: "info", File: path})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	log.WithField("component", "test").Info("hello from test")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file missing entry, got %q", data)
	}
}

func TestInit_UnwritableFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	// A regular file cannot be used as a directory.
	if _, err := Init(config.LogConfig{Level: "info", File: filepath.Join(blocker, "x.log")}); err == nil {
		t.Error("Init() should fail when the log directory cannot be created")
	}
}
