// Package media resolves the asset shown for each gesture label and steps
// looping video clips one frame per request.
package media

import (
	"path/filepath"
	"strings"

	"github.com/ayusman/memecam/internal/gesture"
)

// DefaultFiles maps each label to its media file inside the media directory.
var DefaultFiles = map[gesture.Label]string{
	gesture.LabelJijija:   "JIJIJA.mp4",
	gesture.LabelMimimi:   "MIMIMI.mp4",
	gesture.LabelSixSeven: "SIXSEVEN.mp4",
	gesture.LabelCerrao:   "CERRAO.mp4",
	gesture.LabelTimeout:  "open_palm.jpg",
	gesture.LabelThinking: "thumbs_up.jpg",
	gesture.LabelNone:     "ok_sign.jpg",
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".webm": true,
}

// IsVideo reports whether a file is treated as a looping clip. Every other
// extension is read as a still image.
func IsVideo(filename string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(filename))]
}
