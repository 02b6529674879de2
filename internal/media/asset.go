package media

import (
	"errors"

	"gocv.io/x/gocv"

	"github.com/ayusman/memecam/internal/gesture"
)

// Kind is how an asset produces frames.
type Kind int

const (
	KindPlaceholder Kind = iota
	KindImage
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "placeholder"
	}
}

// Clip is a decode cursor over a video file.
type Clip interface {
	// Read decodes the next frame into m. It returns false at end of stream.
	Read(m *gocv.Mat) bool
	// Rewind moves the cursor back to the first frame.
	Rewind()
	Close() error
}

// videoClip adapts a gocv VideoCapture to Clip.
type videoClip struct {
	capture *gocv.VideoCapture
}

// OpenVideoClip opens a video file for frame-by-frame reading.
func OpenVideoClip(path string) (Clip, error) {
	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, err
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, errors.New("video could not be opened")
	}
	return &videoClip{capture: capture}, nil
}

func (c *videoClip) Read(m *gocv.Mat) bool {
	return c.capture.Read(m)
}

func (c *videoClip) Rewind() {
	c.capture.Set(gocv.VideoCapturePosFrames, 0)
}

func (c *videoClip) Close() error {
	return c.capture.Close()
}

// Asset is the media bound to one label. Images and placeholders always
// return the same frame; videos advance one frame per Next and loop forever.
type Asset struct {
	Label gesture.Label
	Kind  Kind
	Path  string

	frame gocv.Mat
	buf   gocv.Mat
	clip  Clip
	loops int
}

// NewImageAsset wraps a decoded still image. The asset takes ownership of frame.
func NewImageAsset(label gesture.Label, path string, frame gocv.Mat) *Asset {
	return &Asset{Label: label, Kind: KindImage, Path: path, frame: frame, buf: gocv.NewMat()}
}

// NewVideoAsset wraps an open clip positioned at its first frame. The asset
// takes ownership of clip.
func NewVideoAsset(label gesture.Label, path string, clip Clip) *Asset {
	return &Asset{Label: label, Kind: KindVideo, Path: path, frame: gocv.NewMat(), buf: gocv.NewMat(), clip: clip}
}

// NewPlaceholderAsset generates the placeholder image for label.
func NewPlaceholderAsset(label gesture.Label) *Asset {
	return &Asset{Label: label, Kind: KindPlaceholder, frame: Placeholder(label), buf: gocv.NewMat()}
}

// Next returns the frame to show for this request. The returned Mat is owned
// by the asset and stays valid until the following Next or Close.
func (a *Asset) Next() *gocv.Mat {
	if a.clip == nil {
		return &a.frame
	}

	if a.read() {
		return &a.frame
	}

	// End of stream: restart from the first frame.
	a.clip.Rewind()
	a.loops++
	if a.read() {
		return &a.frame
	}

	// The clip stopped decoding entirely. Keep the last good frame, or fall
	// back to the placeholder if there never was one.
	if a.frame.Empty() {
		a.frame.Close()
		a.frame = Placeholder(a.Label)
	}
	return &a.frame
}

func (a *Asset) read() bool {
	if !a.clip.Read(&a.buf) || a.buf.Empty() {
		return false
	}
	a.frame, a.buf = a.buf, a.frame
	return true
}

// Loops returns how many times the clip has been rewound.
func (a *Asset) Loops() int {
	return a.loops
}

// Close releases the clip and frame buffers.
func (a *Asset) Close() error {
	var err error
	if a.clip != nil {
		err = a.clip.Close()
		a.clip = nil
	}
	a.frame.Close()
	a.buf.Close()
	return err
}
