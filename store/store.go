// Package store persists finished captures. It is an opaque
// collaborator to the annotation core: bytes in, file paths out.
package store

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/harsh-simform/snapflow-desktop-sub001/log"
)

// Saved names the files written for one capture.
type Saved struct {
	FilePath  string
	ThumbPath string
}

// Store writes captures and their thumbnails under a base directory.
type Store struct {
	dir        string
	thumbWidth int
}

func New(dir string, thumbWidth int) *Store {
	if thumbWidth <= 0 {
		thumbWidth = 320
	}
	return &Store{dir: dir, thumbWidth: thumbWidth}
}

// SaveCapture writes encoded PNG bytes plus a thumbnail and returns
// both paths. File names carry a timestamp so repeated saves never
// collide.
func (s *Store) SaveCapture(data []byte) (Saved, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Saved{}, errors.Wrap(err, "creating captures dir")
	}

	stamp := time.Now().Format("20060102-150405.000")
	filePath := filepath.Join(s.dir, fmt.Sprintf("capture-%s.png", stamp))
	thumbPath := filepath.Join(s.dir, fmt.Sprintf("capture-%s.thumb.png", stamp))

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return Saved{}, errors.Wrap(err, "writing capture")
	}

	if err := s.writeThumbnail(data, thumbPath); err != nil {
		// The full capture is on disk; a missing thumbnail is not
		// worth failing the save over.
		log.Warning.Printf("thumbnail failed: %v", err)
		thumbPath = ""
	}

	return Saved{FilePath: filePath, ThumbPath: thumbPath}, nil
}

func (s *Store) writeThumbnail(data []byte, path string) error {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return errors.Wrap(err, "decoding capture")
	}

	if img.Bounds().Dx() > s.thumbWidth {
		img = resize.Resize(uint(s.thumbWidth), 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return errors.Wrap(err, "encoding thumbnail")
	}
	return errors.Wrap(os.WriteFile(path, buf.Bytes(), 0o644), "writing thumbnail")
}
