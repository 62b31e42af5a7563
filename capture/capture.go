// Package capture wraps the native screen capture call. The rest of
// the system treats it as an external collaborator: it hands back a
// raster image for a physical pixel region and nothing else.
package capture

import (
	"image"

	"github.com/pkg/errors"

	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
)

// ErrBusy is returned when a capture or export is requested while one
// is already in flight. The boundary layers disable their triggering
// controls for the duration; hitting this means a request raced the
// disable.
var ErrBusy = errors.New("a capture is already in flight")

// Display describes one attached display in physical pixels.
type Display struct {
	Index       int
	X           int
	Y           int
	Width       int
	Height      int
	ScaleFactor float64
}

// Capturer is the native capture boundary.
type Capturer interface {
	// CaptureFullScreen grabs the whole virtual desktop.
	CaptureFullScreen() (*image.RGBA, error)

	// CaptureDisplay grabs one display by index.
	CaptureDisplay(index int) (*image.RGBA, error)

	// CaptureRegion grabs a physical pixel rectangle.
	CaptureRegion(region geom.PhysicalRect) (*image.RGBA, error)

	// Displays enumerates the attached displays.
	Displays() ([]Display, error)
}

// Crop copies a physical pixel region out of img, clamping the region
// to the image bounds. An empty clamped region yields an empty image,
// not an error.
func Crop(img *image.RGBA, region geom.PhysicalRect) *image.RGBA {
	b := img.Bounds()

	x0 := max(region.X, b.Min.X)
	y0 := max(region.Y, b.Min.Y)
	x1 := min(region.X+region.Width, b.Max.X)
	y1 := min(region.Y+region.Height, b.Max.Y)

	if x1 <= x0 || y1 <= y0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	w, h := x1-x0, y1-y0
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for row := 0; row < h; row++ {
		srcOff := img.PixOffset(x0, y0+row)
		dstOff := out.PixOffset(0, row)
		copy(out.Pix[dstOff:dstOff+w*4], img.Pix[srcOff:srcOff+w*4])
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
