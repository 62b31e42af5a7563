package capture

import (
	"image"

	"github.com/kbinani/screenshot"
	"github.com/pkg/errors"

	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
)

// ScreenCapturer captures through the platform screenshot API.
type ScreenCapturer struct{}

var _ Capturer = ScreenCapturer{}

func (ScreenCapturer) CaptureFullScreen() (*image.RGBA, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, errors.New("no active displays")
	}

	bounds := screenshot.GetDisplayBounds(0)
	for i := 1; i < n; i++ {
		bounds = bounds.Union(screenshot.GetDisplayBounds(i))
	}

	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, errors.Wrap(err, "capturing virtual desktop")
	}
	return img, nil
}

func (ScreenCapturer) CaptureDisplay(index int) (*image.RGBA, error) {
	if index < 0 || index >= screenshot.NumActiveDisplays() {
		return nil, errors.Errorf("no display %d", index)
	}

	img, err := screenshot.CaptureRect(screenshot.GetDisplayBounds(index))
	if err != nil {
		return nil, errors.Wrapf(err, "capturing display %d", index)
	}
	return img, nil
}

// CaptureRegion grabs the virtual desktop once and crops, so a
// selection that rounds past a display edge clamps instead of
// failing the native call.
func (ScreenCapturer) CaptureRegion(region geom.PhysicalRect) (*image.RGBA, error) {
	if region.Width <= 0 || region.Height <= 0 {
		return nil, errors.Errorf("empty capture region %+v", region)
	}

	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return nil, errors.New("no active displays")
	}
	bounds := screenshot.GetDisplayBounds(0)
	for i := 1; i < n; i++ {
		bounds = bounds.Union(screenshot.GetDisplayBounds(i))
	}

	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, errors.Wrap(err, "capturing virtual desktop")
	}

	// The captured image is zero based; fold the desktop origin out
	// of the region before cropping.
	out := Crop(img, geom.PhysicalRect{
		X:      region.X - bounds.Min.X,
		Y:      region.Y - bounds.Min.Y,
		Width:  region.Width,
		Height: region.Height,
	})
	if out.Bounds().Empty() {
		return nil, errors.Errorf("capture region %+v is off screen", region)
	}
	return out, nil
}

func (ScreenCapturer) Displays() ([]Display, error) {
	n := screenshot.NumActiveDisplays()
	displays := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		b := screenshot.GetDisplayBounds(i)
		displays = append(displays, Display{
			Index:  i,
			X:      b.Min.X,
			Y:      b.Min.Y,
			Width:  b.Dx(),
			Height: b.Dy(),
			// The screenshot API reports physical bounds; the logical
			// ratio comes from the display info feed instead.
			ScaleFactor: 1,
		})
	}
	return displays, nil
}
