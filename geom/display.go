package geom

import "math"

// DisplayScale describes one display as seen by the overlay window:
// the display's logical bounds, its physical origin in the native
// capture space and the ratio of physical to logical pixels.
//
// Overlay windows are positioned at a display's logical origin, so in
// the single display case OriginX, OriginY, PhysOriginX and PhysOriginY
// are all zero.
type DisplayScale struct {
	OriginX     float64
	OriginY     float64
	Width       float64
	Height      float64
	PixelRatio  float64
	PhysOriginX int
	PhysOriginY int
}

// EffectiveRatio picks the pixel ratio to use for a capture. The
// ratio reported by the display device itself wins over one pushed
// from the host process: the two can legitimately disagree when a
// display is attached after launch and they queried scale at
// different times. Disagreement is expected, not an error.
func EffectiveRatio(deviceRatio, hostRatio float64) float64 {
	if deviceRatio > 0 {
		return deviceRatio
	}
	if hostRatio > 0 {
		return hostRatio
	}
	return 1
}

// Resolve converts a logical selection into the physical rectangle to
// crop from a native full resolution capture.
//
// Each field is rounded independently. Rounding the origin and extent
// as separate values keeps the cropped image exactly
// round(w*ratio) x round(h*ratio) pixels, which compounding rounding
// through a corner pair would not.
func (d DisplayScale) Resolve(sel Rect) PhysicalRect {
	n := sel.Normalize()
	return PhysicalRect{
		X:      int(math.Round((n.X-d.OriginX)*d.PixelRatio)) + d.PhysOriginX,
		Y:      int(math.Round((n.Y-d.OriginY)*d.PixelRatio)) + d.PhysOriginY,
		Width:  int(math.Round(n.Width * d.PixelRatio)),
		Height: int(math.Round(n.Height * d.PixelRatio)),
	}
}

// DisplayForPoint returns the display whose logical bounds contain p.
// A drag that spans displays resolves against the display that
// contains its starting point; per axis correctness across mixed
// ratios is a known limitation. Falls back to the first display when
// no bounds match.
func DisplayForPoint(displays []DisplayScale, p Point) (DisplayScale, bool) {
	for _, d := range displays {
		bounds := Rect{X: d.OriginX, Y: d.OriginY, Width: d.Width, Height: d.Height}
		if bounds.Contains(p) {
			return d, true
		}
	}
	if len(displays) > 0 {
		return displays[0], false
	}
	return DisplayScale{PixelRatio: 1}, false
}
