// Package geom converts pointer gestures expressed in logical (CSS)
// pixels into the physical pixel rectangles that screen captures are
// cropped with.
package geom

import (
	"math"

	"github.com/pkg/errors"
)

// ErrTooSmall rejects a selection below the minimum capture size.
// Boundaries swallow it silently; a tiny selection is interaction
// noise, not a user-visible fault.
var ErrTooSmall = errors.New("selection below minimum size")

// Point is a 2-D coordinate. The coordinate space (logical overlay,
// physical display or canvas local) is determined by context; values
// must not cross spaces without an explicit conversion.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// PhysicalRect is an axis-aligned rectangle in physical pixels.
type PhysicalRect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectFromCorners builds a normalized rectangle from two drag
// endpoints. The result has non-negative width and height regardless
// of the order the corners are given in.
func RectFromCorners(a, b Point) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(a.X - b.X),
		Height: math.Abs(a.Y - b.Y),
	}
}

// Normalize returns an equivalent rectangle with non-negative width
// and height. The receiver is not modified, so a rectangle that
// carries a drag anchor in its sign keeps it.
func (r Rect) Normalize() Rect {
	n := r
	if n.Width < 0 {
		n.X += n.Width
		n.Width = -n.Width
	}
	if n.Height < 0 {
		n.Y += n.Height
		n.Height = -n.Height
	}
	return n
}

// Contains reports whether p lies inside the normalized rectangle.
func (r Rect) Contains(p Point) bool {
	n := r.Normalize()
	return p.X >= n.X && p.X <= n.X+n.Width &&
		p.Y >= n.Y && p.Y <= n.Y+n.Height
}

// MeetsMinSize reports whether both dimensions of the normalized
// rectangle reach the given threshold in logical pixels. Selections
// below the threshold are dropped silently by callers; a tiny
// selection is interaction noise, not an error.
func (r Rect) MeetsMinSize(min float64) bool {
	n := r.Normalize()
	return n.Width >= min && n.Height >= min
}

// CheckMinSize returns ErrTooSmall when the rectangle fails the
// threshold.
func CheckMinSize(r Rect, min float64) error {
	if !r.MeetsMinSize(min) {
		return errors.Wrapf(ErrTooSmall, "%vx%v below %v px", r.Normalize().Width, r.Normalize().Height, min)
	}
	return nil
}
