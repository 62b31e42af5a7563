package annotation

import (
	"math"

	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
)

// Style holds the stroke and fill settings new shapes are seeded
// with.
type Style struct {
	StrokeColor Color
	StrokeWidth float64
	Fill        *Color
	FillOpacity float64
	FontSize    float64
}

// Session is the single in-progress shape construction gesture. Begin
// seeds a shape from the pointer-down point, Update recomputes its
// geometry from the latest point with the tool's own rule, End hands
// the finished shape over for committing. One session per gesture; a
// pointer-up without a pointer-down commits nothing.
type Session struct {
	tool   Tool
	shape  Shape
	anchor geom.Point
	active bool
}

// Active reports whether a gesture is in flight.
func (s *Session) Active() bool { return s.active }

// Live returns the uncommitted shape for preview rendering. Exporters
// must not use this: only committed shapes are flattened.
func (s *Session) Live() (Shape, bool) {
	if !s.active {
		return nil, false
	}
	return s.shape, true
}

// Begin seeds a shape at p. The text tool has no drag phase and never
// opens a session; callers commit it on pointer-down directly.
func (s *Session) Begin(tool Tool, p geom.Point, style Style) bool {
	if s.active {
		return false
	}

	switch tool {
	case ToolPen:
		s.shape = Line{
			Base:   Base{ShapeID: NewID(), StrokeColor: style.StrokeColor, StrokeWidth: style.StrokeWidth},
			Points: []geom.Point{p},
		}
	case ToolArrow:
		s.shape = Arrow{
			Base:  Base{ShapeID: NewID(), StrokeColor: style.StrokeColor, StrokeWidth: style.StrokeWidth},
			Start: p,
			End:   p,
		}
	case ToolRect:
		s.shape = RectShape{
			Base:        Base{ShapeID: NewID(), StrokeColor: style.StrokeColor, StrokeWidth: style.StrokeWidth},
			X:           p.X,
			Y:           p.Y,
			Fill:        style.Fill,
			FillOpacity: style.FillOpacity,
		}
	case ToolEllipse:
		s.shape = Ellipse{
			Base:        Base{ShapeID: NewID(), StrokeColor: style.StrokeColor, StrokeWidth: style.StrokeWidth},
			CenterX:     p.X,
			CenterY:     p.Y,
			Fill:        style.Fill,
			FillOpacity: style.FillOpacity,
		}
	default:
		return false
	}

	s.tool = tool
	s.anchor = p
	s.active = true
	return true
}

// Update recomputes the live shape from the latest pointer position.
// Each rule is pure given the seed and p; nothing beyond the shape
// itself is retained between calls.
func (s *Session) Update(p geom.Point) {
	if !s.active {
		return
	}

	switch v := s.shape.(type) {
	case Line:
		v.Points = append(v.Points, p)
		s.shape = v
	case Arrow:
		v.End = p
		s.shape = v
	case RectShape:
		// Raw extents from the anchor; may go negative. Normalization
		// happens at render and hit-test time so the anchor corner
		// survives.
		v.Width = p.X - s.anchor.X
		v.Height = p.Y - s.anchor.Y
		s.shape = v
	case Ellipse:
		v.Radius = math.Hypot(p.X-s.anchor.X, p.Y-s.anchor.Y)
		s.shape = v
	}
}

// End closes the gesture and returns the shape to commit. Calling End
// with no active session is a no-op.
func (s *Session) End() (Shape, bool) {
	if !s.active {
		return nil, false
	}
	shape := s.shape
	s.shape = nil
	s.active = false
	return shape, true
}

// Abandon discards the in-progress shape without committing. Used
// when the pointer leaves the canvas mid-gesture or Escape is
// pressed.
func (s *Session) Abandon() {
	s.shape = nil
	s.active = false
}
