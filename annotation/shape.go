// Package annotation holds the vector scene a capture is marked up
// with: the typed shape model, the drawing session that constructs
// shapes from pointer gestures and the scene manager with its linear
// undo stack.
package annotation

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
)

// Kind discriminates the shape variants.
type Kind string

const (
	KindLine    Kind = "line"
	KindArrow   Kind = "arrow"
	KindRect    Kind = "rect"
	KindEllipse Kind = "ellipse"
	KindText    Kind = "text"
)

// Color is an 8 bit RGBA color, serialized as #rrggbb or #rrggbbaa.
type Color struct {
	R, G, B, A uint8
}

func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor reads a #rrggbb or #rrggbbaa string.
func ParseColor(s string) (Color, error) {
	c := Color{A: 0xff}
	switch len(s) {
	case 7:
		_, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
		return c, err
	case 9:
		_, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
		return c, err
	}
	return c, fmt.Errorf("invalid color %q", s)
}

// Shape is one committed annotation. Shapes are value records: every
// mutation goes through the Scene, which swaps whole shapes rather
// than fields in place.
type Shape interface {
	Kind() Kind
	ID() string

	// Translate returns a copy moved by (dx, dy).
	Translate(dx, dy float64) Shape
}

// Base carries the fields every shape has. Z-order is implicit in the
// scene's slice position, there is no field for it.
type Base struct {
	ShapeID     string  `json:"id"`
	StrokeColor Color   `json:"strokeColor"`
	StrokeWidth float64 `json:"strokeWidth"`
}

func (b Base) ID() string { return b.ShapeID }

// NewID returns a fresh shape id. Ids are unique within a scene and
// never reused after deletion.
func NewID() string { return uuid.New().String() }

// Line is a freehand pen stroke: at least one point, growing
// monotonically while drawn, rendered as a smoothed polyline.
type Line struct {
	Base
	Points []geom.Point `json:"points"`
}

func (l Line) Kind() Kind { return KindLine }

func (l Line) Translate(dx, dy float64) Shape {
	pts := make([]geom.Point, len(l.Points))
	for i, p := range l.Points {
		pts[i] = geom.Point{X: p.X + dx, Y: p.Y + dy}
	}
	l.Points = pts
	return l
}

// Arrow is a two point shaft with a filled head at the end point.
type Arrow struct {
	Base
	Start geom.Point `json:"start"`
	End   geom.Point `json:"end"`
}

func (a Arrow) Kind() Kind { return KindArrow }

func (a Arrow) Translate(dx, dy float64) Shape {
	a.Start = geom.Point{X: a.Start.X + dx, Y: a.Start.Y + dy}
	a.End = geom.Point{X: a.End.X + dx, Y: a.End.Y + dy}
	return a
}

// RectShape keeps the raw drag extents: width and height may be
// negative while the anchor corner is dragged past. Renderers and hit
// tests normalize on the fly, the stored fields are never flipped.
type RectShape struct {
	Base
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Fill        *Color  `json:"fill,omitempty"`
	FillOpacity float64 `json:"fillOpacity"`
}

func (r RectShape) Kind() Kind { return KindRect }

func (r RectShape) Translate(dx, dy float64) Shape {
	r.X += dx
	r.Y += dy
	return r
}

// Bounds returns the normalized render rectangle.
func (r RectShape) Bounds() geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}.Normalize()
}

// Ellipse is a circle around a center; the radius tracks the pointer
// distance while drawn.
type Ellipse struct {
	Base
	CenterX     float64 `json:"centerX"`
	CenterY     float64 `json:"centerY"`
	Radius      float64 `json:"radius"`
	Fill        *Color  `json:"fill,omitempty"`
	FillOpacity float64 `json:"fillOpacity"`
}

func (e Ellipse) Kind() Kind { return KindEllipse }

func (e Ellipse) Translate(dx, dy float64) Shape {
	e.CenterX += dx
	e.CenterY += dy
	return e
}

// Text is a one-shot label. Content stays editable after creation
// through Scene.EditText.
type Text struct {
	Base
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Content  string  `json:"content"`
	FontSize float64 `json:"fontSize"`
}

func (t Text) Kind() Kind { return KindText }

func (t Text) Translate(dx, dy float64) Shape {
	t.X += dx
	t.Y += dy
	return t
}

// Hits reports whether p lies on the shape, with slop logical pixels
// of tolerance around strokes. The switch is exhaustive over kinds.
func Hits(s Shape, p geom.Point, slop float64) bool {
	switch v := s.(type) {
	case Line:
		for i := 0; i+1 < len(v.Points); i++ {
			if distToSegment(p, v.Points[i], v.Points[i+1]) <= v.StrokeWidth/2+slop {
				return true
			}
		}
		if len(v.Points) == 1 {
			return dist(p, v.Points[0]) <= v.StrokeWidth/2+slop
		}
		return false
	case Arrow:
		return distToSegment(p, v.Start, v.End) <= v.StrokeWidth/2+slop
	case RectShape:
		b := v.Bounds()
		if v.Fill != nil {
			return b.Contains(p)
		}
		outer := geom.Rect{X: b.X - slop, Y: b.Y - slop, Width: b.Width + 2*slop, Height: b.Height + 2*slop}
		inner := geom.Rect{X: b.X + slop, Y: b.Y + slop, Width: b.Width - 2*slop, Height: b.Height - 2*slop}
		if inner.Width <= 0 || inner.Height <= 0 {
			return outer.Contains(p)
		}
		return outer.Contains(p) && !inner.Contains(p)
	case Ellipse:
		d := math.Hypot(p.X-v.CenterX, p.Y-v.CenterY)
		if v.Fill != nil {
			return d <= v.Radius+slop
		}
		return math.Abs(d-v.Radius) <= v.StrokeWidth/2+slop
	case Text:
		// Rough box: glyphs are about 0.6em wide, one em tall.
		w := 0.6 * v.FontSize * float64(len(v.Content))
		box := geom.Rect{X: v.X - slop, Y: v.Y - v.FontSize - slop, Width: w + 2*slop, Height: v.FontSize + 2*slop}
		return box.Contains(p)
	}
	return false
}

func dist(a, b geom.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func distToSegment(p, a, b geom.Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	l2 := abx*abx + aby*aby
	if l2 == 0 {
		return dist(p, a)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / l2
	t = math.Max(0, math.Min(1, t))
	return dist(p, geom.Point{X: a.X + t*abx, Y: a.Y + t*aby})
}
