// Package render flattens a background capture and a scene's shapes
// into one raster image.
//
// Strokes are built as filled outline polygons (segment quads plus
// round joins) and filled with a scanline rasterizer; nothing holds a
// live handle into a rendering library, the scene data is the only
// source of truth.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
)

// circleK is the cubic Bezier approximation constant for a quarter
// circle.
const circleK = 0.5522847498

// canvas wraps one destination image and a reusable rasterizer.
type canvas struct {
	dst *image.RGBA
	ras *vector.Rasterizer
}

func newCanvas(dst *image.RGBA) *canvas {
	b := dst.Bounds()
	return &canvas{
		dst: dst,
		ras: vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

func (c *canvas) moveTo(p geom.Point) { c.ras.MoveTo(float32(p.X), float32(p.Y)) }
func (c *canvas) lineTo(p geom.Point) { c.ras.LineTo(float32(p.X), float32(p.Y)) }

// fill rasterizes the accumulated path with col and resets the path.
func (c *canvas) fill(col color.Color) {
	c.ras.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{})
	b := c.dst.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Over
}

// circle appends a full circle path. ccw reverses the winding, which
// subtracts the circle from an enclosing path.
func (c *canvas) circle(cx, cy, r float64, ccw bool) {
	k := circleK * r
	c.ras.MoveTo(float32(cx+r), float32(cy))
	if !ccw {
		c.ras.CubeTo(float32(cx+r), float32(cy+k), float32(cx+k), float32(cy+r), float32(cx), float32(cy+r))
		c.ras.CubeTo(float32(cx-k), float32(cy+r), float32(cx-r), float32(cy+k), float32(cx-r), float32(cy))
		c.ras.CubeTo(float32(cx-r), float32(cy-k), float32(cx-k), float32(cy-r), float32(cx), float32(cy-r))
		c.ras.CubeTo(float32(cx+k), float32(cy-r), float32(cx+r), float32(cy-k), float32(cx+r), float32(cy))
	} else {
		c.ras.CubeTo(float32(cx+r), float32(cy-k), float32(cx+k), float32(cy-r), float32(cx), float32(cy-r))
		c.ras.CubeTo(float32(cx-k), float32(cy-r), float32(cx-r), float32(cy-k), float32(cx-r), float32(cy))
		c.ras.CubeTo(float32(cx-r), float32(cy+k), float32(cx-k), float32(cy+r), float32(cx), float32(cy+r))
		c.ras.CubeTo(float32(cx+k), float32(cy+r), float32(cx+r), float32(cy+k), float32(cx+r), float32(cy))
	}
	c.ras.ClosePath()
}

// disc fills a circle immediately.
func (c *canvas) disc(cx, cy, r float64, col color.Color) {
	c.circle(cx, cy, r, false)
	c.fill(col)
}

// segmentQuad appends the thick-line polygon for one segment.
func (c *canvas) segmentQuad(a, b geom.Point, width float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit normal, scaled to half the stroke width.
	nx, ny := -dy/length*width/2, dx/length*width/2

	c.moveTo(geom.Point{X: a.X + nx, Y: a.Y + ny})
	c.lineTo(geom.Point{X: b.X + nx, Y: b.Y + ny})
	c.lineTo(geom.Point{X: b.X - nx, Y: b.Y - ny})
	c.lineTo(geom.Point{X: a.X - nx, Y: a.Y - ny})
	c.ras.ClosePath()
}

// strokePolyline draws an open polyline with round caps and joins.
// Each vertex gets a disc so joins stay solid at any angle.
func (c *canvas) strokePolyline(pts []geom.Point, width float64, col color.Color) {
	if len(pts) == 0 {
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		c.segmentQuad(pts[i], pts[i+1], width)
		c.fill(col)
	}
	for _, p := range pts {
		c.disc(p.X, p.Y, width/2, col)
	}
}

// ring draws a circle outline of the given stroke width as an annulus
// in a single fill, so translucency does not double up where quads
// would overlap.
func (c *canvas) ring(cx, cy, radius, width float64, col color.Color) {
	outer := radius + width/2
	inner := radius - width/2
	if inner <= 0 {
		c.disc(cx, cy, outer, col)
		return
	}
	c.circle(cx, cy, outer, false)
	c.circle(cx, cy, inner, true)
	c.fill(col)
}

// fillTriangle fills the triangle a-b-c.
func (c *canvas) fillTriangle(a, b, t geom.Point, col color.Color) {
	c.moveTo(a)
	c.lineTo(b)
	c.lineTo(t)
	c.ras.ClosePath()
	c.fill(col)
}

// fillRect fills an axis-aligned rectangle.
func (c *canvas) fillRect(r geom.Rect, col color.Color) {
	n := r.Normalize()
	c.moveTo(geom.Point{X: n.X, Y: n.Y})
	c.lineTo(geom.Point{X: n.X + n.Width, Y: n.Y})
	c.lineTo(geom.Point{X: n.X + n.Width, Y: n.Y + n.Height})
	c.lineTo(geom.Point{X: n.X, Y: n.Y + n.Height})
	c.ras.ClosePath()
	c.fill(col)
}

// smoothPolyline resamples a pen stroke with midpoint quadratics so
// the rendered ink does not show polyline corners. The original
// vertices still get their join discs from strokePolyline, so the
// stroke always covers the raw input points.
func smoothPolyline(pts []geom.Point, steps int) []geom.Point {
	if len(pts) <= 2 || steps < 2 {
		return pts
	}

	out := make([]geom.Point, 0, len(pts)*steps)
	out = append(out, pts[0])

	mid := func(a, b geom.Point) geom.Point {
		return geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	}

	// Quadratic through each midpoint pair with the raw vertex as the
	// control point.
	prev := pts[0]
	for i := 1; i+1 < len(pts); i++ {
		ctrl := pts[i]
		next := mid(pts[i], pts[i+1])
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			u := 1 - t
			out = append(out, geom.Point{
				X: u*u*prev.X + 2*u*t*ctrl.X + t*t*next.X,
				Y: u*u*prev.Y + 2*u*t*ctrl.Y + t*t*next.Y,
			})
		}
		prev = next
	}
	out = append(out, pts[len(pts)-1])
	return out
}
