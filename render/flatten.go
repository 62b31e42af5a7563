package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"

	"github.com/harsh-simform/snapflow-desktop-sub001/annotation"
	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
)

// Arrowheads scale with the stroke so line weight stays consistent at
// any multiplier.
const (
	arrowHeadPerWidth = 4.0
	arrowHeadMin      = 8.0
	smoothSteps       = 8
)

// Flatten renders the background plus the committed shapes into one
// raster at the given pixel density multiplier. Coordinates and
// stroke widths scale uniformly, so a 2x export doubles positions and
// line weights alike.
//
// Callers pass committed shapes only; a live drawing session shape
// must never reach an export.
func Flatten(background image.Image, shapes []annotation.Shape, multiplier float64) (*image.RGBA, error) {
	if background == nil {
		return nil, errors.New("no background image")
	}
	if multiplier <= 0 {
		return nil, errors.Errorf("invalid pixel multiplier %v", multiplier)
	}

	src := background.Bounds()
	w := int(math.Round(float64(src.Dx()) * multiplier))
	h := int(math.Round(float64(src.Dy()) * multiplier))
	if w <= 0 || h <= 0 {
		return nil, errors.New("background has no pixels")
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if multiplier == 1 {
		xdraw.Draw(dst, dst.Bounds(), background, src.Min, xdraw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), background, src, xdraw.Src, nil)
	}

	c := newCanvas(dst)
	for _, s := range shapes {
		drawShape(c, s, multiplier)
	}
	return dst, nil
}

// EncodePNG encodes a flattened raster for the persistence
// collaborator.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "encoding png")
	}
	return buf.Bytes(), nil
}

func rgba(c annotation.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func fillColor(c *annotation.Color, opacity float64) color.NRGBA {
	col := rgba(*c)
	col.A = uint8(math.Round(float64(col.A) * math.Max(0, math.Min(1, opacity))))
	return col
}

func scalePoint(p geom.Point, m float64) geom.Point {
	return geom.Point{X: p.X * m, Y: p.Y * m}
}

// drawShape rasterizes one shape in z-order. The switch is exhaustive
// over shape kinds; an unknown kind draws nothing.
func drawShape(c *canvas, s annotation.Shape, m float64) {
	switch v := s.(type) {
	case annotation.Line:
		pts := make([]geom.Point, len(v.Points))
		for i, p := range v.Points {
			pts[i] = scalePoint(p, m)
		}
		c.strokePolyline(smoothPolyline(pts, smoothSteps), v.StrokeWidth*m, rgba(v.StrokeColor))
		// Join discs on the raw vertices: smoothing must not pull the
		// ink off the points the user actually drew through.
		for _, p := range pts {
			c.disc(p.X, p.Y, v.StrokeWidth*m/2, rgba(v.StrokeColor))
		}

	case annotation.Arrow:
		start := scalePoint(v.Start, m)
		end := scalePoint(v.End, m)
		col := rgba(v.StrokeColor)
		width := v.StrokeWidth * m

		c.strokePolyline([]geom.Point{start, end}, width, col)
		drawArrowHead(c, start, end, width, col)

	case annotation.RectShape:
		b := v.Bounds()
		scaled := geom.Rect{X: b.X * m, Y: b.Y * m, Width: b.Width * m, Height: b.Height * m}
		if v.Fill != nil {
			c.fillRect(scaled, fillColor(v.Fill, v.FillOpacity))
		}
		corners := []geom.Point{
			{X: scaled.X, Y: scaled.Y},
			{X: scaled.X + scaled.Width, Y: scaled.Y},
			{X: scaled.X + scaled.Width, Y: scaled.Y + scaled.Height},
			{X: scaled.X, Y: scaled.Y + scaled.Height},
			{X: scaled.X, Y: scaled.Y},
		}
		c.strokePolyline(corners, v.StrokeWidth*m, rgba(v.StrokeColor))

	case annotation.Ellipse:
		cx, cy, r := v.CenterX*m, v.CenterY*m, v.Radius*m
		if v.Fill != nil {
			c.circle(cx, cy, r, false)
			c.fill(fillColor(v.Fill, v.FillOpacity))
		}
		c.ring(cx, cy, r, v.StrokeWidth*m, rgba(v.StrokeColor))

	case annotation.Text:
		// Errors here mean the builtin font failed to parse, which
		// cannot be recovered per shape; the label is skipped.
		_ = drawText(c.dst, v.Content, v.X*m, v.Y*m, v.FontSize*m, rgba(v.StrokeColor))
	}
}

// drawArrowHead fills the triangular head with its tip at end.
func drawArrowHead(c *canvas, start, end geom.Point, width float64, col color.NRGBA) {
	dx, dy := end.X-start.X, end.Y-start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length

	headLen := math.Max(arrowHeadPerWidth*width, arrowHeadMin)
	if headLen > length {
		headLen = length
	}
	baseX, baseY := end.X-ux*headLen, end.Y-uy*headLen
	halfW := headLen / 2

	left := geom.Point{X: baseX - uy*halfW, Y: baseY + ux*halfW}
	right := geom.Point{X: baseX + uy*halfW, Y: baseY - ux*halfW}
	c.fillTriangle(left, right, end, col)
}
