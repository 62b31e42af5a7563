package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harsh-simform/snapflow-desktop-sub001/annotation"
	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
)

var (
	red   = annotation.Color{R: 0xff, A: 0xff}
	blue  = annotation.Color{B: 0xff, A: 0xff}
	black = annotation.Color{A: 0xff}
)

func whiteBackground(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func isRed(c color.RGBA) bool {
	return c.R > 0xf0 && c.G < 0x10 && c.B < 0x10
}

func isWhite(c color.RGBA) bool {
	return c.R > 0xf0 && c.G > 0xf0 && c.B > 0xf0
}

func TestFlattenPenStrokeAtMultiplier2(t *testing.T) {
	line := annotation.Line{
		Base:   annotation.Base{ShapeID: annotation.NewID(), StrokeColor: red, StrokeWidth: 4},
		Points: []geom.Point{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}},
	}

	img, err := Flatten(whiteBackground(100, 100), []annotation.Shape{line}, 2)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())

	// Every drawn point lands at its coordinates scaled by 2.
	for _, p := range []image.Point{{20, 20}, {40, 20}, {40, 40}} {
		assert.True(t, isRed(img.RGBAAt(p.X, p.Y)), "expected stroke at %v", p)
	}
	assert.True(t, isWhite(img.RGBAAt(150, 150)), "background stays untouched away from the stroke")
}

func TestFlattenRectNormalizesNegativeExtents(t *testing.T) {
	r := annotation.RectShape{
		Base: annotation.Base{ShapeID: annotation.NewID(), StrokeColor: red, StrokeWidth: 2},
		// Raw drag from (100,100) to (60,80).
		X: 100, Y: 100, Width: -40, Height: -20,
		Fill: &blue, FillOpacity: 1,
	}

	img, err := Flatten(whiteBackground(150, 150), []annotation.Shape{r}, 1)
	require.NoError(t, err)

	inside := img.RGBAAt(80, 90)
	assert.True(t, inside.B > 0xf0 && inside.R < 0x10, "normalized interior is filled")
	assert.True(t, isWhite(img.RGBAAt(110, 110)), "outside the normalized rect stays empty")
	assert.True(t, isRed(img.RGBAAt(60, 90)), "stroke follows the normalized border")
}

func TestFlattenEllipseRing(t *testing.T) {
	e := annotation.Ellipse{
		Base:    annotation.Base{ShapeID: annotation.NewID(), StrokeColor: red, StrokeWidth: 4},
		CenterX: 50, CenterY: 50, Radius: 20,
	}

	img, err := Flatten(whiteBackground(100, 100), []annotation.Shape{e}, 1)
	require.NoError(t, err)

	assert.True(t, isRed(img.RGBAAt(70, 50)), "ring at radius")
	assert.True(t, isRed(img.RGBAAt(30, 50)), "ring at radius, far side")
	assert.True(t, isWhite(img.RGBAAt(50, 50)), "no fill: center stays empty")
}

func TestFlattenArrow(t *testing.T) {
	a := annotation.Arrow{
		Base:  annotation.Base{ShapeID: annotation.NewID(), StrokeColor: red, StrokeWidth: 2},
		Start: geom.Point{X: 10, Y: 50},
		End:   geom.Point{X: 60, Y: 50},
	}

	img, err := Flatten(whiteBackground(100, 100), []annotation.Shape{a}, 1)
	require.NoError(t, err)

	assert.True(t, isRed(img.RGBAAt(10, 50)), "shaft start")
	assert.True(t, isRed(img.RGBAAt(30, 50)), "shaft middle")
	assert.True(t, isRed(img.RGBAAt(55, 50)), "head interior")
}

func TestFlattenText(t *testing.T) {
	txt := annotation.Text{
		Base: annotation.Base{ShapeID: annotation.NewID(), StrokeColor: black, StrokeWidth: 1},
		X:    20, Y: 50, Content: "Hi", FontSize: 16,
	}

	img, err := Flatten(whiteBackground(100, 100), []annotation.Shape{txt}, 1)
	require.NoError(t, err)

	found := false
	for y := 30; y < 55 && !found; y++ {
		for x := 18; x < 60 && !found; x++ {
			if !isWhite(img.RGBAAt(x, y)) {
				found = true
			}
		}
	}
	assert.True(t, found, "some glyph pixels land near the baseline")
}

func TestFlattenZOrderIsInsertionOrder(t *testing.T) {
	bottom := annotation.RectShape{
		Base: annotation.Base{ShapeID: annotation.NewID(), StrokeColor: red, StrokeWidth: 1},
		X:    10, Y: 10, Width: 60, Height: 60,
		Fill: &red, FillOpacity: 1,
	}
	top := annotation.RectShape{
		Base: annotation.Base{ShapeID: annotation.NewID(), StrokeColor: blue, StrokeWidth: 1},
		X:    30, Y: 30, Width: 20, Height: 20,
		Fill: &blue, FillOpacity: 1,
	}

	img, err := Flatten(whiteBackground(100, 100), []annotation.Shape{bottom, top}, 1)
	require.NoError(t, err)

	overlap := img.RGBAAt(40, 40)
	assert.True(t, overlap.B > 0xf0, "later shape draws over earlier shape")
}

func TestFlattenRejectsBadInput(t *testing.T) {
	_, err := Flatten(nil, nil, 2)
	assert.Error(t, err)

	_, err = Flatten(whiteBackground(10, 10), nil, 0)
	assert.Error(t, err)

	_, err = Flatten(whiteBackground(10, 10), nil, -1)
	assert.Error(t, err)
}

func TestEncodePNG(t *testing.T) {
	img, err := Flatten(whiteBackground(10, 10), nil, 1)
	require.NoError(t, err)

	data, err := EncodePNG(img)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}
