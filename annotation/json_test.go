package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
)

func TestShapeCodecKeepsVariants(t *testing.T) {
	fill := Color{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	shapes := []Shape{
		Line{
			Base:   Base{ShapeID: NewID(), StrokeColor: Color{R: 0xff, A: 0xff}, StrokeWidth: 3},
			Points: []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
		},
		Arrow{
			Base:  Base{ShapeID: NewID(), StrokeColor: Color{A: 0xff}, StrokeWidth: 2},
			Start: geom.Point{X: 0, Y: 0},
			End:   geom.Point{X: 10, Y: 10},
		},
		RectShape{
			Base: Base{ShapeID: NewID(), StrokeColor: fill, StrokeWidth: 2},
			X:    100, Y: 100, Width: -40, Height: -20,
			Fill: &fill, FillOpacity: 0.5,
		},
		Ellipse{
			Base:    Base{ShapeID: NewID(), StrokeColor: fill, StrokeWidth: 2},
			CenterX: 5, CenterY: 6, Radius: 7,
		},
		Text{
			Base: Base{ShapeID: NewID(), StrokeColor: Color{B: 0xff, A: 0xff}, StrokeWidth: 1},
			X:    50, Y: 60, Content: "note", FontSize: 18,
		},
	}

	data, err := MarshalShapes(shapes)
	require.NoError(t, err)

	decoded, err := UnmarshalShapes(data)
	require.NoError(t, err)
	require.Len(t, decoded, len(shapes))

	for i := range shapes {
		assert.Equal(t, shapes[i], decoded[i], "shape %d survives the round trip", i)
	}

	// Negative drag extents survive untouched, the anchor is not lost
	// to normalization.
	r := decoded[2].(RectShape)
	assert.Equal(t, -40.0, r.Width)
	assert.Equal(t, -20.0, r.Height)
}

func TestUnmarshalUnknownKindFails(t *testing.T) {
	_, err := UnmarshalShape([]byte(`{"kind":"star","id":"x"}`))
	assert.Error(t, err)
}

func TestColorHexRoundTrip(t *testing.T) {
	c := Color{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	parsed, err := ParseColor(c.Hex())
	require.NoError(t, err)
	assert.Equal(t, c, parsed)

	translucent := Color{R: 1, G: 2, B: 3, A: 0x80}
	parsed, err = ParseColor(translucent.Hex())
	require.NoError(t, err)
	assert.Equal(t, translucent, parsed)

	_, err = ParseColor("red")
	assert.Error(t, err)
}
