package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectFromCornersOrderIndependent(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		a := Point{X: r.Float64()*2000 - 500, Y: r.Float64()*2000 - 500}
		b := Point{X: r.Float64()*2000 - 500, Y: r.Float64()*2000 - 500}

		ab := RectFromCorners(a, b)
		ba := RectFromCorners(b, a)

		assert.Equal(t, ab, ba)
		assert.True(t, ab.Width >= 0)
		assert.True(t, ab.Height >= 0)
	}
}

func TestNormalizePreservesAnchor(t *testing.T) {
	// Drag from (100,100) to (60,80): the stored rect keeps the anchor
	// and negative extents, the normalized view flips them.
	raw := Rect{X: 100, Y: 100, Width: -40, Height: -20}
	n := raw.Normalize()

	assert.Equal(t, Rect{X: 60, Y: 80, Width: 40, Height: 20}, n)
	assert.Equal(t, Rect{X: 100, Y: 100, Width: -40, Height: -20}, raw)
}

func TestMeetsMinSize(t *testing.T) {
	small := Rect{X: 0, Y: 0, Width: 9, Height: 100}
	assert.False(t, small.MeetsMinSize(10))
	assert.True(t, small.MeetsMinSize(9))

	// Negative extents are judged on the normalized size.
	drag := Rect{X: 50, Y: 50, Width: -49, Height: -51}
	assert.False(t, drag.MeetsMinSize(50))
	assert.True(t, drag.MeetsMinSize(10))
}

func TestCheckMinSizeSentinel(t *testing.T) {
	err := CheckMinSize(Rect{Width: 9, Height: 100}, 10)
	assert.ErrorIs(t, err, ErrTooSmall)

	assert.NoError(t, CheckMinSize(Rect{Width: 10, Height: 10}, 10))
}

func TestResolveWidthHeightExact(t *testing.T) {
	ratios := []float64{1, 1.25, 1.5, 2, 3}
	r := rand.New(rand.NewSource(2))

	for _, s := range ratios {
		d := DisplayScale{PixelRatio: s}
		for i := 0; i < 100; i++ {
			sel := Rect{
				X:      r.Float64() * 1000,
				Y:      r.Float64() * 1000,
				Width:  r.Float64() * 1000,
				Height: r.Float64() * 1000,
			}
			phys := d.Resolve(sel)

			assert.Equal(t, int(math.Round(sel.Width*s)), phys.Width)
			assert.Equal(t, int(math.Round(sel.Height*s)), phys.Height)
		}
	}
}

func TestResolveFoldsOrigin(t *testing.T) {
	// Second display to the right of a 1440 px wide primary, 2x scale.
	d := DisplayScale{
		OriginX:     1440,
		OriginY:     0,
		Width:       1280,
		Height:      800,
		PixelRatio:  2,
		PhysOriginX: 2880,
		PhysOriginY: 0,
	}

	phys := d.Resolve(Rect{X: 1540, Y: 50, Width: 200, Height: 100})
	assert.Equal(t, PhysicalRect{X: 3080, Y: 100, Width: 400, Height: 200}, phys)
}

func TestEffectiveRatio(t *testing.T) {
	assert.Equal(t, 2.0, EffectiveRatio(2, 1.25))
	assert.Equal(t, 1.25, EffectiveRatio(0, 1.25))
	assert.Equal(t, 1.0, EffectiveRatio(0, 0))
}

func TestDisplayForPoint(t *testing.T) {
	displays := []DisplayScale{
		{OriginX: 0, OriginY: 0, Width: 1440, Height: 900, PixelRatio: 2},
		{OriginX: 1440, OriginY: 0, Width: 1920, Height: 1080, PixelRatio: 1},
	}

	d, ok := DisplayForPoint(displays, Point{X: 1500, Y: 10})
	assert.True(t, ok)
	assert.Equal(t, 1.0, d.PixelRatio)

	// Off every display: fall back to the first one.
	d, ok = DisplayForPoint(displays, Point{X: -5000, Y: -5000})
	assert.False(t, ok)
	assert.Equal(t, 2.0, d.PixelRatio)
}
