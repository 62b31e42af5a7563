package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
)

func TestPenSessionAppendsPoints(t *testing.T) {
	var s Session
	require.True(t, s.Begin(ToolPen, geom.Point{X: 10, Y: 10}, testStyle()))

	s.Update(geom.Point{X: 20, Y: 10})
	s.Update(geom.Point{X: 20, Y: 20})

	sh, ok := s.End()
	require.True(t, ok)
	line := sh.(Line)
	assert.Equal(t, []geom.Point{{X: 10, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 20}}, line.Points)
	assert.False(t, s.Active())
}

func TestArrowSessionTracksEndpoint(t *testing.T) {
	var s Session
	require.True(t, s.Begin(ToolArrow, geom.Point{X: 1, Y: 2}, testStyle()))

	s.Update(geom.Point{X: 50, Y: 60})
	s.Update(geom.Point{X: 30, Y: 40})

	sh, _ := s.End()
	arrow := sh.(Arrow)
	assert.Equal(t, geom.Point{X: 1, Y: 2}, arrow.Start)
	assert.Equal(t, geom.Point{X: 30, Y: 40}, arrow.End)
}

func TestRectSessionKeepsAnchor(t *testing.T) {
	var s Session
	require.True(t, s.Begin(ToolRect, geom.Point{X: 100, Y: 100}, testStyle()))

	// Drag up-left past the anchor: stored extents go negative, the
	// normalized render rect flips.
	s.Update(geom.Point{X: 60, Y: 80})

	sh, _ := s.End()
	r := sh.(RectShape)
	assert.Equal(t, 100.0, r.X)
	assert.Equal(t, 100.0, r.Y)
	assert.Equal(t, -40.0, r.Width)
	assert.Equal(t, -20.0, r.Height)
	assert.Equal(t, geom.Rect{X: 60, Y: 80, Width: 40, Height: 20}, r.Bounds())
}

func TestEllipseSessionRadiusIsDistance(t *testing.T) {
	var s Session
	require.True(t, s.Begin(ToolEllipse, geom.Point{X: 0, Y: 0}, testStyle()))

	s.Update(geom.Point{X: 3, Y: 4})

	sh, _ := s.End()
	e := sh.(Ellipse)
	assert.Equal(t, 0.0, e.CenterX)
	assert.Equal(t, 0.0, e.CenterY)
	assert.Equal(t, 5.0, e.Radius)
}

func TestEndWithoutBeginIsNoop(t *testing.T) {
	var s Session
	sh, ok := s.End()
	assert.False(t, ok)
	assert.Nil(t, sh)
}

func TestAbandonDiscardsShape(t *testing.T) {
	var s Session
	require.True(t, s.Begin(ToolPen, geom.Point{X: 1, Y: 1}, testStyle()))
	s.Abandon()

	assert.False(t, s.Active())
	_, ok := s.End()
	assert.False(t, ok)
}

func TestBeginRefusedWhileActive(t *testing.T) {
	var s Session
	require.True(t, s.Begin(ToolPen, geom.Point{}, testStyle()))
	assert.False(t, s.Begin(ToolArrow, geom.Point{}, testStyle()))
}
