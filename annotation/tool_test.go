package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
)

func TestTextToolIsOneShot(t *testing.T) {
	e := NewEditor(testStyle())
	require.NoError(t, e.SetTool(ToolText))

	// No pointer-up needed: the shape commits on pointer-down and the
	// state returns to select.
	e.PointerDown(geom.Point{X: 50, Y: 50})

	shapes := e.Scene().Shapes()
	require.Len(t, shapes, 1)
	txt := shapes[0].(Text)
	assert.Equal(t, 50.0, txt.X)
	assert.Equal(t, 50.0, txt.Y)
	assert.Equal(t, DefaultTextContent, txt.Content)
	assert.Equal(t, ToolSelect, e.Tool())
}

func TestDragToolReturnsToSelect(t *testing.T) {
	e := NewEditor(testStyle())
	require.NoError(t, e.SetTool(ToolRect))

	e.PointerDown(geom.Point{X: 0, Y: 0})
	e.PointerDrag(geom.Point{X: 30, Y: 40})
	e.PointerUp()

	assert.Equal(t, 1, e.Scene().Len())
	assert.Equal(t, ToolSelect, e.Tool())
}

func TestToolSwitchRefusedMidGesture(t *testing.T) {
	e := NewEditor(testStyle())
	require.NoError(t, e.SetTool(ToolPen))

	e.PointerDown(geom.Point{X: 0, Y: 0})
	assert.Error(t, e.SetTool(ToolArrow))
	assert.Equal(t, ToolPen, e.Tool())

	e.PointerUp()
	assert.NoError(t, e.SetTool(ToolArrow))
}

func TestEscapeAbandonsGestureAndSelection(t *testing.T) {
	e := NewEditor(testStyle())
	require.NoError(t, e.SetTool(ToolPen))

	e.PointerDown(geom.Point{X: 0, Y: 0})
	e.PointerDrag(geom.Point{X: 10, Y: 10})
	e.Escape()

	assert.Equal(t, 0, e.Scene().Len(), "abandoned gestures are not committed")
	assert.Equal(t, ToolSelect, e.Tool())

	_, live := e.Live()
	assert.False(t, live)
}

func TestPointerUpWithoutSessionCommitsNothing(t *testing.T) {
	e := NewEditor(testStyle())
	e.PointerUp()
	assert.Equal(t, 0, e.Scene().Len())
}

func TestSelectModeHitAndTranslate(t *testing.T) {
	e := NewEditor(testStyle())
	require.NoError(t, e.SetTool(ToolRect))

	fillStyle := testStyle()
	fill := Color{G: 0xff, A: 0xff}
	fillStyle.Fill = &fill
	fillStyle.FillOpacity = 0.5
	e.SetStyle(fillStyle)

	e.PointerDown(geom.Point{X: 10, Y: 10})
	e.PointerDrag(geom.Point{X: 60, Y: 60})
	e.PointerUp()

	id := e.Scene().Shapes()[0].ID()

	// Down on the shape selects it, dragging translates it.
	e.PointerDown(geom.Point{X: 30, Y: 30})
	assert.Equal(t, id, e.Scene().SelectedID())

	e.PointerDrag(geom.Point{X: 40, Y: 35})
	e.PointerUp()

	moved, _ := e.Scene().ShapeByID(id)
	r := moved.(RectShape)
	assert.Equal(t, 20.0, r.X)
	assert.Equal(t, 15.0, r.Y)
	assert.Equal(t, 1, e.Scene().Len(), "translation moves the shape, it does not create one")

	// Down on empty canvas clears the selection.
	e.PointerDown(geom.Point{X: 500, Y: 500})
	assert.Equal(t, "", e.Scene().SelectedID())
}

func TestPointerLeaveAbandonsGesture(t *testing.T) {
	e := NewEditor(testStyle())
	require.NoError(t, e.SetTool(ToolEllipse))

	e.PointerDown(geom.Point{X: 0, Y: 0})
	e.PointerLeave()

	assert.Equal(t, 0, e.Scene().Len())
	assert.Equal(t, ToolSelect, e.Tool())
}

func TestParseTool(t *testing.T) {
	for _, name := range []string{"select", "pen", "arrow", "rect", "ellipse", "text"} {
		tool, err := ParseTool(name)
		require.NoError(t, err)
		assert.Equal(t, Tool(name), tool)
	}
	_, err := ParseTool("lasso")
	assert.Error(t, err)
}
