package annotation

import (
	"fmt"

	"github.com/harsh-simform/snapflow-desktop-sub001/geom"
)

// Tool is the active interaction mode.
type Tool string

const (
	ToolSelect  Tool = "select"
	ToolPen     Tool = "pen"
	ToolArrow   Tool = "arrow"
	ToolRect    Tool = "rect"
	ToolEllipse Tool = "ellipse"
	ToolText    Tool = "text"
)

// ParseTool maps a user-supplied name to a tool.
func ParseTool(s string) (Tool, error) {
	switch Tool(s) {
	case ToolSelect, ToolPen, ToolArrow, ToolRect, ToolEllipse, ToolText:
		return Tool(s), nil
	}
	return "", fmt.Errorf("unknown tool %q", s)
}

// DefaultTextContent seeds a one-shot text shape until the user edits
// it.
const DefaultTextContent = "Text"

// hitSlop is the pick tolerance around strokes in logical pixels.
const hitSlop = 4

// Editor is the tool state machine wired to a scene and a drawing
// session. Select is the initial state and every completed or
// cancelled construction returns to it: a drawing tool is single-use
// per stroke.
type Editor struct {
	scene   *Scene
	session Session
	tool    Tool
	style   Style

	dragging bool
	lastDrag geom.Point
}

func NewEditor(style Style) *Editor {
	return &Editor{
		scene: NewScene(),
		tool:  ToolSelect,
		style: style,
	}
}

func (e *Editor) Scene() *Scene { return e.scene }
func (e *Editor) Tool() Tool    { return e.tool }
func (e *Editor) Style() Style  { return e.style }

// Live exposes the in-progress shape for preview rendering only.
func (e *Editor) Live() (Shape, bool) { return e.session.Live() }

// SetStyle changes the seed style for new shapes.
func (e *Editor) SetStyle(style Style) { e.style = style }

// SetTool switches the interaction mode. Switching while a shape is
// mid-construction is refused: the boundary disables tool controls
// during a gesture and this guard backs that up.
func (e *Editor) SetTool(t Tool) error {
	if e.session.Active() {
		return fmt.Errorf("cannot switch tool during an active drawing gesture")
	}
	e.tool = t
	return nil
}

// PointerDown feeds a pointer-down at p in canvas-local logical
// pixels.
//
// A text tool is one-shot: the shape commits immediately and the
// state returns to select without waiting for a pointer-up.
func (e *Editor) PointerDown(p geom.Point) {
	switch e.tool {
	case ToolSelect:
		if sh, ok := e.scene.ShapeAt(p, hitSlop); ok {
			e.scene.Select(sh.ID())
			e.dragging = true
			e.lastDrag = p
		} else {
			e.scene.Select("")
		}
	case ToolText:
		e.scene.Commit(Text{
			Base:     Base{ShapeID: NewID(), StrokeColor: e.style.StrokeColor, StrokeWidth: e.style.StrokeWidth},
			X:        p.X,
			Y:        p.Y,
			Content:  DefaultTextContent,
			FontSize: e.style.FontSize,
		})
		e.tool = ToolSelect
	default:
		e.session.Begin(e.tool, p, e.style)
	}
}

// PointerDrag feeds a pointer move while the button is held.
func (e *Editor) PointerDrag(p geom.Point) {
	if e.session.Active() {
		e.session.Update(p)
		return
	}
	if e.tool == ToolSelect && e.dragging && e.scene.SelectedID() != "" {
		e.scene.Move(e.scene.SelectedID(), p.X-e.lastDrag.X, p.Y-e.lastDrag.Y)
		e.lastDrag = p
	}
}

// PointerUp completes the gesture at the last dragged position. A
// pointer-up with no session is a no-op, nothing is committed.
func (e *Editor) PointerUp() {
	if e.session.Active() {
		if sh, ok := e.session.End(); ok {
			e.scene.Commit(sh)
		}
		e.tool = ToolSelect
		return
	}
	e.dragging = false
}

// Escape abandons any in-progress gesture, clears the selection and
// forces the state back to select.
func (e *Editor) Escape() {
	e.session.Abandon()
	e.scene.Select("")
	e.tool = ToolSelect
	e.dragging = false
}

// PointerLeave abandons an in-progress gesture when the pointer
// leaves the canvas without a pointer-up.
func (e *Editor) PointerLeave() {
	if e.session.Active() {
		e.session.Abandon()
		e.tool = ToolSelect
	}
	e.dragging = false
}
