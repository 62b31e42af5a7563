package annotation

import "github.com/harsh-simform/snapflow-desktop-sub001/geom"

// Scene owns the committed shapes, the selection and the linear undo
// stack. All mutation funnels through its methods; operations that
// reference a missing id are deterministic no-ops, never faults: an
// id can legitimately race a UI action against an async deletion.
//
// The scene is owned by the single UI event loop and is not safe for
// concurrent use.
type Scene struct {
	shapes     []Shape
	selectedID string
}

// NewScene starts an empty annotation session. The scene lives until
// the session ends on save or cancel.
func NewScene() *Scene {
	return &Scene{}
}

// Shapes returns the committed shapes in z-order (insertion order).
// The slice is a copy; the scene's own backing array stays private.
func (s *Scene) Shapes() []Shape {
	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Len returns the number of committed shapes.
func (s *Scene) Len() int { return len(s.shapes) }

// SelectedID returns the selected shape id, or "" when nothing is
// selected.
func (s *Scene) SelectedID() string { return s.selectedID }

// Commit appends a finished shape. The new shape takes the top
// z-order implicitly; the selection is left alone.
func (s *Scene) Commit(sh Shape) {
	s.shapes = append(s.shapes, sh)
}

// Select sets the selection to id, or clears it when id is "".
// Selecting an id that is not in the scene is a no-op.
func (s *Scene) Select(id string) {
	if id == "" {
		s.selectedID = ""
		return
	}
	if _, ok := s.indexOf(id); ok {
		s.selectedID = id
	}
}

// Move translates a shape by (dx, dy), swapping in a moved copy.
// Unknown ids leave the scene unchanged.
func (s *Scene) Move(id string, dx, dy float64) {
	i, ok := s.indexOf(id)
	if !ok {
		return
	}
	s.shapes[i] = s.shapes[i].Translate(dx, dy)
}

// EditText replaces the content of a text shape. Any other kind, or a
// missing id, is a no-op.
func (s *Scene) EditText(id, content string) {
	i, ok := s.indexOf(id)
	if !ok {
		return
	}
	t, ok := s.shapes[i].(Text)
	if !ok {
		return
	}
	t.Content = content
	s.shapes[i] = t
}

// Delete removes a shape by id, clearing the selection if it pointed
// at it. Deleting twice is idempotent.
func (s *Scene) Delete(id string) {
	i, ok := s.indexOf(id)
	if !ok {
		return
	}
	s.shapes = append(s.shapes[:i:i], s.shapes[i+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
	}
}

// DeleteSelected removes the selected shape, if any.
func (s *Scene) DeleteSelected() {
	if s.selectedID != "" {
		s.Delete(s.selectedID)
	}
}

// Undo drops the most recently committed shape. Moves and text edits
// are not separately undoable; only creation is. No-op when empty.
func (s *Scene) Undo() {
	if len(s.shapes) == 0 {
		return
	}
	last := s.shapes[len(s.shapes)-1]
	s.shapes = s.shapes[:len(s.shapes)-1]
	if s.selectedID == last.ID() {
		s.selectedID = ""
	}
}

// ClearAll empties the scene. There is no undo for this; asking the
// user for confirmation is the boundary's job, not this layer's.
func (s *Scene) ClearAll() {
	s.shapes = nil
	s.selectedID = ""
}

// ShapeAt returns the topmost shape under p, honoring z-order.
func (s *Scene) ShapeAt(p geom.Point, slop float64) (Shape, bool) {
	for i := len(s.shapes) - 1; i >= 0; i-- {
		if Hits(s.shapes[i], p, slop) {
			return s.shapes[i], true
		}
	}
	return nil, false
}

// ShapeByID looks a shape up by id.
func (s *Scene) ShapeByID(id string) (Shape, bool) {
	i, ok := s.indexOf(id)
	if !ok {
		return nil, false
	}
	return s.shapes[i], true
}

func (s *Scene) indexOf(id string) (int, bool) {
	for i, sh := range s.shapes {
		if sh.ID() == id {
			return i, true
		}
	}
	return 0, false
}
