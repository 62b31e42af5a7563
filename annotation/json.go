package annotation

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// The wire form wraps each shape's fields with its kind
// discriminator, so a scene survives the HTTP API and session
// save/load with its variant types intact.

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Hex())
}

func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalShape encodes one shape with its kind tag.
func MarshalShape(s Shape) ([]byte, error) {
	switch v := s.(type) {
	case Line:
		return json.Marshal(struct {
			Kind Kind `json:"kind"`
			Line
		}{KindLine, v})
	case Arrow:
		return json.Marshal(struct {
			Kind Kind `json:"kind"`
			Arrow
		}{KindArrow, v})
	case RectShape:
		return json.Marshal(struct {
			Kind Kind `json:"kind"`
			RectShape
		}{KindRect, v})
	case Ellipse:
		return json.Marshal(struct {
			Kind Kind `json:"kind"`
			Ellipse
		}{KindEllipse, v})
	case Text:
		return json.Marshal(struct {
			Kind Kind `json:"kind"`
			Text
		}{KindText, v})
	}
	return nil, fmt.Errorf("unknown shape type %T", s)
}

// UnmarshalShape decodes one tagged shape. An unknown kind is an
// error, not a silently dropped record.
func UnmarshalShape(data []byte) (Shape, error) {
	var probe struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrap(err, "reading shape kind")
	}

	switch probe.Kind {
	case KindLine:
		var v Line
		err := json.Unmarshal(data, &v)
		return v, err
	case KindArrow:
		var v Arrow
		err := json.Unmarshal(data, &v)
		return v, err
	case KindRect:
		var v RectShape
		err := json.Unmarshal(data, &v)
		return v, err
	case KindEllipse:
		var v Ellipse
		err := json.Unmarshal(data, &v)
		return v, err
	case KindText:
		var v Text
		err := json.Unmarshal(data, &v)
		return v, err
	}
	return nil, fmt.Errorf("unknown shape kind %q", probe.Kind)
}

// MarshalShapes encodes a scene's shapes in z-order.
func MarshalShapes(shapes []Shape) ([]byte, error) {
	raw := make([]json.RawMessage, len(shapes))
	for i, s := range shapes {
		b, err := MarshalShape(s)
		if err != nil {
			return nil, err
		}
		raw[i] = b
	}
	return json.Marshal(raw)
}

// UnmarshalShapes decodes a z-ordered shape list.
func UnmarshalShapes(data []byte) ([]Shape, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	shapes := make([]Shape, len(raw))
	for i, r := range raw {
		s, err := UnmarshalShape(r)
		if err != nil {
			return nil, errors.Wrapf(err, "shape %d", i)
		}
		shapes[i] = s
	}
	return shapes, nil
}
