package diagram

import (
	"encoding/json"
	"fmt"

	"tad/geometry"
)

// record is the on-disk form of one shape: a type-tagged flat object. The
// variant-specific fields are pointers so a missing required field is
// distinguishable from a zero value.
type record struct {
	Type     string          `json:"type"`
	Position *geometry.Point `json:"position"`
	Size     *geometry.Size  `json:"size"`

	// Box fields.
	Text       *string `json:"text,omitempty"`
	ShowBorder *bool   `json:"show_border,omitempty"`

	// Line fields.
	Orientation *Orientation `json:"orientation,omitempty"`
	IsArrow     *bool        `json:"is_arrow,omitempty"`
}

// Encode serializes the shape list as a JSON array of tagged records.
func Encode(objects []Object) ([]byte, error) {
	records := make([]record, 0, len(objects))
	for i, obj := range objects {
		rec, err := encodeObject(obj)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return json.Marshal(records)
}

func encodeObject(obj Object) (record, error) {
	s := obj.Bounds()
	rec := record{
		Position: &s.Position,
		Size:     &s.Size,
	}
	switch v := obj.(type) {
	case *Box:
		rec.Type = "Box"
		rec.Text = &v.Text
		rec.ShowBorder = &v.ShowBorder
	case *Line:
		rec.Type = "Line"
		rec.Orientation = &v.Orientation
		rec.IsArrow = &v.IsArrow
	default:
		return record{}, fmt.Errorf("unsupported shape %T", obj)
	}
	return rec, nil
}

// Decode parses a JSON array of tagged records back into shapes. The whole
// document is validated before anything is returned, so a failed load never
// yields a partial diagram. Unknown type tags and missing required fields are
// decode errors.
func Decode(data []byte) ([]Object, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse diagram: %w", err)
	}

	objects := make([]Object, 0, len(records))
	for i, rec := range records {
		obj, err := decodeRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func decodeRecord(rec record) (Object, error) {
	if rec.Position == nil || rec.Size == nil {
		return nil, fmt.Errorf("%q record missing position or size", rec.Type)
	}
	shape := Shape{Position: *rec.Position, Size: *rec.Size}

	switch rec.Type {
	case "Box":
		if rec.Text == nil || rec.ShowBorder == nil {
			return nil, fmt.Errorf("Box record missing text or show_border")
		}
		return &Box{Shape: shape, Text: *rec.Text, ShowBorder: *rec.ShowBorder}, nil
	case "Line":
		if rec.Orientation == nil || rec.IsArrow == nil {
			return nil, fmt.Errorf("Line record missing orientation or is_arrow")
		}
		if *rec.Orientation != Horizontal && *rec.Orientation != Vertical {
			return nil, fmt.Errorf("Line record has invalid orientation %d", *rec.Orientation)
		}
		return &Line{Shape: shape, Orientation: *rec.Orientation, IsArrow: *rec.IsArrow}, nil
	default:
		return nil, fmt.Errorf("unknown shape type %q", rec.Type)
	}
}
