package diagram

import (
	"strings"
	"testing"

	"tad/geometry"
)

func TestCodecRoundTrip(t *testing.T) {
	box := NewBox(geometry.Point{X: 3, Y: 4}, geometry.Size{W: -14, H: 2})
	box.Text = "hello\nworld"
	box.ShowBorder = false
	line := NewLine(geometry.Point{X: -1, Y: 7}, geometry.Size{W: 6, H: -3}, true)
	line.Orientation = Vertical

	data, err := Encode([]Object{box, line})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	loaded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Decode returned %d objects, want 2", len(loaded))
	}

	gotBox, ok := loaded[0].(*Box)
	if !ok {
		t.Fatalf("first object is %T, want *Box", loaded[0])
	}
	if *gotBox != *box {
		t.Errorf("box round trip = %+v, want %+v", gotBox, box)
	}

	gotLine, ok := loaded[1].(*Line)
	if !ok {
		t.Fatalf("second object is %T, want *Line", loaded[1])
	}
	if *gotLine != *line {
		t.Errorf("line round trip = %+v, want %+v", gotLine, line)
	}
}

func TestDecodeFileFormat(t *testing.T) {
	// The on-disk format is stable: type-tagged flat records with numeric
	// orientation values.
	data := `[
		{"type": "Box", "position": {"x": 1, "y": 2}, "size": {"w": 14, "h": 2},
		 "text": "hi", "show_border": true},
		{"type": "Line", "position": {"x": 0, "y": 0}, "size": {"w": 6, "h": 3},
		 "orientation": 2, "is_arrow": false}
	]`
	objects, err := Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	box := objects[0].(*Box)
	if box.Text != "hi" || !box.ShowBorder || box.Position.X != 1 {
		t.Errorf("box decoded as %+v", box)
	}
	line := objects[1].(*Line)
	if line.Orientation != Vertical || line.IsArrow {
		t.Errorf("line decoded as %+v", line)
	}
}

func TestDecodeUnknownType(t *testing.T) {
	data := `[{"type": "Circle", "position": {"x": 0, "y": 0}, "size": {"w": 1, "h": 1}}]`
	_, err := Decode([]byte(data))
	if err == nil {
		t.Fatal("unknown type did not fail the load")
	}
	if !strings.Contains(err.Error(), "Circle") {
		t.Errorf("error %q does not name the offending type", err)
	}
}

func TestDecodeMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"box without text", `[{"type": "Box", "position": {"x": 0, "y": 0}, "size": {"w": 1, "h": 1}, "show_border": true}]`},
		{"box without show_border", `[{"type": "Box", "position": {"x": 0, "y": 0}, "size": {"w": 1, "h": 1}, "text": ""}]`},
		{"line without orientation", `[{"type": "Line", "position": {"x": 0, "y": 0}, "size": {"w": 1, "h": 1}, "is_arrow": true}]`},
		{"line without is_arrow", `[{"type": "Line", "position": {"x": 0, "y": 0}, "size": {"w": 1, "h": 1}, "orientation": 1}]`},
		{"no position", `[{"type": "Box", "size": {"w": 1, "h": 1}, "text": "", "show_border": true}]`},
		{"no size", `[{"type": "Line", "position": {"x": 0, "y": 0}, "orientation": 1, "is_arrow": true}]`},
	}
	for _, tt := range tests {
		if _, err := Decode([]byte(tt.data)); err == nil {
			t.Errorf("%s: load did not fail", tt.name)
		}
	}
}

func TestDecodeInvalidOrientation(t *testing.T) {
	data := `[{"type": "Line", "position": {"x": 0, "y": 0}, "size": {"w": 1, "h": 1}, "orientation": 9, "is_arrow": true}]`
	if _, err := Decode([]byte(data)); err == nil {
		t.Fatal("invalid orientation did not fail the load")
	}
}

func TestDecodeFailureIsAtomic(t *testing.T) {
	// One bad record poisons the whole document; nothing is returned.
	data := `[
		{"type": "Box", "position": {"x": 0, "y": 0}, "size": {"w": 2, "h": 2}, "text": "", "show_border": true},
		{"type": "Nope", "position": {"x": 0, "y": 0}, "size": {"w": 1, "h": 1}}
	]`
	objects, err := Decode([]byte(data))
	if err == nil {
		t.Fatal("bad trailing record did not fail the load")
	}
	if objects != nil {
		t.Errorf("failed load returned partial objects: %v", objects)
	}
}
