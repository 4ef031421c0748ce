package diagram

import (
	"strings"
	"testing"

	"tad/canvas"
	"tad/geometry"
)

func TestBoxDrawBorderCorners(t *testing.T) {
	m := canvas.NewMatrix(20, 5)
	b := NewBox(geometry.Point{X: 0, Y: 0}, geometry.Size{W: 14, H: 2})
	b.Draw(m)

	corners := []struct {
		p    geometry.Point
		want rune
	}{
		{geometry.Point{X: 0, Y: 0}, canvas.TLCorner},
		{geometry.Point{X: 14, Y: 0}, canvas.TRCorner},
		{geometry.Point{X: 0, Y: 2}, canvas.BLCorner},
		{geometry.Point{X: 14, Y: 2}, canvas.BRCorner},
	}
	for _, c := range corners {
		if got := m.GetChar(c.p); got != c.want {
			t.Errorf("corner at %v = %q, want %q", c.p, got, c.want)
		}
	}
	if got := m.GetChar(geometry.Point{X: 5, Y: 0}); got != canvas.HLine {
		t.Errorf("top edge = %q, want horizontal line", got)
	}
	if got := m.GetChar(geometry.Point{X: 0, Y: 1}); got != canvas.VLine {
		t.Errorf("left edge = %q, want vertical line", got)
	}
}

func TestBoxDrawText(t *testing.T) {
	m := canvas.NewMatrix(20, 5)
	b := NewBox(geometry.Point{X: 0, Y: 0}, geometry.Size{W: 14, H: 2})
	b.Text = "Hi"
	b.Draw(m)

	if got := m.GetChar(geometry.Point{X: 1, Y: 1}); got != 'H' {
		t.Errorf("first interior cell = %q, want 'H'", got)
	}
	if got := m.GetChar(geometry.Point{X: 2, Y: 1}); got != 'i' {
		t.Errorf("second interior cell = %q, want 'i'", got)
	}
	if got := m.GetChar(geometry.Point{X: 3, Y: 1}); got != ' ' {
		t.Errorf("cell after text = %q, want space", got)
	}
}

func TestBoxDrawTruncatesText(t *testing.T) {
	m := canvas.NewMatrix(20, 6)
	b := NewBox(geometry.Point{X: 0, Y: 0}, geometry.Size{W: 5, H: 3})
	b.Text = "too long to fit\nsecond\nthird\nfourth"
	b.Draw(m)

	// Width clips at size.W-1 columns, so the border stays intact.
	if got := m.GetChar(geometry.Point{X: 5, Y: 1}); got != canvas.VLine {
		t.Errorf("right border = %q, want vertical line", got)
	}
	// Height clips at size.H-1 lines.
	if got := m.GetChar(geometry.Point{X: 1, Y: 3}); got == 't' {
		t.Error("third text line drawn over the bottom border")
	}
}

func TestBoxDegenerateHeightDrawsNoText(t *testing.T) {
	for _, h := range []int{1, 0, -2} {
		m := canvas.NewMatrix(14, 8)
		b := NewBox(geometry.Point{X: 0, Y: 2}, geometry.Size{W: 10, H: h})
		b.Text = "Hi\nthere"
		b.Draw(m)

		for y := 0; y < 8; y++ {
			for x := 0; x < 14; x++ {
				got := m.GetChar(geometry.Point{X: x, Y: y})
				if got == 'H' || got == 't' {
					t.Errorf("height %d: box drew text %q at (%d,%d), want nothing", h, got, x, y)
				}
			}
		}
	}
}

func TestBoxPlaceholderWhenBorderless(t *testing.T) {
	m := canvas.NewMatrix(20, 5)
	b := NewBox(geometry.Point{X: 0, Y: 0}, geometry.Size{W: 14, H: 2})
	b.ShowBorder = false
	b.Text = "   "
	b.Draw(m)

	row := m.Row(1)
	if !strings.Contains(row, "[Text]") {
		t.Errorf("borderless blank box drew %q, want placeholder", row)
	}
	if got := m.GetChar(geometry.Point{X: 0, Y: 0}); got != ' ' {
		t.Errorf("border cell = %q, want space when border hidden", got)
	}
}

func TestBoxNoPlaceholderWithBorder(t *testing.T) {
	m := canvas.NewMatrix(20, 5)
	b := NewBox(geometry.Point{X: 0, Y: 0}, geometry.Size{W: 14, H: 2})
	b.Draw(m)

	if strings.Contains(m.Row(1), "[Text]") {
		t.Error("bordered box drew the placeholder")
	}
}

func TestBoxToggle(t *testing.T) {
	b := NewBox(geometry.Point{}, geometry.Size{W: 6, H: 3})
	if !b.ShowBorder {
		t.Fatal("new box should show its border")
	}
	b.Toggle()
	if b.ShowBorder {
		t.Error("toggle did not hide the border")
	}
	b.Toggle()
	if !b.ShowBorder {
		t.Error("toggle did not restore the border")
	}
}

func TestBoxNegativeSizeDraw(t *testing.T) {
	m := canvas.NewMatrix(20, 10)
	b := NewBox(geometry.Point{X: 10, Y: 6}, geometry.Size{W: -6, H: -3})
	b.Draw(m)

	// Corner glyphs land on the normalized rectangle.
	if got := m.GetChar(geometry.Point{X: 4, Y: 3}); got != canvas.TLCorner {
		t.Errorf("normalized top-left = %q, want corner glyph", got)
	}
	if got := m.GetChar(geometry.Point{X: 10, Y: 6}); got != canvas.BRCorner {
		t.Errorf("normalized bottom-right = %q, want corner glyph", got)
	}
}

func TestBoxEditSeedsFromCanvas(t *testing.T) {
	m := canvas.NewMatrix(20, 6)
	b := NewBox(geometry.Point{X: 0, Y: 0}, geometry.Size{W: 8, H: 3})
	b.Text = "Hi"
	b.Draw(m)

	// Append to the seeded text: move to the end of the line, type, commit.
	m.Feed(canvas.Event{Code: canvas.EventRight}, canvas.Event{Code: canvas.EventRight})
	m.FeedRunes("ya")
	m.Feed(canvas.Event{Code: canvas.EventCancel})
	b.Edit(m)

	if b.Text != "Hiya" {
		t.Errorf("Text after edit = %q, want %q", b.Text, "Hiya")
	}
}

func TestBoxEditReplacesText(t *testing.T) {
	m := canvas.NewMatrix(20, 6)
	b := NewBox(geometry.Point{X: 0, Y: 0}, geometry.Size{W: 10, H: 4})
	b.Draw(m)

	m.FeedRunes("ab")
	m.Feed(canvas.Event{Code: canvas.EventConfirm}) // newline
	m.FeedRunes("cd")
	m.Feed(canvas.Event{Code: canvas.EventCancel})
	b.Edit(m)

	if b.Text != "ab\ncd" {
		t.Errorf("Text after edit = %q, want %q", b.Text, "ab\ncd")
	}
}

func TestBoxEditBackspaceAndDelete(t *testing.T) {
	m := canvas.NewMatrix(20, 6)
	b := NewBox(geometry.Point{X: 0, Y: 0}, geometry.Size{W: 10, H: 3})
	b.Draw(m)

	m.FeedRunes("abc")
	m.Feed(canvas.Event{Code: canvas.EventBackspace}) // drop c
	m.Feed(canvas.Event{Code: canvas.EventLeft})
	m.Feed(canvas.Event{Code: canvas.EventLeft})
	m.Feed(canvas.Event{Code: canvas.EventDelete}) // drop a
	m.Feed(canvas.Event{Code: canvas.EventCancel})
	b.Edit(m)

	if b.Text != "b" {
		t.Errorf("Text after edit = %q, want %q", b.Text, "b")
	}
}

func TestBoxEditDegenerateInterior(t *testing.T) {
	m := canvas.NewMatrix(20, 6)
	b := NewBox(geometry.Point{X: 0, Y: 0}, geometry.Size{W: 1, H: 1})
	b.Text = "kept"

	m.FeedRunes("xyz")
	b.Edit(m) // no interior, must return untouched without reading events

	if b.Text != "kept" {
		t.Errorf("Text after degenerate edit = %q, want %q", b.Text, "kept")
	}
}
