package terminal

import (
	"github.com/gdamore/tcell/v2"

	"tad/canvas"
	"tad/geometry"
)

// Screen implements canvas.Canvas over the drawing region of a tcell screen:
// the full terminal minus the bottom status-bar row.
type Screen struct {
	screen tcell.Screen
	width  int
	height int

	highlight canvas.Highlight
}

// NewScreen wraps an initialized tcell screen. The drawing region is sized
// from the current terminal dimensions.
func NewScreen(s tcell.Screen) *Screen {
	w, h := s.Size()
	return &Screen{screen: s, width: w, height: h - 1}
}

// Size returns the drawing region dimensions.
func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

// PutChar writes ch at p. A HighlightNone call inherits the scoped highlight
// set by SetHighlight. Out-of-bounds writes are dropped so shapes may hang
// off-screen.
func (s *Screen) PutChar(p geometry.Point, ch rune, h canvas.Highlight) {
	if p.X < 0 || p.X >= s.width || p.Y < 0 || p.Y >= s.height {
		return
	}
	if h == canvas.HighlightNone {
		h = s.highlight
	}
	s.screen.SetContent(p.X, p.Y, ch, nil, styleFor(h))
}

// GetChar reads back the rune at p, or a space when out of bounds.
func (s *Screen) GetChar(p geometry.Point) rune {
	if p.X < 0 || p.X >= s.width || p.Y < 0 || p.Y >= s.height {
		return ' '
	}
	ch, _, _, _ := s.screen.GetContent(p.X, p.Y)
	return ch
}

// Fill strokes the rectangle spanned by a and b, corners in any order,
// bounds inclusive.
func (s *Screen) Fill(a, b geometry.Point, ch rune) {
	x1, x2 := a.X, b.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := a.Y, b.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			s.PutChar(geometry.Point{X: x, Y: y}, ch, canvas.HighlightNone)
		}
	}
}

// ReadEvent blocks until the next translatable input event.
func (s *Screen) ReadEvent() canvas.Event {
	for {
		ev := translateEvent(s.screen.PollEvent())
		if ev.Code != canvas.EventNone {
			return ev
		}
	}
}

// SetHighlight scopes a highlight over subsequent writes.
func (s *Screen) SetHighlight(h canvas.Highlight) { s.highlight = h }

// ResetHighlight restores the default style.
func (s *Screen) ResetHighlight() { s.highlight = canvas.HighlightNone }

// ShowCursor places the terminal cursor at p.
func (s *Screen) ShowCursor(p geometry.Point) {
	s.screen.ShowCursor(p.X, p.Y)
}

// HideCursor removes the terminal cursor.
func (s *Screen) HideCursor() {
	s.screen.HideCursor()
}

// Refresh flushes pending writes to the terminal.
func (s *Screen) Refresh() {
	s.screen.Show()
}

// Clear blanks the screen. The status bar redraws itself after every frame,
// so clearing its row too is harmless.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Resize adopts new terminal dimensions for the drawing region.
func (s *Screen) Resize(width, height int) {
	s.width = width
	s.height = height
	s.screen.Sync()
}
