package canvas

import (
	"strings"

	"tad/geometry"
)

// Matrix is an in-memory Canvas backed by a rune matrix. It drives the
// non-interactive render mode and stands in for the terminal in tests, where
// its scripted event queue replaces keyboard input.
//
// Coordinate system: origin (0,0) top-left, x rightward, y downward, one rune
// per cell.
type Matrix struct {
	cells  [][]rune
	width  int
	height int

	highlight Highlight
	events    []Event
}

// NewMatrix creates a canvas with the given dimensions, filled with spaces.
func NewMatrix(width, height int) *Matrix {
	m := &Matrix{}
	m.Resize(width, height)
	return m
}

// Size returns the grid dimensions.
func (m *Matrix) Size() (width, height int) {
	return m.width, m.height
}

// PutChar places ch at p. Out-of-bounds writes are dropped.
func (m *Matrix) PutChar(p geometry.Point, ch rune, h Highlight) {
	if p.X < 0 || p.X >= m.width || p.Y < 0 || p.Y >= m.height {
		return
	}
	m.cells[p.Y][p.X] = ch
}

// GetChar returns the rune at p, or a space when out of bounds.
func (m *Matrix) GetChar(p geometry.Point) rune {
	if p.X < 0 || p.X >= m.width || p.Y < 0 || p.Y >= m.height {
		return ' '
	}
	return m.cells[p.Y][p.X]
}

// Fill strokes the rectangle spanned by a and b, bounds inclusive, corners in
// any order. Cells outside the grid are skipped.
func (m *Matrix) Fill(a, b geometry.Point, ch rune) {
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
			m.PutChar(geometry.Point{X: x, Y: y}, ch, m.highlight)
		}
	}
}

// Feed appends events to the scripted input queue.
func (m *Matrix) Feed(events ...Event) {
	m.events = append(m.events, events...)
}

// FeedRunes appends one EventRune per rune in s.
func (m *Matrix) FeedRunes(s string) {
	for _, r := range s {
		m.events = append(m.events, Event{Code: EventRune, Rune: r})
	}
}

// ReadEvent pops the next scripted event. An exhausted queue yields
// EventInterrupt so runaway loops terminate instead of spinning.
func (m *Matrix) ReadEvent() Event {
	if len(m.events) == 0 {
		return Event{Code: EventInterrupt}
	}
	ev := m.events[0]
	m.events = m.events[1:]
	return ev
}

// SetHighlight records the scoped highlight. The matrix stores bare runes, so
// the value only matters to tests inspecting it via CurrentHighlight.
func (m *Matrix) SetHighlight(h Highlight) { m.highlight = h }

// ResetHighlight restores the default style.
func (m *Matrix) ResetHighlight() { m.highlight = HighlightNone }

// CurrentHighlight returns the active scoped highlight.
func (m *Matrix) CurrentHighlight() Highlight { return m.highlight }

// ShowCursor is a no-op; the matrix has no visible cursor.
func (m *Matrix) ShowCursor(p geometry.Point) {}

// HideCursor is a no-op.
func (m *Matrix) HideCursor() {}

// Refresh is a no-op; the matrix is always current.
func (m *Matrix) Refresh() {}

// Clear resets every cell to a space.
func (m *Matrix) Clear() {
	for y := range m.cells {
		for x := range m.cells[y] {
			m.cells[y][x] = ' '
		}
	}
}

// Resize reallocates the grid, discarding previous contents.
func (m *Matrix) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]rune, height)
	for y := 0; y < height; y++ {
		cells[y] = make([]rune, width)
		for x := 0; x < width; x++ {
			cells[y][x] = ' '
		}
	}
	m.cells = cells
	m.width = width
	m.height = height
}

// Row returns row y as a string, or "" when out of range.
func (m *Matrix) Row(y int) string {
	if y < 0 || y >= m.height {
		return ""
	}
	return string(m.cells[y])
}

// String renders the whole grid with newline-separated rows, trailing spaces
// trimmed per row.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow(m.height * (m.width + 1))
	for y := 0; y < m.height; y++ {
		sb.WriteString(strings.TrimRight(string(m.cells[y]), " "))
		if y < m.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
