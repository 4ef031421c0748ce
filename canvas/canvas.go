// Package canvas defines the character-grid drawing surface that diagram
// shapes are rasterized onto, the input event model the editor consumes, and
// an in-memory implementation used for tests and non-interactive rendering.
package canvas

import "tad/geometry"

// Glyphs used to stroke shapes.
const (
	HLine      = '─'
	VLine      = '│'
	TLCorner   = '┌'
	TRCorner   = '┐'
	BLCorner   = '└'
	BRCorner   = '┘'
	ArrowRight = '⏵'
	ArrowLeft  = '⏴'
	ArrowUp    = '⏶'
	ArrowDown  = '⏷'
)

// Highlight selects a rendering style for a cell or a draw scope. It is
// deliberately decoupled from any device palette; the terminal adapter maps
// each value onto concrete colors.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightSelected
	HighlightError
	HighlightConfirm
	HighlightWarning
)

// EventCode classifies one discrete input event.
type EventCode int

const (
	EventNone EventCode = iota
	EventRune           // printable rune, carried in Event.Rune

	EventUp
	EventDown
	EventLeft
	EventRight

	// Grow* are the resize variants of the directional keys (Shift+arrow).
	EventGrowUp
	EventGrowDown
	EventGrowLeft
	EventGrowRight

	EventNext // cycle selection forward
	EventPrev // cycle selection backward

	EventConfirm // Enter
	EventCancel  // Escape
	EventBackspace
	EventDelete

	EventResize    // terminal dimensions changed
	EventInterrupt // user interrupt (Ctrl+C)
)

// Event is one unit of user input. Width and Height carry the new terminal
// dimensions on EventResize and are zero otherwise.
type Event struct {
	Code   EventCode
	Rune   rune
	Width  int
	Height int
}

// Canvas is the character-grid device shapes draw onto. Writes outside the
// grid are silently ignored: objects may legitimately hang off-screen while
// being edited.
type Canvas interface {
	// Size returns the grid dimensions in cells.
	Size() (width, height int)

	// PutChar places ch at p with the given highlight. Out of bounds is a
	// no-op.
	PutChar(p geometry.Point, ch rune, h Highlight)

	// GetChar returns the rune at p, or a space when p is out of bounds.
	GetChar(p geometry.Point) rune

	// Fill strokes every cell of the rectangle spanned by a and b, bounds
	// inclusive, corners in any order.
	Fill(a, b geometry.Point, ch rune)

	// ReadEvent blocks until the next input event.
	ReadEvent() Event

	// SetHighlight makes h the default style for subsequent writes until
	// ResetHighlight. Used to wrap a selected shape's draw calls.
	SetHighlight(h Highlight)
	ResetHighlight()

	// ShowCursor makes the device cursor visible at p; HideCursor removes
	// it. Only the box text-editing session uses these.
	ShowCursor(p geometry.Point)
	HideCursor()

	Refresh()
	Clear()
	Resize(width, height int)
}
