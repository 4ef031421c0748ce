package diagram

import (
	"fmt"
	"math"

	"tad/canvas"
	"tad/geometry"
)

// Orientation is the direction of a line's initial leg.
type Orientation int

const (
	Horizontal Orientation = 1
	Vertical   Orientation = 2
)

// Line is a one- or two-leg axis-aligned connector, optionally tipped with an
// arrowhead at its far end.
type Line struct {
	Shape
	Orientation Orientation
	IsArrow     bool
}

// NewLine creates a line starting with a horizontal leg.
func NewLine(position geometry.Point, size geometry.Size, isArrow bool) *Line {
	return &Line{
		Shape:       Shape{Position: position, Size: size},
		Orientation: Horizontal,
		IsArrow:     isArrow,
	}
}

// Toggle flips the starting orientation between horizontal and vertical.
func (l *Line) Toggle() {
	if l.Orientation == Horizontal {
		l.Orientation = Vertical
	} else {
		l.Orientation = Horizontal
	}
}

// Draw rasterizes the line. The first leg runs along the orientation axis,
// the second (if the extent spans both axes) completes the "L" with a corner
// glyph at the bend.
func (l *Line) Draw(cv canvas.Canvas) {
	if l.Orientation == Horizontal {
		l.drawHorizontal(cv)
	} else {
		l.drawVertical(cv)
	}
}

func (l *Line) drawHorizontal(cv canvas.Canvas) {
	if l.TopLeft().Y == l.BottomRight().Y {
		l.drawSegment(cv, l.TopLeft(), l.TopRight())
		return
	}
	cv.Fill(l.TopLeft(), l.TopRight(), canvas.HLine)
	l.drawSegment(cv, l.TopRight(), l.BottomRight())
	if l.TopLeft().X != l.BottomRight().X {
		cv.PutChar(l.TopRight(), l.cornerGlyph(), canvas.HighlightNone)
	}
}

func (l *Line) drawVertical(cv canvas.Canvas) {
	if l.TopLeft().X == l.BottomRight().X {
		l.drawSegment(cv, l.TopLeft(), l.BottomLeft())
		return
	}
	cv.Fill(l.TopLeft(), l.BottomLeft(), canvas.VLine)
	l.drawSegment(cv, l.BottomLeft(), l.BottomRight())
	if l.TopLeft().Y != l.BottomRight().Y {
		cv.PutChar(l.BottomLeft(), l.cornerGlyph(), canvas.HighlightNone)
	}
}

// drawSegment strokes a straight run between two points sharing an axis and
// places the arrowhead on its endpoint. A zero-length segment draws nothing.
// Asking for a diagonal is an internal contract violation, not a drawable
// request, so it fails loudly.
func (l *Line) drawSegment(cv canvas.Canvas, start, end geometry.Point) {
	if start.X != end.X && start.Y != end.Y {
		panic(fmt.Sprintf("diagram: diagonal segment %v -> %v", start, end))
	}
	if start == end {
		return
	}
	glyph := rune(canvas.HLine)
	if start.X == end.X {
		glyph = canvas.VLine
	}
	cv.Fill(start, end, glyph)
	if l.IsArrow {
		cv.PutChar(end, arrowGlyph(start, end), canvas.HighlightNone)
	}
}

// cornerGlyph picks the bend glyph so that it visually continues the turn,
// keyed on whether x grows left-to-right and y grows top-to-bottom.
func (l *Line) cornerGlyph() rune {
	start, end := l.TopLeft(), l.BottomRight()
	xForward := start.X <= end.X
	yDownward := start.Y <= end.Y

	if l.Orientation == Horizontal {
		switch {
		case xForward && yDownward:
			return canvas.TRCorner
		case xForward && !yDownward:
			return canvas.BRCorner
		case !xForward && yDownward:
			return canvas.TLCorner
		default:
			return canvas.BLCorner
		}
	}
	switch {
	case xForward && yDownward:
		return canvas.BLCorner
	case xForward && !yDownward:
		return canvas.TLCorner
	case !xForward && yDownward:
		return canvas.BRCorner
	default:
		return canvas.TRCorner
	}
}

// arrowGlyph resolves the arrowhead direction from the angle of the segment
// vector, projected onto the four axis-aligned buckets. start != end is
// guaranteed by the caller, so the angle is defined.
func arrowGlyph(start, end geometry.Point) rune {
	d := end.Diff(start)
	degree := int(math.Round(math.Atan2(float64(d.W), float64(d.H)) / math.Pi * 180))
	switch degree {
	case 0:
		return canvas.ArrowDown
	case 180:
		return canvas.ArrowUp
	case 90:
		return canvas.ArrowRight
	default: // -90
		return canvas.ArrowLeft
	}
}
