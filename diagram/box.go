package diagram

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"tad/canvas"
	"tad/geometry"
)

// placeholderText keeps a borderless, empty box visible and selectable.
const placeholderText = "[Text]"

// Box is a rectangle with optional border and multi-line text content.
type Box struct {
	Shape
	Text       string
	ShowBorder bool
}

// NewBox creates a bordered, empty box.
func NewBox(position geometry.Point, size geometry.Size) *Box {
	return &Box{
		Shape:      Shape{Position: position, Size: size},
		ShowBorder: true,
	}
}

// Toggle flips the border visibility.
func (b *Box) Toggle() {
	b.ShowBorder = !b.ShowBorder
}

// Draw rasterizes the box: border strokes with corner glyphs when the border
// is shown, then a cleared interior, then the text clipped to the interior.
func (b *Box) Draw(cv canvas.Canvas) {
	if b.ShowBorder {
		cv.Fill(b.TopLeft(), b.TopRight(), canvas.HLine)
		cv.Fill(b.BottomLeft(), b.BottomRight(), canvas.HLine)
		cv.Fill(b.TopRight(), b.BottomRight(), canvas.VLine)
		cv.Fill(b.TopLeft(), b.BottomLeft(), canvas.VLine)
		cv.PutChar(b.NormalizedTopLeft(), canvas.TLCorner, canvas.HighlightNone)
		cv.PutChar(b.NormalizedTopRight(), canvas.TRCorner, canvas.HighlightNone)
		cv.PutChar(b.NormalizedBottomLeft(), canvas.BLCorner, canvas.HighlightNone)
		cv.PutChar(b.NormalizedBottomRight(), canvas.BRCorner, canvas.HighlightNone)
	}

	// The interior is cleared on the normalized rectangle so a box dragged
	// into negative size never blanks its own border.
	cv.Fill(
		b.NormalizedTopLeft().Add(geometry.Size{W: 1, H: 1}),
		b.NormalizedBottomRight().Sub(geometry.Size{W: 1, H: 1}),
		' ',
	)

	text := b.Text
	if !b.ShowBorder && strings.TrimSpace(text) == "" {
		text = placeholderText
	}
	// Up to Size.H-1 interior rows hold text; a degenerate height holds none.
	max := b.Size.H - 1
	if max < 0 {
		max = 0
	}
	lines := strings.Split(text, "\n")
	if len(lines) > max {
		lines = lines[:max]
	}
	for i, line := range lines {
		b.drawTextLine(cv, line, i)
	}
}

// drawTextLine writes one text row left-aligned one cell inside the top-left
// corner, clipped to the interior width. Clipping is display-width aware so
// wide runes never spill past the border.
func (b *Box) drawTextLine(cv canvas.Canvas, line string, row int) {
	width := b.Size.W - 1
	if width <= 0 {
		return
	}
	line = runewidth.Truncate(line, width, "")
	p := b.TopLeft().Add(geometry.Size{W: 1, H: row + 1})
	for _, r := range line {
		cv.PutChar(p, r, canvas.HighlightNone)
		p.X += runewidth.RuneWidth(r)
	}
}

// Edit runs a scoped text-input session over the box interior. The canvas is
// the source of truth for the seed text: the interior cells are read back
// into a buffer, edited in place, and committed to Text when the session
// ends. The device cursor is visible for the duration only.
//
// Keys: printable runes insert, Enter breaks the line, Backspace/Delete
// remove, arrows move, Escape commits.
func (b *Box) Edit(cv canvas.Canvas) {
	width := b.Size.W - 1
	height := b.Size.H - 1
	if width <= 0 || height <= 0 {
		return
	}

	s := &editSession{
		box:    b,
		canvas: cv,
		width:  width,
		height: height,
		lines:  b.readInterior(cv, width, height),
	}

	cv.ShowCursor(s.cursorPoint())
	defer cv.HideCursor()
	s.run()
}

// readInterior reconstructs the current text from the drawn interior cells,
// trailing blanks trimmed.
func (b *Box) readInterior(cv canvas.Canvas, width, height int) [][]rune {
	var lines [][]rune
	for y := 1; y <= height; y++ {
		var row []rune
		for x := 1; x <= width; x++ {
			row = append(row, cv.GetChar(b.Position.Add(geometry.Size{W: x, H: y})))
		}
		lines = append(lines, []rune(strings.TrimRight(string(row), " ")))
	}
	for len(lines) > 1 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// editSession is the nested blocking input loop behind Box.Edit.
type editSession struct {
	box    *Box
	canvas canvas.Canvas
	width  int
	height int

	lines [][]rune
	row   int
	col   int
}

func (s *editSession) run() {
	for {
		s.redraw()
		ev := s.canvas.ReadEvent()
		switch ev.Code {
		case canvas.EventRune:
			s.insert(ev.Rune)
		case canvas.EventConfirm:
			s.breakLine()
		case canvas.EventBackspace:
			s.backspace()
		case canvas.EventDelete:
			s.deleteChar()
		case canvas.EventUp:
			s.move(0, -1)
		case canvas.EventDown:
			s.move(0, 1)
		case canvas.EventLeft:
			s.move(-1, 0)
		case canvas.EventRight:
			s.move(1, 0)
		case canvas.EventCancel, canvas.EventInterrupt:
			s.commit()
			return
		}
	}
}

func (s *editSession) redraw() {
	s.canvas.Fill(
		s.box.Position.Add(geometry.Size{W: 1, H: 1}),
		s.box.Position.Add(geometry.Size{W: s.width, H: s.height}),
		' ',
	)
	for i, line := range s.lines {
		p := s.box.Position.Add(geometry.Size{W: 1, H: i + 1})
		for _, r := range line {
			s.canvas.PutChar(p, r, canvas.HighlightNone)
			p.X++
		}
	}
	s.canvas.ShowCursor(s.cursorPoint())
	s.canvas.Refresh()
}

func (s *editSession) cursorPoint() geometry.Point {
	return s.box.Position.Add(geometry.Size{W: 1 + s.col, H: 1 + s.row})
}

func (s *editSession) line() []rune {
	for len(s.lines) <= s.row {
		s.lines = append(s.lines, nil)
	}
	return s.lines[s.row]
}

func (s *editSession) insert(r rune) {
	if s.col >= s.width {
		// Wrap to the next interior row, or drop the rune on the last one.
		if s.row+1 >= s.height {
			return
		}
		s.row++
		s.col = 0
	}
	line := s.line()
	if len(line) >= s.width {
		return
	}
	line = append(line[:s.col], append([]rune{r}, line[s.col:]...)...)
	s.lines[s.row] = line
	s.col++
}

func (s *editSession) breakLine() {
	if len(s.lines) >= s.height {
		return
	}
	line := s.line()
	rest := append([]rune(nil), line[s.col:]...)
	s.lines[s.row] = line[:s.col]
	s.lines = append(s.lines[:s.row+1], append([][]rune{rest}, s.lines[s.row+1:]...)...)
	s.row++
	s.col = 0
}

func (s *editSession) backspace() {
	line := s.line()
	if s.col > 0 {
		s.lines[s.row] = append(line[:s.col-1], line[s.col:]...)
		s.col--
		return
	}
	if s.row == 0 {
		return
	}
	prev := s.lines[s.row-1]
	s.col = len(prev)
	s.lines[s.row-1] = append(prev, line...)
	s.lines = append(s.lines[:s.row], s.lines[s.row+1:]...)
	s.row--
}

func (s *editSession) deleteChar() {
	line := s.line()
	if s.col < len(line) {
		s.lines[s.row] = append(line[:s.col], line[s.col+1:]...)
	}
}

func (s *editSession) move(dx, dy int) {
	s.row += dy
	if s.row < 0 {
		s.row = 0
	}
	if s.row >= s.height {
		s.row = s.height - 1
	}
	s.col += dx
	if s.col < 0 {
		s.col = 0
	}
	if n := len(s.line()); s.col > n {
		s.col = n
	}
	if s.col >= s.width {
		s.col = s.width - 1
	}
}

func (s *editSession) commit() {
	parts := make([]string, len(s.lines))
	for i, line := range s.lines {
		parts[i] = string(line)
	}
	s.box.Text = strings.Join(parts, "\n")
}
