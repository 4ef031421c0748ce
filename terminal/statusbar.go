package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tad/canvas"
)

// StatusBar renders shortcut hints on the bottom terminal row and services
// the editor's line-input and single-key prompts.
type StatusBar struct {
	screen    tcell.Screen
	shortcuts []shortcut
}

type shortcut struct {
	key   string
	label string
}

// NewStatusBar creates an empty bar on the given screen.
func NewStatusBar(s tcell.Screen) *StatusBar {
	return &StatusBar{screen: s}
}

// SetShortcut registers a hint, updating in place when the key is already
// present so the display order stays stable.
func (b *StatusBar) SetShortcut(key, label string) {
	for i := range b.shortcuts {
		if b.shortcuts[i].key == key {
			b.shortcuts[i].label = label
			return
		}
	}
	b.shortcuts = append(b.shortcuts, shortcut{key: key, label: label})
}

// row returns the bar's y coordinate.
func (b *StatusBar) row() int {
	_, h := b.screen.Size()
	return h - 1
}

// Invalidate repaints the hint bar: each key in the terminal default style,
// its label on the bar background, clipped at the screen edge.
func (b *StatusBar) Invalidate() {
	width, _ := b.screen.Size()
	y := b.row()
	b.fillRow(y, barStyle)

	x := 0
	for _, sc := range b.shortcuts {
		x = b.writeString(x, y, sc.key, tcell.StyleDefault)
		x = b.writeString(x, y, sc.label, barStyle)
		x++
		if x >= width {
			break
		}
	}
	b.screen.Show()
}

// Input prompts for one line of text on the bar. Enter submits, Escape or an
// interrupt cancels with an empty string. The terminal cursor is shown for
// the duration.
func (b *StatusBar) Input(prompt string) string {
	width, _ := b.screen.Size()
	y := b.row()
	prompt = runewidth.Truncate(prompt, width-1, "")
	start := b.writeString(0, y, prompt, barStyle) + 1

	var buf []rune
	defer b.screen.HideCursor()
	for {
		b.fillFrom(start, y, barStyle)
		x := b.writeString(start, y, string(buf), barStyle)
		b.screen.ShowCursor(x, y)
		b.screen.Show()

		ev := b.readEvent()
		switch ev.Code {
		case canvas.EventRune:
			buf = append(buf, ev.Rune)
		case canvas.EventBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case canvas.EventConfirm:
			b.Invalidate()
			return string(buf)
		case canvas.EventCancel, canvas.EventInterrupt:
			b.Invalidate()
			return ""
		}
	}
}

// Message paints text across the bar in the given highlight and blocks for
// one key, which it returns.
func (b *StatusBar) Message(text string, h canvas.Highlight) canvas.Event {
	y := b.row()
	style := styleFor(h)
	b.fillRow(y, style)
	b.writeString(0, y, text, style)
	b.screen.Show()
	return b.readEvent()
}

// Resize is part of the status bar contract; geometry is re-derived from the
// screen on every draw, so nothing is cached here.
func (b *StatusBar) Resize() {}

func (b *StatusBar) readEvent() canvas.Event {
	for {
		ev := translateEvent(b.screen.PollEvent())
		if ev.Code != canvas.EventNone {
			return ev
		}
	}
}

// writeString draws s from x on row y and returns the x just past the text.
// Wide runes advance by their display width.
func (b *StatusBar) writeString(x, y int, s string, style tcell.Style) int {
	width, _ := b.screen.Size()
	for _, r := range s {
		if x >= width {
			break
		}
		b.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (b *StatusBar) fillRow(y int, style tcell.Style) {
	b.fillFrom(0, y, style)
}

func (b *StatusBar) fillFrom(x, y int, style tcell.Style) {
	width, _ := b.screen.Size()
	for ; x < width; x++ {
		b.screen.SetContent(x, y, ' ', nil, style)
	}
}
