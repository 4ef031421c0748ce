// Package terminal adapts a tcell screen to the canvas and status-bar
// contracts the editor consumes: a character-grid drawing region, a one-row
// hint/prompt bar, and translation of tcell events into canvas events.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"tad/canvas"
)

// translateEvent maps a tcell event onto the editor's event model. Events
// with no mapping come back as EventNone and are skipped by the read loops.
func translateEvent(ev tcell.Event) canvas.Event {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		w, h := tev.Size()
		return canvas.Event{Code: canvas.EventResize, Width: w, Height: h}
	case *tcell.EventKey:
		return translateKey(tev)
	}
	return canvas.Event{Code: canvas.EventNone}
}

func translateKey(ev *tcell.EventKey) canvas.Event {
	shift := ev.Modifiers()&tcell.ModShift != 0
	switch ev.Key() {
	case tcell.KeyUp:
		if shift {
			return canvas.Event{Code: canvas.EventGrowUp}
		}
		return canvas.Event{Code: canvas.EventUp}
	case tcell.KeyDown:
		if shift {
			return canvas.Event{Code: canvas.EventGrowDown}
		}
		return canvas.Event{Code: canvas.EventDown}
	case tcell.KeyLeft:
		if shift {
			return canvas.Event{Code: canvas.EventGrowLeft}
		}
		return canvas.Event{Code: canvas.EventLeft}
	case tcell.KeyRight:
		if shift {
			return canvas.Event{Code: canvas.EventGrowRight}
		}
		return canvas.Event{Code: canvas.EventRight}
	case tcell.KeyTab:
		return canvas.Event{Code: canvas.EventNext}
	case tcell.KeyBacktab:
		return canvas.Event{Code: canvas.EventPrev}
	case tcell.KeyEnter:
		return canvas.Event{Code: canvas.EventConfirm}
	case tcell.KeyEscape:
		return canvas.Event{Code: canvas.EventCancel}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return canvas.Event{Code: canvas.EventBackspace}
	case tcell.KeyDelete:
		return canvas.Event{Code: canvas.EventDelete}
	case tcell.KeyCtrlC:
		return canvas.Event{Code: canvas.EventInterrupt}
	case tcell.KeyRune:
		return canvas.Event{Code: canvas.EventRune, Rune: ev.Rune()}
	}
	return canvas.Event{Code: canvas.EventNone}
}

// styleFor maps the device-independent highlight onto the terminal palette.
func styleFor(h canvas.Highlight) tcell.Style {
	switch h {
	case canvas.HighlightSelected:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue)
	case canvas.HighlightError:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	case canvas.HighlightConfirm:
		return tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	case canvas.HighlightWarning:
		return tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
	default:
		return tcell.StyleDefault
	}
}

// barStyle is the status bar background.
var barStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
