// Package editor implements the interactive diagram controller: an ordered
// shape list, a selection cursor, and a synchronous event loop that maps
// input events onto move, resize, create, delete, edit and persistence
// commands.
package editor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"tad/canvas"
	"tad/diagram"
	"tad/geometry"
)

// Mode describes what the cursor currently manipulates.
type Mode int

const (
	// ModeHand is the resting mode: no object selected, the free cursor
	// roams the canvas.
	ModeHand Mode = iota
	// ModeMove is active whenever an object is selected.
	ModeMove
)

// noSelection is the empty slot in the selection cycle. All index arithmetic
// goes through cycleSelection/deleteSelected, which never produce any other
// out-of-range value.
const noSelection = -1

// StatusBar is the hint/prompt widget at the bottom of the screen.
type StatusBar interface {
	// SetShortcut registers or updates a key hint, preserving insertion
	// order.
	SetShortcut(key, label string)
	// Invalidate redraws the hint bar.
	Invalidate()
	// Input prompts for one line of text; an empty string means cancelled.
	Input(prompt string) string
	// Message displays text in the given highlight and blocks for one key.
	Message(text string, h canvas.Highlight) canvas.Event
	// Resize adapts the bar to new terminal dimensions.
	Resize()
}

// Options configures a Designer.
type Options struct {
	Sticky   bool          // move connected lines along with boxes
	BoxSize  geometry.Size // size of newly added boxes
	LineSize geometry.Size // size of newly added lines and arrows
	// Bindings remaps commands to runes, keyed by command name. Unknown
	// names are a construction error.
	Bindings map[string]rune
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		Sticky:   true,
		BoxSize:  geometry.Size{W: 14, H: 2},
		LineSize: geometry.Size{W: 6, H: 3},
	}
}

// Designer owns the diagram being edited and interprets input events. It is
// strictly single-threaded: every mutation happens while handling one event,
// before the next render pass.
type Designer struct {
	canvas canvas.Canvas
	status StatusBar

	objects  []diagram.Object
	selected int
	cursor   geometry.Point
	mode     Mode
	sticky   bool

	boxSize  geometry.Size
	lineSize geometry.Size
	bindings map[rune]command
}

// NewDesigner wires a controller to its canvas and status bar. It fails only
// when opts.Bindings names an unknown command.
func NewDesigner(cv canvas.Canvas, status StatusBar, opts Options) (*Designer, error) {
	d := &Designer{
		canvas:   cv,
		status:   status,
		selected: noSelection,
		mode:     ModeHand,
		sticky:   opts.Sticky,
		boxSize:  opts.BoxSize,
		lineSize: opts.LineSize,
	}
	if d.boxSize == (geometry.Size{}) {
		d.boxSize = DefaultOptions().BoxSize
	}
	if d.lineSize == (geometry.Size{}) {
		d.lineSize = DefaultOptions().LineSize
	}
	bindings, err := buildBindings(opts.Bindings)
	if err != nil {
		return nil, err
	}
	d.bindings = bindings
	return d, nil
}

// Objects exposes the shape list, in draw order.
func (d *Designer) Objects() []diagram.Object { return d.objects }

// Mode returns the current cursor mode.
func (d *Designer) Mode() Mode { return d.mode }

// SelectedIndex returns the selected slot, or -1 when nothing is selected.
func (d *Designer) SelectedIndex() int { return d.selected }

// Cursor returns the free cursor position.
func (d *Designer) Cursor() geometry.Point { return d.cursor }

// selectedObject returns the selected shape, or nil. This accessor is the
// only way command handlers reach the selection, so a stale index can never
// be dereferenced.
func (d *Designer) selectedObject() diagram.Object {
	if d.selected >= 0 && d.selected < len(d.objects) {
		return d.objects[d.selected]
	}
	return nil
}

// Loop runs the synchronous render/input cycle until the user confirms quit.
func (d *Designer) Loop() {
	for {
		d.canvas.Clear()
		d.Draw()
		d.canvas.Refresh()
		d.updateStatusBar()

		ev := d.canvas.ReadEvent()
		if d.HandleEvent(ev) {
			return
		}
	}
}

// Draw renders every shape in list order, the selected one wrapped in the
// selection highlight. With no selection, the cell under the free cursor is
// re-painted highlighted to stand in for a hardware cursor.
func (d *Designer) Draw() {
	for i, obj := range d.objects {
		if i == d.selected {
			d.canvas.SetHighlight(canvas.HighlightSelected)
		}
		obj.Draw(d.canvas)
		if i == d.selected {
			d.canvas.ResetHighlight()
		}
	}
	if d.selectedObject() == nil {
		d.canvas.PutChar(d.cursor, d.canvas.GetChar(d.cursor), canvas.HighlightSelected)
	}
}

// HandleEvent dispatches one input event and reports whether the loop should
// terminate.
func (d *Designer) HandleEvent(ev canvas.Event) bool {
	switch ev.Code {
	case canvas.EventUp:
		d.moveBy(0, -1)
	case canvas.EventDown:
		d.moveBy(0, 1)
	case canvas.EventLeft:
		d.moveBy(-1, 0)
	case canvas.EventRight:
		d.moveBy(1, 0)
	case canvas.EventGrowUp:
		d.resizeBy(0, -1)
	case canvas.EventGrowDown:
		d.resizeBy(0, 1)
	case canvas.EventGrowLeft:
		d.resizeBy(-1, 0)
	case canvas.EventGrowRight:
		d.resizeBy(1, 0)
	case canvas.EventNext:
		d.cycleSelection(false)
	case canvas.EventPrev:
		d.cycleSelection(true)
	case canvas.EventConfirm:
		d.selectOrEdit()
	case canvas.EventCancel:
		d.unselect()
	case canvas.EventResize:
		d.status.Resize()
		d.canvas.Resize(ev.Width, ev.Height-1)
	case canvas.EventInterrupt:
		return d.confirmQuit()
	case canvas.EventRune:
		if cmd, ok := d.bindings[ev.Rune]; ok {
			return cmd(d)
		}
	}
	return false
}

// moveBy shifts the selected object, dragging connected line ends along in
// sticky mode, or moves the free cursor clamped to the canvas.
func (d *Designer) moveBy(dx, dy int) {
	if obj := d.selectedObject(); obj != nil {
		var starts, ends []*diagram.Line
		if d.sticky {
			// Connections are recomputed from the pre-move bounding
			// box on every step, never remembered.
			starts, ends = d.connectedLines()
		}

		b := obj.Bounds()
		b.Position.X += dx
		b.Position.Y += dy

		for _, ln := range starts {
			lb := ln.Bounds()
			lb.Position.X += dx
			lb.Position.Y += dy
			// Compensate so the far end stays put.
			lb.Size.W -= dx
			lb.Size.H -= dy
		}
		for _, ln := range ends {
			lb := ln.Bounds()
			lb.Size.W += dx
			lb.Size.H += dy
		}
		return
	}

	width, height := d.canvas.Size()
	if nx := d.cursor.X + dx; 0 <= nx && nx < width {
		d.cursor.X = nx
	}
	if ny := d.cursor.Y + dy; 0 <= ny && ny < height {
		d.cursor.Y = ny
	}
}

// resizeBy grows or shrinks the selected object. Negative sizes are valid;
// normalization happens at draw time.
func (d *Designer) resizeBy(dw, dh int) {
	if obj := d.selectedObject(); obj != nil {
		b := obj.Bounds()
		b.Size.W += dw
		b.Size.H += dh
	}
}

// connectedLines finds lines whose start or end corner touches the selected
// object's bounding box padded by one cell. Lines never drag other lines.
func (d *Designer) connectedLines() (starts, ends []*diagram.Line) {
	obj := d.selectedObject()
	if obj == nil {
		return nil, nil
	}
	if _, isLine := obj.(*diagram.Line); isLine {
		return nil, nil
	}

	b := obj.Bounds()
	pad := geometry.Size{W: 1, H: 1}
	lo := b.TopLeft().Sub(pad)
	hi := b.BottomRight().Add(pad)

	for _, o := range d.objects {
		ln, ok := o.(*diagram.Line)
		if !ok {
			continue
		}
		switch {
		case ln.TopLeft().IsWithin(lo, hi):
			starts = append(starts, ln)
		case ln.BottomRight().IsWithin(lo, hi):
			ends = append(ends, ln)
		}
	}
	return starts, ends
}

// cycleSelection advances (or retreats) the selection through every object
// plus a virtual no-selection slot. Landing on an object sets ModeMove;
// landing on the empty slot sets ModeHand.
func (d *Designer) cycleSelection(reverse bool) {
	mode := ModeMove
	if reverse {
		if d.selected == noSelection {
			d.selected = len(d.objects) - 1
		} else {
			d.selected--
		}
		if d.selected < 0 {
			d.selected = noSelection
			mode = ModeHand
		}
	} else {
		d.selected++
		if d.selected >= len(d.objects) {
			d.selected = noSelection
			mode = ModeHand
		}
	}
	d.mode = mode
}

// selectOrEdit selects the shape under the free cursor, or starts the text
// edit session on an already-selected shape that supports one. The scan
// deliberately keeps overwriting the match, so of several stacked shapes the
// last in list order wins, which is also the one drawn on top.
func (d *Designer) selectOrEdit() {
	if d.selectedObject() == nil {
		for i, obj := range d.objects {
			b := obj.Bounds()
			if d.cursor.IsWithin(b.TopLeft(), b.BottomRight()) {
				d.selected = i
				d.mode = ModeMove
			}
		}
		return
	}
	if ed, ok := d.selectedObject().(diagram.TextEditor); ok {
		ed.Edit(d.canvas)
	}
}

// unselect drops any selection.
func (d *Designer) unselect() {
	d.selected = noSelection
	d.mode = ModeHand
}

// toggleSelected invokes the selected shape's toggle capability, if any.
func (d *Designer) toggleSelected() {
	if t, ok := d.selectedObject().(diagram.Toggler); ok {
		t.Toggle()
	}
}

// newObjectPosition picks where a freshly added shape lands: next to the
// selection when there is one, under the free cursor otherwise.
func (d *Designer) newObjectPosition(newWidth int) geometry.Point {
	obj := d.selectedObject()
	if obj == nil {
		return d.cursor
	}
	if ln, ok := obj.(*diagram.Line); ok {
		offset := geometry.Size{W: -(newWidth / 2), H: 1}
		if ln.Orientation == diagram.Vertical {
			offset = geometry.Size{W: 1, H: halfDown(ln.Size.H)}
		}
		return ln.BottomRight().Add(offset)
	}
	b := obj.Bounds()
	return b.TopRight().Add(geometry.Size{W: 1, H: halfDown(b.Size.H)})
}

// halfDown halves n rounding toward negative infinity, so the vertical
// centering offset is symmetric for shapes anchored with a negative height.
func halfDown(n int) int {
	if n < 0 && n%2 != 0 {
		return n/2 - 1
	}
	return n / 2
}

// appendObject adds a shape and selects it.
func (d *Designer) appendObject(obj diagram.Object) {
	d.objects = append(d.objects, obj)
	d.selected = len(d.objects) - 1
	d.mode = ModeMove
}

func (d *Designer) addBox() {
	d.appendObject(diagram.NewBox(d.newObjectPosition(d.boxSize.W), d.boxSize))
}

func (d *Designer) addArrow() {
	d.appendObject(diagram.NewLine(d.newObjectPosition(0), d.lineSize, true))
}

func (d *Designer) addLine() {
	d.appendObject(diagram.NewLine(d.newObjectPosition(0), d.lineSize, false))
}

// deleteSelected removes the selected shape. The selection slides to the
// previous slot, possibly off the front into no-selection.
func (d *Designer) deleteSelected() {
	if d.selected < 0 || d.selected >= len(d.objects) {
		return
	}
	d.objects = append(d.objects[:d.selected], d.objects[d.selected+1:]...)
	d.selected--
	if d.selected == noSelection {
		d.mode = ModeHand
	}
}

func (d *Designer) toggleSticky() {
	d.sticky = !d.sticky
}

// Save serializes the diagram to name, prompting for a filename when name is
// empty. User cancellation and I/O errors abort without touching state.
func (d *Designer) Save(name string) {
	if name == "" {
		name = d.status.Input("File name to save:")
	}
	if strings.TrimSpace(name) == "" {
		return
	}
	data, err := diagram.Encode(d.objects)
	if err != nil {
		d.status.Message(fmt.Sprintf("Save failed: %v", err), canvas.HighlightError)
		return
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		d.status.Message(fmt.Sprintf("Save failed: %v", err), canvas.HighlightError)
		return
	}
}

// Open loads a diagram file, prompting for a filename when name is empty.
// The file is decoded in full before the in-memory diagram is replaced, so a
// failed load leaves the editor exactly as it was.
func (d *Designer) Open(name string) {
	if name == "" {
		name = d.status.Input("File name to open:")
	}
	if name == "" {
		return
	}
	data, err := os.ReadFile(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			d.status.Message("File not found.", canvas.HighlightError)
		} else {
			d.status.Message(fmt.Sprintf("Open failed: %v", err), canvas.HighlightError)
		}
		return
	}
	objects, err := diagram.Decode(data)
	if err != nil {
		d.status.Message(fmt.Sprintf("Open failed: %v", err), canvas.HighlightError)
		return
	}
	d.objects = objects
	d.unselect()
}

// confirmQuit asks before terminating the loop.
func (d *Designer) confirmQuit() bool {
	ev := d.status.Message("Quit? [y/N]", canvas.HighlightConfirm)
	return ev.Code == canvas.EventRune && (ev.Rune == 'y' || ev.Rune == 'Y')
}

func (d *Designer) updateStatusBar() {
	enter := "Select"
	if d.selectedObject() != nil {
		enter = "Edit"
	}
	d.status.SetShortcut("Enter", enter)
	sticky := "Nonsticky"
	if d.sticky {
		sticky = "Sticky"
	}
	d.status.SetShortcut("T", sticky)
	d.status.Invalidate()
}
