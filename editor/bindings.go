package editor

import "fmt"

// command is one editor action; it reports whether the loop should quit.
type command func(d *Designer) bool

// commands names every rune-bindable action. Arrow, Tab, Enter, Escape and
// terminal events are fixed in HandleEvent and cannot be rebound.
var commands = map[string]command{
	"move-up":      func(d *Designer) bool { d.moveBy(0, -1); return false },
	"move-down":    func(d *Designer) bool { d.moveBy(0, 1); return false },
	"move-left":    func(d *Designer) bool { d.moveBy(-1, 0); return false },
	"move-right":   func(d *Designer) bool { d.moveBy(1, 0); return false },
	"resize-up":    func(d *Designer) bool { d.resizeBy(0, -1); return false },
	"resize-down":  func(d *Designer) bool { d.resizeBy(0, 1); return false },
	"resize-left":  func(d *Designer) bool { d.resizeBy(-1, 0); return false },
	"resize-right": func(d *Designer) bool { d.resizeBy(1, 0); return false },
	"add-box":      func(d *Designer) bool { d.addBox(); return false },
	"add-arrow":    func(d *Designer) bool { d.addArrow(); return false },
	"add-line":     func(d *Designer) bool { d.addLine(); return false },
	"delete":       func(d *Designer) bool { d.deleteSelected(); return false },
	"toggle":       func(d *Designer) bool { d.toggleSelected(); return false },
	"toggle-sticky": func(d *Designer) bool {
		d.toggleSticky()
		return false
	},
	"save": func(d *Designer) bool { d.Save(""); return false },
	"open": func(d *Designer) bool { d.Open(""); return false },
	"quit": func(d *Designer) bool { return d.confirmQuit() },
}

// defaultKeys is the stock rune layout: vi motion keys, their shifted resize
// variants, and mnemonic letters for everything else.
var defaultKeys = map[string]rune{
	"move-up":       'k',
	"move-down":     'j',
	"move-left":     'h',
	"move-right":    'l',
	"resize-up":     'K',
	"resize-down":   'J',
	"resize-left":   'H',
	"resize-right":  'L',
	"add-box":       'b',
	"add-arrow":     'a',
	"add-line":      'c',
	"delete":        'd',
	"toggle":        ' ',
	"toggle-sticky": 't',
	"save":          's',
	"open":          'o',
	"quit":          'q',
}

// buildBindings merges override runes into the default layout and inverts it
// into a dispatch table. An override naming an unknown command is an error.
func buildBindings(overrides map[string]rune) (map[rune]command, error) {
	keys := make(map[string]rune, len(defaultKeys))
	for name, r := range defaultKeys {
		keys[name] = r
	}
	for name, r := range overrides {
		if _, ok := commands[name]; !ok {
			return nil, fmt.Errorf("editor: unknown command %q in key bindings", name)
		}
		keys[name] = r
	}

	bindings := make(map[rune]command, len(keys))
	for name, r := range keys {
		if _, taken := bindings[r]; taken {
			return nil, fmt.Errorf("editor: key %q bound to multiple commands", string(r))
		}
		bindings[r] = commands[name]
	}
	return bindings, nil
}
