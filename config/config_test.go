package config

import (
	"os"
	"path/filepath"
	"testing"

	"tad/canvas"
	"tad/editor"
	"tad/geometry"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
editor:
  sticky: false
  box:
    width: 20
    height: 4
  line:
    width: 8
keys:
  add-box: n
  toggle: space
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}

	if opts.Sticky {
		t.Error("sticky = true, want false from config")
	}
	if opts.BoxSize != (geometry.Size{W: 20, H: 4}) {
		t.Errorf("box size = %v, want 20x4", opts.BoxSize)
	}
	// Height left out of the file keeps the built-in default.
	if opts.LineSize != (geometry.Size{W: 8, H: 3}) {
		t.Errorf("line size = %v, want 8x3", opts.LineSize)
	}
	if opts.Bindings["add-box"] != 'n' {
		t.Errorf("add-box bound to %q, want 'n'", opts.Bindings["add-box"])
	}
	if opts.Bindings["toggle"] != ' ' {
		t.Errorf("toggle bound to %q, want the space alias", opts.Bindings["toggle"])
	}
}

func TestEmptyConfigKeepsDefaults(t *testing.T) {
	cfg := &Config{}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	want := editor.DefaultOptions()
	if opts.Sticky != want.Sticky || opts.BoxSize != want.BoxSize || opts.LineSize != want.LineSize {
		t.Errorf("options = %+v, want defaults %+v", opts, want)
	}
	if opts.Bindings != nil {
		t.Errorf("bindings = %v, want none", opts.Bindings)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing file did not fail")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "editor: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML did not fail")
	}
}

func TestMultiRuneKeyRejected(t *testing.T) {
	cfg := &Config{Keys: map[string]string{"quit": "ctrl-q"}}
	if _, err := cfg.Options(); err == nil {
		t.Error("multi-character key was accepted")
	}
}

func TestEmptyKeyRejected(t *testing.T) {
	cfg := &Config{Keys: map[string]string{"quit": ""}}
	if _, err := cfg.Options(); err == nil {
		t.Error("empty key was accepted")
	}
}

func TestUnknownCommandSurfacesAtConstruction(t *testing.T) {
	cfg := &Config{Keys: map[string]string{"levitate": "x"}}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options rejected an unknown command early: %v", err)
	}
	if _, err := editor.NewDesigner(canvas.NewMatrix(10, 10), nil, opts); err == nil {
		t.Error("unknown command name was accepted by the editor")
	}
}
