// Package config loads the optional YAML configuration file: default shape
// sizes, the initial sticky-mode setting, and rune keybinding overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"tad/editor"
	"tad/geometry"
)

// Config is the root configuration structure.
type Config struct {
	Editor Editor            `yaml:"editor"`
	Keys   map[string]string `yaml:"keys,omitempty"`
}

// Editor holds diagram defaults.
type Editor struct {
	Sticky *bool      `yaml:"sticky,omitempty"` // nil = keep the built-in default
	Box    Dimensions `yaml:"box,omitempty"`
	Line   Dimensions `yaml:"line,omitempty"`
}

// Dimensions is a width/height pair; zero components keep the built-in
// default.
type Dimensions struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// DefaultPath returns the conventional config location,
// $XDG_CONFIG_HOME/tad/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tad", "config.yaml")
}

// Load reads and parses an explicitly named config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadDefault loads the config from the conventional location. A missing
// file is not an error; it yields an empty config.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return &Config{}, nil
	}
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Options projects the config onto editor options, starting from the
// built-in defaults. Malformed key bindings are reported here; unknown
// command names surface when the editor is constructed.
func (c *Config) Options() (editor.Options, error) {
	opts := editor.DefaultOptions()

	if c.Editor.Sticky != nil {
		opts.Sticky = *c.Editor.Sticky
	}
	applyDimensions(&opts.BoxSize, c.Editor.Box)
	applyDimensions(&opts.LineSize, c.Editor.Line)

	if len(c.Keys) > 0 {
		opts.Bindings = make(map[string]rune, len(c.Keys))
		for name, key := range c.Keys {
			r, err := parseKey(key)
			if err != nil {
				return editor.Options{}, fmt.Errorf("key binding %q: %w", name, err)
			}
			opts.Bindings[name] = r
		}
	}
	return opts, nil
}

func applyDimensions(size *geometry.Size, d Dimensions) {
	if d.Width != 0 {
		size.W = d.Width
	}
	if d.Height != 0 {
		size.H = d.Height
	}
}

// parseKey accepts a single rune, or the alias "space" since a literal
// space is awkward in YAML.
func parseKey(key string) (rune, error) {
	if key == "space" {
		return ' ', nil
	}
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || size != len(key) {
		return 0, fmt.Errorf("want a single character, got %q", key)
	}
	return r, nil
}
