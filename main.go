// Command tad is an interactive terminal diagram builder: boxes, lines and
// arrows drawn with box-drawing characters, edited live and saved as JSON.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"

	"tad/canvas"
	"tad/config"
	"tad/diagram"
	"tad/editor"
	"tad/terminal"
)

func main() {
	var (
		configPath = flag.String("config", "", "Config file (default: "+config.DefaultPath()+")")
		render     = flag.Bool("render", false, "Render the diagram file to stdout and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [diagram.json]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Terminal ASCII diagram builder.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	filename := flag.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatal(err)
	}
	opts, err := cfg.Options()
	if err != nil {
		fatal(err)
	}

	if *render {
		if filename == "" {
			fatal(fmt.Errorf("-render requires a diagram file argument"))
		}
		if err := renderFile(filename, os.Stdout); err != nil {
			fatal(err)
		}
		return
	}

	if err := run(filename, opts); err != nil {
		fatal(err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

// run owns the terminal for the lifetime of the editing session.
func run(filename string, opts editor.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	status := terminal.NewStatusBar(screen)
	for _, sc := range []struct{ key, label string }{
		{"Q", "uit"},
		{"S", "ave"},
		{"O", "pen"},
		{"B", "ox"},
		{"A", "rrow"},
		{"C", "onnection"},
		{"D", "elete"},
		{"T", "Sticky"},
		{"Tab", "Next"},
		{"Enter", "Select/Edit"},
		{"Shift", "Resize"},
		{"Spc", "Toggle"},
	} {
		status.SetShortcut(sc.key, sc.label)
	}
	status.Invalidate()

	d, err := editor.NewDesigner(terminal.NewScreen(screen), status, opts)
	if err != nil {
		return err
	}
	if filename != "" {
		d.Open(filename)
	}
	d.Loop()
	return nil
}

// renderFile rasterizes a saved diagram onto an in-memory canvas sized to its
// bounds and writes the result out.
func renderFile(name string, w io.Writer) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	objects, err := diagram.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	var width, height int
	for _, obj := range objects {
		br := obj.Bounds().NormalizedBottomRight()
		if br.X+1 > width {
			width = br.X + 1
		}
		if br.Y+1 > height {
			height = br.Y + 1
		}
	}
	if width == 0 || height == 0 {
		return nil
	}

	m := canvas.NewMatrix(width, height)
	for _, obj := range objects {
		obj.Draw(m)
	}
	_, err = fmt.Fprintln(w, m.String())
	return err
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "tad:", err)
	os.Exit(1)
}
