// Command desk-demo opens a desktop with a few windows to exercise the
// toolkit: focus cycling, window switching and the arrangement commands.
//
// Usage:
//
//	desk-demo [-config file] [-styles file] [-backend ansi|tcell] [-debug file]
//
// Keys:
//
//	Tab / Shift+Tab   move focus inside the active window
//	Enter             press the focused button
//	F6 / Shift+F6     next / previous window
//	F2 F3 F4 F5       cascade, tile side by side, tile stacked, grid
//	F7                open another window
//	Esc / Ctrl+W      close the active window
//	Ctrl+Q            quit
package main

import (
	"flag"
	"fmt"
	"os"

	desk "github.com/grindlemire/go-desk"
	"github.com/grindlemire/go-desk/internal/debug"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("desk-demo", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	stylesPath := fs.String("styles", "", "path to a YAML style sheet")
	backend := fs.String("backend", "ansi", "terminal backend: ansi or tcell")
	debugPath := fs.String("debug", "", "write debug log to this file")
	fs.Parse(args)

	if *debugPath != "" {
		if err := debug.Init(*debugPath); err != nil {
			return err
		}
		defer debug.Close()
	}

	var opts []desk.AppOption
	if *configPath != "" {
		cfg, err := desk.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		opts = append(opts, desk.WithConfig(cfg))
	}
	if *stylesPath != "" {
		sheet, err := desk.LoadStyleSheet(*stylesPath)
		if err != nil {
			return err
		}
		opts = append(opts, desk.WithStyleSheet(sheet))
	}

	app, err := newApp(*backend, opts)
	if err != nil {
		return err
	}

	d := app.Desktop()
	opened := 0
	open := func() {
		opened++
		d.AddWindow(demoWindow(app, opened))
	}
	for range 3 {
		open()
	}
	d.Cascade()

	d.Bind(desk.OnKey(desk.KeyF2, func(desk.KeyEvent) { d.Cascade() }))
	d.Bind(desk.OnKey(desk.KeyF3, func(desk.KeyEvent) { d.TileHorizontal() }))
	d.Bind(desk.OnKey(desk.KeyF4, func(desk.KeyEvent) { d.TileVertical() }))
	d.Bind(desk.OnKey(desk.KeyF5, func(desk.KeyEvent) { d.TileGrid() }))
	d.Bind(desk.OnKey(desk.KeyF7, func(desk.KeyEvent) {
		open()
		d.Cascade()
	}))

	return app.Run()
}

func newApp(backend string, opts []desk.AppOption) (*desk.App, error) {
	switch backend {
	case "ansi":
		return desk.NewApp(opts...)
	case "tcell":
		t, err := desk.NewTcellBackend()
		if err != nil {
			return nil, err
		}
		app, err := desk.NewAppWithBackend(t, t, opts...)
		if err != nil {
			t.Close()
			return nil, err
		}
		return app, nil
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}

func demoWindow(app *desk.App, n int) *desk.Window {
	title := fmt.Sprintf("Window %d", n)
	var w *desk.Window
	if sheet := app.StyleSheet(); sheet != nil && sheet.Has("window") {
		w = app.NewWindow(title, "window")
	} else {
		w = desk.NewWindow(title, desk.NewRect(0, 0, 40, 10))
	}

	status := newLabel(desk.NewRect(2, 1, 30, 1), "Nothing pressed yet")
	w.Add(status)
	for i, name := range []string{"Alpha", "Beta", "Gamma"} {
		w.Add(newButton(desk.NewRect(2, 3+i, 12, 1), name, func() {
			status.SetText(name + " pressed")
		}))
	}
	w.FocusRing().FocusFirst()
	return w
}
