// Package desk is a retained-mode toolkit for text-mode desktops: windows
// with borders and titles on a desktop, focus cycling, keyboard routing
// and CSS-like layout rules, drawn into a double-buffered cell grid.
//
// Users import this single package for the public API. A minimal program:
//
//	app, err := desk.NewApp()
//	if err != nil {
//		log.Fatal(err)
//	}
//	win := desk.NewWindow("Hello", desk.RectFromCorners(10, 5, 50, 15))
//	app.Desktop().AddWindow(win)
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// Ctrl+Q quits, F6 and Shift+F6 switch windows, Ctrl+W closes the active
// window, Tab and Shift+Tab move focus inside a window and Escape closes it.
package desk
