package report

import "github.com/fatih/color"

// Console message helpers. Callers compose report text from these so the
// scan core never deals with ANSI sequences itself. color.NoColor is the
// single switch: the CLI sets it from --color and tty detection, and every
// helper degrades to plain text when it is on.
var (
	Gray    = color.New(color.FgHiBlack).SprintFunc()
	Red     = color.New(color.FgRed, color.Bold).SprintFunc()
	Green   = color.New(color.FgGreen).SprintFunc()
	Yellow  = color.New(color.FgYellow).SprintFunc()
	Blue    = color.New(color.FgBlue).SprintFunc()
	Magenta = color.New(color.FgMagenta).SprintFunc()
)

// SetColor toggles colored output globally.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}
