// Package ui holds the terminal output helpers shared by the CLI and
// the interactive mode: themes, colorizing, the framed panel and the
// Lip Gloss styles used by the TUI.
package ui

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

var (
	forceColor   bool
	disableColor bool // --no-color
	themeNoColor bool // mono theme; independent of the flag
)

// SetColorForcing overrides TTY detection for color output. It does
// not touch a theme-forced disable, so the call order against
// SetTheme does not matter.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// C wraps s in the given color code when color output is on.
func C(color, s string) string {
	if disableColor || themeNoColor {
		return s
	}
	if forceColor || isTTY() {
		return color + s + reset
	}
	return s
}

// OK prints a success line to stdout.
func OK(msg string) { fmt.Println(C(fgGreen, symCheck+" "+msg)) }

// Fail prints a failure line to stderr.
func Fail(msg string) { fmt.Fprintln(os.Stderr, C(fgRed, symCross+" "+msg)) }
