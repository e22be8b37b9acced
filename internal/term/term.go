// Package term resolves the color mode into a termenv profile and detects
// terminals.
//
// The resolved profile is passed to the logger and the chart renderer at
// construction; nothing here holds process-wide color state.
package term

import (
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/backmassage/watchhabits/internal/config"
)

// Profile returns the color profile for mode. Ascii means no escape codes.
func Profile(mode config.ColorMode) termenv.Profile {
	switch mode {
	case config.ColorAlways:
		p := termenv.NewOutput(os.Stdout).EnvColorProfile()
		if p == termenv.Ascii {
			return termenv.ANSI256
		}
		return p
	case config.ColorNever:
		return termenv.Ascii
	default: // ColorAuto
		if !autoColor() {
			return termenv.Ascii
		}
		return termenv.NewOutput(os.Stdout).ColorProfile()
	}
}

// autoColor follows TTY detection, NO_COLOR (https://no-color.org) and
// TERM=dumb.
func autoColor() bool {
	return IsTerminal(os.Stdout) &&
		os.Getenv("NO_COLOR") == "" &&
		strings.ToLower(os.Getenv("TERM")) != "dumb"
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
