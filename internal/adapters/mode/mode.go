// Package mode selects the rendering surface for the current terminal.
package mode

import (
	"os"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Mode is the kind of surface annotations are rendered on.
type Mode int

const (
	// Auto picks a surface from the environment.
	Auto Mode = iota
	// TUI renders annotations in an interactive Bubble Tea program.
	TUI
	// Linear prints every annotation change as a line.
	Linear
)

// String returns the flag value that selects the mode.
func (m Mode) String() string {
	switch m {
	case TUI:
		return "tui"
	case Linear:
		return "linear"
	default:
		return "auto"
	}
}

// Detect returns TUI when stdout is a terminal outside CI, and Linear otherwise.
func Detect() Mode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) Mode {
	if !isTTY || ci == "true" || ci == "1" {
		return Linear
	}
	return TUI
}

// Resolve applies the value of the output flag to the detected mode.
// flag is one of "auto", "tui", "linear", "ci" or empty.
func Resolve(detected Mode, flag string) (Mode, error) {
	switch flag {
	case "tui":
		return TUI, nil
	case "linear", "ci":
		return Linear, nil
	case "auto", "":
		return detected, nil
	default:
		return Auto, zerr.With(domain.ErrUnknownOutputMode, "output", flag)
	}
}
