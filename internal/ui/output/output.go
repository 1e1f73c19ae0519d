// Package output creates the termenv outputs shared by the logger and the surfaces.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Interactive returns the profile for a terminal someone is looking at.
// NO_COLOR forces Ascii; otherwise the terminal's capabilities decide.
func Interactive() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Stream returns the profile for line output that is likely piped or captured.
// NO_COLOR forces Ascii; otherwise plain ANSI is used.
func Stream() termenv.Profile {
	if noColor() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

func noColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

// New creates an output for w with the selected profile. A nil w writes to stderr.
func New(w io.Writer, profile func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Paint renders s in color c. Ascii outputs return s unchanged.
func Paint(o *termenv.Output, s string, c lipgloss.Color) string {
	return o.String(s).Foreground(o.Color(string(c))).String()
}

// Dim renders s faint.
func Dim(o *termenv.Output, s string) string {
	return o.String(s).Faint().String()
}
