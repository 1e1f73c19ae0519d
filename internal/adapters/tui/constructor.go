// Package tui renders annotations in an interactive Bubble Tea program.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/ui/output"
)

// NewModel creates a new TUI model with default settings.
func NewModel(w io.Writer) *Model {
	if w == nil {
		w = os.Stderr
	}

	out := output.New(w, output.Interactive)
	lipgloss.SetColorProfile(out.Profile)

	return &Model{
		Annotations: make(map[uint64]domain.Annotation),
		Appearance:  domain.DefaultConfiguration().Appearance(),
	}
}
