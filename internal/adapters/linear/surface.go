// Package linear provides a line-oriented surface for non-interactive environments.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/glance/internal/ui/output"
	"go.trai.ch/glance/internal/ui/style"
)

var _ ports.Surface = (*Surface)(nil)

// Surface implements ports.Surface by printing every annotation change as one line.
// Lines are written in the order the changes arrive.
type Surface struct {
	w      io.Writer
	output *termenv.Output

	mu        sync.Mutex
	live      map[uint64]struct{}
	created   bool
	destroyed bool
}

// NewSurface creates a new Surface writing to w, or to stdout if w is nil.
func NewSurface(w io.Writer) *Surface {
	if w == nil {
		w = os.Stdout
	}

	return &Surface{
		w:      w,
		output: output.New(w, output.Stream),
		live:   make(map[uint64]struct{}),
	}
}

// Create enables the surface.
func (s *Surface) Create(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return domain.ErrSurfaceDestroyed
	}
	s.created = true
	return nil
}

// Add prints a new annotation.
func (s *Surface) Add(a domain.Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.activeLocked() {
		return
	}
	s.live[a.Serial] = struct{}{}
	s.printAnnotationLocked("+", a)
}

// Update prints the new state of a shown annotation.
func (s *Surface) Update(a domain.Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.activeLocked() {
		return
	}
	if _, ok := s.live[a.Serial]; !ok {
		return
	}
	s.printAnnotationLocked("~", a)
}

// Remove prints the removal of a shown annotation.
func (s *Surface) Remove(a domain.Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.activeLocked() {
		return
	}
	if _, ok := s.live[a.Serial]; !ok {
		return
	}
	delete(s.live, a.Serial)
	_, _ = fmt.Fprintf(s.w, "- #%d\n", a.Serial)
}

// SetAppearance prints the display settings.
func (s *Surface) SetAppearance(app domain.Appearance) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.activeLocked() {
		return
	}
	_, _ = fmt.Fprintf(s.w, "= size %g opacity %.2f\n", app.TextSize, app.Opacity)
}

// Destroy disables the surface. Annotations still shown are reported as removed.
func (s *Surface) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return nil
	}
	s.destroyed = true
	if n := len(s.live); n > 0 {
		_, _ = fmt.Fprintf(s.w, "- %d remaining\n", n)
		clear(s.live)
	}
	return nil
}

// activeLocked reports whether changes are printed.
// Must be called with s.mu held.
func (s *Surface) activeLocked() bool {
	return s.created && !s.destroyed
}

// printAnnotationLocked prints one annotation line.
// Must be called with s.mu held.
func (s *Surface) printAnnotationLocked(op string, a domain.Annotation) {
	icon, color := style.Circle, style.Pending
	if a.Style == domain.StyleTranslated {
		icon, color = style.Check, style.Translated
	}

	text := strings.Join(strings.Fields(a.Text), " ")
	label := output.Paint(s.output, text, color)
	if !a.Visible {
		label = output.Dim(s.output, text)
	}

	_, _ = fmt.Fprintf(s.w, "%s #%d %s %s %s\n", op, a.Serial, icon, a.Bounds, label)
}
