package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
)

var _ ports.Surface = (*Surface)(nil)

type surfaceState uint8

const (
	stateIdle surfaceState = iota
	stateRunning
	stateDestroyed
)

// Surface wraps the Bubble Tea program as a ports.Surface.
// Every change is sent to the program and applied on its event loop.
type Surface struct {
	program *tea.Program
	model   *Model
	done    chan struct{}

	mu    sync.Mutex
	state surfaceState
	err   error
}

// NewSurface creates a new TUI surface.
func NewSurface(model *Model, opts ...tea.ProgramOption) *Surface {
	return &Surface{
		program: tea.NewProgram(model, opts...),
		model:   model,
		done:    make(chan struct{}),
	}
}

// Create launches the program in a background goroutine.
func (s *Surface) Create(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case stateRunning:
		return nil
	case stateDestroyed:
		return domain.ErrSurfaceDestroyed
	}
	s.state = stateRunning

	go func() {
		_, err := s.program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			err = nil
		}
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.done)
	}()
	return nil
}

// Add shows a new annotation.
func (s *Surface) Add(a domain.Annotation) {
	s.send(MsgAdd{Annotation: a})
}

// Update changes a shown annotation.
func (s *Surface) Update(a domain.Annotation) {
	s.send(MsgUpdate{Annotation: a})
}

// Remove hides an annotation.
func (s *Surface) Remove(a domain.Annotation) {
	s.send(MsgRemove{Serial: a.Serial})
}

// SetAppearance applies display settings to all annotations.
func (s *Surface) SetAppearance(app domain.Appearance) {
	s.send(MsgAppearance{Appearance: app})
}

// Destroy quits the program and waits for it to terminate.
func (s *Surface) Destroy() error {
	s.mu.Lock()
	prev := s.state
	s.state = stateDestroyed
	s.mu.Unlock()

	if prev != stateRunning {
		return nil
	}

	s.program.Quit()
	<-s.done

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Done is closed once the program has terminated, including when the user quit it.
func (s *Surface) Done() <-chan struct{} {
	return s.done
}

// Model returns the model rendered by the program. It must only be read after Done is closed.
func (s *Surface) Model() *Model {
	return s.model
}

func (s *Surface) send(msg tea.Msg) {
	s.mu.Lock()
	running := s.state == stateRunning
	s.mu.Unlock()

	if running {
		s.program.Send(msg)
	}
}
