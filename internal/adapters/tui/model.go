package tui

import (
	"cmp"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/glance/internal/core/domain"
)

// chromeHeight is the number of rows taken by the header, the blank line under it and
// the footer.
const chromeHeight = 3

// Model represents the main TUI state.
type Model struct {
	Annotations map[uint64]domain.Annotation
	Appearance  domain.Appearance
	Width       int
	Height      int
	Offset      int
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			if m.Offset > 0 {
				m.Offset--
			}
		case "j", "down":
			if m.Offset < m.maxOffset() {
				m.Offset++
			}
		case "g", "home":
			m.Offset = 0
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.clampOffset()

	case MsgAdd:
		m.put(msg.Annotation)

	case MsgUpdate:
		m.put(msg.Annotation)

	case MsgRemove:
		delete(m.Annotations, msg.Serial)
		m.clampOffset()

	case MsgAppearance:
		m.Appearance = msg.Appearance
	}

	return m, nil
}

func (m *Model) put(a domain.Annotation) {
	if m.Annotations == nil {
		m.Annotations = make(map[uint64]domain.Annotation)
	}
	m.Annotations[a.Serial] = a
}

// Rows returns the visible annotations in reading order: top to bottom, then left to right.
func (m *Model) Rows() []domain.Annotation {
	rows := make([]domain.Annotation, 0, len(m.Annotations))
	for _, a := range m.Annotations {
		if a.Visible {
			rows = append(rows, a)
		}
	}
	slices.SortFunc(rows, func(a, b domain.Annotation) int {
		return cmp.Or(
			cmp.Compare(a.Bounds.Top, b.Bounds.Top),
			cmp.Compare(a.Bounds.Left, b.Bounds.Left),
			cmp.Compare(a.Serial, b.Serial),
		)
	})
	return rows
}

func (m *Model) listHeight() int {
	return max(m.Height-chromeHeight, 1)
}

func (m *Model) maxOffset() int {
	return max(len(m.Rows())-m.listHeight(), 0)
}

func (m *Model) clampOffset() {
	m.Offset = min(m.Offset, m.maxOffset())
}
