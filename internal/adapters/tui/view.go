package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.Width == 0 {
		return "Initializing..."
	}

	rows := m.Rows()
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header(len(rows)),
		"",
		m.list(rows),
		m.footer(),
	)
}

func (m *Model) header(count int) string {
	noun := "annotations"
	if count == 1 {
		noun = "annotation"
	}
	return titleStyle.Render("GLANCE") + " " + positionStyle.Render(fmt.Sprintf("%d %s", count, noun))
}

func (m *Model) list(rows []domain.Annotation) string {
	if len(rows) == 0 {
		return positionStyle.Render("Waiting for text...")
	}

	start := min(m.Offset, len(rows))
	end := min(start+m.listHeight(), len(rows))

	lines := make([]string, 0, end-start)
	row := lipgloss.NewStyle().MaxWidth(m.Width)
	for _, a := range rows[start:end] {
		lines = append(lines, row.Render(m.renderRow(a)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(a domain.Annotation) string {
	icon := style.Circle
	if a.Style == domain.StyleTranslated {
		icon = style.Check
	}
	pos := positionStyle.Render(fmt.Sprintf("%5d,%-5d", a.Bounds.Left, a.Bounds.Top))
	text := strings.Join(strings.Fields(a.Text), " ")
	return pos + " " + icon + " " + labelStyle(a.Style, m.Appearance).Render(text)
}

func (m *Model) footer() string {
	return footerStyle.Render(fmt.Sprintf("size %g · opacity %.2f · j/k scroll · q quit",
		m.Appearance.TextSize, m.Appearance.Opacity))
}
