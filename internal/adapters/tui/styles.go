package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/ui/style"
)

const (
	// Below this opacity labels are rendered faint.
	faintOpacity = 0.5
	// From this text size on labels are rendered bold.
	boldTextSize = 20
)

var (
	pendingLabelStyle = lipgloss.NewStyle().
				Foreground(style.Pending).
				Background(style.Backdrop).
				Padding(0, 1)

	translatedLabelStyle = lipgloss.NewStyle().
				Foreground(style.Translated).
				Background(style.Backdrop).
				Padding(0, 1)

	positionStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	footerStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)
)

func labelStyle(s domain.Style, app domain.Appearance) lipgloss.Style {
	st := pendingLabelStyle
	if s == domain.StyleTranslated {
		st = translatedLabelStyle
	}
	if app.Opacity > 0 && app.Opacity < faintOpacity {
		st = st.Faint(true)
	}
	if app.TextSize >= boldTextSize {
		st = st.Bold(true)
	}
	return st
}
