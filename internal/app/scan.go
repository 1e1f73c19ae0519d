package app

import (
	"context"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/glance/internal/adapters/config"
	"go.trai.ch/glance/internal/adapters/linear"
	"go.trai.ch/glance/internal/adapters/telemetry"
	"go.trai.ch/glance/internal/engine/overlay"
	"go.trai.ch/glance/internal/ui/style"
	"go.trai.ch/zerr"
)

// ScanOptions configuration for the Scan method.
type ScanOptions struct {
	ConfigPath string
	Snapshot   string
	// Events prints every annotation change before the result table.
	Events bool
}

// Scan translates the current snapshot once and prints the resulting annotations.
func (a *App) Scan(ctx context.Context, opts ScanOptions) error {
	settings, err := a.loadSettings(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	tracer, shutdown := telemetry.Setup(a.logger)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	events := io.Discard
	if opts.Events {
		events = a.stdout
	}
	surface := linear.NewSurface(events)

	configs := config.NewStaticSource(settings.Configuration)
	coordinator, err := a.coordinator(settings, opts.Snapshot, configs, surface, tracer)
	if err != nil {
		return err
	}

	overlays, err := coordinator.Once(ctx)
	if err != nil {
		return err
	}

	_, err = io.WriteString(a.stdout, renderOverlays(overlays)+"\n")
	return err
}

func renderOverlays(overlays []overlay.Overlay) string {
	rows := make([][]string, 0, len(overlays))
	for _, o := range overlays {
		rows = append(rows, []string{
			o.ID.String(),
			o.State.String(),
			o.Annotation.Bounds.String(),
			o.Source,
			o.Annotation.Text,
		})
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	header := cell.Bold(true).Foreground(style.Iris)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.Slate)).
		Headers("ID", "STATE", "BOUNDS", "SOURCE", "TEXT").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}
