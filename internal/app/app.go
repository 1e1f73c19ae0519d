// Package app implements the application layer for glance.
package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/glance/internal/adapters/cache"
	"go.trai.ch/glance/internal/adapters/config"
	"go.trai.ch/glance/internal/adapters/linear"
	"go.trai.ch/glance/internal/adapters/mode"
	"go.trai.ch/glance/internal/adapters/telemetry"
	"go.trai.ch/glance/internal/adapters/tui"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/glance/internal/engine/detector"
	"go.trai.ch/glance/internal/engine/extract"
	"go.trai.ch/glance/internal/engine/gateway"
	"go.trai.ch/glance/internal/engine/overlay"
	"go.trai.ch/glance/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	providers    ports.ProviderFactory
	screens      ports.ScreenOpener
	watchers     ports.WatcherFactory
	languages    ports.LanguageDetector
	logger       ports.Logger
	stdout       io.Writer
	teaOptions   []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	providers ports.ProviderFactory,
	screens ports.ScreenOpener,
	watchers ports.WatcherFactory,
	languages ports.LanguageDetector,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		providers:    providers,
		screens:      screens,
		watchers:     watchers,
		languages:    languages,
		logger:       log,
		stdout:       os.Stdout,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput sets where the linear surface and command results are written.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath names the config file. Empty discovers glance.yaml from the working directory.
	ConfigPath string
	// Snapshot overrides the tree snapshot named in the config file.
	Snapshot   string
	OutputMode string
}

// Run observes the screen and keeps its annotations up to date until ctx is done or the
// user quits the TUI.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	settings, err := a.loadSettings(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	surfaceMode, err := mode.Resolve(mode.Detect(), opts.OutputMode)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tracer, shutdown := telemetry.Setup(a.logger)
	defer func() {
		_ = shutdown(context.WithoutCancel(ctx))
	}()

	surface := a.surface(ctx, cancel, surfaceMode)
	coordinator, err := a.coordinator(settings, opts.Snapshot, a.configSource(settings), surface, tracer)
	if err != nil {
		return err
	}

	cfg := settings.Configuration
	a.logger.Info(fmt.Sprintf("translating %s to %s", cfg.SourceLanguage, cfg.TargetLanguage))
	return coordinator.Run(ctx)
}

// loadSettings reads the given config file, or the discovered glance.yaml. Without a
// config file the defaults apply.
func (a *App) loadSettings(configPath string) (*domain.Settings, error) {
	if configPath != "" {
		return a.configLoader.LoadFile(configPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}
	path, err := a.configLoader.DiscoverConfigPath(cwd)
	if errors.Is(err, domain.ErrConfigNotFound) {
		a.logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return a.configLoader.LoadFile(path)
}

// configSource follows the config file the settings were read from.
func (a *App) configSource(settings *domain.Settings) ports.ConfigSource {
	if settings.Path == "" {
		return config.NewStaticSource(settings.Configuration)
	}
	return config.NewFileSource(settings.Path, settings.Configuration, a.configLoader, a.watchers, a.logger)
}

// surface creates the surface for the mode. Quitting the TUI cancels the run.
func (a *App) surface(ctx context.Context, cancel context.CancelFunc, m mode.Mode) ports.Surface {
	if m != mode.TUI {
		return linear.NewSurface(a.stdout)
	}

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	surface := tui.NewSurface(tui.NewModel(os.Stderr), opts...)
	go func() {
		select {
		case <-surface.Done():
			cancel()
		case <-ctx.Done():
		}
	}()
	return surface
}

// coordinator assembles the pipeline for the settings. snapshot overrides the snapshot
// named in the settings.
func (a *App) coordinator(
	settings *domain.Settings,
	snapshot string,
	configs ports.ConfigSource,
	surface ports.Surface,
	tracer ports.Tracer,
) (*pipeline.Coordinator, error) {
	path := cmp.Or(snapshot, settings.Snapshot)
	if path == "" {
		return nil, domain.ErrNoSnapshot
	}

	screen, err := a.screens.Open(path)
	if err != nil {
		return nil, err
	}

	provider, err := a.providers.Provider(settings.Provider)
	if err != nil {
		return nil, err
	}

	p := settings.Pipeline
	gw := gateway.New(provider, cache.New(p.CacheCapacity), a.logger, tracer).
		WithTimeout(p.TranslateTimeout)
	if a.languages != nil {
		gw = gw.WithLanguageDetector(a.languages)
	}

	changes := detector.New(p.Debounce)
	registry := overlay.NewRegistry(surface, overlay.NewPool(p.PoolCapacity), changes, screen)

	return pipeline.New(
		screen,
		configs,
		extract.New(screen, p.LargeRegionThreshold, a.logger),
		changes,
		gw,
		registry,
		surface,
		tracer,
		a.logger,
	).WithRefreshInterval(p.Refresh), nil
}
