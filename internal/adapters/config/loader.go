// Package config loads glance.yaml and publishes configuration snapshots.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     FileSystem
}

// NewLoader creates a new Loader reading from the operating system filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, fs: osFileSystem{}}
}

// WithFileSystem replaces the filesystem the loader reads from.
func (l *Loader) WithFileSystem(fsys FileSystem) *Loader {
	l.fs = fsys
	return l
}

// Load discovers glance.yaml from cwd and reads it.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	configPath, err := l.DiscoverConfigPath(cwd)
	if err != nil {
		return nil, err
	}
	return l.LoadFile(configPath)
}

// DiscoverConfigPath walks up from cwd to the first directory holding glance.yaml.
func (l *Loader) DiscoverConfigPath(cwd string) (string, error) {
	currentDir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "config discovery failed"), "cwd", cwd)
}

// LoadFile reads, validates and resolves the given config file.
func (l *Loader) LoadFile(configPath string) (*domain.Settings, error) {
	var file Configfile
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if file.Version != "" && file.Version != SchemaVersion {
		return nil, zerr.With(zerr.With(domain.ErrUnsupportedVersion, "version", file.Version), "path", configPath)
	}

	settings := domain.DefaultSettings()
	settings.Path = configPath

	cfg, err := buildConfiguration(file.Translation, file.Display).Validate()
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	settings.Configuration = cfg

	pipeline, err := buildPipeline(file.Pipeline)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	settings.Pipeline = pipeline

	provider, err := l.buildProvider(configPath, file.Provider)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	settings.Provider = provider

	if file.Snapshot != "" {
		settings.Snapshot = resolvePath(configPath, file.Snapshot)
	}

	return settings, nil
}

func buildConfiguration(t TranslationDTO, d DisplayDTO) domain.Configuration {
	cfg := domain.DefaultConfiguration()
	if t.Source != "" {
		cfg.SourceLanguage = t.Source
	}
	if t.Target != "" {
		cfg.TargetLanguage = t.Target
	}
	if t.AutoDetect != nil {
		cfg.AutoDetect = *t.AutoDetect
	}
	if d.TextSize != nil {
		cfg.TextSize = *d.TextSize
	}
	if d.Opacity != nil {
		cfg.Opacity = *d.Opacity
	}
	return cfg
}

func buildPipeline(dto PipelineDTO) (domain.PipelineSettings, error) {
	p := domain.DefaultPipelineSettings()

	durations := []struct {
		name  string
		value time.Duration
		dst   *time.Duration
	}{
		{"debounce", dto.Debounce, &p.Debounce},
		{"refresh", dto.Refresh, &p.Refresh},
		{"translateTimeout", dto.TranslateTimeout, &p.TranslateTimeout},
	}
	for _, d := range durations {
		if d.value < 0 {
			return p, zerr.With(domain.ErrInvalidPipelineSetting, d.name, d.value.String())
		}
		if d.value > 0 {
			*d.dst = d.value
		}
	}

	if dto.LargeRegionThreshold < 0 || dto.LargeRegionThreshold > 1 {
		return p, zerr.With(domain.ErrInvalidPipelineSetting, "largeRegionThreshold", dto.LargeRegionThreshold)
	}
	if dto.LargeRegionThreshold > 0 {
		p.LargeRegionThreshold = dto.LargeRegionThreshold
	}

	if dto.CacheCapacity < 0 {
		return p, zerr.With(domain.ErrInvalidPipelineSetting, "cacheCapacity", dto.CacheCapacity)
	}
	if dto.CacheCapacity > 0 {
		p.CacheCapacity = dto.CacheCapacity
	}

	if dto.PoolCapacity < 0 {
		return p, zerr.With(domain.ErrInvalidPipelineSetting, "poolCapacity", dto.PoolCapacity)
	}
	if dto.PoolCapacity > 0 {
		p.PoolCapacity = dto.PoolCapacity
	}

	return p, nil
}

func (l *Loader) buildProvider(configPath string, dto ProviderDTO) (domain.ProviderSettings, error) {
	p := domain.DefaultProviderSettings()

	switch kind := strings.ToLower(dto.Kind); kind {
	case "", domain.ProviderGlossary:
		p.Kind = domain.ProviderGlossary
	case domain.ProviderOpenAI:
		p.Kind = domain.ProviderOpenAI
	default:
		return p, zerr.With(domain.ErrUnknownProvider, "provider", dto.Kind)
	}

	if dto.ModelsDir != "" {
		p.ModelsDir = dto.ModelsDir
	}
	p.ModelsDir = resolvePath(configPath, p.ModelsDir)
	p.ModelURL = strings.TrimSuffix(dto.ModelURL, "/")

	if dto.OpenAI.Model != "" {
		p.OpenAIModel = dto.OpenAI.Model
	}
	if dto.OpenAI.APIKeyEnv != "" {
		p.OpenAIKeyEnv = dto.OpenAI.APIKeyEnv
	}
	p.OpenAIBaseURL = dto.OpenAI.BaseURL

	if p.Kind == domain.ProviderGlossary && dto.OpenAI != (OpenAIDTO{}) {
		l.Logger.Warn(fmt.Sprintf("'provider.openai' in %s has no effect with the glossary provider",
			domain.ConfigFileName))
	}

	return p, nil
}

// resolvePath resolves a path from the config file relative to the file's directory.
func resolvePath(configPath, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(configPath), configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Configfile) error {
	configFile, err := l.fs.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
