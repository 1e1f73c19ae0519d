package domain

import (
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/text/language"
)

const (
	// DefaultSourceLanguage is the language translated from when nothing is configured.
	DefaultSourceLanguage = "he"
	// DefaultTargetLanguage is the language translated into when nothing is configured.
	DefaultTargetLanguage = "en"
	// DefaultTextSize is the default annotation text size in points.
	DefaultTextSize = 16.0
	// DefaultOpacity is the default overlay opacity.
	DefaultOpacity = 0.8
)

// Configuration is an immutable snapshot of the user-facing translation settings.
// Two snapshots are equal when all fields are equal.
type Configuration struct {
	SourceLanguage string
	TargetLanguage string
	AutoDetect     bool
	TextSize       float64
	Opacity        float64
}

// DefaultConfiguration returns the configuration used before any settings are loaded.
func DefaultConfiguration() Configuration {
	return Configuration{
		SourceLanguage: DefaultSourceLanguage,
		TargetLanguage: DefaultTargetLanguage,
		AutoDetect:     true,
		TextSize:       DefaultTextSize,
		Opacity:        DefaultOpacity,
	}
}

// Appearance returns the display part of the configuration.
func (c Configuration) Appearance() Appearance {
	return Appearance{TextSize: c.TextSize, Opacity: c.Opacity}
}

// Validate checks the language codes and display values, normalizing the language codes
// to their base ISO 639 form.
func (c Configuration) Validate() (Configuration, error) {
	source, err := NormalizeLanguage(c.SourceLanguage)
	if err != nil {
		return c, err
	}
	target, err := NormalizeLanguage(c.TargetLanguage)
	if err != nil {
		return c, err
	}
	if c.TextSize <= 0 {
		return c, zerr.With(ErrInvalidTextSize, "text_size", c.TextSize)
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		return c, zerr.With(ErrInvalidOpacity, "opacity", c.Opacity)
	}
	c.SourceLanguage = source
	c.TargetLanguage = target
	return c, nil
}

// NormalizeLanguage parses a BCP 47 tag and returns its base language code.
func NormalizeLanguage(code string) (string, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrInvalidLanguage.Error()), "language", code)
	}
	base, _ := tag.Base()
	return base.String(), nil
}

// TranslationKey identifies a cached translation.
// The language pair is part of the key so a configuration change never serves a
// translation made for another pair.
type TranslationKey struct {
	Text   string
	Source string
	Target string
}

// Provider kinds accepted in the configuration.
const (
	// ProviderGlossary selects the offline phrase-model provider.
	ProviderGlossary = "glossary"
	// ProviderOpenAI selects the chat-completion provider.
	ProviderOpenAI = "openai"
)

// DefaultOpenAIModel is the chat model used when none is configured.
const DefaultOpenAIModel = "gpt-4o-mini"

// DefaultOpenAIKeyEnv is the environment variable holding the OpenAI API key.
const DefaultOpenAIKeyEnv = "OPENAI_API_KEY"

// PipelineSettings tunes the coordinator and its components.
type PipelineSettings struct {
	Debounce             time.Duration
	Refresh              time.Duration
	TranslateTimeout     time.Duration
	LargeRegionThreshold float64
	CacheCapacity        int
	PoolCapacity         int
}

// DefaultPipelineSettings returns the tuning used when the config file omits it.
func DefaultPipelineSettings() PipelineSettings {
	return PipelineSettings{
		Debounce:             DefaultDebounceInterval,
		Refresh:              DefaultRefreshInterval,
		TranslateTimeout:     DefaultTranslateTimeout,
		LargeRegionThreshold: DefaultLargeRegionThreshold,
		CacheCapacity:        DefaultCacheCapacity,
		PoolCapacity:         DefaultPoolCapacity,
	}
}

// ProviderSettings selects and configures the translation provider.
type ProviderSettings struct {
	Kind string
	// ModelsDir is where glossary models are installed. Relative paths are resolved
	// against the directory of the config file.
	ModelsDir string
	// ModelURL is the base URL glossary models are downloaded from. Empty disables downloads.
	ModelURL      string
	OpenAIModel   string
	OpenAIBaseURL string
	OpenAIKeyEnv  string
}

// DefaultProviderSettings returns the offline provider with the default model directory.
func DefaultProviderSettings() ProviderSettings {
	return ProviderSettings{
		Kind:         ProviderGlossary,
		ModelsDir:    DefaultModelsPath(),
		OpenAIModel:  DefaultOpenAIModel,
		OpenAIKeyEnv: DefaultOpenAIKeyEnv,
	}
}

// Settings is everything read from glance.yaml.
type Settings struct {
	// Path is the config file the settings were read from, empty for defaults.
	Path          string
	Configuration Configuration
	Pipeline      PipelineSettings
	Provider      ProviderSettings
	// Snapshot is the tree snapshot file observed by the run command.
	Snapshot string
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Configuration: DefaultConfiguration(),
		Pipeline:      DefaultPipelineSettings(),
		Provider:      DefaultProviderSettings(),
	}
}
