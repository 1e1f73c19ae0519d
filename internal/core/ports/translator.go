package ports

import (
	"context"

	"go.trai.ch/glance/internal/core/domain"
)

// Translator translates text for one fixed language pair.
//
//go:generate mockgen -source=translator.go -destination=mocks/mock_translator.go -package=mocks
type Translator interface {
	// Translate returns the translation of text. It may fail.
	Translate(ctx context.Context, text string) (string, error)
	// Close releases the resources bound to the language pair.
	Close() error
}

// TranslationProvider creates translators bound to a language pair.
type TranslationProvider interface {
	// Open returns a translator from source to target.
	Open(ctx context.Context, source, target string) (Translator, error)
}

// ModelManager manages the language models of an on-device provider.
type ModelManager interface {
	// ListModels returns the language codes of the installed models.
	ListModels(ctx context.Context) ([]string, error)
	// DownloadModel installs the model for the given language.
	DownloadModel(ctx context.Context, lang string) error
	// DeleteModel removes the model for the given language.
	DeleteModel(ctx context.Context, lang string) error
}

// ProviderFactory builds providers and model managers from provider settings.
type ProviderFactory interface {
	// Provider returns the provider selected by settings.
	Provider(settings domain.ProviderSettings) (TranslationProvider, error)
	// ModelManager returns the model manager of the on-device provider.
	ModelManager(settings domain.ProviderSettings) ModelManager
}

// LanguageDetector guesses the language of a text.
type LanguageDetector interface {
	// Detect returns the ISO 639-1 code of the language of text and whether
	// detection succeeded.
	Detect(text string) (string, bool)
}
