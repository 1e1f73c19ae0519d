// Package provider implements the translation providers and the glossary model store.
package provider

import (
	"net/http"
	"os"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProviderFactory = (*Factory)(nil)

// Factory builds providers and model stores from provider settings.
type Factory struct {
	client *http.Client
	logger ports.Logger
	getenv func(string) string
}

// NewFactory creates a factory whose providers use client for network access.
func NewFactory(client *http.Client, logger ports.Logger) *Factory {
	return &Factory{client: client, logger: logger, getenv: os.Getenv}
}

// WithGetenv replaces the environment lookup used for API keys.
func (f *Factory) WithGetenv(getenv func(string) string) *Factory {
	f.getenv = getenv
	return f
}

// Store returns the model store for the settings.
func (f *Factory) Store(settings domain.ProviderSettings) *ModelStore {
	return NewModelStore(settings.ModelsDir, settings.ModelURL, f.client)
}

// ModelManager returns the model store for the settings as a ports.ModelManager.
func (f *Factory) ModelManager(settings domain.ProviderSettings) ports.ModelManager {
	return f.Store(settings)
}

// Provider returns the provider selected by the settings.
func (f *Factory) Provider(settings domain.ProviderSettings) (ports.TranslationProvider, error) {
	switch settings.Kind {
	case domain.ProviderGlossary, "":
		return NewGlossary(f.Store(settings), f.logger), nil
	case domain.ProviderOpenAI:
		key := f.getenv(settings.OpenAIKeyEnv)
		if key == "" {
			return nil, zerr.With(domain.ErrMissingAPIKey, "env", settings.OpenAIKeyEnv)
		}
		return NewOpenAI(settings, key, f.client, f.logger), nil
	default:
		return nil, zerr.With(domain.ErrUnknownProvider, "provider", settings.Kind)
	}
}
