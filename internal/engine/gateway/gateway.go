// Package gateway resolves translations through the cache and the current translator.
package gateway

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Gateway translates text under the current configuration.
//
// Configuration swaps and translations are serialized by a read-write lock: a
// translation holds the read side for the whole provider call, so it always completes
// against the translator it started with, and a swap waits for in-flight calls to
// finish before closing the old translator.
type Gateway struct {
	mu         sync.RWMutex
	cfg        domain.Configuration
	translator ports.Translator

	provider ports.TranslationProvider
	cache    ports.TranslationCache
	detector ports.LanguageDetector
	logger   ports.Logger
	tracer   ports.Tracer
	flight   singleflight.Group
	timeout  time.Duration
}

// New creates a Gateway. No translator is bound until UpdateConfiguration is called.
func New(
	provider ports.TranslationProvider,
	cache ports.TranslationCache,
	logger ports.Logger,
	tracer ports.Tracer,
) *Gateway {
	return &Gateway{
		provider: provider,
		cache:    cache,
		logger:   logger,
		tracer:   tracer,
		timeout:  domain.DefaultTranslateTimeout,
	}
}

// WithLanguageDetector enables skipping text that is already in the target language
// when the configuration asks for auto-detection.
func (g *Gateway) WithLanguageDetector(detector ports.LanguageDetector) *Gateway {
	g.detector = detector
	return g
}

// WithTimeout bounds each provider call. A non-positive value keeps the default.
func (g *Gateway) WithTimeout(timeout time.Duration) *Gateway {
	if timeout > 0 {
		g.timeout = timeout
	}
	return g
}

// Configuration returns the configuration currently in effect.
func (g *Gateway) Configuration() domain.Configuration {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cfg
}

// UpdateConfiguration applies a new configuration snapshot.
// When the language pair changed, or no translator is bound yet, the current translator
// is closed and a new one is opened for the new pair. Cached translations are kept,
// since they are keyed by language pair. Any other change, such as auto-detect or
// appearance, takes effect on the next Translate without reopening the translator.
func (g *Gateway) UpdateConfiguration(ctx context.Context, cfg domain.Configuration) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	samePair := cfg.SourceLanguage == g.cfg.SourceLanguage && cfg.TargetLanguage == g.cfg.TargetLanguage
	g.cfg = cfg
	if samePair && g.translator != nil {
		return nil
	}

	if g.translator != nil {
		if err := g.translator.Close(); err != nil {
			g.logger.Warn(fmt.Sprintf("failed to close translator: %v", err))
		}
		g.translator = nil
	}

	translator, err := g.provider.Open(ctx, cfg.SourceLanguage, cfg.TargetLanguage)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrProviderOpenFailed.Error())
		err = zerr.With(err, "source", cfg.SourceLanguage)
		return zerr.With(err, "target", cfg.TargetLanguage)
	}
	g.translator = translator
	return nil
}

// Translate returns the translation of text, or text itself when no translation can be
// obtained. Failures are logged and never returned.
func (g *Gateway) Translate(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	ctx, span := g.tracer.Start(ctx, "translate")
	defer span.End()

	g.mu.RLock()
	defer g.mu.RUnlock()

	cfg := g.cfg
	if cfg.AutoDetect && g.detector != nil {
		if lang, ok := g.detector.Detect(text); ok && lang == cfg.TargetLanguage {
			span.SetAttribute("skipped", "target_language")
			return text
		}
	}

	key := domain.TranslationKey{Text: text, Source: cfg.SourceLanguage, Target: cfg.TargetLanguage}
	if translated, ok := g.cache.Get(key); ok {
		span.SetAttribute("cache", "hit")
		return translated
	}
	span.SetAttribute("cache", "miss")

	if g.translator == nil {
		g.fallback(span, domain.ErrTranslatorUnavailable)
		return text
	}

	translator := g.translator
	result, err, _ := g.flight.Do(flightKey(key), func() (any, error) {
		translated, err := g.call(ctx, translator, text)
		if err != nil {
			return nil, err
		}
		g.cache.Put(key, translated)
		return translated, nil
	})
	if err != nil {
		g.fallback(span, err)
		return text
	}
	return result.(string)
}

// call runs one provider request, giving up once the timeout expires even if the
// provider ignores cancellation.
func (g *Gateway) call(ctx context.Context, translator ports.Translator, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		translated, err := translator.Translate(ctx, text)
		done <- result{text: translated, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return "", zerr.Wrap(r.err, domain.ErrTranslationFailed.Error())
		}
		return r.text, nil
	case <-ctx.Done():
		return "", zerr.Wrap(ctx.Err(), domain.ErrTranslationFailed.Error())
	}
}

func (g *Gateway) fallback(span ports.Span, err error) {
	span.RecordError(err)
	g.logger.Warn(fmt.Sprintf("showing original text: %v", err))
}

// Close releases the current translator.
func (g *Gateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.translator == nil {
		return nil
	}
	err := g.translator.Close()
	g.translator = nil
	return err
}

func flightKey(key domain.TranslationKey) string {
	return key.Source + "\x00" + key.Target + "\x00" + key.Text
}
