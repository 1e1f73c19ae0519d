package provider

import (
	"context"
	"strings"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.TranslationProvider = (*Glossary)(nil)
	_ ports.Translator          = (*GlossaryTranslator)(nil)
)

// Glossary is an offline provider translating through English phrase models.
type Glossary struct {
	store  *ModelStore
	logger ports.Logger
}

// NewGlossary creates a provider reading models from store.
func NewGlossary(store *ModelStore, logger ports.Logger) *Glossary {
	return &Glossary{store: store, logger: logger}
}

// Open loads the models for both languages, downloading missing ones when the store can.
func (g *Glossary) Open(ctx context.Context, source, target string) (ports.Translator, error) {
	if source == target {
		return &GlossaryTranslator{identity: true}, nil
	}
	from, err := g.model(ctx, source)
	if err != nil {
		return nil, err
	}
	to, err := g.model(ctx, target)
	if err != nil {
		return nil, err
	}
	return &GlossaryTranslator{
		toPivot:   from.toPivot(),
		fromPivot: to.fromPivot(),
	}, nil
}

func (g *Glossary) model(ctx context.Context, lang string) (*Model, error) {
	if !g.store.Installed(lang) && g.store.CanDownload() {
		if err := g.store.DownloadModel(ctx, lang); err != nil {
			g.logger.Error(err)
		} else {
			g.logger.Info("downloaded language model " + lang)
		}
	}
	return g.store.Load(lang)
}

// GlossaryTranslator translates whole phrases, and word by word when no phrase matches.
type GlossaryTranslator struct {
	identity  bool
	toPivot   lexicon
	fromPivot lexicon
}

// Translate returns the translation of text.
// It fails with domain.ErrNoTranslation when no part of the text is known.
func (t *GlossaryTranslator) Translate(_ context.Context, text string) (string, error) {
	if t.identity {
		return text, nil
	}
	lead, core, trail := splitPunct(strings.TrimSpace(text))
	if out, ok := t.phrase(core); ok {
		return lead + matchCase(core, out) + trail, nil
	}

	words := strings.Fields(text)
	translated := 0
	for i, word := range words {
		lead, core, trail := splitPunct(word)
		if out, ok := t.phrase(core); ok {
			words[i] = lead + matchCase(core, out) + trail
			translated++
		}
	}
	if translated == 0 {
		return "", zerr.With(domain.ErrNoTranslation, "text", text)
	}
	return strings.Join(words, " "), nil
}

func (t *GlossaryTranslator) phrase(s string) (string, bool) {
	key := normalize(s)
	if key == "" {
		return "", false
	}
	en, ok := t.toPivot.lookup(key)
	if !ok {
		return "", false
	}
	return t.fromPivot.lookup(normalize(en))
}

// Close releases nothing; models are plain maps.
func (t *GlossaryTranslator) Close() error {
	return nil
}
