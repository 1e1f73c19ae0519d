package provider

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// PivotLanguage is the language every glossary model translates to and from.
const PivotLanguage = "en"

// Model is a phrase glossary for one language.
// Entries map lowercase English phrases to phrases of the model's language.
type Model struct {
	Language string            `yaml:"language"`
	Entries  map[string]string `yaml:"entries"`
}

// ParseModel decodes a model file and checks it describes lang.
func ParseModel(data []byte, lang string) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrModelParseFailed.Error()), "language", lang)
	}
	if m.Language != lang {
		err := zerr.With(domain.ErrModelParseFailed, "language", lang)
		return nil, zerr.With(err, "declared", m.Language)
	}
	return &m, nil
}

// lexicon is a one-directional phrase table with normalized keys.
type lexicon map[string]string

// toPivot maps the model's phrases to English. The identity lexicon is nil.
func (m *Model) toPivot() lexicon {
	if m == nil {
		return nil
	}
	lex := make(lexicon, len(m.Entries))
	for en, phrase := range m.Entries {
		lex[normalize(phrase)] = en
	}
	return lex
}

// fromPivot maps English phrases to the model's language.
func (m *Model) fromPivot() lexicon {
	if m == nil {
		return nil
	}
	lex := make(lexicon, len(m.Entries))
	for en, phrase := range m.Entries {
		lex[normalize(en)] = phrase
	}
	return lex
}

// lookup translates a normalized phrase. A nil lexicon is the identity.
func (l lexicon) lookup(phrase string) (string, bool) {
	if l == nil {
		return phrase, true
	}
	out, ok := l[phrase]
	return out, ok
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// splitPunct separates leading and trailing punctuation from s.
func splitPunct(s string) (lead, core, trail string) {
	start := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsPunct(r) })
	if start < 0 {
		return s, "", ""
	}
	end := strings.LastIndexFunc(s, func(r rune) bool { return !unicode.IsPunct(r) })
	_, size := utf8.DecodeRuneInString(s[end:])
	end += size
	return s[:start], s[start:end], s[end:]
}

// matchCase capitalizes out when the source phrase starts with an upper case letter.
func matchCase(source, out string) string {
	first, _ := utf8.DecodeRuneInString(source)
	if !unicode.IsUpper(first) {
		return out
	}
	r, size := utf8.DecodeRuneInString(out)
	if r == utf8.RuneError {
		return out
	}
	return string(unicode.ToUpper(r)) + out[size:]
}
