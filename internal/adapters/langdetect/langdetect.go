// Package langdetect guesses the language of on-screen text with lingua.
package langdetect

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
	"go.trai.ch/glance/internal/core/ports"
)

var _ ports.LanguageDetector = (*Detector)(nil)

// minDetectionLength is the minimum rune count required to attempt detection.
// Shorter labels produce unreliable results and are reported as undetected.
const minDetectionLength = 3

// Detector implements ports.LanguageDetector.
// The lingua detector is built on first use; building it loads the language models.
type Detector struct {
	languages []lingua.Language

	once     sync.Once
	detector lingua.LanguageDetector
}

// New creates a detector choosing among languages, or among all supported languages
// when none are given.
func New(languages ...lingua.Language) *Detector {
	return &Detector{languages: languages}
}

// Detect returns the lowercase ISO 639-1 code of the language of text.
func (d *Detector) Detect(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minDetectionLength {
		return "", false
	}

	d.once.Do(d.build)

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

func (d *Detector) build() {
	builder := lingua.NewLanguageDetectorBuilder()
	if len(d.languages) == 0 {
		d.detector = builder.FromAllLanguages().Build()
		return
	}
	d.detector = builder.FromLanguages(d.languages...).Build()
}
