package ports

import "go.trai.ch/glance/internal/core/domain"

// TranslationCache memoizes translations.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type TranslationCache interface {
	// Get returns the cached translation for key and refreshes its recency.
	Get(key domain.TranslationKey) (string, bool)
	// Put stores a translation, evicting older entries when full.
	Put(key domain.TranslationKey, translated string)
	// Len returns the number of cached translations.
	Len() int
}
