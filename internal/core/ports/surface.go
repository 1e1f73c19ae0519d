package ports

import (
	"context"

	"go.trai.ch/glance/internal/core/domain"
)

// Surface is the rendering target for annotations.
// Annotations are passed by value and identified by their Serial. Implementations apply
// the changes on the execution context that owns the rendering resources.
//
//go:generate mockgen -source=surface.go -destination=mocks/mock_surface.go -package=mocks
type Surface interface {
	// Create sets up the overlay container. It is called once before any annotation.
	Create(ctx context.Context) error
	// Add shows a new annotation.
	Add(a domain.Annotation)
	// Update changes the text, style or position of a shown annotation.
	Update(a domain.Annotation)
	// Remove hides an annotation.
	Remove(a domain.Annotation)
	// SetAppearance applies display settings to all annotations.
	SetAppearance(app domain.Appearance)
	// Destroy tears the overlay container down.
	Destroy() error
}
