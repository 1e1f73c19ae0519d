package tui

import "go.trai.ch/glance/internal/core/domain"

// MsgAdd shows a new annotation.
type MsgAdd struct {
	Annotation domain.Annotation
}

// MsgUpdate replaces a shown annotation.
type MsgUpdate struct {
	Annotation domain.Annotation
}

// MsgRemove hides an annotation.
type MsgRemove struct {
	Serial uint64
}

// MsgAppearance changes the display settings.
type MsgAppearance struct {
	Appearance domain.Appearance
}
