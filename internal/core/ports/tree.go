package ports

import (
	"context"
	"iter"

	"go.trai.ch/glance/internal/core/domain"
)

// TreeNode is a read-only view of one node of the observed UI tree.
// Implementations adapt a platform accessibility API.
//
//go:generate mockgen -source=tree.go -destination=mocks/mock_tree.go -package=mocks
type TreeNode interface {
	// ID returns the identity of the node, stable for the node's lifetime.
	ID() domain.NodeID
	// Visible reports whether the node is currently shown to the user.
	Visible() bool
	// Text returns the text carried by the node, or an empty string.
	Text() string
	// Bounds returns the on-screen bounds of the node.
	Bounds() domain.Rect
	// Children returns the direct children of the node.
	// It returns domain.ErrNodeInvalid when the node went away while being read.
	Children() ([]TreeNode, error)
}

// TreeEventKind classifies a tree mutation notification.
type TreeEventKind uint8

const (
	// TreeContentChanged indicates the structure or layout of the tree changed.
	TreeContentChanged TreeEventKind = iota
	// TreeTextChanged indicates the text of at least one node changed.
	TreeTextChanged
)

// TreeEvent is a mutation notification from the tree source.
type TreeEvent struct {
	Kind TreeEventKind
}

// TreeSource supplies the current tree and notifies about mutations.
type TreeSource interface {
	// Start begins observing the tree. Events stop when ctx is done.
	Start(ctx context.Context) error
	// Stop releases all resources held by the source.
	Stop() error
	// Root returns the current root node.
	// It returns domain.ErrTreeUnavailable when there is nothing to scan.
	Root(ctx context.Context) (TreeNode, error)
	// Events returns an iterator of mutation notifications.
	Events() iter.Seq[TreeEvent]
}

// Display describes the physical screen the tree is laid out on.
type Display interface {
	// ScreenBounds returns the full screen rectangle.
	ScreenBounds() domain.Rect
	// ChromeOffset returns the height of the system chrome (status bar) above the
	// overlay window, subtracted from region tops when positioning annotations.
	ChromeOffset() int
}

// Screen is a tree source together with the display its tree is laid out on.
type Screen interface {
	TreeSource
	Display
}

// ScreenOpener opens observed screens.
type ScreenOpener interface {
	// Open returns the screen captured at path with its current tree loaded.
	Open(path string) (Screen, error)
}
