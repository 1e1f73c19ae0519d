// Package domain contains the core value types of the translation overlay pipeline.
package domain

import "fmt"

// NodeID identifies a node of the observed UI tree.
// It stays the same across scans for as long as the underlying node is the same object.
type NodeID uint64

// String returns the identity in hexadecimal form.
func (id NodeID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// Rect is an axis-aligned rectangle in screen coordinates.
// Right and Bottom are exclusive.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewRect creates a rectangle from its origin and size.
func NewRect(left, top, width, height int) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Area returns the covered area, or zero for empty rectangles.
func (r Rect) Area() int64 {
	if r.Empty() {
		return 0
	}
	return int64(r.Width()) * int64(r.Height())
}

// Offset returns the rectangle translated by dx and dy.
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// String formats the rectangle as "left,top widthxheight".
func (r Rect) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.Left, r.Top, r.Width(), r.Height())
}

// Region is a text-bearing area of the observed surface.
type Region struct {
	ID     NodeID
	Text   string
	Bounds Rect
}
