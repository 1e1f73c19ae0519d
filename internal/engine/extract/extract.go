// Package extract walks the observed UI tree and yields text regions.
package extract

import (
	"iter"
	"strings"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
)

// Extractor turns a tree into regions worth annotating.
type Extractor struct {
	display   ports.Display
	threshold float64
	logger    ports.Logger
}

// New creates an Extractor.
// Regions covering more than threshold of the screen area are treated as containers
// and skipped. A threshold outside (0, 1] falls back to
// domain.DefaultLargeRegionThreshold.
func New(display ports.Display, threshold float64, logger ports.Logger) *Extractor {
	if threshold <= 0 || threshold > 1 {
		threshold = domain.DefaultLargeRegionThreshold
	}
	return &Extractor{
		display:   display,
		threshold: threshold,
		logger:    logger,
	}
}

// Regions returns the text regions of the visible part of the tree rooted at root, in
// depth-first pre-order. Invisible nodes are skipped together with their descendants.
// A node that fails to enumerate its children is skipped with its subtree.
func (e *Extractor) Regions(root ports.TreeNode) iter.Seq[domain.Region] {
	return func(yield func(domain.Region) bool) {
		if root == nil {
			return
		}
		screen := e.display.ScreenBounds().Area()
		e.walkRegions(root, screen, yield)
	}
}

func (e *Extractor) walkRegions(node ports.TreeNode, screen int64, yield func(domain.Region) bool) bool {
	if !node.Visible() {
		return true
	}

	if region, ok := e.region(node, screen); ok {
		if !yield(region) {
			return false
		}
	}

	children, err := node.Children()
	if err != nil {
		e.skip(node, err)
		return true
	}
	for _, child := range children {
		if child == nil {
			continue
		}
		if !e.walkRegions(child, screen, yield) {
			return false
		}
	}
	return true
}

func (e *Extractor) region(node ports.TreeNode, screen int64) (domain.Region, bool) {
	text := node.Text()
	if strings.TrimSpace(text) == "" {
		return domain.Region{}, false
	}

	bounds := node.Bounds()
	if bounds.Empty() {
		return domain.Region{}, false
	}
	if screen > 0 && float64(bounds.Area())/float64(screen) > e.threshold {
		return domain.Region{}, false
	}

	return domain.Region{
		ID:     node.ID(),
		Text:   text,
		Bounds: bounds,
	}, true
}

// VisibleIDs returns the identities of every visible node of the tree, with or without
// text. Like Regions it does not descend into invisible nodes, so every region yielded
// by Regions for the same tree is contained in the result.
func (e *Extractor) VisibleIDs(root ports.TreeNode) map[domain.NodeID]struct{} {
	ids := make(map[domain.NodeID]struct{})
	if root == nil {
		return ids
	}
	e.walkVisible(root, ids)
	return ids
}

func (e *Extractor) walkVisible(node ports.TreeNode, ids map[domain.NodeID]struct{}) {
	if !node.Visible() {
		return
	}
	ids[node.ID()] = struct{}{}

	children, err := node.Children()
	if err != nil {
		e.skip(node, err)
		return
	}
	for _, child := range children {
		if child != nil {
			e.walkVisible(child, ids)
		}
	}
}

func (e *Extractor) skip(node ports.TreeNode, err error) {
	if e.logger == nil {
		return
	}
	err = zerr.With(err, "node", node.ID().String())
	e.logger.Debug("skipping subtree: " + err.Error())
}
