package snapshot

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.TreeNode = (*Node)(nil)

// Node is an immutable node of a parsed snapshot.
type Node struct {
	id       domain.NodeID
	name     string
	text     string
	bounds   domain.Rect
	visible  bool
	stale    bool
	children []ports.TreeNode
}

// ID returns the hash of the node's name.
func (n *Node) ID() domain.NodeID { return n.id }

// Name returns the id from the snapshot, or the positional name for anonymous nodes.
func (n *Node) Name() string { return n.name }

// Visible reports whether the node is shown and has an on-screen area. A node with
// empty bounds is invisible, and extraction does not descend below it.
func (n *Node) Visible() bool { return n.visible && !n.bounds.Empty() }

// Text returns the node text, falling back to its content description.
func (n *Node) Text() string { return n.text }

// Bounds returns the on-screen bounds of the node.
func (n *Node) Bounds() domain.Rect { return n.bounds }

// Children returns the child nodes. Nodes marked stale in the snapshot fail the way a
// recycled accessibility node does.
func (n *Node) Children() ([]ports.TreeNode, error) {
	if n.stale {
		return nil, zerr.With(domain.ErrNodeInvalid, "node", n.name)
	}
	return n.children, nil
}

// Tree is a parsed snapshot.
type Tree struct {
	Root   *Node
	Screen domain.Rect
	Chrome int
}

// Parse decodes a snapshot document.
func Parse(data []byte) (*Tree, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSnapshotParseFailed.Error())
	}

	tree := &Tree{
		Screen: domain.NewRect(0, 0, file.Screen.Width, file.Screen.Height),
		Chrome: file.Screen.StatusBar,
	}
	if file.Root == nil {
		return tree, nil
	}

	b := &builder{seen: make(map[string]struct{})}
	root, err := b.build(file.Root, "root")
	if err != nil {
		return nil, err
	}
	tree.Root = root
	return tree, nil
}

type builder struct {
	seen map[string]struct{}
}

func (b *builder) build(dto *NodeDTO, fallback string) (*Node, error) {
	name := dto.ID
	if name == "" {
		name = fallback
	}
	if _, dup := b.seen[name]; dup {
		return nil, zerr.With(domain.ErrDuplicateNodeID, "node", name)
	}
	b.seen[name] = struct{}{}

	bounds, err := parseBounds(dto.Bounds)
	if err != nil {
		return nil, zerr.With(err, "node", name)
	}

	text := dto.Text
	if strings.TrimSpace(text) == "" {
		text = dto.Description
	}

	n := &Node{
		id:      domain.NodeID(xxhash.Sum64String(name)),
		name:    name,
		text:    text,
		bounds:  bounds,
		visible: dto.Visible == nil || *dto.Visible,
		stale:   dto.Stale,
	}

	for i, childDTO := range dto.Children {
		if childDTO == nil {
			continue
		}
		child, err := b.build(childDTO, name+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
	}
	return n, nil
}

func parseBounds(values []int) (domain.Rect, error) {
	switch len(values) {
	case 0:
		return domain.Rect{}, nil
	case 4:
		return domain.NewRect(values[0], values[1], values[2], values[3]), nil
	default:
		return domain.Rect{}, zerr.With(domain.ErrSnapshotParseFailed, "bounds", values)
	}
}
