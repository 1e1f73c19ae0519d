package pipeline_test

import (
	"context"
	"iter"
	"sync"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
)

type node struct {
	id       domain.NodeID
	text     string
	bounds   domain.Rect
	children []ports.TreeNode
}

func (n *node) ID() domain.NodeID                   { return n.id }
func (n *node) Visible() bool                       { return true }
func (n *node) Text() string                        { return n.text }
func (n *node) Bounds() domain.Rect                 { return n.bounds }
func (n *node) Children() ([]ports.TreeNode, error) { return n.children, nil }

// screen builds a full-screen root holding one label per entry of labels.
func screen(labels map[domain.NodeID]string) *node {
	root := &node{id: 1, bounds: domain.NewRect(0, 0, 1000, 2000)}
	top := 0
	for id := domain.NodeID(2); id < 100; id++ {
		text, ok := labels[id]
		if !ok {
			continue
		}
		top += 40
		root.children = append(root.children, &node{id: id, text: text, bounds: domain.NewRect(10, top, 200, 30)})
	}
	return root
}

type fakeSource struct {
	mu      sync.Mutex
	root    ports.TreeNode
	events  chan ports.TreeEvent
	stopped bool
}

func newFakeSource(root ports.TreeNode) *fakeSource {
	return &fakeSource{root: root, events: make(chan ports.TreeEvent, 16)}
}

func (s *fakeSource) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		close(s.events)
	}()
	return nil
}

func (s *fakeSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	return nil
}

func (s *fakeSource) Root(context.Context) (ports.TreeNode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.root == nil {
		return nil, domain.ErrTreeUnavailable
	}
	return s.root, nil
}

func (s *fakeSource) Events() iter.Seq[ports.TreeEvent] {
	return func(yield func(ports.TreeEvent) bool) {
		for ev := range s.events {
			if !yield(ev) {
				return
			}
		}
	}
}

func (s *fakeSource) set(root ports.TreeNode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = root
}

func (s *fakeSource) emit() {
	s.events <- ports.TreeEvent{Kind: ports.TreeTextChanged}
}

type fakeConfigs struct {
	current   domain.Configuration
	snapshots chan domain.Configuration
}

func newFakeConfigs(cfg domain.Configuration) *fakeConfigs {
	return &fakeConfigs{current: cfg, snapshots: make(chan domain.Configuration, 4)}
}

func (c *fakeConfigs) Current() domain.Configuration { return c.current }

func (c *fakeConfigs) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		close(c.snapshots)
	}()
	return nil
}

func (c *fakeConfigs) Snapshots() iter.Seq[domain.Configuration] {
	return func(yield func(domain.Configuration) bool) {
		for cfg := range c.snapshots {
			if !yield(cfg) {
				return
			}
		}
	}
}

type display struct{}

func (display) ScreenBounds() domain.Rect { return domain.NewRect(0, 0, 1000, 2000) }
func (display) ChromeOffset() int         { return 0 }

type surface struct {
	mu          sync.Mutex
	created     bool
	destroyed   bool
	live        map[uint64]domain.Annotation
	appearances []domain.Appearance
}

func newSurface() *surface {
	return &surface{live: make(map[uint64]domain.Annotation)}
}

func (s *surface) Create(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = true
	return nil
}

func (s *surface) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.destroyed = true
	return nil
}

func (s *surface) Add(a domain.Annotation)    { s.put(a) }
func (s *surface) Update(a domain.Annotation) { s.put(a) }

func (s *surface) Remove(a domain.Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.live, a.Serial)
}

func (s *surface) SetAppearance(app domain.Appearance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appearances = append(s.appearances, app)
}

func (s *surface) put(a domain.Annotation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live[a.Serial] = a
}

// texts returns the displayed text of every live annotation.
func (s *surface) texts() map[string]domain.Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]domain.Style, len(s.live))
	for _, a := range s.live {
		out[a.Text] = a.Style
	}
	return out
}

func (s *surface) lifecycle() (created, destroyed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.created, s.destroyed
}

func (s *surface) lastAppearance() domain.Appearance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appearances[len(s.appearances)-1]
}

func (s *fakeSource) isStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}
