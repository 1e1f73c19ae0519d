// Package overlay manages the lifecycle of rendered annotations.
package overlay

import "go.trai.ch/glance/internal/core/domain"

// Pool recycles annotation objects.
// Pool is not safe for concurrent use; the Registry owns it and serializes access.
type Pool struct {
	free     []*domain.Annotation
	pooled   map[uint64]struct{}
	capacity int
	serial   uint64
	dropped  int
}

// NewPool creates a pool retaining at most capacity idle annotations.
// A non-positive capacity falls back to domain.DefaultPoolCapacity.
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = domain.DefaultPoolCapacity
	}
	return &Pool{
		free:     make([]*domain.Annotation, 0, capacity),
		pooled:   make(map[uint64]struct{}, capacity),
		capacity: capacity,
	}
}

// Obtain returns an idle annotation, or a new one when the pool is empty.
func (p *Pool) Obtain() *domain.Annotation {
	if n := len(p.free); n > 0 {
		a := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		delete(p.pooled, a.Serial)
		return a
	}
	p.serial++
	return &domain.Annotation{Serial: p.serial, Style: domain.StylePending}
}

// Recycle clears a and keeps it for reuse. Beyond capacity the annotation is dropped.
// Recycling an annotation that is already idle has no effect.
// It reports whether the annotation was retained.
func (p *Pool) Recycle(a *domain.Annotation) bool {
	if a == nil {
		return false
	}
	if _, ok := p.pooled[a.Serial]; ok {
		return false
	}
	a.Reset()
	if len(p.free) >= p.capacity {
		p.dropped++
		return false
	}
	p.free = append(p.free, a)
	p.pooled[a.Serial] = struct{}{}
	return true
}

// Idle returns the number of annotations waiting for reuse.
func (p *Pool) Idle() int {
	return len(p.free)
}

// Created returns the number of annotations constructed so far.
func (p *Pool) Created() int {
	return int(p.serial)
}

// Dropped returns the number of recycled annotations discarded over capacity.
func (p *Pool) Dropped() int {
	return p.dropped
}
