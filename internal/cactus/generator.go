package cactus

import (
	"sync"
	"sync/atomic"

	"cactus-gen/internal/config"
)

// Generator owns the current cactus group. Regenerate builds a replacement
// to completion before publishing it, so Current never returns a partial
// group; the superseded group's buffers are released after the swap.
type Generator struct {
	mu      sync.Mutex
	palette Palette
	current atomic.Pointer[Group]
	passes  atomic.Uint64
	// seen is the store revision the current group was built from. Guarded by mu.
	seen uint64
}

// NewGenerator returns a generator with no group yet.
func NewGenerator(palette Palette) *Generator {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Generator{palette: palette}
}

// Palette returns the material palette used for every pass.
func (g *Generator) Palette() Palette {
	return g.palette
}

// Current returns the most recently published group, or nil before the first pass.
func (g *Generator) Current() *Group {
	return g.current.Load()
}

// Passes returns the number of completed regenerations.
func (g *Generator) Passes() uint64 {
	return g.passes.Load()
}

// Regenerate builds a new group for cfg, publishes it and releases the old
// one. Calls are serialized; a second caller waits for the first pass.
func (g *Generator) Regenerate(cfg config.Cactus) *Group {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.regenerate(cfg)
}

func (g *Generator) regenerate(cfg config.Cactus) *Group {
	next := GenerateWithPalette(cfg, g.palette)
	prev := g.current.Swap(next)
	g.passes.Add(1)
	prev.Release()
	return next
}

// Close releases the current group.
func (g *Generator) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current.Swap(nil).Release()
}

// Refresh regenerates from store when its revision has moved since the last
// Refresh, or when nothing has been generated yet. It reports whether a new
// group was built. The revision check and the pass run under one lock, so
// concurrent callers never record an older revision over a newer one.
func (g *Generator) Refresh(store *config.Store) (*Group, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if cur := g.Current(); cur != nil && store.Revision() == g.seen {
		return cur, false
	}
	cfg, rev := store.Snapshot()
	next := g.regenerate(cfg)
	g.seen = rev
	return next, true
}
