// Package arena provides the per-invocation scratch allocator
// SPEC_FULL.md's Calc Entry Point (C12) hands down through the
// recursion: a pool of reusable []*container.Container slices so the
// Grid Chunker (C6) doesn't allocate a fresh group slice on every
// call. The even-split passes allocate their own slices. No suitable
// arena/bump-allocator library surfaced in the retrieval pack (the
// original's bumpalo::Bump is Rust-specific and has no direct Go
// analogue that composes with garbage-collected slices), so this is a
// small stdlib-only pool — see DESIGN.md for the justification.
package arena

import "github.com/strataui/layout/container"

// Arena is a per-Calculate scratch pool. It is not safe for concurrent
// use; one Arena belongs to exactly one top-level Calculate call.
type Arena struct {
	pool [][]*container.Container
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{}
}

// Group borrows a []*container.Container scratch slice with zero
// length, reusing the most recently released backing array when the
// pool holds one (whatever its capacity).
func (a *Arena) Group() []*container.Container {
	if n := len(a.pool); n > 0 {
		s := a.pool[n-1]
		a.pool = a.pool[:n-1]
		return s[:0]
	}
	return make([]*container.Container, 0, 8)
}

// Release returns a scratch slice borrowed from Group back to the pool
// for reuse by a later Group call within the same Arena.
func (a *Arena) Release(s []*container.Container) {
	a.pool = append(a.pool, s)
}

// Reset drops every pooled slice, allowing their backing arrays to be
// garbage collected. Called once Calculate returns.
func (a *Arena) Reset() {
	a.pool = nil
}
