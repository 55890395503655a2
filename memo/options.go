// SPDX-License-Identifier: MIT

// Package memo: construction and functional configuration of CachedMatrix.
//
// Design goals:
//   - Deterministic behavior: no global state; defaults are explicit.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Observability is injected, never ambient: the default logger is a nop.
package memo

import (
	"github.com/go-kit/log"

	"github.com/katalvlaran/matcache/matrix"
)

// SolveFunc is the solver signature consumed by ComputeInverse.
// matrix.Solve is the canonical implementation; tests substitute counting
// wrappers to observe invocation counts.
type SolveFunc func(a matrix.Matrix, opts ...matrix.SolveOption) (matrix.Matrix, error)

// CachedMatrix holds a source matrix and an optional memoized inverse.
// inv == nil means "absent" — the zero matrix and the absent cache can never
// be conflated because absence is only ever reported via Inverse's ok flag.
//
// Not safe for concurrent use; see the package documentation.
type CachedMatrix struct {
	src    matrix.Matrix // the matrix whose inverse is of interest; nil allowed
	inv    matrix.Matrix // cached inverse; nil ⇒ absent
	logger log.Logger    // diagnostic sink; never load-bearing
	solve  SolveFunc     // inversion backend; matrix.Solve by default
}

// Option mutates a CachedMatrix during New.
// Options are applied in order; the last write wins.
type Option func(*CachedMatrix)

// WithLogger routes the cache-hit / fresh-solve debug events to l.
// Panics on nil (programmer error; omit the option for the nop default).
func WithLogger(l log.Logger) Option {
	if l == nil {
		panic("memo: WithLogger(nil) — omit the option for the nop logger")
	}

	return func(c *CachedMatrix) { c.logger = l }
}

// WithSolver replaces the inversion backend used on a cache miss.
// Intended for tests (call counters, canned results); production callers
// should rarely need it. Panics on nil.
func WithSolver(s SolveFunc) Option {
	if s == nil {
		panic("memo: WithSolver(nil) — omit the option for matrix.Solve")
	}

	return func(c *CachedMatrix) { c.solve = s }
}

// New creates a CachedMatrix holding src with an absent cached inverse.
//
// src may be nil — the degenerate placeholder. Construction never validates
// invertibility (or anything else); the first ComputeInverse surfaces any
// problem with the source. No failure modes.
// Complexity: O(len(opts)).
func New(src matrix.Matrix, opts ...Option) *CachedMatrix {
	// Start from documented defaults: nop logger, canonical solver.
	c := &CachedMatrix{
		src:    src,
		logger: log.NewNopLogger(),
		solve:  matrix.Solve,
	}
	// Apply caller options in order.
	for _, opt := range opts {
		opt(c)
	}

	return c
}
