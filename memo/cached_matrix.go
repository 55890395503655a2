// SPDX-License-Identifier: MIT
// Package memo: CachedMatrix state and operations.
//
// Purpose:
//   - Own the (source, cached-inverse) pair and enforce the invalidation
//     invariant: replacing the source always clears the cache.
//   - Keep the memoized compute path (ComputeInverse) as the only coupling
//     between caching policy and actual inversion.

package memo

import (
	"github.com/go-kit/log/level"

	"github.com/katalvlaran/matcache/matrix"
)

// SetSource replaces the held source matrix and unconditionally clears the
// cached inverse, even if m is identical in value to the current source.
// Value equality is never checked — replacement always invalidates.
// m may be nil (degenerate placeholder); a later ComputeInverse then fails
// with matrix.ErrNilMatrix until a real source is supplied.
// Complexity: O(1); no copy, no validation, no failure modes.
func (c *CachedMatrix) SetSource(m matrix.Matrix) {
	c.src = m
	c.inv = nil // clear-on-replace: the invariant of this package
}

// Source returns the currently held source matrix (possibly nil).
// Pure read; no side effects. Complexity: O(1).
func (c *CachedMatrix) Source() matrix.Matrix {
	return c.src
}

// SetInverse unconditionally overwrites the cached inverse with inv,
// performing NO verification against the current source.
//
// This is the caller-trusted escape hatch: inv is asserted by the caller to
// be the true inverse of the current source. Supplying anything else
// silently corrupts the cache. Passing nil resets the cache to absent.
// Complexity: O(1); no failure modes.
func (c *CachedMatrix) SetInverse(inv matrix.Matrix) {
	c.inv = inv
}

// Inverse returns the cached inverse and true when present, or (nil, false)
// when the cache is absent. The absent case is reported through the ok flag,
// never through a zero-filled matrix. Pure read; no side effects.
// Callers needing a guaranteed value should use ComputeInverse instead.
// Complexity: O(1).
func (c *CachedMatrix) Inverse() (matrix.Matrix, bool) {
	if c.inv == nil {
		return nil, false
	}

	return c.inv, true
}

// ComputeInverse returns the inverse of the current source, memoized.
//
// Implementation:
//   - Stage 1: cache hit → emit a "returning cached inverse" debug event and
//     return the stored value verbatim; no solver call, no re-validation.
//   - Stage 2: cache miss → forward opts verbatim and uninterpreted to the
//     configured solver (matrix.Solve unless WithSolver overrode it).
//   - Stage 3: store the result via SetInverse and return it.
//
// Behavior highlights:
//   - A failed solve caches nothing: the error propagates unchanged and the
//     cache stays absent, so a subsequent call with a corrected source or
//     options retries from scratch.
//   - Options only reach the solver on a miss; a hit returns the cached
//     value regardless of opts. Callers who solve against a non-identity RHS
//     via matrix.WithRHS own the consequences of caching that result, the
//     same trust contract as SetInverse.
//
// Errors:
//   - matrix.ErrNilMatrix / matrix.ErrNonSquare / matrix.ErrSingular (and any
//     other solver failure) — propagated verbatim from the solve.
//
// Complexity:
//   - O(1) on a hit; the solver's cost (O(n^3) for matrix.Solve) on a miss.
func (c *CachedMatrix) ComputeInverse(opts ...matrix.SolveOption) (matrix.Matrix, error) {
	// Serve from the cache when possible.
	if inv, ok := c.Inverse(); ok {
		level.Debug(c.logger).Log("op", "ComputeInverse", "source", "cache", "msg", "returning cached inverse")

		return inv, nil
	}

	// Miss: solve against the current source, forwarding options verbatim.
	level.Debug(c.logger).Log("op", "ComputeInverse", "source", "solver", "msg", "computing inverse")
	inv, err := c.solve(c.src, opts...)
	if err != nil {
		return nil, err // cache stays absent; the next call retries
	}

	// Publish the fresh inverse to subsequent calls.
	c.SetInverse(inv)

	return inv, nil
}
