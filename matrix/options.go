// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the Solve kernel.
// This file defines:
//   - SolveOption / solveOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherSolveOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: solveOptions fields are unexported; public APIs consume ...SolveOption.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the threshold below which a pivot's magnitude
	// is treated as zero during LU/Solve. The default of 0 keeps the strict
	// exact-zero guard: only a bitwise-zero pivot reports ErrSingular.
	DefaultPivotTolerance = 0.0
)

// SolveOption mutates the internal solveOptions state.
// Options are applied in order; the last write wins.
type SolveOption func(*solveOptions)

// solveOptions carries the resolved configuration for one Solve call.
// rhs == nil means "solve against the identity", i.e. compute A⁻¹.
type solveOptions struct {
	rhs      Matrix  // right-hand side B, nil ⇒ I_n
	pivotTol float64 // non-negative singularity threshold
}

// WithRHS sets the right-hand side B of A·X = B.
// Implementation:
//   - Stage 1: panic on nil (programmer error; use no option for the identity).
//   - Stage 2: store b verbatim; shape is validated inside Solve against A.
//
// Behavior highlights:
//   - B may have any column count k ≥ 1; Solve returns an n×k result.
//   - B is read-only for the whole call; Solve never mutates it.
//
// Returns:
//   - SolveOption: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithRHS(b Matrix) SolveOption {
	if b == nil {
		panic("matrix: WithRHS(nil) — omit the option for the identity RHS")
	}

	return func(o *solveOptions) { o.rhs = b }
}

// WithPivotTolerance sets the singularity threshold for LU pivots.
// Implementation:
//   - Stage 1: panic on NaN or negative tol (programmer error).
//   - Stage 2: store tol; |pivot| <= tol reports ErrSingular.
//
// Behavior highlights:
//   - tol = 0 restores the strict exact-zero guard (the default).
//   - Larger tol trades more ErrSingular rejections for fewer blow-ups on
//     near-singular inputs; it never changes results of accepted solves.
//
// Returns:
//   - SolveOption: functional setter.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithPivotTolerance(tol float64) SolveOption {
	if math.IsNaN(tol) || tol < 0 {
		panic("matrix: WithPivotTolerance requires a finite tol >= 0")
	}

	return func(o *solveOptions) { o.pivotTol = tol }
}

// gatherSolveOptions folds opts over the documented defaults.
// Deterministic: application order is the caller's argument order.
// Complexity: O(len(opts)).
func gatherSolveOptions(opts ...SolveOption) solveOptions {
	// Start from defaults
	o := solveOptions{rhs: nil, pivotTol: DefaultPivotTolerance}
	// Apply caller options in order
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
