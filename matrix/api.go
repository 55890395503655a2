// SPDX-License-Identifier: MIT
// Package matrix — public API facades and constructors.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Deterministic: single allocation; no hidden work.
// Complexity: O(r*c) zero-init (constructor).
//
// Note: Returns (*Dense, error) to surface ErrBadShape.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := NewDense(n, n) // O(1) alloc + O(n^2) zeroing
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		_ = I.Set(i, i, 1.0) // bounds-safe after shape validation
	}

	// Return the identity matrix.
	return I, nil
}

// NewDenseFromRows builds a *Dense from a rectangular [][]float64 literal.
// Stage 1 (Validate): non-empty input, equal row lengths, cols > 0.
// Stage 2 (Execute): copy values row by row into flat storage.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
//
// The input slice is copied; later mutation of rows does not affect the result.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, ErrBadShape
	}
	// Validate rectangularity before any allocation
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrBadShape
		}
	}

	// Allocate and copy row by row
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
// Complexity: O(r*c) copy for dense; implementation-defined otherwise.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// Inverse computes A⁻¹ for a square, non-singular m.
// Thin facade: identical to Solve(m) with no options (identity RHS).
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular — see Solve.
// Complexity: O(n^3) time, O(n^2) space.
func Inverse(m Matrix) (Matrix, error) {
	// Delegate to the canonical solver against the identity.
	return Solve(m)
}
