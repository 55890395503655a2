// SPDX-License-Identifier: MIT
// Package matrix: linear-solve kernels.
//
// Purpose:
//   - Declare the canonical linear-algebra kernels: Doolittle LU, the general
//     Solve for A·X = B, and Mul for verification-grade multiplication.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use the central validators and return plain sentinels,
//     wrapped via matrixErrorf at the facade boundary.
//   - No pivoting by design: fixed traversal orders give identical results for
//     identical inputs. Stability-sensitive callers should precondition
//     upstream or reject ill-conditioned inputs via WithPivotTolerance.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul   = "Mul"
	opLU    = "LU"
	opSolve = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Behavior highlights:
//   - Deterministic loops; fast path uses direct flat indexing; zero-pivot guard enforced.
//
// Inputs:
//   - m: square Matrix (n×n).
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (if U[i,i]==0 during factorization).
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (Matrix, Matrix, error) {
	// Delegate to the internal kernel with the strict exact-zero guard.
	l, u, err := lu(m, DefaultPivotTolerance)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return l, u, nil
}

// lu is the shared Doolittle kernel behind LU and Solve.
// tol is the non-negative singularity threshold: |pivot| <= tol fails with
// ErrSingular. Returns freshly allocated *Dense factors; never mutates m.
func lu(m Matrix, tol float64) (*Dense, *Dense, error) {
	// Validate input non-nil and square
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, err
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, err
	}

	// Allocate L and U
	n := m.Rows()
	Lraw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}
	Uraw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, err
	}

	// Initialize L diagonal to 1 (unit lower triangular)
	for i := 0; i < n; i++ {
		Lraw.data[i*n+i] = 1.0
	}

	// Detect fast-path on *Dense input
	mRaw, useFast := m.(*Dense)
	var i, j, k int // loop iterators
	var sum, pivot, a float64
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += Lraw.data[i*n+k] * Uraw.data[k*n+j]
			}
			if useFast {
				a = mRaw.data[i*n+j]
			} else {
				a, err = m.At(i, j)
				if err != nil {
					return nil, nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
				}
			}
			Uraw.data[i*n+j] = a - sum
		}

		// Pivot guard (deterministic singularity detection within tol)
		pivot = Uraw.data[i*n+i]
		if math.Abs(pivot) <= tol {
			return nil, nil, ErrSingular
		}

		// Compute L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += Lraw.data[j*n+k] * Uraw.data[k*n+i]
			}
			if useFast {
				a = mRaw.data[j*n+i]
			} else {
				a, err = m.At(j, i)
				if err != nil {
					return nil, nil, fmt.Errorf("At(%d,%d): %w", j, i, err)
				}
			}
			Lraw.data[j*n+i] = (a - sum) / pivot
		}
	}

	// Return L and U
	return Lraw, Uraw, nil
}

// Solve computes X solving A·X = B via Doolittle LU (deterministic, no pivoting).
// When no RHS option is supplied, B defaults to I_n and the result is A⁻¹.
//
// Implementation:
//   - Stage 1: Validate a (not nil, square); gather options; resolve B
//     (identity by default) and validate its shape against a.
//   - Stage 2: Factorize via lu(a, tol) → L (unit lower), U (upper).
//     Allocate X(n×k) and workspace vectors y, x of length n.
//   - Stage 3: For each RHS column b_col:
//   - Forward solve L*y = b_col (top-down).
//   - Backward solve U*x = y    (bottom-up; pivot guard within tol).
//   - Write x into column col of X.
//
// Behavior highlights:
//   - Fully deterministic loop orders (col↑, forward i↑, backward i↓).
//   - Inputs a and B are read-only; X, L, U are freshly allocated.
//   - Options are applied in argument order; unknown concerns do not exist —
//     every option is a SolveOption constructed by this package.
//
// Inputs:
//   - a: non-nil square matrix (n×n).
//   - opts: WithRHS(b), WithPivotTolerance(tol); both optional.
//
// Returns:
//   - Matrix: Dense(n×k) containing X (k = B's column count; k = n for the identity).
//   - error : validation/factorization/solve failures wrapped with opSolve.
//
// Errors:
//   - ErrNilMatrix         (ValidateNotNil).
//   - ErrNonSquare         (ValidateSquare).
//   - ErrDimensionMismatch (ValidateRHSShape, when WithRHS is supplied).
//   - ErrSingular          (pivot within tol of zero during LU or back-substitution).
//
// Determinism:
//   - Fixed traversal and no pivoting → identical results for identical inputs.
//
// Complexity:
//   - Time O(n^3 + n^2·k): Doolittle LU is O(n^3); k RHS columns cost O(n^2) each.
//   - Space O(n^2): L, U, and X; y, x are O(n).
//
// Notes:
//   - Numerical stability: no partial/complete pivoting. Upstream callers should
//     avoid ill-conditioned matrices or apply scaling/preconditioning.
//   - If you only need A⁻¹·b for a single b, pass WithRHS(b): cheaper than
//     forming A⁻¹ and multiplying.
func Solve(a Matrix, opts ...SolveOption) (Matrix, error) {
	// Validate coefficient matrix non-nil and square
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Fold options over documented defaults
	o := gatherSolveOptions(opts...)

	// Resolve the right-hand side: caller-supplied B or I_n
	n := a.Rows()
	b := o.rhs
	if b == nil {
		ident, err := NewIdentity(n)
		if err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
		b = ident
	} else if err := ValidateRHSShape(n, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// LU decomposition (Doolittle, shared kernel)
	Ld, Ud, err := lu(a, o.pivotTol)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Prepare result container and scratch arrays
	k := b.Cols()
	X, err := NewDense(n, k)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var (
		col, i, t  int // loop iterators
		sum, pivot float64
		rhs        float64
		y          = make([]float64, n) // forward substitution workspace
		x          = make([]float64, n) // backward substitution workspace
	)
	// L and U are always *Dense (allocated by lu); only B may be foreign.
	bRaw, bFast := b.(*Dense)
	for col = 0; col < k; col++ {
		// Forward substitution: L*y = b[:,col]
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for t = 0; t < i; t++ {
				sum += Ld.data[i*n+t] * y[t]
			}
			if bFast {
				rhs = bRaw.data[i*k+col]
			} else {
				rhs, err = b.At(i, col)
				if err != nil {
					return nil, matrixErrorf(opSolve, fmt.Errorf("At(%d,%d): %w", i, col, err))
				}
			}
			y[i] = rhs - sum
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for t = i + 1; t < n; t++ {
				sum += Ud.data[i*n+t] * x[t]
			}
			pivot = Ud.data[i*n+i]
			if math.Abs(pivot) <= o.pivotTol {
				return nil, matrixErrorf(opSolve, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		// Write x into column col of X
		for i = 0; i < n; i++ {
			X.data[i*k+col] = x[i]
		}
	}

	return X, nil
}

// Mul computes the matrix product a·b.
// Stage 1 (Validate): both non-nil; a.Cols == b.Rows.
// Stage 2 (Execute): triple loop in fixed i→j→t order; fast path when both
// operands are *Dense, generic At fallback otherwise.
// Stage 3 (Finalize): return fresh Dense(a.Rows × b.Cols) or wrapped error.
// Complexity: O(r*c*inner) time, O(r*c) space.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate operands
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	// Allocate result
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Detect fast path when both operands are *Dense
	aRaw, okA := a.(*Dense)
	bRaw, okB := b.(*Dense)
	var i, j, t int // loop iterators
	var sum, av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for t = 0; t < inner; t++ {
				if okA && okB {
					sum += aRaw.data[i*inner+t] * bRaw.data[t*cols+j]
					continue
				}
				av, err = a.At(i, t)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, t, err))
				}
				bv, err = b.At(t, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", t, j, err))
				}
				sum += av * bv
			}
			out.data[i*cols+j] = sum
		}
	}

	return out, nil
}
