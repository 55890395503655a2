// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSquare – Ensures m has equal row and column counts.
//
// Implementation: Assumes m is not nil (caller must ensure).
// Inputs: Matrix value.
// Returns: nil or wrapped ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Execute comparison
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateRHSShape – Ensures a right-hand side b is conformable with an n×n
// coefficient matrix: b.Rows() == n and b.Cols() >= 1.
//
// Implementation: Assumes b is not nil (caller must ensure).
// Inputs: n (coefficient order), b (candidate RHS).
// Returns: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateRHSShape(n int, b Matrix) error {
	// Row count must match the coefficient order.
	if b.Rows() != n {
		return validatorErrorf("ValidateRHSShape: Rows", ErrDimensionMismatch)
	}
	// At least one column to solve for.
	if b.Cols() < 1 {
		return validatorErrorf("ValidateRHSShape: Columns", ErrDimensionMismatch)
	}

	return nil
}
