// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed to avoid numeric interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/matrix"
)

// Tolerance for floating-point comparisons in solve tests.
const eps = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Embedding matrix.Matrix forwards all methods while masking *Dense, which
// forces kernels onto their generic At/Set fallback paths. Use hide{X} on
// ONLY the operand you want to de-opt to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFromRows builds a *Dense from a row literal or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "NewDenseFromRows(%v)", rows)

	return m
}

// RequireClose asserts got ≈ want element-wise within tol (fatal on first
// mismatch, with coordinates in the message). Shapes must match exactly.
func RequireClose(t *testing.T, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "column count")

	var i, j int // loop iterators
	var v float64
	var err error
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			v, err = got.At(i, j)
			require.NoError(t, err, "At(%d,%d)", i, j)
			require.InDelta(t, want[i][j], v, tol, "element [%d,%d]", i, j)
		}
	}
}
