// SPDX-License-Identifier: MIT
// Package memo_test contains unit tests for the CachedMatrix caching contract:
// clear-on-replace invalidation, memoized compute, the unchecked SetInverse
// escape hatch, and failure/retry behavior.
package memo_test

import (
	"bytes"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/matrix"
	"github.com/katalvlaran/matcache/memo"
)

// eps is the element-wise tolerance for numeric assertions.
const eps = 1e-9

// mustRows builds a *Dense fixture or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// requireClose asserts got ≈ want element-wise within eps.
func requireClose(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "column count")

	var i, j int // loop iterators
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, eps, "element [%d,%d]", i, j)
		}
	}
}

// countingSolve wraps matrix.Solve and bumps *calls on every invocation,
// making solver traffic observable to the tests.
func countingSolve(calls *int) memo.SolveFunc {
	return func(a matrix.Matrix, opts ...matrix.SolveOption) (matrix.Matrix, error) {
		*calls++

		return matrix.Solve(a, opts...)
	}
}

// TestComputeInverse_Memoizes: two consecutive calls return equal matrices
// and the solver runs exactly once.
func TestComputeInverse_Memoizes(t *testing.T) {
	var calls int
	c := memo.New(mustRows(t, [][]float64{{1, 2}, {3, 4}}), memo.WithSolver(countingSolve(&calls)))

	first, err := c.ComputeInverse()
	require.NoError(t, err)
	second, err := c.ComputeInverse()
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second call must not invoke the solver")
	assert.Same(t, first, second, "cache hit must return the stored value verbatim")
	requireClose(t, [][]float64{{-2, 1}, {1.5, -0.5}}, second)
}

// TestSetSource_InvalidatesUnconditionally: replacing the source clears the
// cache even when the replacement equals the old source by value — or IS the
// old source. No equality is ever consulted.
func TestSetSource_InvalidatesUnconditionally(t *testing.T) {
	src := mustRows(t, [][]float64{{2, 0}, {0, 2}})

	t.Run("different value", func(t *testing.T) {
		c := memo.New(src)
		_, err := c.ComputeInverse()
		require.NoError(t, err)

		c.SetSource(mustRows(t, [][]float64{{1, 0}, {0, 1}}))
		_, ok := c.Inverse()
		assert.False(t, ok, "cache must be absent after SetSource")
	})

	t.Run("equal value, distinct object", func(t *testing.T) {
		c := memo.New(src)
		_, err := c.ComputeInverse()
		require.NoError(t, err)

		c.SetSource(mustRows(t, [][]float64{{2, 0}, {0, 2}}))
		_, ok := c.Inverse()
		assert.False(t, ok, "value-equal replacement must still invalidate")
	})

	t.Run("same object", func(t *testing.T) {
		c := memo.New(src)
		_, err := c.ComputeInverse()
		require.NoError(t, err)

		c.SetSource(src)
		_, ok := c.Inverse()
		assert.False(t, ok, "re-setting the identical source must still invalidate")
	})
}

// TestComputeInverse_Correctness: M·X ≈ I and X·M ≈ I within eps on a 3×3.
func TestComputeInverse_Correctness(t *testing.T) {
	m := mustRows(t, [][]float64{{2, 1, 1}, {1, 3, 2}, {1, 0, 0}})
	c := memo.New(m)

	x, err := c.ComputeInverse()
	require.NoError(t, err)

	ident := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	left, err := matrix.Mul(m, x)
	require.NoError(t, err)
	requireClose(t, ident, left)

	right, err := matrix.Mul(x, m)
	require.NoError(t, err)
	requireClose(t, ident, right)
}

// TestSetInverse_Unchecked: the escape hatch stores an arbitrary matrix with
// no validation and Inverse returns exactly that object.
func TestSetInverse_Unchecked(t *testing.T) {
	c := memo.New(mustRows(t, [][]float64{{2, 0}, {0, 2}}))

	z := mustRows(t, [][]float64{{7, 7, 7}}) // not even square, let alone an inverse
	c.SetInverse(z)

	got, ok := c.Inverse()
	require.True(t, ok)
	assert.Same(t, z, got, "SetInverse must store the value verbatim, unvalidated")

	// And ComputeInverse now serves the planted value without solving.
	var calls int
	c2 := memo.New(mustRows(t, [][]float64{{2, 0}, {0, 2}}), memo.WithSolver(countingSolve(&calls)))
	c2.SetInverse(z)
	served, err := c2.ComputeInverse()
	require.NoError(t, err)
	assert.Same(t, z, served)
	assert.Zero(t, calls, "a seeded cache must suppress the solve entirely")
}

// TestComputeInverse_FailureRetainsAbsence: a singular source fails with
// ErrSingular, caches nothing, and a corrected source retries cleanly.
func TestComputeInverse_FailureRetainsAbsence(t *testing.T) {
	var calls int
	c := memo.New(mustRows(t, [][]float64{{1, 2}, {2, 4}}), memo.WithSolver(countingSolve(&calls)))

	_, err := c.ComputeInverse()
	assert.ErrorIs(t, err, matrix.ErrSingular)
	assert.Equal(t, 1, calls)

	_, ok := c.Inverse()
	assert.False(t, ok, "a failed solve must not poison the cache")

	// A failed attempt is not sticky: the next call retries the solver.
	_, err = c.ComputeInverse()
	assert.ErrorIs(t, err, matrix.ErrSingular)
	assert.Equal(t, 2, calls, "each call against a singular source must retry")

	// Correcting the source makes the same CachedMatrix usable again.
	c.SetSource(mustRows(t, [][]float64{{2, 0}, {0, 2}}))
	inv, err := c.ComputeInverse()
	require.NoError(t, err)
	requireClose(t, [][]float64{{0.5, 0}, {0, 0.5}}, inv)
}

// TestComputeInverse_NilSource: the degenerate placeholder fails on compute,
// not on construction, and the cache stays absent.
func TestComputeInverse_NilSource(t *testing.T) {
	c := memo.New(nil)

	_, err := c.ComputeInverse()
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, ok := c.Inverse()
	assert.False(t, ok)
	assert.Nil(t, c.Source())
}

// TestComputeInverse_ForwardsOptions: caller options reach the solver
// verbatim and uninterpreted on a miss, and not at all on a hit.
func TestComputeInverse_ForwardsOptions(t *testing.T) {
	var gotOpts int
	solver := func(a matrix.Matrix, opts ...matrix.SolveOption) (matrix.Matrix, error) {
		gotOpts = len(opts)

		return matrix.Solve(a, opts...)
	}
	c := memo.New(mustRows(t, [][]float64{{1, 2}, {3, 4}}), memo.WithSolver(solver))

	_, err := c.ComputeInverse(matrix.WithPivotTolerance(1e-12))
	require.NoError(t, err)
	assert.Equal(t, 1, gotOpts, "options must be forwarded verbatim")

	// Hit path: the solver is not consulted, so gotOpts stays untouched.
	gotOpts = -1
	_, err = c.ComputeInverse(matrix.WithPivotTolerance(1e-6))
	require.NoError(t, err)
	assert.Equal(t, -1, gotOpts, "a cache hit must bypass the solver and its options")
}

// TestScenario_DiagonalTwo replays the full contract end to end:
// solve once, hit once, invalidate, solve again.
func TestScenario_DiagonalTwo(t *testing.T) {
	var calls int
	c := memo.New(mustRows(t, [][]float64{{2, 0}, {0, 2}}), memo.WithSolver(countingSolve(&calls)))

	inv, err := c.ComputeInverse()
	require.NoError(t, err)
	requireClose(t, [][]float64{{0.5, 0}, {0, 0.5}}, inv)
	require.Equal(t, 1, calls, "first compute must invoke the solver once")

	again, err := c.ComputeInverse()
	require.NoError(t, err)
	requireClose(t, [][]float64{{0.5, 0}, {0, 0.5}}, again)
	require.Equal(t, 1, calls, "second compute must be served from the cache")

	c.SetSource(mustRows(t, [][]float64{{1, 0}, {0, 1}}))
	_, ok := c.Inverse()
	require.False(t, ok, "replacement must clear the cache")

	inv, err = c.ComputeInverse()
	require.NoError(t, err)
	requireClose(t, [][]float64{{1, 0}, {0, 1}}, inv)
	require.Equal(t, 2, calls, "recompute after invalidation must solve again")
}

// TestWithLogger_Diagnostics: the hit/miss events are observable and
// distinguish the cache from the solver as the value's origin.
func TestWithLogger_Diagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewLogfmtLogger(&buf)
	c := memo.New(mustRows(t, [][]float64{{2, 0}, {0, 2}}), memo.WithLogger(logger))

	_, err := c.ComputeInverse()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "source=solver", "first compute must log a fresh solve")

	buf.Reset()
	_, err = c.ComputeInverse()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "source=cache", "second compute must log a cache hit")
}

// TestOptions_Panics: option constructors reject programmer errors loudly.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { memo.WithLogger(nil) })
	assert.Panics(t, func() { memo.WithSolver(nil) })
}

// TestSourceAccessor: Source is a pure read of whatever was last set.
func TestSourceAccessor(t *testing.T) {
	src := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := memo.New(src)
	assert.Same(t, src, c.Source())

	next := mustRows(t, [][]float64{{5, 6}, {7, 8}})
	c.SetSource(next)
	assert.Same(t, next, c.Source())
}
