// Package matrix provides the dense linear-algebra substrate for matcache.
//
// The matrix package provides:
//
//   - Matrix, a minimal mutable 2-D float64 interface (Rows/Cols/At/Set/Clone).
//   - Dense, a row-major flat-slice implementation with O(1) element access.
//   - LU, a deterministic Doolittle factorization without pivoting.
//   - Solve, the general linear solver for A·X = B; the right-hand side
//     defaults to the identity, so Solve(a) computes A⁻¹.
//   - Inverse, a thin facade over Solve for discoverability.
//
// All kernels are deterministic: fixed loop orders, no pivoting, no hidden
// randomness. Identical inputs produce identical outputs, bit for bit. The
// price is numerical stability — callers with ill-conditioned inputs should
// scale or precondition upstream; see WithPivotTolerance for the singularity
// guard.
//
// Errors are plain package sentinels (ErrSingular, ErrNonSquare, ...) wrapped
// with an operation tag at the public facades; match them with errors.Is.
package matrix
