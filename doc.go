// Package matcache is a small memoizing layer over matrix inversion:
// hold a square matrix, compute its inverse lazily, and reuse the cached
// result until the source matrix is replaced.
//
// 🚀 What is matcache?
//
//	A deterministic, dependency-light library built from two pieces:
//		• matrix/ — dense linear-algebra substrate: Dense storage, Doolittle LU,
//		  and a general Solve for A·X = B (B defaults to the identity, so a bare
//		  Solve is inversion)
//		• memo/   — CachedMatrix, the caching primitive: a source matrix plus an
//		  optional cached inverse, with strict clear-on-replace invalidation
//
// ✨ Why choose matcache?
//
//   - Predictable invalidation – replacing the source always drops the cache;
//     no value-equality guessing, no stale inverses
//   - Deterministic numerics – fixed loop orders, no pivoting, reproducible
//     results for identical inputs
//   - Observable – cache hits and fresh solves emit structured go-kit/log
//     events you can route anywhere (default is a nop logger)
//
// Quick example:
//
//	src, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
//	c := memo.New(src)
//	inv, err := c.ComputeInverse() // solves once
//	inv, err = c.ComputeInverse()  // served from the cache
//	c.SetSource(next)              // cache cleared; the next call solves again
//
// See memo for the caching contract and matrix for the solver semantics.
//
//	go get github.com/katalvlaran/matcache
package matcache
