// Package memo provides CachedMatrix, a memoizing holder for matrix inversion.
//
// A CachedMatrix owns exactly one source matrix and at most one cached
// inverse. The contract is deliberately small:
//
//   - SetSource replaces the source and unconditionally clears the cached
//     inverse — even when the new matrix equals the old one by value. No
//     equality is ever computed; replacement always invalidates.
//   - ComputeInverse returns the cached inverse when present, otherwise it
//     solves src·X = I via matrix.Solve, stores X, and returns it. A failed
//     solve caches nothing, so the next call retries.
//   - SetInverse is an unchecked escape hatch: the caller asserts the value
//     is the true inverse of the current source; no verification happens.
//     Supplying a wrong inverse silently corrupts the cache — this is a
//     documented caller responsibility, not a checked precondition.
//
// The two-state cache (absent / present-and-trusted) never holds an inverse
// inconsistent with the current source, provided SetInverse is used honestly.
//
// Concurrency: a CachedMatrix is NOT safe for concurrent use. The
// read-check-write inside ComputeInverse and the clear-on-replace inside
// SetSource assume a single logical owner; callers who share one across
// goroutines must add their own mutual exclusion around every operation.
//
// Cache hits and fresh solves emit debug-level go-kit/log events (nop by
// default, injectable via WithLogger). The events are for tracing and
// performance observation only; they carry no semantic meaning.
package memo
