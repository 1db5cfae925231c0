// Package testutil provides testing utilities for fixedarray.
//
// This package is intended for use in tests, benchmarks and examples only.
// It provides a seeded, thread-safe random source for generating element
// data and generator functions with a known output sequence.
//
// # Random Element Generation
//
//	rng := testutil.NewRNG(seed)
//	ints := rng.Ints(100, 1000)            // 100 values in [0, 1000)
//	gen := rng.IntGenerator(1, 6)          // dice roller for Array.Generate
//
// # Deterministic Generators
//
//	gen := testutil.Counter(0, 2)          // 0, 2, 4, ...
package testutil
