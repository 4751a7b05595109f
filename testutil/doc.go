// Package testutil provides testing utilities for alignmem.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for allocation workloads and helpers
// for writing and verifying byte patterns in raw memory.
//
// # Random Workloads
//
//	rng := testutil.NewRNG(seed)
//	sizes := rng.Sizes(1000, 1<<16, 1.2)   // power-law sizes, mostly small
//	alignments := rng.Alignments(1000, 12) // powers of two up to 4096
//
// # Pattern Checks
//
//	testutil.FillPattern(p, n, seed)
//	if i, ok := testutil.CheckPattern(p, n, seed); !ok {
//	    t.Fatalf("corrupted byte %d", i)
//	}
package testutil
