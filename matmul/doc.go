// SPDX-License-Identifier: MIT

// Package matmul multiplies square numeric matrices with divide-and-conquer
// algorithms, from the classic triple loop up to Strassen's sub-cubic scheme
// generalized to arbitrary dimension.
//
// 🚀 What is matmul?
//
//	A family of exact multiplication engines over matrix.Dense[T]:
//	  • Naive — the Θ(n³) triple loop, the reference every other engine
//	    is tested against
//	  • NaiveParallel — the same product with rows fanned out across a
//	    bounded set of goroutines
//	  • Recursive — 8-product block recursion (no arithmetic savings;
//	    exercises partition/combine and anchors correctness)
//	  • Strassen — the 7-product reduction, Θ(n^2.807), power-of-two sizes
//	  • StrassenGeneralized — Strassen for ANY n ≥ 1, padding odd levels
//	    with one zero row/column and truncating afterwards
//
// ✨ Key features:
//   - one element type for the whole computation: any signed integer or
//     float instantiation of matrix.Dense
//   - every engine validates shape up front and returns sentinel errors;
//     after validation no deeper call can fail except by cancellation
//   - LeafSize crossover: below the cutoff recursion hands over to the
//     cache-friendly triple loop
//   - Workers fan-out: the 7 independent products of one Strassen level
//     run on a bounded goroutine pool with a join before recombination
//   - context cancellation propagates to all in-flight subproblems
//
// ⚙️ Usage:
//
//	import "github.com/mnrn/matops/matmul"
//
//	opts := &matmul.Options{
//	  LeafSize: 64,                // drop to the triple loop at n ≤ 64
//	  Workers:  runtime.NumCPU(),  // parallel product fan-out
//	}
//
//	c, err := matmul.StrassenGeneralized(a, b, opts)
//
// Performance:
//
//   - Naive / Recursive: Θ(n³)
//   - Strassen / StrassenGeneralized: Θ(n^log₂7) ≈ Θ(n^2.807)
//   - Memory: Θ(n² log n) transient (every level materializes its blocks)
//
// See example_test.go for worked 2×2, 4×4 and 6×6 scenarios.
package matmul
