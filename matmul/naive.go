// SPDX-License-Identifier: MIT
// Package matmul: reference product engines.
// Naive is the oracle every sub-cubic engine is verified against;
// NaiveParallel is the same arithmetic with rows fanned out over goroutines.

package matmul

import (
	"runtime"
	"sync"

	"github.com/mnrn/matops/matrix"
)

// Naive computes c = a·b with the classic Θ(n³) triple loop.
//
// Algorithm Outline:
//  1. Validate operands (square, equal n ≥ 1).
//  2. Delegate to the matrix.Mul kernel (i→k→j order with zero-skip).
//
// Errors: ErrNilMatrix, ErrDegenerate, ErrNonSquare, ErrDimensionMismatch.
// Complexity: Θ(n³) time, Θ(n²) space.
func Naive[T matrix.Number](a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if _, err := validatePair(a, b); err != nil {
		return nil, err
	}

	return matrix.Mul(a, b)
}

// NaiveParallel computes the same product with contiguous row bands fanned
// out across a bounded set of goroutines.
//
// Algorithm Outline:
//  1. Validate operands; size the pool (workers ≤ 0 means runtime.NumCPU()).
//  2. Fall back to the sequential kernel when n is too small to amortize
//     goroutine startup (fewer than two rows per worker).
//  3. Split rows into ⌈n/workers⌉-sized bands; each goroutine multiplies its
//     band a[r0:r1)·b and pastes it into the shared result. Bands are
//     disjoint, so the only synchronization is the final join.
//  4. Join on the WaitGroup; surface the first recorded error, if any.
//
// Errors: ErrNilMatrix, ErrDegenerate, ErrNonSquare, ErrDimensionMismatch.
// Complexity: Θ(n³) work split across workers, Θ(n²) space.
func NaiveParallel[T matrix.Number](a, b *matrix.Dense[T], workers int) (*matrix.Dense[T], error) {
	n, err := validatePair(a, b)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	// Banding needs at least two rows per worker to pay off.
	if workers == 1 || n < workers*2 {
		return matrix.Mul(a, b)
	}

	res, err := matrix.NewDense[T](n, n)
	if err != nil {
		return nil, err
	}

	rowsPer := (n + workers - 1) / workers
	errs := make([]error, workers)
	var wg sync.WaitGroup
	var slot int
	for r0 := 0; r0 < n; r0 += rowsPer {
		r1 := r0 + rowsPer
		if r1 > n {
			r1 = n
		}
		wg.Add(1)
		go func(slot, r0, r1 int) {
			defer wg.Done()
			band, bandErr := matrix.Submatrix(a, r0, 0, r1-r0, n)
			if bandErr != nil {
				errs[slot] = bandErr
				return
			}
			prod, bandErr := matrix.Mul(band, b)
			if bandErr != nil {
				errs[slot] = bandErr
				return
			}
			// Disjoint row ranges: no two goroutines touch the same cells.
			errs[slot] = matrix.SetBlock(res, r0, 0, prod)
		}(slot, r0, r1)
		slot++
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}

	return res, nil
}
