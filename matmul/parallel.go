// SPDX-License-Identifier: MIT
// Package matmul: bounded fan-out for the independent products of one
// reduction level. The seven products never read each other's output, so
// they may run concurrently; the join happens before recombination reads
// anything.

package matmul

import (
	"sync"

	"github.com/mnrn/matops/matrix"
)

// productTask names the two operands of one half-size product.
type productTask[T matrix.Number] struct {
	x, y *matrix.Dense[T]
}

// runProducts evaluates the seven products of one reduction level.
//
// Sequential mode (no semaphore): tasks run in order on the calling
// goroutine, keeping the hot path free of synchronization.
//
// Parallel mode: each task tries to take a semaphore slot. Slot holders run
// in fresh goroutines; the rest execute inline on the caller, so recursion
// deeper in the tree can never deadlock waiting for a slot. Every task
// writes only its own result slot and the WaitGroup join precedes any read,
// so sibling subtrees cannot corrupt one another. The first error observed
// wins (after top-level validation, cancellation is the only reachable one).
func runProducts[T matrix.Number](o *Options, mul mulFunc[T], tasks [7]productTask[T]) ([7]*matrix.Dense[T], error) {
	var out [7]*matrix.Dense[T]

	if o.sem == nil {
		var err error
		for i := range tasks {
			if out[i], err = mul(tasks[i].x, tasks[i].y); err != nil {
				return out, err
			}
		}

		return out, nil
	}

	var (
		wg   sync.WaitGroup
		errs [7]error
	)
	for i := range tasks {
		select {
		case o.sem <- struct{}{}:
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				defer func() { <-o.sem }()
				out[i], errs[i] = mul(tasks[i].x, tasks[i].y)
			}(i)
		default:
			// No free slot: the caller computes this product itself.
			out[i], errs[i] = mul(tasks[i].x, tasks[i].y)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return out, err
		}
	}

	return out, nil
}
