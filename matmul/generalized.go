// SPDX-License-Identifier: MIT
// Package matmul: Strassen generalized to arbitrary square dimension.

package matmul

import (
	"fmt"

	"github.com/mnrn/matops/matrix"
)

// StrassenGeneralized computes c = a·b for ANY n ≥ 1 by padding odd levels
// with one zero row and column and truncating after recombination.
//
// Algorithm Outline:
//  1. Validate operands (no divisibility requirement); resolve options.
//  2. At each node: check cancellation; at or below LeafSize run the naive
//     kernel (n == 1 is the 1×1 scalar product).
//  3. If the current n is odd, pad both operands to n+1 and remember it.
//     Half of an even number need not be even, so the odd case recurs at
//     every level, not only at the top.
//  4. Run one 7-product reduction level; every product recurses back into
//     this generalized path, never into the power-of-two one.
//  5. If this level padded, truncate the result back to n×n. The padding
//     row and column are zero, so they contribute nothing to the true block.
//
// Errors: ErrNilMatrix, ErrDegenerate, ErrNonSquare, ErrDimensionMismatch,
// ErrBadOptions, and the context error when opts.Ctx is canceled mid-flight.
// Complexity: Θ(n^2.807) time — the O(log n) chain of one-row paddings is
// absorbed into the Θ(n²) per-level bookkeeping; Θ(n² log n) transient space.
func StrassenGeneralized[T matrix.Number](a, b *matrix.Dense[T], opts *Options) (*matrix.Dense[T], error) {
	if _, err := validatePair(a, b); err != nil {
		return nil, err
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return generalizedRec(a, b, o)
}

// generalizedRec is the padding-aware recursion shared by all levels.
func generalizedRec[T matrix.Number](a, b *matrix.Dense[T], o *Options) (*matrix.Dense[T], error) {
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}
	n := a.Rows()
	if n <= o.LeafSize {
		return matrix.Mul(a, b)
	}

	pa, padded, err := matrix.PadEven(a)
	if err != nil {
		return nil, err
	}
	pb, _, err := matrix.PadEven(b)
	if err != nil {
		return nil, err
	}
	if padded && o.Verbose {
		fmt.Printf("matmul: StrassenGeneralized pads n=%d to n=%d\n", n, n+1)
	}

	c, err := strassenStep(pa, pb, o, func(x, y *matrix.Dense[T]) (*matrix.Dense[T], error) {
		return generalizedRec(x, y, o)
	})
	if err != nil {
		return nil, err
	}
	if padded {
		// Strip the zero fringe added in step 3.
		return matrix.Truncate(c, n, n)
	}

	return c, nil
}
