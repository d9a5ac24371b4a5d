// SPDX-License-Identifier: MIT
// Package matmul: shared operand validation.
// Every engine funnels through validatePair before any work happens; after
// it passes, recursion levels construct their own operands and shapes stay
// consistent by construction.

package matmul

import "github.com/mnrn/matops/matrix"

// validatePair checks the common preconditions of every engine: operands
// present, non-degenerate, square, and of equal dimension. Returns the shared
// dimension n.
// Errors: ErrNilMatrix, ErrDegenerate, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(1).
func validatePair[T matrix.Number](a, b *matrix.Dense[T]) (int, error) {
	if a == nil || b == nil {
		return 0, ErrNilMatrix
	}
	if a.Rows() == 0 || b.Rows() == 0 {
		return 0, ErrDegenerate
	}
	if !a.IsSquare() || !b.IsSquare() {
		return 0, ErrNonSquare
	}
	if a.Rows() != b.Rows() {
		return 0, ErrDimensionMismatch
	}

	return a.Rows(), nil
}

// isPowerOfTwo reports whether n is a positive power of two.
// Complexity: O(1).
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
