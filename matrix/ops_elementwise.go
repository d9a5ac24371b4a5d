// SPDX-License-Identifier: MIT
// Package matrix: elementwise kernels over Dense.
// All functions perform strict fail-fast validation, never mutate their
// operands, and return plain sentinels wrapped with an operation tag via
// matrixErrorf at the facade.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opPartition = "Partition"
	opCombine   = "Combine"
	opPad       = "PadEven"
	opTruncate  = "Truncate"
	opSubmatrix = "Submatrix"
	opSetBlock  = "SetBlock"
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers still match sentinels with errors.Is. Use only when
// err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// sameShape reports nil operands and shape mismatches with the proper sentinel.
// Complexity: O(1).
func sameShape[T Number](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are
// not mutated. Internal helper for Add/Sub to share validation and the loop.
//
// Implementation:
//   - Stage 1: sameShape(a, b). Allocate the result Dense(rows, cols).
//   - Stage 2: single flat loop 0..r*c-1 over both backing slices.
//
// Behavior highlights:
//   - Deterministic flat walk; single result allocation; inputs immutable.
//   - Keeping `sign` as a T value avoids an extra branch inside the hot loop.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from sameShape, wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// AI-Hints:
//   - If you need in-place add/sub, write a dedicated kernel; do not mutate
//     operands here — the recursion engines rely on operand immutability.
func addSub[T Number](a, b *Dense[T], sign T, opTag string) (*Dense[T], error) {
	// Validate shapes match
	if err := sameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate result Dense
	res, err := NewDense[T](a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Single flat element-wise pass over backing slices
	length := a.r * a.c
	for idx := 0; idx < length; idx++ { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add returns the elementwise sum a + b as a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) {
	return addSub(a, b, 1, opAdd)
}

// Sub returns the elementwise difference a - b as a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) {
	return addSub(a, b, -1, opSub)
}

// Equal reports exact elementwise equality of a and b.
// Nil operands or differing shapes compare unequal. Intended for integer
// instantiations; float results should prefer AllClose.
// Complexity: O(r*c).
func Equal[T Number](a, b *Dense[T]) bool {
	if sameShape(a, b) != nil {
		return false
	}
	for idx, v := range a.data {
		if v != b.data[idx] {
			return false
		}
	}

	return true
}

// AllClose reports elementwise |a-b| <= eps for floating-point matrices.
// Nil operands or differing shapes compare unequal; eps must be non-negative.
// Complexity: O(r*c).
func AllClose[T Float](a, b *Dense[T], eps float64) bool {
	if sameShape(a, b) != nil {
		return false
	}
	var diff float64
	for idx, v := range a.data {
		diff = float64(v) - float64(b.data[idx])
		if diff < 0 {
			diff = -diff
		}
		if diff > eps {
			return false
		}
	}

	return true
}
