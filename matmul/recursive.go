// SPDX-License-Identifier: MIT
// Package matmul: 8-product block recursion.

package matmul

import "github.com/mnrn/matops/matrix"

// Recursive computes c = a·b by plain quadrant recursion:
//
//	C11 = A11·B11 + A12·B21    C12 = A11·B12 + A12·B22
//	C21 = A21·B11 + A22·B21    C22 = A21·B12 + A22·B22
//
// Eight recursive products per level yield Θ(n³), no arithmetic savings over
// Naive. The engine exists to exercise Partition/Combine in isolation and to
// anchor correctness for the 7-product reduction.
//
// Algorithm Outline:
//  1. Validate operands; n must be a power of two (ErrNotPowerOfTwo
//     otherwise — arbitrary sizes belong to StrassenGeneralized).
//  2. Base case n == 1: the 1×1 scalar product.
//  3. Partition both operands, compute the eight half-size products
//     recursively, add them pairwise, combine the four quadrants.
//
// Errors: ErrNilMatrix, ErrDegenerate, ErrNonSquare, ErrDimensionMismatch,
// ErrNotPowerOfTwo.
// Complexity: Θ(n³) time, Θ(n² log n) transient space.
func Recursive[T matrix.Number](a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	n, err := validatePair(a, b)
	if err != nil {
		return nil, err
	}
	if !isPowerOfTwo(n) {
		return nil, ErrNotPowerOfTwo
	}

	return recurse8(a, b)
}

// recurse8 is the unvalidated core; operands arrive square with equal
// power-of-two dimension at every level.
func recurse8[T matrix.Number](a, b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if a.Rows() == 1 {
		return matrix.Mul(a, b) // scalar product, represented as a 1×1 matrix
	}

	a11, a12, a21, a22, err := matrix.Partition(a)
	if err != nil {
		return nil, err
	}
	b11, b12, b21, b22, err := matrix.Partition(b)
	if err != nil {
		return nil, err
	}

	// Two half-size products feed each output quadrant.
	var p, q *matrix.Dense[T]

	// C11 = A11·B11 + A12·B21
	if p, err = recurse8(a11, b11); err != nil {
		return nil, err
	}
	if q, err = recurse8(a12, b21); err != nil {
		return nil, err
	}
	c11, err := matrix.Add(p, q)
	if err != nil {
		return nil, err
	}

	// C12 = A11·B12 + A12·B22
	if p, err = recurse8(a11, b12); err != nil {
		return nil, err
	}
	if q, err = recurse8(a12, b22); err != nil {
		return nil, err
	}
	c12, err := matrix.Add(p, q)
	if err != nil {
		return nil, err
	}

	// C21 = A21·B11 + A22·B21
	if p, err = recurse8(a21, b11); err != nil {
		return nil, err
	}
	if q, err = recurse8(a22, b21); err != nil {
		return nil, err
	}
	c21, err := matrix.Add(p, q)
	if err != nil {
		return nil, err
	}

	// C22 = A21·B12 + A22·B22
	if p, err = recurse8(a21, b12); err != nil {
		return nil, err
	}
	if q, err = recurse8(a22, b22); err != nil {
		return nil, err
	}
	c22, err := matrix.Add(p, q)
	if err != nil {
		return nil, err
	}

	return matrix.Combine(c11, c12, c21, c22)
}
