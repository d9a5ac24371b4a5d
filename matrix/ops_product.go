// SPDX-License-Identifier: MIT
// Package matrix: classic dense product kernel.
// This is the Θ(r·k·c) triple loop every multiplication engine bottoms out
// on; the sub-cubic algorithms live in the matmul package.

package matrix

// Mul returns the matrix product a·b as a fresh Dense.
//
// Implementation:
//   - Stage 1: validate operands (non-nil, a.Cols == b.Rows).
//   - Stage 2: i→k→j loop order over flat slices. The i→k→j order walks the
//     b rows sequentially, which is cache-friendlier than i→j→k, and lets us
//     skip a whole inner row when a[i][k] is zero — padded inputs carry full
//     zero rows and columns, so the skip is not a micro-optimization here.
//
// Errors:
//   - ErrNilMatrix when a or b is nil.
//   - ErrDimensionMismatch when a.Cols != b.Rows.
//
// Complexity: time O(a.Rows * a.Cols * b.Cols), space O(a.Rows * b.Cols).
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	// Validate operands
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	res, err := NewDense[T](a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// i→k→j accumulation with zero-skip on the a element
	var (
		i, k, j int
		aik     T
		zero    T
	)
	for i = 0; i < a.r; i++ {
		rowOut := i * b.c
		rowA := i * a.c
		for k = 0; k < a.c; k++ {
			aik = a.data[rowA+k]
			if aik == zero {
				continue // whole b-row contributes nothing
			}
			rowB := k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOut+j] += aik * b.data[rowB+j]
			}
		}
	}

	return res, nil
}
