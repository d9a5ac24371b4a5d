// SPDX-License-Identifier: MIT
// Package matrix: converters between Dense and gonum/mat.
// Kept float64-specialized because gonum's mat package is; integer matrices
// convert by instantiating Dense[float64] explicitly on the caller side.

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a gonum *mat.Dense so results can flow into the wider
// gonum toolbox (decompositions, formatted printing, and the like).
// The backing data is copied; m and the result stay independent.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ToGonum(m *Dense[float64]) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opToGonum, ErrNilMatrix)
	}

	// mat.NewDense takes ownership of the slice it is given, so hand it a copy
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies any gonum mat.Matrix into a fresh Dense[float64].
// Errors: ErrNilMatrix (nil src), ErrBadShape (zero-dimension src).
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense[float64], error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opFromGonum, ErrBadShape)
	}

	out, err := NewDense[float64](r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}
