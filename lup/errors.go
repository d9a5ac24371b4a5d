// SPDX-License-Identifier: MIT
// Package lup: sentinel error set, matched by callers with errors.Is.
package lup

import "errors"

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("lup: nil matrix")

	// ErrNonSquare indicates a matrix with differing row and column counts;
	// only square systems factorize.
	ErrNonSquare = errors.New("lup: matrix is not square")

	// ErrDegenerate indicates a 0×0 matrix, rejected explicitly.
	ErrDegenerate = errors.New("lup: zero-dimension matrix")

	// ErrSingular indicates the elimination hit a zero pivot (no pivoting)
	// or an all-zero pivot column (partial pivoting): the matrix has no
	// LU/LUP factorization with nonzero pivots.
	ErrSingular = errors.New("lup: matrix is singular")

	// ErrDimensionMismatch indicates a right-hand side whose length differs
	// from the factored system's order.
	ErrDimensionMismatch = errors.New("lup: dimension mismatch")
)
