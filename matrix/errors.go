// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; when context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested shape is invalid: rows or cols
	// not positive, a flat length different from rows*cols, or a truncation
	// window larger than its parent. Constructors validate before allocating.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRagged is returned by FromRows when the rows differ in length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Partition, PadEven).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOddDimension signals that an even dimension was required. Partition
	// refuses odd input instead of silently flooring the midpoint.
	ErrOddDimension = errors.New("matrix: dimension is not even")

	// ErrNilMatrix indicates that a nil *Dense receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
