// SPDX-License-Identifier: MIT
// Package matmul: sentinel error set.
// Every engine validates its operands before any recursion starts and
// reports violations through these sentinels; tests match them with
// errors.Is. Messages carry the "matmul: ..." prefix for grep-friendly logs.

package matmul

import "errors"

var (
	// ErrNilMatrix indicates a nil operand was passed to an engine.
	ErrNilMatrix = errors.New("matmul: nil matrix operand")

	// ErrNonSquare indicates an operand with differing row and column counts.
	// All engines multiply square matrices only.
	ErrNonSquare = errors.New("matmul: matrix is not square")

	// ErrDimensionMismatch indicates the two operands disagree in dimension.
	ErrDimensionMismatch = errors.New("matmul: operands differ in dimension")

	// ErrDegenerate indicates a 0×0 operand. Degenerate input is rejected
	// explicitly rather than producing an empty result.
	ErrDegenerate = errors.New("matmul: zero-dimension operand")

	// ErrNotPowerOfTwo is returned by Recursive and Strassen when n is not a
	// power of two. These two engines intentionally do not generalize; only
	// StrassenGeneralized accepts arbitrary n.
	ErrNotPowerOfTwo = errors.New("matmul: dimension is not a power of two")

	// ErrBadOptions indicates an Options value outside the valid range
	// (negative LeafSize or Workers).
	ErrBadOptions = errors.New("matmul: invalid options")
)
