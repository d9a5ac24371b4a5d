// SPDX-License-Identifier: MIT

// Package matrix: element-type constraints shared by the dense container and
// its kernels. This file intentionally contains ONLY type sets; sentinel
// errors live in errors.go per the package conventions.
package matrix

// Integer is the type set of built-in signed integer element types.
// Unsigned types are excluded: the block-recursive engines subtract whole
// blocks (Strassen's S-terms), which requires negation-closed arithmetic.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float is the type set of built-in floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Number is the full set of element types a Dense may carry.
// Integer instantiations obey exact arithmetic; Float instantiations follow
// IEEE-754 rounding, so equality checks on float results should go through
// AllClose rather than Equal.
type Number interface {
	Integer | Float
}
