// SPDX-License-Identifier: MIT

// Package matrix offers a dense, row-major numeric container and the
// structural primitives used by the block-recursive multiplication engines.
//
// The matrix package provides:
//
//   - Dense[T], a generic row-major grid over signed integer or floating
//     point element types, with bounds-checked accessors and deep Clone.
//   - Elementwise kernels Add and Sub, and the classic triple-loop product
//     Mul, all fail-fast on dimension mismatches.
//   - Block primitives: Submatrix and SetBlock window copies, quadrant
//     Partition and Combine, PadEven and Truncate for odd-dimension
//     handling at recursion boundaries.
//   - Lightweight converters (ToGonum, FromGonum) for exporting matrices to
//     external linear-algebra routines.
//
// Dense is best for small or moderate n where O(n²) memory and materialized
// block copies are acceptable; all block primitives copy rather than alias,
// so callers may treat every returned matrix as independent.
//
// See the matmul package for the multiplication algorithms built on these
// primitives.
package matrix
