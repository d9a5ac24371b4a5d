// SPDX-License-Identifier: MIT

// Package lup provides LU and LUP factorizations of square float64 matrices,
// with substitution solving, determinants and inversion on top.
//
// LU is plain Doolittle elimination and fails on any zero pivot. Decompose
// adds partial pivoting: the largest-magnitude candidate in each column
// becomes the pivot and the row exchanges are recorded in a permutation
// vector, which handles every invertible system and keeps the elimination
// numerically stable. The factored form is packed: L sits strictly below the
// diagonal (its unit diagonal is implied), U on and above it.
//
// The package is float64-only: elimination divides by pivots, which has no
// exact meaning for integer matrices.
package lup
