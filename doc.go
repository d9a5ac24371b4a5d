// Package matops is a compact toolbox for exact and fast dense matrix
// multiplication — from the textbook triple loop to Strassen's 7-product
// scheme on matrices of any square dimension.
//
// 🚀 What is matops?
//
//	A generic, dependency-light library that brings together:
//		• Dense[T] containers: row-major generic matrices over ints & floats
//		• Block primitives: partition, combine, pad, truncate, submatrix
//		• Engines: Naive, NaiveParallel, Recursive (8 products),
//		  Strassen (7 products), StrassenGeneralized (any n, via padding)
//		• Factorizations: LU (Doolittle) and LUP (partial pivoting),
//		  with solving, determinants and inversion
//		• gonum bridges: convert Dense[float64] to and from mat.Dense
//
// ✨ Why choose matops?
//
//   - Exact semantics – integer matrices multiply without rounding
//   - Explicit contracts – sentinel errors for every misuse, no panics
//   - Tunable recursion – leaf-size cutoff and bounded worker fan-out
//   - Pure Go – generics, no cgo
//
// Everything is organized under three subpackages:
//
//	matrix/ — Dense[T] container, elementwise kernels & block primitives
//	matmul/ — the five multiplication engines + Options
//	lup/    — LU/LUP factorization, linear solving, determinants, inverses
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	c, err := matmul.StrassenGeneralized(a, a, nil)
//
//	go get github.com/mnrn/matops
package matops
