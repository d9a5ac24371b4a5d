// SPDX-License-Identifier: MIT
// Package matmul_test contains shared test fixtures and helpers.
//
// Purpose:
//   - Deterministic random matrices (fixed seed, same sequence on every run).
//   - Small construction helpers so table cases stay readable.

package matmul_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mnrn/matops/matrix"
)

// testSeed is the fixed seed for every deterministic RNG in this package.
// The value is arbitrary but stable to keep runs reproducible.
const testSeed int64 = 1

// newRand returns a deterministic *rand.Rand for one test.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(testSeed))
}

// mustFromRows builds a Dense from rows or fails the test.
func mustFromRows[T matrix.Number](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// randIntDense builds an n×n integer matrix with entries in [-9, 9].
func randIntDense(t *testing.T, rng *rand.Rand, n int) *matrix.Dense[int] {
	t.Helper()
	data := make([]int, n*n)
	for i := range data {
		data[i] = rng.Intn(19) - 9
	}
	m, err := matrix.FromFlat(n, n, data)
	require.NoError(t, err)

	return m
}

// randFloatDense builds an n×n float64 matrix with entries in [-1, 1).
func randFloatDense(t *testing.T, rng *rand.Rand, n int) *matrix.Dense[float64] {
	t.Helper()
	data := make([]float64, n*n)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.FromFlat(n, n, data)
	require.NoError(t, err)

	return m
}

// sequentialDense builds an n×n integer matrix with values 0..n²-1 row-major.
func sequentialDense(t *testing.T, n int) *matrix.Dense[int] {
	t.Helper()
	data := make([]int, n*n)
	for i := range data {
		data[i] = i
	}
	m, err := matrix.FromFlat(n, n, data)
	require.NoError(t, err)

	return m
}

// degenerateDense returns a 0×0 matrix, which no public constructor builds;
// engines must still reject it explicitly.
func degenerateDense() *matrix.Dense[int] {
	return new(matrix.Dense[int])
}
