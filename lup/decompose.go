// SPDX-License-Identifier: MIT
// Package lup: LUP decomposition with partial pivoting, plus solving and
// determinants on the factored form.
package lup

import (
	"fmt"
	"math"

	"github.com/mnrn/matops/matrix"
)

// Factorization is the result of Decompose: a packed row-permuted copy with
// L strictly below the diagonal (unit diagonal implied) and U on and above
// it, so P·A = L·U.
type Factorization struct {
	lu    *matrix.Dense[float64] // packed L\U, rows already permuted
	perm  []int                  // perm[i] = input row now sitting at row i
	swaps int                    // row exchanges performed, for the determinant sign
}

// Decompose factors a square matrix with partial pivoting: for every column
// the largest-magnitude candidate on or below the diagonal becomes the
// pivot. The input is not modified; elimination runs on a clone.
//
// Pivoting exists to avoid dividing by zero (or by a tiny value that would
// amplify rounding); it succeeds on every invertible matrix, unlike LU.
// Errors: ErrNilMatrix, ErrDegenerate, ErrNonSquare, ErrSingular.
// Complexity: Θ(n³) time, Θ(n²) memory for the packed copy.
func Decompose(m *matrix.Dense[float64]) (*Factorization, error) {
	// Stage 1: Validate input is square.
	n, err := validateSquare(m, "Decompose")
	if err != nil {
		return nil, err
	}

	// Stage 2: Prepare — clone the input, start from the identity permutation.
	lu := m.Clone()
	perm := make([]int, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		perm[i] = i
	}

	// Stage 3: Execute — pick pivots, swap rows, eliminate below the pivot
	// (Schur complement update, written back into the packed copy).
	var (
		swaps    int
		best, v  float64 // best pivot magnitude so far and current candidate
		kp       int     // row of the best candidate, -1 when the column is zero
		pivot    float64
		lik      float64
		aij, ukj float64
	)
	for k = 0; k < n; k++ {
		best, kp = 0, -1
		for i = k; i < n; i++ {
			v, _ = lu.At(i, k)
			if math.Abs(v) > best {
				best = math.Abs(v)
				kp = i
			}
		}
		if kp < 0 {
			return nil, fmt.Errorf("Decompose: pivot column %d is zero: %w", k, ErrSingular)
		}
		if kp != k {
			perm[k], perm[kp] = perm[kp], perm[k]
			swapRows(lu, k, kp)
			swaps++
		}
		pivot, _ = lu.At(k, k)
		for i = k + 1; i < n; i++ {
			lik, _ = lu.At(i, k)
			lik /= pivot
			_ = lu.Set(i, k, lik) // multiplier becomes L[i][k]
			for j = k + 1; j < n; j++ {
				aij, _ = lu.At(i, j)
				ukj, _ = lu.At(k, j)
				_ = lu.Set(i, j, aij-lik*ukj)
			}
		}
	}

	// Stage 4: Finalize and return.
	return &Factorization{lu: lu, perm: perm, swaps: swaps}, nil
}

// swapRows exchanges rows a and b of m in place.
func swapRows(m *matrix.Dense[float64], a, b int) {
	var va, vb float64
	for j := 0; j < m.Cols(); j++ {
		va, _ = m.At(a, j)
		vb, _ = m.At(b, j)
		_ = m.Set(a, j, vb)
		_ = m.Set(b, j, va)
	}
}

// Solve returns x with A·x = b for the factored A, combining forward
// substitution (L·y = P·b) with back substitution (U·x = y).
// Errors: ErrDimensionMismatch when len(b) differs from the system's order.
// Complexity: Θ(n²).
func (f *Factorization) Solve(b []float64) ([]float64, error) {
	n := f.lu.Rows()
	if len(b) != n {
		return nil, fmt.Errorf("Solve: len(b)=%d, want %d: %w", len(b), n, ErrDimensionMismatch)
	}

	y := make([]float64, n)
	x := make([]float64, n)
	var (
		i, j          int
		sigma         float64
		lij, uij, uii float64
	)
	// Forward substitution: y[i] = (P·b)[i] - Σ_{j<i} L[i][j]·y[j].
	for i = 0; i < n; i++ {
		sigma = 0
		for j = 0; j < i; j++ {
			lij, _ = f.lu.At(i, j)
			sigma += lij * y[j]
		}
		y[i] = b[f.perm[i]] - sigma
	}
	// Back substitution: x[i] = (y[i] - Σ_{j>i} U[i][j]·x[j]) / U[i][i].
	for i = n - 1; i >= 0; i-- {
		sigma = 0
		for j = i + 1; j < n; j++ {
			uij, _ = f.lu.At(i, j)
			sigma += uij * x[j]
		}
		uii, _ = f.lu.At(i, i)
		x[i] = (y[i] - sigma) / uii
	}

	return x, nil
}

// Det returns the determinant of the factored matrix: the product of U's
// diagonal, negated once per row exchange.
// Complexity: Θ(n).
func (f *Factorization) Det() float64 {
	det := 1.0
	if f.swaps%2 == 1 {
		det = -1
	}
	var uii float64
	for i := 0; i < f.lu.Rows(); i++ {
		uii, _ = f.lu.At(i, i)
		det *= uii
	}

	return det
}

// Order returns n, the dimension of the factored system.
func (f *Factorization) Order() int {
	return f.lu.Rows()
}

// Perm returns a copy of the row permutation: row i of the factorization
// came from input row Perm()[i].
func (f *Factorization) Perm() []int {
	out := make([]int, len(f.perm))
	copy(out, f.perm)

	return out
}

// L extracts the unit lower triangular factor from the packed form.
// Complexity: Θ(n²).
func (f *Factorization) L() *matrix.Dense[float64] {
	n := f.lu.Rows()
	l, _ := matrix.NewDense[float64](n, n) // n ≥ 1 by construction
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			v, _ = f.lu.At(i, j)
			_ = l.Set(i, j, v)
		}
		_ = l.Set(i, i, 1)
	}

	return l
}

// U extracts the upper triangular factor from the packed form.
// Complexity: Θ(n²).
func (f *Factorization) U() *matrix.Dense[float64] {
	n := f.lu.Rows()
	u, _ := matrix.NewDense[float64](n, n) // n ≥ 1 by construction
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v, _ = f.lu.At(i, j)
			_ = u.Set(i, j, v)
		}
	}

	return u
}

// Inverse returns A⁻¹ for the factored A, assembled column by column: for
// each identity column e, the solution of A·x = e is the matching column of
// the inverse. The pivots are nonzero because the factorization exists, so
// no division can fail here.
// Complexity: Θ(n³) time (n substitution passes), Θ(n²) memory.
func (f *Factorization) Inverse() (*matrix.Dense[float64], error) {
	n := f.lu.Rows()
	inv, err := matrix.NewDense[float64](n, n)
	if err != nil {
		return nil, fmt.Errorf("Inverse: %w", err)
	}

	e := make([]float64, n)
	var i, j int
	for j = 0; j < n; j++ {
		e[j] = 1
		col, err := f.Solve(e)
		if err != nil {
			return nil, fmt.Errorf("Inverse: %w", err)
		}
		e[j] = 0
		for i = 0; i < n; i++ {
			_ = inv.Set(i, j, col[i])
		}
	}

	return inv, nil
}
