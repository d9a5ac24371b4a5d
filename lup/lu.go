// SPDX-License-Identifier: MIT
// Package lup: Doolittle LU decomposition without pivoting.
package lup

import (
	"fmt"

	"github.com/mnrn/matops/matrix"
)

// validateSquare checks the shared input contract of both factorizations
// and returns the system's order.
func validateSquare(m *matrix.Dense[float64], op string) (int, error) {
	if m == nil {
		return 0, fmt.Errorf("%s: %w", op, ErrNilMatrix)
	}
	if m.Rows() == 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrDegenerate)
	}
	if !m.IsSquare() {
		return 0, fmt.Errorf("%s: %dx%d: %w", op, m.Rows(), m.Cols(), ErrNonSquare)
	}

	return m.Rows(), nil
}

// LU performs Doolittle LU decomposition on a square matrix m.
// It returns L (unit lower triangular) and U (upper triangular) with
// m = L·U. The input is not modified.
//
// Without row exchanges a zero pivot stops the elimination even for some
// invertible inputs (the classic [[0,1],[1,0]] case); use Decompose when the
// leading principal minors are not known to be nonzero.
// Errors: ErrNilMatrix, ErrDegenerate, ErrNonSquare, ErrSingular.
// Complexity: O(n³) time, O(n²) memory for L and U.
func LU(m *matrix.Dense[float64]) (*matrix.Dense[float64], *matrix.Dense[float64], error) {
	// Stage 1: Validate input is square.
	n, err := validateSquare(m, "LU")
	if err != nil {
		return nil, nil, err
	}

	// Stage 2: Prepare L and U matrices.
	l, err := matrix.NewDense[float64](n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	u, err := matrix.NewDense[float64](n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("LU: %w", err)
	}
	var i int
	// Initialize L diagonal to 1 (unit lower triangular)
	for i = 0; i < n; i++ {
		_ = l.Set(i, i, 1)
	}

	// Stage 3: Execute the elimination.
	var (
		j, k       int     // loop indices
		sum        float64 // accumulator for dot products
		lVal, uVal float64
		aVal       float64 // holds m[i][j] or m[j][i]
		pivot      float64 // diagonal element of U
	)
	for i = 0; i < n; i++ {
		// Compute U's row i for columns j >= i
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ { // sum L[i][k]*U[k][j]
				lVal, _ = l.At(i, k)
				uVal, _ = u.At(k, j)
				sum += lVal * uVal
			}
			aVal, _ = m.At(i, j)
			_ = u.Set(i, j, aVal-sum)
		}
		pivot, _ = u.At(i, i)
		if pivot == 0 {
			return nil, nil, fmt.Errorf("LU: zero pivot at column %d: %w", i, ErrSingular)
		}
		// Compute L's column i for rows j > i
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ { // sum L[j][k]*U[k][i]
				lVal, _ = l.At(j, k)
				uVal, _ = u.At(k, i)
				sum += lVal * uVal
			}
			aVal, _ = m.At(j, i)
			// set L[j][i] = (m[j][i] - sum) / U[i][i]
			_ = l.Set(j, i, (aVal-sum)/pivot)
		}
	}

	// Stage 4: Finalize and return.
	return l, u, nil
}
