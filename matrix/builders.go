// SPDX-License-Identifier: MIT
// Package matrix: convenience constructors for Dense.
// All builders validate first, allocate second, and copy caller data so the
// resulting matrix never aliases its source.

package matrix

// FromRows builds a Dense from a slice of rows.
// Stage 1 (Validate): non-empty input, all rows of equal positive length.
// Stage 2 (Execute): allocate and copy row by row.
// Returns ErrBadShape for empty input and ErrRagged for uneven rows.
// Complexity: O(r*c) time and memory.
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])

	// Validate rectangularity before any allocation
	var i int
	for i = 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, ErrRagged
		}
	}

	m, err := NewDense[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	// Copy each row into the flat backing slice
	for i = 0; i < len(rows); i++ {
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// FromFlat builds a rows×cols Dense from row-major flat data.
// The data slice is copied, never aliased.
// Returns ErrBadShape when rows or cols is not positive or when
// len(data) != rows*cols.
// Complexity: O(r*c) time and memory.
func FromFlat[T Number](rows, cols int, data []T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, ErrBadShape
	}

	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	copy(m.data, data)

	return m, nil
}

// Identity builds the n×n identity matrix.
// Returns ErrBadShape when n is not positive.
// Complexity: O(n²) time and memory.
func Identity[T Number](n int) (*Dense[T], error) {
	m, err := NewDense[T](n, n)
	if err != nil {
		return nil, err
	}
	// Walk the main diagonal only; the rest is already zero
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}
