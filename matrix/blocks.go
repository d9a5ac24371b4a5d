// SPDX-License-Identifier: MIT
// Package matrix: block primitives for the divide-and-conquer engines.
// Submatrix and SetBlock are the two window-copy kernels; Partition, Combine,
// PadEven and Truncate are thin, validated compositions of them. Every
// primitive copies — no returned matrix aliases its parent (PadEven returns
// the original only in its documented no-op case).

package matrix

// Submatrix copies the rows×cols window of m anchored at (r0, c0).
// Stage 1 (Validate): non-nil m, positive window, window inside m.
// Stage 2 (Execute): row-wise copy of flat segments.
// Errors: ErrNilMatrix, ErrBadShape (window not positive), ErrOutOfRange
// (window escapes m).
// Complexity: O(rows*cols).
func Submatrix[T Number](m *Dense[T], r0, c0, rows, cols int) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opSubmatrix, ErrNilMatrix)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opSubmatrix, ErrBadShape)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, matrixErrorf(opSubmatrix, ErrOutOfRange)
	}

	out, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	// Copy one contiguous flat segment per row
	var i int
	for i = 0; i < rows; i++ {
		src := (r0+i)*m.c + c0
		copy(out.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return out, nil
}

// SetBlock writes src into dst with its top-left corner at (r0, c0).
// The inverse of Submatrix; dst is mutated, src is not.
// Errors: ErrNilMatrix, ErrOutOfRange (src does not fit at the anchor).
// Complexity: O(src.Rows*src.Cols).
func SetBlock[T Number](dst *Dense[T], r0, c0 int, src *Dense[T]) error {
	if dst == nil || src == nil {
		return matrixErrorf(opSetBlock, ErrNilMatrix)
	}
	if r0 < 0 || c0 < 0 || r0+src.r > dst.r || c0+src.c > dst.c {
		return matrixErrorf(opSetBlock, ErrOutOfRange)
	}

	var i int
	for i = 0; i < src.r; i++ {
		tgt := (r0+i)*dst.c + c0
		copy(dst.data[tgt:tgt+src.c], src.data[i*src.c:(i+1)*src.c])
	}

	return nil
}

// Partition splits a square, even-dimension matrix into its four quadrants:
//
//	m11 = rows [0,n/2) × cols [0,n/2)    m12 = rows [0,n/2) × cols [n/2,n)
//	m21 = rows [n/2,n) × cols [0,n/2)    m22 = rows [n/2,n) × cols [n/2,n)
//
// The quadrants tile m exactly, with no overlap and no gap, and are
// materialized copies so later block sums can treat them as plain matrices.
// Odd input is refused (ErrOddDimension) rather than silently floored; route
// odd sizes through PadEven first.
// Errors: ErrNilMatrix, ErrBadShape (n == 0), ErrNonSquare, ErrOddDimension.
// Complexity: O(n²).
func Partition[T Number](m *Dense[T]) (m11, m12, m21, m22 *Dense[T], err error) {
	if m == nil {
		return nil, nil, nil, nil, matrixErrorf(opPartition, ErrNilMatrix)
	}
	if m.r == 0 {
		return nil, nil, nil, nil, matrixErrorf(opPartition, ErrBadShape)
	}
	if !m.IsSquare() {
		return nil, nil, nil, nil, matrixErrorf(opPartition, ErrNonSquare)
	}
	if m.r%2 != 0 {
		return nil, nil, nil, nil, matrixErrorf(opPartition, ErrOddDimension)
	}

	half := m.r / 2
	if m11, err = Submatrix(m, 0, 0, half, half); err != nil {
		return nil, nil, nil, nil, matrixErrorf(opPartition, err)
	}
	if m12, err = Submatrix(m, 0, half, half, half); err != nil {
		return nil, nil, nil, nil, matrixErrorf(opPartition, err)
	}
	if m21, err = Submatrix(m, half, 0, half, half); err != nil {
		return nil, nil, nil, nil, matrixErrorf(opPartition, err)
	}
	if m22, err = Submatrix(m, half, half, half, half); err != nil {
		return nil, nil, nil, nil, matrixErrorf(opPartition, err)
	}

	return m11, m12, m21, m22, nil
}

// Combine reassembles four equally shaped blocks into one matrix, the exact
// inverse of Partition:
//
//	c = | c11 c12 |
//	    | c21 c22 |
//
// Internal callers always pass matching shapes; the function still validates
// so the primitive is safe standalone.
// Errors: ErrNilMatrix, ErrDimensionMismatch (blocks disagree in shape).
// Complexity: O(n²).
func Combine[T Number](c11, c12, c21, c22 *Dense[T]) (*Dense[T], error) {
	blocks := [4]*Dense[T]{c11, c12, c21, c22}
	for _, blk := range blocks {
		if blk == nil {
			return nil, matrixErrorf(opCombine, ErrNilMatrix)
		}
		if blk.r != c11.r || blk.c != c11.c {
			return nil, matrixErrorf(opCombine, ErrDimensionMismatch)
		}
	}

	out, err := NewDense[T](2*c11.r, 2*c11.c)
	if err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	// Paste quadrants at their anchors
	if err = SetBlock(out, 0, 0, c11); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	if err = SetBlock(out, 0, c11.c, c12); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	if err = SetBlock(out, c11.r, 0, c21); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}
	if err = SetBlock(out, c11.r, c11.c, c22); err != nil {
		return nil, matrixErrorf(opCombine, err)
	}

	return out, nil
}

// PadEven extends an odd-dimension square matrix with one zero row and one
// zero column, reporting whether padding happened. Even input is returned
// unchanged (same pointer, flag false) so even levels of a recursion pay
// nothing; the caller owns the original n and truncates the result back.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²) when padding, O(1) otherwise.
func PadEven[T Number](m *Dense[T]) (*Dense[T], bool, error) {
	if m == nil {
		return nil, false, matrixErrorf(opPad, ErrNilMatrix)
	}
	if !m.IsSquare() {
		return nil, false, matrixErrorf(opPad, ErrNonSquare)
	}
	if m.r%2 == 0 {
		return m, false, nil // already even, nothing to do
	}

	padded, err := NewDense[T](m.r+1, m.c+1)
	if err != nil {
		return nil, false, matrixErrorf(opPad, err)
	}
	// Zero row and column come free from the zeroed allocation
	if err = SetBlock(padded, 0, 0, m); err != nil {
		return nil, false, matrixErrorf(opPad, err)
	}

	return padded, true, nil
}

// Truncate copies the leading rows×cols window of m, discarding trailing
// rows and columns. Used to strip the padding row/column after a padded
// product returns.
// Errors: ErrNilMatrix, ErrBadShape (window not positive or exceeding m).
// Complexity: O(rows*cols).
func Truncate[T Number](m *Dense[T], rows, cols int) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opTruncate, ErrNilMatrix)
	}
	if rows <= 0 || cols <= 0 || rows > m.r || cols > m.c {
		return nil, matrixErrorf(opTruncate, ErrBadShape)
	}

	out, err := Submatrix(m, 0, 0, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTruncate, err)
	}

	return out, nil
}
