// SPDX-License-Identifier: MIT
package matmul_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mnrn/matops/matmul"
	"github.com/mnrn/matops/matrix"
)

// constDense builds an n×n matrix with every entry set to v.
func constDense[T matrix.Number](t *testing.T, n int, v T) *matrix.Dense[T] {
	t.Helper()
	data := make([]T, n*n)
	for i := range data {
		data[i] = v
	}
	m, err := matrix.FromFlat(n, n, data)
	require.NoError(t, err)

	return m
}

// TestStrassenKnownProduct pins the 7-product engine on the shared 2×2 case.
func TestStrassenKnownProduct(t *testing.T) {
	a := mustFromRows(t, [][]int{{2, 1}, {5, 1}})
	b := mustFromRows(t, [][]int{{1, 1}, {1, 2}})

	c, err := matmul.Strassen(a, b, nil)
	require.NoError(t, err)
	require.True(t, matrix.Equal(c, mustFromRows(t, [][]int{{3, 4}, {6, 7}})))
}

// TestStrassenConstantFour: all-ones times all-twos on 4×4 gives all-eights,
// an easy hand check that exercises two full recursion levels.
func TestStrassenConstantFour(t *testing.T) {
	a := constDense(t, 4, 1)
	b := constDense(t, 4, 2)

	c, err := matmul.Strassen(a, b, nil)
	require.NoError(t, err)
	require.True(t, matrix.Equal(c, constDense(t, 4, 8)))
}

// TestStrassenCheckerboardSquare squares a 4×4 matrix of alternating ones
// and twos, compared entry-exact against the naive kernel.
func TestStrassenCheckerboardSquare(t *testing.T) {
	a := mustFromRows(t, [][]int{
		{1, 2, 1, 2},
		{2, 1, 2, 1},
		{1, 2, 1, 2},
		{2, 1, 2, 1},
	})

	want, err := matmul.Naive(a, a)
	require.NoError(t, err)

	got, err := matmul.Strassen(a, a, nil)
	require.NoError(t, err)
	require.True(t, matrix.Equal(got, want))
}

// TestStrassenMatchesNaive cross-checks against the naive kernel on every
// power-of-two size up to 16.
func TestStrassenMatchesNaive(t *testing.T) {
	rng := newRand()
	for _, n := range []int{1, 2, 4, 8, 16} {
		a := randIntDense(t, rng, n)
		b := randIntDense(t, rng, n)

		want, err := matmul.Naive(a, b)
		require.NoError(t, err)

		got, err := matmul.Strassen(a, b, nil)
		require.NoError(t, err)
		require.True(t, matrix.Equal(got, want), "n=%d", n)
	}
}

// TestStrassenLeafSizeSweep: the cutoff only moves work between the
// recursion and the naive kernel; the product must not change.
func TestStrassenLeafSizeSweep(t *testing.T) {
	rng := newRand()
	a := randIntDense(t, rng, 16)
	b := randIntDense(t, rng, 16)

	want, err := matmul.Naive(a, b)
	require.NoError(t, err)

	for _, leaf := range []int{1, 2, 4, 8, 16, 32} {
		got, err := matmul.Strassen(a, b, &matmul.Options{LeafSize: leaf})
		require.NoError(t, err)
		require.True(t, matrix.Equal(got, want), "LeafSize=%d", leaf)
	}
}

// TestStrassenIdentityAndZero pins the two algebraic anchors: A·I == A and
// A·0 == 0.
func TestStrassenIdentityAndZero(t *testing.T) {
	rng := newRand()
	a := randIntDense(t, rng, 8)
	id, err := matrix.Identity[int](8)
	require.NoError(t, err)
	zero, err := matrix.NewDense[int](8, 8)
	require.NoError(t, err)

	c, err := matmul.Strassen(a, id, nil)
	require.NoError(t, err)
	require.True(t, matrix.Equal(c, a))

	c, err = matmul.Strassen(id, a, nil)
	require.NoError(t, err)
	require.True(t, matrix.Equal(c, a))

	c, err = matmul.Strassen(a, zero, nil)
	require.NoError(t, err)
	require.True(t, matrix.Equal(c, zero))
}

// TestStrassenFloat runs the float64 instantiation against the naive kernel.
// The reduction reassociates additions, so comparison is tolerance-based.
func TestStrassenFloat(t *testing.T) {
	rng := newRand()
	a := randFloatDense(t, rng, 8)
	b := randFloatDense(t, rng, 8)

	want, err := matmul.Naive(a, b)
	require.NoError(t, err)

	got, err := matmul.Strassen(a, b, nil)
	require.NoError(t, err)
	require.True(t, matrix.AllClose(got, want, 1e-9))
}

// TestStrassenRejectsNonPowerOfTwo: the strict engine refuses sizes it
// cannot halve all the way down.
func TestStrassenRejectsNonPowerOfTwo(t *testing.T) {
	for _, n := range []int{3, 6} {
		a := sequentialDense(t, n)
		b := sequentialDense(t, n)

		_, err := matmul.Strassen(a, b, nil)
		require.ErrorIs(t, err, matmul.ErrNotPowerOfTwo, "n=%d", n)
	}
}

// TestStrassenValidation covers operand and option rejection.
func TestStrassenValidation(t *testing.T) {
	square := mustFromRows(t, [][]int{{1, 2}, {3, 4}})

	_, err := matmul.Strassen[int](nil, square, nil)
	require.ErrorIs(t, err, matmul.ErrNilMatrix)

	_, err = matmul.Strassen(degenerateDense(), degenerateDense(), nil)
	require.ErrorIs(t, err, matmul.ErrDegenerate)

	_, err = matmul.Strassen(square, sequentialDense(t, 4), nil)
	require.ErrorIs(t, err, matmul.ErrDimensionMismatch)

	_, err = matmul.Strassen(square, square, &matmul.Options{LeafSize: -1})
	require.ErrorIs(t, err, matmul.ErrBadOptions)

	_, err = matmul.Strassen(square, square, &matmul.Options{Workers: -2})
	require.ErrorIs(t, err, matmul.ErrBadOptions)
}

// TestStrassenOptionsUntouched: engines work on a copy, so the caller's
// struct keeps its zero fields after the call.
func TestStrassenOptionsUntouched(t *testing.T) {
	a := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	opts := &matmul.Options{}

	_, err := matmul.Strassen(a, a, opts)
	require.NoError(t, err)
	require.Nil(t, opts.Ctx)          // not filled in-place
	require.Zero(t, opts.LeafSize)    // not defaulted in-place
	require.Zero(t, opts.Workers)     // not defaulted in-place
}

// quadrants used by the white-box audits below. Values are arbitrary but
// distinct so a swapped operand cannot cancel out.
func auditQuadrants(t *testing.T) (a11, a12, a21, a22, b11, b12, b21, b22 *matrix.Dense[int]) {
	t.Helper()
	a11 = mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	a12 = mustFromRows(t, [][]int{{5, 6}, {7, 8}})
	a21 = mustFromRows(t, [][]int{{9, 10}, {11, 12}})
	a22 = mustFromRows(t, [][]int{{13, 14}, {15, 16}})
	b11 = mustFromRows(t, [][]int{{17, 18}, {19, 20}})
	b12 = mustFromRows(t, [][]int{{21, 22}, {23, 24}})
	b21 = mustFromRows(t, [][]int{{25, 26}, {27, 28}})
	b22 = mustFromRows(t, [][]int{{29, 30}, {31, 32}})

	return
}

// TestStrassenSumsIdentities recomputes each of the ten auxiliary sums
// independently and compares it to the helper's output, so a flipped sign
// or swapped quadrant is caught by name.
func TestStrassenSumsIdentities(t *testing.T) {
	a11, a12, a21, a22, b11, b12, b21, b22 := auditQuadrants(t)

	s, err := matmul.StrassenSums_TestOnly(a11, a12, a21, a22, b11, b12, b21, b22)
	require.NoError(t, err)

	add := func(x, y *matrix.Dense[int]) *matrix.Dense[int] {
		m, err := matrix.Add(x, y)
		require.NoError(t, err)
		return m
	}
	sub := func(x, y *matrix.Dense[int]) *matrix.Dense[int] {
		m, err := matrix.Sub(x, y)
		require.NoError(t, err)
		return m
	}

	require.True(t, matrix.Equal(s[0], sub(b12, b22)), "S1 = B12 - B22")
	require.True(t, matrix.Equal(s[1], add(a11, a12)), "S2 = A11 + A12")
	require.True(t, matrix.Equal(s[2], add(a21, a22)), "S3 = A21 + A22")
	require.True(t, matrix.Equal(s[3], sub(b21, b11)), "S4 = B21 - B11")
	require.True(t, matrix.Equal(s[4], add(a11, a22)), "S5 = A11 + A22")
	require.True(t, matrix.Equal(s[5], add(b11, b22)), "S6 = B11 + B22")
	require.True(t, matrix.Equal(s[6], sub(a12, a22)), "S7 = A12 - A22")
	require.True(t, matrix.Equal(s[7], add(b21, b22)), "S8 = B21 + B22")
	require.True(t, matrix.Equal(s[8], sub(a11, a21)), "S9 = A11 - A21")
	require.True(t, matrix.Equal(s[9], add(b11, b12)), "S10 = B11 + B12")
}

// TestStrassenTaskPairings checks, by pointer identity, that each product
// multiplies exactly the operands its formula names.
func TestStrassenTaskPairings(t *testing.T) {
	a11, a12, a21, a22, b11, b12, b21, b22 := auditQuadrants(t)

	s, err := matmul.StrassenSums_TestOnly(a11, a12, a21, a22, b11, b12, b21, b22)
	require.NoError(t, err)

	tasks := matmul.StrassenTasks_TestOnly(a11, a12, a21, a22, b11, b12, b21, b22, s)

	require.Same(t, a11, tasks[0][0]) // P1 = A11·S1
	require.Same(t, s[0], tasks[0][1])
	require.Same(t, s[1], tasks[1][0]) // P2 = S2·B22
	require.Same(t, b22, tasks[1][1])
	require.Same(t, s[2], tasks[2][0]) // P3 = S3·B11
	require.Same(t, b11, tasks[2][1])
	require.Same(t, a22, tasks[3][0]) // P4 = A22·S4
	require.Same(t, s[3], tasks[3][1])
	require.Same(t, s[4], tasks[4][0]) // P5 = S5·S6
	require.Same(t, s[5], tasks[4][1])
	require.Same(t, s[6], tasks[5][0]) // P6 = S7·S8
	require.Same(t, s[7], tasks[5][1])
	require.Same(t, s[8], tasks[6][0]) // P7 = S9·S10
	require.Same(t, s[9], tasks[6][1])
}

// TestStrassenCombineFormulas feeds constant products P_k = k·J so every
// output block must be the constant its formula evaluates to:
//
//	C11 = 5+4-2+6 = 13    C12 = 1+2 = 3
//	C21 = 3+4 = 7         C22 = 5+1-3-7 = -4
func TestStrassenCombineFormulas(t *testing.T) {
	var p [7]*matrix.Dense[int]
	for k := range p {
		p[k] = constDense(t, 2, k+1)
	}

	c11, c12, c21, c22, err := matmul.StrassenCombine_TestOnly(p)
	require.NoError(t, err)
	require.True(t, matrix.Equal(c11, constDense(t, 2, 13)), "C11 = P5 + P4 - P2 + P6")
	require.True(t, matrix.Equal(c12, constDense(t, 2, 3)), "C12 = P1 + P2")
	require.True(t, matrix.Equal(c21, constDense(t, 2, 7)), "C21 = P3 + P4")
	require.True(t, matrix.Equal(c22, constDense(t, 2, -4)), "C22 = P5 + P1 - P3 - P7")
}

// TestStrassenCombineShapeMismatch: a mismatched product propagates the
// elementwise shape error out of the combine step.
func TestStrassenCombineShapeMismatch(t *testing.T) {
	var p [7]*matrix.Dense[int]
	for k := range p {
		p[k] = constDense(t, 2, k+1)
	}
	p[1] = constDense(t, 3, 2) // P2 the wrong size

	_, _, _, _, err := matmul.StrassenCombine_TestOnly(p)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
