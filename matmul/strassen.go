// SPDX-License-Identifier: MIT
// Package matmul: the 7-product Strassen reduction.
// The identities below are the load-bearing algebra of the whole package;
// each sum, product pairing and output block is built by a named helper so
// the wiring stays auditable and individually testable.

package matmul

import "github.com/mnrn/matops/matrix"

// mulFunc is the recursion hook strassenStep multiplies half-size blocks
// with. Strassen feeds it its own recursion; StrassenGeneralized feeds the
// padding-aware variant through the same step.
type mulFunc[T matrix.Number] func(x, y *matrix.Dense[T]) (*matrix.Dense[T], error)

// quad bundles the four quadrants of one operand.
type quad[T matrix.Number] struct {
	q11, q12, q21, q22 *matrix.Dense[T]
}

// partitionQuad wraps matrix.Partition into a quad.
func partitionQuad[T matrix.Number](m *matrix.Dense[T]) (quad[T], error) {
	q11, q12, q21, q22, err := matrix.Partition(m)
	if err != nil {
		return quad[T]{}, err
	}

	return quad[T]{q11: q11, q12: q12, q21: q21, q22: q22}, nil
}

// strassenSums builds the ten auxiliary block sums of one reduction level:
//
//	S1 = B12 - B22    S2 = A11 + A12    S3 = A21 + A22    S4 = B21 - B11
//	S5 = A11 + A22    S6 = B11 + B22    S7 = A12 - A22    S8 = B21 + B22
//	S9 = A11 - A21    S10 = B11 + B12
//
// Returned in order: s[0] is S1 through s[9] is S10.
// Complexity: Θ(n²), ten half-size elementwise passes.
func strassenSums[T matrix.Number](aq, bq quad[T]) ([10]*matrix.Dense[T], error) {
	var (
		s   [10]*matrix.Dense[T]
		err error
	)
	// S1 = B12 - B22
	if s[0], err = matrix.Sub(bq.q12, bq.q22); err != nil {
		return s, err
	}
	// S2 = A11 + A12
	if s[1], err = matrix.Add(aq.q11, aq.q12); err != nil {
		return s, err
	}
	// S3 = A21 + A22
	if s[2], err = matrix.Add(aq.q21, aq.q22); err != nil {
		return s, err
	}
	// S4 = B21 - B11
	if s[3], err = matrix.Sub(bq.q21, bq.q11); err != nil {
		return s, err
	}
	// S5 = A11 + A22
	if s[4], err = matrix.Add(aq.q11, aq.q22); err != nil {
		return s, err
	}
	// S6 = B11 + B22
	if s[5], err = matrix.Add(bq.q11, bq.q22); err != nil {
		return s, err
	}
	// S7 = A12 - A22
	if s[6], err = matrix.Sub(aq.q12, aq.q22); err != nil {
		return s, err
	}
	// S8 = B21 + B22
	if s[7], err = matrix.Add(bq.q21, bq.q22); err != nil {
		return s, err
	}
	// S9 = A11 - A21
	if s[8], err = matrix.Sub(aq.q11, aq.q21); err != nil {
		return s, err
	}
	// S10 = B11 + B12
	if s[9], err = matrix.Add(bq.q11, bq.q12); err != nil {
		return s, err
	}

	return s, nil
}

// strassenTasks pairs each of the seven products with its operands:
//
//	P1 = A11·S1    P2 = S2·B22    P3 = S3·B11    P4 = A22·S4
//	P5 = S5·S6     P6 = S7·S8     P7 = S9·S10
func strassenTasks[T matrix.Number](aq, bq quad[T], s [10]*matrix.Dense[T]) [7]productTask[T] {
	return [7]productTask[T]{
		{x: aq.q11, y: s[0]}, // P1 = A11·S1
		{x: s[1], y: bq.q22}, // P2 = S2·B22
		{x: s[2], y: bq.q11}, // P3 = S3·B11
		{x: aq.q22, y: s[3]}, // P4 = A22·S4
		{x: s[4], y: s[5]},   // P5 = S5·S6
		{x: s[6], y: s[7]},   // P6 = S7·S8
		{x: s[8], y: s[9]},   // P7 = S9·S10
	}
}

// strassenCombine assembles the four output quadrants from the products:
//
//	C11 = P5 + P4 - P2 + P6
//	C12 = P1 + P2
//	C21 = P3 + P4
//	C22 = P5 + P1 - P3 - P7
//
// p[0] is P1 through p[6] is P7. Any deviation from these formulas is a
// correctness bug, not a style choice.
// Complexity: Θ(n²), eight half-size elementwise passes.
func strassenCombine[T matrix.Number](p [7]*matrix.Dense[T]) (quad[T], error) {
	var (
		cq  quad[T]
		t   *matrix.Dense[T]
		err error
	)
	// C11 = P5 + P4 - P2 + P6
	if t, err = matrix.Add(p[4], p[3]); err != nil {
		return cq, err
	}
	if t, err = matrix.Sub(t, p[1]); err != nil {
		return cq, err
	}
	if cq.q11, err = matrix.Add(t, p[5]); err != nil {
		return cq, err
	}
	// C12 = P1 + P2
	if cq.q12, err = matrix.Add(p[0], p[1]); err != nil {
		return cq, err
	}
	// C21 = P3 + P4
	if cq.q21, err = matrix.Add(p[2], p[3]); err != nil {
		return cq, err
	}
	// C22 = P5 + P1 - P3 - P7
	if t, err = matrix.Add(p[4], p[0]); err != nil {
		return cq, err
	}
	if t, err = matrix.Sub(t, p[2]); err != nil {
		return cq, err
	}
	if cq.q22, err = matrix.Sub(t, p[6]); err != nil {
		return cq, err
	}

	return cq, nil
}

// strassenStep runs one full reduction level on even-dimension operands:
// partition, ten sums, seven products through mul, recombination.
func strassenStep[T matrix.Number](a, b *matrix.Dense[T], o *Options, mul mulFunc[T]) (*matrix.Dense[T], error) {
	aq, err := partitionQuad(a)
	if err != nil {
		return nil, err
	}
	bq, err := partitionQuad(b)
	if err != nil {
		return nil, err
	}

	sums, err := strassenSums(aq, bq)
	if err != nil {
		return nil, err
	}

	prods, err := runProducts(o, mul, strassenTasks(aq, bq, sums))
	if err != nil {
		return nil, err
	}

	cq, err := strassenCombine(prods)
	if err != nil {
		return nil, err
	}

	return matrix.Combine(cq.q11, cq.q12, cq.q21, cq.q22)
}

// Strassen computes c = a·b with the 7-product reduction.
//
// Algorithm Outline:
//  1. Validate operands; n must be a power of two (ErrNotPowerOfTwo
//     otherwise — arbitrary sizes belong to StrassenGeneralized).
//  2. Resolve options (nil means defaults).
//  3. Recurse: at each node check cancellation, stop at LeafSize with the
//     naive kernel, otherwise run one reduction level whose seven products
//     recurse further down.
//
// Errors: ErrNilMatrix, ErrDegenerate, ErrNonSquare, ErrDimensionMismatch,
// ErrNotPowerOfTwo, ErrBadOptions, and the context error when opts.Ctx is
// canceled mid-flight.
// Complexity: Θ(n^log₂7) ≈ Θ(n^2.807) time, Θ(n² log n) transient space.
func Strassen[T matrix.Number](a, b *matrix.Dense[T], opts *Options) (*matrix.Dense[T], error) {
	n, err := validatePair(a, b)
	if err != nil {
		return nil, err
	}
	if !isPowerOfTwo(n) {
		return nil, ErrNotPowerOfTwo
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return strassenRec(a, b, o)
}

// strassenRec is the power-of-two recursion: every level stays even down to
// the leaf, so this path never pads.
func strassenRec[T matrix.Number](a, b *matrix.Dense[T], o *Options) (*matrix.Dense[T], error) {
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}
	if a.Rows() <= o.LeafSize {
		return matrix.Mul(a, b)
	}

	return strassenStep(a, b, o, func(x, y *matrix.Dense[T]) (*matrix.Dense[T], error) {
		return strassenRec(x, y, o)
	})
}
