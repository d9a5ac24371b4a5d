// SPDX-License-Identifier: MIT
// Test bridge (white-box) for the named reduction steps.
// Exposes the unexported sum/pairing/combine helpers to matmul_test so each
// Strassen identity can be pinned on its own, without widening the prod API.
// Being a _test.go file in package matmul, the bridge is invisible outside
// test builds.

package matmul

import "github.com/mnrn/matops/matrix"

// StrassenSums_TestOnly runs strassenSums on explicit quadrants,
// returning S1..S10 as s[0]..s[9].
func StrassenSums_TestOnly(
	a11, a12, a21, a22,
	b11, b12, b21, b22 *matrix.Dense[int],
) ([10]*matrix.Dense[int], error) {
	return strassenSums(
		quad[int]{q11: a11, q12: a12, q21: a21, q22: a22},
		quad[int]{q11: b11, q12: b12, q21: b21, q22: b22},
	)
}

// StrassenTasks_TestOnly exposes the seven product pairings in P1..P7 order;
// each entry holds the {x, y} operands of one product.
func StrassenTasks_TestOnly(
	a11, a12, a21, a22,
	b11, b12, b21, b22 *matrix.Dense[int],
	s [10]*matrix.Dense[int],
) [7][2]*matrix.Dense[int] {
	tasks := strassenTasks(
		quad[int]{q11: a11, q12: a12, q21: a21, q22: a22},
		quad[int]{q11: b11, q12: b12, q21: b21, q22: b22},
		s,
	)

	var out [7][2]*matrix.Dense[int]
	for i := range tasks {
		out[i] = [2]*matrix.Dense[int]{tasks[i].x, tasks[i].y}
	}

	return out
}

// StrassenCombine_TestOnly runs strassenCombine on explicit products
// p[0]..p[6] = P1..P7 and returns the four output quadrants.
func StrassenCombine_TestOnly(p [7]*matrix.Dense[int]) (c11, c12, c21, c22 *matrix.Dense[int], err error) {
	cq, err := strassenCombine(p)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return cq.q11, cq.q12, cq.q21, cq.q22, nil
}
