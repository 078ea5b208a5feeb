// SPDX-License-Identifier: MIT
// Package matrix: closed-walk counts.

package matrix

import "fmt"

// WalkTraces returns tr(A^1), ..., tr(A^k). For a 0/1 adjacency matrix,
// tr(A²) = 2·|E| and tr(A³) = 6·triangles.
//
// Errors: ErrInvalidDimensions if k < 1, plus Mul/Trace validation errors.
// Complexity: O(k·n^3).
func WalkTraces(m *Dense, k int) ([]float64, error) {
	if k < 1 {
		return nil, matrixErrorf(opWalks, fmt.Errorf("k=%d: %w", k, ErrInvalidDimensions))
	}
	if m == nil {
		return nil, matrixErrorf(opWalks, ErrNilMatrix)
	}
	out := make([]float64, 0, k)
	power := m.Clone()
	for step := 1; ; step++ {
		t, err := Trace(power)
		if err != nil {
			return nil, matrixErrorf(opWalks, err)
		}
		out = append(out, t)
		if step == k {
			return out, nil
		}
		if power, err = Mul(power, m); err != nil {
			return nil, matrixErrorf(opWalks, err)
		}
	}
}
