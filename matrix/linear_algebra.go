// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels on *Dense.
//
// Purpose:
//   - Matrix product and trace for closed-walk counts.
//   - Symmetric eigen decomposition by classical Jacobi rotations.
//
// Notes:
//   - All kernels validate their inputs first and wrap failures via matrixErrorf.
//   - Loop orders are fixed, so identical inputs give bit-identical outputs.

package matrix

import (
	"fmt"
	"math"
)

// DefaultMaxIter is the rotation cap used when callers pass maxIter <= 0.
// A 40×40 0/1 adjacency converges to 1e-10 in roughly a thousand rotations.
const DefaultMaxIter = 100000

// Mul returns a×b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r*k*c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		aik     float64
	)
	// i→k→j keeps the inner loop on contiguous rows of b and out.
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}
	return out, nil
}

// Trace returns the sum of the diagonal of a square matrix.
func Trace(m *Dense) (float64, error) {
	if m == nil {
		return 0, matrixErrorf(opTrace, ErrNilMatrix)
	}
	if m.r != m.c {
		return 0, matrixErrorf(opTrace, ErrDimensionMismatch)
	}
	var t float64
	for i := 0; i < m.r; i++ {
		t += m.data[i*m.c+i]
	}
	return t, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and apply a rotation
//     zeroing it; accumulate rotations into Q.
//   - Stage 3: Fail unless the largest off-diagonal entry is below tol.
//
// Inputs:
//   - m: symmetric matrix (within tol); m is not modified.
//   - tol: convergence threshold (typ. 1e-9..1e-12 for float64).
//   - maxIter: cap on rotations; <= 0 selects DefaultMaxIter.
//
// Returns:
//   - []float64: eigenvalues in diagonal order (unsorted).
//   - *Dense: Q whose columns are the matching eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrNaNInf (from ValidateSymmetric).
//   - ErrMatrixEigenFailed (max off-diagonal >= tol after maxIter).
//
// Complexity:
//   - Time O(maxIter * n^2), Space O(n^2).
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	n := m.r
	a := m.Clone()
	q, err := Identity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		iter, i, p, qq     int
		maxOff             float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff, p, qq = maxOffDiagonal(a)
		if maxOff < tol {
			break
		}

		app = a.data[p*n+p]
		aqq = a.data[qq*n+qq]
		apq = a.data[p*n+qq]

		// θ = (aqq−app)/(2*apq); t = sign(θ)/(|θ|+√(θ²+1)); c = 1/√(1+t²); s = t*c
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == qq {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+qq]
			a.data[i*n+p] = c*aip - s*aiq
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+qq] = s*aip + c*aiq
			a.data[qq*n+i] = a.data[i*n+qq]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[qq*n+qq] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+qq], a.data[qq*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qiq = q.data[i*n+qq]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+qq] = s*qip + c*qiq
		}
	}

	if maxOff, _, _ = maxOffDiagonal(a); maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen,
			fmt.Errorf("off-diagonal %g after %d rotations: %w", maxOff, maxIter, ErrMatrixEigenFailed))
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}
	return eigs, q, nil
}

// maxOffDiagonal returns the largest |A[i,j]|, i<j, and its first position
// in i→j order.
func maxOffDiagonal(a *Dense) (float64, int, int) {
	n := a.r
	var (
		best, off float64
		p, q      int
	)
	for i := 0; i < n; i++ {
		base := i * n
		for j := i + 1; j < n; j++ {
			off = math.Abs(a.data[base+j])
			if off > best {
				best, p, q = off, i, j
			}
		}
	}
	return best, p, q
}
