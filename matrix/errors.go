// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All routines return these sentinels (possibly wrapped with an operation
// tag) and tests match them with errors.Is. Nothing here panics on user
// input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Mul
	// where a.Cols != b.Rows, or a non-square input to Eigen.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric is not,
	// within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil matrix or adjacency was passed in.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrMatrixEigenFailed indicates that the Jacobi routine did not converge
	// under the given tolerance and iteration cap.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrSpectrumMismatch reports a spectrum that differs from the expected
	// one, or that fails the trace identities.
	ErrSpectrumMismatch = errors.New("matrix: spectrum mismatch")
)

// Operation tags for matrixErrorf.
const (
	opMul      = "Mul"
	opTrace    = "Trace"
	opEigen    = "Eigen"
	opSpectrum = "Spectrum"
	opWalks    = "WalkTraces"
	opBuild    = "BuildAdjacency"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w. Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
