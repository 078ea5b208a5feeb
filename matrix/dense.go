// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf attaches method context and coordinates to a sentinel error.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions if rows<=0 or cols<=0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// inBounds reports whether (i,j) is a valid coordinate.
func (m *Dense) inBounds(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At returns the element at (i,j), or ErrOutOfRange.
func (m *Dense) At(i, j int) (float64, error) {
	if !m.inBounds(i, j) {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	return m.data[i*m.c+j], nil
}

// Set assigns v at (i,j). Non-finite values are rejected with ErrNaNInf.
func (m *Dense) Set(i, j int, v float64) error {
	if !m.inBounds(i, j) {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[i*m.c+j] = v
	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}

// String renders one bracketed row per line with %g entries.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

// ValidateSymmetric checks that m is non-nil, square and |A[i,j]-A[j,i]| <= tol.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tol), ErrAsymmetry.
// Complexity: O(n^2).
func ValidateSymmetric(m *Dense, tol float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return ErrDimensionMismatch
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return ErrNaNInf
	}
	tol = math.Abs(tol)
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return fmt.Errorf("(%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}
	return nil
}
