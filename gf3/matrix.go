// SPDX-License-Identifier: MIT
// Package: w33/gf3
//
// matrix.go - 4×4 matrices over GF(3) acting on projective points.
//
// These supply explicit generators for the automorphism group of W(3,3):
// the symplectic transvections x ↦ x + ω(x,v)·v generate Sp(4,3), and the
// similitude diag(1,1,2,2) (multiplier -1) extends PSp(4,3) to the full
// collinearity-preserving group PGSp(4,3) of order 51840.

package gf3

import "errors"

// ErrNotSimilitude reports a matrix that does not scale ω by a nonzero constant.
var ErrNotSimilitude = errors.New("gf3: matrix is not a symplectic similitude")

// Matrix is a 4×4 matrix over GF(3), indexed [row][col].
type Matrix [Dim][Dim]Elem

// Identity returns the 4×4 identity matrix.
func Identity() Matrix {
	var m Matrix
	for i := 0; i < Dim; i++ {
		m[i][i] = 1
	}
	return m
}

// MulVec returns m·v without canonicalization.
func (m Matrix) MulVec(v Point) Point {
	var out Point
	for i := 0; i < Dim; i++ {
		s := 0
		for j := 0; j < Dim; j++ {
			s += int(m[i][j]) * int(v[j])
		}
		out[i] = E(s)
	}
	return out
}

// Apply maps a projective point through m. ok is false when m sends p to
// the zero vector (m singular).
func (m Matrix) Apply(p Point) (Point, bool) {
	return Canonical(m.MulVec(p))
}

// Mul returns the product m·n.
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			s := 0
			for k := 0; k < Dim; k++ {
				s += int(m[i][k]) * int(n[k][j])
			}
			out[i][j] = E(s)
		}
	}
	return out
}

// basis returns the i-th standard basis vector.
func basis(i int) Point {
	var e Point
	e[i] = 1
	return e
}

// Multiplier returns λ with ω(mx,my) = λ·ω(x,y) for all x,y, or
// ErrNotSimilitude if no nonzero λ exists.
func (m Matrix) Multiplier() (Elem, error) {
	// ω(e0,e2) = 1, so λ is read off that pair and checked on the rest.
	lambda := Symplectic(m.MulVec(basis(0)), m.MulVec(basis(2)))
	if lambda == 0 {
		return 0, ErrNotSimilitude
	}
	for i := 0; i < Dim; i++ {
		for j := i + 1; j < Dim; j++ {
			ei, ej := basis(i), basis(j)
			if Symplectic(m.MulVec(ei), m.MulVec(ej)) != Mul(lambda, Symplectic(ei, ej)) {
				return 0, ErrNotSimilitude
			}
		}
	}
	return lambda, nil
}

// Transvection returns the symplectic transvection along v: x ↦ x + ω(x,v)·v.
func Transvection(v Point) Matrix {
	// ω(x,v) as a row functional: (v2, v3, -v0, -v1).
	form := Point{v[2], v[3], Neg(v[0]), Neg(v[1])}
	m := Identity()
	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			m[i][j] = Add(m[i][j], Mul(v[i], form[j]))
		}
	}
	return m
}

// Similitude returns diag(1,1,2,2), which maps ω to -ω.
func Similitude() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 2, 0},
		{0, 0, 0, 2},
	}
}

// SymplecticGenerators returns the transvection along every given point
// followed by Similitude. For the 40 points of PG(3,3) the induced
// permutations generate the full automorphism group of W(3,3).
func SymplecticGenerators(points []Point) []Matrix {
	gens := make([]Matrix, 0, len(points)+1)
	for _, p := range points {
		gens = append(gens, Transvection(p))
	}
	return append(gens, Similitude())
}
