// SPDX-License-Identifier: MIT
// Package: w33/gf3
//
// points.go - the 40 points of PG(3,3) and the alternating form ω.
//
// Canonical model:
//   • A point is the canonical representative of a 1-dimensional subspace of
//     F3^4: its first nonzero coordinate is 1.
//   • ProjectivePoints enumerates the 80 nonzero vectors in lexicographic
//     order, canonicalizes, deduplicates and returns the points sorted
//     lexicographically (so (0,0,0,1) is point 0 and (1,2,2,2) is point 39).
//   • Two points are adjacent in W(3,3) iff they are distinct and ω(x,y) = 0.
//
// Determinism:
//   • Output order is a pure function of the field; rebuilding yields an
//     identical slice.

package gf3

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Dim is the vector space dimension.
const Dim = 4

// NumPoints is |PG(3,3)| = (3^4 - 1) / (3 - 1).
const NumPoints = 40

// ErrConstruction reports that enumeration did not produce exactly 40
// distinct canonical points. It always indicates an arithmetic bug.
var ErrConstruction = errors.New("gf3: projective point construction failed")

// Point is a canonical representative of a projective point of PG(3,3).
type Point [Dim]Elem

// IsZero reports whether every coordinate is 0.
func (p Point) IsZero() bool {
	return p == Point{}
}

// Less orders points lexicographically by coordinates.
func (p Point) Less(q Point) bool {
	for i := 0; i < Dim; i++ {
		if p[i] != q[i] {
			return p[i] < q[i]
		}
	}
	return false
}

// String renders the point as "(x0,x1,x2,x3)".
func (p Point) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, x := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('0' + byte(x))
	}
	b.WriteByte(')')
	return b.String()
}

// Scale multiplies every coordinate by s.
func (p Point) Scale(s Elem) Point {
	var out Point
	for i, x := range p {
		out[i] = Mul(x, s)
	}
	return out
}

// Canonical scales v so that its first nonzero coordinate is 1.
// The zero vector has no projective point and yields ok == false.
func Canonical(v Point) (p Point, ok bool) {
	for _, x := range v {
		if x%Order != 0 {
			return v.Scale(Inv(x)), true
		}
	}
	return Point{}, false
}

// IsCanonical reports whether p already is its own canonical representative.
func IsCanonical(p Point) bool {
	c, ok := Canonical(p)
	return ok && c == p
}

// Symplectic evaluates ω(x,y) = x0*y2 - x2*y0 + x1*y3 - x3*y1 over GF(3).
func Symplectic(x, y Point) Elem {
	s := int(x[0])*int(y[2]) - int(x[2])*int(y[0]) + int(x[1])*int(y[3]) - int(x[3])*int(y[1])
	return E(s)
}

// Orthogonal reports ω(x,y) == 0. Every point is orthogonal to itself, so
// adjacency additionally requires x != y.
func Orthogonal(x, y Point) bool {
	return Symplectic(x, y) == 0
}

// ProjectivePoints returns the 40 canonical points of PG(3,3).
func ProjectivePoints() ([]Point, error) {
	vectors := make([]Point, 0, 80)
	var v Point
	for a := Elem(0); a < Order; a++ {
		for b := Elem(0); b < Order; b++ {
			for c := Elem(0); c < Order; c++ {
				for d := Elem(0); d < Order; d++ {
					v = Point{a, b, c, d}
					if v.IsZero() {
						continue
					}
					vectors = append(vectors, v)
				}
			}
		}
	}
	return collect(vectors)
}

// collect canonicalizes and deduplicates vectors, then enforces the count.
func collect(vectors []Point) ([]Point, error) {
	seen := make(map[Point]struct{}, NumPoints)
	points := make([]Point, 0, NumPoints)
	for _, v := range vectors {
		p, ok := Canonical(v)
		if !ok {
			return nil, fmt.Errorf("zero vector in enumeration: %w", ErrConstruction)
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}
	if len(points) != NumPoints {
		return nil, fmt.Errorf("got %d points, want %d: %w", len(points), NumPoints, ErrConstruction)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Less(points[j]) })

	return points, nil
}

// Index returns a lookup from point to its position in points.
func Index(points []Point) map[Point]int {
	idx := make(map[Point]int, len(points))
	for i, p := range points {
		idx[p] = i
	}
	return idx
}
