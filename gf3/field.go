// SPDX-License-Identifier: MIT
// Package: w33/gf3
//
// field.go - arithmetic in the prime field GF(3) = {0, 1, 2}.
//
// Contract:
//   • Every Elem produced here is reduced into 0..2.
//   • Inv(0) is a programmer error and panics; callers always pick a nonzero
//     coordinate before inverting.

package gf3

// Order is the field size q.
const Order = 3

// Elem is an element of GF(3), always kept in 0..2.
type Elem uint8

// E reduces an arbitrary integer into GF(3).
func E(x int) Elem {
	r := x % Order
	if r < 0 {
		r += Order
	}
	return Elem(r)
}

// Add returns a+b.
func Add(a, b Elem) Elem { return (a + b) % Order }

// Sub returns a-b.
func Sub(a, b Elem) Elem { return (a + Order - b) % Order }

// Mul returns a*b.
func Mul(a, b Elem) Elem { return (a * b) % Order }

// Neg returns -a.
func Neg(a Elem) Elem { return (Order - a) % Order }

// Inv returns the multiplicative inverse of a nonzero element.
// In GF(3) every nonzero element is its own inverse: 1*1 = 2*2 = 1.
func Inv(a Elem) Elem {
	switch a % Order {
	case 1:
		return 1
	case 2:
		return 2
	default:
		panic("gf3: inverse of zero")
	}
}
