// SPDX-License-Identifier: MIT
// Package: w33/srg
//
// bits.go - fixed-width vertex sets backed by uint64 words.
//
// Rows of an Adjacency are Bits; clique enumeration intersects them with And
// and reads sizes with Count, so every operation here is allocation-light and
// O(n/64).

package srg

import "math/bits"

// Bits is a set of vertex indices. Its length in words is fixed at creation;
// operations on two Bits assume equal length.
type Bits []uint64

// wordsFor returns the number of uint64 words needed for n bits.
func wordsFor(n int) int { return (n + 63) / 64 }

// NewBits returns an empty set able to hold indices 0..n-1.
func NewBits(n int) Bits { return make(Bits, wordsFor(n)) }

// BitsOf returns a set holding the given members.
func BitsOf(n int, members ...int) Bits {
	b := NewBits(n)
	for _, m := range members {
		b.Set(m)
	}
	return b
}

// Set adds i.
func (b Bits) Set(i int) { b[i>>6] |= 1 << uint(i&63) }

// Clear removes i.
func (b Bits) Clear(i int) { b[i>>6] &^= 1 << uint(i&63) }

// Has reports whether i is a member.
func (b Bits) Has(i int) bool { return b[i>>6]&(1<<uint(i&63)) != 0 }

// Count returns the number of members.
func (b Bits) Count() int {
	c := 0
	for _, w := range b {
		c += bits.OnesCount64(w)
	}
	return c
}

// And returns b ∩ o as a new set.
func (b Bits) And(o Bits) Bits {
	out := make(Bits, len(b))
	for i := range b {
		out[i] = b[i] & o[i]
	}
	return out
}

// AndNot returns b \ o as a new set.
func (b Bits) AndNot(o Bits) Bits {
	out := make(Bits, len(b))
	for i := range b {
		out[i] = b[i] &^ o[i]
	}
	return out
}

// Not returns the complement of b within 0..n-1.
func (b Bits) Not(n int) Bits {
	out := make(Bits, len(b))
	for i := range b {
		out[i] = ^b[i]
	}
	if r := n & 63; r != 0 && len(out) > 0 {
		out[len(out)-1] &= (1 << uint(r)) - 1
	}
	return out
}

// AndCount returns |b ∩ o| without allocating.
func (b Bits) AndCount(o Bits) int {
	c := 0
	for i := range b {
		c += bits.OnesCount64(b[i] & o[i])
	}
	return c
}

// Equal reports set equality.
func (b Bits) Equal(o Bits) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (b Bits) Clone() Bits { return append(Bits(nil), b...) }

// Members returns the members in ascending order.
func (b Bits) Members() []int {
	out := make([]int, 0, b.Count())
	for wi, w := range b {
		for w != 0 {
			t := bits.TrailingZeros64(w)
			out = append(out, wi*64+t)
			w &= w - 1
		}
	}
	return out
}
