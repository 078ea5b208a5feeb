// SPDX-License-Identifier: MIT
// Package: w33/srg
//
// errors.go - invariant and isomorphism failures.
//
// Every violation is fatal for the construction that produced it: Verify
// returns the first failing check as an *InvariantError, and callers branch
// with errors.Is(err, ErrInvariantViolation) or errors.As for the details.

package srg

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariantViolation is wrapped by every *InvariantError.
	ErrInvariantViolation = errors.New("srg: invariant violation")

	// ErrIsomorphismMismatch reports that two relations admit no relabeling
	// onto each other.
	ErrIsomorphismMismatch = errors.New("srg: isomorphism mismatch")

	// ErrNotStronglyRegular reports that Parameters could not derive a
	// consistent (v,k,λ,μ).
	ErrNotStronglyRegular = errors.New("srg: relation is not strongly regular")
)

// Invariant names carried by InvariantError.
const (
	InvOrder       = "order"
	InvIrreflexive = "irreflexive"
	InvSymmetry    = "symmetry"
	InvDegree      = "degree"
	InvLambda      = "lambda"
	InvMu          = "mu"
)

// InvariantError describes the first failing check. J is -1 for per-vertex
// invariants and both I and J are -1 for global ones.
type InvariantError struct {
	Invariant string
	I, J      int
	Got, Want int
}

// Error renders "srg: <invariant> violated at <location>: got X, want Y".
func (e *InvariantError) Error() string {
	var at string
	switch {
	case e.I < 0:
		at = "graph"
	case e.J < 0:
		at = fmt.Sprintf("vertex %d", e.I)
	default:
		at = fmt.Sprintf("pair (%d,%d)", e.I, e.J)
	}
	return fmt.Sprintf("srg: %s violated at %s: got %d, want %d", e.Invariant, at, e.Got, e.Want)
}

// Unwrap exposes ErrInvariantViolation to errors.Is.
func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }
