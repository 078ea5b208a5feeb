// SPDX-License-Identifier: MIT
// Package: w33/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (e.g., n) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrUnsupportedGraphMode indicates the invoked constructor is incompatible with
// the current core.Graph mode (e.g., a configuration graph on a looped graph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates that the underlying geometric object could not
// be constructed or failed its self-check.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates that a resolved option carries a value the
// constructor cannot use (e.g., WithPoints with a non-canonical point).
var ErrOptionViolation = errors.New("builder: invalid option value")
