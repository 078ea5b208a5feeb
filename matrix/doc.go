// SPDX-License-Identifier: MIT

// Package matrix provides a row-major Dense matrix, adapters from adjacency
// relations and graphs, and the numeric kernels needed to certify a strongly
// regular graph by its spectrum: product, trace, closed-walk counts and a
// deterministic Jacobi eigen solver.
//
// Errors are package sentinels ("matrix: ...") wrapped with an operation tag,
// e.g. "Eigen: matrix: matrix is not symmetric within eps"; match them with
// errors.Is.
//
// Typical use:
//
//	spec, err := matrix.SpectrumOf(adj)
//	if err != nil { ... }
//	if err := matrix.VerifySpectrum(spec, matrix.W33Spectrum); err != nil { ... }
package matrix
