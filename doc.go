// SPDX-License-Identifier: MIT

// Package w33 builds the symplectic polar graph W(3,3), the strongly regular
// graph SRG(40,12,2,4), in two independent ways and proves they agree.
//
// What is W(3,3)?
//
//	The 40 points of PG(3,3), joined when the alternating form
//	ω(x,y) = x0y2 − x2y0 + x1y3 − x3y1 vanishes mod 3. The same graph arises
//	from the 40 Witting vectors in C^4, joined when exactly orthogonal.
//
// Build runs the whole pipeline once and returns an immutable Configuration:
//
//	points → symplectic graph → Witting graph → SRG verification of both →
//	isomorphism → lines, triangles, bases, K4 components → spectrum →
//	automorphism group order
//
// Under the hood the work is split across packages:
//
//	numeric/ - tolerance constants and checks
//	gf3/     - GF(3) arithmetic, projective points, the symplectic form, similitudes
//	witting/ - the 40 Witting states and their overlaps
//	core/    - thread-safe in-memory graph
//	builder/ - graph constructors (Symplectic, Witting, Complete, Cycle)
//	srg/     - bit-row adjacency, SRG parameters, isomorphism search
//	clique/  - lines, triangles, bases, K4 components
//	matrix/  - dense matrices, Jacobi eigen solver, spectrum
//	group/   - permutations, orbits, Schreier–Sims order
//	report/  - JSON / YAML records
//	catalog/ - badger-backed report store
//	config/  - viper configuration for the command
//	logging/ - zap logger construction
//
// Quick start:
//
//	cfg, err := w33.Build(ctx)
//	if err != nil { ... }
//	fmt.Println(cfg.Params(), cfg.Spectrum(), cfg.GroupOrder())
//	// SRG(40,12,2,4) [12^1 2^24 -4^15] 51840
package w33
