// Package builder assembles core.Graph instances for the W(3,3)
// configurations and for a few small reference topologies.
//
// Every constructor is a Constructor closure composed by BuildGraph:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
//		builder.WithTolerance(1e-10),
//	}, builder.Witting())
//
// Symplectic() and Witting() both yield a 40-vertex, 240-edge graph with
// vertex i built from object i (projective point or Witting state). The
// index and a human-readable label are stored in vertex metadata under
// core.MetaIndex and core.MetaLabel.
package builder
