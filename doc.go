// Package pinfer infers ancestral protein-protein interaction networks
// from a reconciled gene tree.
//
// Two subsystems make up the core: the gtree/itree packages translate a
// gene tree into an interaction DAG under the duplication/speciation/loss
// model, and the infer package runs exact Pearl-style message passing over
// the resulting polytree to compute posterior interaction beliefs.
//
// This package itself holds the options, logging and error plumbing that
// the rest of the module shares, the way neat.Options and the leveled
// logger in the teacher repo sit alongside its genetics/network packages.
package pinfer
