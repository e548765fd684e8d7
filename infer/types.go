// Package infer implements the exact polytree inference engine (C5): a
// Pearl-style causal/diagnostic message-passing scheme (Peot & Shachter
// 1991 variant) over a discrete Bayesian network whose graph is a
// polytree.
package infer

import "github.com/pinfergo/pinfer/cpt"

// PolyGraph is the structural contract the engine operates over. Any
// type exposing these five methods satisfies it without importing this
// package — itree.Tree is the production implementation, and it never
// imports infer, the same way the teacher's network.Network satisfies
// gonum's graph.Directed without gonum importing neat
// (neat/network/network_graph.go).
type PolyGraph interface {
	// NodeKeys returns every node's canonical key, in a stable order.
	NodeKeys() []string
	// Parents returns the node's parent keys in sorted order (the CPT
	// axis order). Empty for a root node.
	Parents(key string) []string
	// IsRoot reports whether key names a root node (one with a prior
	// instead of a CPT).
	IsRoot(key string) bool
	// Prior returns the root's prior belief. Only called for root keys.
	Prior(key string) cpt.Belief
	// CPT returns the node's conditional probability table. Only called
	// for non-root keys.
	CPT(key string) *cpt.CPT
}
