// Package pinfererr defines the error kinds the core analysis pipeline can
// raise, per §7 of the specification. Every error surfaced by gtree, itree
// and infer is wrapped in a single Error type carrying a Kind, the
// offending node key (when there is one), and the underlying cause, the
// way the teacher repo wraps sentinel causes with github.com/pkg/errors
// rather than defining a bespoke error type per package.
package pinfererr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies which of the fixed error categories an Error belongs to.
type Kind string

const (
	// InvalidGeneTree covers missing attributes, zero-length normalisation
	// denominators, or multiple roots in the input gene tree.
	InvalidGeneTree Kind = "invalid_gene_tree"
	// NotAPolytree means the inference input's underlying undirected
	// graph contains a cycle.
	NotAPolytree Kind = "not_a_polytree"
	// InvalidObservation means an observation vector was not one of the
	// two allowed length-2 vectors, or was keyed on an unknown node.
	InvalidObservation Kind = "invalid_observation"
	// InvariantViolated means parent resolution found more than one
	// common child, or a CPT row does not sum to 1.
	InvariantViolated Kind = "invariant_violated"
	// InconsistentEvidence means a belief denominator evaluated to 0.
	InconsistentEvidence Kind = "inconsistent_evidence"
	// ConstructionFailure means parent resolution exhausted the ancestor
	// chain without finding a common interaction child.
	ConstructionFailure Kind = "construction_failure"
)

// Error is the tagged error type returned by the core analysis pipeline.
type Error struct {
	Kind    Kind
	NodeKey string
	cause   error
}

// New builds an Error of the given kind with no wrapped cause.
func New(kind Kind, nodeKey, message string) *Error {
	return &Error{Kind: kind, NodeKey: nodeKey, cause: errors.New(message)}
}

// Wrap builds an Error of the given kind wrapping an existing cause.
func Wrap(kind Kind, nodeKey string, cause error, message string) *Error {
	return &Error{Kind: kind, NodeKey: nodeKey, cause: errors.Wrap(cause, message)}
}

func (e *Error) Error() string {
	if e.NodeKey == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.cause)
	}
	return fmt.Sprintf("%s [node %s]: %s", e.Kind, e.NodeKey, e.cause)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is a sentinel Kind value matching e.Kind, so
// callers can write errors.Is(err, pinfererr.InvalidGeneTree) against a
// plain Kind constant via KindError below, or compare *Error values by
// Kind directly.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	if other.NodeKey != "" && other.NodeKey != e.NodeKey {
		return false
	}
	return e.Kind == other.Kind
}

// KindOf reports the Kind of err if it is (or wraps) a *Error, and false
// otherwise.
func KindOf(err error) (Kind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}

// Sentinel returns a bare *Error of the given kind suitable for use as a
// comparison target with errors.Is, e.g.:
//
//	if errors.Is(err, pinfererr.Sentinel(pinfererr.InvalidGeneTree)) { ... }
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind}
}
