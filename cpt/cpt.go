// Package cpt implements the conditional-probability-table type shared by
// the itree and infer packages. Per §9 of the specification ("CPT shape
// discipline"), rank is carried explicitly with the table instead of
// relying on a dynamically shaped array: Shape always has NumParents()+1
// entries, every one of them 2, reflecting the binary-domain-only scope
// of this module.
package cpt

import (
	"fmt"
	"math"

	"github.com/pinfergo/pinfer/pinfererr"
)

// Belief is a length-2 probability vector, [P(absent), P(present)].
type Belief [2]float64

// Present returns the scalar P(present) convenience derived from the
// canonical two-vector belief, per the open question resolved in
// SPEC_FULL.md §9.
func (b Belief) Present() float64 { return b[1] }

// Sum returns b[0]+b[1].
func (b Belief) Sum() float64 { return b[0] + b[1] }

// Normalized returns b scaled so its components sum to 1. The caller must
// check Sum() != 0 first; Normalized does not itself guard against a zero
// denominator (callers surface InconsistentEvidence in that case).
func (b Belief) Normalized() Belief {
	s := b.Sum()
	return Belief{b[0] / s, b[1] / s}
}

// Mul returns the element-wise product of b and o.
func (b Belief) Mul(o Belief) Belief {
	return Belief{b[0] * o[0], b[1] * o[1]}
}

// Ones is the identity element for Mul, used as the default diagnostic
// support/message/evidence when none has been set.
var Ones = Belief{1, 1}

// CPT is a conditional probability table for a node with some number of
// binary parents, indexed in sorted-parent order per axis and with the
// node's own value as the final axis.
type CPT struct {
	// NumParents is the table rank minus one.
	numParents int
	// data is the flattened table: axis 0 is the first sorted parent,
	// axis numParents-1 the last, axis numParents the node's own value.
	// Each axis has size 2 and the node's own axis varies fastest.
	data []float64
}

// New builds a CPT for a node with the given number of parents from a
// flattened row-major table of length 2^(numParents+1). The final axis
// (the node's own value) must sum to 1 for every combination of parent
// values, and every entry must be non-negative; New rejects tables that
// do not.
func New(numParents int, data []float64) (*CPT, error) {
	if numParents < 0 {
		return nil, pinfererr.New(pinfererr.InvariantViolated, "", fmt.Sprintf("numParents must be >= 0, got %d", numParents))
	}
	want := 1 << uint(numParents+1)
	if len(data) != want {
		return nil, pinfererr.New(pinfererr.InvariantViolated, "", fmt.Sprintf("expected %d entries for %d parents, got %d", want, numParents, len(data)))
	}
	c := &CPT{numParents: numParents, data: append([]float64(nil), data...)}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NumParents returns the number of parent axes.
func (c *CPT) NumParents() int { return c.numParents }

func (c *CPT) flatIndex(parentAssignment []int, self int) int {
	pos := 0
	for _, v := range parentAssignment {
		pos = pos*2 + v
	}
	return pos*2 + self
}

// Row returns the length-2 distribution over the node's own value given a
// full assignment of its sorted parents (len(parentAssignment) must equal
// NumParents()).
func (c *CPT) Row(parentAssignment []int) Belief {
	i := c.flatIndex(parentAssignment, 0)
	return Belief{c.data[i], c.data[i+1]}
}

func (c *CPT) validate() error {
	var err error
	ForEachAssignment(c.numParents, func(idx []int) {
		if err != nil {
			return
		}
		row := c.Row(idx)
		if row[0] < 0 || row[1] < 0 {
			err = pinfererr.New(pinfererr.InvariantViolated, "", fmt.Sprintf("negative entry in row %v", idx))
			return
		}
		if math.Abs(row.Sum()-1.0) > 1e-9 {
			err = pinfererr.New(pinfererr.InvariantViolated, "", fmt.Sprintf("row %v sums to %.10f, want 1", idx, row.Sum()))
		}
	})
	return err
}

// ForEachAssignment calls fn once for every one of the 2^k binary
// assignments of k parent axes, in ascending lexicographic order. The
// slice passed to fn is reused between calls; fn must copy it if it needs
// to retain the value.
func ForEachAssignment(k int, fn func(idx []int)) {
	idx := make([]int, k)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == k {
			fn(idx)
			return
		}
		for v := 0; v < 2; v++ {
			idx[pos] = v
			rec(pos + 1)
		}
	}
	rec(0)
}
