package infer

import (
	"github.com/pinfergo/pinfer/cpt"
	"github.com/pinfergo/pinfer/pinfererr"
)

// update recomputes node i's causal support, diagnostic support, outgoing
// messages and belief from its current incoming messages. It is the single
// per-node step both the inward and outward passes of Observe repeat in
// different orders.
func (e *Engine) update(i int) error {
	if e.isRoot[i] {
		e.pi[i] = e.prior[i]
	} else {
		e.pi[i] = e.contractCausal(i)
	}

	ev := e.evidenceOrOnes(i)
	if len(e.children[i]) > 0 {
		lam := ev
		for _, c := range e.children[i] {
			lam = lam.Mul(e.lambdaMsg[edgeKey{i, c}])
		}
		e.lambda[i] = lam
	} else {
		e.lambda[i] = ev
	}

	for _, c := range e.children[i] {
		msg := e.pi[i].Mul(ev)
		for _, other := range e.children[i] {
			if other == c {
				continue
			}
			msg = msg.Mul(e.lambdaMsg[edgeKey{i, other}])
		}
		e.piMsg[edgeKey{i, c}] = msg
	}

	for j, p := range e.parents[i] {
		e.lambdaMsg[edgeKey{p, i}] = e.outgoingLambdaMsg(i, j)
	}

	joint := e.pi[i].Mul(e.lambda[i])
	if joint.Sum() == 0 {
		return pinfererr.New(pinfererr.InconsistentEvidence, e.keys[i], "belief denominator is zero")
	}
	e.belief[i] = joint.Normalized()
	return nil
}

// contractCausal computes node i's causal support by folding every parent's
// incoming pi message through i's CPT: sum over all parent-value
// assignments of (product of the matching pi message entries) times the
// CPT row for that assignment.
func (e *Engine) contractCausal(i int) cpt.Belief {
	c := e.cpts[i]
	k := c.NumParents()
	var result cpt.Belief
	cpt.ForEachAssignment(k, func(idx []int) {
		w := 1.0
		for j, p := range e.parents[i] {
			w *= e.piMsg[edgeKey{p, i}][idx[j]]
		}
		row := c.Row(idx)
		result[0] += w * row[0]
		result[1] += w * row[1]
	})
	return result
}

// outgoingLambdaMsg computes the diagnostic message node i sends to its
// j'th parent: the CPT contracted against every OTHER parent's pi message
// and against i's own lambda, leaving the j'th parent's axis free. This
// performs the same contraction the teacher's axis-swap trick would, but
// directly over the full assignment space rather than by physically
// permuting the CPT's axes.
func (e *Engine) outgoingLambdaMsg(i, j int) cpt.Belief {
	c := e.cpts[i]
	k := c.NumParents()
	lam := e.lambda[i]
	var msg cpt.Belief
	cpt.ForEachAssignment(k, func(idx []int) {
		w := 1.0
		for pos, p := range e.parents[i] {
			if pos == j {
				continue
			}
			w *= e.piMsg[edgeKey{p, i}][idx[pos]]
		}
		row := c.Row(idx)
		contrib := lam[0]*row[0] + lam[1]*row[1]
		msg[idx[j]] += w * contrib
	})
	return msg
}
