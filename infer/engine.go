package infer

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/pinfergo/pinfer/cpt"
	"github.com/pinfergo/pinfer/pinfererr"
)

type edgeKey struct {
	parent, child int
}

// Engine holds the dense adjacency and message state for one polytree's
// exact inference. It is built once from a PolyGraph and then driven by
// repeated calls to Observe; Initialize computes the no-evidence beliefs
// that Observe's message passing perturbs incrementally.
type Engine struct {
	keys  []string
	index map[string]int

	parents  [][]int
	children [][]int

	isRoot []bool
	prior  []cpt.Belief
	cpts   []*cpt.CPT

	pi       []cpt.Belief
	lambda   []cpt.Belief
	belief   []cpt.Belief
	evidence []cpt.Belief
	hasEvidence []bool

	piMsg     map[edgeKey]cpt.Belief
	lambdaMsg map[edgeKey]cpt.Belief

	topoOrder []int
	topoPos   map[int]int

	initialised bool

	distanceCache *lru.Cache[int, []int]
}

// NewEngine builds an Engine from g, validating that its graph is a
// polytree: acyclic both as a directed graph (topo.Sort over dagView) and
// as its undirected skeleton (union-find over every parent edge). A DAG
// with a diamond shape passes the former and fails the latter.
func NewEngine(g PolyGraph, distanceCacheSize int) (*Engine, error) {
	keys := g.NodeKeys()
	e := &Engine{
		keys:        keys,
		index:       make(map[string]int, len(keys)),
		parents:     make([][]int, len(keys)),
		children:    make([][]int, len(keys)),
		isRoot:      make([]bool, len(keys)),
		prior:       make([]cpt.Belief, len(keys)),
		cpts:        make([]*cpt.CPT, len(keys)),
		pi:          make([]cpt.Belief, len(keys)),
		lambda:      make([]cpt.Belief, len(keys)),
		belief:      make([]cpt.Belief, len(keys)),
		evidence:    make([]cpt.Belief, len(keys)),
		hasEvidence: make([]bool, len(keys)),
		piMsg:       make(map[edgeKey]cpt.Belief),
		lambdaMsg:   make(map[edgeKey]cpt.Belief),
	}
	for i, k := range keys {
		e.index[k] = i
	}

	uf := newUnionFind(len(keys))
	for i, k := range keys {
		parentKeys := g.Parents(k)
		e.parents[i] = make([]int, len(parentKeys))
		for j, pk := range parentKeys {
			pIdx, ok := e.index[pk]
			if !ok {
				return nil, pinfererr.New(pinfererr.ConstructionFailure, k, "parent key not found among node keys: "+pk)
			}
			e.parents[i][j] = pIdx
			e.children[pIdx] = append(e.children[pIdx], i)
			if !uf.union(pIdx, i) {
				return nil, pinfererr.New(pinfererr.NotAPolytree, k, "undirected cycle detected through parent edge to "+pk)
			}
		}

		e.isRoot[i] = g.IsRoot(k)
		if e.isRoot[i] {
			e.prior[i] = g.Prior(k)
		} else {
			c := g.CPT(k)
			if c == nil {
				return nil, pinfererr.New(pinfererr.ConstructionFailure, k, "non-root node has no CPT")
			}
			if c.NumParents() != len(parentKeys) {
				return nil, pinfererr.New(pinfererr.InvariantViolated, k, "CPT parent count does not match graph parent count")
			}
			e.cpts[i] = c
		}
	}

	order, err := topo.Sort(dagView{eng: e})
	if err != nil {
		return nil, pinfererr.Wrap(pinfererr.NotAPolytree, "", err, "directed cycle detected among node parent edges")
	}
	e.topoOrder = make([]int, len(order))
	e.topoPos = make(map[int]int, len(order))
	for i, n := range order {
		idx := int(n.ID())
		e.topoOrder[i] = idx
		e.topoPos[idx] = i
	}

	if distanceCacheSize > 0 {
		cache, err := lru.New[int, []int](distanceCacheSize)
		if err != nil {
			return nil, pinfererr.Wrap(pinfererr.ConstructionFailure, "", err, "failed to allocate distance cache")
		}
		e.distanceCache = cache
	}

	return e, nil
}

// Initialize computes the no-evidence beliefs: lambda and the lambda/pi
// messages start at the uninformative vector [1,1], pi is computed in
// topological order (roots from their prior, others by contracting their
// parents' pi messages through their CPT), and belief is the normalised
// product of pi and lambda.
func (e *Engine) Initialize() error {
	for i := range e.keys {
		e.lambda[i] = cpt.Ones
	}
	for i := range e.keys {
		for _, c := range e.children[i] {
			e.piMsg[edgeKey{i, c}] = cpt.Ones
			e.lambdaMsg[edgeKey{i, c}] = cpt.Ones
		}
	}
	for _, i := range e.topoOrder {
		if e.isRoot[i] {
			e.pi[i] = e.prior[i]
		} else {
			e.pi[i] = e.contractCausal(i)
		}
		for _, c := range e.children[i] {
			e.piMsg[edgeKey{i, c}] = e.pi[i]
		}
	}
	for i := range e.keys {
		joint := e.pi[i].Mul(e.lambda[i])
		if joint.Sum() == 0 {
			return pinfererr.New(pinfererr.InconsistentEvidence, e.keys[i], "belief denominator is zero")
		}
		e.belief[i] = joint.Normalized()
	}
	e.initialised = true
	return nil
}

// Beliefs returns the current marginal belief of every node, keyed by
// canonical node key.
func (e *Engine) Beliefs() map[string]cpt.Belief {
	out := make(map[string]cpt.Belief, len(e.keys))
	for i, k := range e.keys {
		out[k] = e.belief[i]
	}
	return out
}

// Belief returns the current marginal belief of a single node.
func (e *Engine) Belief(key string) (cpt.Belief, bool) {
	i, ok := e.index[key]
	if !ok {
		return cpt.Belief{}, false
	}
	return e.belief[i], true
}

func (e *Engine) evidenceOrOnes(i int) cpt.Belief {
	if e.hasEvidence[i] {
		return e.evidence[i]
	}
	return cpt.Ones
}

// sortedKeys is used by tests and callers that want a deterministic
// iteration order matching the engine's internal node ordering.
func (e *Engine) sortedKeys() []string {
	out := append([]string{}, e.keys...)
	sort.Strings(out)
	return out
}
