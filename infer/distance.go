package infer

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/pinfergo/pinfer/cpt"
	"github.com/pinfergo/pinfer/pinfererr"
)

// Observe applies new hard evidence and propagates it through the two-pass
// protocol: the change set (every node on a shortest path between two
// newly-observed nodes) is updated inward toward a pivot, farthest first,
// then every reachable node is updated outward from the pivot in ascending
// distance order. Evidence accumulates across calls; observing the same
// node twice overwrites its evidence vector.
func (e *Engine) Observe(observations map[string]cpt.Belief) error {
	if !e.initialised {
		if err := e.Initialize(); err != nil {
			return err
		}
	}

	newly := make([]int, 0, len(observations))
	for key, vec := range observations {
		i, ok := e.index[key]
		if !ok {
			return pinfererr.New(pinfererr.InvalidObservation, key, "observation keyed on unknown node")
		}
		if vec != (cpt.Belief{1, 0}) && vec != (cpt.Belief{0, 1}) {
			return pinfererr.New(pinfererr.InvalidObservation, key, "observation vector must be hard evidence, [1,0] or [0,1]")
		}
		e.evidence[i] = vec
		e.hasEvidence[i] = true
		e.lambda[i] = vec
		newly = append(newly, i)
	}
	if len(newly) == 0 {
		return nil
	}

	changeSet := e.changeSet(newly)
	pivot := e.selectPivot(changeSet)
	delete(changeSet, pivot)

	dist := e.distancesFrom(pivot)

	inward := make([]int, 0, len(changeSet))
	for i := range changeSet {
		inward = append(inward, i)
	}
	sort.Slice(inward, func(a, b int) bool {
		if dist[inward[a]] != dist[inward[b]] {
			return dist[inward[a]] > dist[inward[b]]
		}
		return e.keys[inward[a]] < e.keys[inward[b]]
	})
	for _, i := range inward {
		if err := e.update(i); err != nil {
			return err
		}
	}

	outward := make([]int, 0, len(e.keys))
	for i := range e.keys {
		if dist[i] >= 0 {
			outward = append(outward, i)
		}
	}
	sort.Slice(outward, func(a, b int) bool {
		da, db := dist[outward[a]], dist[outward[b]]
		if da != db {
			return da < db
		}
		return e.keys[outward[a]] < e.keys[outward[b]]
	})
	for _, i := range outward {
		if err := e.update(i); err != nil {
			return err
		}
	}

	return nil
}

// changeSet is the union of the shortest undirected path between every
// pair of newly-observed nodes; a single newly-observed node degenerates
// to the singleton set containing just that node.
func (e *Engine) changeSet(newly []int) map[int]bool {
	set := make(map[int]bool, len(newly))
	if len(newly) == 1 {
		set[newly[0]] = true
		return set
	}
	for a := 0; a < len(newly); a++ {
		for b := a + 1; b < len(newly); b++ {
			for _, n := range e.shortestPath(newly[a], newly[b]) {
				set[n] = true
			}
		}
	}
	return set
}

func (e *Engine) shortestPath(a, b int) []int {
	if a == b {
		return []int{a}
	}
	shortest := path.DijkstraFrom(simpleNode(a), undirectedView{eng: e})
	nodes, _ := shortest.To(int64(b))
	out := make([]int, len(nodes))
	for i, n := range nodes {
		out[i] = int(n.ID())
	}
	return out
}

// selectPivot returns the topologically earliest member of the change
// set, breaking ties (which cannot occur from topo.Sort's strict total
// order, but would mean an ambiguous construction if they did) by
// canonical key.
func (e *Engine) selectPivot(changeSet map[int]bool) int {
	best := -1
	for i := range changeSet {
		switch {
		case best == -1:
			best = i
		case e.topoPos[i] < e.topoPos[best]:
			best = i
		case e.topoPos[i] == e.topoPos[best] && e.keys[i] < e.keys[best]:
			best = i
		}
	}
	return best
}

// distancesFrom returns the undirected hop distance from pivot to every
// node (-1 if unreachable), memoised per pivot since repeated observations
// often share a pivot.
func (e *Engine) distancesFrom(pivot int) []int {
	if e.distanceCache != nil {
		if d, ok := e.distanceCache.Get(pivot); ok {
			return d
		}
	}
	dist := make([]int, len(e.keys))
	for i := range dist {
		dist[i] = -1
	}
	var bf traverse.BreadthFirst
	bf.Walk(undirectedView{eng: e}, simpleNode(pivot), func(n graph.Node, d int) bool {
		dist[int(n.ID())] = d
		return false
	})
	if e.distanceCache != nil {
		e.distanceCache.Add(pivot, dist)
	}
	return dist
}
