package infer

import "gonum.org/v1/gonum/graph"

// dagView and undirectedView are thin gonum.org/v1/gonum/graph adapters
// over the engine's dense integer adjacency, grounded on the teacher's
// network.Network adapter (neat/network/network_graph.go): dagView feeds
// gonum/graph/topo.Sort (directed-cycle detection and a valid update
// order), undirectedView feeds gonum/graph/path.DijkstraFrom and
// gonum/graph/traverse.BreadthFirst (undirected distance and shortest
// path reconstruction for pivot selection).

type dagView struct{ eng *Engine }

func (v dagView) Node(id int64) graph.Node {
	if int(id) < 0 || int(id) >= len(v.eng.keys) {
		return nil
	}
	return simpleNode(id)
}

func (v dagView) Nodes() graph.Nodes {
	nodes := make([]graph.Node, len(v.eng.keys))
	for i := range v.eng.keys {
		nodes[i] = simpleNode(i)
	}
	return &nodeIterator{nodes: nodes, index: -1}
}

func (v dagView) From(id int64) graph.Nodes {
	children := v.eng.children[id]
	nodes := make([]graph.Node, len(children))
	for i, c := range children {
		nodes[i] = simpleNode(c)
	}
	return &nodeIterator{nodes: nodes, index: -1}
}

func (v dagView) HasEdgeBetween(xid, yid int64) bool {
	return v.HasEdgeFromTo(xid, yid) || v.HasEdgeFromTo(yid, xid)
}

func (v dagView) HasEdgeFromTo(uid, vid int64) bool {
	for _, c := range v.eng.children[uid] {
		if int64(c) == vid {
			return true
		}
	}
	return false
}

func (v dagView) Edge(uid, vid int64) graph.Edge {
	if !v.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return simpleEdge{from: simpleNode(uid), to: simpleNode(vid)}
}

// To returns the parents of id, completing graph.Directed (topo.Sort
// needs it to walk incoming edges), the same way the teacher's
// Network.To walks each node's Incoming links.
func (v dagView) To(id int64) graph.Nodes {
	parents := v.eng.parents[id]
	nodes := make([]graph.Node, len(parents))
	for i, p := range parents {
		nodes[i] = simpleNode(p)
	}
	return &nodeIterator{nodes: nodes, index: -1}
}

type undirectedView struct{ eng *Engine }

func (v undirectedView) Node(id int64) graph.Node { return dagView(v).Node(id) }
func (v undirectedView) Nodes() graph.Nodes       { return dagView(v).Nodes() }

func (v undirectedView) From(id int64) graph.Nodes {
	neighbours := append(append([]int{}, v.eng.parents[id]...), v.eng.children[id]...)
	nodes := make([]graph.Node, len(neighbours))
	for i, n := range neighbours {
		nodes[i] = simpleNode(n)
	}
	return &nodeIterator{nodes: nodes, index: -1}
}

func (v undirectedView) HasEdgeBetween(xid, yid int64) bool {
	d := dagView(v)
	return d.HasEdgeFromTo(xid, yid) || d.HasEdgeFromTo(yid, xid)
}

func (v undirectedView) Edge(xid, yid int64) graph.Edge {
	return v.EdgeBetween(xid, yid)
}

func (v undirectedView) EdgeBetween(xid, yid int64) graph.Edge {
	if !v.HasEdgeBetween(xid, yid) {
		return nil
	}
	return simpleEdge{from: simpleNode(xid), to: simpleNode(yid)}
}

type simpleNode int64

func (n simpleNode) ID() int64 { return int64(n) }

type simpleEdge struct{ from, to graph.Node }

func (e simpleEdge) From() graph.Node         { return e.from }
func (e simpleEdge) To() graph.Node           { return e.to }
func (e simpleEdge) ReversedEdge() graph.Edge { return simpleEdge{e.to, e.from} }

type nodeIterator struct {
	nodes []graph.Node
	index int
}

func (it *nodeIterator) Next() bool {
	if it.index+1 < len(it.nodes) {
		it.index++
		return true
	}
	return false
}
func (it *nodeIterator) Len() int       { return len(it.nodes) - (it.index + 1) }
func (it *nodeIterator) Node() graph.Node {
	if it.index < 0 || it.index >= len(it.nodes) {
		return nil
	}
	return it.nodes[it.index]
}
func (it *nodeIterator) Reset() { it.index = -1 }

// unionFind is a standard disjoint-set structure used to detect
// undirected cycles while wiring edges: no third-party library in the
// example pack provides this primitive, and it is a dozen lines of
// well-understood indexed bookkeeping, so it is implemented directly
// against the standard library.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union merges the sets containing a and b, returning false if they were
// already in the same set (meaning the edge (a,b) closes a cycle).
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	return true
}
