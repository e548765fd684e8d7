package infer

import "github.com/pinfergo/pinfer/cpt"

// testGraph is a minimal, map-backed PolyGraph used to exercise the engine
// independently of itree — the same way the spec's canonical sprinkler
// network is defined with no gene-tree behind it at all.
type testGraph struct {
	order   []string
	parents map[string][]string
	isRoot  map[string]bool
	prior   map[string]cpt.Belief
	cpts    map[string]*cpt.CPT
}

func newTestGraph() *testGraph {
	return &testGraph{
		parents: map[string][]string{},
		isRoot:  map[string]bool{},
		prior:   map[string]cpt.Belief{},
		cpts:    map[string]*cpt.CPT{},
	}
}

func (g *testGraph) addRoot(name string, prior cpt.Belief) {
	g.order = append(g.order, name)
	g.isRoot[name] = true
	g.prior[name] = prior
}

func (g *testGraph) addNode(name string, parents []string, data []float64) {
	g.order = append(g.order, name)
	g.parents[name] = parents
	c, err := cpt.New(len(parents), data)
	if err != nil {
		panic(err)
	}
	g.cpts[name] = c
}

func (g *testGraph) NodeKeys() []string { return g.order }

func (g *testGraph) Parents(key string) []string { return g.parents[key] }

func (g *testGraph) IsRoot(key string) bool { return g.isRoot[key] }

func (g *testGraph) Prior(key string) cpt.Belief { return g.prior[key] }

func (g *testGraph) CPT(key string) *cpt.CPT { return g.cpts[key] }

// sprinklerNetwork builds the spec's canonical end-to-end scenario
// network: R and S are independent roots, W depends on R, and H depends
// on both R and S (sorted).
func sprinklerNetwork() *testGraph {
	g := newTestGraph()
	g.addRoot("R", cpt.Belief{0.8, 0.2})
	g.addRoot("S", cpt.Belief{0.9, 0.1})
	g.addNode("W", []string{"R"}, []float64{0.8, 0.2, 0.0, 1.0})
	g.addNode("H", []string{"R", "S"}, []float64{
		1.0, 0.0,
		0.1, 0.9,
		0.0, 1.0,
		0.0, 1.0,
	})
	return g
}

// chainNetwork builds the spec's scenario 4 fixture: a three-node chain,
// node 0 the parent of both node 1 and node 2, uniform priors.
func chainNetwork() *testGraph {
	g := newTestGraph()
	g.addRoot("0", cpt.Belief{0.5, 0.5})
	g.addNode("1", []string{"0"}, []float64{0.5, 0.5, 0.1, 0.9})
	g.addNode("2", []string{"0"}, []float64{0.5, 0.5, 0.2, 0.8})
	return g
}
