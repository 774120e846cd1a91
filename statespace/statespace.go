package statespace

// Graph is an immutable undirected graph over dense node indices.
// It is safe for concurrent readers once constructed.
//
// Adjacency is recorded against each edge's From endpoint only, mirroring
// the map-file convention: AdjacentEdges(i) returns the edges whose From
// field equals i, and Degree(i) counts exactly those. An edge (u,v) in the
// edge list therefore contributes to Degree(u) but not Degree(v); fitness,
// repair and cover diagnostics all rely on this one-sided bookkeeping.
type Graph struct {
	nodes []Node
	edges []Edge
	adj   [][]int // adj[i] = indices into edges with edges[k].From == i
}

// New constructs a Graph from nodes and edges, validating that node IDs
// form the dense range 0..n-1 and every edge endpoint is a valid index.
// Inputs are deep-copied so later caller mutation cannot leak in.
//
// Returns ErrNoNodes, ErrNodeIndex or ErrEdgeEndpoint on invalid input.
// Complexity: O(V+E) time and memory.
func New(nodes []Node, edges []Edge) (*Graph, error) {
	n := len(nodes)
	if n == 0 {
		return nil, ErrNoNodes
	}

	// Node IDs must be a permutation-free dense sequence: nodes[i].ID == i.
	var i int
	for i = 0; i < n; i++ {
		if nodes[i].ID != i {
			return nil, ErrNodeIndex
		}
	}

	ns := make([]Node, n)
	copy(ns, nodes)

	es := make([]Edge, len(edges))
	copy(es, edges)

	adj := make([][]int, n)
	var k int
	for k = 0; k < len(es); k++ {
		e := es[k]
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, ErrEdgeEndpoint
		}
		adj[e.From] = append(adj[e.From], k)
	}

	return &Graph{nodes: ns, edges: es, adj: adj}, nil
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NodeAt returns the node at index i (0 ≤ i < NodeCount).
func (g *Graph) NodeAt(i int) Node { return g.nodes[i] }

// EdgeAt returns the edge at index i (0 ≤ i < EdgeCount).
func (g *Graph) EdgeAt(i int) Edge { return g.edges[i] }

// Edges returns the ordered edge sequence. The slice is shared and must
// be treated as read-only.
func (g *Graph) Edges() []Edge { return g.edges }

// Degree returns the number of edges recorded with From == i.
// This is NOT the symmetric vertex degree: an edge (u,v) counts toward
// Degree(u) only. All tie-break conventions in the genetic package are
// defined over this one-sided degree.
// Complexity: O(1).
func (g *Graph) Degree(i int) int { return len(g.adj[i]) }

// AdjacentEdges returns the edges recorded with From == i, in edge-list
// order. The returned slice is freshly allocated.
// Complexity: O(Degree(i)).
func (g *Graph) AdjacentEdges(i int) []Edge {
	out := make([]Edge, len(g.adj[i]))
	for j, k := range g.adj[i] {
		out[j] = g.edges[k]
	}
	return out
}
