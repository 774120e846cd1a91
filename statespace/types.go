// Package statespace - core types and sentinel errors.
package statespace

import "errors"

// Sentinel errors for statespace operations.
var (
	// ErrNoNodes indicates a graph was requested over an empty node set.
	ErrNoNodes = errors.New("statespace: graph must have at least one node")
	// ErrNodeIndex indicates node IDs are not the dense range 0..n-1.
	ErrNodeIndex = errors.New("statespace: node IDs must be dense 0..n-1")
	// ErrEdgeEndpoint indicates an edge endpoint outside 0..n-1.
	ErrEdgeEndpoint = errors.New("statespace: edge endpoint out of range")
	// ErrBadMapFile indicates a malformed line in a map's nodes/edges file.
	ErrBadMapFile = errors.New("statespace: malformed map file")
	// ErrTooFewNodes indicates a constructor parameter below its minimum.
	ErrTooFewNodes = errors.New("statespace: node count too small")
	// ErrBadProbability indicates a probability outside the closed [0,1].
	ErrBadProbability = errors.New("statespace: probability out of range")
	// ErrNeedRandSource indicates a stochastic constructor was invoked
	// without an RNG (use WithSeed or WithRand).
	ErrNeedRandSource = errors.New("statespace: rng is required")
)

// Node is a graph vertex. X and Y are plane coordinates carried for
// diagnostics and map-rendering clients; the engine itself only uses ID.
type Node struct {
	ID   int
	X, Y float64
}

// Edge is an undirected edge between two node indices. The From/To
// orientation is the order the edge was recorded in; it matters only for
// adjacency bookkeeping (see Graph.Degree) and tie-breaking conventions.
type Edge struct {
	From, To int
}
