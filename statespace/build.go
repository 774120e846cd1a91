// Package statespace - deterministic instance constructors.
//
// Contract (strict):
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     the constructors themselves never panic and return only sentinels.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - Stable node order (0..n-1) and stable edge emission order, so a
//     fixed seed reproduces the exact same instance everywhere.
package statespace

import (
	"fmt"
	"math"
	"math/rand"
)

// File-local constants: method tags and parameter minima.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodRandomSparse = "RandomSparse"

	minPathNodes   = 2
	minCycleNodes  = 3
	minSparseNodes = 2

	probMin = 0.0
	probMax = 1.0
)

// BuildOption customizes an instance constructor.
type BuildOption func(*buildConfig)

type buildConfig struct {
	rng *rand.Rand
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuildOption {
	if r == nil {
		panic("statespace: WithRand(nil)")
	}
	return func(c *buildConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuildOption {
	return func(c *buildConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

func resolveBuildConfig(opts []BuildOption) buildConfig {
	var cfg buildConfig
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// Path builds the path graph P_n: edges (i-1, i) for i = 1..n-1.
// Nodes are laid out on a horizontal line for rendering clients.
//
// Contract: n ≥ 2 (else ErrTooFewNodes). No RNG is consumed.
// Complexity: O(n) time and memory.
func Path(n int, opts ...BuildOption) (*Graph, error) {
	_ = resolveBuildConfig(opts)
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
	}

	nodes := make([]Node, n)
	var i int
	for i = 0; i < n; i++ {
		nodes[i] = Node{ID: i, X: float64(i), Y: 0}
	}

	edges := make([]Edge, 0, n-1)
	for i = 1; i < n; i++ {
		edges = append(edges, Edge{From: i - 1, To: i})
	}

	return New(nodes, edges)
}

// Cycle builds the cycle graph C_n: a path plus the closing edge (n-1, 0).
// Nodes are laid out on the unit circle.
//
// Contract: n ≥ 3 (else ErrTooFewNodes). No RNG is consumed.
// Complexity: O(n) time and memory.
func Cycle(n int, opts ...BuildOption) (*Graph, error) {
	_ = resolveBuildConfig(opts)
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
	}

	nodes := make([]Node, n)
	var i int
	for i = 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		nodes[i] = Node{ID: i, X: math.Cos(angle), Y: math.Sin(angle)}
	}

	edges := make([]Edge, 0, n)
	for i = 1; i < n; i++ {
		edges = append(edges, Edge{From: i - 1, To: i})
	}
	edges = append(edges, Edge{From: n - 1, To: 0})

	return New(nodes, edges)
}

// RandomSparse builds a connected Erdős–Rényi-like instance over n nodes:
// a spanning chain (i-1, i) keeps the instance connected, then every
// non-chain pair {i,j} with j > i+1 is included independently with
// probability p. Node coordinates are uniform in the unit square.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1 (else ErrBadProbability).
//   - An RNG is required (WithSeed or WithRand), else ErrNeedRandSource.
//
// Determinism: fixed seed ⇒ identical instance (stable trial order:
// for each i asc, j asc with j > i+1).
// Complexity: O(n²) Bernoulli trials, O(V+E) memory.
func RandomSparse(n int, p float64, opts ...BuildOption) (*Graph, error) {
	cfg := resolveBuildConfig(opts)
	if n < minSparseNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewNodes)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrBadProbability)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	rng := cfg.rng

	nodes := make([]Node, n)
	var i, j int
	for i = 0; i < n; i++ {
		nodes[i] = Node{ID: i, X: rng.Float64(), Y: rng.Float64()}
	}

	// Spanning chain first, in stable order.
	edges := make([]Edge, 0, n-1)
	for i = 1; i < n; i++ {
		edges = append(edges, Edge{From: i - 1, To: i})
	}

	// Independent Bernoulli trials over the remaining pairs.
	for i = 0; i < n; i++ {
		for j = i + 2; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, Edge{From: i, To: j})
			}
		}
	}

	return New(nodes, edges)
}
