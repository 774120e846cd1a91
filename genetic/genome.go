package genetic

import "github.com/katalvlaran/evocover/statespace"

// Genome is a candidate vertex cover: one bit per node, index i true ⇔
// node i is in the cover. Length always equals the graph's node count.
type Genome []bool

// NewGenome returns an all-false genome of length n.
func NewGenome(n int) Genome {
	return make(Genome, n)
}

// Clone returns an independent copy of g.
func (g Genome) Clone() Genome {
	out := make(Genome, len(g))
	copy(out, g)
	return out
}

// SelectedCount returns the number of true bits (the cover size).
// Complexity: O(n).
func (g Genome) SelectedCount() int {
	var count int
	for _, bit := range g {
		if bit {
			count++
		}
	}
	return count
}

// HammingDistance returns the number of positions where a and b differ.
// Contract: len(a) == len(b); both genomes belong to the same graph.
// Complexity: O(n).
func HammingDistance(a, b Genome) int {
	var d int
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// Feasible reports whether every edge of sp has at least one selected
// endpoint under g. Diagnostics and tests only; the engine maintains
// feasibility via Repair.
// Complexity: O(E).
func Feasible(g Genome, sp *statespace.Graph) bool {
	for _, e := range sp.Edges() {
		if !g[e.From] && !g[e.To] {
			return false
		}
	}
	return true
}
