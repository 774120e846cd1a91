package genetic

import "github.com/katalvlaran/evocover/statespace"

// Fitness weights. Higher fitness is better; the dominant +10 reward for
// every excluded node keeps totals predominantly positive in practice,
// which roulette-wheel selection relies on.
const (
	// excludedNodeReward is granted per node left OUT of the cover.
	excludedNodeReward = 10.0
	// doubleCoverPenalty is charged per edge with both endpoints selected.
	doubleCoverPenalty = 2.0
	// lowDegreePenalty is charged per edge covered only by its
	// lower-degree endpoint - a weak nudge toward high-degree nodes.
	lowDegreePenalty = 0.8
)

// Fitness computes the scalar fitness of g against sp. Pure function:
// repeated calls on the same genome and graph return the same value.
// The result is unbounded and may be negative.
//
// Per node with bit false: +10.
// Per edge (u,v):
//   - both endpoints selected: −2
//   - exactly one selected: −0.8 iff the selected one is the lower-degree
//     endpoint; when Degree(u) == Degree(v) the From endpoint u is the one
//     treated as lower-degree
//
// Degrees are the one-sided statespace degrees (see statespace.Graph.Degree).
// Complexity: O(V+E).
func Fitness(g Genome, sp *statespace.Graph) float64 {
	var fitness float64

	for _, bit := range g {
		if !bit {
			fitness += excludedNodeReward
		}
	}

	for _, e := range sp.Edges() {
		switch {
		case g[e.From] && g[e.To]:
			fitness -= doubleCoverPenalty
		case sp.Degree(e.From) > sp.Degree(e.To):
			if g[e.To] {
				fitness -= lowDegreePenalty
			}
		default:
			if g[e.From] {
				fitness -= lowDegreePenalty
			}
		}
	}

	return fitness
}

// Repair restores cover feasibility in place: for every edge with neither
// endpoint selected, it selects the higher-degree endpoint (ties toward
// To). A single left-to-right pass over the edge list suffices - selecting
// an endpoint can never uncover an edge already processed - so Repair is
// idempotent: a second pass changes nothing.
//
// Must be invoked after every operation that can break feasibility:
// initialization, mutation, crossover.
// Complexity: O(E).
func Repair(g Genome, sp *statespace.Graph) {
	for _, e := range sp.Edges() {
		if g[e.From] || g[e.To] {
			continue
		}
		if sp.Degree(e.From) > sp.Degree(e.To) {
			g[e.From] = true
		} else {
			g[e.To] = true
		}
	}
}
