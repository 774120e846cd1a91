package genetic

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/evocover/statespace"
)

// Crossover point count is drawn uniformly from [3,8] per mating.
const (
	minCrossoverPoints = 3
	maxCrossoverPoints = 8
)

// Individual is a genome with its cached fitness. The cache carries an
// explicit known-flag so a stale read surfaces as NaN instead of a silent
// wrong value; every exported constructor and operator leaves the cache
// valid, so NaN can only be observed through misuse of the zero value.
//
// Individuals are not safe for concurrent mutation; the engine owns each
// one from a single goroutine.
type Individual struct {
	genome   Genome
	fitness  float64
	fitKnown bool
}

// NewRandom creates an individual with every bit set by a fair coin flip,
// repaired to feasibility, fitness computed.
// Complexity: O(V+E).
func NewRandom(sp *statespace.Graph, rng *rand.Rand) *Individual {
	in := &Individual{genome: NewGenome(sp.NodeCount())}
	for i := range in.genome {
		in.genome[i] = rng.Intn(2) == 1
	}
	in.repair(sp)
	return in
}

// Genome returns the underlying genome. The slice is shared and must be
// treated as read-only; use DeepCopy to obtain an independent individual.
func (in *Individual) Genome() Genome { return in.genome }

// IsNodeSelected reports whether node i is in the cover.
func (in *Individual) IsNodeSelected(i int) bool { return in.genome[i] }

// Fitness returns the cached fitness, or NaN when it has never been
// computed (zero-value Individual only).
func (in *Individual) Fitness() float64 {
	if !in.fitKnown {
		return math.NaN()
	}
	return in.fitness
}

// computeFitness refreshes the cached fitness from the genome.
func (in *Individual) computeFitness(sp *statespace.Graph) {
	in.fitness = Fitness(in.genome, sp)
	in.fitKnown = true
}

// repair restores feasibility and recomputes fitness, in that order.
func (in *Individual) repair(sp *statespace.Graph) {
	Repair(in.genome, sp)
	in.computeFitness(sp)
}

// Mutate randomizes the genome in place: each bit independently, with
// probability rate, is set to a freshly drawn random boolean. This is a
// random reset, not a guaranteed flip - a redraw matching the current
// value is a no-op. Feasibility is then restored and fitness recomputed.
// Complexity: O(V+E).
func (in *Individual) Mutate(rng *rand.Rand, rate float64, sp *statespace.Graph) {
	for i := range in.genome {
		if rng.Float64() < rate {
			in.genome[i] = rng.Intn(2) == 1
		}
	}
	in.repair(sp)
}

// Crossover mates in with other and returns two offspring.
//
// A point count k is drawn uniformly from [3,8] and the genome is cut into
// k contiguous segments of width len/k. Even-indexed segments copy
// (in,other) into (childA,childB); odd-indexed segments swap the sources.
// The remainder positions past the last full segment are not distributed:
// both children start as repaired random individuals, so untouched
// positions keep a valid random tail. Both offspring are repaired and
// their fitness recomputed before return.
//
// Contract: both parents belong to sp; neither parent is modified.
// Complexity: O(V+E) per offspring.
func (in *Individual) Crossover(rng *rand.Rand, other *Individual, sp *statespace.Graph) (*Individual, *Individual) {
	k := minCrossoverPoints + rng.Intn(maxCrossoverPoints-minCrossoverPoints+1)

	childA := NewRandom(sp, rng)
	childB := NewRandom(sp, rng)

	size := len(in.genome)
	width := size / k

	var s, j int
	for s = 0; s < k; s++ {
		for j = s * width; j < (s+1)*width; j++ {
			if s%2 == 0 {
				childA.genome[j] = in.genome[j]
				childB.genome[j] = other.genome[j]
			} else {
				childA.genome[j] = other.genome[j]
				childB.genome[j] = in.genome[j]
			}
		}
	}

	childA.repair(sp)
	childB.repair(sp)

	return childA, childB
}

// DeepCopy returns a fully independent copy of the individual: cloned
// genome, same cached fitness.
func (in *Individual) DeepCopy() *Individual {
	return &Individual{
		genome:   in.genome.Clone(),
		fitness:  in.fitness,
		fitKnown: in.fitKnown,
	}
}

// HammingDistanceTo returns the number of genome positions where in and
// other differ. Used for deterministic-crowding tie-breaks only.
func (in *Individual) HammingDistanceTo(other *Individual) int {
	return HammingDistance(in.genome, other.genome)
}

// Better reports whether in strictly beats other by fitness. NaN is
// treated as smaller than everything, so an unset fitness never wins;
// two NaNs compare as equal (not better).
func (in *Individual) Better(other *Individual) bool {
	a, b := in.Fitness(), other.Fitness()
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a > b
}

// String renders the individual for logs and the final report.
func (in *Individual) String() string {
	return fmt.Sprintf("individual{selected: %d, fitness: %g}", in.genome.SelectedCount(), in.Fitness())
}
