package genetic

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/evocover/statespace"
)

// Simulated-annealing schedule for seed individuals. The schedule is part
// of the algorithm, not configuration: ~1150 iterations from T=10000 down
// to the freeze point at cooling rate 0.008.
const (
	annealStartTemperature = 10000.0
	annealCoolingRate      = 0.008
	annealFreezePoint      = 1.0
	annealAcceptanceScale  = 10.0
)

// AcceptanceProbability returns the probability of moving from a state
// with oldFitness to a neighbor with newFitness at the given temperature:
// exactly 1.0 when newFitness >= oldFitness, otherwise
// exp((newFitness−oldFitness)·10/temperature) - strictly inside (0,1) for
// any finite downhill step at positive temperature.
func AcceptanceProbability(oldFitness, newFitness, temperature float64) float64 {
	if newFitness >= oldFitness {
		return 1.0
	}
	// The bigger the downhill step or the lower the temperature,
	// the smaller the exponent and the chance.
	return math.Exp((newFitness - oldFitness) * annealAcceptanceScale / temperature)
}

// NewAnnealed creates a seed individual by simulated annealing.
//
// The walk starts from the repaired all-false genome (feasible, likely
// poor). Each step picks a uniformly random edge, flips the selection bit
// of both its endpoints, repairs the neighbor and accepts it per
// AcceptanceProbability; the best state ever accepted becomes the result.
// Temperature decays geometrically until the freeze point.
//
// The result is always feasible and its fitness is at least that of the
// repaired all-false start.
// Complexity: O(iterations·(V+E)) with a fixed iteration count (~1150).
func NewAnnealed(sp *statespace.Graph, rng *rand.Rand) *Individual {
	start := &Individual{genome: NewGenome(sp.NodeCount())}
	start.repair(sp)

	// Without edges there is no neighborhood to walk; the empty cover is
	// already optimal.
	if sp.EdgeCount() == 0 {
		return start
	}

	current := start.DeepCopy()
	best := start.DeepCopy()

	temperature := annealStartTemperature
	for temperature > annealFreezePoint {
		neighbor := current.DeepCopy()

		// Flip which endpoint of a random edge is turned on (often both).
		e := sp.EdgeAt(rng.Intn(sp.EdgeCount()))
		neighbor.genome[e.From] = !neighbor.genome[e.From]
		neighbor.genome[e.To] = !neighbor.genome[e.To]
		neighbor.repair(sp)

		if AcceptanceProbability(current.Fitness(), neighbor.Fitness(), temperature) > rng.Float64() {
			current = neighbor
		}
		if current.Better(best) {
			best = current.DeepCopy()
		}

		temperature *= 1 - annealCoolingRate
	}

	return best
}
