package genetic

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/evocover/statespace"
)

// Sentinel errors for population operations.
var (
	// ErrPopulationSize indicates a population size below the minimum of 1.
	ErrPopulationSize = errors.New("genetic: population size must be at least 1")
	// ErrSizeMismatch indicates ReplaceAll received a generation of the
	// wrong length.
	ErrSizeMismatch = errors.New("genetic: replacement generation has wrong size")
)

// selectionAttemptFactor bounds roulette-wheel rejection sampling:
// after 64·size failed acceptance trials a draw falls back to a uniform
// pick, so a degenerate fitness distribution cannot loop forever.
const selectionAttemptFactor = 64

// Population is a fixed-size ordered collection of individuals bound to
// one graph. Order is not a ranking. The best-fitness tracker is a
// monotone high-water mark advanced only by RefreshBestFitness; all other
// statistics queries are pure.
type Population struct {
	sp          *statespace.Graph
	individuals []*Individual
	bestFitness float64
	bestTracked bool
}

// NewPopulation seeds a population of size annealed individuals.
// Each seed individual anneals on its own RNG stream derived from rng, so
// the population is reproducible for a fixed seed yet seeds do not share
// a correlated walk.
//
// Returns ErrPopulationSize for size < 1.
// Complexity: O(size · annealing cost).
func NewPopulation(sp *statespace.Graph, size int, rng *rand.Rand) (*Population, error) {
	if size < 1 {
		return nil, ErrPopulationSize
	}

	individuals := make([]*Individual, size)
	for i := range individuals {
		individuals[i] = NewAnnealed(sp, DeriveRand(rng, uint64(i)))
	}

	return &Population{sp: sp, individuals: individuals}, nil
}

// Size returns the number of individuals. Stable across generations.
func (p *Population) Size() int { return len(p.individuals) }

// Individual returns the individual at index i.
func (p *Population) Individual(i int) *Individual { return p.individuals[i] }

// Graph returns the state space this population is bound to.
func (p *Population) Graph() *statespace.Graph { return p.sp }

// SelectIndividuals draws count individuals with replacement, each with
// probability proportional to its fitness (roulette wheel via rejection
// sampling: pick a uniform index, accept with probability fit/total).
//
// Robustness bounds: when the fitness total is non-positive or not finite
// the acceptance probabilities are undefined, and an adversarial
// distribution could starve rejection sampling; in both cases the draw
// degrades to a uniform pick after the attempt budget. The result always
// contains exactly count members of the current population (duplicates
// permitted).
// Complexity: O(count) expected for healthy fitness distributions.
func (p *Population) SelectIndividuals(rng *rand.Rand, count int) []*Individual {
	var total float64
	for _, in := range p.individuals {
		total += in.Fitness()
	}
	healthy := total > 0 && !math.IsNaN(total) && !math.IsInf(total, 0)

	selected := make([]*Individual, 0, count)
	for len(selected) < count {
		selected = append(selected, p.individuals[p.drawIndex(rng, total, healthy)])
	}

	return selected
}

// drawIndex performs one bounded roulette draw; see SelectIndividuals.
func (p *Population) drawIndex(rng *rand.Rand, total float64, healthy bool) int {
	n := len(p.individuals)
	idx := rng.Intn(n)
	if !healthy {
		return idx
	}
	for attempt := 0; attempt < selectionAttemptFactor*n; attempt++ {
		if rng.Float64() < p.individuals[idx].Fitness()/total {
			return idx
		}
		idx = rng.Intn(n)
	}
	// Budget exhausted: keep the last uniform pick.
	return idx
}

// BestIndividual returns the fittest individual by linear scan. NaN
// fitness loses to everything, so an unset cache can never win.
// Complexity: O(size).
func (p *Population) BestIndividual() *Individual {
	best := p.individuals[0]
	for _, in := range p.individuals[1:] {
		if in.Better(best) {
			best = in
		}
	}
	return best
}

// AverageFitness returns the arithmetic mean fitness. Pure query: unlike
// the best-fitness tracker, nothing is updated here.
// Complexity: O(size).
func (p *Population) AverageFitness() float64 {
	var sum float64
	for _, in := range p.individuals {
		sum += in.Fitness()
	}
	return sum / float64(len(p.individuals))
}

// RefreshBestFitness advances the monotone best-fitness tracker to the
// current population best if that is higher. Explicit command; the
// stagnation (catastrophe) test reads the tracker via BestFitness.
func (p *Population) RefreshBestFitness() {
	best := p.BestIndividual().Fitness()
	if math.IsNaN(best) {
		return
	}
	if !p.bestTracked || best > p.bestFitness {
		p.bestFitness = best
		p.bestTracked = true
	}
}

// BestFitness returns the tracker's high-water mark: the highest fitness
// ever observed by RefreshBestFitness across all generations of this
// population (0 before the first refresh).
func (p *Population) BestFitness() float64 {
	if !p.bestTracked {
		return 0
	}
	return p.bestFitness
}

// CoverStats returns diagnostics for an individual: the number of selected
// nodes and the number of uncovered edges. Report-only; the optimization
// never reads these. Uncovered edges are counted through the From-endpoint
// adjacency: for every unselected node, each of its recorded edges whose
// To endpoint is also unselected counts once.
// Complexity: O(V+E).
func (p *Population) CoverStats(in *Individual) (selectedNodes, uncoveredEdges int) {
	var i int
	for i = 0; i < p.sp.NodeCount(); i++ {
		if in.IsNodeSelected(i) {
			selectedNodes++
			continue
		}
		for _, e := range p.sp.AdjacentEdges(i) {
			if !in.IsNodeSelected(e.To) {
				uncoveredEdges++
			}
		}
	}
	return selectedNodes, uncoveredEdges
}

// ReplaceAll installs next as the new generation, wholesale. The slice is
// adopted, not copied.
//
// Returns ErrSizeMismatch unless len(next) == Size().
func (p *Population) ReplaceAll(next []*Individual) error {
	if len(next) != len(p.individuals) {
		return ErrSizeMismatch
	}
	p.individuals = next
	return nil
}

// SortByFitness orders the individuals ascending by fitness, NaN first,
// so the final report lists the fittest last. Order is cosmetic; no
// engine step depends on it.
func (p *Population) SortByFitness() {
	sort.SliceStable(p.individuals, func(i, j int) bool {
		return p.individuals[j].Better(p.individuals[i])
	})
}
