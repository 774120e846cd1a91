// Package evolution - configuration, sentinel errors, observer surface
// and the run result.
package evolution

import (
	"errors"
	"time"

	"github.com/katalvlaran/evocover/genetic"
)

// Sentinel errors rejected before SEEDING begins; a run never starts on
// invalid input.
var (
	// ErrBadGenerations indicates a non-positive generation budget.
	ErrBadGenerations = errors.New("evolution: generations must be positive")
	// ErrBadPopulationSize indicates a population smaller than 2.
	ErrBadPopulationSize = errors.New("evolution: population size must be at least 2")
	// ErrBadProbability indicates a probability outside the closed [0,1].
	ErrBadProbability = errors.New("evolution: probability out of range")
	// ErrGraphUnavailable indicates a nil or empty graph when a run is
	// requested.
	ErrGraphUnavailable = errors.New("evolution: graph is missing or empty")
)

// Driver constants from the reference behavior, not configuration.
const (
	// catastropheReset is the stagnation countdown: the catastrophe branch
	// fires after this many consecutive generations without a new best.
	catastropheReset = 200
	// catastropheSurvivors is how many roulette-selected individuals are
	// carried through a catastrophe.
	catastropheSurvivors = 8
	// parentsPerMating is the roulette draw per reproduction step.
	parentsPerMating = 2
)

// Default run parameters.
const (
	DefaultGenerations          = 1000
	DefaultPopulationSize       = 100
	DefaultMutationProbability  = 0.02
	DefaultCrossoverProbability = 0.9
)

// Config holds the run parameters supplied by the caller.
type Config struct {
	// Generations is the generation budget; the run stops after this many
	// generations unless cancelled earlier.
	Generations int
	// PopulationSize is the fixed population size at every generation
	// boundary. Minimum 2.
	PopulationSize int
	// MutationProbability is the per-bit random-reset probability, in [0,1].
	MutationProbability float64
	// CrossoverProbability is the probability that a selected parent pair
	// is crossed over rather than cloned, in [0,1].
	CrossoverProbability float64
	// Seed drives all randomness of the run; 0 selects a fixed default so
	// the zero value is still deterministic.
	Seed int64
}

// DefaultConfig returns the reference defaults.
func DefaultConfig() Config {
	return Config{
		Generations:          DefaultGenerations,
		PopulationSize:       DefaultPopulationSize,
		MutationProbability:  DefaultMutationProbability,
		CrossoverProbability: DefaultCrossoverProbability,
	}
}

// Validate checks the configuration. Returns ErrBadGenerations,
// ErrBadPopulationSize or ErrBadProbability on the first violation.
func (c Config) Validate() error {
	if c.Generations <= 0 {
		return ErrBadGenerations
	}
	if c.PopulationSize < 2 {
		return ErrBadPopulationSize
	}
	if c.MutationProbability < 0 || c.MutationProbability > 1 {
		return ErrBadProbability
	}
	if c.CrossoverProbability < 0 || c.CrossoverProbability > 1 {
		return ErrBadProbability
	}
	return nil
}

// Observer receives progress at generation boundaries only, synchronously
// from the engine goroutine. Implementations must not block; hand work to
// a rendering loop instead of doing it in the callback.
type Observer interface {
	// OnSeedingStarted fires before the annealed initial population is built.
	OnSeedingStarted()
	// OnSeedingFinished fires once the initial population is in place.
	OnSeedingFinished()
	// OnGenerationAdvance reports the index of the generation about to run;
	// the budget value is reported once more after the final generation.
	OnGenerationAdvance(generation int)
	// OnFitnessUpdate reports the current average and best fitness.
	OnFitnessUpdate(avg, best float64, generation int)
	// OnCoverUpdate reports the best individual's cover size.
	OnCoverUpdate(totalNodes, selectedNodes int)
	// OnEdgeCoverageUpdate reports the best individual's uncovered edges.
	OnEdgeCoverageUpdate(totalEdges, uncoveredEdges int)
	// OnRunFinished fires exactly once, after COMPLETED or INTERRUPTED.
	OnRunFinished()
}

// NopObserver ignores every callback.
type NopObserver struct{}

func (NopObserver) OnSeedingStarted()                   {}
func (NopObserver) OnSeedingFinished()                  {}
func (NopObserver) OnGenerationAdvance(int)             {}
func (NopObserver) OnFitnessUpdate(_, _ float64, _ int) {}
func (NopObserver) OnCoverUpdate(_, _ int)              {}
func (NopObserver) OnEdgeCoverageUpdate(_, _ int)       {}
func (NopObserver) OnRunFinished()                      {}

// Result summarizes a finished (or interrupted) run.
type Result struct {
	// Generations is the number of fully completed generations.
	Generations int
	// Interrupted reports a cooperative cancellation; statistics cover
	// everything through the last completed generation.
	Interrupted bool
	// Elapsed is the wall time from the end of seeding to termination.
	Elapsed time.Duration

	// StartAvg and StartBest are the generation-0 baselines.
	StartAvg, StartBest float64
	// FinalAvg and FinalBest describe the final population.
	FinalAvg, FinalBest float64
	// AvgGainPercent and BestGainPercent express the final values as a
	// percentage of their generation-0 baselines (0 when the baseline is 0).
	AvgGainPercent, BestGainPercent float64

	// Best is the best individual ever observed; its fitness is
	// non-decreasing across generations and its genome is feasible.
	Best *genetic.Individual
	// SelectedNodes and UncoveredEdges are Best's cover diagnostics.
	SelectedNodes  int
	UncoveredEdges int
}
