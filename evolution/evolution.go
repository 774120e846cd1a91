package evolution

import (
	"context"
	"math/rand"
	"time"

	"github.com/katalvlaran/evocover/genetic"
	"github.com/katalvlaran/evocover/statespace"
)

// Run executes the full evolutionary search synchronously on the caller's
// goroutine and returns the run summary.
//
// Contracts:
//   - cfg must pass Validate; sp must be non-nil with at least one node
//     and one edge endpoint universe (ErrGraphUnavailable otherwise).
//   - sp is read-only for the whole run and must not be swapped mid-run.
//   - obs may be nil (treated as NopObserver); callbacks must not block.
//   - Cancellation via ctx is cooperative: it is observed at generation
//     boundaries only, never mid-reproduction, and yields a clean
//     INTERRUPTED result (not an error) carrying the statistics of the
//     last completed generation.
//
// Complexity: O(Generations · PopulationSize · (V+E)) plus seeding.
func Run(ctx context.Context, cfg Config, sp *statespace.Graph, obs Observer) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sp == nil || sp.NodeCount() == 0 {
		return nil, ErrGraphUnavailable
	}
	if obs == nil {
		obs = NopObserver{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	rng := genetic.NewRand(cfg.Seed)

	// SEEDING: annealed initial population and generation-0 baselines.
	obs.OnSeedingStarted()
	pop, err := genetic.NewPopulation(sp, cfg.PopulationSize, rng)
	if err != nil {
		return nil, err
	}
	obs.OnSeedingFinished()

	started := time.Now()
	startAvg := pop.AverageFitness()
	startBest := pop.BestIndividual().Fitness()
	pop.RefreshBestFitness()

	top := pop.BestIndividual().DeepCopy()

	countdown := catastropheReset
	lastBest := pop.BestFitness()

	// RUNNING: one iteration per generation.
	var (
		generation  int
		interrupted bool
	)
	for generation = 0; generation < cfg.Generations; generation++ {
		if ctx.Err() != nil {
			interrupted = true
			break
		}

		reportProgress(obs, pop, generation)

		// Stagnation test against the monotone best-fitness tracker:
		// exact equality, as any improvement moves the tracker.
		pop.RefreshBestFitness()
		if pop.BestFitness() == lastBest {
			countdown--
		} else {
			lastBest = pop.BestFitness()
			countdown = catastropheReset
		}

		var next []*genetic.Individual
		if countdown < 1 {
			next = catastropheGeneration(rng, pop, sp, cfg.PopulationSize, top)
			countdown = catastropheReset
		} else {
			next = normalGeneration(rng, pop, sp, cfg)
		}

		if err = pop.ReplaceAll(next); err != nil {
			return nil, err
		}

		// Global elitism bookkeeping: the all-time top only ever improves.
		if best := pop.BestIndividual(); best.Better(top) {
			top = best.DeepCopy()
		}
	}

	// COMPLETED/INTERRUPTED: final report. An interrupted run skips the
	// closing progress snapshot, matching the generation-boundary contract.
	if !interrupted {
		reportProgress(obs, pop, cfg.Generations)
	}

	elapsed := time.Since(started)
	pop.SortByFitness()
	finalAvg := pop.AverageFitness()
	finalBest := pop.BestIndividual().Fitness()
	selected, uncovered := pop.CoverStats(top)

	obs.OnRunFinished()

	return &Result{
		Generations:     generation,
		Interrupted:     interrupted,
		Elapsed:         elapsed,
		StartAvg:        startAvg,
		StartBest:       startBest,
		FinalAvg:        finalAvg,
		FinalBest:       finalBest,
		AvgGainPercent:  gainPercent(startAvg, finalAvg),
		BestGainPercent: gainPercent(startBest, finalBest),
		Best:            top,
		SelectedNodes:   selected,
		UncoveredEdges:  uncovered,
	}, nil
}

// reportProgress pushes one generation-boundary snapshot to the observer.
func reportProgress(obs Observer, pop *genetic.Population, generation int) {
	obs.OnGenerationAdvance(generation)
	obs.OnFitnessUpdate(pop.AverageFitness(), pop.BestIndividual().Fitness(), generation)

	selected, uncovered := pop.CoverStats(pop.BestIndividual())
	obs.OnCoverUpdate(pop.Graph().NodeCount(), selected)
	obs.OnEdgeCoverageUpdate(pop.Graph().EdgeCount(), uncovered)
}

// normalGeneration builds the next generation on the normal branch:
// the current best is cloned in unconditionally (elitism), then parent
// pairs are drawn by roulette, crossed over with probability
// cfg.CrossoverProbability (cloned otherwise), mutated, and appended
// until the generation is full. Deterministic crowding then re-inserts
// the Hamming-nearer parent of any offspring that failed to beat it, if
// that parent was not already re-inserted and space remains - weaker
// offspring coexist with their parent instead of erasing it.
func normalGeneration(rng *rand.Rand, pop *genetic.Population, sp *statespace.Graph, cfg Config) []*genetic.Individual {
	size := cfg.PopulationSize
	next := make([]*genetic.Individual, 0, size)
	next = append(next, pop.BestIndividual().DeepCopy())

	reinserted := make(map[*genetic.Individual]bool)

	for len(next) < size {
		parents := pop.SelectIndividuals(rng, parentsPerMating)

		var a, b *genetic.Individual
		if rng.Float64() < cfg.CrossoverProbability {
			a, b = parents[0].Crossover(rng, parents[1], sp)
		} else {
			a, b = parents[0].DeepCopy(), parents[1].DeepCopy()
		}

		a.Mutate(rng, cfg.MutationProbability, sp)
		next = append(next, a)

		// The second offspring is only finished if there is room for it.
		if len(next) < size {
			b.Mutate(rng, cfg.MutationProbability, sp)
			next = append(next, b)
		}

		next = crowd(next, size, a, parents, reinserted)
		next = crowd(next, size, b, parents, reinserted)
	}

	return next
}

// crowd applies the deterministic-crowding rule for one offspring: find
// the parent it is closer to by Hamming distance (ties toward the second
// parent) and, if the offspring did not strictly beat that parent,
// re-insert a clone of the parent while space remains.
func crowd(next []*genetic.Individual, size int, offspring *genetic.Individual, parents []*genetic.Individual, reinserted map[*genetic.Individual]bool) []*genetic.Individual {
	nearer := parents[1]
	if offspring.HammingDistanceTo(parents[0]) < offspring.HammingDistanceTo(parents[1]) {
		nearer = parents[0]
	}

	if !offspring.Better(nearer) && len(next) < size && !reinserted[nearer] {
		reinserted[nearer] = true
		next = append(next, nearer.DeepCopy())
	}

	return next
}

// catastropheGeneration rebuilds the population after prolonged
// stagnation: a few roulette-selected survivors are cloned through, the
// all-time top individual is preserved (global elitism - it has a
// reserved slot, so a survivor quota larger than the generation cannot
// crowd it out), and the rest is fresh random individuals to re-inject
// diversity.
func catastropheGeneration(rng *rand.Rand, pop *genetic.Population, sp *statespace.Graph, size int, top *genetic.Individual) []*genetic.Individual {
	next := make([]*genetic.Individual, 0, size)

	for _, survivor := range pop.SelectIndividuals(rng, catastropheSurvivors) {
		if len(next) == size-1 {
			break
		}
		next = append(next, survivor.DeepCopy())
	}
	next = append(next, top.DeepCopy())
	for len(next) < size {
		next = append(next, genetic.NewRandom(sp, rng))
	}

	return next
}

// gainPercent expresses final as a percentage of start, or 0 when the
// baseline is 0.
func gainPercent(start, final float64) float64 {
	if start == 0 {
		return 0
	}
	return final / start * 100
}
