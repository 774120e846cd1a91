package genetic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evocover/statespace"
)

// TestAcceptanceProbability pins the contract: exactly 1.0 for any
// non-worsening move, strictly inside (0,1) for a downhill move at
// positive temperature, and smaller for bigger drops or colder states.
func TestAcceptanceProbability(t *testing.T) {
	require.Equal(t, 1.0, AcceptanceProbability(10, 10, 500))
	require.Equal(t, 1.0, AcceptanceProbability(10, 42, 500))
	require.Equal(t, 1.0, AcceptanceProbability(-5, -5, 1))

	p := AcceptanceProbability(10, 5, 500)
	require.Greater(t, p, 0.0)
	require.Less(t, p, 1.0)

	// A larger drop is less likely to be accepted.
	require.Less(t, AcceptanceProbability(10, -50, 500), p)
	// The same drop at lower temperature is less likely too.
	require.Less(t, AcceptanceProbability(10, 5, 50), p)
}

// TestNewAnnealed_FeasibleAndNoWorseThanStart: the annealed seed must be
// feasible and at least as fit as the repaired all-false start it tracks
// as its initial best.
func TestNewAnnealed_FeasibleAndNoWorseThanStart(t *testing.T) {
	sp, err := statespace.RandomSparse(25, 0.15, statespace.WithSeed(31))
	require.NoError(t, err)

	start := NewGenome(sp.NodeCount())
	Repair(start, sp)
	floor := Fitness(start, sp)

	in := NewAnnealed(sp, NewRand(8))
	require.True(t, Feasible(in.Genome(), sp))
	require.GreaterOrEqual(t, in.Fitness(), floor)
	require.Equal(t, Fitness(in.Genome(), sp), in.Fitness())
}

// TestNewAnnealed_Deterministic: the same seed reproduces the same genome.
func TestNewAnnealed_Deterministic(t *testing.T) {
	sp, err := statespace.Cycle(12)
	require.NoError(t, err)

	a := NewAnnealed(sp, NewRand(77))
	b := NewAnnealed(sp, NewRand(77))
	require.Equal(t, a.Genome(), b.Genome())
	require.Equal(t, a.Fitness(), b.Fitness())
}
