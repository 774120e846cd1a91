package genetic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evocover/statespace"
)

// TestNewRandom_FeasibleWithFitness verifies the feasibility invariant and
// a valid fitness cache on random initialization.
func TestNewRandom_FeasibleWithFitness(t *testing.T) {
	sp, err := statespace.RandomSparse(40, 0.1, statespace.WithSeed(21))
	require.NoError(t, err)

	rng := NewRand(1)
	for i := 0; i < 10; i++ {
		in := NewRandom(sp, rng)
		require.True(t, Feasible(in.Genome(), sp))
		require.Equal(t, Fitness(in.Genome(), sp), in.Fitness(), "cache must match the genome")
	}
}

// TestMutate_KeepsFeasibility mutates aggressively and checks the repair
// invariant plus cache consistency after every step.
func TestMutate_KeepsFeasibility(t *testing.T) {
	sp, err := statespace.RandomSparse(30, 0.15, statespace.WithSeed(4))
	require.NoError(t, err)

	rng := NewRand(2)
	in := NewRandom(sp, rng)
	for i := 0; i < 50; i++ {
		in.Mutate(rng, 0.5, sp)
		require.True(t, Feasible(in.Genome(), sp), "step %d broke feasibility", i)
		require.Equal(t, Fitness(in.Genome(), sp), in.Fitness(), "step %d left a stale cache", i)
	}
}

// TestMutate_ZeroRateIsNoop: with rate 0 the genome must survive intact.
func TestMutate_ZeroRateIsNoop(t *testing.T) {
	sp, err := statespace.Path(6)
	require.NoError(t, err)

	rng := NewRand(3)
	in := NewRandom(sp, rng)
	before := in.Genome().Clone()

	in.Mutate(rng, 0, sp)
	require.Equal(t, before, in.Genome())
}

// TestCrossover_OffspringFeasible verifies both children are feasible,
// full-length, carry valid fitness, and leave the parents untouched.
func TestCrossover_OffspringFeasible(t *testing.T) {
	sp, err := statespace.RandomSparse(35, 0.12, statespace.WithSeed(14))
	require.NoError(t, err)

	rng := NewRand(5)
	p1 := NewRandom(sp, rng)
	p2 := NewRandom(sp, rng)
	g1 := p1.Genome().Clone()
	g2 := p2.Genome().Clone()

	for i := 0; i < 25; i++ {
		a, b := p1.Crossover(rng, p2, sp)
		for _, child := range []*Individual{a, b} {
			require.Len(t, child.Genome(), sp.NodeCount())
			require.True(t, Feasible(child.Genome(), sp))
			require.Equal(t, Fitness(child.Genome(), sp), child.Fitness())
		}
	}

	require.Equal(t, g1, p1.Genome(), "crossover must not modify parent 1")
	require.Equal(t, g2, p2.Genome(), "crossover must not modify parent 2")
}

// TestCrossover_SegmentInheritance pins the copy semantics. On an
// edgeless graph repair is a no-op, so every child bit is exactly what
// the copy loop wrote; with complementary parents each position inside a
// full segment must then carry opposite bits in the two children, and the
// first segment always copies (in, other) into (childA, childB).
func TestCrossover_SegmentInheritance(t *testing.T) {
	const size = 96

	nodes := make([]statespace.Node, size)
	for i := range nodes {
		nodes[i] = statespace.Node{ID: i}
	}
	sp, err := statespace.New(nodes, nil)
	require.NoError(t, err)

	ones := NewGenome(size)
	for i := range ones {
		ones[i] = true
	}
	p1 := fixedIndividual(ones, Fitness(ones, sp))
	p2 := fixedIndividual(NewGenome(size), Fitness(NewGenome(size), sp))

	rng := NewRand(19)
	for trial := 0; trial < 30; trial++ {
		a, b := p1.Crossover(rng, p2, sp)

		// Segment 0 is always even, so it copies parent 1 into child A and
		// parent 2 into child B; its width is at least size/8 for any point
		// count in [3,8].
		for j := 0; j < size/maxCrossoverPoints; j++ {
			require.True(t, a.IsNodeSelected(j), "trial %d position %d: child A must inherit parent 1", trial, j)
			require.False(t, b.IsNodeSelected(j), "trial %d position %d: child B must inherit parent 2", trial, j)
		}

		// Every position below size-(k-1) lies inside a full segment for any
		// point count k, so both children inherit there - from opposite
		// parents, hence complementary bits.
		for j := 0; j < size-(maxCrossoverPoints-1); j++ {
			require.NotEqual(t, a.IsNodeSelected(j), b.IsNodeSelected(j),
				"trial %d position %d: copied segments must carry parental bits", trial, j)
		}
	}
}

// TestCrossover_TinyGenome: a genome shorter than the point count still
// yields feasible children (segments collapse to width 0).
func TestCrossover_TinyGenome(t *testing.T) {
	sp, err := statespace.Path(2)
	require.NoError(t, err)

	rng := NewRand(6)
	a, b := NewRandom(sp, rng).Crossover(rng, NewRandom(sp, rng), sp)
	require.True(t, Feasible(a.Genome(), sp))
	require.True(t, Feasible(b.Genome(), sp))
}

// TestDeepCopy_Independence mutates the copy and checks the original.
func TestDeepCopy_Independence(t *testing.T) {
	sp, err := statespace.Path(8)
	require.NoError(t, err)

	rng := NewRand(7)
	orig := NewRandom(sp, rng)
	before := orig.Genome().Clone()
	fit := orig.Fitness()

	cp := orig.DeepCopy()
	require.Equal(t, before, cp.Genome())
	require.Equal(t, fit, cp.Fitness())

	cp.Mutate(rng, 1, sp)
	require.Equal(t, before, orig.Genome(), "copy mutation leaked into original")
	require.Equal(t, fit, orig.Fitness())
}

// TestHammingDistance_TwoBits: genomes differing in exactly 2 of 4
// positions report distance 2.
func TestHammingDistance_TwoBits(t *testing.T) {
	a := &Individual{genome: Genome{true, false, true, false}}
	b := &Individual{genome: Genome{true, true, true, true}}

	require.Equal(t, 2, a.HammingDistanceTo(b))
	require.Equal(t, 2, b.HammingDistanceTo(a))
	require.Equal(t, 0, a.HammingDistanceTo(a))
}

// TestBetter_NaNNeverWins pins the NaN ordering: an unset fitness loses
// every comparison and never beats anything.
func TestBetter_NaNNeverWins(t *testing.T) {
	unset := &Individual{}
	require.True(t, math.IsNaN(unset.Fitness()))

	known := &Individual{fitness: -100, fitKnown: true}

	require.False(t, unset.Better(known))
	require.True(t, known.Better(unset))
	require.False(t, unset.Better(unset))
}
