// Package genetic implements the evolutionary building blocks for
// vertex-cover search:
//
//   - Genome — fixed-length boolean cover-membership vector
//   - Fitness / Repair — the scalar evaluator and the feasibility pass
//     that restores the cover invariant after any genetic operator
//   - Individual — genome plus cached fitness, with random and
//     simulated-annealing initializers, mutation, segmented crossover,
//     deep copy and Hamming distance
//   - Population — fixed-size ordered collection with roulette-wheel
//     selection, NaN-safe statistics and wholesale replacement
//
// Invariant: every Individual produced by an exported constructor or
// operator is feasible — each graph edge has at least one selected
// endpoint — because every genome change is followed by Repair.
//
// Determinism: nothing here touches a global RNG; every stochastic
// operation takes an explicit *rand.Rand, seeded via NewRand/DeriveRand.
package genetic
