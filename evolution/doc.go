// Package evolution orchestrates the generational search for a small
// vertex cover.
//
// A run moves through SEEDING → RUNNING → (COMPLETED | INTERRUPTED):
// the driver seeds a population of annealed individuals, then per
// generation reports progress to an Observer, tests for fitness
// stagnation, builds the next generation by either the normal branch
// (elitism, roulette parent selection, crossover or cloning, mutation,
// deterministic crowding) or the catastrophe branch (a handful of
// roulette survivors, the all-time best, and fresh random individuals),
// installs it wholesale, and advances the all-time best.
//
// Concurrency model: a single goroutine owns all evolutionary state; the
// graph is shared read-only and must not be replaced mid-run. Cancellation
// is cooperative and observed only at generation boundaries - an in-flight
// generation always completes. Observer callbacks happen synchronously at
// those same boundaries and must not block.
//
// Use Run for a synchronous run on the caller's goroutine, or Start for a
// background run with a cancelable Handle.
package evolution
