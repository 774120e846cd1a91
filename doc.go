// Package evocover searches for small vertex covers of undirected graphs
// with a population-based evolutionary algorithm.
//
// 🚀 What is evocover?
//
//	A deterministic, single-worker metaheuristic engine that brings together:
//		• statespace — immutable indexed graphs, map-file loading, instance builders
//		• genetic    — genomes, fitness & repair, annealed seeding, populations
//		• evolution  — the generation driver: selection, crossover, mutation,
//		  elitism, deterministic crowding and catastrophe diversity injection
//
// ✨ Why choose evocover?
//
//   - Reproducible – every random draw flows from an explicit seed
//   - Cooperative – runs off the caller's goroutine and cancels cleanly
//     at generation boundaries
//   - Observable – progress callbacks at every generation, never mid-step
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	on this square, {0,3} (or {1,2}) is a minimum vertex cover; the engine
//	converges to such covers and guarantees feasibility of every candidate
//	it ever reports.
//
// The cmd/evocover binary loads a map directory (or generates a random
// instance) and runs the engine from the command line.
//
//	go get github.com/katalvlaran/evocover
package evocover
