// Package statespace defines the immutable graph value the evolutionary
// engine searches over, plus thin I/O around it:
//
//   - Graph — dense node indices 0..n-1, an ordered edge sequence and
//     per-node adjacency of edges recorded against their From endpoint
//     (see Degree for the asymmetry this creates)
//   - LoadDir / ListMaps — the plain-text "nodes"/"edges" map-file format
//   - Path / Cycle / RandomSparse — deterministic instance constructors
//     for tests, benchmarks and the CLI
//
// A Graph is built once, validated at construction and never mutated;
// it is safe to share across goroutines for the duration of a run.
package statespace
