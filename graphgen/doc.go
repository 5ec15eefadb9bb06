// SPDX-License-Identifier: MIT

// Package graphgen builds deterministic dense graph fixtures: adjacency
// matrices for canonical topologies (path, cycle, complete, star), seeded
// sparse random graphs, and pseudo-random node-feature matrices.
//
// Design contract (strict):
//   - Determinism: same parameters and seed ⇒ identical matrices, on any
//     platform. No time-based randomness anywhere.
//   - All constructors return (*mat.Dense, error); only sentinel errors,
//     never panics.
//   - Topologies are undirected (symmetric matrices), simple (no self-loops,
//     entries are 0/1 presence indicators), matching what the encoder
//     consumes.
//
// These fixtures exist for tests, benchmarks, and examples; production hosts
// supply their own graphs.
package graphgen
