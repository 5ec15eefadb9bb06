// SPDX-License-Identifier: MIT
// Package: mpnn/graphgen
//
// graphgen.go — deterministic adjacency-matrix and feature constructors.
//
// Contract:
//   - Canonical topologies require n ≥ 2 (else ErrTooFewNodes).
//   - Edges are emitted in stable increasing order; matrices are symmetric.
//   - Stochastic constructors take an explicit seed; seed==0 maps to a fixed
//     default so reproducible defaults stay reproducible.

package graphgen

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// ErrTooFewNodes indicates a node count below the constructor's minimum.
var ErrTooFewNodes = errors.New("graphgen: too few nodes")

// ErrInvalidProbability indicates an edge probability outside [0, 1].
var ErrInvalidProbability = errors.New("graphgen: probability out of range")

// ErrBadDimension indicates a non-positive feature dimension.
var ErrBadDimension = errors.New("graphgen: dimension must be > 0")

// defaultSeed is the fixed seed used when callers pass seed == 0.
const defaultSeed int64 = 1

// minNodes is the smallest node count any topology constructor accepts.
const minNodes = 2

// Path returns the adjacency matrix of the path graph 0—1—…—(n−1).
func Path(n int) (*mat.Dense, error) {
	if n < minNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minNodes, ErrTooFewNodes)
	}
	adj := mat.NewDense(n, n, nil)
	for i := 1; i < n; i++ {
		setEdge(adj, i-1, i)
	}
	return adj, nil
}

// Cycle returns the adjacency matrix of the cycle graph C_n.
func Cycle(n int) (*mat.Dense, error) {
	adj, err := Path(n)
	if err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}
	setEdge(adj, n-1, 0)
	return adj, nil
}

// Complete returns the adjacency matrix of the complete graph K_n.
func Complete(n int) (*mat.Dense, error) {
	if n < minNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minNodes, ErrTooFewNodes)
	}
	adj := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			setEdge(adj, i, j)
		}
	}
	return adj, nil
}

// Star returns the adjacency matrix of the star graph: node 0 is the hub,
// nodes 1..n−1 are leaves.
func Star(n int) (*mat.Dense, error) {
	if n < minNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minNodes, ErrTooFewNodes)
	}
	adj := mat.NewDense(n, n, nil)
	for i := 1; i < n; i++ {
		setEdge(adj, 0, i)
	}
	return adj, nil
}

// RandomSparse returns an undirected simple graph on n nodes where each of
// the n·(n−1)/2 candidate edges is kept with probability p, deterministically
// for a fixed seed.
func RandomSparse(n int, p float64, seed int64) (*mat.Dense, error) {
	if n < minNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minNodes, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
	}
	rng := rngFromSeed(seed)
	adj := mat.NewDense(n, n, nil)
	// Stable candidate order (i, j) with i < j keeps the stream reproducible.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				setEdge(adj, i, j)
			}
		}
	}
	return adj, nil
}

// Features returns an (n × d) node-feature matrix with entries drawn
// uniformly from [0, 1), deterministically for a fixed seed.
func Features(n, d int, seed int64) (*mat.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("Features: n=%d < min=1: %w", n, ErrTooFewNodes)
	}
	if d < 1 {
		return nil, fmt.Errorf("Features: d=%d: %w", d, ErrBadDimension)
	}
	rng := rngFromSeed(seed)
	data := make([]float64, n*d)
	for i := range data {
		data[i] = rng.Float64()
	}
	return mat.NewDense(n, d, data), nil
}

// setEdge marks the undirected edge (i, j) as present.
func setEdge(adj *mat.Dense, i, j int) {
	adj.Set(i, j, 1)
	adj.Set(j, i, 1)
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}
