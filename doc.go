// Package mpnn is a message-passing neural network encoder core:
// the forward and backward computation of a graph-level prediction,
// packaged as a pure, differentiable operator for a host training loop.
//
// 🚀 What is mpnn?
//
//	A small, deterministic library that brings together:
//		• Neighbor sets: ordered neighbor extraction from dense adjacency rows
//		• Message passing: time-stepped recurrence over directed node pairs
//		• Node encoding: neighbor-message aggregation + nonlinearity
//		• Forward pipeline: per-graph encode → linear layer → sigmoid
//		• Backward pipeline: hand-derived gradients for the learnable weights
//		• GRU variant: gated message composition with per-edge gate weights
//
// ✨ Why choose mpnn?
//
//   - Pure functions – no hidden state, no parameter ownership, no I/O
//   - Deterministic – fixed neighbor order (ascending index), bit-identical
//     outputs regardless of batch parallelism
//   - Explicit gradients – every derived gradient is spelled out; the one
//     acknowledged gap (composition-weight gradients) is pinned, not guessed
//
// Under the hood, everything is organized under four subpackages:
//
//	adjacency/ — neighbor-set utilities & per-graph adjacency lists
//	tensor/    — flat row-major tensors & rank-agnostic elementwise kernels
//	encoder/   — compose, encode, forward, backward (the operator core)
//	graphgen/  — deterministic adjacency-matrix and feature fixtures
//
// Quick ASCII example:
//
//	    0───1───2
//
//	a path graph: node 1 receives messages from 0 and 2, and the message
//	it sends to 0 never reflects what just arrived from 0.
//
// The host collaborator owns the weight matrices, applies gradient updates,
// and retains the ForwardResult bundle between matching forward/backward
// calls. Each package's doc comment spells out its exact contracts.
//
//	go get github.com/katalvlaran/mpnn
package mpnn
