// SPDX-License-Identifier: MIT

// Package tensor provides the dense numeric containers and elementwise
// kernels used by the encoder core.
//
// The tensor package provides:
//
//   - Cube — an (n1 × n2 × d) float64 tensor in flat row-major storage;
//     the message tensor, indexed (source, destination) → feature vector.
//   - Grid — an (n1 × n2) grid of (r × c) matrices sharing one flat backing
//     slice; per-edge gate weights for the GRU composer.
//   - Elementwise kernels (Relu, ReluDeriv, Sigmoid, SigmoidDeriv, Tanh)
//     operating on raw backing slices, so one implementation serves arrays
//     of any logical rank.
//
// Flat storage is best here: inner loops touch contiguous memory, views are
// subslices (no copies), and the rank of a value never forces duplicated
// derivative code.
//
// Indexed accessors perform no bounds checking beyond what the runtime
// provides; shape consistency is a caller contract, per the encoder's
// error-handling design.
package tensor
