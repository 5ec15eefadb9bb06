// SPDX-License-Identifier: MIT
// Package: mpnn/tensor
//
// cube.go — Cube, the flat row-major (n1 × n2 × d) tensor.
//
// Design:
//   - One contiguous []float64 backing slice, index (i,j,k) ↦ (i*n2+j)*d+k.
//   - At returns a length-d subslice VIEW: zero-copy reads and writes.
//   - Constructors validate shape; accessors do not (caller contract).
//
// Determinism & Performance:
//   - Fixed loop orders everywhere; no hidden allocations after construction.
//   - Clone is the only O(n1·n2·d) copy; Zero reuses the backing slice.

package tensor

import "errors"

// ErrBadShape indicates a requested dimension is non-positive.
var ErrBadShape = errors.New("tensor: invalid shape")

// Cube is a dense (n1 × n2 × d) float64 tensor in flat row-major storage.
// For message tensors, At(i, j) is the feature vector flowing from node i
// to node j.
type Cube struct {
	n1, n2, d int       // logical dimensions
	data      []float64 // flat backing storage, length n1*n2*d
}

// NewCube creates an all-zero (n1 × n2 × d) Cube.
// Returns ErrBadShape if any dimension is not positive.
func NewCube(n1, n2, d int) (*Cube, error) {
	if n1 <= 0 || n2 <= 0 || d <= 0 {
		return nil, ErrBadShape
	}
	return &Cube{n1: n1, n2: n2, d: d, data: make([]float64, n1*n2*d)}, nil
}

// Dims returns the three dimensions of the Cube.
func (c *Cube) Dims() (n1, n2, d int) { return c.n1, c.n2, c.d }

// At returns the length-d vector at (i, j) as a view into the backing
// storage. Writes through the view mutate the Cube. No bounds validation
// beyond the runtime's own.
func (c *Cube) At(i, j int) []float64 {
	base := (i*c.n2 + j) * c.d
	return c.data[base : base+c.d]
}

// Raw exposes the flat backing slice (row-major). Rank-agnostic kernels
// operate on this slice directly.
func (c *Cube) Raw() []float64 { return c.data }

// Clone returns an independent deep copy of the Cube.
func (c *Cube) Clone() *Cube {
	data := make([]float64, len(c.data))
	copy(data, c.data)
	return &Cube{n1: c.n1, n2: c.n2, d: c.d, data: data}
}

// Zero resets every element to 0 in place.
func (c *Cube) Zero() {
	for i := range c.data {
		c.data[i] = 0
	}
}
