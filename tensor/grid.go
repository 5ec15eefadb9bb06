// SPDX-License-Identifier: MIT
// Package: mpnn/tensor
//
// grid.go — Grid, an (n1 × n2) grid of (r × c) matrices in one flat slice.
//
// Purpose:
//   - The GRU composer keeps a distinct gate matrix PER DIRECTED EDGE.
//     Grid stores all of them contiguously and hands out gonum views.
//
// Design:
//   - At(i,j) wraps the edge's subslice in a *mat.Dense via mat.NewDense,
//     which SHARES storage: writes through the view mutate the Grid.
//   - Constructor validates shape; At does not (caller contract).

package tensor

import "gonum.org/v1/gonum/mat"

// Grid is an (n1 × n2) grid of dense (r × c) matrices with one contiguous
// backing slice. Cell (i, j) is the matrix attached to directed edge i→j.
type Grid struct {
	n1, n2, r, c int
	data         []float64 // length n1*n2*r*c, cell-major then row-major
}

// NewGrid creates an all-zero Grid of (n1 × n2) cells, each an (r × c)
// matrix. Returns ErrBadShape if any dimension is not positive.
func NewGrid(n1, n2, r, c int) (*Grid, error) {
	if n1 <= 0 || n2 <= 0 || r <= 0 || c <= 0 {
		return nil, ErrBadShape
	}
	return &Grid{n1: n1, n2: n2, r: r, c: c, data: make([]float64, n1*n2*r*c)}, nil
}

// Dims returns the grid dimensions (n1, n2) and the per-cell shape (r, c).
func (g *Grid) Dims() (n1, n2, r, c int) { return g.n1, g.n2, g.r, g.c }

// At returns the (r × c) matrix of cell (i, j) as a gonum view sharing the
// Grid's backing storage.
func (g *Grid) At(i, j int) *mat.Dense {
	cell := g.r * g.c
	base := (i*g.n2 + j) * cell
	return mat.NewDense(g.r, g.c, g.data[base:base+cell])
}

// Raw exposes the flat backing slice.
func (g *Grid) Raw() []float64 { return g.data }
