package adjacency

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrNilMatrix is returned when a nil adjacency matrix is passed to NewList.
var ErrNilMatrix = errors.New("adjacency: matrix is nil")

// ErrNonSquare is returned when the adjacency matrix is not square.
var ErrNonSquare = errors.New("adjacency: matrix is not square")

// List holds the neighbor sets of every node of one graph, extracted once
// from its dense adjacency matrix. Row i of the matrix describes the edges
// leaving node i; neighbor order is ascending node index.
//
// A List is immutable after construction and safe for concurrent readers.
type List struct {
	neighbors [][]int
}

// NewList builds the adjacency List of a dense adjacency matrix in one pass.
// Entry (i, j) ≠ 0 means a directed edge i→j. Self-loops and multiplicities
// are not treated specially: any non-zero entry is plain edge presence.
//
// Returns ErrNilMatrix or ErrNonSquare on invalid input.
// Complexity: O(n²) time, O(n + E) memory.
func NewList(adj mat.Matrix) (*List, error) {
	if adj == nil {
		return nil, ErrNilMatrix
	}
	r, c := adj.Dims()
	if r != c {
		return nil, ErrNonSquare
	}

	l := &List{neighbors: make([][]int, r)}
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, adj)
		l.neighbors[i] = FindNeighbors(row)
	}
	return l, nil
}

// Len returns the number of nodes in the graph.
func (l *List) Len() int { return len(l.neighbors) }

// Neighbors returns the ascending neighbor indices of node i.
// The returned slice is shared, read-only state: callers must not mutate it
// (use RemoveAt for exclusion, which copies).
func (l *List) Neighbors(i int) []int { return l.neighbors[i] }

// Degree returns the out-degree of node i.
func (l *List) Degree(i int) int { return len(l.neighbors[i]) }
