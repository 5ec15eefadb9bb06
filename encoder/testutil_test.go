package encoder_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mpnn/adjacency"
	"github.com/katalvlaran/mpnn/encoder"
	"github.com/katalvlaran/mpnn/graphgen"
	"github.com/katalvlaran/mpnn/tensor"
)

// eye returns the n×n identity matrix.
func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// constDense returns an r×c matrix with every entry v.
func constDense(r, c int, v float64) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = v
	}
	return mat.NewDense(r, c, data)
}

// identityWeights builds a Weights bundle with identity message/encoding
// weights, a constant lwScale output layer, and bias.
func identityWeights(n, d, out int, lwScale, bias float64) *encoder.Weights {
	b := make([]float64, out)
	for i := range b {
		b[i] = bias
	}
	return &encoder.Weights{
		WNodeFeatures:     eye(d),
		WNeighborMessages: eye(d),
		UNodeFeatures:     eye(n),
		UNeighborMessages: eye(d),
		LinearWeight:      constDense(out, n*d, lwScale),
		LinearBias:        mat.NewVecDense(out, b),
	}
}

// pathList builds the adjacency list of the n-node path graph.
func pathList(t *testing.T, n int) *adjacency.List {
	t.Helper()
	adj, err := graphgen.Path(n)
	require.NoError(t, err)
	list, err := adjacency.NewList(adj)
	require.NoError(t, err)
	return list
}

// emptyList builds the adjacency list of an edgeless n-node graph.
func emptyList(t *testing.T, n int) *adjacency.List {
	t.Helper()
	list, err := adjacency.NewList(mat.NewDense(n, n, nil))
	require.NoError(t, err)
	return list
}

// pathFeatures3 is the fixed 3×2 node-feature fixture used across the
// compose/encode/forward hand-computed tests.
func pathFeatures3() *mat.Dense {
	return mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
}

// identityGrid returns an (n1 × n2) grid whose every cell is the d×d identity.
func identityGrid(t *testing.T, n1, n2, d int) *tensor.Grid {
	t.Helper()
	g, err := tensor.NewGrid(n1, n2, d, d)
	require.NoError(t, err)
	for i := 0; i < n1; i++ {
		for j := 0; j < n2; j++ {
			cell := g.At(i, j)
			for k := 0; k < d; k++ {
				cell.Set(k, k, 1)
			}
		}
	}
	return g
}
