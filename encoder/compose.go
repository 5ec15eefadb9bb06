package encoder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mpnn/adjacency"
	"github.com/katalvlaran/mpnn/tensor"
)

// ComposeMessages runs timeSteps synchronized rounds of the message
// recurrence and returns the final (n × n × d) message tensor, where entry
// (i, j) is the message flowing from node i to node j.
//
// Round t reads only round t−1's complete tensor (the initial tensor is all
// zero), so with timeSteps == 1 every message n→e is exactly
// WNodeFeatures · nodeFeatures[n]. For a sender n with more than one
// neighbor, the message to e additionally sums, over every OTHER neighbor o,
// WNeighborMessages · relu(previous[o][n]); the message that last arrived
// at n FROM e is excluded, so nothing reflects straight back.
//
// Returns ErrNilWeights, ErrNilAdjacency, or ErrOptionViolation for invalid
// input; shape consistency is a caller contract.
func ComposeMessages(w *Weights, nodeFeatures mat.Matrix, adj *adjacency.List, timeSteps int) (*tensor.Cube, error) {
	if w == nil {
		return nil, ErrNilWeights
	}
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	if timeSteps < 1 {
		return nil, fmt.Errorf("%w: timeSteps must be >= 1 (%d)", ErrOptionViolation, timeSteps)
	}
	return composeMessages(w.WNodeFeatures, w.WNeighborMessages, nodeFeatures, adj, timeSteps), nil
}

// composeMessages is the validation-free core of ComposeMessages, shared
// with the Forward pipeline. All scratch buffers live for the whole call;
// the two message tensors ping-pong between rounds.
func composeMessages(wNF, wNM *mat.Dense, nodeFeatures mat.Matrix, adj *adjacency.List, timeSteps int) *tensor.Cube {
	n := adj.Len()
	_, d := nodeFeatures.Dims()

	cur := mustCube(n, n, d)
	next := mustCube(n, n, d)

	var (
		x       = mat.NewVecDense(d, make([]float64, d)) // sender features
		base    = mat.NewVecDense(d, make([]float64, d)) // WNodeFeatures·x
		rect    = mat.NewVecDense(d, make([]float64, d)) // relu(prev message)
		contrib = mat.NewVecDense(d, make([]float64, d)) // WNeighborMessages·rect
		sum     = make([]float64, d)                     // neighbor-exclusion sum
	)

	for step := 0; step < timeSteps; step++ {
		next.Zero()
		for nid := 0; nid < n; nid++ {
			nbrs := adj.Neighbors(nid)
			if len(nbrs) == 0 {
				continue
			}
			// The feature term is identical for every edge leaving nid.
			mat.Row(x.RawVector().Data, nid, nodeFeatures)
			base.MulVec(wNF, x)

			for _, end := range nbrs {
				for k := range sum {
					sum[k] = 0
				}
				if len(nbrs) > 1 {
					endIdx := adjacency.IndexOf(nbrs, end)
					others := adjacency.RemoveAt(nbrs, endIdx)
					for _, o := range others {
						// Messages that arrived AT nid from o during the
						// previous round, rectified before weighting.
						tensor.Relu(rect.RawVector().Data, cur.At(o, nid))
						contrib.MulVec(wNM, rect)
						cd := contrib.RawVector().Data
						for k := 0; k < d; k++ {
							sum[k] += cd[k]
						}
					}
				}
				dst := next.At(nid, end)
				bd := base.RawVector().Data
				for k := 0; k < d; k++ {
					dst[k] = bd[k] + sum[k]
				}
			}
		}
		// Full replacement per round: no temporal blending.
		cur, next = next, cur
	}
	return cur
}

// mustCube wraps tensor.NewCube for dimensions already known to be valid.
func mustCube(n1, n2, d int) *tensor.Cube {
	c, err := tensor.NewCube(n1, n2, d)
	if err != nil {
		panic(fmt.Sprintf("encoder: internal cube allocation: %v", err))
	}
	return c
}
