package encoder

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mpnn/adjacency"
	"github.com/katalvlaran/mpnn/tensor"
)

// EncodeMessages aggregates, per node, the incoming neighbor messages of the
// final round and combines them with the node's own features:
//
//	encoding = relu(UNodeFeatures · nodeFeatures + Σ_e UNeighborMessages · messages[e][n])
//
// where e ranges over the neighbors of n and messages[e][n] is the message
// that arrived at n from e. The result is a fresh (n × d) matrix; no caller
// accumulator is involved and no input is mutated.
//
// The Forward pipeline passes the RECTIFIED message tensor here; callers
// composing the pipeline by hand must do the same to reproduce it.
//
// Returns ErrNilWeights or ErrNilAdjacency for invalid input.
func EncodeMessages(w *Weights, nodeFeatures mat.Matrix, adj *adjacency.List, messages *tensor.Cube) (*mat.Dense, error) {
	if w == nil {
		return nil, ErrNilWeights
	}
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	return encodeMessages(w.UNodeFeatures, w.UNeighborMessages, nodeFeatures, adj, messages), nil
}

// encodeMessages is the validation-free core of EncodeMessages, shared with
// the Forward pipeline.
func encodeMessages(uNF, uNM *mat.Dense, nodeFeatures mat.Matrix, adj *adjacency.List, messages *tensor.Cube) *mat.Dense {
	n := adj.Len()
	_, d := nodeFeatures.Dims()

	// Incoming-message accumulator, one row per node.
	acc := mat.NewDense(n, d, nil)
	accRaw := acc.RawMatrix().Data

	var (
		msg     = mat.NewVecDense(d, make([]float64, d))
		contrib = mat.NewVecDense(d, make([]float64, d))
	)
	for nid := 0; nid < n; nid++ {
		base := nid * d
		for _, e := range adj.Neighbors(nid) {
			copy(msg.RawVector().Data, messages.At(e, nid))
			contrib.MulVec(uNM, msg)
			cd := contrib.RawVector().Data
			for k := 0; k < d; k++ {
				accRaw[base+k] += cd[k]
			}
		}
	}

	// relu(UNodeFeatures · nodeFeatures + acc), elementwise over the raw data.
	var out mat.Dense
	out.Mul(uNF, nodeFeatures)
	raw := out.RawMatrix().Data
	for i := range raw {
		raw[i] += accRaw[i]
	}
	tensor.Relu(raw, raw)
	return &out
}

// sumIncoming reduces a rectified message tensor to one row per node: the sum
// of messages.At(e, n) over e in Neighbors(n), the exact slots encodeMessages
// reads. Messages composed along edges the encoder never reads back (possible
// under directed adjacency) do not contribute. Backward consumes this as its
// messagesSummed term.
func sumIncoming(messages *tensor.Cube, adj *adjacency.List) *mat.Dense {
	n := adj.Len()
	_, _, d := messages.Dims()
	out := mat.NewDense(n, d, nil)
	raw := out.RawMatrix().Data
	for nid := 0; nid < n; nid++ {
		base := nid * d
		for _, e := range adj.Neighbors(nid) {
			msg := messages.At(e, nid)
			for k := 0; k < d; k++ {
				raw[base+k] += msg[k]
			}
		}
	}
	return out
}
