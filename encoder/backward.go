package encoder

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mpnn/tensor"
)

// Backward derives the weight gradients for one Forward call, given the
// upstream gradient of the host's loss with respect to the predictions.
//
// Derivation (⊙ is elementwise):
//
//	delta1        = gradOutput ⊙ σ'(preActivations)
//	dLinearBias   = delta1                                (batch × out)
//	dLinearWeight = delta1ᵀ · encodings                   (out × n·d)
//	delta2        = (delta1 · linearWeight) as (n × d) ⊙ relu'(encodings)
//	dUNodeFeatures[b]     = delta2[b] · nodeFeatures[b]ᵀ   (n × n)
//	dUNeighborMessages[b] = delta2[b]ᵀ · messagesSummed[b] (d × d)
//
// messagesSummed[b] comes from the ForwardResult bundle: the rectified
// messages summed, per destination node, over exactly the edges the encoder
// read in the forward direction. Messages composed along one-way edges that
// the encoder never read back carry no gradient, so the sum must not touch
// them; this matters only under directed (asymmetric) adjacency.
//
// The gradients for WNodeFeatures and WNeighborMessages are NOT derived: the
// path back through the multi-step recurrence is acknowledged but returned
// as zero-filled matrices with the correct weight shapes. See Gradients for
// why this is a pinned limitation rather than a true zero.
//
// No input is mutated. Returns ErrNilUpstreamGradient, ErrNilForwardResult,
// or ErrNilWeights; shape consistency is a caller contract.
func Backward(gradOutput *mat.Dense, res *ForwardResult, nodeFeatures []*mat.Dense, w *Weights) (*Gradients, error) {
	if gradOutput == nil {
		return nil, ErrNilUpstreamGradient
	}
	if res == nil || res.Predictions == nil || res.PreActivations == nil ||
		res.Encodings == nil || res.Messages == nil || res.MessagesSummed == nil {
		return nil, ErrNilForwardResult
	}
	if w == nil {
		return nil, ErrNilWeights
	}

	batch := len(res.Messages)
	if len(nodeFeatures) != batch {
		return nil, ErrBatchMismatch
	}
	n, d := nodeFeatures[0].Dims()

	// delta1 = gradOutput ⊙ σ'(preActivations)
	delta1 := mat.DenseCopyOf(res.PreActivations)
	d1raw := delta1.RawMatrix().Data
	tensor.SigmoidDeriv(d1raw, d1raw)
	goRaw := gradOutput.RawMatrix().Data
	for i := range d1raw {
		d1raw[i] *= goRaw[i]
	}

	// Output-layer gradients.
	dLinearBias := mat.DenseCopyOf(delta1)
	var dLinearWeight mat.Dense
	dLinearWeight.Mul(delta1.T(), res.Encodings)

	// delta2 = (delta1 · linearWeight) ⊙ relu'(encodings), flat (batch × n·d).
	var delta2 mat.Dense
	delta2.Mul(delta1, w.LinearWeight)
	d2raw := delta2.RawMatrix().Data
	mask := make([]float64, len(d2raw))
	tensor.ReluDeriv(mask, res.Encodings.RawMatrix().Data)
	for i := range d2raw {
		d2raw[i] *= mask[i]
	}

	grads := &Gradients{
		WNodeFeatures:     mat.NewDense(dimsOf(w.WNodeFeatures)),
		WNeighborMessages: mat.NewDense(dimsOf(w.WNeighborMessages)),
		UNodeFeatures:     make([]*mat.Dense, batch),
		UNeighborMessages: make([]*mat.Dense, batch),
		LinearWeight:      &dLinearWeight,
		LinearBias:        dLinearBias,
	}

	for b := 0; b < batch; b++ {
		// Row b of delta2, viewed as the (n × d) per-graph gradient.
		delta2b := mat.NewDense(n, d, delta2.RawRowView(b))

		var dUNF, dUNM mat.Dense
		dUNF.Mul(delta2b, nodeFeatures[b].T())
		dUNM.Mul(delta2b.T(), res.MessagesSummed[b])
		grads.UNodeFeatures[b] = &dUNF
		grads.UNeighborMessages[b] = &dUNM
	}

	return grads, nil
}

// dimsOf adapts mat.Dense dimensions to the (r, c, data) NewDense signature.
func dimsOf(m *mat.Dense) (int, int, []float64) {
	r, c := m.Dims()
	return r, c, nil
}
