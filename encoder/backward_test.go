package encoder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mpnn/encoder"
	"github.com/katalvlaran/mpnn/graphgen"
)

// TestBackward_PinnedZeroCompositionGradients pins the documented
// incompleteness: the composition-weight gradients are always all-zero and
// exactly weight-shaped, regardless of inputs.
func TestBackward_PinnedZeroCompositionGradients(t *testing.T) {
	const (
		n = 5
		d = 3
	)
	w := identityWeights(n, d, 2, 0.02, 0.1)
	nf, err := graphgen.Features(n, d, 3)
	require.NoError(t, err)
	adj, err := graphgen.RandomSparse(n, 0.5, 11)
	require.NoError(t, err)

	res, err := encoder.Forward([]*mat.Dense{nf}, []*mat.Dense{adj}, w, encoder.WithTimeSteps(3))
	require.NoError(t, err)

	grads, err := encoder.Backward(constDense(1, 2, 1), res, []*mat.Dense{nf}, w)
	require.NoError(t, err)

	for _, g := range []*mat.Dense{grads.WNodeFeatures, grads.WNeighborMessages} {
		r, c := g.Dims()
		assert.Equal(t, d, r)
		assert.Equal(t, d, c)
		for _, v := range g.RawMatrix().Data {
			assert.Zero(t, v)
		}
	}
}

// TestBackward_OutputLayerHandDerived checks every derived gradient on a
// 2-node path with single-step messages, against closed-form values.
//
// Setup: features [[1],[2]], identity W/U, linear weight [0.5 0.5], bias 0.
// Messages: 0→1 = [1], 1→0 = [2]; encodings flatten to [3, 3]; pre = 3.
func TestBackward_OutputLayerHandDerived(t *testing.T) {
	w := identityWeights(2, 1, 1, 0.5, 0)
	nf := mat.NewDense(2, 1, []float64{1, 2})
	adj, err := graphgen.Path(2)
	require.NoError(t, err)

	res, err := encoder.Forward([]*mat.Dense{nf}, []*mat.Dense{adj}, w)
	require.NoError(t, err)
	require.InDelta(t, 3.0, res.PreActivations.At(0, 0), 1e-12)

	grads, err := encoder.Backward(constDense(1, 1, 1), res, []*mat.Dense{nf}, w)
	require.NoError(t, err)

	s := 1 / (1 + math.Exp(-3.0))
	delta1 := s * (1 - s)

	assert.InDelta(t, delta1, grads.LinearBias.At(0, 0), 1e-12)
	assert.InDelta(t, 3*delta1, grads.LinearWeight.At(0, 0), 1e-12)
	assert.InDelta(t, 3*delta1, grads.LinearWeight.At(0, 1), 1e-12)

	// delta2 = [δ/2, δ/2] over the two (node, feature) slots.
	half := delta1 / 2
	dUNF := grads.UNodeFeatures[0]
	assert.InDelta(t, half*1, dUNF.At(0, 0), 1e-12)
	assert.InDelta(t, half*2, dUNF.At(0, 1), 1e-12)
	assert.InDelta(t, half*1, dUNF.At(1, 0), 1e-12)
	assert.InDelta(t, half*2, dUNF.At(1, 1), 1e-12)

	// Summed rectified incoming messages: node 0 ← [2], node 1 ← [1].
	dUNM := grads.UNeighborMessages[0]
	assert.InDelta(t, half*2+half*1, dUNM.At(0, 0), 1e-12)
}

// TestBackward_DirectedUnconsumedMessage verifies that a message composed
// along a one-way edge the encoder never reads back carries no gradient.
// With the single directed edge 0→1, node 1 has no out-neighbors and node 0
// reads only the never-composed slot 1→0, so the true dUNeighborMessages is
// exactly zero even though the tensor holds a nonzero message 0→1.
func TestBackward_DirectedUnconsumedMessage(t *testing.T) {
	w := identityWeights(2, 1, 1, 0.5, 0)
	nf := mat.NewDense(2, 1, []float64{1, 2})
	adj := mat.NewDense(2, 2, []float64{
		0, 1,
		0, 0,
	})

	res, err := encoder.Forward([]*mat.Dense{nf}, []*mat.Dense{adj}, w)
	require.NoError(t, err)
	require.Equal(t, []float64{1}, res.Messages[0].At(0, 1), "the one-way message is composed")
	for _, v := range res.MessagesSummed[0].RawMatrix().Data {
		require.Zero(t, v, "nothing the encoder read was nonzero")
	}

	grads, err := encoder.Backward(constDense(1, 1, 1), res, []*mat.Dense{nf}, w)
	require.NoError(t, err)
	for _, v := range grads.UNeighborMessages[0].RawMatrix().Data {
		assert.Zero(t, v)
	}
}

// TestBackward_ShapesAcrossBatch verifies the per-graph gradient layout.
func TestBackward_ShapesAcrossBatch(t *testing.T) {
	const (
		batch = 3
		n     = 4
		d     = 2
		out   = 2
	)
	w := identityWeights(n, d, out, 0.05, 0)
	nf := make([]*mat.Dense, batch)
	am := make([]*mat.Dense, batch)
	for b := 0; b < batch; b++ {
		var err error
		nf[b], err = graphgen.Features(n, d, int64(b+1))
		require.NoError(t, err)
		am[b], err = graphgen.Cycle(n)
		require.NoError(t, err)
	}

	res, err := encoder.Forward(nf, am, w, encoder.WithTimeSteps(2))
	require.NoError(t, err)
	grads, err := encoder.Backward(constDense(batch, out, 1), res, nf, w)
	require.NoError(t, err)

	require.Len(t, grads.UNodeFeatures, batch)
	require.Len(t, grads.UNeighborMessages, batch)
	for b := 0; b < batch; b++ {
		r, c := grads.UNodeFeatures[b].Dims()
		assert.Equal(t, [2]int{n, n}, [2]int{r, c})
		r, c = grads.UNeighborMessages[b].Dims()
		assert.Equal(t, [2]int{d, d}, [2]int{r, c})
	}
	r, c := grads.LinearWeight.Dims()
	assert.Equal(t, [2]int{out, n * d}, [2]int{r, c})
	r, c = grads.LinearBias.Dims()
	assert.Equal(t, [2]int{batch, out}, [2]int{r, c})
}

// TestBackward_DoesNotMutateInputs verifies weights, features, and the
// forward bundle survive a backward call untouched.
func TestBackward_DoesNotMutateInputs(t *testing.T) {
	w := identityWeights(3, 2, 1, 0.05, 0)
	nf := pathFeatures3()
	adj, err := graphgen.Path(3)
	require.NoError(t, err)

	res, err := encoder.Forward([]*mat.Dense{nf}, []*mat.Dense{adj}, w, encoder.WithTimeSteps(2))
	require.NoError(t, err)

	preBefore := mat.DenseCopyOf(res.PreActivations)
	msgBefore := res.Messages[0].Clone()
	lwBefore := mat.DenseCopyOf(w.LinearWeight)

	_, err = encoder.Backward(constDense(1, 1, 0.7), res, []*mat.Dense{nf}, w)
	require.NoError(t, err)

	assert.Equal(t, preBefore.RawMatrix().Data, res.PreActivations.RawMatrix().Data)
	assert.Equal(t, msgBefore.Raw(), res.Messages[0].Raw())
	assert.Equal(t, lwBefore.RawMatrix().Data, w.LinearWeight.RawMatrix().Data)
}

// TestBackward_Errors covers the boundary sentinels.
func TestBackward_Errors(t *testing.T) {
	w := identityWeights(3, 2, 1, 0.05, 0)
	nf := pathFeatures3()
	adj, err := graphgen.Path(3)
	require.NoError(t, err)

	res, err := encoder.Forward([]*mat.Dense{nf}, []*mat.Dense{adj}, w)
	require.NoError(t, err)

	_, err = encoder.Backward(nil, res, []*mat.Dense{nf}, w)
	assert.ErrorIs(t, err, encoder.ErrNilUpstreamGradient)

	_, err = encoder.Backward(constDense(1, 1, 1), nil, []*mat.Dense{nf}, w)
	assert.ErrorIs(t, err, encoder.ErrNilForwardResult)

	_, err = encoder.Backward(constDense(1, 1, 1), res, []*mat.Dense{nf}, nil)
	assert.ErrorIs(t, err, encoder.ErrNilWeights)

	_, err = encoder.Backward(constDense(1, 1, 1), res, nil, w)
	assert.ErrorIs(t, err, encoder.ErrBatchMismatch)
}
