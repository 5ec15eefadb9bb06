package encoder

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mpnn/adjacency"
	"github.com/katalvlaran/mpnn/tensor"
)

// GRUWeights bundles the caller-owned parameters of the gated message
// composer. Unlike the plain recurrence, every directed edge (i, j) carries
// its own (d × d) gate matrices, stored as tensor.Grid cells.
//
// The reset gate deliberately reuses the update-gate parameters
// (UpdateGateFeatures, UpdateGate, UpdateGateBias): the two gates share
// weights in this encoder and differ only in the message they read.
type GRUWeights struct {
	// Update/reset gate parameters: z = σ(Wz·x + Uz·m + bz).
	UpdateGateFeatures *tensor.Grid  // Wz, per-edge d×d on sender features
	UpdateGate         *tensor.Grid  // Uz, per-edge d×d on messages
	UpdateGateBias     *mat.VecDense // bz, length d

	// Candidate-memory parameters: h̃ = tanh(Wh·x + Uh·(Uh·r) + bh).
	CurrentMemoryFeatures *tensor.Grid  // Wh, per-edge d×d on sender features
	CurrentMemory         *tensor.Grid  // Uh, per-edge d×d on gated messages
	CurrentMemoryBias     *mat.VecDense // bh, length d
}

// ComposeMessagesGRU runs timeSteps rounds of the gated message recurrence
// and returns the final (n × n × d) message tensor.
//
// For each directed edge n→e, with "others" the neighbors of n except e and
// prev the previous round's tensor:
//
//	previous = Σ_o prev[n][o]                       (zero when degree ≤ 1)
//	z        = σ(Wz[n,e]·x_n + Uz[n,e]·previous + bz)
//	r_o      = σ(Wz[n,o]·x_n + Uz[n,o]·prev[n][o] + bz)
//	gated    = Uh[n,e] · Σ_o r_o ⊙ prev[n][o]
//	h̃        = tanh(Wh[n,e]·x_n + Uh[n,e]·gated + bh)
//	new[n][e] = (1 − z) ⊙ previous + z ⊙ h̃
//
// Note the candidate path applies Uh[n,e] twice (once inside gated, once
// outside); that is this encoder's recurrence, kept intact on purpose.
// The per-round barrier and zero initial tensor match ComposeMessages.
//
// Returns ErrNilWeights, ErrNilAdjacency, or ErrOptionViolation.
func ComposeMessagesGRU(gw *GRUWeights, nodeFeatures mat.Matrix, adj *adjacency.List, timeSteps int) (*tensor.Cube, error) {
	if gw == nil {
		return nil, ErrNilWeights
	}
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	if timeSteps < 1 {
		return nil, fmt.Errorf("%w: timeSteps must be >= 1 (%d)", ErrOptionViolation, timeSteps)
	}

	n := adj.Len()
	_, d := nodeFeatures.Dims()

	cur := mustCube(n, n, d)
	next := mustCube(n, n, d)

	var (
		x        = mat.NewVecDense(d, make([]float64, d))
		tmp      = mat.NewVecDense(d, make([]float64, d))
		tmp2     = mat.NewVecDense(d, make([]float64, d))
		previous = make([]float64, d)
		zGate    = make([]float64, d)
		rGate    = make([]float64, d)
		resetSum = make([]float64, d)
		memory   = make([]float64, d)
	)
	bz := gw.UpdateGateBias.RawVector().Data
	bh := gw.CurrentMemoryBias.RawVector().Data

	for step := 0; step < timeSteps; step++ {
		next.Zero()
		for nid := 0; nid < n; nid++ {
			nbrs := adj.Neighbors(nid)
			if len(nbrs) == 0 {
				continue
			}
			mat.Row(x.RawVector().Data, nid, nodeFeatures)

			for _, end := range nbrs {
				others := adjacency.RemoveAt(nbrs, adjacency.IndexOf(nbrs, end))

				// previous = sum of last round's outgoing messages to the
				// other neighbors (the target's own message excluded).
				for k := range previous {
					previous[k] = 0
				}
				if len(nbrs) > 1 {
					for _, o := range others {
						msg := cur.At(nid, o)
						for k := 0; k < d; k++ {
							previous[k] += msg[k]
						}
					}
				}

				// Update gate.
				gateVec(zGate, gw.UpdateGateFeatures.At(nid, end), x,
					gw.UpdateGate.At(nid, end), previous, bz, tmp, tmp2)
				tensor.Sigmoid(zGate, zGate)

				// Reset path: every other message passes its own gate.
				for k := range resetSum {
					resetSum[k] = 0
				}
				for _, o := range others {
					msg := cur.At(nid, o)
					gateVec(rGate, gw.UpdateGateFeatures.At(nid, o), x,
						gw.UpdateGate.At(nid, o), msg, bz, tmp, tmp2)
					tensor.Sigmoid(rGate, rGate)
					for k := 0; k < d; k++ {
						resetSum[k] += rGate[k] * msg[k]
					}
				}
				// gated = Uh[n,e] · resetSum
				tmp.MulVec(gw.CurrentMemory.At(nid, end), mat.NewVecDense(d, resetSum))
				copy(resetSum, tmp.RawVector().Data)

				// Candidate memory.
				gateVec(memory, gw.CurrentMemoryFeatures.At(nid, end), x,
					gw.CurrentMemory.At(nid, end), resetSum, bh, tmp, tmp2)
				tensor.Tanh(memory, memory)

				// Blend: keep (1−z) of the previous flow, admit z of the new.
				dst := next.At(nid, end)
				for k := 0; k < d; k++ {
					dst[k] = (1-zGate[k])*previous[k] + zGate[k]*memory[k]
				}
			}
		}
		cur, next = next, cur
	}
	return cur, nil
}

// gateVec computes dst = W·x + U·m + b without allocating: tmp and tmp2 are
// caller-provided scratch vectors of length d.
func gateVec(dst []float64, w *mat.Dense, x *mat.VecDense, u *mat.Dense, m, b []float64, tmp, tmp2 *mat.VecDense) {
	tmp.MulVec(w, x)
	tmp2.MulVec(u, mat.NewVecDense(len(m), m))
	td := tmp.RawVector().Data
	ud := tmp2.RawVector().Data
	for k := range dst {
		dst[k] = td[k] + ud[k] + b[k]
	}
}
