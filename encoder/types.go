package encoder

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mpnn/tensor"
)

// Sentinel errors for encoder entry points.
var (
	// ErrNilWeights is returned when a nil *Weights is passed.
	ErrNilWeights = errors.New("encoder: weights are nil")

	// ErrNilAdjacency is returned when a nil adjacency list is passed.
	ErrNilAdjacency = errors.New("encoder: adjacency list is nil")

	// ErrEmptyBatch is returned when Forward receives a zero-length batch.
	ErrEmptyBatch = errors.New("encoder: batch is empty")

	// ErrBatchMismatch is returned when the node-feature and adjacency
	// batches have different lengths.
	ErrBatchMismatch = errors.New("encoder: node-feature and adjacency batch lengths differ")

	// ErrNilForwardResult is returned when Backward receives a nil or
	// incomplete ForwardResult bundle.
	ErrNilForwardResult = errors.New("encoder: forward result is nil or incomplete")

	// ErrNilUpstreamGradient is returned when Backward receives a nil
	// upstream gradient.
	ErrNilUpstreamGradient = errors.New("encoder: upstream gradient is nil")
)

// Weights bundles the caller-owned learnable parameters of one encoder.
// The encoder never mutates them; gradient application between calls is the
// host's responsibility.
//
// Shapes, for n nodes, feature dimension d, and output size out:
//
//	WNodeFeatures     d × d    message weight on the sender's features
//	WNeighborMessages d × d    message weight on rectified neighbor messages
//	UNodeFeatures     n × n    encoding weight mixing nodes' own features
//	UNeighborMessages d × d    encoding weight on aggregated messages
//	LinearWeight      out × n·d output layer weight over flattened encodings
//	LinearBias        out       output layer bias
type Weights struct {
	WNodeFeatures     *mat.Dense
	WNeighborMessages *mat.Dense
	UNodeFeatures     *mat.Dense
	UNeighborMessages *mat.Dense
	LinearWeight      *mat.Dense
	LinearBias        *mat.VecDense
}

// ForwardResult is the intermediate bundle a Forward call hands back for the
// matching Backward call. The host retains it; the encoder keeps nothing.
//
//	Predictions    batch × out      sigmoid(PreActivations)
//	PreActivations batch × out      linear-layer outputs before the sigmoid
//	Encodings      batch × n·d      flattened node encodings
//	Messages       batch cubes      composed message tensors, PRE-rectifier
//	MessagesSummed batch, n × d     per node, the rectified messages summed
//	                                over exactly the edges the encoder read
type ForwardResult struct {
	Predictions    *mat.Dense
	PreActivations *mat.Dense
	Encodings      *mat.Dense
	Messages       []*tensor.Cube
	MessagesSummed []*mat.Dense
}

// Gradients carries the derivatives Backward computes for each weight.
//
// WNodeFeatures and WNeighborMessages are ALWAYS all-zero, with exactly the
// shapes of their weight matrices: the gradient path back through the
// multi-step message recurrence is acknowledged but not derived. This is a
// pinned contract (tests depend on it); a host that needs those gradients
// must treat them as unavailable, not as a true zero signal.
//
// UNodeFeatures and UNeighborMessages hold one per-graph gradient each
// (length = batch); LinearWeight is summed over the batch and LinearBias is
// per-sample (batch × out), mirroring the derivation in Backward.
type Gradients struct {
	WNodeFeatures     *mat.Dense
	WNeighborMessages *mat.Dense
	UNodeFeatures     []*mat.Dense
	UNeighborMessages []*mat.Dense
	LinearWeight      *mat.Dense
	LinearBias        *mat.Dense
}
