package encoder

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mpnn/adjacency"
	"github.com/katalvlaran/mpnn/tensor"
)

// Forward runs the full pipeline over a batch of graphs: per graph, compose
// the message tensor, rectify it, encode the nodes, flatten the encoding,
// apply the linear output layer, and squash with a sigmoid.
//
// Graphs are fully independent: with WithParallelism(p) the batch loop runs
// on up to p workers writing disjoint output rows, and the per-time-step
// barrier inside each graph is untouched, so outputs are bit-identical at any
// parallelism level.
//
// The returned ForwardResult must be retained by the caller for the matching
// Backward call. Messages in the bundle are the PRE-rectifier tensors;
// MessagesSummed holds their rectified per-node sums over the edges the
// encoder read.
//
// Returns ErrNilWeights, ErrEmptyBatch, ErrBatchMismatch, ErrOptionViolation,
// or an adjacency construction error; shape consistency across the batch is
// a caller contract.
func Forward(nodeFeatures, adjacencyMatrices []*mat.Dense, w *Weights, opts ...Option) (*ForwardResult, error) {
	if w == nil {
		return nil, ErrNilWeights
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	batch := len(nodeFeatures)
	if batch == 0 {
		return nil, ErrEmptyBatch
	}
	if len(adjacencyMatrices) != batch {
		return nil, fmt.Errorf("%w: %d node-feature graphs vs %d adjacency matrices",
			ErrBatchMismatch, batch, len(adjacencyMatrices))
	}

	// Build every adjacency list up front (one O(n²) scan per graph), so the
	// worker phase below is validation-free and purely computational.
	lists := make([]*adjacency.List, batch)
	for b := 0; b < batch; b++ {
		list, err := adjacency.NewList(adjacencyMatrices[b])
		if err != nil {
			return nil, fmt.Errorf("encoder: graph %d: %w", b, err)
		}
		lists[b] = list
	}

	n, d := nodeFeatures[0].Dims()
	out := w.LinearBias.Len()

	res := &ForwardResult{
		Predictions:    mat.NewDense(batch, out, nil),
		PreActivations: mat.NewDense(batch, out, nil),
		Encodings:      mat.NewDense(batch, n*d, nil),
		Messages:       make([]*tensor.Cube, batch),
		MessagesSummed: make([]*mat.Dense, batch),
	}

	runGraph := func(b int) {
		messages := composeMessages(w.WNodeFeatures, w.WNeighborMessages, nodeFeatures[b], lists[b], o.TimeSteps)
		res.Messages[b] = messages

		// Encode over the rectified copy; keep the raw tensor for Backward.
		rectified := messages.Clone()
		tensor.Relu(rectified.Raw(), rectified.Raw())
		encoding := encodeMessages(w.UNodeFeatures, w.UNeighborMessages, nodeFeatures[b], lists[b], rectified)

		// Backward's messagesSummed term: the rectified messages summed over
		// the edges the encoder just read.
		res.MessagesSummed[b] = sumIncoming(rectified, lists[b])

		// Flatten the (n × d) encoding into row b.
		encRow := res.Encodings.RawRowView(b)
		copy(encRow, encoding.RawMatrix().Data)

		// preActivation = linearBias + linearWeight · encoding
		pre := mat.NewVecDense(out, res.PreActivations.RawRowView(b))
		pre.MulVec(w.LinearWeight, mat.NewVecDense(n*d, encRow))
		pre.AddVec(pre, w.LinearBias)

		// prediction = sigmoid(preActivation)
		tensor.Sigmoid(res.Predictions.RawRowView(b), res.PreActivations.RawRowView(b))
	}

	workers := o.Parallelism
	if workers > batch {
		workers = batch
	}
	if workers <= 1 {
		for b := 0; b < batch; b++ {
			runGraph(b)
		}
		return res, nil
	}

	// Batch-parallel execution: workers own disjoint output rows and message
	// slots, so no locking is needed.
	var wg sync.WaitGroup
	indices := make(chan int)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for b := range indices {
				runGraph(b)
			}
		}()
	}
	for b := 0; b < batch; b++ {
		indices <- b
	}
	close(indices)
	wg.Wait()

	return res, nil
}
