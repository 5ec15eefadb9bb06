// Package encoder implements the forward and backward computation of a
// message-passing neural network over batches of dense graphs, as a pure
// differentiable operator for a host training loop.
//
// What
//
//   - ComposeMessages: the time-stepped message recurrence over all directed
//     node pairs. Each step builds a fresh message tensor from the previous
//     step's complete tensor (strict per-step barrier); the message n→e sums
//     the rectified messages from every OTHER neighbor of n, so information
//     never reflects straight back to the node it just came from.
//   - EncodeMessages: per-node aggregation of incoming neighbor messages,
//     combined with the node's own features under a rectifier.
//   - Forward: per-graph compose → encode → linear layer → sigmoid, batched;
//     returns the full intermediate bundle required by Backward.
//   - Backward: hand-derived gradients for the output layer and the encoding
//     weights. The gradient path back through the multi-step recurrence is
//     NOT derived: the composition-weight gradients are returned zero-filled
//     with the correct shapes. This is a pinned, documented limitation (see
//     Gradients), not an oversight to be silently completed.
//   - ComposeMessagesGRU: a gated (GRU-style) variant of the recurrence with
//     per-edge gate matrices.
//
// Ownership & lifecycle
//
//	Every weight matrix is caller-owned and never mutated here. Each call
//	allocates its outputs fresh; there is no internal state. The caller must
//	retain the ForwardResult bundle between a Forward call and its matching
//	Backward call.
//
// Determinism
//
//	Neighbor iteration follows ascending node index, the batch dimension is
//	fully independent across graphs, and parallel execution writes disjoint
//	output slices only: two calls with identical inputs are bit-identical,
//	at any parallelism level.
//
// Caller contract
//
//	Shape consistency (numNodes, featureDim, output size) across node
//	features, adjacency matrices, and weights is NOT validated; mismatches
//	produce panics from the underlying matrix kernels or undefined numeric
//	results. Only nil/empty/option errors are reported as sentinels.
//
// Complexity (t = time steps, n = nodes, k = max degree, d = feature dim)
//
//   - ComposeMessages: O(t · n · k² · d²) time, O(n² · d) memory.
//   - EncodeMessages:  O(n · k · d² + n² · d) time, O(n · d) memory.
//   - Forward/Backward: the above per graph, independent across the batch.
package encoder
