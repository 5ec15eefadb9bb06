// Package adjacency provides ordered neighbor-set utilities over dense
// adjacency rows, plus a per-graph adjacency List built once per graph.
//
// What
//
//   - FindNeighbors: ascending indices of the non-zero entries of one row.
//   - IndexOf: first position of a value in a neighbor sequence, or -1.
//   - RemoveAt: a fresh sequence with one position excluded, preserving order.
//   - List: all neighbor sets of a graph, extracted from its dense adjacency
//     matrix in a single pass and immutable afterwards.
//
// Determinism
//
//	Neighbor order is always ascending node index. Every routine is a pure
//	function of its inputs; repeated calls yield identical results.
//
// Boundary contract (load-bearing quirk)
//
//	RemoveAt treats index 0 as "drop the first element" and any index at or
//	beyond the sequence length as "drop the last element" instead of failing.
//	Callers rely on this degradation; it is pinned by tests and must not be
//	silently tightened. Negative indices also fall into the drop-last branch.
//
// Complexity (n = row length, k = neighbor count)
//
//   - FindNeighbors: O(n) time, O(k) memory.
//   - IndexOf, RemoveAt: O(k) time.
//   - NewList: O(n²) time, O(n + E) memory; Neighbors/Degree are O(1).
package adjacency
