package adjacency

// NotFound is the sentinel returned by IndexOf when value is absent.
// Callers must check for it before using the result as an index.
const NotFound = -1

// FindNeighbors returns the indices of the non-zero entries of row,
// in ascending index order. An all-zero row yields an empty sequence.
// Any non-zero value counts as edge presence; multiplicity is ignored.
func FindNeighbors(row []float64) []int {
	neighbors := make([]int, 0, len(row))
	for i, v := range row {
		if v != 0 {
			neighbors = append(neighbors, i)
		}
	}
	return neighbors
}

// IndexOf returns the first position of value in seq, or NotFound.
func IndexOf(seq []int, value int) int {
	for i, v := range seq {
		if v == value {
			return i
		}
	}
	return NotFound
}

// RemoveAt returns a fresh sequence excluding the element at index,
// preserving the relative order of the remaining elements.
//
// Boundary contract (pinned, see doc.go):
//   - index == 0            → drop the first element
//   - 0 < index < len(seq)  → drop seq[index]
//   - index >= len(seq)     → drop the LAST element (degrade, not fail)
//   - index < 0             → same drop-last degradation
//
// The input is never mutated.
func RemoveAt(seq []int, index int) []int {
	out := make([]int, 0, len(seq))
	if len(seq) == 0 {
		return out
	}
	switch {
	case index == 0:
		out = append(out, seq[1:]...)
	case index > 0 && index < len(seq):
		out = append(out, seq[:index]...)
		out = append(out, seq[index+1:]...)
	default:
		// Out-of-range (or negative) degrades to drop-last.
		out = append(out, seq[:len(seq)-1]...)
	}
	return out
}
