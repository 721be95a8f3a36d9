package linear

// FindLastIdx returns the index of the last element of seq that satisfies
// pred, or NotFound if there is none (including when seq is empty).
//
// Complexity: O(n) time, O(1) memory.
func FindLastIdx[T any](seq []T, pred Predicate[T]) int {
	return FindLastIdxFrom(seq, pred, len(seq)-1)
}

// FindLastIdxFrom scans seq from index from down to 0 and returns the
// index of the first element (in reverse order) that satisfies pred.
//
// A from beyond the last index is clamped to len(seq)-1. A negative from
// yields NotFound without evaluating pred.
func FindLastIdxFrom[T any](seq []T, pred Predicate[T], from int) int {
	if from >= len(seq) {
		from = len(seq) - 1
	}
	for i := from; i >= 0; i-- {
		if pred(seq[i]) {
			return i
		}
	}

	return NotFound
}

// FindLast returns the last element of seq that satisfies pred.
// The boolean is false when nothing matches.
func FindLast[T any](seq []T, pred Predicate[T]) (T, bool) {
	return FindLastFrom(seq, pred, len(seq)-1)
}

// FindLastFrom is FindLast starting the reverse scan at index from.
// See FindLastIdxFrom for the handling of out-of-range values.
func FindLastFrom[T any](seq []T, pred Predicate[T], from int) (T, bool) {
	idx := FindLastIdxFrom(seq, pred, from)
	if idx == NotFound {
		var zero T
		return zero, false
	}

	return seq[idx], true
}
