package monotonic

// FindLastIdxIn searches the half-open range [start, end) of seq, where
// pred holds for a prefix of the range and fails for the remaining suffix.
// It returns the index of the last element satisfying pred, or start-1 when
// there is none (including an empty range, which probes nothing).
//
// Algorithm:
//  1. i, j = start, end.
//  2. While i < j: k = i + (j-i)/2; pred(seq[k]) ? i = k+1 : j = k.
//  3. Return i-1.
//
// end > len(seq) is clamped to len(seq) and start < 0 to 0; the sentinel
// is computed from the clamped start.
//
// Complexity: O(log(end-start)) predicate calls, O(1) memory.
func FindLastIdxIn[T any](seq []T, pred Predicate[T], start, end int) int {
	i, j := clampRange(start, end, len(seq))
	if i >= j {
		return i - 1
	}
	for i < j {
		k := i + (j-i)/2
		if pred(seq[k]) {
			i = k + 1
		} else {
			j = k
		}
	}

	return i - 1
}

// FindLastIdx is FindLastIdxIn over the whole slice. It returns -1 when no
// element satisfies pred.
func FindLastIdx[T any](seq []T, pred Predicate[T]) int {
	return FindLastIdxIn(seq, pred, 0, len(seq))
}

// FindLast returns the last element of seq satisfying the true-prefix
// predicate pred. The boolean is false when no element satisfies it.
func FindLast[T any](seq []T, pred Predicate[T]) (T, bool) {
	idx := FindLastIdx(seq, pred)
	if idx < 0 {
		var zero T
		return zero, false
	}

	return seq[idx], true
}

// FindFirstIdxOrLenIn searches the half-open range [start, end) of seq,
// where pred fails for a prefix of the range and holds for the remaining
// suffix. It returns the index of the first element satisfying pred, or
// end when there is none.
//
// Algorithm: mirror of FindLastIdxIn; on success j = k, else i = k+1;
// return i.
//
// Range clamping follows FindLastIdxIn; the returned sentinel is the
// clamped end.
func FindFirstIdxOrLenIn[T any](seq []T, pred Predicate[T], start, end int) int {
	i, j := clampRange(start, end, len(seq))
	if i >= j {
		return j
	}
	for i < j {
		k := i + (j-i)/2
		if pred(seq[k]) {
			j = k
		} else {
			i = k + 1
		}
	}

	return i
}

// FindFirstIdxOrLen is FindFirstIdxOrLenIn over the whole slice; it
// returns len(seq) when no element satisfies pred.
func FindFirstIdxOrLen[T any](seq []T, pred Predicate[T]) int {
	return FindFirstIdxOrLenIn(seq, pred, 0, len(seq))
}

// FindFirstIdxIn is FindFirstIdxOrLenIn returning NotFound instead of the
// end of the range.
func FindFirstIdxIn[T any](seq []T, pred Predicate[T], start, end int) int {
	_, limit := clampRange(start, end, len(seq))
	idx := FindFirstIdxOrLenIn(seq, pred, start, end)
	if idx >= limit {
		return NotFound
	}

	return idx
}

// FindFirstIdx returns the index of the first element of seq satisfying
// the true-suffix predicate pred, or NotFound.
func FindFirstIdx[T any](seq []T, pred Predicate[T]) int {
	return FindFirstIdxIn(seq, pred, 0, len(seq))
}

// FindFirst returns the first element of seq satisfying the true-suffix
// predicate pred. The boolean is false when no element satisfies it.
func FindFirst[T any](seq []T, pred Predicate[T]) (T, bool) {
	idx := FindFirstIdxOrLen(seq, pred)
	if idx == len(seq) {
		var zero T
		return zero, false
	}

	return seq[idx], true
}
