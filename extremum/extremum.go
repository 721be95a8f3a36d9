package extremum

// FindFirstMaxBy returns the maximal element of seq under probe. A later
// element replaces the running best only when the probe is strictly
// positive, so the earliest of tied maxima wins. The boolean is false for
// an empty slice.
func FindFirstMaxBy[T any](seq []T, probe Probe[T]) (T, bool) {
	return scan(seq, probe, func(sign int) bool { return sign > 0 })
}

// FindLastMaxBy is FindFirstMaxBy keeping the latest of tied maxima: a
// later element replaces the best when the probe is >= 0.
func FindLastMaxBy[T any](seq []T, probe Probe[T]) (T, bool) {
	return scan(seq, probe, func(sign int) bool { return sign >= 0 })
}

// FindFirstMinBy returns the earliest minimal element of seq under probe:
// a later element replaces the best only when the probe is strictly
// negative.
func FindFirstMinBy[T any](seq []T, probe Probe[T]) (T, bool) {
	return scan(seq, probe, func(sign int) bool { return sign < 0 })
}

// FindLastMinBy returns the latest minimal element of seq under probe.
func FindLastMinBy[T any](seq []T, probe Probe[T]) (T, bool) {
	return scan(seq, probe, func(sign int) bool { return sign <= 0 })
}

// FindMaxIdxBy returns the index of the first maximal element of seq,
// comparing cmp(candidate, best); NotFound for an empty slice.
func FindMaxIdxBy[T any](seq []T, cmp Comparator[T]) int {
	return scanIdx(seq, cmp, func(sign int) bool { return sign > 0 })
}

// FindMinIdxBy returns the index of the first minimal element of seq,
// comparing cmp(candidate, best); NotFound for an empty slice.
func FindMinIdxBy[T any](seq []T, cmp Comparator[T]) int {
	return scanIdx(seq, cmp, func(sign int) bool { return sign < 0 })
}

// scan keeps a running best and re-binds the probe whenever it changes.
func scan[T any](seq []T, probe Probe[T], replace func(sign int) bool) (T, bool) {
	if len(seq) == 0 {
		var zero T
		return zero, false
	}

	best := seq[0]
	against := probe(best)
	for _, candidate := range seq[1:] {
		if replace(against(candidate)) {
			best = candidate
			against = probe(best)
		}
	}

	return best, true
}

// scanIdx is scan over indices with a pairwise comparator.
func scanIdx[T any](seq []T, cmp Comparator[T], replace func(sign int) bool) int {
	if len(seq) == 0 {
		return NotFound
	}

	best := 0
	for i := 1; i < len(seq); i++ {
		if replace(cmp(seq[i], seq[best])) {
			best = i
		}
	}

	return best
}
