package monotonic

// Predicate is a boolean test over elements. For the search functions of
// this package it must be monotonic over the searched range.
type Predicate[T any] func(item T) bool

// NotFound is the sentinel returned by FindFirstIdx and FindFirstIdxIn.
const NotFound = -1

// clampRange normalizes a half-open range against a slice of length n.
// end is capped at n and start is raised to 0; start >= end stays an
// empty range.
func clampRange(start, end, n int) (int, int) {
	if end > n {
		end = n
	}
	if start < 0 {
		start = 0
	}

	return start, end
}
