// Package extremum picks the best element of a slice under a comparator.
//
// Overview:
//
//   - FindFirstMaxBy / FindLastMaxBy / FindFirstMinBy / FindLastMinBy return
//     the extremal element; "First" keeps the earliest of tied elements,
//     "Last" the latest.
//   - FindMaxIdxBy / FindMinIdxBy return the index of the first extremal
//     element, or -1 for an empty slice.
//
// Comparator shapes:
//
//	Two call shapes are kept apart on purpose.
//	  • Comparator[T] is pairwise: cmp(a, b) < 0, == 0, > 0 as a < b, a == b, a > b.
//	    Used by the index variants as cmp(candidate, best).
//	  • Probe[T] is relative to the running best: probe(best) returns a
//	    single-argument function giving the sign of a candidate against
//	    that best. It is re-bound only when the best changes, so a probe may
//	    precompute whatever it needs about the best element.
//	Relative adapts a Comparator into a Probe. Ascending and ByKey build
//	Comparators for ordered values.
//
// The comparator is never negated by this package: the Min variants select
// on the negative sign of the same comparator the Max variants use.
//
// Complexity:
//
//   - Time:   O(n) comparator calls; this is a linear scan, the comparator
//     need not induce any particular order on the slice.
//   - Memory: O(1).
package extremum
