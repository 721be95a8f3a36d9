// Package linear provides unindexed, allocation-free scans over slices:
// reverse "find last matching" lookups and a forward "first defined
// mapping" lookup.
//
// Overview:
//
//   - FindLastIdx / FindLastIdxFrom walk backwards and return the index of
//     the first element (in reverse order) that satisfies a predicate, or -1.
//   - FindLast / FindLastFrom are the value-returning forms, built on the
//     index primitives. Absence is reported through the comma-ok flag, so a
//     zero value or a nil pointer is never mistaken for "not found".
//   - MapFindFirst / MapFindLast apply a mapping and stop at the first
//     defined result.
//
// Contract:
//
//   - Input slices are read only and never retained.
//   - Predicates and mappings are invoked at most once per element and
//     never after the first success.
//
// Complexity:
//
//   - Time:   O(n) worst case, O(n-k) for a match at index k (reverse scans).
//   - Memory: O(1).
//
// Usage:
//
//	import "github.com/katalvlaran/lvseek/linear"
//
//	v, ok := linear.FindLast(events, func(e Event) bool { return e.Kind == Commit })
//	if !ok {
//	  // no commit recorded
//	}
package linear
