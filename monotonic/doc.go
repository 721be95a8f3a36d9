// Package monotonic implements binary search over monotonic predicates and
// an incremental searcher that reuses the previous result as the lower
// bound of the next search.
//
// 🚀 What is a monotonic predicate?
//
//	Evaluated over increasing indices of the searched range, the results
//	change at most once:
//	  • "find last":  true…true false…false  (true prefix)
//	  • "find first": false…false true…true  (true suffix)
//	The position of that single transition is found in O(log n) probes.
//
// ✨ Key features:
//   - index primitives with sentinel results (start-1, end or -1)
//   - value variants with comma-ok absence, safe for zero values and nil
//   - explicit half-open sub-ranges [start, end) through the ...In variants
//   - Incremental: amortized repeated "find last" searches with weakening
//     predicates, plus opt-in verification of the weakening contract
//
// ⚠️ Caller contract:
//
//	Monotonicity of a single predicate is never checked; doing so would
//	cost O(n) and defeat the binary search. A non-monotonic predicate does
//	not panic, it just yields an unreliable index.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvseek/monotonic"
//
//	// last timestamp not after the deadline
//	i := monotonic.FindLastIdx(stamps, func(ts int64) bool { return ts <= deadline })
//
//	// a series of shrinking thresholds over the same slice
//	inc := monotonic.NewIncremental(stamps)
//	for _, limit := range limits { // limits ascending
//	  v, ok, err := inc.FindLast(func(ts int64) bool { return ts <= limit })
//	  ...
//	}
//
// Performance:
//
//   - Stateless search: O(log n) predicate calls, O(1) memory.
//   - Incremental: O(log (n-cursor)) per call; O(n) more per call when
//     weakening checks are enabled.
package monotonic
