// Package lvseek is a small toolbox of search primitives over ordered,
// caller-owned slices: linear scans, binary search over monotonic
// predicates, an incremental searcher for series of weakening predicates
// and extremum selection under comparators.
//
// 🚀 What is inside?
//
//	A generic, allocation-free, pure-Go library that brings together:
//		• Linear scans: find last matching, first defined mapping
//		• Monotonic search: find last true / first true in O(log n)
//		• Incremental search: amortized "find last" over weakening predicates
//		• Extremum scans: first/last max and min under a comparator
//
// ✨ Conventions shared by every package:
//
//   - Slices are read only; nothing is sorted, copied or stored.
//   - Value lookups return (T, bool); the flag, not the value, encodes
//     absence, so zero values and nil pointers are valid results.
//   - Index lookups return sentinel indices (-1, start-1 or end).
//   - Absence is never an error. The only error is a broken weakening
//     contract reported by an Incremental with checks enabled.
//
// Packages:
//
//	linear/    — FindLast, FindLastIdx, MapFindFirst and friends
//	monotonic/ — FindLastIdx, FindFirstIdx, Incremental
//	extremum/  — FindFirstMaxBy, FindLastMaxBy, FindMaxIdxBy and friends
//
// Quick ASCII example (monotonic "find last"):
//
//	index: 0 1 2 3 4 5
//	pred:  T T T F F F
//	             ^ FindLastIdx = 2
//
//	go get github.com/katalvlaran/lvseek
package lvseek
