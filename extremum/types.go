package extremum

import (
	"golang.org/x/exp/constraints"
)

// Comparator orders two elements: negative when a < b, zero when they tie,
// positive when a > b.
type Comparator[T any] func(a, b T) int

// Probe binds the running best and returns the sign of a candidate against
// it: positive when the candidate exceeds the best, zero on a tie, negative
// otherwise.
type Probe[T any] func(best T) func(candidate T) int

// NotFound is the index returned for an empty slice.
const NotFound = -1

// Relative turns a pairwise Comparator into a Probe that evaluates
// cmp(candidate, best).
func Relative[T any](cmp Comparator[T]) Probe[T] {
	return func(best T) func(T) int {
		return func(candidate T) int {
			return cmp(candidate, best)
		}
	}
}

// Ascending returns the natural order of an ordered type.
func Ascending[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

// ByKey orders elements by an ordered key extracted with key.
func ByKey[T any, K constraints.Ordered](key func(T) K) Comparator[T] {
	cmp := Ascending[K]()
	return func(a, b T) int {
		return cmp(key(a), key(b))
	}
}

// KeyProbe is a Probe ordering elements by key. The key of the best
// element is computed once per change of best instead of on every
// comparison.
func KeyProbe[T any, K constraints.Ordered](key func(T) K) Probe[T] {
	cmp := Ascending[K]()
	return func(best T) func(T) int {
		bestKey := key(best)
		return func(candidate T) int {
			return cmp(key(candidate), bestKey)
		}
	}
}
