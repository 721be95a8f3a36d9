package linear

// Predicate reports whether an element matches.
type Predicate[T any] func(item T) bool

// Mapper converts an element into an optional result.
// The second return value reports whether the result is defined.
type Mapper[T, R any] func(item T) (R, bool)

// NotFound is the index returned when no element matches.
const NotFound = -1
