package monotonic

import (
	"errors"
	"fmt"
)

// ErrPredicateWeakening indicates that an Incremental search was given a
// predicate that is stronger than the previous one: some element satisfied
// the previous predicate but fails the new one. It is a programmer error
// and only reported when weakening checks are enabled.
// Usage: if errors.Is(err, ErrPredicateWeakening) { /* fix predicate order */ }.
var ErrPredicateWeakening = errors.New("monotonic: predicate is not weaker than the previous one")

// WeakeningError carries the first element index that broke the weakening
// contract. It unwraps to ErrPredicateWeakening.
type WeakeningError struct {
	// Index is the position of the first element that satisfied the
	// previous predicate and fails the current one.
	Index int
}

// Error implements the error interface.
func (e *WeakeningError) Error() string {
	return fmt.Sprintf("%v (index %d)", ErrPredicateWeakening, e.Index)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *WeakeningError) Unwrap() error {
	return ErrPredicateWeakening
}
