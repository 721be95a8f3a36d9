package monotonic

import (
	"log/slog"
)

// Incremental runs a series of "find last" searches over one slice, where
// every predicate is weaker than or equal to the previous one: each index
// that satisfied the previous predicate also satisfies the next. Under that
// contract the answer can only move right, so every search starts at the
// previous result instead of at 0.
//
// The cursor (last result + 1) never decreases during the lifetime of an
// instance. An Incremental is not safe for concurrent use; callers sharing
// one must serialize access.
type Incremental[T any] struct {
	seq    []T
	cursor int
	prev   Predicate[T] // last predicate, kept only while checks are on
	cfg    config
}

// NewIncremental returns an Incremental over seq with the cursor at 0.
// seq is retained, not copied, and must not change while in use.
func NewIncremental[T any](seq []T, opts ...Option) *Incremental[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Incremental[T]{seq: seq, cfg: cfg}
}

// Cursor returns the lower bound of the next search.
func (s *Incremental[T]) Cursor() int {
	return s.cursor
}

// FindLastIdx returns the index of the last element satisfying the
// true-prefix predicate pred, searching [Cursor(), len(seq)). When nothing
// in that range matches it returns Cursor()-1, which under the weakening
// contract is still the last match (or -1 before any match). The cursor
// then moves to the result + 1.
//
// With weakening checks enabled, each call after the first verifies
// pred against the previous predicate over the whole slice. On violation it
// returns NotFound and a *WeakeningError, and the state is left unchanged.
func (s *Incremental[T]) FindLastIdx(pred Predicate[T]) (int, error) {
	checked := s.cfg.checks || weakeningChecks.Load()
	if !checked {
		s.prev = nil
	} else if s.prev != nil {
		if err := s.verifyWeakening(pred); err != nil {
			return NotFound, err
		}
	}

	idx := FindLastIdxIn(s.seq, pred, s.cursor, len(s.seq))
	s.cursor = idx + 1

	if checked {
		s.prev = pred
		s.cfg.logger.Debug("monotonic: incremental search",
			slog.Int("index", idx),
			slog.Int("cursor", s.cursor),
		)
	}

	return idx, nil
}

// FindLast is the value-returning form of FindLastIdx. The boolean is
// false while no element has matched yet.
func (s *Incremental[T]) FindLast(pred Predicate[T]) (T, bool, error) {
	var zero T
	idx, err := s.FindLastIdx(pred)
	if err != nil || idx < 0 {
		return zero, false, err
	}

	return s.seq[idx], true, nil
}

// verifyWeakening scans the whole slice for an element accepted by the
// previous predicate and rejected by pred.
func (s *Incremental[T]) verifyWeakening(pred Predicate[T]) error {
	for i, item := range s.seq {
		if s.prev(item) && !pred(item) {
			s.cfg.logger.Warn("monotonic: predicate weakening violated",
				slog.Int("index", i),
				slog.Int("cursor", s.cursor),
			)
			return &WeakeningError{Index: i}
		}
	}

	return nil
}
