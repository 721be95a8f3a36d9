package monotonic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseek/monotonic"
)

// seqOf returns [0, 1, ..., n-1].
func seqOf(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	return seq
}

// TestFindLastIdx_AllPrefixProfiles checks every [true]*k + [false]*(n-k) profile.
func TestFindLastIdx_AllPrefixProfiles(t *testing.T) {
	for n := 0; n <= 17; n++ {
		seq := seqOf(n)
		for k := 0; k <= n; k++ {
			pred := func(x int) bool { return x < k }

			require.Equal(t, k-1, monotonic.FindLastIdx(seq, pred), "n=%d k=%d", n, k)

			v, ok := monotonic.FindLast(seq, pred)
			if k == 0 {
				require.False(t, ok, "n=%d k=%d", n, k)
				continue
			}
			require.True(t, ok, "n=%d k=%d", n, k)
			require.Equal(t, seq[k-1], v, "n=%d k=%d", n, k)
		}
	}
}

// TestFindFirstIdx_AllSuffixProfiles checks every [false]*k + [true]*(n-k) profile.
func TestFindFirstIdx_AllSuffixProfiles(t *testing.T) {
	for n := 0; n <= 17; n++ {
		seq := seqOf(n)
		for k := 0; k <= n; k++ {
			pred := func(x int) bool { return x >= k }

			require.Equal(t, k, monotonic.FindFirstIdxOrLen(seq, pred), "n=%d k=%d", n, k)

			want := k
			if k == n {
				want = monotonic.NotFound
			}
			require.Equal(t, want, monotonic.FindFirstIdx(seq, pred), "n=%d k=%d", n, k)

			v, ok := monotonic.FindFirst(seq, pred)
			if k == n {
				require.False(t, ok, "n=%d k=%d", n, k)
				continue
			}
			require.True(t, ok, "n=%d k=%d", n, k)
			require.Equal(t, seq[k], v, "n=%d k=%d", n, k)
		}
	}
}

// TestEmptyInput_NoProbes verifies the sentinels and that no predicate runs.
func TestEmptyInput_NoProbes(t *testing.T) {
	calls := 0
	pred := func(int) bool { calls++; return true }

	assert.Equal(t, -1, monotonic.FindLastIdx([]int{}, pred))
	assert.Equal(t, monotonic.NotFound, monotonic.FindFirstIdx([]int{}, pred))
	assert.Equal(t, 0, monotonic.FindFirstIdxOrLen([]int(nil), pred))
	_, ok := monotonic.FindLast([]int{}, pred)
	assert.False(t, ok)
	_, ok = monotonic.FindFirst([]int{}, pred)
	assert.False(t, ok)

	seq := seqOf(10)
	assert.Equal(t, 3, monotonic.FindLastIdxIn(seq, pred, 4, 4), "empty range returns start-1")
	assert.Equal(t, 4, monotonic.FindFirstIdxOrLenIn(seq, pred, 4, 4), "empty range returns end")
	assert.Equal(t, monotonic.NotFound, monotonic.FindFirstIdxIn(seq, pred, 4, 4))

	assert.Zero(t, calls, "empty ranges must not evaluate the predicate")
}

// TestRangeVariants exercises sub-ranges and out-of-range bounds.
func TestRangeVariants(t *testing.T) {
	seq := seqOf(10)
	lessThan6 := func(x int) bool { return x < 6 }
	atLeast6 := func(x int) bool { return x >= 6 }

	assert.Equal(t, 5, monotonic.FindLastIdxIn(seq, lessThan6, 2, 8))
	assert.Equal(t, 6, monotonic.FindLastIdxIn(seq, lessThan6, 7, 10), "no match returns start-1")
	assert.Equal(t, 3, monotonic.FindLastIdxIn(seq, lessThan6, 0, 4), "all true returns end-1")
	assert.Equal(t, 5, monotonic.FindLastIdxIn(seq, lessThan6, -5, 100), "bounds are clamped")

	assert.Equal(t, 6, monotonic.FindFirstIdxOrLenIn(seq, atLeast6, 2, 8))
	assert.Equal(t, 5, monotonic.FindFirstIdxOrLenIn(seq, atLeast6, 0, 5), "no match returns end")
	assert.Equal(t, 10, monotonic.FindFirstIdxOrLenIn(seq, func(int) bool { return false }, 0, 100), "end is clamped")
	assert.Equal(t, 7, monotonic.FindFirstIdxOrLenIn(seq, atLeast6, 7, 9), "all true returns start")

	assert.Equal(t, monotonic.NotFound, monotonic.FindFirstIdxIn(seq, atLeast6, 0, 5))
	assert.Equal(t, 6, monotonic.FindFirstIdxIn(seq, atLeast6, 3, 100))
}

// TestFindLastIdx_LogarithmicProbes bounds the number of predicate calls.
func TestFindLastIdx_LogarithmicProbes(t *testing.T) {
	seq := seqOf(1 << 10)
	calls := 0
	idx := monotonic.FindLastIdx(seq, func(x int) bool { calls++; return x < 700 })

	assert.Equal(t, 699, idx)
	assert.LessOrEqual(t, calls, 11, "binary search over 1024 elements needs at most 11 probes")
}

// TestFindLast_ZeroValueIsPresent ensures zero values are not confused with absence.
func TestFindLast_ZeroValueIsPresent(t *testing.T) {
	seq := []string{"", "", "x"}
	v, ok := monotonic.FindLast(seq, func(s string) bool { return s == "" })
	require.True(t, ok)
	assert.Equal(t, "", v)

	v, ok = monotonic.FindFirst(seq, func(s string) bool { return s != "" })
	require.True(t, ok)
	assert.Equal(t, "x", v)
}
