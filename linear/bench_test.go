package linear_test

import (
	"testing"

	"github.com/katalvlaran/lvseek/linear"
)

// benchmarkFindLastIdx scans a slice of length n whose only match sits at index 0.
func benchmarkFindLastIdx(b *testing.B, n int) {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	pred := func(x int) bool { return x == 0 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if linear.FindLastIdx(seq, pred) != 0 {
			b.Fatal("unexpected index")
		}
	}
}

func BenchmarkFindLastIdx_1K(b *testing.B)   { benchmarkFindLastIdx(b, 1_000) }
func BenchmarkFindLastIdx_100K(b *testing.B) { benchmarkFindLastIdx(b, 100_000) }
