package batch

import (
	"testing"

	"gotest.tools/assert"

	"github.com/joycex99/russia-housing/dataset"
)

func numbered(n int) []dataset.Example {
	xs := make([]dataset.Example, n)
	for i := range xs {
		xs[i] = dataset.Example{Features: []float64{float64(i)}, Label: float64(i)}
	}
	return xs
}

func TestInfiniteEpochsCoverage(t *testing.T) {
	xs := numbered(10)
	s, err := InfiniteEpochs(xs, 4, 1)
	assert.NilError(t, err)
	counts := map[float64]int{}
	n := 15 // 15*4 = 60 elements = 6 full passes
	for i := 0; i < n; i++ {
		b := s.Next()
		assert.Equal(t, len(b), 4)
		for _, e := range b {
			counts[e.Label]++
		}
	}
	// every example shows up at least floor(n*k/len) times
	for i := 0; i < 10; i++ {
		assert.Assert(t, counts[float64(i)] >= 6, "example %d seen %d times", i, counts[float64(i)])
	}
}

func TestInfiniteEpochsStraddle(t *testing.T) {
	// epoch size 7 over 5 examples: every batch crosses a permutation
	// boundary and each permutation still covers all 5 exactly once
	xs := numbered(5)
	s, err := InfiniteEpochs(xs, 7, 3)
	assert.NilError(t, err)
	var flat []float64
	for i := 0; i < 5; i++ {
		for _, e := range s.Next() {
			flat = append(flat, e.Label)
		}
	}
	for p := 0; p+5 <= len(flat); p += 5 {
		seen := map[float64]bool{}
		for _, v := range flat[p : p+5] {
			seen[v] = true
		}
		assert.Equal(t, len(seen), 5)
	}
}

func TestInfiniteEpochsRestartable(t *testing.T) {
	xs := numbered(20)
	a, err := InfiniteEpochs(xs, 6, 7)
	assert.NilError(t, err)
	b, err := InfiniteEpochs(xs, 6, 7)
	assert.NilError(t, err)
	for i := 0; i < 4; i++ {
		ba, bb := a.Next(), b.Next()
		for j := range ba {
			assert.Equal(t, ba[j].Label, bb[j].Label)
		}
	}
}

func TestInfiniteEpochsErrors(t *testing.T) {
	_, err := InfiniteEpochs(nil, 4, 1)
	assert.Assert(t, err != nil)
	_, err = InfiniteEpochs(numbered(3), 0, 1)
	assert.Assert(t, err != nil)
}
