package batch

import (
	"math/rand"

	"go-ml.dev/pkg/zorros"

	"github.com/joycex99/russia-housing/dataset"
)

/*
Stream is an infinite sequence of fixed-size example batches. Fresh
permutations of the full example set are concatenated end to end and cut
into batches; only the current permutation is held in memory.
*/
type Stream struct {
	examples []dataset.Example
	size     int
	rnd      *rand.Rand
	perm     []int
	pos      int
}

/*
InfiniteEpochs starts a new infinite batch stream over examples. Every
call starts from its own fresh permutation, so streams are restartable
per call and never terminate.
*/
func InfiniteEpochs(examples []dataset.Example, epochSize int, seed int64) (*Stream, error) {
	if len(examples) == 0 {
		return nil, zorros.Errorf("cannot stream epochs over an empty example set")
	}
	if epochSize <= 0 {
		return nil, zorros.Errorf("epoch size must be positive, got %d", epochSize)
	}
	s := &Stream{
		examples: examples,
		size:     epochSize,
		rnd:      rand.New(rand.NewSource(seed)),
	}
	s.reshuffle()
	return s, nil
}

func (s *Stream) reshuffle() {
	s.perm = s.rnd.Perm(len(s.examples))
	s.pos = 0
}

/*
Next returns the next batch. When the epoch size does not divide the
example count a batch straddles two permutations; the cut in progress is
continued from the next permutation, never reshuffled retroactively.
*/
func (s *Stream) Next() []dataset.Example {
	b := make([]dataset.Example, s.size)
	for i := range b {
		if s.pos == len(s.perm) {
			s.reshuffle()
		}
		b[i] = s.examples[s.perm[s.pos]]
		s.pos++
	}
	return b
}
