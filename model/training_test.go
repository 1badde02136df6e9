package model

import (
	"testing"

	"gotest.tools/assert"

	"github.com/joycex99/russia-housing/batch"
	"github.com/joycex99/russia-housing/dataset"
)

// stubNetwork regresses toward the mean label of every batch it sees,
// or stays frozen when halt is set
type stubNetwork struct {
	w    float64
	halt bool
	fits int
}

func (s *stubNetwork) Fit(batch []dataset.Example) {
	s.fits++
	if s.halt {
		return
	}
	var m float64
	for _, e := range batch {
		m += e.Label
	}
	m /= float64(len(batch))
	s.w += (m - s.w) / 2
}

func (s *stubNetwork) Predict([]float64) float64 { return s.w }

func (s *stubNetwork) Marshal() ([]byte, error) { return []byte("stub"), nil }

type stubBackend struct{ net *stubNetwork }

func (b stubBackend) Build(Topology, Options) (Network, error) { return b.net, nil }

func constant(n int, label float64) []dataset.Example {
	xs := make([]dataset.Example, n)
	for i := range xs {
		xs[i] = dataset.Example{Features: []float64{1}, Label: label}
	}
	return xs
}

func TestTrainingRun(t *testing.T) {
	xs := constant(8, 10)
	s, err := batch.InfiniteEpochs(xs, 4, 1)
	assert.NilError(t, err)
	net := &stubNetwork{}
	report, err := Training{Epochs: 6}.Run(stubBackend{net}, Topology{Inputs: 1}, Options{}, s, constant(3, 10))
	assert.NilError(t, err)
	assert.Equal(t, net.fits, 6)
	assert.Equal(t, len(report.History), 6)
	// loss shrinks toward the target, so the last epoch is the best
	assert.Equal(t, report.TheBest, 5)
	assert.Assert(t, report.Test < report.History[0][1])
	assert.Equal(t, report.Score, -report.Test)
	assert.Equal(t, report.Network, Network(net))
}

func TestTrainingEarlyStop(t *testing.T) {
	xs := constant(8, 10)
	s, err := batch.InfiniteEpochs(xs, 4, 1)
	assert.NilError(t, err)
	net := &stubNetwork{halt: true}
	report, err := Training{Epochs: 50}.Run(stubBackend{net}, Topology{Inputs: 1}, Options{}, s, constant(3, 10))
	assert.NilError(t, err)
	// frozen score never improves: stops after the history window
	assert.Equal(t, len(report.History), DefaultScoreHistory+1)
	assert.Equal(t, report.TheBest, 0)
}

func TestTrainingVerbose(t *testing.T) {
	xs := constant(8, 10)
	s, err := batch.InfiniteEpochs(xs, 4, 1)
	assert.NilError(t, err)
	var lines []string
	_, err = Training{Epochs: 2, Verbose: func(l string) { lines = append(lines, l) }}.
		Run(stubBackend{&stubNetwork{}}, Topology{Inputs: 1}, Options{}, s, nil)
	assert.NilError(t, err)
	assert.Equal(t, len(lines), 3) // run header + one line per epoch
}
