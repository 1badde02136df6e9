package model

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/zorros"

	"github.com/joycex99/russia-housing/batch"
	"github.com/joycex99/russia-housing/dataset"
	"github.com/joycex99/russia-housing/fu"
)

/*
Training is the training driver configuration
*/
type Training struct {
	Epochs       int          // number of epoch batches to consume
	ScoreHistory int          // possible count of forehead epochs with lower score
	ModelFile    iokit.Output // optional file to store the best marshaled network
	Verbose      func(string) // per-epoch print function
}

const DefaultScoreHistory = 3

/*
Report is a training report
*/
type Report struct {
	History [][2]float64 // train/test loss per epoch
	TheBest int          // the best epoch
	Train   float64      // the best epoch train loss
	Test    float64      // the best epoch test loss
	Score   float64      // the best score
	Network Network      // the trained model handle
}

/*
Run builds a network on the backend and fits it for the configured
number of epochs, pulling one fixed-size batch from the infinite stream
per epoch and evaluating on the held-out test slice after each. Training
stops early when the score has not improved over the history window. The
best iteration's weights end up in ModelFile when one is configured.
*/
func (t Training) Run(b Backend, top Topology, opt Options, train *batch.Stream, test []dataset.Example) (*Report, error) {
	net, err := b.Build(top, opt)
	if err != nil {
		return nil, zorros.Trace(err)
	}
	runid := uuid.NewString()[:8]
	t.verbose(fmt.Sprintf("run %s: %d epochs over %d inputs", runid, fu.Maxi(t.Epochs, 1), top.Inputs))
	histlen := fu.Fnzi(t.ScoreHistory, DefaultScoreHistory)
	maxiter := fu.Maxi(t.Epochs, 1)
	var scorlog []float64
	var history [][2]float64
	var best []byte
	thebest := 0
	for i := 0; i < maxiter; i++ {
		bb := train.Next()
		net.Fit(bb)
		trainLoss := rmse(net, bb)
		testLoss := rmse(net, test)
		score := -testLoss
		scorlog = append(scorlog, score)
		history = append(history, [2]float64{trainLoss, testLoss})
		if i == 0 || score > scorlog[thebest] {
			thebest = i
			if t.ModelFile != nil {
				if best, err = net.Marshal(); err != nil {
					return nil, zorros.Wrapf(err, "failed to marshal network: %v", err.Error())
				}
			}
		}
		t.verbose(fmt.Sprintf("[%3d] loss: %.5f/%.5f, score: %.5f", i, trainLoss, testLoss, score))
		if i >= histlen && fu.Indmaxd(scorlog[len(scorlog)-histlen:]) == 0 {
			break
		}
	}
	if t.ModelFile != nil {
		if err = store(t.ModelFile, best); err != nil {
			return nil, err
		}
	}
	return &Report{
		History: history,
		TheBest: thebest,
		Train:   history[thebest][0],
		Test:    history[thebest][1],
		Score:   scorlog[thebest],
		Network: net,
	}, nil
}

/*
LuckyRun trains and throws any occurred errors as a panic
*/
func (t Training) LuckyRun(b Backend, top Topology, opt Options, train *batch.Stream, test []dataset.Example) *Report {
	r, err := t.Run(b, top, opt, train, test)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return r
}

func (t Training) verbose(s string) {
	if t.Verbose != nil {
		t.Verbose(s)
	}
}

func store(out iokit.Output, data []byte) error {
	wh, err := out.Create()
	if err != nil {
		return zorros.Trace(err)
	}
	defer wh.End()
	if _, err = io.Copy(wh, bytes.NewReader(data)); err != nil {
		return zorros.Trace(err)
	}
	if err = wh.Commit(); err != nil {
		return zorros.Trace(err)
	}
	return nil
}

func rmse(net Network, examples []dataset.Example) float64 {
	if len(examples) == 0 {
		return 0
	}
	pred := make([]float64, len(examples))
	truth := make([]float64, len(examples))
	for i, e := range examples {
		pred[i] = net.Predict(e.Features)
		truth[i] = e.Label
	}
	return math.Sqrt(fu.Mse(pred, truth))
}
