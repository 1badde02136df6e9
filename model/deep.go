package model

import (
	"encoding/json"

	deep "github.com/patrikeh/go-deep"
	"github.com/patrikeh/go-deep/training"
	"go-ml.dev/pkg/zorros"
	"go-ml.dev/pkg/zorros/zlog"

	"github.com/joycex99/russia-housing/dataset"
	"github.com/joycex99/russia-housing/fu"
)

/*
Deep is the Backend delegating to the go-deep feed-forward framework.
go-deep has no dropout layer; declared dropout stages are kept in the
topology description but skipped when the network is built.
*/
type Deep struct{}

type deepNetwork struct {
	nn      *deep.Neural
	trainer training.Trainer
}

func (Deep) Build(t Topology, opt Options) (Network, error) {
	var layout []int
	dropped := false
	for _, l := range t.Stack {
		switch l.Kind {
		case Dense:
			layout = append(layout, l.Units)
		case Dropout:
			dropped = true
		}
	}
	if len(layout) == 0 {
		return nil, zorros.Errorf("topology has no dense layers")
	}
	if dropped {
		zlog.Warning("go-deep backend does not implement dropout, layers skipped")
	}
	nn := deep.NewNeural(&deep.Config{
		Inputs:     t.Inputs,
		Layout:     layout,
		Activation: activation(t),
		Mode:       deep.ModeRegression,
		Weight:     deep.NewNormal(0.5, 0.0),
		Bias:       true,
	})
	return &deepNetwork{
		nn:      nn,
		trainer: training.NewBatchTrainer(solver(opt), 0, fu.Maxi(opt.BatchSize, 1), 1),
	}, nil
}

// go-deep uses a single activation for every hidden layer, so the first
// declared dense activation wins
func activation(t Topology) deep.ActivationType {
	for _, l := range t.Stack {
		if l.Kind != Dense {
			continue
		}
		switch l.Activation {
		case Tanh:
			return deep.ActivationTanh
		case Sigmoid:
			return deep.ActivationSigmoid
		case Linear:
			return deep.ActivationLinear
		}
		return deep.ActivationReLU
	}
	return deep.ActivationReLU
}

func solver(opt Options) training.Solver {
	p := opt.Optimizer
	if p == nil {
		p = Params{}
	}
	switch opt.Solver {
	case SolverSGD:
		return training.NewSGD(p.Get("lr", 0.01), p.Get("momentum", 0.9), p.Get("decay", 0), true)
	default:
		return training.NewAdam(p.Get("lr", 0.001), p.Get("beta", 0.9), p.Get("beta2", 0.999), p.Get("epsilon", 1e-8))
	}
}

func (d *deepNetwork) Fit(batch []dataset.Example) {
	ex := make(training.Examples, len(batch))
	for i, e := range batch {
		ex[i] = training.Example{Input: e.Features, Response: []float64{e.Label}}
	}
	d.trainer.Train(d.nn, ex, nil, 1)
}

func (d *deepNetwork) Predict(features []float64) float64 {
	return d.nn.Predict(features)[0]
}

func (d *deepNetwork) Marshal() ([]byte, error) {
	return json.Marshal(d.nn.Dump())
}
