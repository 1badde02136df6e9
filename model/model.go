package model

import (
	"github.com/joycex99/russia-housing/dataset"
)

/*
Network is a constructed model in the middle of being fitted. Fit
consumes one epoch batch; Predict maps an encoded feature vector to the
regressed target; Marshal serializes the current weights.
*/
type Network interface {
	Fit(batch []dataset.Example)
	Predict(features []float64) float64
	Marshal() ([]byte, error)
}

/*
Backend is the external training framework collaborator. It builds a
trainable network from a declared topology; the optimization algorithm
itself stays opaque to this pipeline.
*/
type Backend interface {
	Build(t Topology, opt Options) (Network, error)
}

/*
Params is a set of hyper-parameters passed through to the backend
*/
type Params map[string]float64

/*
Get value of the parameter by name if exists and dflt value otherwise
*/
func (p Params) Get(name string, dflt float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return dflt
}

/*
Options carries the opaque training hyper-parameters handed to the
backend
*/
type Options struct {
	BatchSize int    // minibatch size inside one epoch
	Solver    string // SolverAdam or SolverSGD
	Optimizer Params // solver parameters (lr, momentum, ...)
}

const (
	SolverAdam = "adam"
	SolverSGD  = "sgd"
)
