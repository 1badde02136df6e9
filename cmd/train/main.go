package main

import (
	"fmt"

	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/zorros"

	"github.com/joycex99/russia-housing/batch"
	"github.com/joycex99/russia-housing/datasets/housing"
	"github.com/joycex99/russia-housing/fu"
	"github.com/joycex99/russia-housing/model"
)

const (
	trainFile  = "data/train.csv"
	testSize   = 500
	batchSize  = 100
	epochSize  = 5000
	epochCount = 30
	seed       = 1
)

func topology(inputs int) model.Topology {
	return model.Topology{
		Inputs: inputs,
		Stack: []model.Layer{
			model.DenseLayer(512, model.ReLU),
			model.DropoutLayer(0.1),
			model.DenseLayer(256, model.ReLU),
			model.DropoutLayer(0.1),
			model.DenseLayer(1, model.Linear),
		},
	}
}

func main() {
	src := &housing.Source{
		Path:      trainFile,
		CachePath: fu.CachePath("train.sqlite"),
	}
	ds, err := src.Dataset()
	if err != nil {
		panic(zorros.Panic(err))
	}
	train, test := ds.Split(testSize, seed)
	stream, err := batch.InfiniteEpochs(train, epochSize, seed)
	if err != nil {
		panic(zorros.Panic(err))
	}
	top := topology(ds.Width())
	fmt.Println(top)
	report := model.Training{
		Epochs:    epochCount,
		ModelFile: iokit.File(fu.ModelPath("housing.json")),
		Verbose:   func(s string) { fmt.Println(s) },
	}.LuckyRun(model.Deep{}, top, model.Options{
		BatchSize: batchSize,
		Solver:    model.SolverAdam,
		Optimizer: model.Params{"lr": 0.001},
	}, stream, test)
	fmt.Printf("the best epoch %d, test loss %.5f\n", report.TheBest, report.Test)
}
