package model

import (
	"fmt"
	"strings"
)

/*
LayerKind discriminates the stages a network stack is declared from
*/
type LayerKind int

const (
	Dense LayerKind = iota
	Dropout
)

const (
	ReLU    = "relu"
	Tanh    = "tanh"
	Sigmoid = "sigmoid"
	Linear  = "linear"
)

/*
Layer is one declared stage of the network stack
*/
type Layer struct {
	Kind       LayerKind
	Units      int     // Dense only
	Activation string  // Dense only
	Rate       float64 // Dropout only
}

func DenseLayer(units int, activation string) Layer {
	return Layer{Kind: Dense, Units: units, Activation: activation}
}

func DropoutLayer(rate float64) Layer {
	return Layer{Kind: Dropout, Rate: rate}
}

/*
Topology describes the fixed network: input width equal to the encoded
feature count, a stack of fully-connected layers with interleaved
dropout, and a single scalar output as the last dense layer
*/
type Topology struct {
	Inputs int
	Stack  []Layer
}

/*
String renders the topology for the pre-training printout
*/
func (t Topology) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "input(%d)", t.Inputs)
	for _, l := range t.Stack {
		switch l.Kind {
		case Dense:
			fmt.Fprintf(&b, " -> dense(%d, %s)", l.Units, l.Activation)
		case Dropout:
			fmt.Fprintf(&b, " -> dropout(%.2f)", l.Rate)
		}
	}
	return b.String()
}

/*
Outputs is the width of the last dense layer
*/
func (t Topology) Outputs() int {
	for i := len(t.Stack) - 1; i >= 0; i-- {
		if t.Stack[i].Kind == Dense {
			return t.Stack[i].Units
		}
	}
	return 0
}
