// Copyright 2025 Synapse ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides the neural network core: topology
// construction, the forward (inference) pass and the backward
// (backpropagation and weight update) pass.
//
// # Overview
//
// A Network is built from a Config naming the layer widths, learning
// rate and activation function. Construction allocates every neuron
// and fully connects adjacent layers; weights and biases start uniform
// in [-1, 1). The network then mutates in place: Forward rewrites
// activations, Backward rewrites gradients, weights and biases.
//
// # Basic Usage
//
//	import "github.com/synapse-ml/synapse/engine"
//
//	func main() {
//	    net, err := engine.New(engine.Config{
//	        InputSize:    2,
//	        HiddenSizes:  []int{4, 3},
//	        OutputSize:   1,
//	        LearningRate: 0.1,
//	        Activation:   "sigmoid",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    outputs := net.Forward([]float64{0, 1})
//	    net.Backward([]float64{1})
//	}
//
// # Observable State
//
// The visualization layer reads the live collections after each step:
//
//	for _, n := range net.Neurons() {
//	    draw(n.X, n.Y, n.Kind, n.Activation, n.Bias)
//	}
//	for _, c := range net.Connections() {
//	    drawEdge(c.From, c.To, c.Weight, c.Gradient)
//	}
//
// Neither slice should be written back into; the engine is the single
// writer.
//
// # Ownership
//
// A network instance is exclusively owned by whichever loop drives it.
// There is no internal locking: callers exposing a network to multiple
// goroutines must serialize access themselves.
package engine
