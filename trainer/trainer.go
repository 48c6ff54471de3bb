// Copyright 2025 Synapse ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package trainer drives a network through forward/loss/backward
// training cycles and records per-epoch metrics.
//
// One Step is a single sample's forward pass, loss evaluation and
// backward pass; one Epoch is a sweep over the whole sample set,
// appending a Metric with the epoch's mean loss and accuracy.
//
// Example:
//
//	t := trainer.New(net, []trainer.Sample{
//	    {Inputs: []float64{0, 0}, Targets: []float64{0}, Label: "0^0"},
//	    {Inputs: []float64{0, 1}, Targets: []float64{1}, Label: "0^1"},
//	    {Inputs: []float64{1, 0}, Targets: []float64{1}, Label: "1^0"},
//	    {Inputs: []float64{1, 1}, Targets: []float64{0}, Label: "1^1"},
//	})
//	final, err := t.Train(1000)
package trainer

import (
	"github.com/synapse-ml/synapse/internal/engine"
	"github.com/synapse-ml/synapse/internal/trainer"
)

// Sample is one training example.
type Sample = trainer.Sample

// Metric records the result of one completed sweep over the sample set.
type Metric = trainer.Metric

// Trainer drives a network through training cycles.
type Trainer = trainer.Trainer

// New creates a trainer for the given network and sample set.
func New(net *engine.Network, samples []Sample) *Trainer {
	return trainer.New(net, samples)
}
