// Copyright 2025 Synapse ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package engine

import (
	"math/rand"

	"github.com/synapse-ml/synapse/internal/engine"
)

// Network is a fully-connected feed-forward network.
type Network = engine.Network

// Config describes a network to build.
type Config = engine.Config

// Neuron is one unit of the network.
type Neuron = engine.Neuron

// Connection is a directed weighted edge between neurons in adjacent
// layers.
type Connection = engine.Connection

// Kind classifies a neuron by the layer it belongs to.
type Kind = engine.Kind

// Neuron kinds.
const (
	KindInput  = engine.KindInput
	KindHidden = engine.KindHidden
	KindOutput = engine.KindOutput
)

// InvalidTopologyError reports a non-positive layer width.
type InvalidTopologyError = engine.InvalidTopologyError

// New builds a network from the configuration.
//
// Example:
//
//	net, err := engine.New(engine.Config{
//	    InputSize:    2,
//	    HiddenSizes:  []int{4, 3},
//	    OutputSize:   1,
//	    LearningRate: 0.1,
//	    Activation:   "sigmoid",
//	})
func New(cfg Config) (*Network, error) {
	return engine.New(cfg)
}

// NewWithRand builds a network using the provided random source for
// weight and bias initialization, which makes construction
// deterministic when the source is seeded.
func NewWithRand(cfg Config, rng *rand.Rand) (*Network, error) {
	return engine.NewWithRand(cfg, rng)
}

// LoadConfig reads and validates a YAML network preset.
func LoadConfig(path string) (Config, error) {
	return engine.LoadConfig(path)
}
