// Copyright 2025 Synapse ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides the scalar activation functions and
// their derivatives used by the network engine.
//
// Every derivative receives the already-activated value, not the
// pre-activation sum, so activations and derivatives must be selected
// as consistent pairs; see Func.
package activation

import (
	"github.com/synapse-ml/synapse/internal/activation"
)

// Func pairs an activation function with its derivative.
type Func = activation.Func

// Built-in activations.
var (
	Sigmoid = activation.Sigmoid
	ReLU    = activation.ReLU
	Tanh    = activation.Tanh
)

// ByName returns the activation registered under the given name.
// Lookup is case-sensitive; an unrecognized name falls back to
// Sigmoid.
func ByName(name string) Func {
	return activation.ByName(name)
}

// Names lists the registered activation names in selector order.
func Names() []string {
	return activation.Names()
}
