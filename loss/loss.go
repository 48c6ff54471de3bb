// Copyright 2025 Synapse ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loss provides the loss functions used to score predictions
// against training targets.
package loss

import (
	"github.com/synapse-ml/synapse/internal/loss"
)

// DimensionMismatchError reports prediction and target vectors of
// different lengths.
type DimensionMismatchError = loss.DimensionMismatchError

// MSE computes Mean Squared Error: mean((predictions[i] - targets[i])²).
//
// Returns a DimensionMismatchError when the vectors differ in length.
func MSE(predictions, targets []float64) (float64, error) {
	return loss.MSE(predictions, targets)
}
