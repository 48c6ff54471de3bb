package loss

import (
	"fmt"
)

// DimensionMismatchError reports prediction and target vectors of
// different lengths passed to a loss function.
type DimensionMismatchError struct {
	Predictions int
	Targets     int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("loss: got %d predictions but %d targets", e.Predictions, e.Targets)
}

// MSE computes Mean Squared Error.
//
// Loss = mean((predictions[i] - targets[i])²)
//
// MSE is the scoring function used for every training step; it is
// always non-negative and zero exactly when predictions equal targets.
//
// Returns a DimensionMismatchError when the vectors differ in length.
func MSE(predictions, targets []float64) (float64, error) {
	if len(predictions) != len(targets) {
		return 0, &DimensionMismatchError{
			Predictions: len(predictions),
			Targets:     len(targets),
		}
	}
	if len(predictions) == 0 {
		return 0, nil
	}

	var sum float64
	for i, p := range predictions {
		d := p - targets[i]
		sum += d * d
	}
	return sum / float64(len(predictions)), nil
}
