package activation

import (
	"math"
)

// Func pairs an activation function with its derivative.
//
// The derivative receives the already-activated value a = Activate(x),
// not the pre-activation sum. Only derivatives expressible in terms of
// the activated value fit this convention; all built-ins do.
//
// Example:
//
//	act := activation.ByName("tanh")
//	a := act.Activate(0.5)
//	slope := act.Derivative(a)
type Func struct {
	Name       string
	Activate   func(x float64) float64
	Derivative func(a float64) float64
}

// Sigmoid is the logistic activation: σ(x) = 1 / (1 + exp(-x)).
//
// Squashes values to the range (0, 1). Its derivative in terms of the
// activated value is a·(1-a).
var Sigmoid = Func{
	Name: "sigmoid",
	Activate: func(x float64) float64 {
		return 1.0 / (1.0 + math.Exp(-x))
	},
	Derivative: func(a float64) float64 {
		return a * (1.0 - a)
	},
}

// ReLU is the rectified linear activation: f(x) = max(0, x).
//
// The derivative is 1 where the unit fired and 0 where it did not.
// Because relu is non-negative and zero only at zero, a > 0 holds
// exactly when the pre-activation sum was positive, so the activated
// value is enough to decide the slope.
var ReLU = Func{
	Name: "relu",
	Activate: func(x float64) float64 {
		return math.Max(0, x)
	},
	Derivative: func(a float64) float64 {
		if a > 0 {
			return 1
		}
		return 0
	},
}

// Tanh is the hyperbolic tangent activation.
//
// Squashes values to the range (-1, 1) and is zero-centered. Its
// derivative in terms of the activated value is 1 - a².
var Tanh = Func{
	Name: "tanh",
	Activate: math.Tanh,
	Derivative: func(a float64) float64 {
		return 1.0 - a*a
	},
}

// ByName returns the activation registered under the given name.
//
// Lookup is case-sensitive. An unrecognized name falls back to Sigmoid
// rather than failing, so a stale selector string from a caller still
// yields a usable network.
func ByName(name string) Func {
	switch name {
	case "relu":
		return ReLU
	case "tanh":
		return Tanh
	case "sigmoid":
		return Sigmoid
	default:
		return Sigmoid
	}
}

// Names lists the registered activation names in selector order.
func Names() []string {
	return []string{"sigmoid", "relu", "tanh"}
}
