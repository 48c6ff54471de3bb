package engine

// Kind classifies a neuron by the layer it belongs to.
type Kind string

const (
	KindInput  Kind = "input"
	KindHidden Kind = "hidden"
	KindOutput Kind = "output"
)

// Neuron is one unit of the network.
//
// A neuron belongs to exactly one layer and holds a scalar activation
// that is rewritten on every forward pass. Input neurons take their
// activation directly from the input vector; all others compute it from
// their incoming connections. The X/Y coordinates are layout hints for
// the visualization layer and play no part in computation.
//
// Bias is drawn uniformly from [-1, 1) at construction and adjusted by
// gradient descent. Input neurons carry a bias too, but it is never
// read.
type Neuron struct {
	ID         int
	Layer      int
	Kind       Kind
	Activation float64
	Bias       float64
	X, Y       float64
}
