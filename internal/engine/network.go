package engine

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/synapse-ml/synapse/internal/activation"
)

// Layout spacing for the cosmetic neuron coordinates read by the
// visualization layer.
const (
	layoutMarginX = 80.0
	layoutMarginY = 60.0
	layerSpacing  = 160.0
	neuronSpacing = 70.0
)

// Network is a fully-connected feed-forward network.
//
// A Network owns its neuron and connection collections and mutates them
// in place: Forward rewrites every activation, Backward rewrites every
// gradient, weight and bias. It is exclusively owned by whichever loop
// drives it. There is no internal locking, and callers must serialize
// Forward/Backward pairs per instance.
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
//	outputs := net.Forward([]float64{0, 1})
//	net.Backward([]float64{1})
type Network struct {
	cfg Config
	id  uuid.UUID
	act activation.Func
	rng *rand.Rand

	neurons []*Neuron     // ordered by ID; neurons[i].ID == i
	conns   []*Connection // creation order, ascending source layer
	layers  [][]*Neuron   // layers[l] shares pointers with neurons

	incoming [][]*Connection // indexed by destination neuron ID
	outgoing [][]*Connection // indexed by source neuron ID

	errScratch []float64 // backward-pass error signals, indexed by neuron ID
}

// New builds a network from the configuration, drawing weights and
// biases from the process-default random source. Construction is
// therefore not reproducible run-to-run; use NewWithRand for
// deterministic initialization.
func New(cfg Config) (*Network, error) {
	return build(cfg, nil)
}

// NewWithRand builds a network using the provided random source for
// weight and bias initialization. A seeded source makes construction
// fully deterministic.
func NewWithRand(cfg Config, rng *rand.Rand) (*Network, error) {
	return build(cfg, rng)
}

func build(cfg Config, rng *rand.Rand) (*Network, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	net := &Network{
		cfg: cfg,
		id:  uuid.New(),
		act: activation.ByName(cfg.Activation),
		rng: rng,
	}

	widths := cfg.layerWidths()
	total := 0
	maxWidth := 0
	for _, w := range widths {
		total += w
		if w > maxWidth {
			maxWidth = w
		}
	}

	net.neurons = make([]*Neuron, 0, total)
	net.layers = make([][]*Neuron, len(widths))
	net.incoming = make([][]*Connection, total)
	net.outgoing = make([][]*Connection, total)
	net.errScratch = make([]float64, total)

	id := 0
	for layer, width := range widths {
		kind := KindHidden
		switch layer {
		case 0:
			kind = KindInput
		case len(widths) - 1:
			kind = KindOutput
		}

		// Center each column vertically against the widest layer.
		offsetY := float64(maxWidth-width) * neuronSpacing / 2

		net.layers[layer] = make([]*Neuron, 0, width)
		for i := 0; i < width; i++ {
			n := &Neuron{
				ID:    id,
				Layer: layer,
				Kind:  kind,
				Bias:  net.uniform(),
				X:     layoutMarginX + float64(layer)*layerSpacing,
				Y:     layoutMarginY + offsetY + float64(i)*neuronSpacing,
			}
			net.neurons = append(net.neurons, n)
			net.layers[layer] = append(net.layers[layer], n)
			id++
		}
	}

	for layer := 0; layer+1 < len(widths); layer++ {
		for _, src := range net.layers[layer] {
			for _, dst := range net.layers[layer+1] {
				c := &Connection{
					From:   src.ID,
					To:     dst.ID,
					Weight: net.uniform(),
				}
				net.conns = append(net.conns, c)
				net.outgoing[src.ID] = append(net.outgoing[src.ID], c)
				net.incoming[dst.ID] = append(net.incoming[dst.ID], c)
			}
		}
	}

	return net, nil
}

// uniform draws from [-1, 1).
func (net *Network) uniform() float64 {
	if net.rng != nil {
		return net.rng.Float64()*2 - 1
	}
	//nolint:gosec // math/rand is fine for weight initialization
	return rand.Float64()*2 - 1
}

// ID identifies this network instance. Rebuilding from a changed
// configuration produces a fresh instance with a fresh ID, which lets
// the consuming layer detect wholesale replacement.
func (net *Network) ID() uuid.UUID {
	return net.id
}

// Config returns the configuration the network was built from.
func (net *Network) Config() Config {
	return net.cfg
}

// Neurons returns the network's neurons ordered by ID. The slice is a
// copy but shares the live *Neuron values, so a reader sees activations
// and biases update in place after each step.
func (net *Network) Neurons() []*Neuron {
	ns := make([]*Neuron, len(net.neurons))
	copy(ns, net.neurons)
	return ns
}

// Connections returns the network's connections in creation order,
// ascending by source layer. The slice is a copy sharing the live
// *Connection values.
func (net *Network) Connections() []*Connection {
	cs := make([]*Connection, len(net.conns))
	copy(cs, net.conns)
	return cs
}

// NumLayers returns the total layer count, input and output included.
func (net *Network) NumLayers() int {
	return len(net.layers)
}

// Layer returns the neurons of one layer in creation order.
func (net *Network) Layer(i int) []*Neuron {
	ns := make([]*Neuron, len(net.layers[i]))
	copy(ns, net.layers[i])
	return ns
}

// InputSize returns the input layer width.
func (net *Network) InputSize() int {
	return len(net.layers[0])
}

// OutputSize returns the output layer width.
func (net *Network) OutputSize() int {
	return len(net.layers[len(net.layers)-1])
}
