package engine

// Forward runs one inference pass and returns the output layer's
// activations in creation order.
//
// Input values are written directly into the input neurons in creation
// order. A short input vector zero-fills the remaining input neurons
// and a long one is truncated; neither is an error. Every later layer
// is then processed in strictly ascending order, so a neuron only ever
// reads activations from the layer below it; that ordering is the
// correctness invariant of the pass.
//
// Forward always succeeds on a built network.
func (net *Network) Forward(inputs []float64) []float64 {
	for i, n := range net.layers[0] {
		if i < len(inputs) {
			n.Activation = inputs[i]
		} else {
			n.Activation = 0
		}
	}

	for layer := 1; layer < len(net.layers); layer++ {
		for _, n := range net.layers[layer] {
			sum := n.Bias
			for _, c := range net.incoming[n.ID] {
				sum += net.neurons[c.From].Activation * c.Weight
			}
			n.Activation = net.act.Activate(sum)
		}
	}

	outLayer := net.layers[len(net.layers)-1]
	outputs := make([]float64, len(outLayer))
	for i, n := range outLayer {
		outputs[i] = n.Activation
	}
	return outputs
}
