package engine

// Backward runs one backpropagation pass against the configured
// learning rate. See BackwardRate.
func (net *Network) Backward(targets []float64) {
	net.BackwardRate(targets, net.cfg.LearningRate)
}

// BackwardRate runs one backpropagation pass with an explicit learning
// rate, which lets a driving loop adjust the rate live without
// rebuilding the network.
//
// It must follow a Forward call on the same network and inputs, since
// every error signal is computed from the just-written activations.
//
// Output-layer error is (target - activation) · derivative(activation).
// Hidden-layer errors are then computed in strictly descending layer
// order, each from the already-finalized errors of the layer above; the
// input layer is walked for traversal symmetry but carries no error.
// Once all errors are final, a single sweep over every connection
// stores gradient = error(To) · activation(From) and applies
// weight += rate · gradient.
//
// Error signals live in a scratch buffer scoped to this call, not on
// the neurons, so no stale signal survives between passes. A targets
// vector shorter than the output layer leaves the extra output neurons
// with zero error; extra targets are ignored. Neither is an error.
func (net *Network) BackwardRate(targets []float64, rate float64) {
	errs := net.errScratch
	for i := range errs {
		errs[i] = 0
	}

	outLayer := net.layers[len(net.layers)-1]
	for i, n := range outLayer {
		if i >= len(targets) {
			break
		}
		errs[n.ID] = (targets[i] - n.Activation) * net.act.Derivative(n.Activation)
	}

	for layer := len(net.layers) - 2; layer >= 0; layer-- {
		for _, n := range net.layers[layer] {
			if n.Kind == KindInput {
				continue
			}
			var sum float64
			for _, c := range net.outgoing[n.ID] {
				sum += errs[c.To] * c.Weight
			}
			errs[n.ID] = net.act.Derivative(n.Activation) * sum
		}
	}

	for _, c := range net.conns {
		c.Gradient = errs[c.To] * net.neurons[c.From].Activation
		c.Weight += rate * c.Gradient
	}

	for _, n := range net.neurons {
		if n.Kind == KindInput {
			continue
		}
		n.Bias += rate * errs[n.ID]
	}
}
