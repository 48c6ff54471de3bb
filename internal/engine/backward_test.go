package engine_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/synapse-ml/synapse/internal/engine"
	"github.com/synapse-ml/synapse/internal/loss"
)

// TestBackward_HandComputed verifies error, gradient, weight and bias
// updates on a 1-1 sigmoid network with pinned parameters.
func TestBackward_HandComputed(t *testing.T) {
	const (
		w      = 0.4
		b      = -0.1
		x      = 0.8
		target = 1.0
		rate   = 0.1
	)

	net, err := engine.New(engine.Config{
		InputSize:    1,
		OutputSize:   1,
		LearningRate: rate,
		Activation:   "sigmoid",
	})
	require.NoError(t, err)

	out := net.Neurons()[1]
	conn := net.Connections()[0]
	out.Bias = b
	conn.Weight = w

	a := net.Forward([]float64{x})[0]

	wantAct := 1.0 / (1.0 + math.Exp(-(b + w*x)))
	require.InDelta(t, wantAct, a, 1e-12)

	net.Backward([]float64{target})

	errSignal := (target - a) * a * (1 - a)
	wantGradient := errSignal * x

	assert.InDelta(t, wantGradient, conn.Gradient, 1e-12, "gradient")
	assert.InDelta(t, w+rate*wantGradient, conn.Weight, 1e-12, "updated weight")
	assert.InDelta(t, b+rate*errSignal, out.Bias, 1e-12, "updated bias")
}

// TestBackward_GradientCheck compares stored connection gradients
// against central finite differences of the loss. The engine's
// gradient convention follows (target - activation), so it relates to
// the true MSE derivative by a factor of -2/outputs.
func TestBackward_GradientCheck(t *testing.T) {
	net, err := engine.NewWithRand(engine.Config{
		InputSize:    2,
		HiddenSizes:  []int{2},
		OutputSize:   1,
		LearningRate: 0.1,
		Activation:   "sigmoid",
	}, rand.New(rand.NewSource(21)))
	require.NoError(t, err)

	inputs := []float64{0.35, 0.9}
	targets := []float64{0.5}

	net.Forward(inputs)
	net.BackwardRate(targets, 0) // rate zero: record gradients, leave weights alone

	for _, c := range net.Connections() {
		w0 := c.Weight

		numeric := fd.Derivative(func(w float64) float64 {
			c.Weight = w
			out := net.Forward(inputs)
			l, lossErr := loss.MSE(out, targets)
			require.NoError(t, lossErr)
			return l
		}, w0, &fd.Settings{Formula: fd.Central})

		c.Weight = w0
		assert.InDelta(t, -2*c.Gradient, numeric, 1e-6, "connection %s", c.Key())
	}
}

// TestBackward_RateZeroLeavesWeights checks that a zero-rate pass is a
// pure gradient computation.
func TestBackward_RateZeroLeavesWeights(t *testing.T) {
	net, err := engine.NewWithRand(testConfig(), rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	before := make(map[string]float64)
	for _, c := range net.Connections() {
		before[c.Key()] = c.Weight
	}

	net.Forward([]float64{1, 0})
	net.BackwardRate([]float64{1}, 0)

	for _, c := range net.Connections() {
		assert.Equal(t, before[c.Key()], c.Weight, "weight %s changed at rate zero", c.Key())
	}
}

// TestBackward_WeightUpdateDirection checks that a sufficiently small
// step never increases the loss on the sample just presented.
func TestBackward_WeightUpdateDirection(t *testing.T) {
	net, err := engine.NewWithRand(testConfig(), rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	inputs := []float64{0.1, 0.95}
	targets := []float64{1}

	out := net.Forward(inputs)
	before, err := loss.MSE(out, targets)
	require.NoError(t, err)

	net.BackwardRate(targets, 1e-3)

	out = net.Forward(inputs)
	after, err := loss.MSE(out, targets)
	require.NoError(t, err)

	assert.LessOrEqual(t, after, before+1e-12, "loss increased after small gradient step")
}

// TestBackward_TargetTruncation checks that a short target vector
// leaves the uncovered output neurons with zero error, so their
// incoming weights do not move.
func TestBackward_TargetTruncation(t *testing.T) {
	cfg := testConfig()
	cfg.OutputSize = 2
	net, err := engine.NewWithRand(cfg, rand.New(rand.NewSource(13)))
	require.NoError(t, err)

	last := net.NumLayers() - 1
	second := net.Layer(last)[1]

	incomingBefore := make(map[string]float64)
	for _, c := range net.Connections() {
		if c.To == second.ID {
			incomingBefore[c.Key()] = c.Weight
		}
	}
	require.NotEmpty(t, incomingBefore)

	net.Forward([]float64{0.6, 0.4})
	net.Backward([]float64{1}) // one target for two outputs

	for _, c := range net.Connections() {
		if c.To != second.ID {
			continue
		}
		assert.Zero(t, c.Gradient, "gradient %s for uncovered output", c.Key())
		assert.Equal(t, incomingBefore[c.Key()], c.Weight, "weight %s for uncovered output", c.Key())
	}
}

// TestBackward_XORLearning trains on the four XOR samples and checks
// that the average loss after several hundred sweeps is strictly below
// the first sweep's.
func TestBackward_XORLearning(t *testing.T) {
	net, err := engine.NewWithRand(engine.Config{
		InputSize:    2,
		HiddenSizes:  []int{4, 3},
		OutputSize:   1,
		LearningRate: 0.1,
		Activation:   "sigmoid",
	}, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	samples := [][2][]float64{
		{{0, 0}, {0}},
		{{0, 1}, {1}},
		{{1, 0}, {1}},
		{{1, 1}, {0}},
	}

	sweep := func() float64 {
		var total float64
		for _, s := range samples {
			out := net.Forward(s[0])
			l, lossErr := loss.MSE(out, s[1])
			require.NoError(t, lossErr)
			total += l
			net.Backward(s[1])
		}
		return total / float64(len(samples))
	}

	first := sweep()
	var last float64
	for i := 0; i < 800; i++ {
		last = sweep()
	}

	assert.Less(t, last, first, "average XOR loss did not decrease after training")
}
