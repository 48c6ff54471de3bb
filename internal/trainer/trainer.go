package trainer

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/synapse-ml/synapse/internal/engine"
	"github.com/synapse-ml/synapse/internal/loss"
)

// Sample is one training example: an input vector sized to the input
// layer and a target vector sized to the output layer, with an optional
// display label. Samples are owned by the caller and passed by value;
// the trainer never stores or mutates them.
type Sample struct {
	Inputs  []float64
	Targets []float64
	Label   string
}

// Metric records the result of one completed sweep over the sample
// set. The history is append-only.
type Metric struct {
	Epoch     int
	Loss      float64
	Accuracy  float64
	Timestamp time.Time
}

// Trainer drives a network through forward/loss/backward cycles, one
// sample at a time, and keeps the per-epoch metric trail.
//
// The trainer owns the network for the duration of training: no other
// caller may run Forward or Backward against it concurrently.
type Trainer struct {
	net     *engine.Network
	samples []Sample
	metrics []Metric
	epoch   int
}

// New creates a trainer for the given network and sample set.
func New(net *engine.Network, samples []Sample) *Trainer {
	return &Trainer{
		net:     net,
		samples: samples,
	}
}

// Step runs one forward/loss/backward cycle for a single sample and
// returns that sample's loss.
func (t *Trainer) Step(s Sample) (float64, error) {
	outputs := t.net.Forward(s.Inputs)
	l, err := loss.MSE(outputs, s.Targets)
	if err != nil {
		return 0, err
	}
	t.net.Backward(s.Targets)
	return l, nil
}

// Epoch sweeps every sample once, appends a Metric, and returns it.
//
// The metric's loss is the mean per-sample loss over the sweep and its
// accuracy is the percentage of samples whose outputs, rounded to the
// nearest integer, match their targets exactly.
func (t *Trainer) Epoch() (Metric, error) {
	if len(t.samples) == 0 {
		return Metric{}, errors.New("trainer: no samples to train on")
	}

	losses := make([]float64, 0, len(t.samples))
	correct := 0
	for _, s := range t.samples {
		outputs := t.net.Forward(s.Inputs)
		l, err := loss.MSE(outputs, s.Targets)
		if err != nil {
			return Metric{}, errors.Wrapf(err, "sample %q", s.Label)
		}
		if matches(outputs, s.Targets) {
			correct++
		}
		t.net.Backward(s.Targets)
		losses = append(losses, l)
	}

	t.epoch++
	m := Metric{
		Epoch:     t.epoch,
		Loss:      stat.Mean(losses, nil),
		Accuracy:  100 * float64(correct) / float64(len(t.samples)),
		Timestamp: time.Now(),
	}
	t.metrics = append(t.metrics, m)
	return m, nil
}

// Train runs the given number of epochs and returns the final metric.
func (t *Trainer) Train(epochs int) (Metric, error) {
	var m Metric
	for i := 0; i < epochs; i++ {
		var err error
		if m, err = t.Epoch(); err != nil {
			return Metric{}, err
		}
	}
	return m, nil
}

// Network returns the network being trained.
func (t *Trainer) Network() *engine.Network {
	return t.net
}

// Metrics returns a copy of the per-epoch metric history.
func (t *Trainer) Metrics() []Metric {
	ms := make([]Metric, len(t.metrics))
	copy(ms, t.metrics)
	return ms
}

// matches reports whether every output, rounded to the nearest
// integer, equals its target.
func matches(outputs, targets []float64) bool {
	for i, o := range outputs {
		if math.Round(o) != targets[i] {
			return false
		}
	}
	return true
}
