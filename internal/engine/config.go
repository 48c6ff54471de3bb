package engine

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes a network to build. It is immutable once a network
// has been constructed from it: changing any field means rebuilding the
// whole neuron/connection collection from scratch, there is no
// incremental topology edit.
type Config struct {
	InputSize    int     `yaml:"input_size"`
	HiddenSizes  []int   `yaml:"hidden_sizes"`
	OutputSize   int     `yaml:"output_size"`
	LearningRate float64 `yaml:"learning_rate"`
	Activation   string  `yaml:"activation"`
}

// Validate checks the configuration.
//
// Every layer width must be positive; the input and output layers are
// mandatory while hidden layers may be absent entirely. A width
// violation is reported as an InvalidTopologyError carrying the
// offending layer index. The learning rate must be positive.
//
// The activation selector is deliberately not validated: an unknown
// name falls back to sigmoid at build time.
func (c Config) Validate() error {
	widths := c.layerWidths()
	for i, w := range widths {
		if w < 1 {
			return &InvalidTopologyError{Layer: i, Width: w}
		}
	}
	if c.LearningRate <= 0 {
		return errors.Errorf("engine: learning rate must be positive, got %g", c.LearningRate)
	}
	return nil
}

// layerWidths concatenates [InputSize, HiddenSizes..., OutputSize].
func (c Config) layerWidths() []int {
	widths := make([]int, 0, len(c.HiddenSizes)+2)
	widths = append(widths, c.InputSize)
	widths = append(widths, c.HiddenSizes...)
	widths = append(widths, c.OutputSize)
	return widths
}

// LoadConfig reads and validates a YAML network preset.
//
// Example file:
//
//	input_size: 2
//	hidden_sizes: [4, 3]
//	output_size: 1
//	learning_rate: 0.1
//	activation: sigmoid
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
