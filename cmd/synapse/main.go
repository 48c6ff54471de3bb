// Package main provides the Synapse CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/synapse-ml/synapse/engine"
	"github.com/synapse-ml/synapse/trainer"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Synapse %s\n", version)
			return
		case "train":
			if err := runTrain(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "train: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Synapse - Neural Network Teaching Engine")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                      Show version")
	fmt.Println("  train <config.yaml> [epochs] Train the XOR demo set with a network preset")
}

// runTrain builds a network from a YAML preset and trains it on the
// classic XOR set, printing the metric trail as it goes.
func runTrain(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: synapse train <config.yaml> [epochs]")
	}

	epochs := 1000
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("epochs must be a positive integer, got %q", args[1])
		}
		epochs = n
	}

	cfg, err := engine.LoadConfig(args[0])
	if err != nil {
		return err
	}

	net, err := engine.New(cfg)
	if err != nil {
		return err
	}

	t := trainer.New(net, []trainer.Sample{
		{Inputs: []float64{0, 0}, Targets: []float64{0}, Label: "0 XOR 0"},
		{Inputs: []float64{0, 1}, Targets: []float64{1}, Label: "0 XOR 1"},
		{Inputs: []float64{1, 0}, Targets: []float64{1}, Label: "1 XOR 0"},
		{Inputs: []float64{1, 1}, Targets: []float64{0}, Label: "1 XOR 1"},
	})

	fmt.Printf("Network %s: %d inputs, hidden %v, %d outputs, activation %q\n",
		net.ID(), cfg.InputSize, cfg.HiddenSizes, cfg.OutputSize, cfg.Activation)

	printEvery := epochs / 10
	if printEvery == 0 {
		printEvery = 1
	}
	for i := 0; i < epochs; i++ {
		m, err := t.Epoch()
		if err != nil {
			return err
		}
		if m.Epoch%printEvery == 0 || m.Epoch == 1 {
			fmt.Printf("epoch %5d  loss %.6f  accuracy %5.1f%%\n", m.Epoch, m.Loss, m.Accuracy)
		}
	}
	return nil
}
