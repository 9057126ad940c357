package main

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/signal"
)

type demoOptions struct {
	out     string
	samples int
	seed    uint64
}

func newDemoCmd(opts *options) *cobra.Command {
	do := &demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a generated sine wave with noise",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, opts, do)
		},
	}
	cmd.Flags().StringVarP(&do.out, "out", "o", "demo.png", "output PNG file")
	cmd.Flags().IntVar(&do.samples, "samples", 1_000_000, "number of generated samples")
	cmd.Flags().Uint64Var(&do.seed, "seed", 1, "noise seed")
	return cmd
}

// demoWave returns n samples of a sine with ten periods plus uniform noise.
func demoWave(n int, seed uint64) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed))
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = math.Sin(float64(i)*20*math.Pi/float64(n)) + (rng.Float64()-0.5)*0.4
	}
	return ys
}

func runDemo(cmd *cobra.Command, opts *options, do *demoOptions) error {
	if do.samples < 1 {
		return fmt.Errorf("--samples %d must be positive", do.samples)
	}
	c, err := opts.chart()
	if err != nil {
		return err
	}
	p, err := ggchart.FromConfig(c)
	if err != nil {
		return err
	}

	src, err := signal.NewUniform(demoWave(do.samples, do.seed), 1, 0)
	if err != nil {
		return err
	}
	p.AddSignal(src).Label = "sine"

	if err := p.SavePNG(do.out); err != nil {
		return fmt.Errorf("demo %s: %w", do.out, err)
	}
	printer().Fprintf(cmd.OutOrStdout(), "wrote %s: %d samples\n", do.out, do.samples)
	return nil
}
