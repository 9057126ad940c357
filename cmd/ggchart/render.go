package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/canvas"
)

type renderOptions struct {
	out    string
	dryRun bool
}

func newRenderCmd(opts *options) *cobra.Command {
	ro := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the series of a chart configuration to PNG",
		Long: `render loads the chart configuration given by --config, reads every
series from its CSV file and writes one PNG frame.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts, ro)
		},
	}
	cmd.Flags().StringVarP(&ro.out, "out", "o", "chart.png", "output PNG file")
	cmd.Flags().BoolVar(&ro.dryRun, "dry-run", false, "record the frame and print draw statistics instead of writing")
	return cmd
}

func runRender(cmd *cobra.Command, opts *options, ro *renderOptions) error {
	c, err := opts.chart()
	if err != nil {
		return err
	}
	if len(c.Series) == 0 {
		return errors.New("no series configured")
	}

	p, err := ggchart.FromConfig(c)
	if err != nil {
		return err
	}
	samples := 0
	for _, s := range c.Series {
		src, err := loadSeries(resolvePath(opts.configFile, s.File), s)
		if err != nil {
			return err
		}
		if _, err := p.AddSeries(src, s); err != nil {
			return err
		}
		samples += src.Len()
	}

	pr := printer()
	out := cmd.OutOrStdout()
	if ro.dryRun {
		rec := canvas.NewRecorder()
		frameErr := p.RenderCanvas(rec)
		st := rec.Stats()
		pr.Fprintf(out, "%d samples drawn as %d polylines (%d points), %d markers, %d fills\n",
			samples, st.Lines, st.Points, st.Markers, st.Fills)
		return frameErr
	}

	if err := p.SavePNG(ro.out); err != nil {
		return fmt.Errorf("render %s: %w", ro.out, err)
	}
	pr.Fprintf(out, "wrote %s: %d series, %d samples\n", ro.out, len(c.Series), samples)
	return nil
}
