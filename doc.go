// Package ggchart renders 2-D line charts of very large numeric series.
//
// # Overview
//
// A [Plot] holds a scene of plottables, a grid and overlays, and renders
// them through a render.Pipeline onto a canvas. Series are drawn through a
// column decimator: whatever the number of samples, each pixel column of
// the data area receives at most four points (enter, min, max and exit
// values), so a million-sample series renders as fast as a few hundred.
//
// # Quick Start
//
//	import "github.com/gogpu/ggchart"
//
//	ys := make([]float64, 1_000_000)
//	// ... fill ys ...
//	src, _ := signal.NewUniform(ys, 1, 0)
//
//	p := ggchart.New(ggchart.WithSize(800, 400))
//	p.AddSignal(src)
//	p.AutoScale()
//	if err := p.SavePNG("chart.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Packages
//
//   - coord: pixel and data geometry, axis transforms
//   - signal: series sources, index search, decimation, edge resolution
//   - render: frame context, passes and pipeline
//   - canvas: raster and recording canvases
//   - style: colors, dashes, line and marker styles
//   - grid, plottable, overlay: scene building blocks
//   - config: chart descriptions loaded from YAML, JSON or TOML
//
// # Coordinate System
//
// Pixel coordinates have the origin at the top-left of the figure with Y
// growing downward. Data coordinates grow upward. Either axis may be
// inverted by giving it a range whose Min exceeds its Max.
//
// # Concurrency
//
// Rendering is synchronous. Plot methods are safe for concurrent use;
// series mutations that must not interleave with a frame go through
// [Plot.Update].
package ggchart
