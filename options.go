package ggchart

import (
	"log/slog"

	"github.com/gogpu/ggchart/render"
	"github.com/gogpu/ggchart/style"
)

// Option configures a Plot during creation.
//
// Example:
//
//	p := ggchart.New(
//	    ggchart.WithSize(1200, 600),
//	    ggchart.WithPadding(ggchart.Padding{Left: 50, Right: 10, Top: 10, Bottom: 40}),
//	)
type Option func(*plotOptions)

// plotOptions holds optional configuration for Plot creation.
type plotOptions struct {
	width, height int
	padding       Padding
	pipeline      *render.Pipeline
	logger        *slog.Logger
	marginX       float64
	marginY       float64
	figure, data  style.Color
}

// defaultOptions returns the default plot options.
func defaultOptions() plotOptions {
	return plotOptions{
		width:    800,
		height:   600,
		padding:  Padding{Left: 10, Right: 10, Top: 10, Bottom: 10},
		pipeline: nil, // DefaultPipeline if nil
		marginX:  0,
		marginY:  0.1,
		figure:   style.White,
		data:     style.White,
	}
}

// WithSize sets the figure size in pixels.
func WithSize(width, height int) Option {
	return func(o *plotOptions) {
		o.width, o.height = width, height
	}
}

// WithPadding sets the distance between the figure border and the data area.
func WithPadding(p Padding) Option {
	return func(o *plotOptions) {
		o.padding = p
	}
}

// WithPipeline replaces the default render pipeline.
// Use this to add custom passes or to reorder the built-in ones.
func WithPipeline(p *render.Pipeline) Option {
	return func(o *plotOptions) {
		o.pipeline = p
	}
}

// WithLogger sets a logger for this plot's frames only.
// Without it, frames log through the logger installed by SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *plotOptions) {
		o.logger = l
	}
}

// WithMargins sets the fraction of the data span AutoScale leaves empty on
// each side of the X and Y axes.
func WithMargins(x, y float64) Option {
	return func(o *plotOptions) {
		o.marginX, o.marginY = x, y
	}
}

// WithBackground sets the figure and data-area background colors.
func WithBackground(figure, data style.Color) Option {
	return func(o *plotOptions) {
		o.figure, o.data = figure, data
	}
}
