// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/style"
)

// Plottable is a data layer drawn inside the data area.
type Plottable interface {
	// IsVisible reports whether the plottable draws at all. Invisible
	// plottables are skipped before any other method is called.
	IsVisible() bool

	// AxisLimits returns the data extent used for autoscaling.
	AxisLimits() coord.AxisLimits

	// Render draws the plottable using rc.Axes and rc.DataRect.
	Render(rc *Context) error
}

// Grid draws reference lines across the data area.
type Grid interface {
	IsVisible() bool

	// BeneathPlottables reports whether the grid is drawn before the
	// plottables (true) or after them (false).
	BeneathPlottables() bool

	Render(rc *Context) error
}

// Overlay is drawn after everything else.
type Overlay interface {
	IsVisible() bool
	Render(rc *Context) error
}

// Scene is everything one frame draws, in back to front order.
type Scene struct {
	// FigureBackground fills the whole figure.
	FigureBackground style.Color

	// DataBackground fills the data area on top of the figure background.
	DataBackground style.Color

	// Grid may be nil.
	Grid Grid

	Plottables []Plottable
	Overlays   []Overlay
}

// AxisLimits returns the union of the limits of every visible plottable.
// The result is unset when no plottable reports data.
func (s *Scene) AxisLimits() coord.AxisLimits {
	limits := coord.UnsetLimits()
	for _, p := range s.Plottables {
		if p == nil || !p.IsVisible() {
			continue
		}
		limits = limits.Union(p.AxisLimits())
	}
	return limits
}
