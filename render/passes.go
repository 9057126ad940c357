// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/hashicorp/go-multierror"
)

// BackgroundPass fills the figure and the data area.
type BackgroundPass struct{}

// Name returns "background".
func (BackgroundPass) Name() string { return "background" }

// Render fills Figure with the figure background and DataRect with the data
// background. Canvases without Filler are left untouched.
func (BackgroundPass) Render(rc *Context) error {
	rc.FillRect(rc.Figure, rc.Scene.FigureBackground)
	rc.FillRect(rc.DataRect, rc.Scene.DataBackground)
	return nil
}

// GridPass draws the scene grid when its placement matches Beneath.
type GridPass struct {
	Beneath bool
}

// Name returns "grid-beneath" or "grid-above".
func (p GridPass) Name() string {
	if p.Beneath {
		return "grid-beneath"
	}
	return "grid-above"
}

// NeedsViewport reports true.
func (GridPass) NeedsViewport() bool { return true }

// Render draws the grid clipped to the data area.
func (p GridPass) Render(rc *Context) error {
	g := rc.Scene.Grid
	if g == nil || !g.IsVisible() || g.BeneathPlottables() != p.Beneath {
		return nil
	}
	defer rc.ClipToData()()
	return g.Render(rc)
}

// PlottablePass draws every visible plottable clipped to the data area.
type PlottablePass struct{}

// Name returns "plottables".
func (PlottablePass) Name() string { return "plottables" }

// NeedsViewport reports true.
func (PlottablePass) NeedsViewport() bool { return true }

// Render draws the plottables in order. A failing plottable is reported and
// the remaining ones are still drawn.
func (p PlottablePass) Render(rc *Context) error {
	defer rc.ClipToData()()

	var result *multierror.Error
	for i, pl := range rc.Scene.Plottables {
		if pl == nil || !pl.IsVisible() {
			continue
		}
		if err := Guard(p.Name(), i, func() error { return pl.Render(rc) }); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// OverlayPass draws the overlays over the whole figure.
type OverlayPass struct{}

// Name returns "overlays".
func (OverlayPass) Name() string { return "overlays" }

// Render draws the visible overlays in order, isolating failures.
func (p OverlayPass) Render(rc *Context) error {
	var result *multierror.Error
	for i, o := range rc.Scene.Overlays {
		if o == nil || !o.IsVisible() {
			continue
		}
		if err := Guard(p.Name(), i, func() error { return o.Render(rc) }); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

var (
	_ Pass         = BackgroundPass{}
	_ ViewportPass = GridPass{}
	_ ViewportPass = PlottablePass{}
	_ Pass         = OverlayPass{}
)
