// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render sequences the drawing of one chart frame.
//
// A frame is described by a [Scene] (backgrounds, grid, plottables and
// overlays) and drawn onto a [Canvas] by a [Pipeline] of passes. Every pass
// receives the same [Context], which carries the viewport and the data-area
// rectangle computed once per frame.
//
// # Passes
//
// [DefaultPipeline] runs, in order:
//
//   - background: figure and data-area fills
//   - grid-beneath: the grid, when it is configured to sit under the data
//   - plottables: every visible plottable, clipped to the data area
//   - grid-above: the grid, when it is configured to sit over the data
//   - overlays: frame, crosshair and similar decorations
//
// # Failures
//
// A pass or plottable that returns an error or panics does not abort the
// frame. Failures are collected into a *multierror.Error, logged at warn
// level and returned from [Pipeline.Render] once every pass has run. A
// degenerate viewport skips the passes that need it and keeps the
// background.
//
// # Canvas capabilities
//
// [Canvas] only strokes polylines and draws markers. Rectangle fills and
// clipping are optional and discovered by type assertion on [Filler] and
// [Clipper].
package render
