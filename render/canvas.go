// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/style"
)

// Canvas is the drawing surface passes render onto.
//
// Points are in pixel space. Implementations must accept empty and
// single-point slices without drawing anything for lines.
type Canvas interface {
	// DrawLines strokes the polyline through points.
	DrawLines(points []coord.Pixel, ls style.LineStyle)

	// DrawMarkers draws one marker centered on every point.
	DrawMarkers(points []coord.Pixel, ms style.MarkerStyle)
}

// Filler is implemented by canvases that can fill rectangles.
type Filler interface {
	FillRect(r coord.PixelRect, c style.Color)
}

// Clipper is implemented by canvases that can restrict drawing to a
// rectangle.
type Clipper interface {
	SetClip(r coord.PixelRect)
	ResetClip()
}
