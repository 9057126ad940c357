// Package canvas provides the drawing surfaces chart frames are rendered
// onto.
//
// [Raster] draws into an *image.RGBA. Anti-aliased strokes, including dash
// patterns, go through github.com/srwiley/rasterx; markers and rectangle
// fills are scan-converted with golang.org/x/image/vector; strokes with
// anti-aliasing disabled are walked pixel by pixel.
//
// [Recorder] keeps typed commands instead of pixels. It backs tests and
// dry runs, and can replay a frame onto any other canvas.
//
// Both implement render.Canvas, render.Filler and render.Clipper.
package canvas
