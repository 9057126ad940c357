// Package coord maps chart data coordinates to pixel positions and back.
//
// # Coordinate System
//
// Pixel space follows the usual raster convention:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Data space Y increases up. The flip is done by [YAxis], never by
// rewriting data.
//
// # Inverted Axes
//
// A [Range] whose Min is greater than its Max has a negative span and
// describes a reversed axis. Transforms handle this without special cases:
// Min always maps to the left (X) or bottom (Y) edge of the rectangle.
package coord
