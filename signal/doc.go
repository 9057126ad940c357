// Package signal turns large ordered series into short pixel sequences.
//
// A [Source] holds the samples; [XY] stores explicit X values and [Uniform]
// derives X from a fixed sample period. Both are generic over the storage
// type through the [Number] constraint, so one decimation algorithm serves
// every numeric width.
//
// # Decimation
//
// [Decimator] splits the data area into one-pixel columns. Each column is
// reduced to at most four pixels (enter, min, max, exit), so rendering cost
// depends on the pixel width of the chart rather than on the number of
// samples, and no spike inside a column is lost:
//
//	src, _ := signal.NewXY(xs, ys)
//	dec := signal.NewDecimator()
//	pixels, err := dec.Pixels(src, axes, dataRect)
//
// One extra pixel on each side carries the line to the border of the data
// area when samples exist beyond the viewport (see [EdgePoints] and
// [InterpolateEdges]).
//
// # Ownership
//
// Sources borrow the caller's slices. They are read-only while a frame
// renders; owners may mutate between frames and must then call a mutating
// method or MarkChanged so cached search hints are dropped.
package signal
