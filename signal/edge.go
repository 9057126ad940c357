package signal

import (
	"github.com/gogpu/ggchart/coord"
)

// Edges holds the samples just outside the visible X range.
// Left and Right are in screen order, so they swap on an inverted axis.
type Edges struct {
	Left, Right       coord.Pixel
	HasLeft, HasRight bool

	// Visible is the index range between the edge samples.
	Visible IndexRange
}

// EdgePoints finds the nearest sample beyond each side of the viewport and
// transforms it to pixel space.
func EdgePoints(src Source, axes coord.Axes, rect coord.PixelRect) (Edges, error) {
	return edgePoints(src, axes, rect, src.Search)
}

type searchFunc func(x float64, r IndexRange) SearchResult

func edgePoints(src Source, axes coord.Axes, rect coord.PixelRect, search searchFunc) (Edges, error) {
	var e Edges
	rng := src.IndexRange()
	if rng.IsEmpty() {
		e.Visible = rng
		return e, nil
	}

	xr := axes.X.Range
	first := search(xr.Low(), rng)
	last := search(xr.High(), rng)
	e.Visible = IndexRange{Min: first.Index, Max: last.Index}

	var before, after coord.Pixel
	hasBefore := first.Position > rng.Min
	hasAfter := last.Position <= rng.Max

	if hasBefore {
		i := first.Position - 1
		p, err := axes.PixelOf(src.X(i), src.Y(i), rect)
		if err != nil {
			return Edges{}, err
		}
		before = p
	}
	if hasAfter {
		i := last.Position
		p, err := axes.PixelOf(src.X(i), src.Y(i), rect)
		if err != nil {
			return Edges{}, err
		}
		after = p
	}

	if xr.IsInverted() {
		e.Left, e.HasLeft = after, hasAfter
		e.Right, e.HasRight = before, hasBefore
	} else {
		e.Left, e.HasLeft = before, hasBefore
		e.Right, e.HasRight = after, hasAfter
	}
	return e, nil
}

// InterpolateEdges moves the first point (when hasLeft) and the last point
// (when hasRight) along the segment to their neighbour so they sit exactly
// on rect.Left and rect.Right. Neighbour positions are read before either
// end is moved. Sequences shorter than two points are left unchanged.
func InterpolateEdges(points []coord.Pixel, rect coord.PixelRect, hasLeft, hasRight bool) {
	n := len(points)
	if n < 2 {
		return
	}
	first, second := points[0], points[1]
	last, beforeLast := points[n-1], points[n-2]

	if hasLeft {
		points[0] = crossAt(first, second, rect.Left)
	}
	if hasRight {
		points[n-1] = crossAt(last, beforeLast, rect.Right)
	}
}

// crossAt returns the point of segment (out, in) at pixel column x.
func crossAt(out, in coord.Pixel, x float64) coord.Pixel {
	dx := in.X - out.X
	if dx == 0 {
		return coord.Pixel{X: x, Y: out.Y}
	}
	t := (x - out.X) / dx
	return coord.Pixel{X: x, Y: out.Y + t*(in.Y-out.Y)}
}
