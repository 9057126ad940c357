package signal

import (
	"math"

	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/internal/cache"
)

// Decimator reduces a source to at most four pixels per pixel column.
//
// A Decimator remembers search results between frames. The memory is keyed
// by the viewport, the data-area width and the source version, and is
// discarded as soon as any of them changes. Use one Decimator per source.
// A Decimator is not safe for concurrent use.
type Decimator struct {
	hints *cache.Cache[hintKey, SearchResult]

	view       viewKey
	generation uint64
	boundaries []int // search positions of column boundaries, per generation
}

// hintKey identifies a viewport-edge search.
type hintKey struct {
	rng IndexRange
	dir edgeDir
}

type edgeDir uint8

const (
	dirLow edgeDir = iota
	dirHigh
)

// viewKey captures everything search results depend on.
type viewKey struct {
	x       coord.Range
	width   float64
	rng     IndexRange
	version uint64
}

// NewDecimator creates a decimator with an empty hint cache.
func NewDecimator() *Decimator {
	return &Decimator{
		hints: cache.New[hintKey, SearchResult](16),
	}
}

// Pixels returns the decimated line for the visible part of src: the
// column pixels from Columns, with the nearest off-screen sample on each
// side interpolated onto the border of rect.
func (d *Decimator) Pixels(src Source, axes coord.Axes, rect coord.PixelRect) ([]coord.Pixel, error) {
	if err := axes.Validate(rect); err != nil {
		return nil, err
	}
	if src.IndexRange().IsEmpty() {
		return nil, nil
	}
	d.renew(src, axes, rect)

	edges, err := edgePoints(src, axes, rect, d.edgeSearch(src))
	if err != nil {
		return nil, err
	}

	out := make([]coord.Pixel, 0, 4*columnCount(rect)+2)
	if edges.HasLeft {
		out = append(out, edges.Left)
	}
	out, err = d.appendColumns(out, src, axes, rect)
	if err != nil {
		return nil, err
	}
	if edges.HasRight {
		out = append(out, edges.Right)
	}

	InterpolateEdges(out, rect, edges.HasLeft, edges.HasRight)
	return out, nil
}

// Columns returns the per-column pixels only, in ascending pixel order.
// Empty columns contribute nothing, single-sample columns one pixel at the
// sample's position, and all other columns four pixels at the column
// center: enter, min, max, exit.
func (d *Decimator) Columns(src Source, axes coord.Axes, rect coord.PixelRect) ([]coord.Pixel, error) {
	if err := axes.Validate(rect); err != nil {
		return nil, err
	}
	if src.IndexRange().IsEmpty() {
		return nil, nil
	}
	d.renew(src, axes, rect)
	return d.appendColumns(make([]coord.Pixel, 0, 4*columnCount(rect)), src, axes, rect)
}

// renew starts a new hint generation when the view or the data changed.
func (d *Decimator) renew(src Source, axes coord.Axes, rect coord.PixelRect) {
	v := viewKey{
		x:       axes.X.Range,
		width:   rect.Width(),
		rng:     src.IndexRange(),
		version: src.Version(),
	}
	if v == d.view && d.generation != 0 {
		return
	}
	d.view = v
	d.generation++
	d.hints.Renew(d.generation)
	d.boundaries = d.boundaries[:0]
}

func (d *Decimator) edgeSearch(src Source) searchFunc {
	lo := d.view.x.Low()
	return func(x float64, r IndexRange) SearchResult {
		dir := dirHigh
		if x == lo {
			dir = dirLow
		}
		return d.hints.GetOrCreate(hintKey{rng: r, dir: dir}, func() SearchResult {
			return src.Search(x, r)
		})
	}
}

// columnBoundaries returns the search position of every column boundary.
// Boundary c is the X value at the left edge of column c; boundary n is
// clamped to the far edge of the viewport.
func (d *Decimator) columnBoundaries(src Source, axes coord.Axes, rect coord.PixelRect) ([]int, error) {
	n := columnCount(rect)
	if len(d.boundaries) == n+1 {
		return d.boundaries, nil
	}

	upp, err := axes.X.CoordinateDistance(1, rect)
	if err != nil {
		return nil, err
	}
	xr := axes.X.Range
	rng := src.IndexRange()

	b := make([]int, n+1)
	for c := 0; c <= n; c++ {
		x := xr.Min + upp*float64(c)
		if xr.IsInverted() {
			x = math.Max(x, xr.Max)
		} else {
			x = math.Min(x, xr.Max)
		}
		b[c] = src.Search(x, rng).Position
	}
	d.boundaries = b
	return b, nil
}

func (d *Decimator) appendColumns(out []coord.Pixel, src Source, axes coord.Axes, rect coord.PixelRect) ([]coord.Pixel, error) {
	bounds, err := d.columnBoundaries(src, axes, rect)
	if err != nil {
		return nil, err
	}
	inverted := axes.X.Range.IsInverted()

	for c := 0; c+1 < len(bounds); c++ {
		lo, hi := bounds[c], bounds[c+1]
		if lo > hi {
			lo, hi = hi, lo
		}
		switch hi - lo {
		case 0:
			continue
		case 1:
			p, err := axes.PixelOf(src.X(lo), src.Y(lo), rect)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		default:
			enter, exit := lo, hi-1
			if inverted {
				enter, exit = exit, enter
			}
			yr := src.RangeY(lo, hi-1)
			px := math.Min(rect.Left+float64(c)+0.5, rect.Right)
			ys := [4]float64{src.Y(enter), yr.Min, yr.Max, src.Y(exit)}
			for _, y := range ys {
				py, err := axes.Y.Pixel(y, rect)
				if err != nil {
					return nil, err
				}
				out = append(out, coord.Pixel{X: px, Y: py})
			}
		}
	}
	return out, nil
}

// columnCount returns the number of pixel columns in rect.
func columnCount(rect coord.PixelRect) int {
	w := rect.Width()
	if w <= 0 {
		return 0
	}
	return int(math.Ceil(w))
}
