package signal

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggchart/coord"
)

var (
	// ErrInvalidSeries is returned for series that violate construction
	// invariants (mismatched lengths, out-of-bounds index range, bad period).
	ErrInvalidSeries = errors.New("signal: invalid series")

	// ErrUnsupportedOperation is returned when a source is configured with a
	// feature it cannot render.
	ErrUnsupportedOperation = errors.New("signal: unsupported operation")
)

// IndexRange is an inclusive range of series indices.
// An empty range has Max < Min.
type IndexRange struct {
	Min, Max int
}

// Len returns the number of indices in the range.
func (r IndexRange) Len() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

// IsEmpty reports whether the range holds no index.
func (r IndexRange) IsEmpty() bool {
	return r.Max < r.Min
}

// Contains reports whether i lies in the range.
func (r IndexRange) Contains(i int) bool {
	return i >= r.Min && i <= r.Max
}

// String returns a human-readable representation.
func (r IndexRange) String() string {
	return fmt.Sprintf("[%d..%d]", r.Min, r.Max)
}

// SearchResult is the outcome of an index search.
//
// Position is where the searched value sits in the range: Min when the
// value is below every sample, Max+1 when above every sample. It tells
// callers whether data lies off screen. Index is Position clamped to Max
// and is always safe to read (for a non-empty range).
type SearchResult struct {
	Position int
	Index    int
}

// Source is an ordered series that can be decimated.
//
// X values are non-decreasing over IndexRange. Accessors return values
// with the source's offsets already applied.
type Source interface {
	// Len returns the number of stored samples.
	Len() int

	// IndexRange returns the active subset of samples.
	IndexRange() IndexRange

	// Search returns the lower bound of x within r: the smallest index i
	// in r with X(i) >= x. When several samples share x any of them may be
	// returned.
	Search(x float64, r IndexRange) SearchResult

	// X returns the X value of sample i, offset applied.
	X(i int) float64

	// Y returns the Y value of sample i, offset applied.
	Y(i int) float64

	// RangeY returns the Y extent of the samples between i1 and i2
	// inclusive, in either order, offset applied.
	RangeY(i1, i2 int) coord.Range

	// AxisLimits returns the data extent of the active subset.
	AxisLimits() coord.AxisLimits

	// Version changes whenever the samples, offsets, or range change.
	Version() uint64
}

// IndexOf returns the usable index nearest to x (lower bound) over the
// source's own index range.
func IndexOf(src Source, x float64) int {
	return src.Search(x, src.IndexRange()).Index
}

func checkIndexRange(r IndexRange, n int) error {
	if n == 0 && r.IsEmpty() {
		return nil
	}
	if r.Min < 0 || r.Max >= n || r.Max < r.Min {
		return fmt.Errorf("%w: index range %v outside [0..%d]", ErrInvalidSeries, r, n-1)
	}
	return nil
}

// lowerBound clamps a search position to r and builds the result.
func lowerBound(pos int, r IndexRange) SearchResult {
	return SearchResult{Position: pos, Index: min(pos, r.Max)}
}
