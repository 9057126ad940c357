package signal

import (
	"fmt"
	"sort"

	"github.com/gogpu/ggchart/coord"
)

// XY is a series with explicit, non-decreasing X values.
//
// The slices are borrowed, not copied. Search is a binary search over the
// active index range.
type XY[TX, TY Number] struct {
	xs []TX
	ys []TY

	xOffset float64
	yOffset float64
	rng     IndexRange
	version uint64
}

// NewXY creates a series over xs and ys.
// Returns ErrInvalidSeries if the slices differ in length.
func NewXY[TX, TY Number](xs []TX, ys []TY) (*XY[TX, TY], error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d xs and %d ys", ErrInvalidSeries, len(xs), len(ys))
	}
	return &XY[TX, TY]{
		xs:  xs,
		ys:  ys,
		rng: IndexRange{Min: 0, Max: len(xs) - 1},
	}, nil
}

// Len returns the number of stored samples.
func (s *XY[TX, TY]) Len() int {
	return len(s.xs)
}

// Xs returns the borrowed X storage.
func (s *XY[TX, TY]) Xs() []TX {
	return s.xs
}

// Ys returns the borrowed Y storage.
func (s *XY[TX, TY]) Ys() []TY {
	return s.ys
}

// IndexRange returns the active subset.
func (s *XY[TX, TY]) IndexRange() IndexRange {
	return s.rng
}

// SetIndexRange restricts rendering and search to r without copying.
func (s *XY[TX, TY]) SetIndexRange(r IndexRange) error {
	if err := checkIndexRange(r, len(s.xs)); err != nil {
		return err
	}
	s.rng = r
	s.version++
	return nil
}

// Offset returns the X and Y offsets added at read time.
func (s *XY[TX, TY]) Offset() (x, y float64) {
	return s.xOffset, s.yOffset
}

// SetOffset sets the X and Y offsets added at read time.
func (s *XY[TX, TY]) SetOffset(x, y float64) {
	s.xOffset, s.yOffset = x, y
	s.version++
}

// Set overwrites sample i with data-space values (offsets removed).
// Values are converted to the storage types, rounding for integers.
// The caller keeps X non-decreasing.
func (s *XY[TX, TY]) Set(i int, x, y float64) error {
	if i < 0 || i >= len(s.xs) {
		return fmt.Errorf("%w: index %d outside [0..%d]", ErrInvalidSeries, i, len(s.xs)-1)
	}
	s.xs[i] = fromFloat[TX](x - s.xOffset)
	s.ys[i] = fromFloat[TY](y - s.yOffset)
	s.version++
	return nil
}

// MarkChanged records that the borrowed slices were modified in place.
func (s *XY[TX, TY]) MarkChanged() {
	s.version++
}

// SetRotated requests rendering with swapped axes. Rotation is not
// supported by the generic sources, so enabling it always fails.
func (s *XY[TX, TY]) SetRotated(rotated bool) error {
	if rotated {
		return fmt.Errorf("%w: rotation of generic XY sources", ErrUnsupportedOperation)
	}
	return nil
}

// Version changes on every mutation.
func (s *XY[TX, TY]) Version() uint64 {
	return s.version
}

// X returns the X value of sample i, offset applied.
func (s *XY[TX, TY]) X(i int) float64 {
	return toFloat(s.xs[i]) + s.xOffset
}

// Y returns the Y value of sample i, offset applied.
func (s *XY[TX, TY]) Y(i int) float64 {
	return toFloat(s.ys[i]) + s.yOffset
}

// Search returns the lower bound of x within r.
func (s *XY[TX, TY]) Search(x float64, r IndexRange) SearchResult {
	if r.IsEmpty() {
		return SearchResult{Position: r.Min, Index: r.Min}
	}
	target := x - s.xOffset
	i := sort.Search(r.Len(), func(k int) bool {
		return toFloat(s.xs[r.Min+k]) >= target
	})
	return lowerBound(r.Min+i, r)
}

// RangeY returns the Y extent between i1 and i2 inclusive.
func (s *XY[TX, TY]) RangeY(i1, i2 int) coord.Range {
	return rangeY(s.ys, i1, i2, s.yOffset)
}

// AxisLimits returns the data extent of the active subset.
func (s *XY[TX, TY]) AxisLimits() coord.AxisLimits {
	if s.rng.IsEmpty() {
		return coord.UnsetLimits()
	}
	return coord.AxisLimits{
		X: coord.NewRange(s.X(s.rng.Min), s.X(s.rng.Max)),
		Y: s.RangeY(s.rng.Min, s.rng.Max),
	}
}

func rangeY[T Number](ys []T, i1, i2 int, offset float64) coord.Range {
	lo, hi := min(i1, i2), max(i1, i2)
	mn, mx := ys[lo], ys[lo]
	for _, v := range ys[lo+1 : hi+1] {
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}
	return coord.NewRange(toFloat(mn)+offset, toFloat(mx)+offset)
}

var _ Source = (*XY[float64, float64])(nil)
