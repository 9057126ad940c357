package signal

import (
	"fmt"
	"math"

	"github.com/gogpu/ggchart/coord"
)

// Uniform is an equally spaced series: X of sample i is XStart + i*Period.
// Search is arithmetic instead of a binary search.
type Uniform[TY Number] struct {
	ys     []TY
	period float64
	xStart float64

	xOffset float64
	yOffset float64
	rng     IndexRange
	version uint64
}

// NewUniform creates an equally spaced series over ys.
// Returns ErrInvalidSeries if period is not a positive finite number.
func NewUniform[TY Number](ys []TY, period, xStart float64) (*Uniform[TY], error) {
	if !(period > 0) || math.IsInf(period, 0) {
		return nil, fmt.Errorf("%w: period %g", ErrInvalidSeries, period)
	}
	return &Uniform[TY]{
		ys:     ys,
		period: period,
		xStart: xStart,
		rng:    IndexRange{Min: 0, Max: len(ys) - 1},
	}, nil
}

// Len returns the number of stored samples.
func (s *Uniform[TY]) Len() int {
	return len(s.ys)
}

// Ys returns the borrowed Y storage.
func (s *Uniform[TY]) Ys() []TY {
	return s.ys
}

// Period returns the X distance between consecutive samples.
func (s *Uniform[TY]) Period() float64 {
	return s.period
}

// IndexRange returns the active subset.
func (s *Uniform[TY]) IndexRange() IndexRange {
	return s.rng
}

// SetIndexRange restricts rendering and search to r without copying.
func (s *Uniform[TY]) SetIndexRange(r IndexRange) error {
	if err := checkIndexRange(r, len(s.ys)); err != nil {
		return err
	}
	s.rng = r
	s.version++
	return nil
}

// SetOffset sets the X and Y offsets added at read time.
func (s *Uniform[TY]) SetOffset(x, y float64) {
	s.xOffset, s.yOffset = x, y
	s.version++
}

// Offset returns the X and Y offsets added at read time.
func (s *Uniform[TY]) Offset() (x, y float64) {
	return s.xOffset, s.yOffset
}

// SetY overwrites the value of sample i (offset removed).
func (s *Uniform[TY]) SetY(i int, y float64) error {
	if i < 0 || i >= len(s.ys) {
		return fmt.Errorf("%w: index %d outside [0..%d]", ErrInvalidSeries, i, len(s.ys)-1)
	}
	s.ys[i] = fromFloat[TY](y - s.yOffset)
	s.version++
	return nil
}

// MarkChanged records that the borrowed slice was modified in place.
func (s *Uniform[TY]) MarkChanged() {
	s.version++
}

// SetRotated requests rendering with swapped axes; see XY.SetRotated.
func (s *Uniform[TY]) SetRotated(rotated bool) error {
	if rotated {
		return fmt.Errorf("%w: rotation of generic uniform sources", ErrUnsupportedOperation)
	}
	return nil
}

// Version changes on every mutation.
func (s *Uniform[TY]) Version() uint64 {
	return s.version
}

// X returns the X value of sample i, offset applied.
func (s *Uniform[TY]) X(i int) float64 {
	return s.xStart + float64(i)*s.period + s.xOffset
}

// Y returns the Y value of sample i, offset applied.
func (s *Uniform[TY]) Y(i int) float64 {
	return toFloat(s.ys[i]) + s.yOffset
}

// Search returns the lower bound of x within r.
func (s *Uniform[TY]) Search(x float64, r IndexRange) SearchResult {
	if r.IsEmpty() {
		return SearchResult{Position: r.Min, Index: r.Min}
	}

	q := (x - s.xOffset - s.xStart) / s.period
	if math.IsNaN(q) {
		return lowerBound(r.Min, r)
	}
	q = math.Ceil(math.Max(float64(r.Min), math.Min(q, float64(r.Max+1))))
	pos := int(q)

	// The division can land just above an exact sample position.
	if pos > r.Min && s.X(pos-1) >= x {
		pos--
	} else if pos <= r.Max && s.X(pos) < x {
		pos++
	}
	return lowerBound(pos, r)
}

// RangeY returns the Y extent between i1 and i2 inclusive.
func (s *Uniform[TY]) RangeY(i1, i2 int) coord.Range {
	return rangeY(s.ys, i1, i2, s.yOffset)
}

// AxisLimits returns the data extent of the active subset.
func (s *Uniform[TY]) AxisLimits() coord.AxisLimits {
	if s.rng.IsEmpty() {
		return coord.UnsetLimits()
	}
	return coord.AxisLimits{
		X: coord.NewRange(s.X(s.rng.Min), s.X(s.rng.Max)),
		Y: s.RangeY(s.rng.Min, s.rng.Max),
	}
}

var _ Source = (*Uniform[float64])(nil)
