package coord

import (
	"fmt"
	"math"
)

// Range is an inclusive interval on one data axis.
// Min is the value at the left (X) or bottom (Y) edge of the data area.
// Min may exceed Max to describe an inverted axis.
type Range struct {
	Min, Max float64
}

// NewRange creates a range from its two edge values.
func NewRange(lo, hi float64) Range {
	return Range{Min: lo, Max: hi}
}

// UnsetRange returns a range that any Expand call replaces.
func UnsetRange() Range {
	return Range{Min: math.Inf(1), Max: math.Inf(-1)}
}

// Span returns Max - Min. Negative for an inverted axis.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// IsInverted reports whether the axis runs from high to low values.
func (r Range) IsInverted() bool {
	return r.Max < r.Min
}

// IsSet reports whether both edges are finite.
func (r Range) IsSet() bool {
	return !math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0) &&
		!math.IsNaN(r.Min) && !math.IsNaN(r.Max)
}

// Low returns the smaller edge.
func (r Range) Low() float64 {
	return math.Min(r.Min, r.Max)
}

// High returns the larger edge.
func (r Range) High() float64 {
	return math.Max(r.Min, r.Max)
}

// Contains reports whether v lies within the range, regardless of direction.
func (r Range) Contains(v float64) bool {
	return v >= r.Low() && v <= r.High()
}

// Inverted returns the same interval with its direction reversed.
func (r Range) Inverted() Range {
	return Range{Min: r.Max, Max: r.Min}
}

// Expand returns the smallest non-inverted range covering r and v.
// NaN values are ignored.
func (r Range) Expand(v float64) Range {
	if math.IsNaN(v) {
		return r
	}
	return Range{Min: math.Min(r.Min, v), Max: math.Max(r.Max, v)}
}

// Union returns the smallest non-inverted range covering r and o.
func (r Range) Union(o Range) Range {
	if !o.IsSet() {
		return r
	}
	return r.Expand(o.Low()).Expand(o.High())
}

// WithMargin pads the range by fraction of its span on each side.
// A zero-span range is padded by half a unit so the result is never degenerate.
func (r Range) WithMargin(fraction float64) Range {
	span := r.Span()
	if span == 0 {
		return Range{Min: r.Min - 0.5, Max: r.Max + 0.5}
	}
	pad := span * fraction
	return Range{Min: r.Min - pad, Max: r.Max + pad}
}

// String returns a human-readable representation.
func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// AxisLimits holds the data ranges of both axes.
type AxisLimits struct {
	X, Y Range
}

// UnsetLimits returns limits that any Expand or Union call replaces.
func UnsetLimits() AxisLimits {
	return AxisLimits{X: UnsetRange(), Y: UnsetRange()}
}

// IsSet reports whether both axes have finite ranges.
func (l AxisLimits) IsSet() bool {
	return l.X.IsSet() && l.Y.IsSet()
}

// Union returns limits covering both l and o.
func (l AxisLimits) Union(o AxisLimits) AxisLimits {
	return AxisLimits{X: l.X.Union(o.X), Y: l.Y.Union(o.Y)}
}

// WithMargins pads each axis by the given fraction of its span.
func (l AxisLimits) WithMargins(x, y float64) AxisLimits {
	return AxisLimits{X: l.X.WithMargin(x), Y: l.Y.WithMargin(y)}
}
