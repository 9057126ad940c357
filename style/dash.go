package style

import "math"

// Dash defines a dash pattern for stroking.
// Array alternates dash and gap lengths in pixels. An odd-length array is
// logically repeated to make it even ([5] behaves as [5, 5]).
// A nil *Dash draws a solid line.
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are made positive. Returns nil (solid) when no length
// is positive.
func NewDash(lengths ...float64) *Dash {
	solid := true
	for _, l := range lengths {
		if l > 0 {
			solid = false
			break
		}
	}
	if solid {
		return nil
	}

	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
	}
	return &Dash{Array: normalized}
}

// IsDashed reports whether this is a dashed (not solid) pattern.
func (d *Dash) IsDashed() bool {
	if d == nil {
		return false
	}
	for _, l := range d.Array {
		if l > 0 {
			return true
		}
	}
	return false
}

// Pattern returns the even-length pattern, repeating odd arrays.
func (d *Dash) Pattern() []float64 {
	if !d.IsDashed() {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	out := make([]float64, 0, 2*len(d.Array))
	out = append(out, d.Array...)
	return append(out, d.Array...)
}

// PatternLength returns the length of one complete cycle.
func (d *Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.Pattern() {
		total += l
	}
	return total
}

// Scale returns the pattern with every length multiplied by s, so patterns
// can follow the line width.
func (d *Dash) Scale(s float64) *Dash {
	if !d.IsDashed() {
		return nil
	}
	out := &Dash{Array: make([]float64, len(d.Array)), Offset: d.Offset * s}
	for i, l := range d.Array {
		out.Array[i] = l * s
	}
	return out
}

// Named dash patterns, in units of line width.
var (
	Solid      *Dash
	Dashed     = NewDash(4, 4)
	DenselyDot = NewDash(1, 2)
	Dotted     = NewDash(1, 4)
	DashDot    = NewDash(4, 3, 1, 3)
)
