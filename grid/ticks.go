package grid

import (
	"math"

	"github.com/gogpu/ggchart/coord"
)

// Tick is a grid line position in data units.
type Tick struct {
	Position float64
	Major    bool
}

// TickOptions controls tick generation.
type TickOptions struct {
	// TargetSpacing is the desired distance between major ticks in pixels.
	TargetSpacing float64

	// MinorDivisions splits every major interval. Values below 2 disable
	// minor ticks.
	MinorDivisions int

	// MaximumTicks caps the number of returned ticks. Minor ticks are
	// dropped first, then the major step is widened.
	MaximumTicks int
}

// DefaultTickOptions returns 80 px major spacing, 5 minor divisions and a
// cap of 1000 ticks.
func DefaultTickOptions() TickOptions {
	return TickOptions{TargetSpacing: 80, MinorDivisions: 5, MaximumTicks: 1000}
}

// NiceStep returns the smallest 1, 2 or 5 times a power of ten that is at
// least span/count.
func NiceStep(span, count float64) float64 {
	if !(span > 0) || !(count > 0) || math.IsInf(span, 0) {
		return 0
	}
	raw := span / count
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range [...]float64{1, 2, 5} {
		if m*mag >= raw {
			return m * mag
		}
	}
	return 10 * mag
}

// Ticks returns the tick positions inside r for an axis pixelLength pixels
// long, in ascending data order. Inverted ranges are handled.
func Ticks(r coord.Range, pixelLength float64, opts TickOptions) []Tick {
	lo, hi := r.Low(), r.High()
	if !r.IsSet() || !(hi > lo) || !(pixelLength > 0) || !(opts.TargetSpacing > 0) {
		return nil
	}

	count := math.Max(1, pixelLength/opts.TargetSpacing)
	major := NiceStep(hi-lo, count)
	if major == 0 {
		return nil
	}

	divs := opts.MinorDivisions
	if divs < 2 {
		divs = 1
	}
	limit := opts.MaximumTicks
	if limit <= 0 {
		limit = math.MaxInt32
	}

	step := major / float64(divs)
	first, last := math.Ceil(lo/step), math.Floor(hi/step)
	if last-first+1 > float64(limit) && divs > 1 {
		divs, step = 1, major
		first, last = math.Ceil(lo/step), math.Floor(hi/step)
	}
	// Still too many: widen the major step so the kept lines span the range.
	for c := float64(limit); last-first+1 > float64(limit); c /= 2 {
		step = NiceStep(hi-lo, c)
		first, last = math.Ceil(lo/step), math.Floor(hi/step)
	}
	n := int(math.Min(last-first+1, float64(limit)))
	if n <= 0 {
		return nil
	}

	ticks := make([]Tick, 0, n)
	for i := 0; i < n; i++ {
		k := first + float64(i)
		ticks = append(ticks, Tick{
			Position: k * step,
			Major:    math.Mod(k, float64(divs)) == 0,
		})
	}
	return ticks
}
