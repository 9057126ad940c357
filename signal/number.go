package signal

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the storage capability required by sources: a totally ordered
// numeric type with an exact conversion to float64.
type Number interface {
	constraints.Integer | constraints.Float
}

// toFloat converts a stored value to float64.
func toFloat[T Number](v T) float64 {
	return float64(v)
}

// fromFloat converts f to the storage type, rounding to the nearest
// integer when T is an integer type.
func fromFloat[T Number](f float64) T {
	if isFloat[T]() {
		return T(f)
	}
	return T(math.Round(f))
}

// isFloat reports whether T can hold fractional values.
func isFloat[T Number]() bool {
	half := 0.5
	return T(half) != 0
}
