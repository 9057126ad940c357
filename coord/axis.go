package coord

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateAxisRange is returned when a transform is requested for an
// axis whose data span or pixel length is zero, or whose scale does not fit
// in a finite non-zero float64.
var ErrDegenerateAxisRange = errors.New("coord: degenerate axis range")

// XAxis transforms horizontal data coordinates.
// Range.Min maps to the left edge of the data area.
type XAxis struct {
	Range Range
}

// pxPerUnit returns the pixel-per-data-unit scale for this axis.
func (a XAxis) pxPerUnit(rect PixelRect) (float64, error) {
	return scale("x", a.Range, rect.Width())
}

// Pixel returns the horizontal pixel position of a data value.
func (a XAxis) Pixel(value float64, rect PixelRect) (float64, error) {
	s, err := a.pxPerUnit(rect)
	if err != nil {
		return 0, err
	}
	return rect.Left + (value-a.Range.Min)*s, nil
}

// Coordinate returns the data value at a horizontal pixel position.
func (a XAxis) Coordinate(pixel float64, rect PixelRect) (float64, error) {
	s, err := a.pxPerUnit(rect)
	if err != nil {
		return 0, err
	}
	return a.Range.Min + (pixel-rect.Left)/s, nil
}

// PixelDistance converts a data distance to a pixel distance.
// The result is negative for an inverted axis.
func (a XAxis) PixelDistance(d float64, rect PixelRect) (float64, error) {
	s, err := a.pxPerUnit(rect)
	if err != nil {
		return 0, err
	}
	return d * s, nil
}

// CoordinateDistance converts a pixel distance to a data distance.
func (a XAxis) CoordinateDistance(px float64, rect PixelRect) (float64, error) {
	s, err := a.pxPerUnit(rect)
	if err != nil {
		return 0, err
	}
	return px / s, nil
}

// YAxis transforms vertical data coordinates.
// Range.Min maps to the bottom edge of the data area.
type YAxis struct {
	Range Range
}

// pxPerUnit returns the pixel-per-data-unit scale for this axis.
func (a YAxis) pxPerUnit(rect PixelRect) (float64, error) {
	return scale("y", a.Range, rect.Height())
}

// Pixel returns the vertical pixel position of a data value.
func (a YAxis) Pixel(value float64, rect PixelRect) (float64, error) {
	s, err := a.pxPerUnit(rect)
	if err != nil {
		return 0, err
	}
	return rect.Bottom - (value-a.Range.Min)*s, nil
}

// Coordinate returns the data value at a vertical pixel position.
func (a YAxis) Coordinate(pixel float64, rect PixelRect) (float64, error) {
	s, err := a.pxPerUnit(rect)
	if err != nil {
		return 0, err
	}
	return a.Range.Min + (rect.Bottom-pixel)/s, nil
}

// PixelDistance converts a data distance to a pixel distance.
// Positive distances point up in data space, so the sign follows data space.
func (a YAxis) PixelDistance(d float64, rect PixelRect) (float64, error) {
	s, err := a.pxPerUnit(rect)
	if err != nil {
		return 0, err
	}
	return d * s, nil
}

// CoordinateDistance converts a pixel distance to a data distance.
func (a YAxis) CoordinateDistance(px float64, rect PixelRect) (float64, error) {
	s, err := a.pxPerUnit(rect)
	if err != nil {
		return 0, err
	}
	return px / s, nil
}

func scale(name string, r Range, pixelLength float64) (float64, error) {
	span := r.Span()
	if span == 0 || pixelLength == 0 || !r.IsSet() {
		return 0, fmt.Errorf("%w: %s axis span %g over %g px", ErrDegenerateAxisRange, name, span, pixelLength)
	}
	s := pixelLength / span
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return 0, fmt.Errorf("%w: %s axis span %g over %g px", ErrDegenerateAxisRange, name, span, pixelLength)
	}
	return s, nil
}

// Axes is the viewport: one horizontal and one vertical axis.
type Axes struct {
	X XAxis
	Y YAxis
}

// NewAxes creates a viewport from two data ranges.
func NewAxes(x, y Range) Axes {
	return Axes{X: XAxis{Range: x}, Y: YAxis{Range: y}}
}

// Validate reports ErrDegenerateAxisRange if either axis cannot be
// transformed into rect.
func (a Axes) Validate(rect PixelRect) error {
	if _, err := a.X.pxPerUnit(rect); err != nil {
		return err
	}
	_, err := a.Y.pxPerUnit(rect)
	return err
}

// PixelOf transforms a data point into pixel space.
func (a Axes) PixelOf(x, y float64, rect PixelRect) (Pixel, error) {
	px, err := a.X.Pixel(x, rect)
	if err != nil {
		return Pixel{}, err
	}
	py, err := a.Y.Pixel(y, rect)
	if err != nil {
		return Pixel{}, err
	}
	return Pixel{X: px, Y: py}, nil
}

// Limits returns the viewport as axis limits.
func (a Axes) Limits() AxisLimits {
	return AxisLimits{X: a.X.Range, Y: a.Y.Range}
}
