package style

import (
	"fmt"
	"strings"
)

// LineStyle describes how a polyline is stroked.
type LineStyle struct {
	Color     Color
	Width     float64
	AntiAlias bool

	// Dash is nil for a solid line. Lengths are in pixels.
	Dash *Dash
}

// DefaultLine returns a 1 px anti-aliased solid black line.
func DefaultLine() LineStyle {
	return LineStyle{Color: Black, Width: 1, AntiAlias: true}
}

// IsVisible reports whether the style draws anything.
func (s LineStyle) IsVisible() bool {
	return s.Width > 0 && !s.Color.IsTransparent()
}

// MarkerShape selects the marker glyph.
type MarkerShape uint8

const (
	MarkerNone MarkerShape = iota
	MarkerFilledCircle
	MarkerFilledSquare
	MarkerOpenCircle
	MarkerOpenSquare
)

var markerShapeNames = [...]string{
	MarkerNone:         "none",
	MarkerFilledCircle: "circle",
	MarkerFilledSquare: "square",
	MarkerOpenCircle:   "open-circle",
	MarkerOpenSquare:   "open-square",
}

// String returns the configuration name of the shape.
func (m MarkerShape) String() string {
	if int(m) < len(markerShapeNames) {
		return markerShapeNames[m]
	}
	return "unknown"
}

// ParseMarkerShape parses a configuration name.
func ParseMarkerShape(s string) (MarkerShape, error) {
	for i, name := range markerShapeNames {
		if strings.EqualFold(s, name) {
			return MarkerShape(i), nil
		}
	}
	return MarkerNone, fmt.Errorf("style: unknown marker shape %q", s)
}

// MarkerStyle describes the glyph drawn at individual points.
type MarkerStyle struct {
	Shape MarkerShape
	Size  float64 // diameter in pixels
	Color Color

	// LineWidth is the outline width of open shapes.
	LineWidth float64
}

// DefaultMarker returns a 5 px filled black circle.
func DefaultMarker() MarkerStyle {
	return MarkerStyle{Shape: MarkerFilledCircle, Size: 5, Color: Black, LineWidth: 1}
}

// IsVisible reports whether the style draws anything.
func (s MarkerStyle) IsVisible() bool {
	return s.Shape != MarkerNone && s.Size > 0 && !s.Color.IsTransparent()
}

// ConnectStyle selects how consecutive points are joined.
type ConnectStyle uint8

const (
	// Straight joins points with diagonal segments.
	Straight ConnectStyle = iota
	// StepHorizontal moves right first, then up or down.
	StepHorizontal
	// StepVertical moves up or down first, then right.
	StepVertical
)

var connectStyleNames = [...]string{
	Straight:       "straight",
	StepHorizontal: "step-horizontal",
	StepVertical:   "step-vertical",
}

// String returns the configuration name of the style.
func (c ConnectStyle) String() string {
	if int(c) < len(connectStyleNames) {
		return connectStyleNames[c]
	}
	return "unknown"
}

// ParseConnectStyle parses a configuration name.
func ParseConnectStyle(s string) (ConnectStyle, error) {
	for i, name := range connectStyleNames {
		if strings.EqualFold(s, name) {
			return ConnectStyle(i), nil
		}
	}
	return Straight, fmt.Errorf("style: unknown connect style %q", s)
}
