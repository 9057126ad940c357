package plottable

import (
	"fmt"

	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/render"
	"github.com/gogpu/ggchart/signal"
	"github.com/gogpu/ggchart/style"
)

// Signal draws an ordered series as a decimated line.
//
// When fewer samples than pixel columns are visible, markers are drawn on
// the samples, growing towards MaximumMarkerSize as the view zooms in.
type Signal struct {
	Source signal.Source

	Visible bool
	Label   string

	Line    style.LineStyle
	Marker  style.MarkerStyle
	Connect style.ConnectStyle

	// MaximumMarkerSize is the marker diameter when samples are far apart.
	// Zero disables automatic markers.
	MaximumMarkerSize float64

	decimator *signal.Decimator
	line      []coord.Pixel
}

// NewSignal creates a visible signal plottable drawing src with a 1 px line
// in color c.
func NewSignal(src signal.Source, c style.Color) *Signal {
	return &Signal{
		Source:            src,
		Visible:           true,
		Line:              style.LineStyle{Color: c, Width: 1, AntiAlias: true},
		Marker:            style.MarkerStyle{Shape: style.MarkerFilledCircle, Color: c, LineWidth: 1},
		MaximumMarkerSize: 4,
		decimator:         signal.NewDecimator(),
	}
}

// IsVisible implements render.Plottable.
func (s *Signal) IsVisible() bool {
	return s.Visible && s.Source != nil
}

// AxisLimits implements render.Plottable.
func (s *Signal) AxisLimits() coord.AxisLimits {
	if s.Source == nil {
		return coord.UnsetLimits()
	}
	return s.Source.AxisLimits()
}

// Render implements render.Plottable.
func (s *Signal) Render(rc *render.Context) error {
	if s.decimator == nil {
		s.decimator = signal.NewDecimator()
	}

	pixels, err := s.decimator.Pixels(s.Source, rc.Axes, rc.DataRect)
	if err != nil {
		return fmt.Errorf("plottable: signal %q: %w", s.Label, err)
	}
	if len(pixels) == 0 {
		return nil
	}

	s.line = appendConnected(s.line[:0], pixels, s.Connect)
	rc.Canvas.DrawLines(s.line, s.Line)

	if ms, ok := s.markers(rc); ok {
		cols, err := s.decimator.Columns(s.Source, rc.Axes, rc.DataRect)
		if err != nil {
			return fmt.Errorf("plottable: signal %q: %w", s.Label, err)
		}
		rc.Canvas.DrawMarkers(cols, ms)
	}
	return nil
}

// PointsPerPixel returns the number of visible samples per pixel column.
func (s *Signal) PointsPerPixel(axes coord.Axes, rect coord.PixelRect) (float64, error) {
	edges, err := signal.EdgePoints(s.Source, axes, rect)
	if err != nil {
		return 0, err
	}
	return float64(edges.Visible.Len()) / rect.Width(), nil
}

// markers returns the marker style for the current zoom, scaled down as
// samples get denser and hidden from one sample per pixel upward.
func (s *Signal) markers(rc *render.Context) (style.MarkerStyle, bool) {
	if s.MaximumMarkerSize <= 0 {
		return style.MarkerStyle{}, false
	}
	ppp, err := s.PointsPerPixel(rc.Axes, rc.DataRect)
	if err != nil || ppp >= 1 {
		return style.MarkerStyle{}, false
	}
	ms := s.Marker
	ms.Size = s.MaximumMarkerSize * (1 - ppp)
	return ms, ms.IsVisible()
}

var _ render.Plottable = (*Signal)(nil)
