package ggchart

import (
	"fmt"

	"github.com/gogpu/ggchart/config"
	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/grid"
	"github.com/gogpu/ggchart/plottable"
	"github.com/gogpu/ggchart/signal"
	"github.com/gogpu/ggchart/style"
)

// FromConfig creates a plot from a validated chart description. Series
// are not loaded; add their sources with AddSeries.
func FromConfig(c *config.Chart, opts ...Option) (*Plot, error) {
	bg, err := c.Background.Colors()
	if err != nil {
		return nil, fmt.Errorf("ggchart: %w", err)
	}
	major, err := c.Grid.Major.Style(style.Black)
	if err != nil {
		return nil, fmt.Errorf("ggchart: grid: %w", err)
	}
	minor, err := c.Grid.Minor.Style(style.Black)
	if err != nil {
		return nil, fmt.Errorf("ggchart: grid: %w", err)
	}

	base := []Option{
		WithSize(c.Width, c.Height),
		WithPadding(Padding(c.Padding)),
		WithBackground(bg[0], bg[1]),
		WithMargins(c.Margins.X, c.Margins.Y),
	}
	p := New(append(base, opts...)...)

	p.grid.Visible = c.Grid.Visible
	p.grid.Beneath = c.Grid.Beneath
	p.grid.Major, p.grid.Minor = major, minor
	p.grid.Ticks = grid.TickOptions{
		TargetSpacing:  c.Grid.Spacing,
		MinorDivisions: c.Grid.MinorDivisions,
		MaximumTicks:   c.Grid.MaximumLines,
	}
	p.frame.Visible = c.Frame

	if !c.Limits.Auto {
		p.SetLimits(coord.AxisLimits{
			X: coord.NewRange(c.Limits.XMin, c.Limits.XMax),
			Y: coord.NewRange(c.Limits.YMin, c.Limits.YMax),
		})
	}
	return p, nil
}

// AddSeries adds src as a signal styled by s. A zero line width keeps the
// default 1 px anti-aliased stroke; an empty color keeps the palette color.
func (p *Plot) AddSeries(src signal.Source, s config.Series) (*plottable.Signal, error) {
	connect, err := style.ParseConnectStyle(s.ConnectOrDefault())
	if err != nil {
		return nil, fmt.Errorf("ggchart: series %q: %w", s.Name, err)
	}
	shape, err := style.ParseMarkerShape(s.MarkerOrDefault())
	if err != nil {
		return nil, fmt.Errorf("ggchart: series %q: %w", s.Name, err)
	}

	sig := p.AddSignal(src)
	line, err := s.Line.Style(sig.Line.Color)
	if err != nil {
		p.Remove(sig)
		return nil, fmt.Errorf("ggchart: series %q: %w", s.Name, err)
	}
	if line.Width == 0 {
		line.Width = sig.Line.Width
		line.AntiAlias = true
	}

	sig.Label = s.Name
	sig.Line = line
	sig.Connect = connect
	sig.Marker.Shape = shape
	sig.Marker.Color = line.Color
	if s.MaximumMarkerSize > 0 {
		sig.MaximumMarkerSize = s.MaximumMarkerSize
	}
	return sig, nil
}
