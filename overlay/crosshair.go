package overlay

import (
	"fmt"

	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/render"
	"github.com/gogpu/ggchart/style"
)

// Crosshair draws a vertical and a horizontal line through a data position.
type Crosshair struct {
	Visible bool
	X, Y    float64
	Line    style.LineStyle

	// Marker, when visible, is drawn at the intersection.
	Marker style.MarkerStyle
}

// NewCrosshair returns a visible dashed crosshair at (x, y).
func NewCrosshair(x, y float64) *Crosshair {
	return &Crosshair{
		Visible: true,
		X:       x,
		Y:       y,
		Line: style.LineStyle{
			Color:     style.RGBA(1, 0, 0, 0.8),
			Width:     1,
			AntiAlias: true,
			Dash:      style.Dashed,
		},
	}
}

// IsVisible implements render.Overlay.
func (c *Crosshair) IsVisible() bool {
	return c.Visible && (c.Line.IsVisible() || c.Marker.IsVisible())
}

// Render implements render.Overlay. The lines are clipped to the data area.
func (c *Crosshair) Render(rc *render.Context) error {
	p, err := rc.PixelOf(c.X, c.Y)
	if err != nil {
		return fmt.Errorf("overlay: crosshair: %w", err)
	}
	r := rc.DataRect

	defer rc.ClipToData()()
	if c.Line.IsVisible() {
		if r.Contains(coord.Px(p.X, r.Top)) {
			rc.Canvas.DrawLines([]coord.Pixel{{X: p.X, Y: r.Top}, {X: p.X, Y: r.Bottom}}, c.Line)
		}
		if r.Contains(coord.Px(r.Left, p.Y)) {
			rc.Canvas.DrawLines([]coord.Pixel{{X: r.Left, Y: p.Y}, {X: r.Right, Y: p.Y}}, c.Line)
		}
	}
	if c.Marker.IsVisible() && r.Contains(p) {
		rc.Canvas.DrawMarkers([]coord.Pixel{p}, c.Marker)
	}
	return nil
}

var _ render.Overlay = (*Crosshair)(nil)
