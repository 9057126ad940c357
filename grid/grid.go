package grid

import (
	"fmt"

	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/render"
	"github.com/gogpu/ggchart/style"
)

// Grid draws vertical lines at X ticks and horizontal lines at Y ticks.
type Grid struct {
	Visible bool

	// Major and Minor style the two line kinds. A zero width hides them.
	Major style.LineStyle
	Minor style.LineStyle

	// Beneath places the grid under the plottables.
	Beneath bool

	Ticks TickOptions
}

// New returns a visible grid beneath the plottables with faint major lines
// and hidden minor lines.
func New() *Grid {
	return &Grid{
		Visible: true,
		Major:   style.LineStyle{Color: style.Black.WithAlpha(0.1), Width: 1, AntiAlias: true},
		Minor:   style.LineStyle{Color: style.Black.WithAlpha(0.05), Width: 0, AntiAlias: true},
		Beneath: true,
		Ticks:   DefaultTickOptions(),
	}
}

// IsVisible implements render.Grid.
func (g *Grid) IsVisible() bool {
	return g.Visible && (g.Major.IsVisible() || g.Minor.IsVisible())
}

// BeneathPlottables implements render.Grid.
func (g *Grid) BeneathPlottables() bool {
	return g.Beneath
}

// Render implements render.Grid. Minor lines are drawn first so major
// lines sit on top.
func (g *Grid) Render(rc *render.Context) error {
	rect := rc.DataRect
	xs := Ticks(rc.Axes.X.Range, rect.Width(), g.Ticks)
	ys := Ticks(rc.Axes.Y.Range, rect.Height(), g.Ticks)

	for _, major := range [...]bool{false, true} {
		ls := g.Minor
		if major {
			ls = g.Major
		}
		if !ls.IsVisible() {
			continue
		}
		if err := g.drawVertical(rc, xs, major, ls); err != nil {
			return err
		}
		if err := g.drawHorizontal(rc, ys, major, ls); err != nil {
			return err
		}
	}
	return nil
}

func (g *Grid) drawVertical(rc *render.Context, ticks []Tick, major bool, ls style.LineStyle) error {
	rect := rc.DataRect
	var seg [2]coord.Pixel
	for _, t := range ticks {
		if t.Major != major {
			continue
		}
		x, err := rc.Axes.X.Pixel(t.Position, rect)
		if err != nil {
			return fmt.Errorf("grid: %w", err)
		}
		seg[0], seg[1] = coord.Px(x, rect.Bottom), coord.Px(x, rect.Top)
		rc.Canvas.DrawLines(seg[:], ls)
	}
	return nil
}

func (g *Grid) drawHorizontal(rc *render.Context, ticks []Tick, major bool, ls style.LineStyle) error {
	rect := rc.DataRect
	var seg [2]coord.Pixel
	for _, t := range ticks {
		if t.Major != major {
			continue
		}
		y, err := rc.Axes.Y.Pixel(t.Position, rect)
		if err != nil {
			return fmt.Errorf("grid: %w", err)
		}
		seg[0], seg[1] = coord.Px(rect.Left, y), coord.Px(rect.Right, y)
		rc.Canvas.DrawLines(seg[:], ls)
	}
	return nil
}

var _ render.Grid = (*Grid)(nil)
