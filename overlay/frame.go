package overlay

import (
	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/render"
	"github.com/gogpu/ggchart/style"
)

// Frame outlines the data area.
type Frame struct {
	Visible bool
	Line    style.LineStyle
}

// NewFrame returns a visible 1 px black frame.
func NewFrame() *Frame {
	return &Frame{Visible: true, Line: style.LineStyle{Color: style.Black, Width: 1}}
}

// IsVisible implements render.Overlay.
func (f *Frame) IsVisible() bool {
	return f.Visible && f.Line.IsVisible()
}

// Render implements render.Overlay.
func (f *Frame) Render(rc *render.Context) error {
	r := rc.DataRect
	if r.IsEmpty() {
		return nil
	}
	// Aliased lines are centered on the pixel row just inside the border.
	inset := 0.0
	if !f.Line.AntiAlias {
		inset = 0.5
	}
	l, t := r.Left+inset, r.Top+inset
	rt, b := r.Right-inset, r.Bottom-inset
	rc.Canvas.DrawLines([]coord.Pixel{
		{X: l, Y: t}, {X: rt, Y: t}, {X: rt, Y: b}, {X: l, Y: b}, {X: l, Y: t},
	}, f.Line)
	return nil
}

var _ render.Overlay = (*Frame)(nil)
