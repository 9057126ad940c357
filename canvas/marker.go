package canvas

import (
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/ggchart/style"
)

// circleSegments is the polygon resolution of circular markers.
const circleSegments = 24

// addMarker appends the outline of one marker centered on (x, y).
// Open shapes are rings: the inner contour winds the opposite way.
func addMarker(z *vector.Rasterizer, x, y float32, ms style.MarkerStyle) {
	r := float32(ms.Size / 2)
	lw := float32(math.Max(ms.LineWidth, 1))

	switch ms.Shape {
	case style.MarkerFilledCircle:
		addCircle(z, x, y, r, false)
	case style.MarkerFilledSquare:
		addRect(z, x-r, y-r, x+r, y+r)
	case style.MarkerOpenCircle:
		addCircle(z, x, y, r, false)
		if inner := r - lw; inner > 0 {
			addCircle(z, x, y, inner, true)
		}
	case style.MarkerOpenSquare:
		addRect(z, x-r, y-r, x+r, y+r)
		if inner := r - lw; inner > 0 {
			addRectReversed(z, x-inner, y-inner, x+inner, y+inner)
		}
	}
}

func addCircle(z *vector.Rasterizer, x, y, r float32, reverse bool) {
	step := 2 * math.Pi / circleSegments
	if reverse {
		step = -step
	}
	z.MoveTo(x+r, y)
	for i := 1; i < circleSegments; i++ {
		a := float64(i) * step
		z.LineTo(x+r*float32(math.Cos(a)), y+r*float32(math.Sin(a)))
	}
	z.ClosePath()
}

func addRect(z *vector.Rasterizer, left, top, right, bottom float32) {
	z.MoveTo(left, top)
	z.LineTo(right, top)
	z.LineTo(right, bottom)
	z.LineTo(left, bottom)
	z.ClosePath()
}

func addRectReversed(z *vector.Rasterizer, left, top, right, bottom float32) {
	z.MoveTo(left, top)
	z.LineTo(left, bottom)
	z.LineTo(right, bottom)
	z.LineTo(right, top)
	z.ClosePath()
}
