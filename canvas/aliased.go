package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/style"
)

// drawAliased strokes points without anti-aliasing: a square brush of the
// rounded line width walks each segment with Bresenham's algorithm. Dash
// patterns are measured along the polyline. Segments are clipped to the
// clip rectangle grown by the brush before walking, so the work is bounded
// by the clip size whatever the coordinates.
func (r *Raster) drawAliased(points []coord.Pixel, ls style.LineStyle) {
	brush := max(1, int(math.Round(ls.Width)))
	c := ls.Color.NRGBA()

	pattern := ls.Dash.Pattern()
	var dist float64
	if pattern != nil {
		dist = ls.Dash.Offset
	}

	m := float64(brush + 1)
	bounds := coord.NewPixelRect(
		float64(r.clip.Min.X)-m, float64(r.clip.Max.X)+m,
		float64(r.clip.Min.Y)-m, float64(r.clip.Max.Y)+m)

	// joined reports whether the previous segment was drawn up to the
	// current vertex.
	joined := false
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		length := math.Hypot(b.X-a.X, b.Y-a.Y)
		t0, t1, ok := clipSegment(a, b, bounds)
		if !ok {
			if !math.IsInf(length, 0) && !math.IsNaN(length) {
				dist += length
			}
			joined = false
			continue
		}

		start := dist
		dist += t0 * length
		x0, y0 := pixelIndex(lerp(a, b, t0))
		x1, y1 := pixelIndex(lerp(a, b, t1))
		// Shared vertices are plotted once.
		walkLine(x0, y0, x1, y1, joined && t0 == 0, func(x, y int, step float64) {
			if pattern == nil || dashOn(pattern, dist) {
				r.plot(x, y, brush, c)
			}
			dist += step
		})
		dist = start + length
		joined = t1 == 1
	}
}

// clipSegment clips the segment from a to b to rect with the Liang-Barsky
// algorithm and returns the parameters of the visible part. Segments with
// non-finite ends are rejected.
func clipSegment(a, b coord.Pixel, rect coord.PixelRect) (t0, t1 float64, ok bool) {
	for _, v := range [...]float64{a.X, a.Y, b.X, b.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, false
		}
	}

	dx, dy := b.X-a.X, b.Y-a.Y
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{a.X - rect.Left, rect.Right - a.X, a.Y - rect.Top, rect.Bottom - a.Y}
	t0, t1 = 0, 1
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return 0, 0, false
		}
	}
	return t0, t1, true
}

func lerp(a, b coord.Pixel, t float64) coord.Pixel {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	return coord.Pixel{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

func pixelIndex(p coord.Pixel) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// walkLine visits every pixel of the segment from (x0, y0) to (x1, y1).
// step is the distance covered by one pixel along the segment.
func walkLine(x0, y0, x1, y1 int, skipFirst bool, visit func(x, y int, step float64)) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	steps := max(dx, -dy)
	step := 0.0
	if steps > 0 {
		step = math.Hypot(float64(dx), float64(dy)) / float64(steps)
	}

	e := dx + dy
	for n := 0; ; n++ {
		if n > 0 || !skipFirst {
			visit(x0, y0, step)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// dashOn reports whether distance d along the line falls in a dash.
func dashOn(pattern []float64, d float64) bool {
	var total float64
	for _, l := range pattern {
		total += l
	}
	if total <= 0 {
		return true
	}
	d = math.Mod(d, total)
	if d < 0 {
		d += total
	}
	for i, l := range pattern {
		if d < l {
			return i%2 == 0
		}
		d -= l
	}
	return true
}

// plot paints a size x size brush centered on pixel (x, y).
func (r *Raster) plot(x, y, size int, c color.NRGBA) {
	half := (size - 1) / 2
	area := image.Rect(x-half, y-half, x-half+size, y-half+size).Intersect(r.clip)
	for py := area.Min.Y; py < area.Max.Y; py++ {
		for px := area.Min.X; px < area.Max.X; px++ {
			blend(r.img, px, py, c)
		}
	}
}

// blend composites c over the pixel at (x, y).
func blend(img *image.RGBA, x, y int, c color.NRGBA) {
	i := img.PixOffset(x, y)
	pix := img.Pix[i : i+4 : i+4]
	if c.A == 0xff {
		pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, 0xff
		return
	}
	a := uint32(c.A)
	ia := 0xff - a
	pix[0] = uint8((uint32(c.R)*a + uint32(pix[0])*ia + 127) / 255)
	pix[1] = uint8((uint32(c.G)*a + uint32(pix[1])*ia + 127) / 255)
	pix[2] = uint8((uint32(c.B)*a + uint32(pix[2])*ia + 127) / 255)
	pix[3] = uint8((a*0xff + uint32(pix[3])*ia + 127) / 255)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
