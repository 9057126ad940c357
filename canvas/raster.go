package canvas

import (
	"image"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/render"
	"github.com/gogpu/ggchart/style"
)

// miterLimit is the rasterx miter limit, in units of the half line width.
const miterLimit = 4 << 6

// Raster draws into an *image.RGBA.
//
// Clipping is exact: every drawing primitive is scan-converted into a
// rasterizer the size of the clip rectangle and composited onto the
// matching sub-image.
type Raster struct {
	img  *image.RGBA
	clip image.Rectangle

	// dst is img restricted to clip; nil when the clip is empty.
	dst     *image.RGBA
	scanner *rasterx.ScannerGV
	dasher  *rasterx.Dasher
	fill    *vector.Rasterizer
}

// NewRaster creates a canvas drawing into img.
func NewRaster(img *image.RGBA) *Raster {
	r := &Raster{img: img}
	r.setClip(img.Bounds())
	return r
}

// NewRasterTarget creates a canvas drawing into a pixmap target.
func NewRasterTarget(t *render.PixmapTarget) *Raster {
	return NewRaster(t.Image())
}

// Image returns the destination image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Clear replaces every pixel inside the clip with c.
func (r *Raster) Clear(c style.Color) {
	if r.dst == nil {
		return
	}
	draw.Draw(r.img, r.clip, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// SetClip implements render.Clipper. Edges are rounded outward to whole
// pixels.
func (r *Raster) SetClip(rect coord.PixelRect) {
	r.setClip(image.Rect(
		int(math.Floor(rect.Left)),
		int(math.Floor(rect.Top)),
		int(math.Ceil(rect.Right)),
		int(math.Ceil(rect.Bottom)),
	))
}

// ResetClip implements render.Clipper.
func (r *Raster) ResetClip() {
	r.setClip(r.img.Bounds())
}

func (r *Raster) setClip(rect image.Rectangle) {
	rect = rect.Intersect(r.img.Bounds())
	if rect == r.clip && r.dst != nil {
		return
	}
	r.clip = rect
	if rect.Empty() {
		r.dst, r.scanner, r.dasher, r.fill = nil, nil, nil, nil
		return
	}

	w, h := rect.Dx(), rect.Dy()
	r.dst = r.img.SubImage(rect).(*image.RGBA)
	r.scanner = rasterx.NewScannerGV(w, h, r.dst, r.dst.Bounds())
	r.dasher = rasterx.NewDasher(w, h, r.scanner)
	r.fill = vector.NewRasterizer(w, h)
}

// local converts a pixel to clip-relative coordinates.
func (r *Raster) local(p coord.Pixel) (x, y float64) {
	return p.X - float64(r.clip.Min.X), p.Y - float64(r.clip.Min.Y)
}

func (r *Raster) fixedPoint(p coord.Pixel) fixed.Point26_6 {
	return rasterx.ToFixedP(r.local(p))
}

// DrawLines implements render.Canvas.
func (r *Raster) DrawLines(points []coord.Pixel, ls style.LineStyle) {
	if len(points) < 2 || !ls.IsVisible() || r.dst == nil {
		return
	}
	if !ls.AntiAlias {
		r.drawAliased(points, ls)
		return
	}

	var dashes []float64
	var dashOffset float64
	if ls.Dash.IsDashed() {
		dashes = ls.Dash.Pattern()
		dashOffset = ls.Dash.Offset
	}

	d := r.dasher
	d.Clear()
	d.SetStroke(fixed.Int26_6(ls.Width*64), miterLimit,
		rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round,
		dashes, dashOffset)
	d.Start(r.fixedPoint(points[0]))
	for _, p := range points[1:] {
		d.Line(r.fixedPoint(p))
	}
	d.Stop(false)
	d.SetColor(ls.Color.NRGBA())
	d.Draw()
}

// DrawMarkers implements render.Canvas.
func (r *Raster) DrawMarkers(points []coord.Pixel, ms style.MarkerStyle) {
	if len(points) == 0 || !ms.IsVisible() || r.dst == nil {
		return
	}

	z := r.fill
	z.Reset(r.clip.Dx(), r.clip.Dy())
	radius := ms.Size / 2
	w, h := float64(r.clip.Dx()), float64(r.clip.Dy())

	drawn := 0
	for _, p := range points {
		x, y := r.local(p)
		if x+radius < 0 || y+radius < 0 || x-radius > w || y-radius > h {
			continue
		}
		addMarker(z, float32(x), float32(y), ms)
		drawn++
	}
	if drawn == 0 {
		return
	}
	z.Draw(r.dst, r.dst.Bounds(), image.NewUniform(ms.Color.NRGBA()), image.Point{})
}

// FillRect implements render.Filler. Fractional edges are anti-aliased.
func (r *Raster) FillRect(rect coord.PixelRect, c style.Color) {
	if rect.IsEmpty() || c.IsTransparent() || r.dst == nil {
		return
	}
	z := r.fill
	z.Reset(r.clip.Dx(), r.clip.Dy())
	left, top := r.local(coord.Px(rect.Left, rect.Top))
	right, bottom := r.local(coord.Px(rect.Right, rect.Bottom))
	addRect(z, float32(left), float32(top), float32(right), float32(bottom))
	z.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
}

var (
	_ render.Canvas  = (*Raster)(nil)
	_ render.Filler  = (*Raster)(nil)
	_ render.Clipper = (*Raster)(nil)
)
