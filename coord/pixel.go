package coord

import "fmt"

// Pixel is a single point in pixel space.
type Pixel struct {
	X, Y float64
}

// Px is a convenience function to create a Pixel.
func Px(x, y float64) Pixel {
	return Pixel{X: x, Y: y}
}

// String returns a human-readable representation.
func (p Pixel) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// PixelRect is an axis-aligned rectangle in pixel space.
// Top is numerically smaller than Bottom.
type PixelRect struct {
	Left, Right, Top, Bottom float64
}

// NewPixelRect creates a rectangle from its edges.
func NewPixelRect(left, right, top, bottom float64) PixelRect {
	return PixelRect{Left: left, Right: right, Top: top, Bottom: bottom}
}

// RectFromSize creates a rectangle anchored at the origin.
func RectFromSize(width, height float64) PixelRect {
	return PixelRect{Left: 0, Right: width, Top: 0, Bottom: height}
}

// Width returns Right - Left.
func (r PixelRect) Width() float64 {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r PixelRect) Height() float64 {
	return r.Bottom - r.Top
}

// IsEmpty reports whether the rectangle covers no area.
func (r PixelRect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains reports whether p lies inside the rectangle (edges included).
func (r PixelRect) Contains(p Pixel) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Contract shrinks the rectangle by the given padding on each side.
// The result never inverts; an over-contracted side collapses to its center.
func (r PixelRect) Contract(left, right, top, bottom float64) PixelRect {
	out := PixelRect{
		Left:   r.Left + left,
		Right:  r.Right - right,
		Top:    r.Top + top,
		Bottom: r.Bottom - bottom,
	}
	if out.Right < out.Left {
		mid := (out.Left + out.Right) / 2
		out.Left, out.Right = mid, mid
	}
	if out.Bottom < out.Top {
		mid := (out.Top + out.Bottom) / 2
		out.Top, out.Bottom = mid, mid
	}
	return out
}

// String returns a human-readable representation.
func (r PixelRect) String() string {
	return fmt.Sprintf("[L=%g R=%g T=%g B=%g]", r.Left, r.Right, r.Top, r.Bottom)
}
