package style

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidColor is returned by ParseHex for malformed input.
var ErrInvalidColor = errors.New("style: invalid color")

// Color is a non-premultiplied color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ParseHex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" (the leading
// '#' is optional).
func ParseHex(s string) (Color, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var digits [8]uint8
	for i := 0; i < len(hex) && i < len(digits); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		digits[i] = d
	}

	var r, g, b, a uint8 = 0, 0, 0, 255
	switch len(hex) {
	case 3, 4:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
		if len(hex) == 4 {
			a = digits[3] * 17
		}
	case 6, 8:
		r = digits[0]<<4 | digits[1]
		g = digits[2]<<4 | digits[3]
		b = digits[4]<<4 | digits[5]
		if len(hex) == 8 {
			a = digits[6]<<4 | digits[7]
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// MustHex is like ParseHex but panics on malformed input.
// Intended for package-level color literals.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// IsTransparent reports whether the color draws nothing.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// NRGBA converts to the standard library's 8-bit non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Hex formats the color as "#RRGGBBAA".
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA(0, 0, 0, 0)
)

// Category10 is the default palette for successive plottables.
var Category10 = []Color{
	MustHex("#1f77b4"),
	MustHex("#ff7f0e"),
	MustHex("#2ca02c"),
	MustHex("#d62728"),
	MustHex("#9467bd"),
	MustHex("#8c564b"),
	MustHex("#e377c2"),
	MustHex("#7f7f7f"),
	MustHex("#bcbd22"),
	MustHex("#17becf"),
}

// PaletteColor returns the i-th palette color, wrapping around.
func PaletteColor(i int) Color {
	n := len(Category10)
	return Category10[((i%n)+n)%n]
}

var _ color.Color = Color{}
