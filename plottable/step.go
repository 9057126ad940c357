package plottable

import (
	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/style"
)

// Connect returns the polyline joining pixels in the given style.
// Straight returns pixels unchanged. The step styles insert one corner
// between every pair of neighbours, producing L-shaped steps: horizontal
// first for StepHorizontal, vertical first for StepVertical.
func Connect(pixels []coord.Pixel, cs style.ConnectStyle) []coord.Pixel {
	return appendConnected(nil, pixels, cs)
}

// appendConnected is Connect appending into dst.
func appendConnected(dst, pixels []coord.Pixel, cs style.ConnectStyle) []coord.Pixel {
	if cs == style.Straight || len(pixels) < 2 {
		return append(dst, pixels...)
	}

	horizontal := cs == style.StepHorizontal
	for i := 0; i < len(pixels)-1; i++ {
		p, next := pixels[i], pixels[i+1]
		corner := coord.Pixel{X: p.X, Y: next.Y}
		if horizontal {
			corner = coord.Pixel{X: next.X, Y: p.Y}
		}
		dst = append(dst, p, corner)
	}
	return append(dst, pixels[len(pixels)-1])
}
