package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/ggchart/coord"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approxPixels = cmpopts.EquateApprox(0, 1e-9)

func TestColumnsBoundedByWidth(t *testing.T) {
	const n = 1_000_000
	xs := consecutive(n)
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = math.Sin(float64(i) / 1000)
	}
	src := mustXY(t, xs, ys)
	axes := coord.NewAxes(coord.NewRange(0, n), coord.NewRange(-1, 1))

	for _, w := range []float64{1, 10, 99.5, 100, 333} {
		rect := coord.NewPixelRect(0, w, 0, 100)
		cols, err := NewDecimator().Columns(src, axes, rect)
		if err != nil {
			t.Fatalf("Columns(W=%v) error = %v", w, err)
		}
		limit := 4 * int(math.Ceil(w))
		if len(cols) > limit {
			t.Errorf("Columns(W=%v) emitted %d pixels, limit %d", w, len(cols), limit)
		}
		if w == 100 && len(cols) != 400 {
			t.Errorf("Columns(W=100) emitted %d pixels, want 400 for a dense series", len(cols))
		}

		all, err := NewDecimator().Pixels(src, axes, rect)
		if err != nil {
			t.Fatalf("Pixels(W=%v) error = %v", w, err)
		}
		if len(all) > limit+2 {
			t.Errorf("Pixels(W=%v) emitted %d pixels, limit %d", w, len(all), limit+2)
		}
	}
}

func TestColumnsPreserveExtremes(t *testing.T) {
	src := mustXY(t, []float64{0, 0.1, 0.2, 0.3}, []float64{0, 5, -3, 2})
	axes := coord.NewAxes(coord.NewRange(0, 1), coord.NewRange(-10, 10))
	rect := coord.NewPixelRect(0, 1, 0, 100)

	got, err := NewDecimator().Pixels(src, axes, rect)
	if err != nil {
		t.Fatalf("Pixels() error = %v", err)
	}

	// 5 px per unit, y=-10 at the bottom (100).
	want := []coord.Pixel{
		{X: 0.5, Y: 50}, // enter 0
		{X: 0.5, Y: 65}, // min -3
		{X: 0.5, Y: 25}, // max 5
		{X: 0.5, Y: 40}, // exit 2
	}
	if diff := cmp.Diff(want, got, approxPixels); diff != "" {
		t.Errorf("Pixels() mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnsSingleSample(t *testing.T) {
	xs := []float64{0, 10.25, 20.75}
	ys := []float64{1, 2, 3}
	src := mustXY(t, xs, ys)
	axes := coord.NewAxes(coord.NewRange(0, 100), coord.NewRange(0, 10))
	rect := coord.NewPixelRect(20, 120, 0, 100)

	got, err := NewDecimator().Columns(src, axes, rect)
	if err != nil {
		t.Fatalf("Columns() error = %v", err)
	}
	if len(got) != len(xs) {
		t.Fatalf("Columns() returned %d pixels, want %d", len(got), len(xs))
	}
	for i := range xs {
		want, _ := axes.PixelOf(xs[i], ys[i], rect)
		if diff := cmp.Diff(want, got[i], approxPixels); diff != "" {
			t.Errorf("pixel %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestColumnsEmptyWhenZoomedIn(t *testing.T) {
	src := mustXY(t, consecutive(100), consecutive(100))
	axes := coord.NewAxes(coord.NewRange(0, 0.5), coord.NewRange(0, 100))
	rect := coord.NewPixelRect(0, 100, 0, 100)

	cols, err := NewDecimator().Columns(src, axes, rect)
	if err != nil {
		t.Fatalf("Columns() error = %v", err)
	}
	// Only sample 0 is inside; the other 99 columns are empty.
	if len(cols) != 1 {
		t.Errorf("Columns() returned %d pixels, want 1", len(cols))
	}

	all, err := NewDecimator().Pixels(src, axes, rect)
	if err != nil {
		t.Fatalf("Pixels() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Pixels() returned %d pixels, want sample 0 plus the right edge", len(all))
	}
}

func TestPixelsEdgeExtension(t *testing.T) {
	xs := consecutive(100)
	ys := make([]float64, 100)
	for i := range ys {
		ys[i] = float64(i * i % 17)
	}
	src := mustXY(t, xs, ys)
	axes := coord.NewAxes(coord.NewRange(10, 20), coord.NewRange(0, 20))
	rect := coord.NewPixelRect(0, 100, 0, 100)

	got, err := NewDecimator().Pixels(src, axes, rect)
	if err != nil {
		t.Fatalf("Pixels() error = %v", err)
	}
	// Samples 10..19 fall in their own columns, plus one edge pixel per side.
	if len(got) != 12 {
		t.Fatalf("Pixels() returned %d pixels, want 12", len(got))
	}
	if got[0].X != rect.Left {
		t.Errorf("left edge pixel X = %v, want %v", got[0].X, rect.Left)
	}
	if got[len(got)-1].X != rect.Right {
		t.Errorf("right edge pixel X = %v, want %v", got[len(got)-1].X, rect.Right)
	}
	for i, p := range got[1 : len(got)-1] {
		if p.X < rect.Left || p.X >= rect.Right {
			t.Errorf("inner pixel %d at X=%v outside [%v, %v)", i, p.X, rect.Left, rect.Right)
		}
	}

	// The left edge sits on the line between samples 9 and 10 at X=10.
	wantY, _ := axes.Y.Pixel(ys[10], rect)
	if math.Abs(got[0].Y-wantY) > 1e-9 {
		t.Errorf("left edge Y = %v, want %v", got[0].Y, wantY)
	}
}

func TestPixelsEdgeInterpolatesBetweenSamples(t *testing.T) {
	src := mustXY(t, []float64{0, 10}, []float64{0, 10})
	axes := coord.NewAxes(coord.NewRange(2.5, 7.5), coord.NewRange(0, 10))
	rect := coord.NewPixelRect(0, 50, 0, 100)

	got, err := NewDecimator().Pixels(src, axes, rect)
	if err != nil {
		t.Fatalf("Pixels() error = %v", err)
	}
	want := []coord.Pixel{
		{X: 0, Y: 75},
		{X: 50, Y: 25},
	}
	if diff := cmp.Diff(want, got, approxPixels); diff != "" {
		t.Errorf("Pixels() mismatch (-want +got):\n%s", diff)
	}
}

func TestPixelsAxisInversionSparse(t *testing.T) {
	xs := consecutive(100)
	ys := make([]float64, 100)
	for i := range ys {
		ys[i] = math.Cos(float64(i)) * 5
	}
	src := mustXY(t, xs, ys)
	rect := coord.NewPixelRect(10, 110, 0, 100)
	yr := coord.NewRange(-6, 6)

	normal, err := NewDecimator().Pixels(src, coord.NewAxes(coord.NewRange(10.5, 20.5), yr), rect)
	if err != nil {
		t.Fatalf("Pixels(normal) error = %v", err)
	}
	inverted, err := NewDecimator().Pixels(src, coord.NewAxes(coord.NewRange(20.5, 10.5), yr), rect)
	if err != nil {
		t.Fatalf("Pixels(inverted) error = %v", err)
	}

	if len(normal) != len(inverted) {
		t.Fatalf("len normal = %d, inverted = %d", len(normal), len(inverted))
	}
	mirrored := make([]coord.Pixel, len(normal))
	for i, p := range normal {
		mirrored[len(normal)-1-i] = coord.Pixel{X: rect.Left + rect.Right - p.X, Y: p.Y}
	}
	if diff := cmp.Diff(mirrored, inverted, approxPixels); diff != "" {
		t.Errorf("inverted axis is not the mirror of the normal axis (-want +got):\n%s", diff)
	}
}

func TestPixelsAxisInversionDense(t *testing.T) {
	const n = 10_000
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) / 100
		ys[i] = math.Sin(float64(i) / 37)
	}
	src := mustXY(t, xs, ys)
	rect := coord.NewPixelRect(0, 50, 0, 100)
	yr := coord.NewRange(-1, 1)

	normal, err := NewDecimator().Columns(src, coord.NewAxes(coord.NewRange(0, 100), yr), rect)
	if err != nil {
		t.Fatalf("Columns(normal) error = %v", err)
	}
	inverted, err := NewDecimator().Columns(src, coord.NewAxes(coord.NewRange(100, 0), yr), rect)
	if err != nil {
		t.Fatalf("Columns(inverted) error = %v", err)
	}
	if len(normal) != 200 || len(inverted) != 200 {
		t.Fatalf("len normal = %d, inverted = %d, want 200 each", len(normal), len(inverted))
	}

	// Columns come in reverse order; within a column enter and exit swap.
	for c := 0; c < 50; c++ {
		p := normal[4*(49-c) : 4*(49-c)+4]
		q := inverted[4*c : 4*c+4]
		want := []coord.Pixel{
			{X: rect.Right - p[0].X, Y: p[3].Y},
			{X: rect.Right - p[1].X, Y: p[1].Y},
			{X: rect.Right - p[2].X, Y: p[2].Y},
			{X: rect.Right - p[3].X, Y: p[0].Y},
		}
		if diff := cmp.Diff(want, q, approxPixels); diff != "" {
			t.Fatalf("column %d mismatch (-want +got):\n%s", c, diff)
		}
	}
}

func TestPixelsAppliesOffsets(t *testing.T) {
	src := mustXY(t, []float64{0, 1, 2}, []float64{0, 1, 2})
	src.SetOffset(100, 10)
	axes := coord.NewAxes(coord.NewRange(99.5, 102.5), coord.NewRange(10, 12))
	rect := coord.NewPixelRect(0, 3, 0, 2)

	got, err := NewDecimator().Columns(src, axes, rect)
	if err != nil {
		t.Fatalf("Columns() error = %v", err)
	}
	want := []coord.Pixel{{X: 0.5, Y: 2}, {X: 1.5, Y: 1}, {X: 2.5, Y: 0}}
	if diff := cmp.Diff(want, got, approxPixels); diff != "" {
		t.Errorf("Columns() mismatch (-want +got):\n%s", diff)
	}
}

func TestPixelsDegenerateViewport(t *testing.T) {
	src := mustXY(t, consecutive(10), consecutive(10))
	rect := coord.NewPixelRect(0, 100, 0, 100)

	tests := []struct {
		name string
		axes coord.Axes
		rect coord.PixelRect
	}{
		{"zero x span", coord.NewAxes(coord.NewRange(3, 3), coord.NewRange(0, 1)), rect},
		{"zero y span", coord.NewAxes(coord.NewRange(0, 1), coord.NewRange(2, 2)), rect},
		{"zero width", coord.NewAxes(coord.NewRange(0, 1), coord.NewRange(0, 1)), coord.NewPixelRect(5, 5, 0, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecimator().Pixels(src, tt.axes, tt.rect)
			if !errors.Is(err, coord.ErrDegenerateAxisRange) {
				t.Errorf("Pixels() error = %v, want ErrDegenerateAxisRange", err)
			}
		})
	}
}

func TestPixelsEmptySource(t *testing.T) {
	src := mustXY(t, []float64{}, []float64{})
	axes := coord.NewAxes(coord.NewRange(0, 1), coord.NewRange(0, 1))
	got, err := NewDecimator().Pixels(src, axes, coord.NewPixelRect(0, 10, 0, 10))
	if err != nil || len(got) != 0 {
		t.Errorf("Pixels(empty) = %v, %v; want no pixels", got, err)
	}
}

func TestDecimatorReusesHintsUntilDataChanges(t *testing.T) {
	src := mustXY(t, consecutive(1000), make([]float64, 1000))
	axes := coord.NewAxes(coord.NewRange(100, 200), coord.NewRange(-1, 1))
	rect := coord.NewPixelRect(0, 50, 0, 100)
	d := NewDecimator()

	first, err := d.Pixels(src, axes, rect)
	if err != nil {
		t.Fatalf("Pixels() error = %v", err)
	}
	again, _ := d.Pixels(src, axes, rect)
	if diff := cmp.Diff(first, again); diff != "" {
		t.Errorf("repeated Pixels() differs (-first +again):\n%s", diff)
	}
	if s := d.hints.Stats(); s.Hits == 0 {
		t.Error("second frame should hit the edge hint cache")
	}

	if err := src.Set(150, 150, 1); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	changed, _ := d.Pixels(src, axes, rect)
	if cmp.Equal(first, changed) {
		t.Error("Pixels() ignored a data change")
	}

	panned := coord.NewAxes(coord.NewRange(101, 201), coord.NewRange(-1, 1))
	gen := d.generation
	if _, err := d.Pixels(src, panned, rect); err != nil {
		t.Fatalf("Pixels(panned) error = %v", err)
	}
	if d.generation == gen {
		t.Error("panning should start a new hint generation")
	}
}

func TestUniformDecimatesLikeXY(t *testing.T) {
	const n = 5000
	ys := make([]float64, n)
	xs := make([]float64, n)
	for i := range ys {
		ys[i] = math.Sin(float64(i)/50) + float64(i%7)/10
		xs[i] = float64(i) * 0.5
	}
	u, err := NewUniform(ys, 0.5, 0)
	if err != nil {
		t.Fatalf("NewUniform() error = %v", err)
	}
	xy := mustXY(t, xs, ys)
	axes := coord.NewAxes(coord.NewRange(100.25, 1800.75), coord.NewRange(-2, 2))
	rect := coord.NewPixelRect(3, 240, 7, 180)

	a, err := NewDecimator().Pixels(u, axes, rect)
	if err != nil {
		t.Fatalf("Pixels(uniform) error = %v", err)
	}
	b, err := NewDecimator().Pixels(xy, axes, rect)
	if err != nil {
		t.Fatalf("Pixels(xy) error = %v", err)
	}
	if diff := cmp.Diff(b, a, approxPixels); diff != "" {
		t.Errorf("uniform and xy decimation differ (-xy +uniform):\n%s", diff)
	}
}

func BenchmarkDecimatorPixels(b *testing.B) {
	const n = 1_000_000
	xs := consecutive(n)
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = math.Sin(float64(i) / 1000)
	}
	src := mustXY(b, xs, ys)
	axes := coord.NewAxes(coord.NewRange(0, n), coord.NewRange(-1, 1))
	rect := coord.NewPixelRect(0, 800, 0, 600)
	d := NewDecimator()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Pixels(src, axes, rect); err != nil {
			b.Fatal(err)
		}
	}
}
