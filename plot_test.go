package ggchart

import (
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/ggchart/canvas"
	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/render"
	"github.com/gogpu/ggchart/signal"
	"github.com/gogpu/ggchart/style"
)

func rampSource(t *testing.T, n int) *signal.XY[float64, float64] {
	t.Helper()
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = float64(i) * 2
	}
	src, err := signal.NewXY(xs, ys)
	if err != nil {
		t.Fatalf("NewXY() error = %v", err)
	}
	return src
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestAutoScale(t *testing.T) {
	p := New(WithMargins(0, 0.1))
	p.AddSignal(rampSource(t, 11)) // x 0..10, y 0..20
	p.AutoScale()

	want := coord.AxisLimits{X: coord.NewRange(0, 10), Y: coord.NewRange(-2, 22)}
	if diff := cmp.Diff(want, p.Limits(), approx); diff != "" {
		t.Errorf("Limits() mismatch (-want +got):\n%s", diff)
	}
}

func TestAutoScaleKeepsInversion(t *testing.T) {
	p := New(WithMargins(0, 0))
	p.AddSignal(rampSource(t, 11))
	p.SetLimits(coord.AxisLimits{X: coord.NewRange(5, 1), Y: coord.NewRange(0, 1)})
	p.AutoScale()

	got := p.Limits()
	if got.X != coord.NewRange(10, 0) {
		t.Errorf("X = %v, want inverted [10, 0]", got.X)
	}
	if got.Y != coord.NewRange(0, 20) {
		t.Errorf("Y = %v, want [0, 20]", got.Y)
	}
}

func TestAutoScaleEmpty(t *testing.T) {
	p := New()
	p.AutoScale()
	if got := p.Limits(); got != defaultLimits {
		t.Errorf("Limits() = %+v, want default", got)
	}
}

func TestRenderFrame(t *testing.T) {
	p := New(WithSize(200, 100), WithBackground(style.White, style.MustHex("#f0f0f0")))
	sig := p.AddSignal(rampSource(t, 100_000))
	sig.Line.Width = 2

	img, err := p.Image()
	if err != nil {
		t.Fatalf("Image() error = %v", err)
	}
	if got := img.RGBAAt(1, 1); got.R != 255 || got.A != 255 {
		t.Errorf("figure background = %v, want white", got)
	}

	// The ramp runs corner to corner of the data area; its middle column
	// must carry the line color.
	_, data := p.Layout()
	line := sig.Line.Color.NRGBA()
	x := int(data.Left + data.Width()/2)
	found := false
	for y := int(data.Top); y < int(data.Bottom); y++ {
		c := img.RGBAAt(x, y)
		if c.B > 100 && c.R < 100 && c.A == 255 {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("no pixel of line color %v in column %d", line, x)
	}
}

func TestRenderDegenerateViewport(t *testing.T) {
	p := New(WithSize(50, 50))
	p.AddSignal(rampSource(t, 10))
	p.SetLimits(coord.AxisLimits{X: coord.NewRange(1, 1), Y: coord.NewRange(0, 1)})

	rec := canvas.NewRecorder()
	err := p.RenderCanvas(rec)
	if !errors.Is(err, coord.ErrDegenerateAxisRange) {
		t.Fatalf("RenderCanvas() error = %v, want ErrDegenerateAxisRange", err)
	}
	if rec.Stats().Fills == 0 {
		t.Error("background must still be drawn")
	}
	if rec.Stats().Lines != 1 {
		// Only the frame overlay draws a line.
		t.Errorf("got %d lines, want only the frame", rec.Stats().Lines)
	}
}

func TestRenderInvalidSize(t *testing.T) {
	p := New(WithSize(0, 10))
	if _, err := p.Image(); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Image() error = %v, want ErrInvalidSize", err)
	}
	if err := p.RenderCanvas(canvas.NewRecorder()); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("RenderCanvas() error = %v, want ErrInvalidSize", err)
	}
}

func TestRenderCustomPipeline(t *testing.T) {
	p := New(WithPipeline(render.NewPipeline(render.BackgroundPass{})))
	p.AddSignal(rampSource(t, 10))

	rec := canvas.NewRecorder()
	if err := p.RenderCanvas(rec); err != nil {
		t.Fatalf("RenderCanvas() error = %v", err)
	}
	if s := rec.Stats(); s.Lines != 0 || s.Fills != 2 {
		t.Errorf("Stats() = %+v, want background fills only", s)
	}
}

func TestPixelToData(t *testing.T) {
	p := New(WithSize(110, 60), WithPadding(Padding{Left: 10, Top: 10}))
	p.SetLimits(coord.AxisLimits{X: coord.NewRange(0, 100), Y: coord.NewRange(0, 50)})

	x, y, err := p.PixelToData(coord.Px(60, 35))
	if err != nil {
		t.Fatalf("PixelToData() error = %v", err)
	}
	if math.Abs(x-50) > 1e-9 || math.Abs(y-25) > 1e-9 {
		t.Errorf("PixelToData() = (%g, %g), want (50, 25)", x, y)
	}
}

func TestAddRemove(t *testing.T) {
	p := New()
	a := p.AddSignal(rampSource(t, 3))
	b := p.AddSignal(rampSource(t, 3))
	if a.Line.Color == b.Line.Color {
		t.Error("consecutive signals share a palette color")
	}
	if !p.Remove(a) {
		t.Fatal("Remove() = false for a present plottable")
	}
	if p.Remove(a) {
		t.Error("Remove() = true for a removed plottable")
	}
	if got := p.Plottables(); len(got) != 1 || got[0] != b {
		t.Errorf("Plottables() = %v", got)
	}
}

func TestUpdateExcludesRender(t *testing.T) {
	p := New(WithSize(100, 50))
	src := rampSource(t, 1000)
	p.AddSignal(src)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = p.RenderCanvas(canvas.NewRecorder())
		}()
		go func(i int) {
			defer wg.Done()
			p.Update(func() {
				_ = src.Set(i, float64(i), -1)
			})
		}(i)
	}
	wg.Wait()
}

func TestSavePNG(t *testing.T) {
	p := New(WithSize(64, 32))
	p.AddSignal(rampSource(t, 50))
	path := filepath.Join(t.TempDir(), "chart.png")

	if err := p.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("bounds = %v, want 64x32", b)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	p := New(WithSize(8, 8))
	if err := p.SavePNG(filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Error("SavePNG() into a missing directory succeeded")
	}
}

func TestRenderAliasedSpike(t *testing.T) {
	src, err := signal.NewXY([]float64{0, 1, 2, 3, 4}, []float64{0, 0, 1e9, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	p := New(WithSize(100, 100))
	sig := p.AddSignal(src)
	sig.Line = style.LineStyle{Color: style.Black, Width: 2}
	p.SetLimits(coord.AxisLimits{X: coord.NewRange(0, 4), Y: coord.NewRange(-1, 1)})

	done := make(chan error, 1)
	go func() {
		_, err := p.Image()
		done <- err
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Image() error = %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Image() did not finish")
	}
}
