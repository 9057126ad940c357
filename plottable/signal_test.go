package plottable

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/ggchart/canvas"
	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/render"
	"github.com/gogpu/ggchart/signal"
	"github.com/gogpu/ggchart/style"
)

func sineSource(t *testing.T, n int) *signal.Uniform[float64] {
	t.Helper()
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = math.Sin(float64(i) / 10)
	}
	src, err := signal.NewUniform(ys, 1, 0)
	if err != nil {
		t.Fatalf("NewUniform() error = %v", err)
	}
	return src
}

func renderSignal(t *testing.T, s *Signal, x coord.Range) *canvas.Recorder {
	t.Helper()
	rec := canvas.NewRecorder()
	rc := render.NewContext(rec, &render.Scene{},
		coord.NewAxes(x, coord.NewRange(-1, 1)),
		coord.RectFromSize(100, 50),
		coord.RectFromSize(100, 50))
	if err := s.Render(rc); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return rec
}

func TestSignalDense(t *testing.T) {
	s := NewSignal(sineSource(t, 10_000), style.Black)
	rec := renderSignal(t, s, coord.NewRange(0, 9_999))

	stats := rec.Stats()
	if stats.Lines != 1 {
		t.Fatalf("got %d lines, want 1", stats.Lines)
	}
	if stats.Points > 4*100+2 {
		t.Errorf("line has %d points, want at most 402", stats.Points)
	}
	if stats.Markers != 0 {
		t.Errorf("dense signal drew %d markers", stats.Markers)
	}
}

func TestSignalSparseMarkers(t *testing.T) {
	s := NewSignal(sineSource(t, 10_000), style.Black)
	rec := renderSignal(t, s, coord.NewRange(99.5, 109.5))

	var markers *canvas.MarkersCommand
	for _, cmd := range rec.Commands() {
		if m, ok := cmd.(canvas.MarkersCommand); ok {
			markers = &m
		}
	}
	if markers == nil {
		t.Fatal("no markers drawn for a sparse view")
	}
	if n := len(markers.Points); n != 10 {
		t.Errorf("got %d markers, want one per visible sample (10)", n)
	}
	if markers.Style.Size <= 0 || markers.Style.Size > s.MaximumMarkerSize {
		t.Errorf("marker size = %g, want in (0, %g]", markers.Style.Size, s.MaximumMarkerSize)
	}
}

func TestSignalMarkersDisabled(t *testing.T) {
	s := NewSignal(sineSource(t, 100), style.Black)
	s.MaximumMarkerSize = 0
	rec := renderSignal(t, s, coord.NewRange(10, 19))
	if rec.Stats().Markers != 0 {
		t.Error("markers drawn with MaximumMarkerSize 0")
	}
}

func TestSignalStep(t *testing.T) {
	s := NewSignal(sineSource(t, 10), style.Black)
	s.Connect = style.StepHorizontal
	s.MaximumMarkerSize = 0
	rec := renderSignal(t, s, coord.NewRange(0, 9))

	lines := rec.Commands()[0].(canvas.LinesCommand)
	// 10 samples in 100 columns: one pixel each, 9 inserted corners.
	if len(lines.Points) != 19 {
		t.Fatalf("got %d points, want 19", len(lines.Points))
	}
	for i := 1; i < len(lines.Points); i += 2 {
		if lines.Points[i].Y != lines.Points[i-1].Y {
			t.Errorf("corner %d does not extend horizontally", i)
		}
	}
}

func TestSignalDegenerateViewport(t *testing.T) {
	s := NewSignal(sineSource(t, 10), style.Black)
	rc := render.NewContext(canvas.NewRecorder(), &render.Scene{},
		coord.NewAxes(coord.NewRange(3, 3), coord.NewRange(-1, 1)),
		coord.RectFromSize(100, 50),
		coord.RectFromSize(100, 50))
	if err := s.Render(rc); !errors.Is(err, coord.ErrDegenerateAxisRange) {
		t.Errorf("Render() error = %v, want ErrDegenerateAxisRange", err)
	}
}

func TestSignalVisibility(t *testing.T) {
	s := NewSignal(sineSource(t, 10), style.Black)
	if !s.IsVisible() {
		t.Fatal("new signal is not visible")
	}
	s.Visible = false
	if s.IsVisible() {
		t.Error("hidden signal reports visible")
	}
	if (&Signal{Visible: true}).IsVisible() {
		t.Error("signal without source reports visible")
	}
}

func TestSignalAxisLimits(t *testing.T) {
	s := NewSignal(sineSource(t, 10), style.Black)
	got := s.AxisLimits()
	if got.X != coord.NewRange(0, 9) {
		t.Errorf("X limits = %v, want [0, 9]", got.X)
	}
	if !got.Y.IsSet() {
		t.Errorf("Y limits unset")
	}
}
