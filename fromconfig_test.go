package ggchart

import (
	"testing"

	"github.com/gogpu/ggchart/config"
	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/style"
)

func TestFromConfig(t *testing.T) {
	c := config.Default()
	c.Width, c.Height = 400, 300
	c.Background.Data = "#f0f0f0"
	c.Grid.Beneath = false
	c.Grid.Spacing = 120
	c.Frame = false
	c.Limits = config.Limits{XMin: 10, XMax: 0, YMin: -1, YMax: 1}

	p, err := FromConfig(&c)
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	if w, h := p.Size(); w != 400 || h != 300 {
		t.Errorf("Size() = %dx%d", w, h)
	}
	if p.scene.DataBackground != style.MustHex("#f0f0f0") {
		t.Errorf("data background = %v", p.scene.DataBackground.Hex())
	}
	if g := p.Grid(); g.Beneath || g.Ticks.TargetSpacing != 120 || g.Minor.Width != 0 {
		t.Errorf("grid = %+v", g)
	}
	if p.Frame().Visible {
		t.Error("frame must be hidden")
	}
	want := coord.AxisLimits{X: coord.NewRange(10, 0), Y: coord.NewRange(-1, 1)}
	if got := p.Limits(); got != want {
		t.Errorf("Limits() = %+v, want %+v", got, want)
	}
}

func TestFromConfigBadColor(t *testing.T) {
	c := config.Default()
	c.Grid.Major.Color = "#12"
	if _, err := FromConfig(&c); err == nil {
		t.Error("FromConfig() accepted an invalid grid color")
	}
}

func TestAddSeries(t *testing.T) {
	tests := []struct {
		name    string
		series  config.Series
		wantErr bool
		check   func(t *testing.T, p *Plot)
	}{
		{
			name:   "defaults",
			series: config.Series{Name: "a"},
			check: func(t *testing.T, p *Plot) {
				if !p.Plottables()[0].IsVisible() {
					t.Error("series is not visible")
				}
			},
		},
		{
			name: "styled",
			series: config.Series{
				Name:              "b",
				Line:              config.Line{Color: "#ff0000", Width: 3, Dash: []float64{2, 2}},
				Connect:           "step-vertical",
				Marker:            "open-square",
				MaximumMarkerSize: 9,
			},
		},
		{
			name:    "bad connect",
			series:  config.Series{Name: "c", Connect: "zigzag"},
			wantErr: true,
		},
		{
			name:    "bad color",
			series:  config.Series{Name: "d", Line: config.Line{Color: "red"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			sig, err := p.AddSeries(rampSource(t, 10), tt.series)
			if tt.wantErr {
				if err == nil {
					t.Fatal("AddSeries() error = nil")
				}
				if n := len(p.Plottables()); n != 0 {
					t.Errorf("failed series left %d plottables", n)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddSeries() error = %v", err)
			}
			if sig.Label != tt.series.Name {
				t.Errorf("Label = %q", sig.Label)
			}
			if tt.series.Line.Width == 0 {
				if sig.Line.Width != 1 || !sig.Line.AntiAlias {
					t.Errorf("default line = %+v", sig.Line)
				}
				if sig.Line.Color != style.PaletteColor(0) {
					t.Errorf("default color = %s", sig.Line.Color.Hex())
				}
			} else {
				if sig.Line.Width != tt.series.Line.Width || sig.Line.Color != style.MustHex(tt.series.Line.Color) {
					t.Errorf("line = %+v", sig.Line)
				}
				if !sig.Line.Dash.IsDashed() {
					t.Error("dash lost")
				}
				if sig.Connect != style.StepVertical || sig.Marker.Shape != style.MarkerOpenSquare {
					t.Errorf("connect %v, marker %v", sig.Connect, sig.Marker.Shape)
				}
				if sig.MaximumMarkerSize != 9 {
					t.Errorf("MaximumMarkerSize = %g", sig.MaximumMarkerSize)
				}
			}
			if tt.check != nil {
				tt.check(t, p)
			}
		})
	}
}
