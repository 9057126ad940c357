package style

import "testing"

func TestNewDash(t *testing.T) {
	tests := []struct {
		name    string
		lengths []float64
		wantNil bool
		want    []float64
	}{
		{name: "empty", lengths: nil, wantNil: true},
		{name: "all zero", lengths: []float64{0, 0}, wantNil: true},
		{name: "dash gap", lengths: []float64{5, 3}, want: []float64{5, 3}},
		{name: "negative made positive", lengths: []float64{-5, 3}, want: []float64{5, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.lengths...)
			if tt.wantNil {
				if d != nil {
					t.Errorf("NewDash(%v) = %v, want nil", tt.lengths, d)
				}
				return
			}
			if len(d.Array) != len(tt.want) {
				t.Fatalf("Array = %v, want %v", d.Array, tt.want)
			}
			for i := range tt.want {
				if d.Array[i] != tt.want[i] {
					t.Errorf("Array[%d] = %v, want %v", i, d.Array[i], tt.want[i])
				}
			}
		})
	}
}

func TestDashPattern(t *testing.T) {
	d := NewDash(5)
	p := d.Pattern()
	if len(p) != 2 || p[0] != 5 || p[1] != 5 {
		t.Errorf("Pattern() = %v, want [5 5]", p)
	}
	if got := d.PatternLength(); got != 10 {
		t.Errorf("PatternLength() = %v, want 10", got)
	}

	var solid *Dash
	if solid.IsDashed() || solid.Pattern() != nil || solid.Scale(2) != nil {
		t.Error("nil dash should behave as solid")
	}

	s := NewDash(4, 2).Scale(1.5)
	if s.Array[0] != 6 || s.Array[1] != 3 {
		t.Errorf("Scale(1.5) = %v, want [6 3]", s.Array)
	}
}

func TestParseConnectStyle(t *testing.T) {
	for _, c := range []ConnectStyle{Straight, StepHorizontal, StepVertical} {
		got, err := ParseConnectStyle(c.String())
		if err != nil || got != c {
			t.Errorf("ParseConnectStyle(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseConnectStyle("zigzag"); err == nil {
		t.Error("ParseConnectStyle(zigzag) should fail")
	}
}

func TestParseMarkerShape(t *testing.T) {
	got, err := ParseMarkerShape("Open-Square")
	if err != nil || got != MarkerOpenSquare {
		t.Errorf("ParseMarkerShape = %v, %v; want open-square", got, err)
	}
	if _, err := ParseMarkerShape("star"); err == nil {
		t.Error("ParseMarkerShape(star) should fail")
	}
}

func TestStyleVisibility(t *testing.T) {
	if !DefaultLine().IsVisible() {
		t.Error("default line should be visible")
	}
	ls := DefaultLine()
	ls.Width = 0
	if ls.IsVisible() {
		t.Error("zero-width line should be invisible")
	}
	ms := DefaultMarker()
	ms.Color = Transparent
	if ms.IsVisible() {
		t.Error("transparent marker should be invisible")
	}
}
