package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/gogpu/ggchart/style"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid chart configuration")

// maxDimension bounds the figure size.
const maxDimension = 16384

// Chart describes a chart and the series it draws.
type Chart struct {
	Width      int        `mapstructure:"width"`
	Height     int        `mapstructure:"height"`
	Padding    Padding    `mapstructure:"padding"`
	Background Background `mapstructure:"background"`
	Grid       Grid       `mapstructure:"grid"`
	Frame      bool       `mapstructure:"frame"`
	Limits     Limits     `mapstructure:"limits"`
	Margins    Margins    `mapstructure:"margins"`
	Series     []Series   `mapstructure:"series"`
}

// Padding is the space around the data area in pixels.
type Padding struct {
	Left   float64 `mapstructure:"left"`
	Right  float64 `mapstructure:"right"`
	Top    float64 `mapstructure:"top"`
	Bottom float64 `mapstructure:"bottom"`
}

// Background holds hex colors for the figure and the data area.
type Background struct {
	Figure string `mapstructure:"figure"`
	Data   string `mapstructure:"data"`
}

// Line describes a stroke.
type Line struct {
	Color     string    `mapstructure:"color"`
	Width     float64   `mapstructure:"width"`
	AntiAlias bool      `mapstructure:"anti-alias"`
	Dash      []float64 `mapstructure:"dash"`
}

// Grid describes the reference grid.
type Grid struct {
	Visible        bool    `mapstructure:"visible"`
	Beneath        bool    `mapstructure:"beneath"`
	Major          Line    `mapstructure:"major"`
	Minor          Line    `mapstructure:"minor"`
	Spacing        float64 `mapstructure:"spacing"`
	MinorDivisions int     `mapstructure:"minor-divisions"`
	MaximumLines   int     `mapstructure:"maximum-lines"`
}

// Limits is the viewport. When Auto is set the viewport is fitted to the
// data and the other fields are ignored. XMin greater than XMax inverts
// the X axis, likewise for Y.
type Limits struct {
	Auto bool    `mapstructure:"auto"`
	XMin float64 `mapstructure:"x-min"`
	XMax float64 `mapstructure:"x-max"`
	YMin float64 `mapstructure:"y-min"`
	YMax float64 `mapstructure:"y-max"`
}

// Margins are the fractions of the data span autoscaling leaves empty.
type Margins struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

// Series describes one data column drawn as a decimated line.
type Series struct {
	Name string `mapstructure:"name"`
	File string `mapstructure:"file"`

	// XColumn is the zero-based CSV column of X values. When nil the
	// samples are equally spaced: X = XStart + i*Period.
	XColumn *int    `mapstructure:"x-column"`
	YColumn int     `mapstructure:"y-column"`
	Header  bool    `mapstructure:"header"`
	Period  float64 `mapstructure:"period"`
	XStart  float64 `mapstructure:"x-start"`

	// Line.Color may be empty to use the palette.
	Line              Line    `mapstructure:"line"`
	Connect           string  `mapstructure:"connect"`
	Marker            string  `mapstructure:"marker"`
	MaximumMarkerSize float64 `mapstructure:"max-marker-size"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Chart {
	return Chart{
		Width:      800,
		Height:     600,
		Padding:    Padding{Left: 10, Right: 10, Top: 10, Bottom: 10},
		Background: Background{Figure: "#ffffff", Data: "#ffffff"},
		Grid: Grid{
			Visible:        true,
			Beneath:        true,
			Major:          Line{Color: "#0000001a", Width: 1, AntiAlias: true},
			Minor:          Line{Color: "#0000000d", Width: 0, AntiAlias: true},
			Spacing:        80,
			MinorDivisions: 5,
			MaximumLines:   1000,
		},
		Frame:   true,
		Limits:  Limits{Auto: true},
		Margins: Margins{X: 0, Y: 0.1},
	}
}

// Validate reports every problem in c, each wrapping ErrInvalidConfig.
func (c *Chart) Validate() error {
	var result *multierror.Error
	add := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Width <= 0 || c.Width > maxDimension || c.Height <= 0 || c.Height > maxDimension {
		add("size %dx%d outside 1..%d", c.Width, c.Height, maxDimension)
	}
	p := c.Padding
	if p.Left < 0 || p.Right < 0 || p.Top < 0 || p.Bottom < 0 {
		add("negative padding %+v", p)
	} else if p.Left+p.Right >= float64(c.Width) || p.Top+p.Bottom >= float64(c.Height) {
		add("padding %+v leaves no data area in %dx%d", p, c.Width, c.Height)
	}

	if _, err := c.Background.Colors(); err != nil {
		add("background: %v", err)
	}
	if _, err := c.Grid.Major.Style(style.Black); err != nil {
		add("grid.major: %v", err)
	}
	if _, err := c.Grid.Minor.Style(style.Black); err != nil {
		add("grid.minor: %v", err)
	}
	if c.Grid.Spacing <= 0 {
		add("grid.spacing %g must be positive", c.Grid.Spacing)
	}

	if !c.Limits.Auto {
		l := c.Limits
		for _, v := range []float64{l.XMin, l.XMax, l.YMin, l.YMax} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				add("limits must be finite: %+v", l)
				break
			}
		}
		if l.XMin == l.XMax || l.YMin == l.YMax {
			add("limits have a zero span: %+v", l)
		}
	}
	if c.Margins.X < 0 || c.Margins.Y < 0 {
		add("negative margins %+v", c.Margins)
	}

	for i, s := range c.Series {
		if err := s.validate(); err != nil {
			add("series %d (%s): %v", i, s.Name, err)
		}
	}
	return result.ErrorOrNil()
}

func (s Series) validate() error {
	if s.File == "" {
		return errors.New("file is required")
	}
	if s.YColumn < 0 || (s.XColumn != nil && *s.XColumn < 0) {
		return errors.New("columns must not be negative")
	}
	if s.XColumn == nil && !(s.Period > 0) {
		return fmt.Errorf("period %g must be positive without an x column", s.Period)
	}
	if _, err := s.Line.Style(style.Black); err != nil {
		return err
	}
	if _, err := style.ParseConnectStyle(s.ConnectOrDefault()); err != nil {
		return err
	}
	if _, err := style.ParseMarkerShape(s.MarkerOrDefault()); err != nil {
		return err
	}
	return nil
}

// ConnectOrDefault returns Connect, or "straight" when empty.
func (s Series) ConnectOrDefault() string {
	if s.Connect == "" {
		return style.Straight.String()
	}
	return s.Connect
}

// MarkerOrDefault returns Marker, or "circle" when empty.
func (s Series) MarkerOrDefault() string {
	if s.Marker == "" {
		return style.MarkerFilledCircle.String()
	}
	return s.Marker
}

// Colors parses the figure and data colors. Empty strings are white.
func (b Background) Colors() ([2]style.Color, error) {
	out := [2]style.Color{style.White, style.White}
	for i, hex := range [2]string{b.Figure, b.Data} {
		if hex == "" {
			continue
		}
		c, err := style.ParseHex(hex)
		if err != nil {
			return out, err
		}
		out[i] = c
	}
	return out, nil
}

// Style converts l to a line style. An empty color falls back to def.
func (l Line) Style(def style.Color) (style.LineStyle, error) {
	c := def
	if l.Color != "" {
		var err error
		if c, err = style.ParseHex(l.Color); err != nil {
			return style.LineStyle{}, err
		}
	}
	if l.Width < 0 {
		return style.LineStyle{}, fmt.Errorf("negative line width %g", l.Width)
	}
	return style.LineStyle{
		Color:     c,
		Width:     l.Width,
		AntiAlias: l.AntiAlias,
		Dash:      style.NewDash(l.Dash...),
	}, nil
}
