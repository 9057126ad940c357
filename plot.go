package ggchart

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/gogpu/ggchart/canvas"
	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/grid"
	"github.com/gogpu/ggchart/overlay"
	"github.com/gogpu/ggchart/plottable"
	"github.com/gogpu/ggchart/render"
	"github.com/gogpu/ggchart/signal"
	"github.com/gogpu/ggchart/style"
)

// ErrInvalidSize is returned when a frame is requested for a figure
// without pixels.
var ErrInvalidSize = errors.New("ggchart: invalid figure size")

// Padding is the space between the figure border and the data area.
type Padding struct {
	Left, Right, Top, Bottom float64
}

// defaultLimits is the viewport of a plot without data.
var defaultLimits = coord.AxisLimits{
	X: coord.NewRange(-10, 10),
	Y: coord.NewRange(-10, 10),
}

// Plot is a chart: a scene, a viewport and the pipeline that draws them.
type Plot struct {
	mu sync.Mutex

	width, height int
	padding       Padding
	pipeline      *render.Pipeline
	logger        *slog.Logger

	marginX, marginY float64

	scene  render.Scene
	grid   *grid.Grid
	frame  *overlay.Frame
	limits coord.AxisLimits
}

// New creates an empty plot with a grid beneath the data and a frame
// around the data area.
func New(opts ...Option) *Plot {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.pipeline == nil {
		o.pipeline = render.DefaultPipeline()
	}

	p := &Plot{
		width:    o.width,
		height:   o.height,
		padding:  o.padding,
		pipeline: o.pipeline,
		logger:   o.logger,
		marginX:  o.marginX,
		marginY:  o.marginY,
		grid:     grid.New(),
		frame:    overlay.NewFrame(),
		limits:   coord.UnsetLimits(),
	}
	p.scene.FigureBackground = o.figure
	p.scene.DataBackground = o.data
	p.scene.Grid = p.grid
	p.scene.Overlays = []render.Overlay{p.frame}
	return p
}

// Size returns the figure size in pixels.
func (p *Plot) Size() (width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.width, p.height
}

// SetSize changes the figure size in pixels.
func (p *Plot) SetSize(width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width, p.height = width, height
}

// Grid returns the plot grid for configuration.
func (p *Plot) Grid() *grid.Grid {
	return p.grid
}

// Frame returns the data-area frame for configuration.
func (p *Plot) Frame() *overlay.Frame {
	return p.frame
}

// SetBackground sets the figure and data-area background colors.
func (p *Plot) SetBackground(figure, data style.Color) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scene.FigureBackground, p.scene.DataBackground = figure, data
}

// Add appends a plottable to the scene. It is drawn after the ones added
// before it.
func (p *Plot) Add(pl render.Plottable) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scene.Plottables = append(p.scene.Plottables, pl)
}

// AddSignal adds a decimated line for src, colored from the default
// palette.
func (p *Plot) AddSignal(src signal.Source) *plottable.Signal {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := plottable.NewSignal(src, style.PaletteColor(len(p.scene.Plottables)))
	p.scene.Plottables = append(p.scene.Plottables, s)
	return s
}

// AddOverlay appends an overlay, drawn after the frame.
func (p *Plot) AddOverlay(o render.Overlay) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scene.Overlays = append(p.scene.Overlays, o)
}

// Plottables returns a copy of the plottable list.
func (p *Plot) Plottables() []render.Plottable {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]render.Plottable(nil), p.scene.Plottables...)
}

// Remove deletes pl from the scene. Reports whether it was present.
func (p *Plot) Remove(pl render.Plottable) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, q := range p.scene.Plottables {
		if q == pl {
			p.scene.Plottables = append(p.scene.Plottables[:i], p.scene.Plottables[i+1:]...)
			return true
		}
	}
	return false
}

// Update runs fn while no frame is being rendered. Use it to mutate series
// data that a concurrent Render may be reading.
func (p *Plot) Update(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn()
}

// Limits returns the viewport. It is unset until SetLimits or AutoScale.
func (p *Plot) Limits() coord.AxisLimits {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.limits
}

// SetLimits sets the viewport. A range with Min greater than Max inverts
// its axis.
func (p *Plot) SetLimits(l coord.AxisLimits) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.limits = l
}

// AutoScale fits the viewport to the data of the visible plottables plus
// the configured margins. Inverted axes stay inverted. Without data the
// viewport is [-10, 10] on both axes.
func (p *Plot) AutoScale() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.autoScale()
}

func (p *Plot) autoScale() {
	data := p.scene.AxisLimits()
	fit := defaultLimits
	if data.X.IsSet() {
		fit.X = data.X.WithMargin(p.marginX)
	}
	if data.Y.IsSet() {
		fit.Y = data.Y.WithMargin(p.marginY)
	}
	if p.limits.X.IsSet() && p.limits.X.IsInverted() {
		fit.X = fit.X.Inverted()
	}
	if p.limits.Y.IsSet() && p.limits.Y.IsInverted() {
		fit.Y = fit.Y.Inverted()
	}
	p.limits = fit
}

// Layout returns the figure rectangle and the data area inside it.
func (p *Plot) Layout() (figure, data coord.PixelRect) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.layout()
}

func (p *Plot) layout() (figure, data coord.PixelRect) {
	figure = coord.RectFromSize(float64(p.width), float64(p.height))
	pad := p.padding
	return figure, figure.Contract(pad.Left, pad.Right, pad.Top, pad.Bottom)
}

// PixelToData converts a figure pixel to data coordinates using the
// current viewport and layout.
func (p *Plot) PixelToData(px coord.Pixel) (x, y float64, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, data := p.layout()
	axes := coord.NewAxes(p.limits.X, p.limits.Y)
	if x, err = axes.X.Coordinate(px.X, data); err != nil {
		return 0, 0, err
	}
	if y, err = axes.Y.Coordinate(px.Y, data); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// RenderCanvas draws one frame onto c. An unset viewport is autoscaled
// first. The returned error collects pass and plottable failures; the
// frame is complete either way.
func (p *Plot) RenderCanvas(c render.Canvas) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.width <= 0 || p.height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, p.width, p.height)
	}
	if !p.limits.IsSet() {
		p.autoScale()
	}

	figure, data := p.layout()
	rc := render.NewContext(c, &p.scene, coord.NewAxes(p.limits.X, p.limits.Y), figure, data)
	rc.Logger = p.logger
	return p.pipeline.Render(rc)
}

// Render draws one frame into target, which should match the figure size.
func (p *Plot) Render(target *render.PixmapTarget) error {
	return p.RenderCanvas(canvas.NewRasterTarget(target))
}

// Image renders a frame into a new image of the figure size.
func (p *Plot) Image() (*image.RGBA, error) {
	w, h := p.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	target := render.NewPixmapTarget(w, h)
	err := p.Render(target)
	return target.Image(), err
}

// SavePNG renders a frame and writes it to path. The file is written even
// when the frame reports failures; those are returned after writing.
func (p *Plot) SavePNG(path string) error {
	w, h := p.Size()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	target := render.NewPixmapTarget(w, h)
	frameErr := p.Render(target)

	f, err := os.Create(path)
	if err != nil {
		return multierror.Append(frameErr, fmt.Errorf("ggchart: create %s: %w", path, err)).ErrorOrNil()
	}
	err = target.EncodePNG(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("ggchart: close %s: %w", path, cerr)
	}
	if err != nil {
		return multierror.Append(frameErr, err).ErrorOrNil()
	}

	p.log().Info("ggchart: wrote png", "path", path, "width", w, "height", h)
	return frameErr
}

func (p *Plot) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return Logger()
}
