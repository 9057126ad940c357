package canvas

import (
	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/render"
	"github.com/gogpu/ggchart/style"
)

// Recorder is a canvas that records commands instead of drawing.
// Point slices are copied, so callers may reuse their buffers.
type Recorder struct {
	commands []Command
	stats    Stats
}

// Stats summarizes what a recording would draw.
type Stats struct {
	Lines   int // polylines stroked
	Markers int // markers drawn
	Fills   int // rectangles filled
	Points  int // line vertices
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// DrawLines implements render.Canvas.
func (r *Recorder) DrawLines(points []coord.Pixel, ls style.LineStyle) {
	if len(points) < 2 {
		return
	}
	r.commands = append(r.commands, LinesCommand{
		Points: append([]coord.Pixel(nil), points...),
		Style:  ls,
	})
	r.stats.Lines++
	r.stats.Points += len(points)
}

// DrawMarkers implements render.Canvas.
func (r *Recorder) DrawMarkers(points []coord.Pixel, ms style.MarkerStyle) {
	if len(points) == 0 {
		return
	}
	r.commands = append(r.commands, MarkersCommand{
		Points: append([]coord.Pixel(nil), points...),
		Style:  ms,
	})
	r.stats.Markers += len(points)
}

// FillRect implements render.Filler.
func (r *Recorder) FillRect(rect coord.PixelRect, c style.Color) {
	r.commands = append(r.commands, FillRectCommand{Rect: rect, Color: c})
	r.stats.Fills++
}

// SetClip implements render.Clipper.
func (r *Recorder) SetClip(rect coord.PixelRect) {
	r.commands = append(r.commands, ClipCommand{Rect: rect})
}

// ResetClip implements render.Clipper.
func (r *Recorder) ResetClip() {
	r.commands = append(r.commands, ClipCommand{Reset: true})
}

// Commands returns the recorded commands.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Stats returns counters over the recorded commands.
func (r *Recorder) Stats() Stats {
	return r.stats
}

// Reset discards all commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.stats = Stats{}
}

// Playback replays the recording onto c. Fills and clips are skipped when
// c does not support them.
func (r *Recorder) Playback(c render.Canvas) {
	filler, _ := c.(render.Filler)
	clipper, _ := c.(render.Clipper)

	for _, cmd := range r.commands {
		switch cmd := cmd.(type) {
		case LinesCommand:
			c.DrawLines(cmd.Points, cmd.Style)
		case MarkersCommand:
			c.DrawMarkers(cmd.Points, cmd.Style)
		case FillRectCommand:
			if filler != nil {
				filler.FillRect(cmd.Rect, cmd.Color)
			}
		case ClipCommand:
			if clipper == nil {
				continue
			}
			if cmd.Reset {
				clipper.ResetClip()
			} else {
				clipper.SetClip(cmd.Rect)
			}
		}
	}
}

var (
	_ render.Canvas  = (*Recorder)(nil)
	_ render.Filler  = (*Recorder)(nil)
	_ render.Clipper = (*Recorder)(nil)
)
