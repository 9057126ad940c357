package canvas

import (
	"github.com/gogpu/ggchart/coord"
	"github.com/gogpu/ggchart/style"
)

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	CmdLines     CommandType = iota // Stroke a polyline
	CmdMarkers                      // Draw markers
	CmdFillRect                     // Fill a rectangle
	CmdSetClip                      // Restrict drawing to a rectangle
	CmdResetClip                    // Remove the clip
)

var commandTypeNames = [...]string{
	CmdLines:     "Lines",
	CmdMarkers:   "Markers",
	CmdFillRect:  "FillRect",
	CmdSetClip:   "SetClip",
	CmdResetClip: "ResetClip",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// LinesCommand strokes a polyline. Points is owned by the command.
type LinesCommand struct {
	Points []coord.Pixel
	Style  style.LineStyle
}

// Type implements Command.
func (LinesCommand) Type() CommandType { return CmdLines }

// MarkersCommand draws one marker per point. Points is owned by the command.
type MarkersCommand struct {
	Points []coord.Pixel
	Style  style.MarkerStyle
}

// Type implements Command.
func (MarkersCommand) Type() CommandType { return CmdMarkers }

// FillRectCommand fills a rectangle.
type FillRectCommand struct {
	Rect  coord.PixelRect
	Color style.Color
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// ClipCommand sets the clip to Rect, or removes it when Reset is true.
type ClipCommand struct {
	Rect  coord.PixelRect
	Reset bool
}

// Type implements Command.
func (c ClipCommand) Type() CommandType {
	if c.Reset {
		return CmdResetClip
	}
	return CmdSetClip
}
