package recording

import (
	"image/color"

	"github.com/gogpu/molsketch"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdReset     CommandType = iota // Clear the canvas to a background color
	CmdSetStroke                    // Set the line color
	CmdLine                         // Stroke a straight segment
	CmdText                         // Draw a label
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdReset:     "Reset",
	CmdSetStroke: "SetStroke",
	CmdLine:      "Line",
	CmdText:      "Text",
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

// ResetCommand clears the canvas and fills it with Background.
type ResetCommand struct {
	Background color.Color
}

// Type implements Command.
func (ResetCommand) Type() CommandType { return CmdReset }

// SetStrokeCommand sets the color of subsequent lines.
type SetStrokeCommand struct {
	Color color.Color
}

// Type implements Command.
func (SetStrokeCommand) Type() CommandType { return CmdSetStroke }

// LineCommand strokes a segment from P0 to P1.
type LineCommand struct {
	P0, P1 molsketch.Point
	Width  float64
	// Color is the stroke color in effect when the line was recorded.
	Color color.Color
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// TextCommand draws Text with its baseline origin at At.
type TextCommand struct {
	Text string
	At   molsketch.Point
	Size float64
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }

// translate returns cmd moved by d. Commands without coordinates are
// returned unchanged.
func translate(cmd Command, d molsketch.Point) Command {
	switch c := cmd.(type) {
	case LineCommand:
		c.P0 = c.P0.Add(d)
		c.P1 = c.P1.Add(d)
		return c
	case TextCommand:
		c.At = c.At.Add(d)
		return c
	}
	return cmd
}
