package recording

import (
	"image/color"

	"github.com/gogpu/molsketch"
)

// Recorder is a molsketch.Surface that captures drawing calls as commands
// instead of rasterizing them. Use FinishRecording to obtain an immutable
// Recording that can be replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	_ = molsketch.Render(rec, m)
//	r := rec.FinishRecording()
//	_ = r.Playback(backend)
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	stroke        color.Color
}

var _ molsketch.Surface = (*Recorder)(nil)

// NewRecorder creates a new Recorder for a canvas of the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
		stroke:   color.Black,
	}
}

// Width returns the width of the canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Size implements molsketch.Surface.
func (r *Recorder) Size() (width, height float64) {
	return float64(r.width), float64(r.height)
}

// Reset implements molsketch.Surface. Everything recorded so far is
// discarded, since the canvas it described has been cleared.
func (r *Recorder) Reset(background color.Color) {
	r.commands = r.commands[:0]
	r.stroke = color.Black
	r.commands = append(r.commands, ResetCommand{Background: background})
}

// SetStrokeColor implements molsketch.Surface.
func (r *Recorder) SetStrokeColor(c color.Color) {
	r.stroke = c
	r.commands = append(r.commands, SetStrokeCommand{Color: c})
}

// DrawLine implements molsketch.Surface.
func (r *Recorder) DrawLine(p0, p1 molsketch.Point, width float64) {
	r.commands = append(r.commands, LineCommand{P0: p0, P1: p1, Width: width, Color: r.stroke})
}

// DrawText implements molsketch.Surface.
func (r *Recorder) DrawText(s string, p molsketch.Point, size float64) {
	r.commands = append(r.commands, TextCommand{Text: s, At: p, Size: size})
}

// FinishRecording returns an immutable Recording of the commands captured
// since the last Reset. The Recorder may keep being used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: cmds,
	}
}

// Recording is an immutable list of drawing commands.
// It can be replayed to any Backend implementation.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands in drawing order.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Lines returns the recorded line commands in drawing order.
func (r *Recording) Lines() []LineCommand {
	var lines []LineCommand
	for _, cmd := range r.commands {
		if c, ok := cmd.(LineCommand); ok {
			lines = append(lines, c)
		}
	}
	return lines
}

// Texts returns the recorded text commands in drawing order.
func (r *Recording) Texts() []TextCommand {
	var texts []TextCommand
	for _, cmd := range r.commands {
		if c, ok := cmd.(TextCommand); ok {
			texts = append(texts, c)
		}
	}
	return texts
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording to backend, wrapped in Begin and End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ResetCommand:
			backend.Reset(c.Background)
		case SetStrokeCommand:
			backend.SetStrokeColor(c.Color)
		case LineCommand:
			backend.DrawLine(c.P0, c.P1, c.Width)
		case TextCommand:
			backend.DrawText(c.Text, c.At, c.Size)
		}
	}

	return backend.End()
}
