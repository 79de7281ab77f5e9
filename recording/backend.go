package recording

import (
	"image/color"
	"io"

	"github.com/gogpu/molsketch"
)

// Backend is the interface that all output backends implement.
// Backends receive the recorded drawing calls and translate them to their
// output format (raster pixels, SVG elements, ...).
//
// Backends are created via the registry using NewBackend(name) and
// registered via Register() in their init() functions:
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return NewBackend()
//	    })
//	}
type Backend interface {
	// Begin initializes the backend for a canvas of the given dimensions.
	// It must be called before any drawing method.
	Begin(width, height int) error

	// End finalizes the output. After End, WriteTo or SaveToFile may be used.
	End() error

	// Reset clears the canvas to background.
	Reset(background color.Color)

	// SetStrokeColor sets the color of subsequent lines.
	SetStrokeColor(c color.Color)

	// DrawLine strokes a segment from p0 to p1.
	DrawLine(p0, p1 molsketch.Point, width float64)

	// DrawText draws s with its baseline origin at p.
	DrawText(s string, p molsketch.Point, size float64)
}

// WriterBackend extends Backend with the ability to write its output to an
// io.Writer. WriteTo should only be called after End.
type WriterBackend interface {
	Backend
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save its output to a file.
// SaveToFile should only be called after End.
type FileBackend interface {
	Backend
	SaveToFile(path string) error
}
