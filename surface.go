package molsketch

import "image/color"

// Surface is the immediate-mode canvas a Renderer draws on.
//
// The layout engine never reads drawing state back from a Surface; all
// chaining happens through the Points returned by the draw helpers.
// The recording package provides a Surface that captures calls as commands.
type Surface interface {
	// Size returns the canvas dimensions used to center the molecule.
	Size() (width, height float64)

	// Reset clears the canvas and fills it with background.
	Reset(background color.Color)

	// SetStrokeColor sets the color of subsequent lines.
	SetStrokeColor(c color.Color)

	// DrawLine strokes a straight segment from p0 to p1.
	DrawLine(p0, p1 Point, width float64)

	// DrawText draws s with its baseline origin at p.
	DrawText(s string, p Point, size float64)
}
