package molsketch

import "image/color"

// Default rendering constants.
const (
	DefaultBondLength       = 40.0
	DefaultFontSize         = 23.0
	DefaultStrokeWidth      = 2.0
	DefaultDoubleBondOffset = 6.0
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r := molsketch.NewRenderer(
//	    molsketch.WithBondLength(60),
//	    molsketch.WithRingClosure(false),
//	)
type Option func(*options)

// options holds the rendering configuration.
type options struct {
	bondLength       float64
	fontSize         float64
	strokeWidth      float64
	doubleBondOffset float64
	ringClosure      bool
	background       color.Color
	stroke           color.Color
	errorStroke      color.Color
	diagnostics      func(Diagnostic)
}

// defaultOptions returns the default rendering options.
func defaultOptions() options {
	return options{
		bondLength:       DefaultBondLength,
		fontSize:         DefaultFontSize,
		strokeWidth:      DefaultStrokeWidth,
		doubleBondOffset: DefaultDoubleBondOffset,
		ringClosure:      true,
		background:       color.White,
		stroke:           color.Black,
		errorStroke:      color.RGBA{R: 255, G: 5, B: 5, A: 255},
	}
}

// WithBondLength sets the length of every bond segment.
// Non-positive values are ignored.
func WithBondLength(l float64) Option {
	return func(o *options) {
		if l > 0 {
			o.bondLength = l
		}
	}
}

// WithFontSize sets the label font size. Label offsets scale with it.
// Non-positive values are ignored.
func WithFontSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.fontSize = size
		}
	}
}

// WithStrokeWidth sets the bond line width.
// Non-positive values are ignored.
func WithStrokeWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.strokeWidth = w
		}
	}
}

// WithDoubleBondOffset sets the perpendicular distance between the two
// lines of a double bond.
func WithDoubleBondOffset(k float64) Option {
	return func(o *options) {
		o.doubleBondOffset = k
	}
}

// WithRingClosure controls whether a ring draws the bond from its last
// vertex back to the first. When disabled a ring of n atoms is drawn as an
// open path of n-1 bonds.
func WithRingClosure(closed bool) Option {
	return func(o *options) {
		o.ringClosure = closed
	}
}

// WithBackground sets the color the surface is cleared to.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}

// WithStroke sets the default line color.
func WithStroke(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.stroke = c
		}
	}
}

// WithErrorStroke sets the color of unknown-substituent markers.
func WithErrorStroke(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.errorStroke = c
		}
	}
}

// WithDiagnostics registers fn to receive every recoverable rendering
// problem, in drawing order. Diagnostics are logged either way.
func WithDiagnostics(fn func(Diagnostic)) Option {
	return func(o *options) {
		o.diagnostics = fn
	}
}
