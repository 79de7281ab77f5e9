package recording

import (
	"math"

	"github.com/gogpu/molsketch"
)

// Measurer reports the horizontal advance of a label at a font size.
// The text package provides one backed by real font shaping.
type Measurer interface {
	Advance(s string, size float64) float64
}

// Label extents relative to the font size, measured from the baseline.
const (
	ascentRatio  = 0.8
	descentRatio = 0.25
)

// Rect is an axis-aligned rectangle in canvas coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// bounds accumulates the extent of drawn content.
type bounds struct {
	rect  Rect
	isSet bool
}

func (b *bounds) updatePoint(x, y float64) {
	if !b.isSet {
		b.rect = Rect{MinX: x, MinY: y, MaxX: x, MaxY: y}
		b.isSet = true
		return
	}
	b.rect.MinX = math.Min(b.rect.MinX, x)
	b.rect.MaxX = math.Max(b.rect.MaxX, x)
	b.rect.MinY = math.Min(b.rect.MinY, y)
	b.rect.MaxY = math.Max(b.rect.MaxY, y)
}

// Bounds returns the extent of everything the recording draws, and false
// if it draws nothing. Lines are padded by half their width. Text extents
// use m for the advance; a nil m estimates it from the font size.
func (r *Recording) Bounds(m Measurer) (Rect, bool) {
	var b bounds
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case LineCommand:
			hw := c.Width / 2
			for _, p := range []molsketch.Point{c.P0, c.P1} {
				b.updatePoint(p.X-hw, p.Y-hw)
				b.updatePoint(p.X+hw, p.Y+hw)
			}
		case TextCommand:
			adv := estimateAdvance(c.Text, c.Size)
			if m != nil {
				adv = m.Advance(c.Text, c.Size)
			}
			b.updatePoint(c.At.X, c.At.Y-c.Size*ascentRatio)
			b.updatePoint(c.At.X+adv, c.At.Y+c.Size*descentRatio)
		}
	}
	return b.rect, b.isSet
}

// estimateAdvance approximates a label width as 0.6 em per character.
func estimateAdvance(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 0.6
}

// Fit returns a copy of the recording translated so that its content
// starts padding units from the top-left corner, on a canvas just large
// enough to hold it. A recording that draws nothing is returned as is.
func (r *Recording) Fit(padding float64, m Measurer) *Recording {
	rect, ok := r.Bounds(m)
	if !ok {
		return r
	}

	d := molsketch.Pt(padding-rect.MinX, padding-rect.MinY)
	cmds := make([]Command, len(r.commands))
	for i, cmd := range r.commands {
		cmds[i] = translate(cmd, d)
	}
	return &Recording{
		width:    int(math.Ceil(rect.Width() + 2*padding)),
		height:   int(math.Ceil(rect.Height() + 2*padding)),
		commands: cmds,
	}
}
