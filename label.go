package molsketch

import "math"

// Label placement constants. The offset heuristics approximate text extents
// from the font size and label length; they are not real glyph metrics.
const (
	labelOffsetDivisor = 20.0
	labelBelowNudge    = 3.0 / 4
	labelAboveNudge    = 1.0 / 4
	labelCharWidth     = 3.0 / 4
	labelVerticalEps   = 0.001
)

// hydroxylLabel is exempt from centering on near-vertical bonds.
const hydroxylLabel = "OH"

// HydroxylLabel returns the hydroxyl text for a bond at angle: "HO" when the
// bond points left so that the oxygen faces the bond, "OH" otherwise.
func HydroxylLabel(angle float64) string {
	if math.Cos(angle) < 0 {
		return "HO"
	}
	return hydroxylLabel
}

// LabelPosition returns where text should be drawn for a label terminating
// a bond of bondLength at bondAngle whose far end is anchor.
//
// The base offset is bondLength/20 along the bond. Labels below the bond
// drop by 3/4 of the font size and labels above rise by 1/4, because the
// text origin is its baseline. Labels left of the bond are shifted by their
// estimated width so they end at the bond; labels on a vertical bond are
// roughly centered, except "OH".
func LabelPosition(text string, bondAngle, bondLength, fontSize float64, anchor Point) Point {
	offset := bondLength / labelOffsetDivisor
	dx := math.Cos(bondAngle) * offset
	dy := math.Sin(bondAngle) * offset

	if dy > 0 {
		dy += fontSize * labelBelowNudge
	} else if dy < 0 {
		dy -= fontSize * labelAboveNudge
	}

	n := float64(len(text))
	if dx < 0 {
		dx -= n * fontSize * labelCharWidth
	} else if math.Abs(dx) < labelVerticalEps && text != hydroxylLabel {
		dx -= n / 3 * fontSize
	}

	return Point{X: anchor.X + dx, Y: anchor.Y + dy}
}

// placeLabel draws text at the far end of a bond.
func (p *pass) placeLabel(text string, bondAngle float64, anchor Point) {
	at := LabelPosition(text, bondAngle, p.opts.bondLength, p.opts.fontSize, anchor)
	p.surface.DrawText(text, at, p.opts.fontSize)
}
