package molsketch

import "math"

// DoubleBondOffset returns the displacement of the second line of a double
// bond drawn at angle, k units to the bond's left-hand normal.
func DoubleBondOffset(angle, k float64) Point {
	return Point{X: math.Sin(angle) * k, Y: -math.Cos(angle) * k}
}

// drawBond strokes a bond of the given length from origin and returns its
// far end. A double bond adds a parallel line shifted by DoubleBondOffset;
// the returned end point is the same either way.
func (p *pass) drawBond(origin Point, angle, length float64, double bool) Point {
	end := Advance(origin, angle, length)
	p.surface.DrawLine(origin, end, p.opts.strokeWidth)

	if double {
		off := DoubleBondOffset(angle, p.opts.doubleBondOffset)
		p.surface.DrawLine(origin.Add(off), end.Add(off), p.opts.strokeWidth)
	}
	return end
}
