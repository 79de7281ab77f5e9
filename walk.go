package molsketch

import "math"

// turnFunc returns the direction of the bond after bond i, given the
// direction of bond i.
type turnFunc func(i int, angle float64) float64

// visitFunc is called at every atom of a walked path, before the bond
// leaving the atom is drawn. angle is the direction of that bond.
type visitFunc func(i int, at Point, angle float64)

// alternate mirrors the direction after every bond. Seeded at -30° it
// produces the backbone zig-zag -30°, 30°, -30°, ...
func alternate(_ int, angle float64) float64 {
	return -angle
}

// kink turns a branch by -60° after even bonds and +60° after odd ones.
func kink(i int, angle float64) float64 {
	if i%2 == 0 {
		return angle - ang60
	}
	return angle + ang60
}

// rotate turns by a fixed step after every bond.
func rotate(step float64) turnFunc {
	return func(_ int, angle float64) float64 {
		return angle + step
	}
}

// walkPath visits atoms atoms starting at anchor and connects consecutive
// atoms with single bonds, turning with next after each bond. When closed
// is set the last atom also gets a bond, which closes a ring whose turns
// sum to a full revolution. It returns the position of the pen after the
// last bond.
func (p *pass) walkPath(anchor Point, angle float64, atoms int, closed bool, next turnFunc, visit visitFunc) Point {
	for i := 0; i < atoms; i++ {
		if visit != nil {
			visit(i, anchor, angle)
		}
		if i == atoms-1 && !closed {
			break
		}
		anchor = p.drawBond(anchor, angle, p.opts.bondLength, false)
		angle = next(i, angle)
	}
	return anchor
}

// walkBranch draws an alkyl branch of chainLength bonds leaving anchor at
// angle. Branches carry no labels.
func (p *pass) walkBranch(anchor Point, angle float64, chainLength int) Point {
	if chainLength <= 0 {
		return anchor
	}
	return p.walkPath(anchor, angle, chainLength+1, false, kink, nil)
}

// walkLinear draws an open backbone as a zig-zag starting at -30°.
func (p *pass) walkLinear(m Molecule, start Point) {
	n := m.CoreCarbons
	p.walkPath(start, -ang30, n, false, alternate, func(i int, at Point, angle float64) {
		subs := m.Substituents[i]
		if len(subs) == 0 {
			return
		}
		p.renderSubstituents(i, subs, linearCoreBonds(i, n), linearBaseAngle(i, n, angle), at)
	})
}

// linearCoreBonds is the number of backbone bonds the fan-out must avoid
// on atom i of an n-atom chain.
func linearCoreBonds(i, n int) int {
	if i == 0 || i == n-1 {
		return 1
	}
	return 2
}

// linearBaseAngle is the first substituent direction on atom i of an
// n-atom chain whose next backbone bond would point at angle. Interior
// substituents go to the outside of the zig-zag; the last atom continues
// the chain direction.
func linearBaseAngle(i, n int, angle float64) float64 {
	switch {
	case i == 0:
		return ang90
	case i == n-1:
		if angle < 0 {
			return -ang30
		}
		return ang30 - ang120
	case angle < 0:
		return ang90
	default:
		return -ang90
	}
}

// walkRing draws a ring as a regular polygon starting with a bond at 90°.
func (p *pass) walkRing(m Molecule, start Point) {
	n := m.CoreCarbons
	step := 2 * math.Pi / float64(n)
	p.walkPath(start, ang90, n, p.opts.ringClosure, rotate(step), func(i int, at Point, angle float64) {
		subs := m.Substituents[i]
		if len(subs) == 0 {
			return
		}
		p.renderSubstituents(i, subs, 2, ringBaseAngle(n, step, angle), at)
	})
}

// ringBaseAngle points substituents of a ring vertex away from the ring
// center. angle is the direction of the bond leaving the vertex.
func ringBaseAngle(n int, step, angle float64) float64 {
	return angle + step*float64(n-2)/4 - 2*ang90
}
