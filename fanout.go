package molsketch

import "fmt"

// Fan is the angular layout of the substituents on one atom:
// substituent i points at Start + i*Step.
type Fan struct {
	Start float64
	Step  float64
}

// Angle returns the direction of the i-th substituent.
func (f Fan) Angle(i int) float64 {
	return f.Start + float64(i)*f.Step
}

// FanOut spreads count substituents around an atom that already has
// coreBonds backbone bonds (0, 1 or 2), starting from base.
//
// Rules:
//
//	count  coreBonds  step          start
//	1      any        0             base
//	2      0          180°          base
//	2      1          120°          base
//	2      2          (2/3)·120°    base - step/2
//	3      0          120°          base
//	3      1          (2/3)·120°    base - step/2
//	4      any        90°           base
//
// The half-step pre-rotation keeps three-way branch points from overlapping
// the backbone. Any other combination returns the single-substituent fan
// (base, step 0) together with an error wrapping ErrUnsupportedFanOut.
func FanOut(count, coreBonds int, base float64) (Fan, error) {
	switch {
	case count == 1:
		return Fan{Start: base}, nil
	case count == 4:
		return Fan{Start: base, Step: ang90}, nil
	case count == 2 && coreBonds == 0:
		return Fan{Start: base, Step: 2 * ang90}, nil
	case count == 2 && coreBonds == 1:
		return Fan{Start: base, Step: ang120}, nil
	case count == 2 && coreBonds == 2:
		return narrowFan(base), nil
	case count == 3 && coreBonds == 0:
		return Fan{Start: base, Step: ang120}, nil
	case count == 3 && coreBonds == 1:
		return narrowFan(base), nil
	}
	return Fan{Start: base}, fmt.Errorf("%w: %d substituents on an atom with %d backbone bonds",
		ErrUnsupportedFanOut, count, coreBonds)
}

// narrowFan is the two-thirds fan centered on base.
func narrowFan(base float64) Fan {
	step := 2.0 / 3 * ang120
	return Fan{Start: base - step/2, Step: step}
}
