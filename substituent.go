package molsketch

import "fmt"

// renderSubstituents fans subs out around anchor and draws each of them.
// An unsupported fan-out is reported and drawn with the default fan.
func (p *pass) renderSubstituents(atom int, subs []Substituent, coreBonds int, base float64, anchor Point) {
	fan, err := FanOut(len(subs), coreBonds, base)
	if err != nil {
		p.diagnose(Diagnostic{
			Err:    ErrUnsupportedFanOut,
			Atom:   atom,
			Index:  -1,
			Detail: fmt.Sprintf("%d substituents on an atom with %d backbone bonds", len(subs), coreBonds),
		})
	}

	for i, sub := range subs {
		p.renderSubstituent(atom, i, sub, fan.Angle(i), anchor)
	}
}

// renderSubstituent draws one substituent leaving anchor at angle.
func (p *pass) renderSubstituent(atom, index int, sub Substituent, angle float64, anchor Point) {
	length := p.opts.bondLength

	switch sub.Kind {
	case KindCarbonyl:
		end := p.drawBond(anchor, angle, length, true)
		p.placeLabel("O", angle, end)
	case KindAlcohol:
		end := p.drawBond(anchor, angle, length, false)
		p.placeLabel(HydroxylLabel(angle), angle, end)
	case KindHalogen:
		end := p.drawBond(anchor, angle, length, false)
		p.placeLabel(sub.Formula, angle, end)
	case KindAlkyl:
		p.walkBranch(anchor, angle, sub.ChainLength)
	default:
		p.surface.SetStrokeColor(p.opts.errorStroke)
		p.walkBranch(anchor, angle, 1)
		p.surface.SetStrokeColor(p.opts.stroke)
		p.diagnose(Diagnostic{
			Err:    ErrUnknownSubstituent,
			Atom:   atom,
			Index:  index,
			Detail: "type " + quoteType(sub.Type),
		})
	}
}

func quoteType(name string) string {
	if name == "" {
		return "<missing>"
	}
	return `"` + name + `"`
}
