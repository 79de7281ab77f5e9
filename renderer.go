package molsketch

import (
	"log/slog"
	"math"
)

// Renderer lays out molecules as skeletal drawings on a Surface.
//
// A Renderer holds only configuration and may be reused. A single render
// runs synchronously to completion; callers sharing one Surface across
// goroutines must serialize Render calls themselves.
type Renderer struct {
	opts options
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Render is a shorthand for NewRenderer(opts...).Render(s, m).
func Render(s Surface, m Molecule, opts ...Option) error {
	return NewRenderer(opts...).Render(s, m)
}

// Render resets s and draws m on it.
//
// A molecule that fails Validate is reported as a *MalformedMoleculeError
// and nothing beyond the reset is drawn. Unknown substituent kinds and
// unsupported fan-outs are drawn best-effort and reported as Diagnostics;
// they never make Render fail.
func (r *Renderer) Render(s Surface, m Molecule) error {
	s.Reset(r.opts.background)
	s.SetStrokeColor(r.opts.stroke)

	if err := m.Validate(); err != nil {
		Logger().Warn("molsketch: molecule rejected", "error", err)
		return err
	}

	w, h := s.Size()
	start := r.Anchor(m, w, h)
	Logger().Debug("molsketch: render",
		slog.Int("coreCarbons", m.CoreCarbons),
		slog.Bool("cyclic", m.Cyclic),
		slog.Float64("x", start.X),
		slog.Float64("y", start.Y))

	p := &pass{opts: &r.opts, surface: s}
	if m.Cyclic {
		p.walkRing(m, start)
	} else {
		p.walkLinear(m, start)
	}
	return nil
}

// Anchor returns the position of the first backbone atom of m on a canvas
// of the given size. Chains are shifted left by half their horizontal
// extent so the zig-zag is centered; rings are offset by a fraction of the
// bond length.
func (r *Renderer) Anchor(m Molecule, width, height float64) Point {
	l := r.opts.bondLength
	if m.Cyclic {
		return Point{
			X: (width + l/1.5) / 2,
			Y: (height - l/2) / 2,
		}
	}
	return Point{
		X: (width - float64(m.CoreCarbons-1)*l*math.Cos(ang30)) / 2,
		Y: (height + l/1.25) / 2,
	}
}

// pass is the state of one render: the options and the surface in use.
// All pen positions are threaded through return values.
type pass struct {
	opts    *options
	surface Surface
}

// diagnose reports a recoverable rendering problem.
func (p *pass) diagnose(d Diagnostic) {
	Logger().Warn("molsketch: recoverable rendering error",
		"error", d.Err,
		"atom", d.Atom,
		"substituent", d.Index,
		"detail", d.Detail)
	if p.opts.diagnostics != nil {
		p.opts.diagnostics(d)
	}
}
