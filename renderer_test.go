package molsketch

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestAnchor(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name string
		m    Molecule
		want Point
	}{
		{"single atom", Linear(1), Pt(240, 196)},
		{"butane", Linear(4), Pt(240-60*math.Cos(ang30), 196)},
		{"cyclohexane", Ring(6), Pt((480+40/1.5)/2, 170)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Anchor(tt.m, 480, 360)
			if !got.Approx(tt.want, 1e-9) {
				t.Errorf("Anchor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderSingleAtom(t *testing.T) {
	s := newTestSurface()
	if err := Render(s, Linear(1)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(s.lines) != 0 || len(s.texts) != 0 {
		t.Errorf("got %d lines and %d texts, want none", len(s.lines), len(s.texts))
	}
	if s.resets != 1 {
		t.Errorf("resets = %d, want 1", s.resets)
	}
}

func TestRenderChain(t *testing.T) {
	s := newTestSurface()
	if err := Render(s, Linear(4)); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(s.lines) != 3 {
		t.Fatalf("got %d bonds, want 3", len(s.lines))
	}

	start := NewRenderer().Anchor(Linear(4), s.width, s.height)
	if !s.lines[0].p0.Approx(start, 1e-9) {
		t.Errorf("chain starts at %v, want %v", s.lines[0].p0, start)
	}
	for i, want := range []float64{-ang30, ang30, -ang30} {
		if got := s.lines[i].angle(); !approxAngle(got, want) {
			t.Errorf("bond %d angle = %v, want %v", i, got, want)
		}
	}
	// The zig-zag is centered horizontally.
	mid := (s.lines[0].p0.X + s.lines[2].p1.X) / 2
	if math.Abs(mid-s.width/2) > 1e-9 {
		t.Errorf("chain midpoint x = %v, want %v", mid, s.width/2)
	}
}

func TestRenderDiol(t *testing.T) {
	m := Linear(3)
	m.Substituents[1] = []Substituent{Alcohol(), Alcohol()}

	s := newTestSurface()
	var diags []Diagnostic
	if err := Render(s, m, WithDiagnostics(func(d Diagnostic) { diags = append(diags, d) })); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// bond 0, two hydroxyls on atom 1, bond 1
	if len(s.lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(s.lines))
	}
	first, second := s.lines[1].angle(), s.lines[2].angle()
	if !approxAngle(first, Degrees(-130)) || !approxAngle(second, Degrees(-50)) {
		t.Errorf("hydroxyl angles = %v, %v; want -130°, -50°", first, second)
	}
	if !s.lines[1].p0.Approx(s.lines[0].p1, 1e-9) {
		t.Errorf("hydroxyls do not start at atom 1")
	}

	if len(s.texts) != 2 {
		t.Fatalf("got %d labels, want 2", len(s.texts))
	}
	if s.texts[0].text != "HO" || s.texts[1].text != "OH" {
		t.Errorf("labels = %q, %q; want HO, OH", s.texts[0].text, s.texts[1].text)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestRenderUnknownSubstituentContinues(t *testing.T) {
	m := Linear(3)
	m.Substituents[0] = []Substituent{Unknown("UNKNOWN")}
	m.Substituents[2] = []Substituent{Halogen("Cl")}

	s := newTestSurface()
	var diags []Diagnostic
	err := Render(s, m, WithDiagnostics(func(d Diagnostic) { diags = append(diags, d) }))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	errorStroke := defaultOptions().errorStroke
	if got := s.linesIn(errorStroke); got != 1 {
		t.Errorf("got %d error marker lines, want 1", got)
	}
	if got := s.linesIn(color.Black); got != 3 {
		t.Errorf("got %d regular lines, want 3", got)
	}
	if len(diags) != 1 || !errors.Is(diags[0], ErrUnknownSubstituent) {
		t.Fatalf("diagnostics = %v, want one unknown substituent", diags)
	}
	if diags[0].Atom != 0 || diags[0].Index != 0 {
		t.Errorf("diagnostic at atom %d index %d, want 0 0", diags[0].Atom, diags[0].Index)
	}
	if len(s.texts) != 1 || s.texts[0].text != "Cl" {
		t.Errorf("labels = %+v, want Cl on the last atom", s.texts)
	}
}

func TestRenderCyclohexanone(t *testing.T) {
	m := Ring(6)
	m.Substituents[0] = []Substituent{Carbonyl()}

	s := newTestSurface()
	if err := Render(s, m); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(s.lines) != 8 {
		t.Errorf("got %d lines, want 6 ring bonds and a double bond", len(s.lines))
	}
	if len(s.texts) != 1 || s.texts[0].text != "O" {
		t.Errorf("labels = %+v, want one O", s.texts)
	}
	if !approxAngle(s.lines[0].angle(), -ang30) {
		t.Errorf("carbonyl angle = %v, want -30°", s.lines[0].angle())
	}
}

func TestRenderRingClosureOption(t *testing.T) {
	for _, closed := range []bool{true, false} {
		s := newTestSurface()
		if err := Render(s, Ring(5), WithRingClosure(closed)); err != nil {
			t.Fatalf("Render: %v", err)
		}
		want := 5
		if !closed {
			want = 4
		}
		if len(s.lines) != want {
			t.Errorf("closed=%v: got %d bonds, want %d", closed, len(s.lines), want)
		}
	}
}

func TestRenderMalformed(t *testing.T) {
	tests := []struct {
		name string
		m    Molecule
	}{
		{"length mismatch", Molecule{CoreCarbons: 3, Substituents: make([][]Substituent, 2)}},
		{"no atoms", Molecule{}},
		{"two-atom ring", Ring(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSurface()
			err := Render(s, tt.m)
			if !errors.Is(err, ErrMalformedMolecule) {
				t.Fatalf("Render error = %v, want ErrMalformedMolecule", err)
			}
			var merr *MalformedMoleculeError
			if !errors.As(err, &merr) || merr.Reason == "" {
				t.Errorf("error %v is not a *MalformedMoleculeError with a reason", err)
			}
			if len(s.lines) != 0 || len(s.texts) != 0 {
				t.Errorf("malformed molecule drew %d lines and %d texts", len(s.lines), len(s.texts))
			}
		})
	}
}

func TestRendererOptions(t *testing.T) {
	blue := color.RGBA{B: 255, A: 255}
	s := newTestSurface()
	err := Render(s, Linear(2), WithBondLength(60), WithStrokeWidth(3), WithStroke(blue))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(s.lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(s.lines))
	}
	l := s.lines[0]
	if d := l.p0.Distance(l.p1); math.Abs(d-60) > 1e-9 {
		t.Errorf("bond length = %v, want 60", d)
	}
	if l.width != 3 {
		t.Errorf("width = %v, want 3", l.width)
	}
	if !sameColor(l.color, blue) {
		t.Errorf("color = %v, want %v", l.color, blue)
	}
}

func TestRendererReuse(t *testing.T) {
	r := NewRenderer()
	s := newTestSurface()
	for i := 0; i < 3; i++ {
		if err := r.Render(s, Linear(3)); err != nil {
			t.Fatalf("Render #%d: %v", i, err)
		}
	}
	if len(s.lines) != 2 {
		t.Errorf("got %d lines after repeated renders, want 2", len(s.lines))
	}
}
