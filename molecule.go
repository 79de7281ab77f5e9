package molsketch

import "fmt"

// Kind identifies which variant a Substituent holds.
type Kind uint8

const (
	// KindUnknown marks a substituent whose declared type was not recognized.
	// It is rendered as an error marker rather than rejected.
	KindUnknown Kind = iota
	KindCarbonyl
	KindAlcohol
	KindHalogen
	KindAlkyl
)

// kindNames maps Kind values to the type names used by serialized molecules.
var kindNames = [...]string{
	KindUnknown:  "UNKNOWN",
	KindCarbonyl: "CARBONYL",
	KindAlcohol:  "ALCOHOL",
	KindHalogen:  "HALOGEN",
	KindAlkyl:    "ALKANE",
}

// String returns the serialized type name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// ParseKind maps a serialized type name to a Kind.
// Unrecognized names map to KindUnknown.
func ParseKind(name string) Kind {
	for k, n := range kindNames {
		if k != int(KindUnknown) && n == name {
			return Kind(k)
		}
	}
	return KindUnknown
}

// Substituent is a group attached to a backbone atom.
//
// Only the fields relevant to Kind are meaningful: Formula for halogens,
// ChainLength for alkyl branches. Type keeps the declared type name so
// that unknown kinds can be reported as they were written.
type Substituent struct {
	Kind        Kind
	Formula     string
	ChainLength int
	BondCount   int
	Type        string
}

// Carbonyl returns a double-bonded oxygen substituent.
func Carbonyl() Substituent {
	return Substituent{Kind: KindCarbonyl, Type: KindCarbonyl.String()}
}

// Alcohol returns a hydroxyl substituent.
func Alcohol() Substituent {
	return Substituent{Kind: KindAlcohol, Type: KindAlcohol.String()}
}

// Halogen returns a halogen substituent labeled with formula ("Cl", "Br", ...).
func Halogen(formula string) Substituent {
	return Substituent{Kind: KindHalogen, Formula: formula, Type: KindHalogen.String()}
}

// Alkyl returns a branch of chainLength additional carbons.
func Alkyl(chainLength int) Substituent {
	return Substituent{Kind: KindAlkyl, ChainLength: chainLength, Type: KindAlkyl.String()}
}

// Unknown returns a substituent carrying an unrecognized type name.
func Unknown(typeName string) Substituent {
	return Substituent{Kind: KindUnknown, Type: typeName}
}

// Molecule describes a skeletal structure: a backbone of CoreCarbons atoms,
// either an open chain or a ring, and the substituents of each atom.
//
// Substituents[i] lists the groups on backbone atom i in fan-out order.
// A Molecule is read-only during rendering.
type Molecule struct {
	CoreCarbons  int
	Substituents [][]Substituent
	Cyclic       bool
}

// Linear returns an open-chain molecule with n atoms and no substituents.
func Linear(n int) Molecule {
	return Molecule{CoreCarbons: n, Substituents: make([][]Substituent, max(n, 0))}
}

// Ring returns a cyclic molecule with n atoms and no substituents.
func Ring(n int) Molecule {
	m := Linear(n)
	m.Cyclic = true
	return m
}

// Validate checks the structural invariants of the molecule.
// The returned error, if any, is a *MalformedMoleculeError.
func (m Molecule) Validate() error {
	if m.CoreCarbons < 1 {
		return malformed(fmt.Sprintf("coreCarbons must be at least 1, got %d", m.CoreCarbons))
	}
	if len(m.Substituents) != m.CoreCarbons {
		return malformed(fmt.Sprintf("substituents has %d entries, want %d (one per core carbon)",
			len(m.Substituents), m.CoreCarbons))
	}
	if m.Cyclic && m.CoreCarbons < 3 {
		return malformed(fmt.Sprintf("a ring needs at least 3 core carbons, got %d", m.CoreCarbons))
	}
	for i, subs := range m.Substituents {
		for j, s := range subs {
			if s.Kind == KindAlkyl && s.ChainLength < 0 {
				return malformed(fmt.Sprintf("atom %d substituent %d: negative chain length %d", i, j, s.ChainLength))
			}
		}
	}
	return nil
}
