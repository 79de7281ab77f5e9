// Package molfile reads serialized molecule descriptions.
//
// A description has the shape
//
//	{
//	  "coreCarbons": 3,
//	  "cyclic": false,
//	  "substituents": [
//	    [{"type": "ALCOHOL"}],
//	    [{"type": "HALOGEN", "formula": "Cl"}],
//	    []
//	  ]
//	}
//
// and may be written as JSON or YAML. Decoding only maps the shape onto
// molsketch types: a substituent whose type is missing, misspelled or not
// a string becomes a molsketch.KindUnknown substituent, and structural
// problems such as a wrong number of substituent lists are left for
// molsketch.Molecule.Validate to report.
package molfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/molsketch"
)

// Format is a serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Description is the serialized form of a molecule.
type Description struct {
	CoreCarbons  int                        `json:"coreCarbons" yaml:"coreCarbons"`
	Cyclic       bool                       `json:"cyclic" yaml:"cyclic"`
	Substituents [][]SubstituentDescription `json:"substituents" yaml:"substituents"`
}

// SubstituentDescription is the serialized form of a substituent.
// Type is kept untyped so that a non-string value degrades to an unknown
// kind instead of failing the whole document.
type SubstituentDescription struct {
	Formula     string `json:"formula,omitempty" yaml:"formula,omitempty"`
	BondCount   int    `json:"bondCount,omitempty" yaml:"bondCount,omitempty"`
	ChainLength int    `json:"chainLength,omitempty" yaml:"chainLength,omitempty"`
	Type        any    `json:"type" yaml:"type"`
}

// FormatFromPath picks a format from a file extension.
// Anything other than .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode reads one description from r.
func Decode(r io.Reader, format Format) (molsketch.Molecule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return molsketch.Molecule{}, fmt.Errorf("molfile: read: %w", err)
	}
	return Parse(data, format)
}

// DecodeFile reads the description stored at path, choosing the format
// from its extension.
func DecodeFile(path string) (molsketch.Molecule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return molsketch.Molecule{}, fmt.Errorf("molfile: %w", err)
	}
	return Parse(data, FormatFromPath(path))
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (molsketch.Molecule, error) {
	var d Description
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&d); err != nil {
			return molsketch.Molecule{}, fmt.Errorf("molfile: parse json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return molsketch.Molecule{}, fmt.Errorf("molfile: parse yaml: %w", err)
		}
	default:
		return molsketch.Molecule{}, fmt.Errorf("molfile: unsupported format %q", format)
	}
	return d.Molecule(), nil
}

// Molecule converts the description to a molsketch.Molecule.
func (d Description) Molecule() molsketch.Molecule {
	m := molsketch.Molecule{
		CoreCarbons:  d.CoreCarbons,
		Cyclic:       d.Cyclic,
		Substituents: make([][]molsketch.Substituent, len(d.Substituents)),
	}
	for i, group := range d.Substituents {
		subs := make([]molsketch.Substituent, 0, len(group))
		for _, sd := range group {
			subs = append(subs, sd.Substituent())
		}
		m.Substituents[i] = subs
	}
	return m
}

// Substituent converts the description to a molsketch.Substituent.
func (sd SubstituentDescription) Substituent() molsketch.Substituent {
	name, ok := sd.Type.(string)
	if !ok {
		name = ""
		if sd.Type != nil {
			name = fmt.Sprint(sd.Type)
		}
		molsketch.Logger().Debug("molfile: substituent type is not a string", "type", sd.Type)
	}

	kind := molsketch.KindUnknown
	if ok {
		kind = molsketch.ParseKind(strings.ToUpper(strings.TrimSpace(name)))
	}

	s := molsketch.Substituent{
		Kind:      kind,
		BondCount: sd.BondCount,
		Type:      name,
	}
	switch kind {
	case molsketch.KindHalogen:
		s.Formula = NormalizeFormula(sd.Formula)
	case molsketch.KindAlkyl:
		s.ChainLength = sd.ChainLength
	}
	return s
}

// NormalizeFormula trims an element symbol and gives it its conventional
// capitalization: "CL" and "cl" both become "Cl".
func NormalizeFormula(formula string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(formula))
}
