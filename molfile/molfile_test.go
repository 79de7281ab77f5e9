package molfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/molsketch"
)

const propanolJSON = `{
  "coreCarbons": 3,
  "cyclic": false,
  "substituents": [
    [{"type": "ALCOHOL", "bondCount": 1}],
    [{"type": "HALOGEN", "formula": "cl"}],
    [{"type": "ALKANE", "chainLength": 2}]
  ]
}`

const cyclohexanoneYAML = `
coreCarbons: 6
cyclic: true
substituents:
  - [{type: CARBONYL, bondCount: 2}]
  - []
  - []
  - []
  - []
  - []
`

func TestParseJSON(t *testing.T) {
	m, err := Parse([]byte(propanolJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.CoreCarbons != 3 || m.Cyclic || len(m.Substituents) != 3 {
		t.Fatalf("molecule = %+v", m)
	}

	want := []molsketch.Substituent{
		{Kind: molsketch.KindAlcohol, BondCount: 1, Type: "ALCOHOL"},
		{Kind: molsketch.KindHalogen, Formula: "Cl", Type: "HALOGEN"},
		{Kind: molsketch.KindAlkyl, ChainLength: 2, Type: "ALKANE"},
	}
	for i, w := range want {
		if len(m.Substituents[i]) != 1 || m.Substituents[i][0] != w {
			t.Errorf("atom %d substituents = %+v, want [%+v]", i, m.Substituents[i], w)
		}
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	m, err := Parse([]byte(cyclohexanoneYAML), FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !m.Cyclic || m.CoreCarbons != 6 || len(m.Substituents) != 6 {
		t.Fatalf("molecule = %+v", m)
	}
	if got := m.Substituents[0]; len(got) != 1 || got[0].Kind != molsketch.KindCarbonyl {
		t.Errorf("atom 0 substituents = %+v, want a carbonyl", got)
	}
	for i := 1; i < 6; i++ {
		if len(m.Substituents[i]) != 0 {
			t.Errorf("atom %d substituents = %+v, want none", i, m.Substituents[i])
		}
	}
}

func TestParseUnknownTypes(t *testing.T) {
	const doc = `{
	  "coreCarbons": 1,
	  "substituents": [[
	    {"type": "NITRO"},
	    {"type": 7},
	    {"formula": "Br"},
	    {"type": " alcohol "}
	  ]]
	}`
	m, err := Parse([]byte(doc), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	subs := m.Substituents[0]
	if len(subs) != 4 {
		t.Fatalf("got %d substituents, want 4", len(subs))
	}
	tests := []struct {
		kind     molsketch.Kind
		typeName string
	}{
		{molsketch.KindUnknown, "NITRO"},
		{molsketch.KindUnknown, "7"},
		{molsketch.KindUnknown, ""},
		{molsketch.KindAlcohol, " alcohol "},
	}
	for i, tt := range tests {
		if subs[i].Kind != tt.kind || subs[i].Type != tt.typeName {
			t.Errorf("substituent %d = %+v, want kind %v type %q", i, subs[i], tt.kind, tt.typeName)
		}
	}
	if subs[2].Formula != "" {
		t.Errorf("unknown substituent kept formula %q", subs[2].Formula)
	}
}

func TestParseLeavesStructureToValidate(t *testing.T) {
	m, err := Parse([]byte(`{"coreCarbons": 3, "substituents": [[], []]}`), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := m.Validate(); !errors.Is(err, molsketch.ErrMalformedMolecule) {
		t.Errorf("Validate = %v, want ErrMalformedMolecule", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		want   string
	}{
		{"bad json", `{"coreCarbons": `, FormatJSON, "parse json"},
		{"wrong json type", `{"coreCarbons": "three"}`, FormatJSON, "parse json"},
		{"bad yaml", "coreCarbons: [", FormatYAML, "parse yaml"},
		{"unsupported format", `{}`, Format("toml"), "unsupported format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	m, err := Decode(strings.NewReader(propanolJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if m.CoreCarbons != 3 {
		t.Errorf("CoreCarbons = %d, want 3", m.CoreCarbons)
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"propanol.json":      propanolJSON,
		"cyclohexanone.yaml": cyclohexanoneYAML,
		"cyclohexanone.yml":  cyclohexanoneYAML,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	for name := range files {
		t.Run(name, func(t *testing.T) {
			m, err := DecodeFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("DecodeFile: %v", err)
			}
			if err := m.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}

	if _, err := DecodeFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("DecodeFile(missing) = %v, want os.ErrNotExist", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.json", FormatJSON},
		{"a.yaml", FormatYAML},
		{"a.YML", FormatYAML},
		{"a", FormatJSON},
		{"dir.yaml/a.txt", FormatJSON},
	}
	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNormalizeFormula(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Cl", "Cl"},
		{"CL", "Cl"},
		{"cl", "Cl"},
		{" br ", "Br"},
		{"F", "F"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeFormula(tt.in); got != tt.want {
			t.Errorf("NormalizeFormula(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
