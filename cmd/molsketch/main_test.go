package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const ethanolJSON = `{
  "coreCarbons": 2,
  "cyclic": false,
  "substituents": [[], [{"type": "ALCOHOL"}]]
}`

func testConfig(t *testing.T, args ...string) Config {
	t.Helper()
	cfg, err := loadConfig(newFlagSet(), args, envMap(nil))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	return cfg
}

func TestRunSVGToStdout(t *testing.T) {
	cfg := testConfig(t, "-format", "svg")

	var out bytes.Buffer
	if err := run(cfg, strings.NewReader(ethanolJSON), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	doc := out.String()
	if !strings.Contains(doc, "<svg") || !strings.Contains(doc, ">OH</text>") {
		t.Errorf("unexpected output:\n%s", doc)
	}
}

func TestRunPNGFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "cyclohexane.yaml")
	out := filepath.Join(dir, "cyclohexane.png")
	yaml := "coreCarbons: 6\ncyclic: true\nsubstituents: [[], [], [], [], [], []]\n"
	if err := os.WriteFile(in, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(t, "-input", in, "-output", out, "-fit", "true", "-padding", "4")
	if err := run(cfg, strings.NewReader(""), &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	// A fitted ring is much smaller than the default canvas.
	if size := img.Bounds().Size(); size.X >= 480 || size.Y >= 360 {
		t.Errorf("fitted image size = %v", size)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input string
		want  string
	}{
		{"malformed", nil, `{"coreCarbons": 3, "substituents": [[]]}`, "malformed"},
		{"bad json", nil, `{`, "parse json"},
		{"unknown backend", []string{"-format", "bmp"}, ethanolJSON, "unknown backend"},
		{"missing file", []string{"-input", "does-not-exist.json"}, "", "does-not-exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, tt.args...)
			err := run(cfg, strings.NewReader(tt.input), &bytes.Buffer{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("run error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
