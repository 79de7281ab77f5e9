package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Measurer reports label advances using HarfBuzz shaping.
//
// Measurer is safe for concurrent use. The parsed font.Font is read-only;
// the font.Face and HarfbuzzShaper hold mutable caches and are guarded by mu.
type Measurer struct {
	mu     sync.Mutex
	face   *font.Face
	shaper shaping.HarfbuzzShaper
}

// NewMeasurer parses a TrueType/OpenType font. A nil fontData selects
// Go Regular, the face the raster backend draws labels with.
func NewMeasurer(fontData []byte) (*Measurer, error) {
	if fontData == nil {
		fontData = goregular.TTF
	}
	parsed, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &Measurer{face: font.NewFace(parsed.Font)}, nil
}

// Advance returns the horizontal advance of s at the given size in pixels.
func (m *Measurer) Advance(s string, size float64) float64 {
	if s == "" || size <= 0 {
		return 0
	}
	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      m.face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	m.mu.Lock()
	out := m.shaper.Shape(input)
	m.mu.Unlock()

	adv := fixedToFloat(out.Advance)
	if adv < 0 {
		adv = -adv
	}
	return adv
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a size in pixels to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
