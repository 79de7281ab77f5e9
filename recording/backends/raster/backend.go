// Package raster provides a PNG backend for the recording system.
// It renders recordings to pixel images using github.com/fogleman/gg,
// with labels set in Go Regular through golang/freetype.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/molsketch/recording/backends/raster"
//
//	// Create via registry
//	backend, _ := recording.NewBackend("png")
//
//	// Or create directly
//	backend := raster.NewBackend()
//
//	// Playback recording
//	_ = r.Playback(backend)
//
//	// Get output
//	_ = backend.SavePNG("output.png")
//	img := backend.Image()
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/molsketch"
	"github.com/gogpu/molsketch/recording"
)

func init() {
	recording.Register("png", func() recording.Backend {
		return NewBackend()
	})
}

// errNotStarted is returned by output methods called before Begin.
var errNotStarted = errors.New("raster: backend not started")

// Go Regular, parsed once for all backends.
var (
	regularOnce sync.Once
	regular     *truetype.Font
	regularErr  error
)

func goRegular() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Backend renders recordings to a pixel image using gg.Context.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	ctx    *gg.Context
	width  int
	height int

	stroke    color.Color
	textColor color.Color
	faces     map[float64]font.Face
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new raster backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{
		stroke:    color.Black,
		textColor: color.Black,
		faces:     make(map[float64]font.Face),
	}
}

// Begin initializes the backend for rendering at the given dimensions.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("raster: invalid canvas size %dx%d", width, height)
	}
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	b.ctx.SetLineCapRound()
	return nil
}

// End finalizes the rendering.
func (b *Backend) End() error {
	for size, face := range b.faces {
		_ = face.Close()
		delete(b.faces, size)
	}
	return nil
}

// Reset fills the whole image with background.
func (b *Backend) Reset(background color.Color) {
	b.ctx.SetColor(background)
	b.ctx.Clear()
	b.stroke = color.Black
}

// SetStrokeColor sets the color of subsequent lines.
func (b *Backend) SetStrokeColor(c color.Color) {
	b.stroke = c
}

// DrawLine strokes a segment from p0 to p1.
func (b *Backend) DrawLine(p0, p1 molsketch.Point, width float64) {
	b.ctx.SetColor(b.stroke)
	b.ctx.SetLineWidth(width)
	b.ctx.DrawLine(p0.X, p0.Y, p1.X, p1.Y)
	b.ctx.Stroke()
}

// DrawText draws s with its baseline origin at p. Labels are filled, not
// stroked, so they always use the text color.
func (b *Backend) DrawText(s string, p molsketch.Point, size float64) {
	face, err := b.face(size)
	if err != nil {
		molsketch.Logger().Warn("raster: label skipped", "text", s, "error", err)
		return
	}
	b.ctx.SetFontFace(face)
	b.ctx.SetColor(b.textColor)
	b.ctx.DrawString(s, p.X, p.Y)
}

// face returns a cached Go Regular face of the given size.
func (b *Backend) face(size float64) (font.Face, error) {
	if f, ok := b.faces[size]; ok {
		return f, nil
	}
	ttf, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("raster: parse Go Regular: %w", err)
	}
	f := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	b.faces[size] = f
	return f, nil
}

// WriteTo writes the rendered image as PNG to the given writer.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.ctx == nil {
		return 0, errNotStarted
	}
	var buf bytes.Buffer
	if err := b.ctx.EncodePNG(&buf); err != nil {
		return 0, fmt.Errorf("raster: encode png: %w", err)
	}
	return buf.WriteTo(w)
}

// SaveToFile saves the rendered image as PNG.
func (b *Backend) SaveToFile(path string) error {
	if b.ctx == nil {
		return errNotStarted
	}
	return b.ctx.SavePNG(path)
}

// SavePNG is a convenience alias for SaveToFile.
func (b *Backend) SavePNG(path string) error {
	return b.SaveToFile(path)
}

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Image()
}

// Width returns the width of the canvas.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the height of the canvas.
func (b *Backend) Height() int {
	return b.height
}
