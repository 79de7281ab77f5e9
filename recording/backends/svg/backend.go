// Package svg provides an SVG backend for the recording system, written
// with github.com/ajstarks/svgo.
//
// svgo takes integer coordinates, so the backend draws inside a group
// scaled by 1/Precision and multiplies every coordinate by Precision
// before rounding. The default keeps one decimal place.
//
// # Example
//
//	import _ "github.com/gogpu/molsketch/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	_ = r.Playback(backend)
//	_ = backend.(recording.FileBackend).SaveToFile("molecule.svg")
package svg

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	svgo "github.com/ajstarks/svgo"

	"github.com/gogpu/molsketch"
	"github.com/gogpu/molsketch/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// DefaultPrecision is the number of user units per SVG unit.
const DefaultPrecision = 10

// FontFamily is the font stack used for labels.
const FontFamily = "Go, Helvetica, Arial, sans-serif"

var errNotFinished = errors.New("svg: output requested before End")

// Backend writes recordings as an SVG document.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	precision float64
	buf       bytes.Buffer
	canvas    *svgo.SVG
	width     int
	height    int
	stroke    color.Color
	inGroup   bool
	done      bool
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend with DefaultPrecision.
func NewBackend() *Backend {
	return NewBackendWithPrecision(DefaultPrecision)
}

// NewBackendWithPrecision creates an SVG backend that keeps coordinates
// to 1/precision of a unit. Values below 1 are treated as 1.
func NewBackendWithPrecision(precision int) *Backend {
	if precision < 1 {
		precision = 1
	}
	return &Backend{precision: float64(precision), stroke: color.Black}
}

// Begin starts a new document of the given dimensions.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid canvas size %dx%d", width, height)
	}
	b.buf.Reset()
	b.width, b.height = width, height
	b.done = false
	b.canvas = svgo.New(&b.buf)
	b.canvas.Start(width, height)
	b.openGroup()
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	if b.canvas == nil {
		return errors.New("svg: End called before Begin")
	}
	b.closeGroup()
	b.canvas.End()
	b.done = true
	return nil
}

func (b *Backend) openGroup() {
	b.canvas.Gtransform(fmt.Sprintf("scale(%g)", 1/b.precision))
	b.inGroup = true
}

func (b *Backend) closeGroup() {
	if b.inGroup {
		b.canvas.Gend()
		b.inGroup = false
	}
}

// Reset paints the background over the whole canvas. Content emitted
// before the reset stays in the document underneath it.
func (b *Backend) Reset(background color.Color) {
	b.closeGroup()
	b.canvas.Rect(0, 0, b.width, b.height, "fill:"+cssColor(background))
	b.openGroup()
	b.stroke = color.Black
}

// SetStrokeColor sets the color of subsequent lines.
func (b *Backend) SetStrokeColor(c color.Color) {
	b.stroke = c
}

// DrawLine emits a <line> element.
func (b *Backend) DrawLine(p0, p1 molsketch.Point, width float64) {
	b.canvas.Line(b.scale(p0.X), b.scale(p0.Y), b.scale(p1.X), b.scale(p1.Y),
		fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-linecap:round", cssColor(b.stroke), b.scale(width)))
}

// DrawText emits a <text> element anchored at its baseline start.
func (b *Backend) DrawText(s string, p molsketch.Point, size float64) {
	b.canvas.Text(b.scale(p.X), b.scale(p.Y), s,
		fmt.Sprintf("font-family:%s;font-size:%dpx;fill:black", FontFamily, b.scale(size)))
}

func (b *Backend) scale(v float64) int {
	return int(math.Round(v * b.precision))
}

// Bytes returns the finished document.
func (b *Backend) Bytes() ([]byte, error) {
	if !b.done {
		return nil, errNotFinished
	}
	return b.buf.Bytes(), nil
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	data, err := b.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// SaveToFile writes the finished document to path.
func (b *Backend) SaveToFile(path string) error {
	data, err := b.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Width returns the width of the canvas.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the height of the canvas.
func (b *Backend) Height() int {
	return b.height
}

// cssColor formats c as an SVG rgb() color, with opacity dropped.
func cssColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgb(%d,%d,%d)", n.R, n.G, n.B)
}
