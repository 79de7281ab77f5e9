// Package chrome rasterizes recordings through headless Chrome.
//
// The recording is first written as SVG by the svg backend, loaded into
// a browser as a data URI and captured with a screenshot of the <svg>
// element. This gives browser-quality text shaping at the cost of
// requiring a Chrome or Chromium executable at runtime.
//
//	import _ "github.com/gogpu/molsketch/recording/backends/chrome"
//
//	backend, _ := recording.NewBackend("chrome-png")
//	_ = r.Playback(backend)
//	_ = backend.(recording.FileBackend).SaveToFile("molecule.png")
package chrome

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/gogpu/molsketch"
	"github.com/gogpu/molsketch/recording"
	"github.com/gogpu/molsketch/recording/backends/svg"
)

func init() {
	recording.Register("chrome-png", func() recording.Backend {
		return NewBackend(FormatPNG)
	})
	recording.Register("chrome-jpeg", func() recording.Backend {
		return NewBackend(FormatJPEG)
	})
}

// Format is the image encoding of the screenshot.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// DefaultTimeout bounds a single browser run.
const DefaultTimeout = 30 * time.Second

// jpegQuality is used when re-encoding the PNG screenshot.
const jpegQuality = 90

var errNoImage = errors.New("chrome: no image rendered")

// Backend renders through the svg backend and rasterizes the result in
// headless Chrome during End.
type Backend struct {
	*svg.Backend

	format    Format
	timeout   time.Duration
	allocOpts []chromedp.ExecAllocatorOption
	image     []byte
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a Chrome backend producing images in format.
func NewBackend(format Format) *Backend {
	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	return &Backend{
		Backend:   svg.NewBackend(),
		format:    format,
		timeout:   DefaultTimeout,
		allocOpts: opts,
	}
}

// SetTimeout changes the time budget of the browser run.
func (b *Backend) SetTimeout(d time.Duration) {
	if d > 0 {
		b.timeout = d
	}
}

// SetExecPath points the backend at a specific browser executable.
func (b *Backend) SetExecPath(path string) {
	b.allocOpts = append(b.allocOpts, chromedp.ExecPath(path))
}

// End finishes the SVG document and rasterizes it.
func (b *Backend) End() error {
	if err := b.Backend.End(); err != nil {
		return err
	}
	doc, err := b.Backend.Bytes()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	shot, err := b.screenshot(ctx, doc)
	if err != nil {
		return err
	}
	b.image, err = encode(shot, b.format)
	return err
}

// screenshot loads doc in a fresh headless browser and captures the <svg>
// element as PNG.
func (b *Backend) screenshot(ctx context.Context, doc []byte) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, b.allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var buf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(DataURI(doc)),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &buf, chromedp.ByQuery),
	}

	molsketch.Logger().Debug("chrome: running screenshot tasks", "bytes", len(doc))
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return nil, fmt.Errorf("chrome: chromedp execution failed: %w", err)
	}
	if len(buf) == 0 {
		return nil, errNoImage
	}
	return buf, nil
}

// DataURI embeds an SVG document in a base64 data URI.
func DataURI(doc []byte) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(doc)
}

// encode converts a PNG screenshot to format.
func encode(shot []byte, format Format) ([]byte, error) {
	switch format {
	case FormatPNG:
		return shot, nil
	case FormatJPEG:
		img, err := png.Decode(bytes.NewReader(shot))
		if err != nil {
			return nil, fmt.Errorf("chrome: decode screenshot: %w", err)
		}
		var out bytes.Buffer
		if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("chrome: encode jpeg: %w", err)
		}
		return out.Bytes(), nil
	}
	return nil, fmt.Errorf("chrome: unsupported image format %q", format)
}

// WriteTo writes the rasterized image to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if len(b.image) == 0 {
		return 0, errNoImage
	}
	n, err := w.Write(b.image)
	return int64(n), err
}

// SaveToFile writes the rasterized image to path.
func (b *Backend) SaveToFile(path string) error {
	if len(b.image) == 0 {
		return errNoImage
	}
	return os.WriteFile(path, b.image, 0o644)
}
