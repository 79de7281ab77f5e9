// Package recording provides a command-based drawing surface for molsketch.
//
// The Recorder captures the drawing calls a molsketch.Renderer makes as
// typed commands. The resulting Recording can be inspected (Lines, Texts,
// Count), cropped to its content (Fit) and played back to any Backend.
//
// # Architecture
//
//   - Recorder: a molsketch.Surface that records commands
//   - Recording: an immutable command list with Playback
//   - Backend: renders commands to a specific output format
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	if err := molsketch.Render(rec, m); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/molsketch/recording/backends/svg"
//
//	b, _ := recording.NewBackend("svg")
//	_ = r.Playback(b)
//	_ = b.(recording.FileBackend).SaveToFile("molecule.svg")
//
// # Backend Registration
//
// Backends register themselves in init() with Register, following the
// database/sql driver pattern. Built-in backends:
//
//   - png: fogleman/gg raster (recording/backends/raster)
//   - svg: ajstarks/svgo (recording/backends/svg)
//   - chrome-png, chrome-jpeg: SVG rasterized by headless Chrome
//     (recording/backends/chrome)
package recording
