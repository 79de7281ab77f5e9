// Package molsketch draws skeletal structure diagrams of small organic
// molecules.
//
// # Overview
//
// A Molecule is a backbone of carbon atoms, either an open chain or a ring,
// where each atom carries zero or more substituents: carbonyl oxygens,
// hydroxyl groups, halogens and alkyl branches. A Renderer turns it into
// line and text primitives on a Surface: a zig-zag backbone, substituents
// fanned out around their atom, parallel lines for double bonds and
// element labels offset from bond ends.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/molsketch"
//	    "github.com/gogpu/molsketch/recording"
//	    "github.com/gogpu/molsketch/recording/backends/raster"
//	)
//
//	// 2-chloropropan-1-ol
//	m := molsketch.Linear(3)
//	m.Substituents[0] = []molsketch.Substituent{molsketch.Alcohol()}
//	m.Substituents[1] = []molsketch.Substituent{molsketch.Halogen("Cl")}
//
//	rec := recording.NewRecorder(400, 300)
//	if err := molsketch.Render(rec, m); err != nil {
//	    // malformed molecule
//	}
//
//	b := raster.NewBackend()
//	_ = rec.FinishRecording().Playback(b)
//	_ = b.SavePNG("propanol.png")
//
// # Coordinate System
//
// Standard screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, positive angles turn toward +Y
//
// # Errors
//
// Structural problems (ErrMalformedMolecule) abort a render before
// anything is drawn. Unknown substituent kinds (ErrUnknownSubstituent) and
// unsupported fan-outs (ErrUnsupportedFanOut) are drawn best-effort and
// reported through WithDiagnostics and the logger.
package molsketch
