// Package text measures atom labels with real font shaping.
//
// Layout in molsketch positions labels with a font-size heuristic and never
// needs glyph metrics. Measuring only matters when a finished drawing is
// cropped to its content: recording.Recording.Fit accepts a Measurer, and
// the one provided here shapes labels with go-text/typesetting's HarfBuzz
// port so that "Cl" or "HO" get their true advance.
//
// # Example
//
//	m, err := text.NewMeasurer(nil) // Go Regular
//	if err != nil {
//	    return err
//	}
//	fitted := r.Fit(10, m)
package text
