package molsketch

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three rendering failure classes.
var (
	// ErrMalformedMolecule reports a violated structural invariant.
	// It aborts the render before anything is drawn.
	ErrMalformedMolecule = errors.New("molsketch: malformed molecule")

	// ErrUnsupportedFanOut reports a (count, coreBonds) pair with no
	// fan-out rule. The substituents are drawn with the single-substituent
	// default and rendering continues.
	ErrUnsupportedFanOut = errors.New("molsketch: unsupported fan-out configuration")

	// ErrUnknownSubstituent reports a substituent type with no renderer.
	// An error marker is drawn in its place and rendering continues.
	ErrUnknownSubstituent = errors.New("molsketch: unknown substituent kind")
)

// MalformedMoleculeError describes why a molecule was rejected.
type MalformedMoleculeError struct {
	Reason string
}

func malformed(reason string) *MalformedMoleculeError {
	return &MalformedMoleculeError{Reason: reason}
}

// Error implements error.
func (e *MalformedMoleculeError) Error() string {
	return ErrMalformedMolecule.Error() + ": " + e.Reason
}

// Unwrap returns ErrMalformedMolecule.
func (e *MalformedMoleculeError) Unwrap() error {
	return ErrMalformedMolecule
}

// Diagnostic is a recoverable rendering problem attached to one substituent
// group. Diagnostics are reported through WithDiagnostics and the logger;
// they never fail a render.
type Diagnostic struct {
	// Err is ErrUnsupportedFanOut or ErrUnknownSubstituent.
	Err error
	// Atom is the backbone index the problem occurred on.
	Atom int
	// Index is the substituent position within the atom, or -1 for the whole group.
	Index int
	// Detail is a human-readable description.
	Detail string
}

// Error implements error.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%v (atom %d, substituent %d): %s", d.Err, d.Atom, d.Index, d.Detail)
}

// Unwrap returns the sentinel error of the diagnostic.
func (d Diagnostic) Unwrap() error {
	return d.Err
}
