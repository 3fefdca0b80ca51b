// SPDX-License-Identifier: MIT
// Package: typestate/annot
//
// errors.go — sentinel errors and the Diagnostic value for the annotation
// substrate.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Every user-facing failure is a *Diagnostic wrapping its sentinel, so
//     the span and the corrective message travel with the class.
//   • Messages are corrective instructions (what to remove/change), never a
//     bare restatement of the failure.

package annot

import (
	"errors"
	"fmt"
)

// ErrUnsupportedShape indicates an annotation was written in a surface form
// its key does not accept (e.g. `default(…)` list syntax).
// Usage: if errors.Is(err, ErrUnsupportedShape) { /* fix the spelling */ }.
var ErrUnsupportedShape = errors.New("annot: unsupported annotation shape")

// ErrRedundantTrueLiteral indicates a strict-boolean annotation spelled with
// an explicit `= true`; the bare marker is the only canonical "true".
// Usage: if errors.Is(err, ErrRedundantTrueLiteral) { /* drop `= true` */ }.
var ErrRedundantTrueLiteral = errors.New("annot: redundant `= true` literal")

// ErrBadBoolLiteral indicates a strict-boolean annotation assigned a value
// that is neither `true` nor `false`.
// Usage: if errors.Is(err, ErrBadBoolLiteral) { /* fix the literal */ }.
var ErrBadBoolLiteral = errors.New("annot: invalid boolean literal")

// ErrUnknownKey indicates an annotation key outside the recognized set for
// the scope being decoded.
// Usage: if errors.Is(err, ErrUnknownKey) { /* remove or rename the key */ }.
var ErrUnknownKey = errors.New("annot: unknown annotation key")

// ErrDuplicateKey indicates the same annotation key was written twice on one
// member or declaration.
// Usage: if errors.Is(err, ErrDuplicateKey) { /* keep a single spelling */ }.
var ErrDuplicateKey = errors.New("annot: duplicate annotation key")

// ErrSelfReferentialDoc indicates a documentation fragment links back to the
// declaration it documents.
// Usage: if errors.Is(err, ErrSelfReferentialDoc) { /* drop the link */ }.
var ErrSelfReferentialDoc = errors.New("annot: self-referential documentation link")

// Diagnostic pairs a corrective message with the Span of the offending
// annotation token and the sentinel classifying the failure. It is the one
// error shape every parse/validate step in this module returns, so position
// propagation is uniform rather than per call site.
type Diagnostic struct {
	// Span anchors the diagnostic at the offending token.
	Span Span
	// Msg is the human-readable corrective instruction.
	Msg string
	// Err is the sentinel class; surfaced through Unwrap for errors.Is.
	Err error
}

// Error renders "span: message". Complexity: O(len(Msg)).
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Span, d.Msg)
}

// Unwrap exposes the sentinel class to errors.Is / errors.As chains.
func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// Diagf builds a *Diagnostic wrapping the given sentinel with a formatted
// corrective message anchored at span.
// Complexity: O(len(format) + Σlen(args)).
func Diagf(span Span, sentinel error, format string, args ...interface{}) error {
	return &Diagnostic{Span: span, Msg: fmt.Sprintf(format, args...), Err: sentinel}
}

// AsDiagnostic extracts the *Diagnostic from an error chain, if any.
// Tests and callers use it to assert anchors without string matching.
func AsDiagnostic(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	ok := errors.As(err, &d)
	return d, ok
}
