// SPDX-License-Identifier: MIT
// Package: typestate/field
//
// errors.go — sentinel errors for the classification rules.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Every violation surfaces as an annot.Diagnostic wrapping its sentinel,
//     anchored at the offending annotation, phrased as a corrective
//     instruction.
//   • Validation is fail-fast: the FIRST violated rule wins; later checks on
//     the same member are skipped. Independent members are unaffected.
//
// Check order (fixed; tie-break guidance for multiply-invalid members):
//   • ErrSelfReferentialDoc (via annot)  — doc fragments first.
//   • ErrRequiredOnOptionWrapper         — wrapper conflicts next.
//   • ErrRequiredOnNonBool               — then the bool-only rule.
//   • ErrRequiredDefaultConflict         — then cross-annotation conflicts.
//   • ErrRedundantDefault                — redundancy last.

package field

import "errors"

// ErrRedundantDefault indicates `default` on a member whose type already
// implies default-bearing optional treatment (Option wrapper or bool).
// Usage: if errors.Is(err, ErrRedundantDefault) { /* remove `default` */ }.
var ErrRedundantDefault = errors.New("field: redundant default annotation")

// ErrRequiredOnOptionWrapper indicates `required` on an Option-typed member;
// wrapper types are optional by construction and cannot be forced required.
// Usage: if errors.Is(err, ErrRequiredOnOptionWrapper) { /* remove it */ }.
var ErrRequiredOnOptionWrapper = errors.New("field: required on optional-wrapper type")

// ErrRequiredOnNonBool indicates `required` on a member that is neither bool
// nor Option; every other type is required by default already.
// Usage: if errors.Is(err, ErrRequiredOnNonBool) { /* remove it */ }.
var ErrRequiredOnNonBool = errors.New("field: required on non-boolean type")

// ErrRequiredDefaultConflict indicates `required` and `default` on the same
// member; the two annotations are mutually exclusive.
// Usage: if errors.Is(err, ErrRequiredDefaultConflict) { /* keep one */ }.
var ErrRequiredDefaultConflict = errors.New("field: required and default are mutually exclusive")
