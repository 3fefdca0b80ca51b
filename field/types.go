// SPDX-License-Identifier: MIT
// Package: typestate/field
//
// types.go — the Field record, its parameter record, and the Origin tag.
//
// Design:
//   • Field is constructed once per declaration site at translation time,
//     validated immediately inside New, and consumed read-only afterwards.
//     It has no runtime existence and no mutation after construction.
//   • Origin is purely descriptive; it only ever changes diagnostic wording.

package field

import (
	"fmt"

	"github.com/buildgen/typestate/annot"
	"github.com/buildgen/typestate/tyexpr"
)

// Annotation keys recognized on a member. The set is fixed and enumerable;
// the decoder rejects anything else.
const (
	keyInto     = "into"
	keyDefault  = "default"
	keyRequired = "required"
)

// Origin tags where a member's declaration came from.
type Origin uint8

const (
	// FromCallSignature marks a member derived from a function argument.
	FromCallSignature Origin = iota
	// FromAggregateDefinition marks a member derived from a struct field.
	FromAggregateDefinition
)

// String renders the diagnostic wording for the origin.
func (o Origin) String() string {
	switch o {
	case FromCallSignature:
		return "function argument"
	case FromAggregateDefinition:
		return "struct field"
	default:
		return fmt.Sprintf("Origin(%d)", uint8(o))
	}
}

// Default is the parsed `default` annotation: presence with no expression
// means "use the type's intrinsic default"; presence with an expression
// means "use this expression when unset". Absence is a nil *Default.
type Default struct {
	// Expr is the verbatim default expression; meaningful only if HasExpr.
	Expr string
	// HasExpr distinguishes `default = expr` from the bare marker.
	HasExpr bool
	// Span locates the whole annotation for diagnostics.
	Span annot.Span
	// ExprSpan locates the expression text; zero when HasExpr is false.
	ExprSpan annot.Span
}

// Params is the per-member annotation record configured by the user.
type Params struct {
	// Into, when present, overrides the generator's decision on whether the
	// setter accepts a convertible-into value rather than the exact type.
	// Only its strict-boolean syntax is validated here; the conversion
	// behavior itself belongs to the generator.
	Into *annot.StrictBool

	// Default, when present, declares optional-with-default treatment.
	Default *Default

	// Required, when present, forces required classification no matter what
	// default treatment the type would imply.
	Required *annot.Flag
}

// Field represents one builder-settable unit derived from a function
// argument or struct field. Immutable after New.
type Field struct {
	// Origin says which syntax the member came from (diagnostics only).
	Origin Origin

	// Name is the identifier used for the generated setter and the builder
	// slot. Not guaranteed to follow any casing convention.
	Name string

	// Docs are the documentation fragments from the member's declaration,
	// in original order, forwarded to the generated setter.
	Docs []annot.Doc

	// Type is the member's full declared type.
	Type tyexpr.Type

	// StateTypeName names the per-member slot in the generated typestate
	// trait; it is the pascal-cased form of Name.
	StateTypeName string

	// Params is the parsed annotation record.
	Params Params
}
