// SPDX-License-Identifier: MIT
// Package: typestate/annot
//
// types.go — surface syntax value types: Span, Attr, Doc, Meta, Shape, Flag.
//
// Design:
//   • All values are immutable after construction and safe to copy.
//   • Every syntax node carries the Span of the source text it came from;
//     diagnostics anywhere in the module anchor on these spans.
//   • Meta covers the three legal surface shapes of the mini-language;
//     which shapes a given key accepts is decided by its parser, not here.

package annot

import "fmt"

// Span is a half-open [Start,End) byte range into the declaration's source.
// The zero Span is valid and means "no position recorded".
type Span struct {
	Start int // inclusive byte offset
	End   int // exclusive byte offset
}

// NewSpan builds a Span. End < Start indicates programmer error and panics.
// Complexity: O(1) time, O(1) space.
func NewSpan(start, end int) Span {
	if end < start {
		panic(fmt.Sprintf("annot: NewSpan(%d,%d): end < start", start, end))
	}
	return Span{Start: start, End: end}
}

// String renders the span as "[start,end)" for diagnostic text.
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Shape enumerates the three surface forms a Meta may take.
type Shape uint8

const (
	// ShapeWord is a bare marker: `required`.
	ShapeWord Shape = iota
	// ShapeNameValue is a value assignment: `default = 2 + 2`.
	ShapeNameValue
	// ShapeList is a parenthesized list: `setter(name = set, vis = pub)`.
	ShapeList
)

// String returns the human-readable shape name used in diagnostics.
func (s Shape) String() string {
	switch s {
	case ShapeWord:
		return "word"
	case ShapeNameValue:
		return "name-value"
	case ShapeList:
		return "list"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// Attr is one entry attached to a member or declaration: either a Doc
// fragment or a Meta annotation. The ordered []Attr preserves source order.
type Attr interface {
	// attr is a marker; only Doc and Meta satisfy Attr.
	attr()
}

// Doc is a documentation-comment fragment copied verbatim from the source.
type Doc struct {
	// Text is the fragment body, exactly as written (no trimming).
	Text string
	// Span locates the fragment in the declaration's source.
	Span Span
}

func (Doc) attr() {}

// Meta is one keyed annotation in one of the three Shape forms.
type Meta struct {
	// Key is the annotation name, e.g. "default".
	Key string
	// Shape is the surface form this annotation was written in.
	Shape Shape
	// Value is the right-hand side text for ShapeNameValue, verbatim.
	Value string
	// ValueSpan locates Value; zero for non-name-value shapes.
	ValueSpan Span
	// Items holds the nested entries for ShapeList; nil otherwise.
	Items []Meta
	// Span locates the whole annotation (key through closing token).
	Span Span
}

func (Meta) attr() {}

// Word constructs a bare-marker Meta: `key`.
// Complexity: O(1) time, O(1) space.
func Word(key string, span Span) Meta {
	return Meta{Key: key, Shape: ShapeWord, Span: span}
}

// NameValue constructs a value-assignment Meta: `key = value`.
// value is captured verbatim; valueSpan locates it for diagnostics.
// Complexity: O(1) time, O(1) space.
func NameValue(key, value string, span, valueSpan Span) Meta {
	return Meta{Key: key, Shape: ShapeNameValue, Value: value, Span: span, ValueSpan: valueSpan}
}

// List constructs a parenthesized-list Meta: `key(items…)`.
// Complexity: O(1) time, O(1) space (items are referenced, not copied).
func List(key string, items []Meta, span Span) Meta {
	return Meta{Key: key, Shape: ShapeList, Items: items, Span: span}
}

// Flag records the presence of a bare marker annotation and where it was
// written. A nil *Flag means the marker was absent.
type Flag struct {
	// Span locates the marker for diagnostics.
	Span Span
}

// StrictBool is the value of a strict-boolean annotation: a bare marker
// (true) or an explicit `= false`. See ParseStrictBool for the contract.
type StrictBool struct {
	// Value is the parsed boolean.
	Value bool
	// Span locates the originating annotation.
	Span Span
}

// OptionalExpr is the value of a `default`-style annotation: presence with
// no expression ("use the intrinsic default") or presence with a verbatim
// expression. Absence is represented by a nil *OptionalExpr at the caller.
type OptionalExpr struct {
	// Expr is the verbatim expression text; meaningful only when HasExpr.
	Expr string
	// HasExpr distinguishes `default = expr` (true) from bare `default`.
	HasExpr bool
	// Span locates the whole annotation.
	Span Span
	// ExprSpan locates the expression; zero when HasExpr is false.
	ExprSpan Span
}
