// SPDX-License-Identifier: MIT
// Package: typestate/tyexpr
//
// types.go — the Type tree, structural probes, and the package sentinel.
//
// Design:
//   • Type is a plain value; copying is cheap and there is no hidden state.
//   • Probes are pure; the classifier calls them repeatedly and expects the
//     same answer every time.
//   • OptionName / BoolName are the single source of truth for the two
//     specially-treated names; no other file spells them out.

package tyexpr

import (
	"errors"
	"strings"
)

// ErrSyntax indicates malformed type-expression text passed to Parse.
// Usage: if errors.Is(err, ErrSyntax) { /* report the declared type */ }.
var ErrSyntax = errors.New("tyexpr: malformed type expression")

// OptionName is the optional-wrapper type name: a type that already encodes
// "may be absent".
const OptionName = "Option"

// BoolName is the two-valued type name, treated specially because "unset"
// naturally defaults to one of its values.
const BoolName = "bool"

// Type is one node of a declared-type tree: a name plus type arguments.
// The zero Type (empty Name) is "no type" and is only returned alongside
// ok=false results.
type Type struct {
	// Name is the head identifier, e.g. "Option", "u32", "bool".
	Name string
	// Args are the generic arguments, in source order; nil when none.
	Args []Type
}

// Generic builds a Type with the given head name and arguments.
// Complexity: O(1) time, O(len(args)) space.
func Generic(name string, args ...Type) Type {
	return Type{Name: name, Args: args}
}

// Named builds an argument-less Type.
// Complexity: O(1) time, O(1) space.
func Named(name string) Type {
	return Type{Name: name}
}

// IsZero reports whether t is the zero "no type" value.
func (t Type) IsZero() bool {
	return t.Name == "" && t.Args == nil
}

// IsOption reports whether t is the optional-wrapper type: named Option
// with exactly one type argument.
// Complexity: O(1) time.
func (t Type) IsOption() bool {
	return t.Name == OptionName && len(t.Args) == 1
}

// OptionParam returns the wrapper's inner type parameter when t is the
// optional-wrapper type ("strip the wrapper"), and ok=false otherwise.
// Complexity: O(1) time.
func (t Type) OptionParam() (Type, bool) {
	if !t.IsOption() {
		return Type{}, false
	}
	return t.Args[0], true
}

// IsBool reports whether t is the two-valued type: named bool with no
// arguments.
// Complexity: O(1) time.
func (t Type) IsBool() bool {
	return t.Name == BoolName && len(t.Args) == 0
}

// Equal reports deep structural equality of two type trees.
// Complexity: O(nodes) time.
func (t Type) Equal(o Type) bool {
	if t.Name != o.Name || len(t.Args) != len(o.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}

	return true
}

// String renders the canonical form: "Name" or "Name<Arg, Arg>".
// Complexity: O(nodes) time, O(nodes) space.
func (t Type) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}

	var sb strings.Builder
	sb.WriteString(t.Name)
	sb.WriteByte('<')
	for i, arg := range t.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
	sb.WriteByte('>')

	return sb.String()
}
