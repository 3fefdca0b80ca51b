// SPDX-License-Identifier: MIT
// Package: typestate/field
//
// field.go — per-member construction: docs, parameter record, state-type
// name, validation.
//
// Contract:
//   • New(origin, attrs, name, typ) → *Field | diagnostic.
//   • Steps run in order: extract docs → decode parameter record → derive
//     state-type identifier → validate. The first failure aborts the member
//     (fail-fast), leaving siblings untouched.
//   • The returned Field is immutable; every later computation on it is a
//     pure function.

package field

import (
	"github.com/buildgen/typestate/annot"
	"github.com/buildgen/typestate/tyexpr"
)

// New constructs and validates the Field for one member.
//
// Inputs:
//   - origin: where the declaration came from (diagnostic wording only).
//   - attrs:  the member's raw attribute stream (docs + annotations).
//   - name:   the member's identifier, as written.
//   - typ:    the member's full declared type.
//
// Returns:
//   - *Field on success, or
//   - the first violated rule as an *annot.Diagnostic (fail-fast; at most
//     one diagnostic per member, anchored at the offending annotation).
//
// Complexity: O(len(attrs) + len(name)) time.
func New(origin Origin, attrs []annot.Attr, name string, typ tyexpr.Type) (*Field, error) {
	docs := annot.DocsOf(attrs)

	params, err := parseParams(attrs)
	if err != nil {
		return nil, err
	}

	f := &Field{
		Origin:        origin,
		Name:          name,
		Docs:          docs,
		Type:          typ,
		StateTypeName: PascalCase(name),
		Params:        params,
	}

	if err = f.validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// parseParams decodes the member's recognized annotation keys into Params.
// Unknown and duplicate keys are rejected by the underlying decoder.
func parseParams(attrs []annot.Attr) (Params, error) {
	rec, err := annot.Decode(attrs, []string{keyInto, keyDefault, keyRequired})
	if err != nil {
		return Params{}, err
	}

	var params Params

	if m, ok := rec.Get(keyInto); ok {
		sb, err := annot.ParseStrictBool(m)
		if err != nil {
			return Params{}, err
		}
		params.Into = &sb
	}

	if m, ok := rec.Get(keyDefault); ok {
		expr, err := annot.ParseOptionalExpr(m)
		if err != nil {
			return Params{}, err
		}
		params.Default = &Default{
			Expr:     expr.Expr,
			HasExpr:  expr.HasExpr,
			Span:     expr.Span,
			ExprSpan: expr.ExprSpan,
		}
	}

	if m, ok := rec.Get(keyRequired); ok {
		// `required` is a bare marker and nothing else.
		if m.Shape != annot.ShapeWord {
			return Params{}, annot.Diagf(m.Span, annot.ErrUnsupportedShape,
				"unsupported format: %s; `%s` takes no value, write the bare `%s` marker", m.Shape, keyRequired, keyRequired)
		}
		params.Required = &annot.Flag{Span: m.Span}
	}

	return params, nil
}
