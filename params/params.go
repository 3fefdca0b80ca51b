// SPDX-License-Identifier: MIT
// Package: typestate/params
//
// params.go — builder-level overrides and the name/visibility record.
//
// Contract:
//   • BuilderParams keys (`finish_fn`, `builder_type`) accept `= identifier`
//     only; empty string means "no override".
//   • ItemParams dispatches on shape: name-value → shorthand (name only),
//     list → full form (`name`, `vis` keys), word → unsupported shape.
//   • All failures are span-anchored diagnostics with corrective messages.

package params

import (
	"errors"

	"github.com/buildgen/typestate/annot"
)

// ErrBadIdentifier indicates an override value that is not a plain
// identifier (e.g. `finish_fn = 2fast`).
// Usage: if errors.Is(err, ErrBadIdentifier) { /* fix the override */ }.
var ErrBadIdentifier = errors.New("params: override value is not an identifier")

// Declaration-level annotation keys.
const (
	keyFinishFn    = "finish_fn"
	keyBuilderType = "builder_type"
	keyName        = "name"
	keyVis         = "vis"
)

// BuilderParams carries the optional builder-level identifier overrides.
// Empty fields mean "keep the generated default".
type BuilderParams struct {
	// FinishFn renames the generated finishing method.
	FinishFn string
	// BuilderType renames the generated builder type.
	BuilderType string
}

// DecodeBuilderParams parses the declaration-level attribute stream into
// BuilderParams. Each recognized key must be spelled `key = identifier`.
// Complexity: O(len(attrs)) time.
func DecodeBuilderParams(attrs []annot.Attr) (BuilderParams, error) {
	rec, err := annot.Decode(attrs, []string{keyFinishFn, keyBuilderType})
	if err != nil {
		return BuilderParams{}, err
	}

	var bp BuilderParams
	if bp.FinishFn, err = identValue(rec, keyFinishFn); err != nil {
		return BuilderParams{}, err
	}
	if bp.BuilderType, err = identValue(rec, keyBuilderType); err != nil {
		return BuilderParams{}, err
	}

	return bp, nil
}

// ItemParams overrides the name and/or visibility of one generated item.
// Empty fields mean "keep the generated default".
type ItemParams struct {
	// Name is the identifier override.
	Name string
	// Vis is the visibility override, captured verbatim (e.g. "pub").
	Vis string
}

// ParseItemParams parses a name/visibility override, dispatching on the
// surface shape to pick shorthand vs. full parsing:
//
//   - `key = ident`                → shorthand: name override only.
//   - `key(name = …, vis = …)`    → full form; both keys optional.
//   - bare `key`                   → unsupported shape.
//
// Complexity: O(len(m.Items)) time.
func ParseItemParams(m annot.Meta) (ItemParams, error) {
	switch m.Shape {
	case annot.ShapeNameValue:
		// Shorthand: the single value is the name override.
		if !isIdent(m.Value) {
			return ItemParams{}, annot.Diagf(m.ValueSpan, ErrBadIdentifier,
				"`%s` must be a plain identifier, got `%s`", m.Key, m.Value)
		}
		return ItemParams{Name: m.Value}, nil

	case annot.ShapeList:
		attrs := make([]annot.Attr, len(m.Items))
		for i, item := range m.Items {
			attrs[i] = item
		}
		rec, err := annot.Decode(attrs, []string{keyName, keyVis}, annot.WithNamespace(m.Key))
		if err != nil {
			return ItemParams{}, err
		}

		var ip ItemParams
		if ip.Name, err = identValue(rec, keyName); err != nil {
			return ItemParams{}, err
		}
		if nv, ok := rec.Get(keyVis); ok {
			if err = requireNameValue(nv); err != nil {
				return ItemParams{}, err
			}
			// Visibility is captured verbatim; its grammar belongs to the
			// target language, not to this record.
			ip.Vis = nv.Value
		}

		return ip, nil

	default:
		return ItemParams{}, annot.Diagf(m.Span, annot.ErrUnsupportedShape,
			"unsupported format: %s; write `%s = <identifier>` or `%s(name = …, vis = …)`", m.Shape, m.Key, m.Key)
	}
}

// identValue extracts a `key = identifier` value from rec, or "" if absent.
func identValue(rec annot.Record, key string) (string, error) {
	m, ok := rec.Get(key)
	if !ok {
		return "", nil
	}
	if err := requireNameValue(m); err != nil {
		return "", err
	}
	if !isIdent(m.Value) {
		return "", annot.Diagf(m.ValueSpan, ErrBadIdentifier,
			"`%s` must be a plain identifier, got `%s`", key, m.Value)
	}

	return m.Value, nil
}

// requireNameValue rejects any shape other than `key = value`.
func requireNameValue(m annot.Meta) error {
	if m.Shape != annot.ShapeNameValue {
		return annot.Diagf(m.Span, annot.ErrUnsupportedShape,
			"unsupported format: %s; write `%s = <value>` instead", m.Shape, m.Key)
	}

	return nil
}

// isIdent reports whether s is a plain identifier:
// [A-Za-z_][A-Za-z0-9_]*.
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		ok := c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || (i > 0 && '0' <= c && c <= '9')
		if !ok {
			return false
		}
	}

	return true
}
