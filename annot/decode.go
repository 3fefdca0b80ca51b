// SPDX-License-Identifier: MIT
// Package: typestate/annot
//
// decode.go — generic known-keys decoder and the optional-expression parser.
//
// Contract (strict):
//   • Recognized keys are enumerated ahead of time by the caller; unknown
//     keys are rejected (ErrUnknownKey), duplicates are rejected
//     (ErrDuplicateKey), absent keys simply stay absent.
//   • Doc fragments interleaved with annotations are skipped by Decode and
//     collected, in original order, by DocsOf.
//   • Options are functional (DecodeOption); defaults are deterministic and
//     applied before any option runs, last option wins.

package annot

import "strings"

// decodeConfig aggregates the decoder knobs.
// It is passed by value internally (immutable to callers).
type decodeConfig struct {
	// namespace names the annotation scope in diagnostics, e.g. "builder".
	namespace string
}

// defaultNamespace is used in unknown-key diagnostics when no
// WithNamespace option is given.
const defaultNamespace = "builder"

// DecodeOption customizes Decode behavior by mutating a decodeConfig before
// decoding begins. Applying N options costs O(N) time, O(1) space.
type DecodeOption func(*decodeConfig)

// WithNamespace sets the scope name used in unknown-key diagnostics
// ("unknown `<ns>` annotation …"). Panics on the empty string to surface
// programmer error early.
// Complexity: O(1) time, O(1) space.
func WithNamespace(ns string) DecodeOption {
	if ns == "" {
		panic("annot: WithNamespace(\"\")")
	}
	return func(c *decodeConfig) {
		c.namespace = ns
	}
}

// Record is the result of Decode: recognized keys mapped to the Meta they
// were written as. Absent keys are absent from the record.
type Record struct {
	metas map[string]Meta
}

// Get returns the Meta written for key and whether it was present.
// Complexity: O(1) expected.
func (r Record) Get(key string) (Meta, bool) {
	m, ok := r.metas[key]
	return m, ok
}

// Len reports how many recognized keys were present.
func (r Record) Len() int {
	return len(r.metas)
}

// Decode walks the ordered attribute stream and collects every Meta whose
// key is in keys. Doc fragments are ignored here (see DocsOf). The first
// unknown or duplicate key aborts decoding with a *Diagnostic anchored at
// that annotation.
//
// Complexity: O(len(attrs) + len(keys)) time, O(len(keys)) space.
func Decode(attrs []Attr, keys []string, opts ...DecodeOption) (Record, error) {
	// Deterministic defaults first; options apply last-wins.
	cfg := decodeConfig{namespace: defaultNamespace}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Enumerable-ahead-of-time key set; no reflection needed.
	known := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		known[k] = struct{}{}
	}

	rec := Record{metas: make(map[string]Meta, len(keys))}
	for _, attr := range attrs {
		m, ok := attr.(Meta)
		if !ok {
			// Doc fragment; collected by DocsOf, not here.
			continue
		}
		if _, ok = known[m.Key]; !ok {
			return Record{}, Diagf(m.Span, ErrUnknownKey,
				"unknown `%s` annotation `%s`; expected one of: %s", cfg.namespace, m.Key, strings.Join(keys, ", "))
		}
		if _, ok = rec.metas[m.Key]; ok {
			return Record{}, Diagf(m.Span, ErrDuplicateKey,
				"`%s` is specified twice; keep a single `%s` annotation", m.Key, m.Key)
		}
		rec.metas[m.Key] = m
	}

	return rec, nil
}

// DocsOf returns the documentation fragments of the attribute stream in
// their original order.
// Complexity: O(len(attrs)) time, O(#docs) space.
func DocsOf(attrs []Attr) []Doc {
	var docs []Doc
	for _, attr := range attrs {
		if d, ok := attr.(Doc); ok {
			docs = append(docs, d)
		}
	}

	return docs
}

// ParseOptionalExpr maps a `default`-style Meta onto an OptionalExpr:
//
//   - bare marker      → present, no expression (use the intrinsic default)
//   - `= <expression>` → present, expression captured verbatim with its span
//   - list form        → *Diagnostic wrapping ErrUnsupportedShape
//
// Complexity: O(1) time, O(1) space.
func ParseOptionalExpr(m Meta) (OptionalExpr, error) {
	switch m.Shape {
	case ShapeWord:
		return OptionalExpr{HasExpr: false, Span: m.Span}, nil
	case ShapeNameValue:
		return OptionalExpr{Expr: m.Value, HasExpr: true, Span: m.Span, ExprSpan: m.ValueSpan}, nil
	default:
		return OptionalExpr{}, Diagf(m.Span, ErrUnsupportedShape,
			"unsupported format: %s; write `%s` or `%s = <expression>` instead", m.Shape, m.Key, m.Key)
	}
}
