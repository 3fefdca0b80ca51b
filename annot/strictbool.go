// SPDX-License-Identifier: MIT
// Package: typestate/annot
//
// strictbool.go — the two-state boolean parsing primitive.
//
// Contract (strict):
//   • `key`          → true  (the ONLY spelling for true)
//   • `key = false`  → false
//   • `key = true`   → ErrRedundantTrueLiteral with a removal instruction
//   • any other form → ErrUnsupportedShape / ErrBadBoolLiteral
//
// Rationale lives in the diagnostic text itself: keeping exactly one
// canonical spelling for "true" makes the surface unambiguous.

package annot

// ParseStrictBool maps a Meta onto a StrictBool per the strict contract
// above. Pure syntax-to-value mapping; the only side effect is the returned
// diagnostic on illegal spellings.
//
// Returns:
//   - StrictBool with the parsed value and the annotation's span, or
//   - *Diagnostic anchored at the offending token.
//
// Complexity: O(1) time, O(1) space.
func ParseStrictBool(m Meta) (StrictBool, error) {
	switch m.Shape {
	case ShapeWord:
		// Bare marker is the canonical "true".
		return StrictBool{Value: true, Span: m.Span}, nil
	case ShapeNameValue:
		switch m.Value {
		case "false":
			return StrictBool{Value: false, Span: m.Span}, nil
		case "true":
			return StrictBool{}, Diagf(m.ValueSpan, ErrRedundantTrueLiteral,
				"no need to write `= true`; mentioning `%s` is enough to set it to `true`, so remove the `= true` part", m.Key)
		default:
			return StrictBool{}, Diagf(m.ValueSpan, ErrBadBoolLiteral,
				"`%s` accepts only the bare marker or `= false`, got `= %s`", m.Key, m.Value)
		}
	default:
		// ShapeList and any future shape: not a boolean surface form.
		return StrictBool{}, Diagf(m.Span, ErrUnsupportedShape,
			"unsupported format: %s; write `%s` or `%s = false` instead", m.Shape, m.Key, m.Key)
	}
}
