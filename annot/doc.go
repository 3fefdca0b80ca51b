// Package annot models the annotation mini-language attached to builder
// members and declarations, and provides the shared diagnostic substrate
// for every other package in this module.
//
// The package offers the following key components:
//
//   - Surface syntax model:
//     – Attr:       one attached entry — either a Doc fragment or a Meta.
//     – Doc:        a documentation-comment fragment, captured verbatim.
//     – Meta:       a keyed annotation in one of three shapes (Shape).
//     – Shape:      ShapeWord (`key`), ShapeNameValue (`key = expr`),
//     ShapeList (`key(…)`).
//     – Span:       a half-open source range anchoring diagnostics.
//   - Parsing primitives:
//     – ParseStrictBool:   the two-spelling boolean (`key` / `key = false`).
//     – ParseOptionalExpr: bare marker vs. `= expr`, list rejected.
//     – Decode:            "parse recognized keys, reject unknown keys"
//     decoder with deterministic last-error-wins absent-field semantics.
//   - Documentation checks:
//     – DocsOf:              doc fragments in original order.
//     – RejectSelfReferences: no link back to the enclosing declaration.
//   - Diagnostics:
//     – Diagnostic: span + corrective message + sentinel class, usable with
//     errors.Is / errors.As.
//
// Guarantees:
//
//   - Pure syntax-to-value mapping: no side effects beyond returned values.
//   - Exactly one canonical spelling for "true" (ErrRedundantTrueLiteral
//     keeps the surface unambiguous).
//   - Every parse and validation step threads a Span; no diagnostic is
//     emitted without an anchor.
//
// See individual function documentation for detailed contracts and the
// exact surface forms accepted by each primitive.
package annot
