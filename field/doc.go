// Package field is the decision engine of the module: given a member's
// declared type and its parsed annotations, it computes required-vs-optional
// classification, validates the mutual-exclusivity rules, and derives the
// three typestate artifacts the surrounding generator splices into the
// emitted builder.
//
// The package offers the following key components:
//
//   - Construction and validation:
//     – New:         per-member entry point; extracts docs, decodes the
//     parameter record, derives the state-type name, and
//     runs the fail-fast validation chain.
//     – Origin:      FromCallSignature / FromAggregateDefinition, used only
//     for diagnostic wording ("function argument" vs
//     "struct field").
//     – Params:      the parsed per-member annotation record
//     (into / default / required).
//   - Classification:
//     – AsOptional:  required override → Option wrapper (stripped) →
//     bool-or-default (kept) → required; the representative
//     type drives every derived artifact.
//   - Typestate derivation:
//     – UnsetStateType:     Optional<rep> or Required<declared>.
//     – SetStateTypeParam:  Option<rep> or the declared type verbatim.
//     – SetStateType:       Set<set-parameter-type>.
//   - Identifier derivation:
//     – PascalCase:  stateless member-name → state-type-name transform.
//
// Guarantees:
//
//   - Fail-fast validation: at most ONE diagnostic per member, anchored at
//     the specific offending annotation, with a corrective message.
//   - Deterministic check order: self-referential docs → required-on-Option
//     → required-on-non-bool → required/default conflict → redundant default.
//   - Immutability: a Field never mutates after New; classification and
//     derivation are pure and idempotent.
//   - Member independence: one member's failure never affects a sibling.
//
// Strip-vs-keep is load-bearing: an Option-wrapped member's representative
// type is the INNER type (the wrapper is stripped), while a bool-or-default
// member keeps its declared type unmodified. Both present as "optional" to
// the builder's tracking, but the generated setter's value parameter differs.
package field
