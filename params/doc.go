// Package params parses the two declaration-level parameter records
// consumed by the surrounding generator: builder-level overrides
// (finishing-method name, builder type name) and the name/visibility
// override shorthand used on generated items.
//
// Both records are independent of per-member classification; they are
// decoded with the same known-keys contract as the member annotations
// (unknown keys rejected, duplicates rejected, absent fields stay absent)
// and the same span-anchored diagnostics.
//
// The name/visibility record dispatches on surface shape: a single
// value-assignment (`setter_name = with_id`) is the shorthand form and sets
// the name override only; a structured list (`setter_name(name = with_id,
// vis = pub)`) is the full form exposing both overrides.
package params
