// SPDX-License-Identifier: MIT
// Package: typestate/field
//
// typestate.go — derivation of the three type-level artifacts that drive
// the generated builder's compile-time state machine.
//
// Per member the generator receives:
//   • unset state type      — what the builder slot carries BEFORE the
//     member is set: Optional<rep> or Required<declared>.
//   • set state type param  — what the setter logically assigns into the
//     slot: Option<rep> or the declared type verbatim.
//   • set state type        — what the slot carries AFTER the member is
//     set: Set<set-state-type-param>.
//
// The finishing operation is only well-typed when every Required<…> slot
// reached Set<…>; Optional<…> slots may remain unset at finish time. These
// three artifacts are this package's entire contribution to the generator:
// no program text is formatted here, only type-level decisions.

package field

import "github.com/buildgen/typestate/tyexpr"

// Marker type names spliced into the generated typestate trait.
const (
	// MarkerOptional tags an unset slot whose member may stay unset.
	MarkerOptional = "Optional"
	// MarkerRequired tags an unset slot whose member must be set.
	MarkerRequired = "Required"
	// MarkerSet tags a slot whose member has been set.
	MarkerSet = "Set"
)

// UnsetStateType computes the marker the builder's state carries before the
// member is set: Optional over the representative type when the member is
// optional, Required over the full declared type otherwise.
// Complexity: O(1) time.
func (f *Field) UnsetStateType() tyexpr.Type {
	if rep, ok := f.AsOptional(); ok {
		return tyexpr.Generic(MarkerOptional, rep)
	}

	return tyexpr.Generic(MarkerRequired, f.Type)
}

// SetStateTypeParam computes the type the setter method logically assigns
// into the slot: Option over the representative type when optional, the
// declared type verbatim otherwise.
// Complexity: O(1) time.
func (f *Field) SetStateTypeParam() tyexpr.Type {
	if rep, ok := f.AsOptional(); ok {
		return tyexpr.Generic(tyexpr.OptionName, rep)
	}

	return f.Type
}

// SetStateType computes the marker the builder's state carries after the
// member is set: Set over SetStateTypeParam.
// Complexity: O(1) time.
func (f *Field) SetStateType() tyexpr.Type {
	return tyexpr.Generic(MarkerSet, f.SetStateTypeParam())
}
