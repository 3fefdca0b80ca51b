// SPDX-License-Identifier: MIT
// Package: typestate/field
//
// classify.go — required-vs-optional classification.
//
// Rule order (the FIRST matching rule decides):
//   1. `required` override present  → not optional, regardless of type.
//   2. Option-wrapper declared type → optional; representative type is the
//      INNER type parameter (the wrapper is stripped).
//   3. bool declared type, OR a `default` annotation present → optional;
//      representative type is the declared type UNMODIFIED (not stripped).
//   4. otherwise → required, no representative type.
//
// The strip-vs-keep distinction between rules 2 and 3 determines what the
// generated setter's value parameter takes; both rules present as
// "optional" to the required/optional tracking.

package field

import "github.com/buildgen/typestate/tyexpr"

// AsOptional classifies the member. It returns the representative type and
// true when the member is optional, or the zero Type and false when the
// member is required. Pure and idempotent: same Field, same answer.
// Complexity: O(1) time.
func (f *Field) AsOptional() (tyexpr.Type, bool) {
	// The user override takes the wheel entirely.
	if f.Params.Required != nil {
		return tyexpr.Type{}, false
	}

	if inner, ok := f.Type.OptionParam(); ok {
		return inner, true
	}

	if f.Type.IsBool() || f.Params.Default != nil {
		return f.Type, true
	}

	return tyexpr.Type{}, false
}

// IsRequired reports the inverse of AsOptional's second result; required
// members must reach their Set state before the build can finish.
// Complexity: O(1) time.
func (f *Field) IsRequired() bool {
	_, optional := f.AsOptional()
	return !optional
}
