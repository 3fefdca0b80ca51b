// SPDX-License-Identifier: MIT
// Package: typestate/field
//
// validate.go — the ordered fail-fast validation chain.
//
// Contract (strict):
//   • Checks run in the documented order (see errors.go) and stop at the
//     FIRST failure; at most one diagnostic per member.
//   • Each check is an independent predicate returning nil or a diagnostic
//     anchored at the specific offending annotation — no accumulated state,
//     no ad-hoc control-flow escapes.
//   • Re-validating an already-valid Field is a no-op.

package field

import (
	"github.com/buildgen/typestate/annot"
	"github.com/buildgen/typestate/tyexpr"
)

// validate runs the rule chain against the constructed record.
// Complexity: O(Σlen(docs)) time (dominated by the doc scan), O(1) space.
func (f *Field) validate() error {
	if err := annot.RejectSelfReferences(f.Docs, f.StateTypeName); err != nil {
		return err
	}

	if err := f.checkRequired(); err != nil {
		return err
	}

	return f.checkDefault()
}

// checkRequired enforces the three `required` rules, in order:
// wrapper conflict, bool-only rule, required/default conflict.
func (f *Field) checkRequired() error {
	required := f.Params.Required
	if required == nil {
		return nil
	}

	if f.Type.IsOption() {
		return annot.Diagf(required.Span, ErrRequiredOnOptionWrapper,
			"`%s` and `required` are mutually exclusive: `%s` members are optional by definition and this can't be changed; remove `required`",
			tyexpr.OptionName, tyexpr.OptionName)
	}

	if !f.Type.IsBool() {
		return annot.Diagf(required.Span, ErrRequiredOnNonBool,
			"`required` can only be applied to `%s` members; all other types except `%s<T>` are required by default already, so remove `required`",
			tyexpr.BoolName, tyexpr.OptionName)
	}

	if f.Params.Default != nil {
		return annot.Diagf(required.Span, ErrRequiredDefaultConflict,
			"`required` and `default` are mutually exclusive; remove one of them")
	}

	return nil
}

// checkDefault rejects `default` as redundant on types that already imply
// default-bearing optional treatment. The message names the inferred type.
func (f *Field) checkDefault() error {
	def := f.Params.Default
	if def == nil {
		return nil
	}

	var implied string
	switch {
	case f.Type.IsOption():
		implied = tyexpr.OptionName
	case f.Type.IsBool():
		implied = tyexpr.BoolName
	default:
		return nil
	}

	return annot.Diagf(def.Span, ErrRedundantDefault,
		"type `%s` already implies `default`, so the explicit `default` annotation is redundant; remove it", implied)
}
