// Package annot contains unit tests for the documentation self-reference
// check.
package annot

import (
	"errors"
	"testing"
)

// TestRejectSelfReferences covers the accepted and rejected link forms.
func TestRejectSelfReferences(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		self string
		bad  bool
	}{
		{name: "no links", text: "Sets the retry budget.", self: "RetryBudget", bad: false},
		{name: "link to another item", text: "See [Timeout] for pairing.", self: "RetryBudget", bad: false},
		{name: "Self link", text: "Returns [Self] for chaining.", self: "RetryBudget", bad: true},
		{name: "backticked Self link", text: "Returns [`Self`].", self: "RetryBudget", bad: true},
		{name: "own-name link", text: "See [RetryBudget] for details.", self: "RetryBudget", bad: true},
		{name: "backticked own-name link", text: "See [`RetryBudget`].", self: "RetryBudget", bad: true},
		{name: "empty self keeps Self patterns", text: "Returns [Self].", self: "", bad: true},
		{name: "empty self disables name patterns", text: "See [RetryBudget].", self: "", bad: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			span := NewSpan(7, 7+len(tc.text))
			err := RejectSelfReferences([]Doc{{Text: tc.text, Span: span}}, tc.self)
			if tc.bad {
				if !errors.Is(err, ErrSelfReferentialDoc) {
					t.Fatalf("expected ErrSelfReferentialDoc, got %v", err)
				}
				if d, _ := AsDiagnostic(err); d.Span != span {
					t.Errorf("expected anchor %v, got %v", span, d.Span)
				}
				return
			}
			if err != nil {
				t.Errorf("expected no diagnostic, got %v", err)
			}
		})
	}
}

// TestRejectSelfReferences_FirstFragmentWins verifies fragments are scanned
// in order and the first offender is reported.
func TestRejectSelfReferences_FirstFragmentWins(t *testing.T) {
	t.Parallel()

	docs := []Doc{
		{Text: "Fine fragment.", Span: NewSpan(0, 14)},
		{Text: "Bad [Self] link.", Span: NewSpan(15, 31)},
		{Text: "Another bad [Self].", Span: NewSpan(32, 51)},
	}
	err := RejectSelfReferences(docs, "Thing")
	d, ok := AsDiagnostic(err)
	if !ok {
		t.Fatalf("expected a diagnostic, got %v", err)
	}
	if d.Span != NewSpan(15, 31) {
		t.Errorf("expected first offending fragment [15,31), got %v", d.Span)
	}
}
