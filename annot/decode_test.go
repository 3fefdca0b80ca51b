// Package annot contains unit tests for the known-keys decoder, the
// optional-expression parser, and the doc-fragment helpers.
package annot

import (
	"errors"
	"testing"
)

// memberAttrs builds a representative attribute stream: a doc fragment
// interleaved between two annotations.
func memberAttrs() []Attr {
	return []Attr{
		Doc{Text: "Sets the flag.", Span: NewSpan(0, 14)},
		Word("required", NewSpan(20, 28)),
		NameValue("default", "2 + 2", NewSpan(30, 45), NewSpan(40, 45)),
	}
}

// TestDecode_RecognizedKeys verifies that recognized keys land in the record
// and absent keys stay absent.
func TestDecode_RecognizedKeys(t *testing.T) {
	t.Parallel()

	rec, err := Decode(memberAttrs(), []string{"into", "default", "required"})
	if err != nil {
		t.Fatalf("decode: unexpected error %v", err)
	}
	if rec.Len() != 2 {
		t.Fatalf("decode: expected 2 present keys, got %d", rec.Len())
	}
	if _, ok := rec.Get("into"); ok {
		t.Errorf("decode: `into` was absent yet present in record")
	}
	m, ok := rec.Get("default")
	if !ok || m.Value != "2 + 2" {
		t.Errorf("decode: `default` lost its value, got %+v", m)
	}
}

// TestDecode_UnknownKey verifies rejection of a key outside the set, with
// the diagnostic anchored at that annotation.
func TestDecode_UnknownKey(t *testing.T) {
	t.Parallel()

	span := NewSpan(3, 9)
	attrs := []Attr{Word("requird", span)} // typo on purpose
	_, err := Decode(attrs, []string{"into", "default", "required"})
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("unknown key: expected ErrUnknownKey, got %v", err)
	}
	if d, ok := AsDiagnostic(err); !ok || d.Span != span {
		t.Errorf("unknown key: expected anchor %v, got %+v", span, err)
	}
}

// TestDecode_DuplicateKey verifies that writing a key twice is rejected.
func TestDecode_DuplicateKey(t *testing.T) {
	t.Parallel()

	attrs := []Attr{
		Word("required", NewSpan(0, 8)),
		Word("required", NewSpan(10, 18)),
	}
	_, err := Decode(attrs, []string{"required"})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("duplicate key: expected ErrDuplicateKey, got %v", err)
	}
	// The SECOND spelling is the offender.
	if d, _ := AsDiagnostic(err); d.Span != NewSpan(10, 18) {
		t.Errorf("duplicate key: expected anchor [10,18), got %v", d.Span)
	}
}

// TestDocsOf verifies doc fragments come back in original order and Metas
// are skipped.
func TestDocsOf(t *testing.T) {
	t.Parallel()

	attrs := []Attr{
		Doc{Text: "first", Span: NewSpan(0, 5)},
		Word("required", NewSpan(6, 14)),
		Doc{Text: "second", Span: NewSpan(15, 21)},
	}
	docs := DocsOf(attrs)
	if len(docs) != 2 || docs[0].Text != "first" || docs[1].Text != "second" {
		t.Errorf("DocsOf: expected [first second] in order, got %+v", docs)
	}
}

// TestParseOptionalExpr verifies the three surface forms of `default`.
func TestParseOptionalExpr(t *testing.T) {
	t.Parallel()

	// 1. Bare marker → present, no expression ("use the intrinsic default").
	bare, err := ParseOptionalExpr(Word("default", NewSpan(2, 9)))
	if err != nil {
		t.Fatalf("bare: unexpected error %v", err)
	}
	if bare.HasExpr {
		t.Errorf("bare: expected no expression")
	}

	// 2. `= expr` → expression captured verbatim with its own span.
	withExpr, err := ParseOptionalExpr(NameValue("default", "2 + 2", NewSpan(2, 17), NewSpan(12, 17)))
	if err != nil {
		t.Fatalf("expr: unexpected error %v", err)
	}
	if !withExpr.HasExpr || withExpr.Expr != "2 + 2" {
		t.Errorf("expr: expected verbatim `2 + 2`, got %+v", withExpr)
	}
	if withExpr.ExprSpan != NewSpan(12, 17) {
		t.Errorf("expr: expected expression span [12,17), got %v", withExpr.ExprSpan)
	}

	// 3. List form is a hard error.
	_, err = ParseOptionalExpr(List("default", nil, NewSpan(2, 20)))
	if !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("list: expected ErrUnsupportedShape, got %v", err)
	}
}

// TestWithNamespace verifies the namespace knob reaches the diagnostic text
// and that the empty namespace panics in the option constructor.
func TestWithNamespace(t *testing.T) {
	t.Parallel()

	_, err := Decode([]Attr{Word("nope", Span{})}, []string{"name", "vis"}, WithNamespace("setter_name"))
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	d, _ := AsDiagnostic(err)
	if want := "unknown `setter_name` annotation `nope`; expected one of: name, vis"; d.Msg != want {
		t.Errorf("namespace: expected %q, got %q", want, d.Msg)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("WithNamespace(\"\"): expected panic")
		}
	}()
	WithNamespace("")
}
