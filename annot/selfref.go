// SPDX-License-Identifier: MIT
// Package: typestate/annot
//
// selfref.go — documentation self-reference check.
//
// A doc fragment forwarded to a generated setter must not link back to the
// declaration the member belongs to: the generated item lives in a different
// scope, so the link would either dangle or resolve to the wrong target.

package annot

import "strings"

// RejectSelfReferences scans doc fragments, in order, for an intra-doc link
// that refers back to the enclosing declaration: `[Self]`, "[`Self`]", or
// the declaration's own name in link position. The first offending fragment
// is returned as a *Diagnostic wrapping ErrSelfReferentialDoc, anchored at
// that fragment.
//
// self is the enclosing declaration's name; empty disables the name-based
// patterns but keeps the `Self` ones.
//
// Complexity: O(Σlen(docs)) time, O(1) space.
func RejectSelfReferences(docs []Doc, self string) error {
	patterns := []string{"[Self]", "[`Self`]"}
	if self != "" {
		patterns = append(patterns, "["+self+"]", "[`"+self+"`]")
	}

	for _, doc := range docs {
		for _, pat := range patterns {
			if strings.Contains(doc.Text, pat) {
				return Diagf(doc.Span, ErrSelfReferentialDoc,
					"documentation must not reference the declaration it belongs to; remove the %s link", pat)
			}
		}
	}

	return nil
}
