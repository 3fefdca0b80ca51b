// Package field provides internal helper functions for deriving generated
// identifiers from source names.

package field

import (
	"strings"
	"unicode"
)

// PascalCase derives the state-type identifier from a member name: each
// '_'- or '-'-separated segment is upper-cased on its first rune and the
// segments are joined, e.g. "x1"→"X1", "my_field"→"MyField".
// Pure, deterministic, and idempotent on already-pascal input.
// Complexity: O(len(name)) time, O(len(name)) space.
// Never panics.
func PascalCase(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))

	upperNext := true
	for _, r := range name {
		if r == '_' || r == '-' {
			// Separators are dropped; the next rune starts a segment.
			upperNext = true
			continue
		}
		if upperNext {
			sb.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		sb.WriteRune(r)
	}

	return sb.String()
}
