// Package field contains unit tests for the identifier-derivation helper.
package field

import "testing"

// TestPascalCase verifies the member-name → state-type-name transform,
// including idempotence on already-pascal input.
func TestPascalCase(t *testing.T) {
	t.Parallel() // allow this test to run in parallel

	cases := []struct {
		in   string
		want string
	}{
		{"x1", "X1"},
		{"flag", "Flag"},
		{"my_field", "MyField"},
		{"kebab-name", "KebabName"},
		{"__leading", "Leading"},
		{"trailing_", "Trailing"},
		{"a_b_c", "ABC"},
		{"AlreadyPascal", "AlreadyPascal"},
		{"mixedCase_name", "MixedCaseName"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := PascalCase(tc.in); got != tc.want {
			t.Errorf("PascalCase(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}

	// Idempotence: applying the transform twice changes nothing.
	for _, tc := range cases {
		once := PascalCase(tc.in)
		if twice := PascalCase(once); twice != once {
			t.Errorf("PascalCase idempotence on %q: %q → %q", tc.in, once, twice)
		}
	}
}
