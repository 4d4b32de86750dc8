package matcher

import "testing"

func TestMatcherText(t *testing.T) {
	tests := []struct {
		m    Matcher
		text string
	}{
		{Exact("*"), `*`},
		{Escape("*"), `\*`},
		{Exact("audio"), `audio`},
		{Exact(`\n`), `\\n`},
		{Exact("a*b"), `a*b`},
		{Exact(""), ``},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			t.Parallel()
			b, err := tc.m.MarshalText()
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tc.text {
				t.Errorf("MarshalText() = %q, want %q", b, tc.text)
			}

			var got Matcher
			if err := got.UnmarshalText(b); err != nil {
				t.Fatal(err)
			}
			if got != tc.m {
				t.Errorf("UnmarshalText(%q) = %v(%q), want %v(%q)", b, got.Kind(), got.Pattern(), tc.m.Kind(), tc.m.Pattern())
			}
		})
	}
}
