package matcher

import "testing"

func TestExactAndEscape(t *testing.T) {
	tests := []struct {
		name    string
		m       Matcher
		kind    Kind
		pattern string
	}{
		{"exact literal", Exact("audio"), Literal, "audio"},
		{"exact empty", Exact(""), Literal, ""},
		{"exact embedded star", Exact("a*b"), Literal, "a*b"},
		{"exact star", Exact("*"), Wildcard, "*"},
		{"escape literal", Escape("audio"), Literal, "audio"},
		{"escape star", Escape("*"), Literal, "*"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.m.Kind(); got != tc.kind {
				t.Errorf("Kind() = %v, want %v", got, tc.kind)
			}
			if got := tc.m.Pattern(); got != tc.pattern {
				t.Errorf("Pattern() = %q, want %q", got, tc.pattern)
			}
		})
	}
}

func TestMatcherEqual(t *testing.T) {
	tests := []struct {
		a, b Matcher
		want bool
	}{
		{Exact("use"), Exact("use"), true},
		{Exact("use"), Escape("use"), true},
		{Exact("anyString"), Exact("123"), false},
		{Exact("*"), Exact("*"), true},
		{Exact("*"), Exact("anyString"), true},
		{Exact("*"), Escape("*"), true},
		{Escape("*"), Escape("*"), true},
		{Escape("*"), Exact("123"), false},
		{Exact(""), Exact(""), true},
		{Exact(""), Exact("*"), true},
		{Exact(""), Escape("*"), false},
	}

	for _, tc := range tests {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Errorf("%v(%v).Equal(%v(%v)) = %v, want %v", tc.a.Kind(), tc.a, tc.b.Kind(), tc.b, got, tc.want)
		}
		// symmetric
		if got := tc.b.Equal(tc.a); got != tc.want {
			t.Errorf("%v(%v).Equal(%v(%v)) = %v, want %v", tc.b.Kind(), tc.b, tc.a.Kind(), tc.a, got, tc.want)
		}
	}
}

func TestMatcherEqualReflexive(t *testing.T) {
	for _, s := range []string{"", "*", "use", "a*b", `\x`} {
		for _, m := range []Matcher{Exact(s), Escape(s)} {
			if !m.Equal(m) {
				t.Errorf("%v(%q) is not equal to itself", m.Kind(), m.Pattern())
			}
		}
	}
}

func TestMatcherEqualNotTransitive(t *testing.T) {
	a, w, b := Exact("anyString"), Exact("*"), Exact("123")
	if !a.Equal(w) || !w.Equal(b) {
		t.Fatal("wildcard should equal both literals")
	}
	if a.Equal(b) {
		t.Error("distinct literals compared equal through a wildcard")
	}
}

func TestMatchString(t *testing.T) {
	tests := []struct {
		m    Matcher
		s    string
		want bool
	}{
		{Exact("*"), "anything", true},
		{Exact("*"), "", true},
		{Escape("*"), "*", true},
		{Escape("*"), "anything", false},
		{Exact("a*b"), "axxb", false},
		{Exact("a*b"), "a*b", true},
		{Exact(""), "", true},
		{Exact(""), "x", false},
	}

	for _, tc := range tests {
		if got := tc.m.MatchString(tc.s); got != tc.want {
			t.Errorf("%v(%q).MatchString(%q) = %v, want %v", tc.m.Kind(), tc.m.Pattern(), tc.s, got, tc.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := Wildcard.String(); got != "Wildcard" {
		t.Errorf("got %q, want %q", got, "Wildcard")
	}
	if got := Kind(7).String(); got != "Kind(7)" {
		t.Errorf("got %q, want %q", got, "Kind(7)")
	}
}
