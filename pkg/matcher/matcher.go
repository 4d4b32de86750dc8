package matcher

type StringMatcher interface {
	MatchString(string) bool
}

var _ StringMatcher = Matcher{}

// Matcher is a single argument token: either a literal string or the
// wildcard, which matches any one argument.
//
// Equal treats the wildcard as compatible with every token, so it is
// reflexive and symmetric but not transitive. Do not use Matcher as a map
// key or sort by it expecting Equal to be an equivalence relation.
type Matcher struct {
	kind    Kind
	pattern string
}

// Exact returns the wildcard for "*" and a literal for anything else.
func Exact(s string) Matcher {
	if s == "*" {
		return Matcher{kind: Wildcard, pattern: s}
	}
	return Matcher{kind: Literal, pattern: s}
}

// Escape returns a literal, even for "*".
func Escape(s string) Matcher {
	return Matcher{kind: Literal, pattern: s}
}

func (m Matcher) Kind() Kind {
	return m.kind
}

func (m Matcher) Pattern() string {
	return m.pattern
}

func (m Matcher) MatchString(s string) bool {
	return m.kind == Wildcard || m.pattern == s
}

// Equal reports whether m and o could match the same argument.
func (m Matcher) Equal(o Matcher) bool {
	if m.kind == Wildcard || o.kind == Wildcard {
		return true
	}
	return m.pattern == o.pattern
}
