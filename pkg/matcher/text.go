package matcher

import (
	"encoding"
	"strings"
)

var (
	_ encoding.TextMarshaler   = Matcher{}
	_ encoding.TextUnmarshaler = (*Matcher)(nil)
)

// String renders the token so that UnmarshalText reads it back. Literals
// that would otherwise parse as the wildcard, or that start with a
// backslash, get a leading backslash.
func (m Matcher) String() string {
	if m.kind == Literal && (m.pattern == "*" || strings.HasPrefix(m.pattern, `\`)) {
		return `\` + m.pattern
	}
	return m.pattern
}

func (m Matcher) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Matcher) UnmarshalText(text []byte) error {
	*m = Parse(string(text))
	return nil
}

// Parse is the inverse of String.
func Parse(s string) Matcher {
	if rest, ok := strings.CutPrefix(s, `\`); ok {
		return Escape(rest)
	}
	return Exact(s)
}
