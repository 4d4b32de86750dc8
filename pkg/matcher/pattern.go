package matcher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Pattern is an ordered sequence of tokens matched against an argument
// vector position by position.
type Pattern []Matcher

func ExactPattern(tokens ...string) Pattern {
	p := make(Pattern, len(tokens))
	for i, t := range tokens {
		p[i] = Exact(t)
	}
	return p
}

func EscapePattern(tokens ...string) Pattern {
	p := make(Pattern, len(tokens))
	for i, t := range tokens {
		p[i] = Escape(t)
	}
	return p
}

// ParsePattern splits s on whitespace and parses each field as a token.
func ParsePattern(s string) Pattern {
	fields := strings.Fields(s)
	p := make(Pattern, len(fields))
	for i, f := range fields {
		p[i] = Parse(f)
	}
	return p
}

// Equal is elementwise Matcher.Equal and inherits its lack of transitivity.
func (p Pattern) Equal(o Pattern) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if !p[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// MatchStrings reports whether args has one argument per token and every
// token matches its argument.
func (p Pattern) MatchStrings(args []string) bool {
	if len(p) != len(args) {
		return false
	}
	for i, m := range p {
		if !m.MatchString(args[i]) {
			return false
		}
	}
	return true
}

func (p Pattern) String() string {
	parts := make([]string, len(p))
	for i, m := range p {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

var _ json.Unmarshaler = (*Pattern)(nil)

// UnmarshalJSON accepts a list of tokens or a single whitespace separated
// string. Numbers and booleans in a list are taken as their literal text,
// so YAML such as [set, volume, 50] needs no quoting.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	{
		var text string
		if err := json.Unmarshal(data, &text); err == nil {
			*p = ParsePattern(text)
			return nil
		}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal pattern: %w", err)
	}

	tokens := make(Pattern, len(raw))
	for i, r := range raw {
		var v any
		if err := json.Unmarshal(r, &v); err != nil {
			return fmt.Errorf("failed to unmarshal pattern token %d: %w", i, err)
		}
		switch v := v.(type) {
		case string:
			tokens[i] = Parse(v)
		case float64, bool:
			tokens[i] = Exact(string(bytes.TrimSpace(r)))
		default:
			return fmt.Errorf("pattern token %d: unsupported value %s", i, r)
		}
	}
	*p = tokens
	return nil
}
