package app

import "github.com/andreyzebin/audio-connect-tray/pkg/matcher"

type Rule struct {
	Name string          `json:"name"`
	Args matcher.Pattern `json:"args"`
	Run  string          `json:"run"`
}

type Ruleset []*Rule

// Match returns the first rule whose pattern matches args, or nil.
func (rs Ruleset) Match(args []string) *Rule {
	for _, r := range rs {
		if r.Args.MatchStrings(args) {
			return r
		}
	}
	return nil
}

// Overlap is a pair of rules that some argument vector can reach both of.
// Later is shadowed by Earlier for those arguments.
type Overlap struct {
	Earlier, Later *Rule
}

// Overlaps returns every ordered pair of rules whose patterns are equal
// under matcher.Pattern.Equal.
func (rs Ruleset) Overlaps() []Overlap {
	var out []Overlap
	for i, a := range rs {
		for _, b := range rs[i+1:] {
			if a.Args.Equal(b.Args) {
				out = append(out, Overlap{Earlier: a, Later: b})
			}
		}
	}
	return out
}
