package matcher

//go:generate go tool stringer -type=Kind

// Kind tags a Matcher as a literal token or the wildcard.
type Kind uint8

const (
	Literal Kind = iota
	Wildcard
)
