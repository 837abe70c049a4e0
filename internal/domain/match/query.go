package match

import "strings"

// Query is the parsed form of a user name token.
//
// Grammar: a token containing a dot splits into first-name prefix and
// last-name substring ("l.webb" matches first names starting with "l"
// and last names containing "webb"). A bare token is interpreted both
// as a last-name substring and as an exact full name; candidate sets
// from the two readings are unioned.
type Query struct {
	Raw string

	// FirstPrefix is empty for bare tokens.
	FirstPrefix string
	// LastSubstring is the folded last-name fragment.
	LastSubstring string
	// Bare is set when the token carried no separator.
	Bare bool
}

// ParseQuery folds and splits a raw name token.
func ParseQuery(raw string) Query {
	folded := Fold(raw)
	first, last, found := strings.Cut(folded, ".")
	if !found {
		return Query{Raw: raw, LastSubstring: folded, Bare: true}
	}
	return Query{Raw: raw, FirstPrefix: first, LastSubstring: last}
}
