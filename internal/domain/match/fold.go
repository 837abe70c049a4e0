package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folder strips combining marks after canonical decomposition, so
// "Suárez" folds to "suarez".
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lower-cases a name and removes diacritics. All matching in this
// program happens on folded strings; the store keeps folded name
// columns produced by the same rule.
func Fold(s string) string {
	out, _, err := transform.String(folder, s)
	if err != nil {
		// Transform only fails on malformed input; match on the raw
		// string in that case.
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
