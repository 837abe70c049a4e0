package stats

import (
	"fmt"
	"strings"
)

// Vocabulary is an immutable, ordered stat catalogue per player type.
// Order matches the season-view column order.
type Vocabulary struct {
	defs  map[PlayerType][]Definition
	index map[PlayerType]map[Key]int
}

// higher d=0, lower, neutral shortcuts for table readability.
const (
	hi Direction = HigherIsBetter
	lo Direction = LowerIsBetter
	nu Direction = Neutral
)

var pitcherDefs = []Definition{
	{Key: "war", Label: "WAR", Direction: hi, Decimals: 1, Leaderboard: true},
	{Key: "w", Label: "W", Direction: hi, Leaderboard: true},
	{Key: "l", Label: "L", Direction: lo, Leaderboard: true},
	{Key: "w_l_pct", Label: "W-L%", Direction: hi, Decimals: 3, Rate: true, Leaderboard: true, Qualifying: true},
	{Key: "era", Label: "ERA", Direction: lo, Decimals: 2, Rate: true, Leaderboard: true, Qualifying: true},
	{Key: "g", Label: "G", Direction: nu, Leaderboard: true},
	{Key: "gs", Label: "GS", Direction: nu, Leaderboard: true},
	{Key: "gf", Label: "GF", Direction: nu, Leaderboard: true},
	{Key: "cg", Label: "CG", Direction: hi, Leaderboard: true},
	{Key: "sho", Label: "SHO", Direction: hi, Leaderboard: true},
	{Key: "sv", Label: "SV", Direction: hi, Leaderboard: true},
	{Key: "ip", Label: "IP", Direction: hi, Decimals: 1, Leaderboard: true},
	{Key: "h", Label: "H", Direction: lo, Leaderboard: true},
	{Key: "r", Label: "R", Direction: lo, Leaderboard: true},
	{Key: "er", Label: "ER", Direction: lo, Leaderboard: true},
	{Key: "hr", Label: "HR", Direction: lo, Leaderboard: true},
	{Key: "bb", Label: "BB", Direction: lo, Leaderboard: true},
	{Key: "ibb", Label: "IBB", Direction: nu},
	{Key: "so", Label: "SO", Direction: hi, Leaderboard: true},
	{Key: "hbp", Label: "HBP", Direction: lo},
	{Key: "bk", Label: "BK", Direction: lo},
	{Key: "wp", Label: "WP", Direction: lo},
	{Key: "bf", Label: "BF", Direction: nu},
	{Key: "era_plus", Label: "ERA+", Direction: hi, Rate: true, Leaderboard: true, Qualifying: true},
	{Key: "fip", Label: "FIP", Direction: lo, Decimals: 2, Rate: true, Leaderboard: true, Qualifying: true},
	{Key: "whip", Label: "WHIP", Direction: lo, Decimals: 3, Rate: true, Leaderboard: true, Qualifying: true},
	{Key: "h9", Label: "H/9", Direction: lo, Decimals: 1, Rate: true, Leaderboard: true, Qualifying: true},
	{Key: "hr9", Label: "HR/9", Direction: lo, Decimals: 1, Rate: true, Leaderboard: true, Qualifying: true},
	{Key: "bb9", Label: "BB/9", Direction: lo, Decimals: 1, Rate: true, Leaderboard: true, Qualifying: true},
	{Key: "so9", Label: "SO/9", Direction: hi, Decimals: 1, Rate: true, Leaderboard: true, Qualifying: true},
	{Key: "so_bb", Label: "SO/BB", Direction: hi, Decimals: 2, Rate: true, Leaderboard: true, Qualifying: true},
}

var hitterDefs = []Definition{
	{Key: "war", Label: "WAR", Direction: hi, Decimals: 1, Leaderboard: true},
	{Key: "g", Label: "G", Direction: nu, Leaderboard: true},
	{Key: "pa", Label: "PA", Direction: nu, Leaderboard: true},
	{Key: "ab", Label: "AB", Direction: nu, Leaderboard: true},
	{Key: "r", Label: "R", Direction: hi, Leaderboard: true},
	{Key: "h", Label: "H", Direction: hi, Leaderboard: true},
	{Key: "doubles", Label: "2B", Direction: hi, Leaderboard: true},
	{Key: "triples", Label: "3B", Direction: hi, Leaderboard: true},
	{Key: "hr", Label: "HR", Direction: hi, Leaderboard: true},
	{Key: "rbi", Label: "RBI", Direction: hi, Leaderboard: true},
	{Key: "sb", Label: "SB", Direction: hi, Leaderboard: true},
	{Key: "cs", Label: "CS", Direction: lo},
	{Key: "bb", Label: "BB", Direction: hi, Leaderboard: true},
	{Key: "so", Label: "SO", Direction: lo},
	{Key: "ba", Label: "BA", Direction: hi, Decimals: 3, Rate: true, Leaderboard: true, Qualifying: true},
	{Key: "obp", Label: "OBP", Direction: hi, Decimals: 3, Rate: true, Leaderboard: true, Qualifying: true},
	{Key: "slg", Label: "SLG", Direction: hi, Decimals: 3, Rate: true, Leaderboard: true, Qualifying: true},
	{Key: "ops", Label: "OPS", Direction: hi, Decimals: 3, Rate: true, Leaderboard: true, Qualifying: true},
	{Key: "ops_plus", Label: "OPS+", Direction: hi, Rate: true, Leaderboard: true, Qualifying: true},
	{Key: "tb", Label: "TB", Direction: hi, Leaderboard: true},
	{Key: "gidp", Label: "GIDP", Direction: lo},
	{Key: "hbp", Label: "HBP", Direction: nu},
	{Key: "sh", Label: "SH", Direction: nu},
	{Key: "sf", Label: "SF", Direction: nu},
	{Key: "ibb", Label: "IBB", Direction: nu},
}

// aliases maps user-facing stat spellings to canonical keys.
var aliases = map[string]Key{
	"era+":  "era_plus",
	"ops+":  "ops_plus",
	"w-l%":  "w_l_pct",
	"so/bb": "so_bb",
	"2b":    "doubles",
	"3b":    "triples",
	"h/9":   "h9",
	"hr/9":  "hr9",
	"bb/9":  "bb9",
	"so/9":  "so9",
	"avg":   "ba",
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	v := &Vocabulary{
		defs: map[PlayerType][]Definition{
			Pitcher: append([]Definition(nil), pitcherDefs...),
			Hitter:  append([]Definition(nil), hitterDefs...),
		},
		index: make(map[PlayerType]map[Key]int, 2),
	}
	for pt, defs := range v.defs {
		idx := make(map[Key]int, len(defs))
		for i, d := range defs {
			idx[d.Key] = i
		}
		v.index[pt] = idx
	}
	return v
}

// Override adjusts a definition's presentation metadata. Zero fields
// leave the built-in value untouched.
type Override struct {
	Label     string `koanf:"label"`
	Direction string `koanf:"direction"`
}

// WithOverrides returns a copy of the vocabulary with the given
// per-key overrides applied. Unknown keys are rejected so a typo in the
// override file surfaces at startup rather than silently doing nothing.
func (v *Vocabulary) WithOverrides(ovr map[string]Override) (*Vocabulary, error) {
	out := Default()
	for raw, o := range ovr {
		key := Canonical(raw)
		applied := false
		for pt, defs := range out.defs {
			i, ok := out.index[pt][key]
			if !ok {
				continue
			}
			applied = true
			if o.Label != "" {
				defs[i].Label = o.Label
			}
			if o.Direction != "" {
				dir, err := parseDirection(o.Direction)
				if err != nil {
					return nil, err
				}
				defs[i].Direction = dir
			}
		}
		if !applied {
			return nil, &UnknownStatError{Stat: raw}
		}
	}
	return out, nil
}

func parseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "higher":
		return HigherIsBetter, nil
	case "lower":
		return LowerIsBetter, nil
	case "neutral":
		return Neutral, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Definitions returns the ordered definitions for a player type.
// Callers must not mutate the returned slice.
func (v *Vocabulary) Definitions(pt PlayerType) []Definition {
	return v.defs[pt]
}

// Lookup finds the definition for a canonical key within a player type.
func (v *Vocabulary) Lookup(pt PlayerType, key Key) (Definition, bool) {
	i, ok := v.index[pt][key]
	if !ok {
		return Definition{}, false
	}
	return v.defs[pt][i], true
}

// Canonical normalizes a user-provided stat token to its canonical key:
// lower-cased, aliases resolved, separator characters folded to
// underscores. The result is not guaranteed to exist in any vocabulary.
func Canonical(token string) Key {
	t := strings.ToLower(strings.TrimSpace(token))
	if k, ok := aliases[t]; ok {
		return k
	}
	t = strings.ReplaceAll(t, "-", "_")
	t = strings.ReplaceAll(t, "/", "_")
	return Key(t)
}

// Resolve maps a user token to a definition for the given player type,
// returning UnknownStatError when the token names no stat in that
// type's vocabulary.
func (v *Vocabulary) Resolve(pt PlayerType, token string) (Definition, error) {
	key := Canonical(token)
	def, ok := v.Lookup(pt, key)
	if !ok {
		return Definition{}, &UnknownStatError{Stat: token, Type: pt}
	}
	return def, nil
}

// ResolveFilter maps an ordered list of user tokens to definitions,
// preserving the caller's order. The first unknown token aborts.
func (v *Vocabulary) ResolveFilter(pt PlayerType, tokens []string) ([]Definition, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]Definition, 0, len(tokens))
	for _, t := range tokens {
		def, err := v.Resolve(pt, t)
		if err != nil {
			return nil, err
		}
		out = append(out, def)
	}
	return out, nil
}
