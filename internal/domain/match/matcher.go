// Package match resolves user name tokens to player records: one
// documented query grammar, accent-insensitive matching, and the
// disambiguation policy for multi-candidate results.
package match

import (
	"context"
	"fmt"
	"sort"

	"github.com/mattgren/dugout/internal/domain/model"
)

// Source is the slice of the data source the matcher consumes. All
// name arguments are pre-folded (see Fold); implementations match
// against folded names.
type Source interface {
	// FindPlayers returns players whose folded first name starts with
	// firstPrefix (ignored when empty) and whose folded last name
	// contains lastSubstring. Absence of matches is a nil slice, not
	// an error.
	FindPlayers(ctx context.Context, firstPrefix, lastSubstring string) ([]model.Player, error)

	// FindPlayersByName returns players whose folded full name equals
	// fullName exactly.
	FindPlayersByName(ctx context.Context, fullName string) ([]model.Player, error)
}

// Matcher resolves name queries against a Source.
type Matcher struct {
	src Source
}

// NewMatcher creates a Matcher over the given source.
func NewMatcher(src Source) *Matcher {
	return &Matcher{src: src}
}

// Candidates returns the full candidate set for a raw query token,
// deterministically ordered. It fails with ErrNoMatch when the set is
// empty.
func (m *Matcher) Candidates(ctx context.Context, raw string) ([]model.Player, error) {
	q := ParseQuery(raw)

	players, err := m.src.FindPlayers(ctx, q.FirstPrefix, q.LastSubstring)
	if err != nil {
		return nil, err
	}

	// Bare tokens also try the exact-full-name reading; union the two
	// candidate sets.
	if q.Bare {
		exact, err := m.src.FindPlayersByName(ctx, q.LastSubstring)
		if err != nil {
			return nil, err
		}
		players = union(players, exact)
	}

	if len(players) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, raw)
	}

	sort.Slice(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.Last != b.Last {
			return a.Last < b.Last
		}
		if a.First != b.First {
			return a.First < b.First
		}
		return a.ID < b.ID
	})
	return players, nil
}

// Resolve runs the whole pipeline: candidate search followed by
// disambiguation. Exactly one player comes back on success.
func (m *Matcher) Resolve(ctx context.Context, raw string) (model.Player, error) {
	candidates, err := m.Candidates(ctx, raw)
	if err != nil {
		return model.Player{}, err
	}
	return Disambiguate(raw, candidates)
}

// Disambiguate applies the resolution policy to an ordered candidate
// set:
//   - a single candidate auto-resolves;
//   - with several candidates, a unique exact full-name match (folded)
//     overrides the ambiguity;
//   - otherwise the ambiguity is reported with the full candidate list.
func Disambiguate(raw string, candidates []model.Player) (model.Player, error) {
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	folded := Fold(raw)
	var exact []model.Player
	for _, c := range candidates {
		if Fold(c.FullName()) == folded {
			exact = append(exact, c)
		}
	}
	if len(exact) == 1 {
		return exact[0], nil
	}

	return model.Player{}, &AmbiguousError{Query: raw, Candidates: candidates}
}

func union(a, b []model.Player) []model.Player {
	seen := make(map[int64]bool, len(a))
	for _, p := range a {
		seen[p.ID] = true
	}
	for _, p := range b {
		if !seen[p.ID] {
			seen[p.ID] = true
			a = append(a, p)
		}
	}
	return a
}
