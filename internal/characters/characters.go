// Package characters holds pure helpers over slices of character records.
// Every function returns a new slice and leaves its input untouched.
package characters

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/portal/internal/rickmorty"
)

// Stats summarises a set of characters.
type Stats struct {
	Total   int
	Alive   int
	Dead    int
	Unknown int
	Species []string // distinct, in first-occurrence order
}

// SpeciesGroup is one bucket produced by GroupBySpecies.
type SpeciesGroup struct {
	Species    string
	Characters []rickmorty.Character
}

var collationTag = language.BrazilianPortuguese

// SortByName returns a copy ordered by display name using pt-BR collation.
// Records with equal names keep their relative order.
func SortByName(records []rickmorty.Character) []rickmorty.Character {
	out := slices.Clone(records)
	// Collators carry scratch buffers and must not be shared across goroutines.
	c := collate.New(collationTag)
	slices.SortStableFunc(out, func(a, b rickmorty.Character) int {
		return c.CompareString(a.Name, b.Name)
	})
	return out
}

// FilterByStatus keeps records whose status equals status exactly.
func FilterByStatus(records []rickmorty.Character, status rickmorty.Status) []rickmorty.Character {
	out := make([]rickmorty.Character, 0, len(records))
	for _, r := range records {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// Alive keeps living characters.
func Alive(records []rickmorty.Character) []rickmorty.Character {
	return FilterByStatus(records, rickmorty.StatusAlive)
}

// Dead keeps dead characters.
func Dead(records []rickmorty.Character) []rickmorty.Character {
	return FilterByStatus(records, rickmorty.StatusDead)
}

// SearchByName keeps records whose name contains query, ignoring case.
// An empty query matches everything.
func SearchByName(records []rickmorty.Character, query string) []rickmorty.Character {
	needle := strings.ToLower(query)
	out := make([]rickmorty.Character, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			out = append(out, r)
		}
	}
	return out
}

// FindByID returns the first record with the given id.
func FindByID(records []rickmorty.Character, id int) (rickmorty.Character, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return rickmorty.Character{}, false
}

// ComputeStats counts records by status and collects distinct species.
func ComputeStats(records []rickmorty.Character) Stats {
	stats := Stats{Total: len(records), Species: []string{}}
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		switch r.Status {
		case rickmorty.StatusAlive:
			stats.Alive++
		case rickmorty.StatusDead:
			stats.Dead++
		case rickmorty.StatusUnknown:
			stats.Unknown++
		}
		if _, ok := seen[r.Species]; !ok {
			seen[r.Species] = struct{}{}
			stats.Species = append(stats.Species, r.Species)
		}
	}
	return stats
}

// GroupBySpecies buckets records by species. Groups appear in the order
// their species first occurs; members keep input order.
func GroupBySpecies(records []rickmorty.Character) []SpeciesGroup {
	index := make(map[string]int)
	var groups []SpeciesGroup
	for _, r := range records {
		i, ok := index[r.Species]
		if !ok {
			i = len(groups)
			index[r.Species] = i
			groups = append(groups, SpeciesGroup{Species: r.Species})
		}
		groups[i].Characters = append(groups[i].Characters, r)
	}
	return groups
}
