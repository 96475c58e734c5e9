package pokenet

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type rosterEntry struct {
	Name     string   `yaml:"name"`
	Types    []string `yaml:"types"`
	RawScore float64  `yaml:"raw_score"`
}

type rosterFile struct {
	Locations map[string][]rosterEntry `yaml:"locations"`
}

// Roster is a CreatureProvider backed by a fixed list of pokemon per location.
// Location names are matched ignoring case.
type Roster struct {
	locations map[string][]Creature
}

func normalizeLocation(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}

// NewRoster copies locations into a Roster. Locations whose names only differ in case are merged.
func NewRoster(locations map[string][]Creature) Roster {
	copied := make(map[string][]Creature, len(locations))
	for location, creatures := range locations {
		key := normalizeLocation(location)
		copied[key] = append(copied[key], creatures...)
	}

	return Roster{locations: copied}
}

// LoadRoster parses a YAML roster of the form:
//
//	locations:
//	  viridian-forest:
//	    - name: caterpie
//	      types: [bug]
//	      raw_score: 195
func LoadRoster(rosterBytes []byte) (Roster, error) {
	file := rosterFile{}
	if err := yaml.Unmarshal(rosterBytes, &file); err != nil {
		internalLogger.Error(err, "invalid roster yaml")
		return Roster{}, fmt.Errorf("roster: %w", err)
	}

	locations := make(map[string][]Creature, len(file.Locations))
	for location, entries := range file.Locations {
		key := normalizeLocation(location)
		if _, ok := locations[key]; ok {
			return Roster{}, fmt.Errorf("%w: roster lists location %s more than once", ErrInvalidInput, key)
		}

		locations[key] = lo.Map(entries, func(e rosterEntry, _ int) Creature {
			return Creature{Name: e.Name, Types: e.Types, RawScore: e.RawScore}
		})
	}

	internalLogger.Info("loaded roster", "location_count", len(locations))

	return Roster{locations: locations}, nil
}

func (r Roster) CreaturesAt(_ context.Context, location string) ([]Creature, error) {
	creatures, ok := r.locations[normalizeLocation(location)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLocation, location)
	}

	return slices.Clone(creatures), nil
}

// Locations returns the names of every location in the roster, sorted
func (r Roster) Locations() []string {
	names := lo.Keys(r.locations)
	slices.Sort(names)

	return names
}
