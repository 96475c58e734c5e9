package pokenet

import (
	"context"
	"slices"
	"strings"
)

// Creature is a pokemon that can be found at a location, as handed to us by a CreatureProvider.
// Two creatures are the same pokemon if their names match, regardless of types or score.
type Creature struct {
	Name string
	// Types in slot order. Every creature needs one or two of them.
	Types []string
	// RawScore is the location independent rating of the pokemon (for PokeAPI data, its base stat total)
	RawScore float64
}

// HasType returns whether the creature is of the given type, ignoring case
func (c Creature) HasType(typeName string) bool {
	return slices.ContainsFunc(c.Types, func(t string) bool {
		return strings.EqualFold(t, typeName)
	})
}

// TypeSet is a set of type names. Names are stored lower-cased so lookups ignore case.
type TypeSet map[string]struct{}

func NewTypeSet(names ...string) TypeSet {
	set := make(TypeSet, len(names))
	for _, name := range names {
		set[normalizeType(name)] = struct{}{}
	}

	return set
}

func (s TypeSet) Contains(typeName string) bool {
	_, ok := s[normalizeType(typeName)]
	return ok
}

func (s TypeSet) Len() int {
	return len(s)
}

// Names returns the members of the set in sorted order
func (s TypeSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// TypeOracle answers which defending types an attack of a given type hits for 0x, 0.5x and 2x.
// Any pairing not in one of the three sets is neutral.
type TypeOracle interface {
	ZeroTimes(typeName string) (TypeSet, error)
	HalfTimes(typeName string) (TypeSet, error)
	TwoTimes(typeName string) (TypeSet, error)
}

// CreatureProvider lists the pokemon that can be found at a location
type CreatureProvider interface {
	CreaturesAt(ctx context.Context, location string) ([]Creature, error)
}

func normalizeType(typeName string) string {
	return strings.ToLower(strings.TrimSpace(typeName))
}
