package pokenet

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/samber/lo"
)

const viridianRoster = `
locations:
  viridian-forest:
    - name: caterpie
      types: [bug]
      raw_score: 195
    - name: weedle
      types: [bug, poison]
      raw_score: 195
    - name: pikachu
      types: [electric]
      raw_score: 320
    - name: pidgey
      types: [normal, flying]
      raw_score: 251
  pallet-town:
    - name: mew
      types: [psychic]
      raw_score: 600
`

func TestLoadRoster(t *testing.T) {
	roster, err := LoadRoster([]byte(viridianRoster))
	if err != nil {
		t.Fatalf("failed to load roster: %s", err)
	}

	if !reflect.DeepEqual(roster.Locations(), []string{"pallet-town", "viridian-forest"}) {
		t.Fatalf("unexpected locations: %v", roster.Locations())
	}

	creatures, err := roster.CreaturesAt(context.Background(), "viridian-forest")
	if err != nil {
		t.Fatalf("failed to get pokemon: %s", err)
	}

	if !reflect.DeepEqual(names(creatures), []string{"caterpie", "weedle", "pikachu", "pidgey"}) {
		t.Fatalf("roster should keep file order, got %v", names(creatures))
	}
	if creatures[1].RawScore != 195 || !creatures[1].HasType("Poison") {
		t.Fatalf("weedle was loaded wrong: %+v", creatures[1])
	}
}

func TestRosterIgnoresLocationCase(t *testing.T) {
	roster, err := LoadRoster([]byte(`
locations:
  Viridian-Forest:
    - name: caterpie
      types: [bug]
      raw_score: 195
`))
	if err != nil {
		t.Fatalf("failed to load roster: %s", err)
	}

	for _, location := range []string{"viridian-forest", "VIRIDIAN-FOREST", "Viridian-Forest"} {
		creatures, err := roster.CreaturesAt(context.Background(), location)
		if err != nil {
			t.Fatalf("%s wasn't found: %s", location, err)
		}
		if len(creatures) != 1 || creatures[0].Name != "caterpie" {
			t.Fatalf("unexpected pokemon at %s: %v", location, names(creatures))
		}
	}

	built := NewRoster(map[string][]Creature{"Route-1": {newCreature("pidgey", 251, TYPENAME_NORMAL, TYPENAME_FLYING)}})
	if _, err := built.CreaturesAt(context.Background(), "route-1"); err != nil {
		t.Fatalf("route-1 wasn't found: %s", err)
	}
}

func TestRosterRejectsLocationsDifferingInCase(t *testing.T) {
	_, err := LoadRoster([]byte(`
locations:
  route-1:
    - {name: pidgey, types: [normal, flying], raw_score: 251}
  Route-1:
    - {name: rattata, types: [normal], raw_score: 253}
`))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a location listed twice, got %v", err)
	}
}

func TestLocationComparer(t *testing.T) {
	roster, err := LoadRoster([]byte(viridianRoster))
	if err != nil {
		t.Fatalf("failed to load roster: %s", err)
	}

	comparer, err := NewLocationComparer(context.Background(), DefaultTypeChart(), roster, "viridian-forest")
	if err != nil {
		t.Fatalf("failed to create comparer: %s", err)
	}

	if comparer.Location() != "viridian-forest" || comparer.Graph().Len() != 4 {
		t.Fatalf("comparer built the wrong graph: %s with %d pokemon", comparer.Location(), comparer.Graph().Len())
	}

	first, err := comparer.RankPokemon()
	if err != nil {
		t.Fatalf("failed to rank: %s", err)
	}
	second, err := comparer.RankPokemon()
	if err != nil {
		t.Fatalf("failed to rank: %s", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("ranking twice gave different results: %v != %v", names(first), names(second))
	}

	scored, err := comparer.ScorePokemon()
	if err != nil {
		t.Fatalf("failed to score: %s", err)
	}
	if !reflect.DeepEqual(names(first), names(unscored(scored))) {
		t.Fatalf("scores and ranking disagree: %v != %v", names(first), names(unscored(scored)))
	}
}

func TestComparerProviderFailure(t *testing.T) {
	_, err := NewLocationComparer(context.Background(), DefaultTypeChart(), NewRoster(nil), "cerulean-cave")

	if !errors.Is(err, ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}
	if !errors.Is(err, ErrUnknownLocation) {
		t.Fatalf("expected the roster's ErrUnknownLocation to be wrapped, got %v", err)
	}
}

func TestComparerSinglePokemonLocation(t *testing.T) {
	roster, err := LoadRoster([]byte(viridianRoster))
	if err != nil {
		t.Fatalf("failed to load roster: %s", err)
	}

	comparer, err := NewLocationComparer(context.Background(), DefaultTypeChart(), roster, "pallet-town")
	if err != nil {
		t.Fatalf("failed to create comparer: %s", err)
	}

	if _, err := comparer.RankPokemon(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for a one pokemon location, got %v", err)
	}
}

func TestComparerNeedsCollaborators(t *testing.T) {
	if _, err := NewLocationComparer(context.Background(), nil, NewRoster(nil), "x"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without an oracle, got %v", err)
	}
}

func unscored(scored []ScoredCreature) []Creature {
	return lo.Map(scored, func(s ScoredCreature, _ int) Creature { return s.Creature })
}
