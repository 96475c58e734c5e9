package pokenet

import (
	"context"
	"fmt"
)

// LocationComparer ranks the pokemon found at one location.
// The effectiveness graph is built once on creation, scores are recomputed on every call.
type LocationComparer struct {
	location string
	graph    Graph
}

// NewLocationComparer gets the pokemon at location from the provider and builds their effectiveness graph.
func NewLocationComparer(ctx context.Context, oracle TypeOracle, provider CreatureProvider, location string) (*LocationComparer, error) {
	if oracle == nil || provider == nil {
		return nil, fmt.Errorf("%w: comparer needs both a type oracle and a pokemon provider", ErrInvalidInput)
	}

	creatures, err := provider.CreaturesAt(ctx, location)
	if err != nil {
		internalLogger.Error(err, "could not get pokemon for location", "location", location)
		return nil, fmt.Errorf("%w: %s: %w", ErrProvider, location, err)
	}

	internalLogger.Info("got pokemon for location", "location", location, "pokemon_count", len(creatures))

	graph, err := BuildGraph(creatures, oracle)
	if err != nil {
		return nil, fmt.Errorf("location %s: %w", location, err)
	}

	return &LocationComparer{location: location, graph: graph}, nil
}

func (c *LocationComparer) Location() string {
	return c.location
}

func (c *LocationComparer) Graph() Graph {
	return c.graph
}

// RankPokemon returns the location's pokemon from best to worst
func (c *LocationComparer) RankPokemon() ([]Creature, error) {
	return Rank(c.graph)
}

// ScorePokemon is RankPokemon but keeps the scores and averages
func (c *LocationComparer) ScorePokemon() ([]ScoredCreature, error) {
	return Score(c.graph)
}
