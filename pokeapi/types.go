package pokeapi

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/yatzbim/PokeQuery/pokenet"
	"golang.org/x/sync/errgroup"
)

func resourceNames(resources []NamedApiResource) []string {
	return lo.Map(resources, func(r NamedApiResource, _ int) string { return r.Name })
}

func (t typeResponse) matchup() pokenet.TypeMatchup {
	return pokenet.TypeMatchup{
		Name:      t.Name,
		ZeroTimes: resourceNames(t.DamageRelations.NoDamageTo),
		HalfTimes: resourceNames(t.DamageRelations.HalfDamageTo),
		TwoTimes:  resourceNames(t.DamageRelations.DoubleDamageTo),
	}
}

// LoadTypeChart builds a type chart from every type PokeAPI knows about
func (c *Client) LoadTypeChart(ctx context.Context) (*pokenet.TypeChart, error) {
	typeResources, err := c.listAll(ctx, c.url("/type?offset=0&limit=100"))
	if err != nil {
		return nil, fmt.Errorf("list types: %w", err)
	}

	matchups := make([]pokenet.TypeMatchup, len(typeResources))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentRequests)

	for i, resource := range typeResources {
		group.Go(func() error {
			typeInfo, err := FollowNamedResource[typeResponse](groupCtx, c, resource)
			if err != nil {
				return fmt.Errorf("type %s: %w", resource.Name, err)
			}

			matchups[i] = typeInfo.matchup()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	log.Info().Int("type_count", len(matchups)).Msg("loaded type chart from PokeAPI")

	return pokenet.NewTypeChart(matchups)
}
