package pokeapi

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/yatzbim/PokeQuery/pokenet"
	"golang.org/x/sync/errgroup"
)

// CreaturesAt lists every pokemon that can be encountered at a location, in the order PokeAPI lists them.
// location is either a location name (every area of it is used) or a single location-area name.
func (c *Client) CreaturesAt(ctx context.Context, location string) ([]pokenet.Creature, error) {
	areas, err := c.locationAreas(ctx, location)
	if err != nil {
		return nil, err
	}

	encountered := make([]NamedApiResource, 0)
	for _, area := range areas {
		areaInfo, err := FollowNamedResource[locationAreaResponse](ctx, c, area)
		if err != nil {
			return nil, fmt.Errorf("location area %s: %w", area.Name, err)
		}

		for _, encounter := range areaInfo.PokemonEncounters {
			if !c.inVersion(encounter) {
				continue
			}

			encountered = append(encountered, encounter.Pokemon)
		}
	}

	// the same pokemon usually shows up in more than one area
	encountered = lo.UniqBy(encountered, func(r NamedApiResource) string { return r.Name })

	log.Debug().Str("location", location).Int("area_count", len(areas)).Int("pokemon_count", len(encountered)).Msg("found encounters")

	creatures := make([]pokenet.Creature, len(encountered))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentRequests)

	for i, resource := range encountered {
		group.Go(func() error {
			pokemon, err := FollowNamedResource[pokemonResponse](groupCtx, c, resource)
			if err != nil {
				return fmt.Errorf("pokemon %s: %w", resource.Name, err)
			}

			creatures[i] = pokemon.creature()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return creatures, nil
}

func (c *Client) locationAreas(ctx context.Context, location string) ([]NamedApiResource, error) {
	locationInfo := locationResponse{}
	err := c.GetJSON(ctx, c.url("/location/"+location+"/"), &locationInfo)

	if errors.Is(err, ErrNotFound) {
		log.Debug().Str("location", location).Msg("no location with that name, trying it as a location area")
		return []NamedApiResource{{Name: location, Url: c.url("/location-area/" + location + "/")}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("location %s: %w", location, err)
	}

	return locationInfo.Areas, nil
}

func (c *Client) inVersion(encounter pokemonEncounter) bool {
	if c.Version == "" {
		return true
	}

	return lo.ContainsBy(encounter.VersionDetails, func(d versionDetail) bool {
		return d.Version.Name == c.Version
	})
}

// creature turns a PokeAPI pokemon into a Creature. Its raw score is its base stat total.
func (p pokemonResponse) creature() pokenet.Creature {
	types := slices.Clone(p.Types)
	slices.SortFunc(types, func(a, b typeSlot) int {
		return cmp.Compare(a.Slot, b.Slot)
	})

	return pokenet.Creature{
		Name:     p.Name,
		Types:    lo.Map(types, func(t typeSlot, _ int) string { return t.Type.Name }),
		RawScore: float64(lo.SumBy(p.Stats, func(s baseStat) int { return s.BaseStat })),
	}
}
