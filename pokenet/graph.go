package pokenet

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// maxOracleCalls caps how many types get resolved against the oracle at once
const maxOracleCalls = 8

// Edge is one weighted, directed connection from a pokemon to the pokemon at Target
type Edge struct {
	Target int
	Weight float64
}

// Graph is the complete type effectiveness network of a location.
// Nodes are stored in the order they were given to BuildGraph and every node
// has exactly one edge to every other node. A Graph can't be changed once built.
type Graph struct {
	nodes []Creature
	edges [][]Edge
	index map[string]int
}

// matchup is the oracle's answer for one attacking type
type matchup struct {
	zero TypeSet
	half TypeSet
	two  TypeSet
}

func (m matchup) against(defenseType string) float64 {
	switch {
	case m.zero.Contains(defenseType):
		return MULT_ZERO
	case m.half.Contains(defenseType):
		return MULT_HALF
	case m.two.Contains(defenseType):
		return MULT_TWO
	default:
		return MULT_NEUTRAL
	}
}

// BuildGraph creates the effectiveness network between every pair of creatures.
// The weight of the edge A -> B is the average multiplier of A's types attacking B's types.
func BuildGraph(creatures []Creature, oracle TypeOracle) (Graph, error) {
	if err := validateCreatures(creatures); err != nil {
		return Graph{}, err
	}

	matchups, err := resolveMatchups(creatures, oracle)
	if err != nil {
		return Graph{}, err
	}

	nodes := lo.Map(creatures, func(c Creature, _ int) Creature {
		c.Types = slices.Clone(c.Types)
		return c
	})

	graph := Graph{
		nodes: nodes,
		edges: make([][]Edge, len(nodes)),
		index: make(map[string]int, len(nodes)),
	}

	for i, attacker := range nodes {
		graph.index[attacker.Name] = i

		row := make([]Edge, 0, len(nodes)-1)
		for j, defender := range nodes {
			if i == j {
				continue
			}

			row = append(row, Edge{Target: j, Weight: edgeWeight(attacker, defender, matchups)})
		}

		graph.edges[i] = row
	}

	internalLogger.V(1).Info("built effectiveness graph", "pokemon_count", len(nodes), "type_count", len(matchups))

	return graph, nil
}

func edgeWeight(attacker Creature, defender Creature, matchups map[string]matchup) float64 {
	total := 0.0
	for _, attackType := range attacker.Types {
		m := matchups[normalizeType(attackType)]
		for _, defenseType := range defender.Types {
			total += m.against(defenseType)
		}
	}

	return total / float64(len(attacker.Types)*len(defender.Types))
}

func validateCreatures(creatures []Creature) error {
	if len(creatures) == 0 {
		return fmt.Errorf("%w: no pokemon given", ErrInvalidInput)
	}

	dupes := lo.FindDuplicatesBy(creatures, func(c Creature) string { return c.Name })
	if len(dupes) > 0 {
		return fmt.Errorf("%w: pokemon %s appears more than once", ErrInvalidInput, dupes[0].Name)
	}

	for _, c := range creatures {
		if c.Name == "" {
			return fmt.Errorf("%w: pokemon without a name", ErrInvalidInput)
		}

		if len(c.Types) == 0 || len(c.Types) > 2 {
			return fmt.Errorf("%w: %s has %d types, expected 1 or 2", ErrInvalidInput, c.Name, len(c.Types))
		}

		if c.RawScore < 0 {
			return fmt.Errorf("%w: %s has negative raw score %f", ErrInvalidInput, c.Name, c.RawScore)
		}
	}

	return nil
}

// resolveMatchups asks the oracle about every distinct attacking type once
func resolveMatchups(creatures []Creature, oracle TypeOracle) (map[string]matchup, error) {
	typeNames := lo.Uniq(lo.FlatMap(creatures, func(c Creature, _ int) []string {
		return lo.Map(c.Types, func(t string, _ int) string { return normalizeType(t) })
	}))

	resolved := make([]matchup, len(typeNames))

	var group errgroup.Group
	group.SetLimit(maxOracleCalls)

	for i, typeName := range typeNames {
		group.Go(func() error {
			zero, err := oracle.ZeroTimes(typeName)
			if err != nil {
				return fmt.Errorf("%w: zero times %s: %w", ErrOracle, typeName, err)
			}
			half, err := oracle.HalfTimes(typeName)
			if err != nil {
				return fmt.Errorf("%w: half times %s: %w", ErrOracle, typeName, err)
			}
			two, err := oracle.TwoTimes(typeName)
			if err != nil {
				return fmt.Errorf("%w: two times %s: %w", ErrOracle, typeName, err)
			}

			resolved[i] = matchup{zero: NewTypeSet(zero.Names()...), half: NewTypeSet(half.Names()...), two: NewTypeSet(two.Names()...)}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		internalLogger.Error(err, "could not resolve type matchups")
		return nil, err
	}

	matchups := make(map[string]matchup, len(typeNames))
	for i, typeName := range typeNames {
		matchups[typeName] = resolved[i]
	}

	return matchups, nil
}

// Len is the number of pokemon in the graph
func (g Graph) Len() int {
	return len(g.nodes)
}

// Creature returns the pokemon at node index i
func (g Graph) Creature(i int) Creature {
	c := g.nodes[i]
	c.Types = slices.Clone(c.Types)
	return c
}

// Creatures returns every pokemon in the graph in node order
func (g Graph) Creatures() []Creature {
	return lo.Times(len(g.nodes), g.Creature)
}

// Edges returns a copy of the outgoing edges of node i
func (g Graph) Edges(i int) []Edge {
	return slices.Clone(g.edges[i])
}

// IndexOf returns the node index of the pokemon with the given name
func (g Graph) IndexOf(name string) (int, bool) {
	i, ok := g.index[name]
	return i, ok
}

// Weight returns the weight of the edge from one pokemon to another
func (g Graph) Weight(from string, to string) (float64, bool) {
	fromIndex, ok := g.index[from]
	if !ok {
		return 0, false
	}
	toIndex, ok := g.index[to]
	if !ok {
		return 0, false
	}

	edge, ok := lo.Find(g.edges[fromIndex], func(e Edge) bool { return e.Target == toIndex })
	return edge.Weight, ok
}
