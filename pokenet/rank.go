package pokenet

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// ScoredCreature is a pokemon along with how it did in the effectiveness network
type ScoredCreature struct {
	Creature
	// OutAverage is the average weight of this pokemon's edges to everyone else (how well it hits)
	OutAverage float64
	// InAverage is the average weight of everyone else's edges to this pokemon (how well it gets hit)
	InAverage float64
	Score     float64
	// Untouchable is set when nothing else at the location can damage this pokemon but it can
	// damage something. Untouchable pokemon always rank above the rest.
	Untouchable bool
}

// Rank orders the pokemon in the graph from best to worst score.
// Pokemon with equal scores keep the order they were given to BuildGraph.
func Rank(graph Graph) ([]Creature, error) {
	scored, err := Score(graph)
	if err != nil {
		return nil, err
	}

	return lo.Map(scored, func(s ScoredCreature, _ int) Creature {
		return s.Creature
	}), nil
}

// Score walks the graph and scores every pokemon, returning them sorted by descending score.
//
// A pokemon's score is its raw score scaled by outAverage / inAverage, so pokemon that hit
// the rest of the location hard and take little back end up above their raw score.
// Untouchable pokemon would score infinity, so they are ranked first (by raw score times
// outAverage among themselves) while their reported Score stays finite.
func Score(graph Graph) ([]ScoredCreature, error) {
	nodeCount := graph.Len()
	if nodeCount < 2 {
		return nil, fmt.Errorf("%w: need at least 2 pokemon to score, got %d", ErrInvalidInput, nodeCount)
	}

	outSums, inSums, err := propagate(graph)
	if err != nil {
		return nil, err
	}

	others := float64(nodeCount - 1)
	scored := make([]ScoredCreature, 0, nodeCount)

	for i := range nodeCount {
		creature := graph.Creature(i)
		outAvg := outSums[i] / others
		inAvg := inSums[i] / others

		scored = append(scored, ScoredCreature{
			Creature:    creature,
			OutAverage:  outAvg,
			InAverage:   inAvg,
			Score:       creature.RawScore * effectivenessRatio(outAvg, inAvg, others),
			Untouchable: inAvg == 0 && outAvg > 0,
		})
	}

	slices.SortStableFunc(scored, compareScored)

	internalLogger.V(1).Info("scored pokemon", "pokemon_count", nodeCount, "best", scored[0].Name, "best_score", scored[0].Score)

	return scored, nil
}

// compareScored orders best first
func compareScored(a, b ScoredCreature) int {
	switch {
	case a.Untouchable && !b.Untouchable:
		return -1
	case !a.Untouchable && b.Untouchable:
		return 1
	case a.Untouchable && b.Untouchable:
		return cmp.Compare(b.RawScore*b.OutAverage, a.RawScore*a.OutAverage)
	default:
		return cmp.Compare(b.Score, a.Score)
	}
}

// propagate does a breadth first walk over the graph starting at node 0.
// Every visited node adds its outgoing weights to its own out sum and to its targets' in sums.
func propagate(graph Graph) (outSums []float64, inSums []float64, err error) {
	nodeCount := graph.Len()
	outSums = make([]float64, nodeCount)
	inSums = make([]float64, nodeCount)
	visited := make([]bool, nodeCount)
	visitedCount := 0

	queue := []int{0}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}

		for _, edge := range graph.edges[current] {
			outSums[current] += edge.Weight
			inSums[edge.Target] += edge.Weight

			if !visited[edge.Target] {
				queue = append(queue, edge.Target)
			}
		}

		visited[current] = true
		visitedCount++
	}

	if visitedCount != nodeCount {
		internalLogger.Error(ErrIncompleteTraversal, "graph walk missed pokemon", "visited", visitedCount, "pokemon_count", nodeCount)
		return nil, nil, fmt.Errorf("%w: visited %d of %d", ErrIncompleteTraversal, visitedCount, nodeCount)
	}

	return outSums, inSums, nil
}

// effectivenessRatio is outAvg / inAvg, kept finite for pokemon that nothing else can hit.
// Their ranking is handled by compareScored, the floored value is only for display.
func effectivenessRatio(outAvg float64, inAvg float64, others float64) float64 {
	if inAvg > 0 {
		return outAvg / inAvg
	}

	if outAvg == 0 {
		return 1
	}

	return outAvg / (MinEdgeWeight / others)
}
