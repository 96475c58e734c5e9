package pokenet

import (
	"errors"
	"testing"
)

func newCreature(name string, rawScore float64, types ...string) Creature {
	return Creature{Name: name, Types: types, RawScore: rawScore}
}

// fireWaterChart only knows that water beats fire and fire doesn't do much to water
func fireWaterChart(t *testing.T) *TypeChart {
	t.Helper()

	chart, err := NewTypeChart([]TypeMatchup{
		{Name: TYPENAME_FIRE, HalfTimes: []string{TYPENAME_WATER}},
		{Name: TYPENAME_WATER, TwoTimes: []string{TYPENAME_FIRE}},
	})
	if err != nil {
		t.Fatalf("could not build fire/water chart: %s", err)
	}

	return chart
}

func mustBuild(t *testing.T, creatures []Creature, oracle TypeOracle) Graph {
	t.Helper()

	graph, err := BuildGraph(creatures, oracle)
	if err != nil {
		t.Fatalf("failed to build graph: %s", err)
	}

	return graph
}

func mustWeight(t *testing.T, graph Graph, from string, to string) float64 {
	t.Helper()

	weight, ok := graph.Weight(from, to)
	if !ok {
		t.Fatalf("no edge %s -> %s", from, to)
	}

	return weight
}

type brokenOracle struct {
	err error
}

func (o brokenOracle) ZeroTimes(string) (TypeSet, error) { return nil, o.err }
func (o brokenOracle) HalfTimes(string) (TypeSet, error) { return nil, o.err }
func (o brokenOracle) TwoTimes(string) (TypeSet, error)  { return nil, o.err }

var errOracleDown = errors.New("oracle is down")
