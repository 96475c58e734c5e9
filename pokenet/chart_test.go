package pokenet

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefaultChart(t *testing.T) {
	chart := DefaultTypeChart()

	if len(chart.Types()) != len(DEFAULT_MATCHUPS) {
		t.Fatalf("default chart should have %d types, got %d", len(DEFAULT_MATCHUPS), len(chart.Types()))
	}

	zero, err := chart.ZeroTimes(TYPENAME_ELECTRIC)
	if err != nil {
		t.Fatalf("electric lookup failed: %s", err)
	}
	if !zero.Contains("ground") {
		t.Fatalf("electric should do nothing to ground, got %v", zero.Names())
	}

	two, err := chart.TwoTimes("fire")
	if err != nil {
		t.Fatalf("fire lookup failed: %s", err)
	}
	if !reflect.DeepEqual(two.Names(), []string{"bug", "grass", "ice", "steel"}) {
		t.Fatalf("fire should be super effective against bug, grass, ice and steel, got %v", two.Names())
	}

	half, err := chart.HalfTimes(TYPENAME_DRAGON)
	if err != nil {
		t.Fatalf("dragon lookup failed: %s", err)
	}
	if half.Len() != 1 || !half.Contains(TYPENAME_STEEL) {
		t.Fatalf("dragon should only be resisted by steel, got %v", half.Names())
	}
}

func TestChartLookupReturnsCopy(t *testing.T) {
	chart := DefaultTypeChart()

	two, _ := chart.TwoTimes(TYPENAME_WATER)
	two["normal"] = struct{}{}

	again, _ := chart.TwoTimes(TYPENAME_WATER)
	if again.Contains(TYPENAME_NORMAL) {
		t.Fatalf("changing a returned set changed the chart")
	}
}

func TestUnknownTypeLookup(t *testing.T) {
	chart := DefaultTypeChart()

	set, err := chart.TwoTimes("shadow")
	if err != nil {
		t.Fatalf("non strict chart shouldn't fail on unknown types: %s", err)
	}
	if set.Len() != 0 {
		t.Fatalf("unknown type should have no matchups, got %v", set.Names())
	}

	chart.Strict = true
	if _, err := chart.TwoTimes("shadow"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("strict chart should fail with ErrUnknownType, got %v", err)
	}
}

func TestLoadTypeChart(t *testing.T) {
	chart, err := LoadTypeChart([]byte(`
types:
  - name: fire
    half: [fire, water]
    two: [grass]
  - name: water
    half: [water]
    two: [fire]
  - name: grass
    half: [fire, grass]
    two: [water]
`))
	if err != nil {
		t.Fatalf("failed to load chart: %s", err)
	}

	if !reflect.DeepEqual(chart.Types(), []string{"fire", "grass", "water"}) {
		t.Fatalf("unexpected types: %v", chart.Types())
	}

	matchup, ok := chart.Matchup("Grass")
	if !ok {
		t.Fatalf("grass should be in the chart")
	}
	if !reflect.DeepEqual(matchup.HalfTimes, []string{"fire", "grass"}) || !reflect.DeepEqual(matchup.TwoTimes, []string{"water"}) {
		t.Fatalf("unexpected grass matchup: %+v", matchup)
	}

	graph := mustBuild(t, []Creature{
		newCreature("oddish", 320, "grass"),
		newCreature("psyduck", 320, "water"),
	}, chart)

	if w := mustWeight(t, graph, "oddish", "psyduck"); w != 2.0 {
		t.Fatalf("grass -> water should be 2.0 with the loaded chart, got %f", w)
	}
}

func TestLoadTypeChartRejectsBadCharts(t *testing.T) {
	tests := []struct {
		name  string
		chart string
	}{
		{"not yaml", "types: [fire"},
		{"no types", "types: []"},
		{"missing name", "types:\n  - half: [fire]"},
		{"same type twice", "types:\n  - name: fire\n  - name: Fire"},
		{"conflicting multipliers", "types:\n  - name: fire\n    half: [water]\n    two: [Water]"},
	}

	for _, test := range tests {
		if _, err := LoadTypeChart([]byte(test.chart)); err == nil {
			t.Fatalf("%s: expected an error", test.name)
		}
	}
}
