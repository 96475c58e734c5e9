package pokenet

import (
	"fmt"
	"maps"
	"slices"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// TypeMatchup lists what an attack of type Name does against each defending type.
// Defending types that aren't listed take neutral damage.
type TypeMatchup struct {
	Name      string   `yaml:"name" json:"name"`
	ZeroTimes []string `yaml:"zero,omitempty" json:"zero,omitempty"`
	HalfTimes []string `yaml:"half,omitempty" json:"half,omitempty"`
	TwoTimes  []string `yaml:"two,omitempty" json:"two,omitempty"`
}

type chartFile struct {
	Types []TypeMatchup `yaml:"types"`
}

type resolvedMatchup struct {
	name string
	zero TypeSet
	half TypeSet
	two  TypeSet
}

// TypeChart is an in-memory TypeOracle.
type TypeChart struct {
	// Strict makes lookups of types that aren't in the chart fail with ErrUnknownType.
	// Otherwise they are treated as having no special matchups, i.e. neutral against everything.
	Strict bool

	matchups map[string]resolvedMatchup
}

// NewTypeChart validates the given matchups and builds a chart out of them.
func NewTypeChart(matchups []TypeMatchup) (*TypeChart, error) {
	chart := &TypeChart{matchups: make(map[string]resolvedMatchup, len(matchups))}

	for _, m := range matchups {
		key := normalizeType(m.Name)
		if key == "" {
			return nil, fmt.Errorf("%w: type matchup without a name", ErrInvalidInput)
		}

		if _, ok := chart.matchups[key]; ok {
			return nil, fmt.Errorf("%w: type %s is listed twice", ErrInvalidInput, m.Name)
		}

		all := slices.Concat(m.ZeroTimes, m.HalfTimes, m.TwoTimes)
		dupes := lo.FindDuplicatesBy(all, normalizeType)
		if len(dupes) > 0 {
			return nil, fmt.Errorf("%w: %s lists %v in more than one multiplier", ErrInvalidInput, m.Name, dupes)
		}

		chart.matchups[key] = resolvedMatchup{
			name: m.Name,
			zero: NewTypeSet(m.ZeroTimes...),
			half: NewTypeSet(m.HalfTimes...),
			two:  NewTypeSet(m.TwoTimes...),
		}
	}

	internalLogger.V(1).Info("built type chart", "type_count", len(chart.matchups))

	return chart, nil
}

// DefaultTypeChart returns the built in Gen 6+ chart
func DefaultTypeChart() *TypeChart {
	chart, err := NewTypeChart(DEFAULT_MATCHUPS[:])
	if err != nil {
		// the built in chart is static, this only happens if consts.go is broken
		panic(err)
	}

	return chart
}

// LoadTypeChart parses a YAML type chart of the form:
//
//	types:
//	  - name: fire
//	    half: [fire, water, rock, dragon]
//	    two: [grass, ice, bug, steel]
func LoadTypeChart(chartBytes []byte) (*TypeChart, error) {
	file := chartFile{}
	if err := yaml.Unmarshal(chartBytes, &file); err != nil {
		internalLogger.Error(err, "invalid type chart yaml")
		return nil, fmt.Errorf("type chart: %w", err)
	}

	if len(file.Types) == 0 {
		return nil, fmt.Errorf("%w: type chart has no types", ErrInvalidInput)
	}

	return NewTypeChart(file.Types)
}

// Types returns the display names of every type in the chart, sorted
func (c *TypeChart) Types() []string {
	names := lo.MapToSlice(c.matchups, func(_ string, m resolvedMatchup) string {
		return m.name
	})
	slices.Sort(names)

	return names
}

// Matchup returns the chart entry for a type in its original form
func (c *TypeChart) Matchup(typeName string) (TypeMatchup, bool) {
	m, ok := c.matchups[normalizeType(typeName)]
	if !ok {
		return TypeMatchup{}, false
	}

	return TypeMatchup{
		Name:      m.name,
		ZeroTimes: m.zero.Names(),
		HalfTimes: m.half.Names(),
		TwoTimes:  m.two.Names(),
	}, true
}

func (c *TypeChart) ZeroTimes(typeName string) (TypeSet, error) {
	return c.lookup(typeName, func(m resolvedMatchup) TypeSet { return m.zero })
}

func (c *TypeChart) HalfTimes(typeName string) (TypeSet, error) {
	return c.lookup(typeName, func(m resolvedMatchup) TypeSet { return m.half })
}

func (c *TypeChart) TwoTimes(typeName string) (TypeSet, error) {
	return c.lookup(typeName, func(m resolvedMatchup) TypeSet { return m.two })
}

func (c *TypeChart) lookup(typeName string, pick func(resolvedMatchup) TypeSet) (TypeSet, error) {
	m, ok := c.matchups[normalizeType(typeName)]
	if !ok {
		if c.Strict {
			return nil, fmt.Errorf("%w: %s", ErrUnknownType, typeName)
		}

		internalLogger.V(1).Info("type not in chart, treating it as neutral", "type", typeName)
		return TypeSet{}, nil
	}

	return maps.Clone(pick(m)), nil
}
