package pokenet

const (
	TYPENAME_NORMAL   = "Normal"
	TYPENAME_FIRE     = "Fire"
	TYPENAME_WATER    = "Water"
	TYPENAME_ELECTRIC = "Electric"
	TYPENAME_GRASS    = "Grass"
	TYPENAME_ICE      = "Ice"
	TYPENAME_FIGHTING = "Fighting"
	TYPENAME_POISON   = "Poison"
	TYPENAME_GROUND   = "Ground"
	TYPENAME_FLYING   = "Flying"
	TYPENAME_PSYCHIC  = "Psychic"
	TYPENAME_BUG      = "Bug"
	TYPENAME_ROCK     = "Rock"
	TYPENAME_GHOST    = "Ghost"
	TYPENAME_DRAGON   = "Dragon"
	TYPENAME_DARK     = "Dark"
	TYPENAME_STEEL    = "Steel"
	TYPENAME_FAIRY    = "Fairy"
)

// Effectiveness multipliers a single attacking type can have against a single defending type
const (
	MULT_ZERO    = 0.0
	MULT_HALF    = 0.5
	MULT_NEUTRAL = 1.0
	MULT_TWO     = 2.0
)

// MinEdgeWeight is the smallest non-zero weight an edge can have:
// one half effective pairing out of a two type vs two type grid.
const MinEdgeWeight = MULT_HALF / 4

var MATCHUP_NORMAL = TypeMatchup{
	Name:      TYPENAME_NORMAL,
	ZeroTimes: []string{TYPENAME_GHOST},
	HalfTimes: []string{TYPENAME_ROCK, TYPENAME_STEEL},
}

var MATCHUP_FIRE = TypeMatchup{
	Name:      TYPENAME_FIRE,
	HalfTimes: []string{TYPENAME_FIRE, TYPENAME_WATER, TYPENAME_ROCK, TYPENAME_DRAGON},
	TwoTimes:  []string{TYPENAME_GRASS, TYPENAME_ICE, TYPENAME_BUG, TYPENAME_STEEL},
}

var MATCHUP_WATER = TypeMatchup{
	Name:      TYPENAME_WATER,
	HalfTimes: []string{TYPENAME_WATER, TYPENAME_GRASS, TYPENAME_DRAGON},
	TwoTimes:  []string{TYPENAME_FIRE, TYPENAME_GROUND, TYPENAME_ROCK},
}

var MATCHUP_ELECTRIC = TypeMatchup{
	Name:      TYPENAME_ELECTRIC,
	ZeroTimes: []string{TYPENAME_GROUND},
	HalfTimes: []string{TYPENAME_ELECTRIC, TYPENAME_GRASS, TYPENAME_DRAGON},
	TwoTimes:  []string{TYPENAME_WATER, TYPENAME_FLYING},
}

var MATCHUP_GRASS = TypeMatchup{
	Name: TYPENAME_GRASS,
	HalfTimes: []string{
		TYPENAME_FIRE, TYPENAME_GRASS, TYPENAME_POISON, TYPENAME_FLYING,
		TYPENAME_BUG, TYPENAME_DRAGON, TYPENAME_STEEL,
	},
	TwoTimes: []string{TYPENAME_WATER, TYPENAME_GROUND, TYPENAME_ROCK},
}

var MATCHUP_ICE = TypeMatchup{
	Name:      TYPENAME_ICE,
	HalfTimes: []string{TYPENAME_FIRE, TYPENAME_WATER, TYPENAME_ICE, TYPENAME_STEEL},
	TwoTimes:  []string{TYPENAME_GRASS, TYPENAME_GROUND, TYPENAME_FLYING, TYPENAME_DRAGON},
}

var MATCHUP_FIGHTING = TypeMatchup{
	Name:      TYPENAME_FIGHTING,
	ZeroTimes: []string{TYPENAME_GHOST},
	HalfTimes: []string{TYPENAME_POISON, TYPENAME_FLYING, TYPENAME_PSYCHIC, TYPENAME_BUG, TYPENAME_FAIRY},
	TwoTimes:  []string{TYPENAME_NORMAL, TYPENAME_ICE, TYPENAME_ROCK, TYPENAME_DARK, TYPENAME_STEEL},
}

var MATCHUP_POISON = TypeMatchup{
	Name:      TYPENAME_POISON,
	ZeroTimes: []string{TYPENAME_STEEL},
	HalfTimes: []string{TYPENAME_POISON, TYPENAME_GROUND, TYPENAME_ROCK, TYPENAME_GHOST},
	TwoTimes:  []string{TYPENAME_GRASS, TYPENAME_FAIRY},
}

var MATCHUP_GROUND = TypeMatchup{
	Name:      TYPENAME_GROUND,
	ZeroTimes: []string{TYPENAME_FLYING},
	HalfTimes: []string{TYPENAME_GRASS, TYPENAME_BUG},
	TwoTimes:  []string{TYPENAME_FIRE, TYPENAME_ELECTRIC, TYPENAME_POISON, TYPENAME_ROCK, TYPENAME_STEEL},
}

var MATCHUP_FLYING = TypeMatchup{
	Name:      TYPENAME_FLYING,
	HalfTimes: []string{TYPENAME_ELECTRIC, TYPENAME_ROCK, TYPENAME_STEEL},
	TwoTimes:  []string{TYPENAME_GRASS, TYPENAME_FIGHTING, TYPENAME_BUG},
}

var MATCHUP_PSYCHIC = TypeMatchup{
	Name:      TYPENAME_PSYCHIC,
	ZeroTimes: []string{TYPENAME_DARK},
	HalfTimes: []string{TYPENAME_PSYCHIC, TYPENAME_STEEL},
	TwoTimes:  []string{TYPENAME_FIGHTING, TYPENAME_POISON},
}

var MATCHUP_BUG = TypeMatchup{
	Name: TYPENAME_BUG,
	HalfTimes: []string{
		TYPENAME_FIRE, TYPENAME_FIGHTING, TYPENAME_POISON, TYPENAME_FLYING,
		TYPENAME_GHOST, TYPENAME_STEEL, TYPENAME_FAIRY,
	},
	TwoTimes: []string{TYPENAME_GRASS, TYPENAME_PSYCHIC, TYPENAME_DARK},
}

var MATCHUP_ROCK = TypeMatchup{
	Name:      TYPENAME_ROCK,
	HalfTimes: []string{TYPENAME_FIGHTING, TYPENAME_GROUND, TYPENAME_STEEL},
	TwoTimes:  []string{TYPENAME_FIRE, TYPENAME_ICE, TYPENAME_FLYING, TYPENAME_BUG},
}

var MATCHUP_GHOST = TypeMatchup{
	Name:      TYPENAME_GHOST,
	ZeroTimes: []string{TYPENAME_NORMAL},
	HalfTimes: []string{TYPENAME_DARK},
	TwoTimes:  []string{TYPENAME_PSYCHIC, TYPENAME_GHOST},
}

var MATCHUP_DRAGON = TypeMatchup{
	Name:      TYPENAME_DRAGON,
	ZeroTimes: []string{TYPENAME_FAIRY},
	HalfTimes: []string{TYPENAME_STEEL},
	TwoTimes:  []string{TYPENAME_DRAGON},
}

var MATCHUP_DARK = TypeMatchup{
	Name:      TYPENAME_DARK,
	HalfTimes: []string{TYPENAME_FIGHTING, TYPENAME_DARK, TYPENAME_FAIRY},
	TwoTimes:  []string{TYPENAME_PSYCHIC, TYPENAME_GHOST},
}

var MATCHUP_STEEL = TypeMatchup{
	Name:      TYPENAME_STEEL,
	HalfTimes: []string{TYPENAME_FIRE, TYPENAME_WATER, TYPENAME_ELECTRIC, TYPENAME_STEEL},
	TwoTimes:  []string{TYPENAME_ICE, TYPENAME_ROCK, TYPENAME_FAIRY},
}

var MATCHUP_FAIRY = TypeMatchup{
	Name:      TYPENAME_FAIRY,
	HalfTimes: []string{TYPENAME_FIRE, TYPENAME_POISON, TYPENAME_STEEL},
	TwoTimes:  []string{TYPENAME_FIGHTING, TYPENAME_DRAGON, TYPENAME_DARK},
}

// DEFAULT_MATCHUPS is the Gen 6+ type chart
var DEFAULT_MATCHUPS = [...]TypeMatchup{
	MATCHUP_NORMAL,
	MATCHUP_FIRE,
	MATCHUP_WATER,
	MATCHUP_ELECTRIC,
	MATCHUP_GRASS,
	MATCHUP_ICE,
	MATCHUP_FIGHTING,
	MATCHUP_POISON,
	MATCHUP_GROUND,
	MATCHUP_FLYING,
	MATCHUP_PSYCHIC,
	MATCHUP_BUG,
	MATCHUP_ROCK,
	MATCHUP_GHOST,
	MATCHUP_DRAGON,
	MATCHUP_DARK,
	MATCHUP_STEEL,
	MATCHUP_FAIRY,
}
