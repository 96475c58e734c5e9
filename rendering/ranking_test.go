package rendering

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/yatzbim/PokeQuery/pokenet"
)

func testScores() []pokenet.ScoredCreature {
	return []pokenet.ScoredCreature{
		{
			Creature:   pokenet.Creature{Name: "squirtle", Types: []string{"water"}, RawScore: 100},
			OutAverage: 2,
			InAverage:  0.5,
			Score:      400,
		},
		{
			Creature:   pokenet.Creature{Name: "mr-mime", Types: []string{"psychic", "fairy"}, RawScore: 460},
			OutAverage: 1,
			InAverage:  1,
			Score:      460,
		},
	}
}

func TestRankingRows(t *testing.T) {
	rows := RankingRows(testScores())
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	expected := []string{"2", "Mr Mime", "Psychic/Fairy", "460", "1.000", "1.000", "460.00"}
	for i, cell := range expected {
		if rows[1][i] != cell {
			t.Fatalf("column %d: expected %q, got %q", i, cell, rows[1][i])
		}
	}
}

func TestRankingTableContainsEveryPokemon(t *testing.T) {
	rendered := RankingTable(testScores(), 0)

	for _, name := range []string{"Squirtle", "Mr Mime", "WATER", "PSYCHIC", "400.00"} {
		if !strings.Contains(rendered, name) {
			t.Fatalf("rendered table is missing %q:\n%s", name, rendered)
		}
	}
}

func TestPlainRanking(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(PlainRanking(testScores())), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected a header and 2 rows, got %d lines", len(lines))
	}

	if !strings.HasPrefix(lines[1], "1\tSquirtle\tWater\t") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
}

func TestBestTextColor(t *testing.T) {
	if c := BestTextColor(lipgloss.Color("#000000")); c != lipgloss.Color("#FFFFFF") {
		t.Fatalf("expected white text on black, got %s", c)
	}
	if c := BestTextColor(lipgloss.Color("#F7D02C")); c != lipgloss.Color("#000000") {
		t.Fatalf("expected black text on electric yellow, got %s", c)
	}
	if c := BestTextColor(lipgloss.Color("#705746")); c != lipgloss.Color("#FFFFFF") {
		t.Fatalf("expected white text on dark brown, got %s", c)
	}
	if c := BestTextColor(lipgloss.Color("33")); c != lipgloss.Color("#FFFFFF") {
		t.Fatalf("expected white text on an ANSI color, got %s", c)
	}
}

func TestBestTextColorEveryType(t *testing.T) {
	// badges are rendered without a terminal when output is piped, colors must not depend on one
	dark := map[string]bool{"fighting": true, "bug": true, "ghost": true, "dark": true}

	for typeName, color := range typeColors {
		expected := lipgloss.Color("#000000")
		if dark[typeName] {
			expected = lipgloss.Color("#FFFFFF")
		}

		if c := BestTextColor(color); c != expected {
			t.Fatalf("%s (%s) should get %s text, got %s", typeName, color, expected, c)
		}
	}
}

func TestTypeColorIgnoresCase(t *testing.T) {
	if TypeColor("FIRE") != TypeColor("fire") {
		t.Fatalf("type colors should ignore case")
	}
	if TypeColor("shadow") != unknownTypeColor {
		t.Fatalf("unknown types should get the fallback color")
	}
}
