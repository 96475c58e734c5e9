package rendering

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/yatzbim/PokeQuery/pokenet"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	RankingHeaders = []string{"#", "Pokemon", "Types", "Raw", "Out", "In", "Score"}

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightedColor).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// a Caser keeps state between calls so every call gets its own
func titleCase(text string) string {
	return cases.Title(language.English).String(text)
}

// DisplayName turns PokeAPI names like "mr-mime" into "Mr Mime"
func DisplayName(name string) string {
	return titleCase(strings.ReplaceAll(name, "-", " "))
}

// RankingRows is the text of every ranking row, without any styling
func RankingRows(scored []pokenet.ScoredCreature) [][]string {
	return lo.Map(scored, func(s pokenet.ScoredCreature, i int) []string {
		return []string{
			fmt.Sprint(i + 1),
			DisplayName(s.Name),
			strings.Join(lo.Map(s.Types, func(t string, _ int) string { return titleCase(t) }), "/"),
			fmt.Sprintf("%.0f", s.RawScore),
			fmt.Sprintf("%.3f", s.OutAverage),
			fmt.Sprintf("%.3f", s.InAverage),
			fmt.Sprintf("%.2f", s.Score),
		}
	})
}

// RankingTable renders the ranked pokemon of a location as a table.
// Types are drawn as colored badges, a width of 0 lets the table size itself.
func RankingTable(scored []pokenet.ScoredCreature, width int) string {
	rows := RankingRows(scored)
	for i, s := range scored {
		rows[i][2] = strings.Join(lo.Map(s.Types, func(t string, _ int) string { return TypeBadge(t) }), " ")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(DimColor)).
		Headers(RankingHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1 || col == 2:
				return cellStyle
			default:
				return numberStyle
			}
		})

	if width > 0 {
		t = t.Width(width)
	}

	return t.Render()
}

// PlainRanking is a tab separated ranking for piping into other tools
func PlainRanking(scored []pokenet.ScoredCreature) string {
	var builder strings.Builder
	builder.WriteString(strings.Join(RankingHeaders, "\t"))
	builder.WriteString("\n")

	for _, row := range RankingRows(scored) {
		builder.WriteString(strings.Join(row, "\t"))
		builder.WriteString("\n")
	}

	return builder.String()
}
