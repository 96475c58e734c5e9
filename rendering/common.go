package rendering

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	HighlightedColor = lipgloss.Color("33")
	BlackTextColor   = lipgloss.Color("0")
	DimColor         = lipgloss.Color("245")

	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(HighlightedColor)
	DetailStyle = lipgloss.NewStyle().Foreground(DimColor)

	typeColors = map[string]lipgloss.Color{
		"normal":   lipgloss.Color("#A8A77A"),
		"fire":     lipgloss.Color("#EE8130"),
		"water":    lipgloss.Color("#6390F0"),
		"electric": lipgloss.Color("#F7D02C"),
		"grass":    lipgloss.Color("#7AC74C"),
		"ice":      lipgloss.Color("#96D9D6"),
		"fighting": lipgloss.Color("#C22E28"),
		"poison":   lipgloss.Color("#A33EA1"),
		"ground":   lipgloss.Color("#E2BF65"),
		"flying":   lipgloss.Color("#A98FF3"),
		"psychic":  lipgloss.Color("#F95587"),
		"bug":      lipgloss.Color("#A6B91A"),
		"rock":     lipgloss.Color("#B6A136"),
		"ghost":    lipgloss.Color("#735797"),
		"dragon":   lipgloss.Color("#6F35FC"),
		"dark":     lipgloss.Color("#705746"),
		"steel":    lipgloss.Color("#B7B7CE"),
		"fairy":    lipgloss.Color("#D685AD"),
	}
	unknownTypeColor = lipgloss.Color("#68A090")
)

func Center(width int, height int, text string) string {
	return lipgloss.PlaceVertical(height, lipgloss.Center, lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
}

// BestTextColor picks black or white text for a hex background color.
// ANSI color numbers can't be judged without a terminal so they get white text.
func BestTextColor(backgroundColor lipgloss.Color) lipgloss.Color {
	// thanks https://andrisignorell.github.io/DescTools/reference/TextContrastColor.html
	c, err := colorful.Hex(string(backgroundColor))
	if err != nil {
		return lipgloss.Color("#FFFFFF")
	}

	mean := (c.R + c.G + c.B) / 3 * 255
	if mean < 127 {
		return lipgloss.Color("#FFFFFF")
	} else {
		return lipgloss.Color("#000000")
	}
}

func TypeColor(typeName string) lipgloss.Color {
	color, ok := typeColors[strings.ToLower(typeName)]
	if !ok {
		return unknownTypeColor
	}

	return color
}

// TypeBadge renders a type name on its type color
func TypeBadge(typeName string) string {
	color := TypeColor(typeName)
	return lipgloss.NewStyle().
		Background(color).
		Foreground(BestTextColor(color)).
		Padding(0, 1).
		Render(strings.ToUpper(typeName))
}
