package rankview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/yatzbim/PokeQuery/global"
	"github.com/yatzbim/PokeQuery/pokenet"
	"github.com/yatzbim/PokeQuery/rendering"
)

var (
	columnWidths = []int{4, 16, 18, 6, 7, 7, 9}

	tableStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(rendering.DimColor)
	helpStyle  = lipgloss.NewStyle().Foreground(rendering.DimColor)
)

type Model struct {
	location string
	scored   []pokenet.ScoredCreature
	table    table.Model

	width  int
	height int
}

func NewModel(location string, scored []pokenet.ScoredCreature) Model {
	columns := lo.Map(rendering.RankingHeaders, func(header string, i int) table.Column {
		return table.Column{Title: header, Width: columnWidths[i]}
	})
	rows := lo.Map(rendering.RankingRows(scored), func(row []string, _ int) table.Row {
		return table.Row(row)
	})

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(rendering.HighlightedColor)
	styles.Selected = styles.Selected.Foreground(rendering.BlackTextColor).Background(rendering.HighlightedColor)

	height := min(len(rows), 15) + 1
	if global.TERM_HEIGHT > 8 {
		height = min(len(rows)+1, global.TERM_HEIGHT-8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithStyles(styles),
	)

	return Model{
		location: location,
		scored:   scored,
		table:    t,
		width:    global.TERM_WIDTH,
		height:   global.TERM_HEIGHT,
	}
}

// Selected is the pokemon under the cursor
func (m Model) Selected() (pokenet.ScoredCreature, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.scored) {
		return pokenet.ScoredCreature{}, false
	}

	return m.scored[cursor], true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) View() string {
	title := rendering.TitleStyle.Render(fmt.Sprintf("Best pokemon at %s", rendering.DisplayName(m.location)))

	detail := ""
	if selected, ok := m.Selected(); ok {
		badges := strings.Join(lo.Map(selected.Types, func(t string, _ int) string { return rendering.TypeBadge(t) }), " ")
		detail = fmt.Sprintf(
			"%s %s\nhits the others for %.3fx on average, gets hit for %.3fx, score %.2f",
			rendering.DisplayName(selected.Name),
			badges,
			selected.OutAverage,
			selected.InAverage,
			selected.Score,
		)
		if selected.Untouchable {
			detail += "\nnothing else here can hit it"
		}
	}

	help := helpStyle.Render(fmt.Sprintf("%s %s • %s %s • %s %s",
		global.MoveUpKey.Help().Key, global.MoveUpKey.Help().Desc,
		global.MoveDownKey.Help().Key, global.MoveDownKey.Help().Desc,
		global.BackKey.Help().Key, global.BackKey.Help().Desc,
	))

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		tableStyle.Render(m.table.View()),
		rendering.DetailStyle.Render(detail),
		help,
	)

	if m.width <= 0 || m.height <= 0 {
		return body
	}

	return rendering.Center(m.width, m.height, body)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, global.BackKey):
			return m, tea.Quit
		case key.Matches(msg, global.MoveUpKey):
			m.table.MoveUp(1)
			return m, nil
		case key.Matches(msg, global.MoveDownKey):
			m.table.MoveDown(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}
