// Package printer renders strategic-form games as human-readable tables.
package printer

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"

	"github.com/timpalpant/gamesolver/matrixgame"
)

const corner = "P1 \\ P2"

// Render returns the title, each player's strategies and the payoff table
// of the game, with Player 1 (row player) strategies as rows and Player 2
// (column player) strategies as columns.
func Render(g *matrixgame.Game, title string) (string, error) {
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n")
	for p := matrixgame.Player0; p <= matrixgame.Player1; p++ {
		fmt.Fprintf(&sb, "  Player %d strategies: %s\n",
			int(p)+1, strings.Join(g.Strategies(p), ", "))
	}

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(payoffTable(g)).
		Srender()
	if err != nil {
		return "", errors.Wrap(err, "rendering payoff table")
	}

	sb.WriteString("  Payoff matrix (rows: Player 1, cols: Player 2):\n")
	sb.WriteString(table)
	return sb.String(), nil
}

// Print renders the game to standard output.
func Print(g *matrixgame.Game, title string) error {
	s, err := Render(g, title)
	if err != nil {
		return err
	}

	pterm.Println(s)
	return nil
}

func payoffTable(g *matrixgame.Game) pterm.TableData {
	rows := g.Strategies(matrixgame.Player0)
	cols := g.Strategies(matrixgame.Player1)

	data := make(pterm.TableData, 0, len(rows)+1)
	data = append(data, append([]string{corner}, cols...))
	for i, row := range rows {
		line := make([]string, 0, len(cols)+1)
		line = append(line, row)
		for j := range cols {
			line = append(line, g.PayoffAt(i, j).String())
		}
		data = append(data, line)
	}

	return data
}
