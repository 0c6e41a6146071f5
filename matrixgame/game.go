package matrixgame

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Player represents the identity of a player in a two-player game.
type Player uint8

const (
	// Player0 chooses the row of the payoff table.
	Player0 Player = iota
	// Player1 chooses the column of the payoff table.
	Player1
)

var playerStr = [...]string{
	"Player0",
	"Player1",
}

func (p Player) String() string {
	if !p.valid() {
		return fmt.Sprintf("Player(%d)", uint8(p))
	}

	return playerStr[p]
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return 1 - p
}

func (p Player) valid() bool {
	return p == Player0 || p == Player1
}

// Payoff is the pair of utilities (u0, u1) obtained by each player under a
// strategy profile. It may be indexed by Player.
type Payoff [2]float64

func (p Payoff) String() string {
	return fmt.Sprintf("(%v, %v)", p[0], p[1])
}

// Strategy identifies one action of one player. Labels are only unique
// within a player, so a Strategy is keyed by both.
type Strategy struct {
	Player Player
	Label  string
}

func (s Strategy) String() string {
	return fmt.Sprintf("%v:%s", s.Player, s.Label)
}

// MixedProfile holds one probability vector per player, indexed by Player.
// Each vector must have one entry per strategy of that player. The vectors
// are expected to sum to 1 but this is not checked.
type MixedProfile [2][]float64

// Game is an immutable two-player game in strategic (normal) form.
//
// The payoff table is dense: payoffs[i][j] is the Payoff when Player0 plays
// its i'th strategy and Player1 plays its j'th strategy.
type Game struct {
	strategies [2][]string
	index      map[Strategy]int
	payoffs    [][]Payoff
	// utilities[p] is the payoff table projected onto player p's utility.
	utilities [2]*mat.Dense
}

// NewGame creates a new Game from the strategy labels of each player and a
// dense payoff table with one row per row strategy and one column per column
// strategy. The inputs are copied.
func NewGame(rowStrategies, columnStrategies []string, payoffs [][]Payoff) (*Game, error) {
	g := &Game{
		strategies: [2][]string{
			append([]string(nil), rowStrategies...),
			append([]string(nil), columnStrategies...),
		},
		index: make(map[Strategy]int, len(rowStrategies)+len(columnStrategies)),
	}

	for p := Player0; p <= Player1; p++ {
		if len(g.strategies[p]) == 0 {
			return nil, errors.Wrapf(ErrInvalidConfiguration, "%v has no strategies", p)
		}

		for i, label := range g.strategies[p] {
			s := Strategy{Player: p, Label: label}
			if _, ok := g.index[s]; ok {
				return nil, errors.Wrapf(ErrInvalidConfiguration,
					"%v has duplicate strategy %q", p, label)
			}
			g.index[s] = i
		}
	}

	nRows, nCols := len(g.strategies[Player0]), len(g.strategies[Player1])
	if len(payoffs) != nRows {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"payoff table has %d rows, expected %d", len(payoffs), nRows)
	}

	g.payoffs = make([][]Payoff, nRows)
	u0 := mat.NewDense(nRows, nCols, nil)
	u1 := mat.NewDense(nRows, nCols, nil)
	for i, row := range payoffs {
		if len(row) != nCols {
			return nil, errors.Wrapf(ErrDimensionMismatch,
				"payoff table row %d has %d columns, expected %d", i, len(row), nCols)
		}

		g.payoffs[i] = append([]Payoff(nil), row...)
		for j, payoff := range row {
			u0.Set(i, j, payoff[Player0])
			u1.Set(i, j, payoff[Player1])
		}
	}

	g.utilities = [2]*mat.Dense{u0, u1}
	return g, nil
}

// Strategies returns a copy of the given player's strategy labels, in order.
func (g *Game) Strategies(p Player) []string {
	return append([]string(nil), g.strategies[p]...)
}

// NumStrategies returns the number of strategies available to the given player.
func (g *Game) NumStrategies(p Player) int {
	return len(g.strategies[p])
}

// PayoffAt returns the payoff for the i'th row strategy and j'th column strategy.
func (g *Game) PayoffAt(i, j int) Payoff {
	return g.payoffs[i][j]
}

// Payoffs returns a copy of the dense payoff table.
func (g *Game) Payoffs() [][]Payoff {
	result := make([][]Payoff, len(g.payoffs))
	for i, row := range g.payoffs {
		result[i] = append([]Payoff(nil), row...)
	}

	return result
}

// Payoff looks up the payoff when Player0 plays rowStrategy and Player1
// plays columnStrategy.
func (g *Game) Payoff(rowStrategy, columnStrategy string) (Payoff, error) {
	i, err := g.indexOf(Player0, rowStrategy)
	if err != nil {
		return Payoff{}, err
	}

	j, err := g.indexOf(Player1, columnStrategy)
	if err != nil {
		return Payoff{}, err
	}

	return g.payoffs[i][j], nil
}

// Subgame returns a new Game restricted to the given strategies of each
// player, in the order given.
func (g *Game) Subgame(rowStrategies, columnStrategies []string) (*Game, error) {
	rows, err := g.indicesOf(Player0, rowStrategies)
	if err != nil {
		return nil, err
	}

	cols, err := g.indicesOf(Player1, columnStrategies)
	if err != nil {
		return nil, err
	}

	payoffs := make([][]Payoff, len(rows))
	for i, origRow := range rows {
		payoffs[i] = make([]Payoff, len(cols))
		for j, origCol := range cols {
			payoffs[i][j] = g.payoffs[origRow][origCol]
		}
	}

	return NewGame(rowStrategies, columnStrategies, payoffs)
}

// BestResponses returns all of player p's strategies that maximize its
// payoff when its opponent plays opponentStrategy. Ties are all included,
// in strategy order.
func (g *Game) BestResponses(p Player, opponentStrategy string) ([]string, error) {
	if !p.valid() {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "invalid player %v", p)
	}

	o, err := g.indexOf(p.Opponent(), opponentStrategy)
	if err != nil {
		return nil, err
	}

	brs := g.bestResponses(p, o)
	result := make([]string, len(brs))
	for k, i := range brs {
		result[k] = g.strategies[p][i]
	}

	return result, nil
}

// ExpectedUtility returns each player's expected payoff when both players
// randomize independently according to the given mixed profile.
func (g *Game) ExpectedUtility(m MixedProfile) (Payoff, error) {
	x, y, err := g.mixedVectors(m)
	if err != nil {
		return Payoff{}, err
	}

	return Payoff{
		mat.Inner(x, g.utilities[Player0], y),
		mat.Inner(x, g.utilities[Player1], y),
	}, nil
}

func (g *Game) mixedVectors(m MixedProfile) (*mat.VecDense, *mat.VecDense, error) {
	for p := Player0; p <= Player1; p++ {
		if len(m[p]) != len(g.strategies[p]) {
			return nil, nil, errors.Wrapf(ErrDimensionMismatch,
				"%v mixed strategy has %d probabilities, expected %d",
				p, len(m[p]), len(g.strategies[p]))
		}
	}

	x := mat.NewVecDense(len(m[Player0]), append([]float64(nil), m[Player0]...))
	y := mat.NewVecDense(len(m[Player1]), append([]float64(nil), m[Player1]...))
	return x, y, nil
}

// payoff returns the payoff when player p plays its own'th strategy
// and the opponent plays its opp'th strategy.
func (g *Game) payoff(p Player, own, opp int) Payoff {
	if p == Player0 {
		return g.payoffs[own][opp]
	}

	return g.payoffs[opp][own]
}

// bestResponses returns the indices of player p's strategies that
// maximize its utility against the opponent's opp'th strategy.
func (g *Game) bestResponses(p Player, opp int) []int {
	best := math.Inf(-1)
	for i := range g.strategies[p] {
		if u := g.payoff(p, i, opp)[p]; u > best {
			best = u
		}
	}

	var result []int
	for i := range g.strategies[p] {
		if g.payoff(p, i, opp)[p] == best {
			result = append(result, i)
		}
	}

	return result
}

func (g *Game) indexOf(p Player, label string) (int, error) {
	i, ok := g.index[Strategy{Player: p, Label: label}]
	if !ok {
		return 0, errors.Wrapf(ErrStrategyNotFound, "%v has no strategy %q", p, label)
	}

	return i, nil
}

func (g *Game) indicesOf(p Player, labels []string) ([]int, error) {
	result := make([]int, len(labels))
	for k, label := range labels {
		i, err := g.indexOf(p, label)
		if err != nil {
			return nil, err
		}
		result[k] = i
	}

	return result, nil
}
