package matrixgame

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// MixedEquilibriumTolerance is the absolute tolerance within which two
// expected utilities are considered equal by IsMixedNashEquilibrium.
const MixedEquilibriumTolerance = 1e-6

// Profile is a pure strategy profile: one strategy label for each player.
type Profile struct {
	Row    string
	Column string
}

func (p Profile) String() string {
	return fmt.Sprintf("(%s, %s)", p.Row, p.Column)
}

// PureNashEquilibria returns every profile in which each player's strategy
// is a best response to the other's, ordered by row then column.
func (g *Game) PureNashEquilibria() []Profile {
	nRows, nCols := len(g.strategies[Player0]), len(g.strategies[Player1])

	// rowBR[j][i] is true if row i is a best response to column j.
	rowBR := make([][]bool, nCols)
	for j := range rowBR {
		rowBR[j] = make([]bool, nRows)
		for _, i := range g.bestResponses(Player0, j) {
			rowBR[j][i] = true
		}
	}

	var result []Profile
	for i := 0; i < nRows; i++ {
		for _, j := range g.bestResponses(Player1, i) {
			if rowBR[j][i] {
				result = append(result, Profile{
					Row:    g.strategies[Player0][i],
					Column: g.strategies[Player1][j],
				})
			}
		}
	}

	return result
}

// IsMixedNashEquilibrium reports whether, for each player, every one of its
// pure strategies earns the same expected utility (within
// MixedEquilibriumTolerance) against the opponent's mixed strategy.
//
// Note that this requires indifference across all strategies, including
// those played with zero probability. It is stricter than the general
// mixed equilibrium condition, which only requires indifference over the
// support and weakly lower utility elsewhere.
func (g *Game) IsMixedNashEquilibrium(m MixedProfile) (bool, error) {
	x, y, err := g.mixedVectors(m)
	if err != nil {
		return false, err
	}

	// Utility of each row strategy against the column player's mix.
	var rowUtils mat.VecDense
	rowUtils.MulVec(g.utilities[Player0], y)
	// Utility of each column strategy against the row player's mix.
	var colUtils mat.VecDense
	colUtils.MulVec(g.utilities[Player1].T(), x)

	return indifferent(&rowUtils) && indifferent(&colUtils), nil
}

func indifferent(utils *mat.VecDense) bool {
	lo, hi := mat.Min(utils), mat.Max(utils)
	return scalar.EqualWithinAbs(lo, hi, MixedEquilibriumTolerance)
}
